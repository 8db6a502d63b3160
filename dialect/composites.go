package dialect

import "github.com/sqlforge/sqlforge/algebra"

// countComposites walks the whole algebra tree counting composite
// (subquery-bearing) sources: nested scopes (Nest), join guests, and
// scalar-aspect subqueries (AllValue/AnyValue/Existence/Count). With at
// most one, no query in the tree can ever need a qualifier to disambiguate
// an item reference, so qualification is skipped everywhere — a build-time
// simplification of has_many_composites / CheckCompositeEmitter /
// CheckCompositeComposer in the source this package is based on, which run
// the same count as a dry composition pass instead of a dedicated walk.
func countComposites(t algebra.Table) int {
	n := 0
	var walkTable func(algebra.Table)
	var walkExpr func(algebra.Expr)

	walkExpr = func(e algebra.Expr) {
		switch x := e.(type) {
		case nil:
		case *algebra.AllValue:
			n++
			walkTable(x.T)
		case *algebra.AnyValue:
			n++
			walkTable(x.T)
		case *algebra.Existence:
			n++
			walkTable(x.T)
		case *algebra.Count:
			n++
			walkTable(x.T)
		case *algebra.Cast:
			walkExpr(x.E)
		case *algebra.Parentheses:
			walkExpr(x.E)
		case *algebra.Neg:
			walkExpr(x.E)
		case *algebra.Pos:
			walkExpr(x.E)
		case *algebra.Summarize:
			for _, a := range x.Args {
				walkExpr(a)
			}
		case *algebra.Sub:
			walkExpr(x.A)
			walkExpr(x.B)
		case *algebra.Multiply:
			for _, a := range x.Args {
				walkExpr(a)
			}
		case *algebra.Div:
			walkExpr(x.A)
			walkExpr(x.B)
		case *algebra.Concat:
			for _, a := range x.Args {
				walkExpr(a)
			}
		case *algebra.Call:
			for _, a := range x.Args {
				walkExpr(a)
			}
		case *algebra.Comparison:
			walkExpr(x.A)
			walkExpr(x.B)
		case *algebra.Between:
			walkExpr(x.A)
			walkExpr(x.Lo)
			walkExpr(x.Hi)
		case *algebra.IsNull:
			walkExpr(x.E)
		case *algebra.NotNull:
			walkExpr(x.E)
		case *algebra.IsIn:
			walkExpr(x.A)
			for _, s := range x.S {
				walkExpr(s)
			}
		case *algebra.NotIn:
			walkExpr(x.A)
			for _, s := range x.S {
				walkExpr(s)
			}
		case *algebra.Like:
			walkExpr(x.S)
			walkExpr(x.Pattern)
			walkExpr(x.Escape)
		case *algebra.And:
			for _, a := range x.Args {
				walkExpr(a)
			}
		case *algebra.Or:
			for _, a := range x.Args {
				walkExpr(a)
			}
		case *algebra.Not:
			walkExpr(x.E)
		case *algebra.Case:
			for _, c := range x.Cases {
				walkExpr(c.When)
				walkExpr(c.Then)
			}
			walkExpr(x.Else)
		case *algebra.Switch:
			walkExpr(x.Disc)
			for _, c := range x.Cases {
				walkExpr(c.Match)
				walkExpr(c.Then)
			}
			walkExpr(x.Else)
		case *algebra.ExpressionList:
			for _, it := range x.Items {
				walkExpr(it)
			}
		case *algebra.DateTimePart:
			walkExpr(x.Date)
		case *algebra.PeriodStart:
			walkExpr(x.Date)
			walkExpr(x.Offset)
		case *algebra.YYYY_MM_DD:
			walkExpr(x.Date)
		case *algebra.HH_MM_SS:
			walkExpr(x.Date)
		}
	}

	walkTable = func(t algebra.Table) {
		switch x := t.(type) {
		case nil:
		case *algebra.Primary:
		case *algebra.Union:
			for _, s := range x.Tables {
				walkTable(s)
			}
		case *algebra.Qualify:
			walkTable(x.Parent)
		case *algebra.Alias:
			walkTable(x.Parent)
		case *algebra.Nest:
			n++
			walkTable(x.Parent)
		case *algebra.Include:
			walkTable(x.Parent)
		case *algebra.Exclude:
			walkTable(x.Parent)
		case *algebra.Rename:
			walkTable(x.Parent)
		case *algebra.Define:
			for _, b := range x.Bindings {
				walkExpr(b.Expr)
			}
			walkTable(x.Parent)
		case *algebra.Redefine:
			for _, b := range x.Bindings {
				walkExpr(b.Expr)
			}
			walkTable(x.Parent)
		case *algebra.Where:
			walkExpr(x.Pred)
			walkTable(x.Parent)
		case *algebra.Group:
			walkTable(x.Parent)
		case *algebra.Assign:
			for _, b := range x.Bindings {
				walkExpr(b.Expr)
			}
			walkTable(x.Parent)
		case *algebra.Distinct:
			walkTable(x.Parent)
		case *algebra.OrderBy:
			for _, e := range x.Exprs {
				walkExpr(e)
			}
			walkTable(x.Parent)
		case *algebra.Slice:
			walkTable(x.Parent)
		case *algebra.InnerJoin:
			n++
			walkTable(x.Left)
			walkTable(x.Right)
		case *algebra.OuterJoin:
			n++
			walkTable(x.Left)
			walkTable(x.Right)
		case *algebra.CrossJoin:
			n++
			walkTable(x.Left)
			walkTable(x.Right)
		case *algebra.Inserting:
			for _, b := range x.SetList {
				walkExpr(b.Expr)
			}
			walkTable(x.Parent)
		case *algebra.UpdatingAll:
			for _, b := range x.SetList {
				walkExpr(b.Expr)
			}
			walkTable(x.Parent)
		case *algebra.DeletingAll:
			walkTable(x.Parent)
		case *algebra.Extending:
			n++
			walkTable(x.Parent)
			walkTable(x.Source)
		case *algebra.Merging:
			n++
			walkTable(x.Parent)
			walkTable(x.Source)
			for _, b := range x.Inserting {
				walkExpr(b.Expr)
			}
		}
	}

	walkTable(t)
	return n
}
