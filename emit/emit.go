// Package emit defines the two-tier emission protocol: a scalar Emitter
// that renders expressions into layout fragments, and a table Composer
// that drives a query builder. Dispatch over the closed algebra families
// happens via type switches in Dispatch/Compose rather than an Accept
// method on every node, keeping algebra free of any dependency on emit.
package emit

import (
	"github.com/sqlforge/sqlforge/algebra"
	"github.com/sqlforge/sqlforge/layout"
)

// Emitter renders one layout fragment per expression variant.
type Emitter interface {
	Constant(*algebra.Constant) layout.Node
	Value(*algebra.Value) layout.Node
	Item(*algebra.Item) layout.Node
	HostItem(*algebra.HostItem) layout.Node
	Parameter(*algebra.Parameter) layout.Node
	// The remaining methods recurse into child expressions and take the
	// live emitter chain explicitly, rather than reading it off the
	// receiver, so a decorator captured earlier (e.g. in a where clause
	// assembled before a later Define) keeps dispatching its children
	// through the chain it was captured with, not whatever chain the
	// receiver has grown into by render time.
	Call(em Emitter, x *algebra.Call) layout.Node
	Cast(em Emitter, x *algebra.Cast) layout.Node
	Parentheses(em Emitter, x *algebra.Parentheses) layout.Node
	Neg(em Emitter, x *algebra.Neg) layout.Node
	Pos(em Emitter, x *algebra.Pos) layout.Node
	Summarize(em Emitter, x *algebra.Summarize) layout.Node
	Sub(em Emitter, x *algebra.Sub) layout.Node
	Multiply(em Emitter, x *algebra.Multiply) layout.Node
	Div(em Emitter, x *algebra.Div) layout.Node
	Concat(em Emitter, x *algebra.Concat) layout.Node
	Comparison(em Emitter, x *algebra.Comparison) layout.Node
	Between(em Emitter, x *algebra.Between) layout.Node
	IsNull(em Emitter, x *algebra.IsNull) layout.Node
	NotNull(em Emitter, x *algebra.NotNull) layout.Node
	IsIn(em Emitter, x *algebra.IsIn) layout.Node
	NotIn(em Emitter, x *algebra.NotIn) layout.Node
	Like(em Emitter, x *algebra.Like) layout.Node
	And(em Emitter, x *algebra.And) layout.Node
	Or(em Emitter, x *algebra.Or) layout.Node
	Not(em Emitter, x *algebra.Not) layout.Node
	Case(em Emitter, x *algebra.Case) layout.Node
	Switch(em Emitter, x *algebra.Switch) layout.Node
	ExpressionList(em Emitter, x *algebra.ExpressionList) layout.Node
	DateTimePart(em Emitter, x *algebra.DateTimePart) layout.Node
	PeriodStart(em Emitter, x *algebra.PeriodStart) layout.Node
	YYYY_MM_DD(em Emitter, x *algebra.YYYY_MM_DD) layout.Node
	HH_MM_SS(em Emitter, x *algebra.HH_MM_SS) layout.Node
	Now(*algebra.Now) layout.Node
	NextVal(*algebra.NextVal) layout.Node
	AllValue(*algebra.AllValue) layout.Node
	AnyValue(*algebra.AnyValue) layout.Node
	Existence(*algebra.Existence) layout.Node
	Count(*algebra.Count) layout.Node

	// ConcatByFunction reports the dialect setting Ambiguous needs to
	// decide whether Concat is atomic.
	ConcatByFunction() bool
	// Ambiguous reports whether x needs parentheses as a child of outer.
	// Decorators that substitute one expression for another (item
	// definitions, parameter substitution) override this to resolve x to
	// its expansion before delegating, so parenthesization reflects what
	// is actually emitted rather than the placeholder node.
	Ambiguous(x, outer algebra.Expr) bool
	// Composer returns the table composer this emitter feeds.
	Composer() Composer
}

// Composer renders one step per table-operator variant, mutating whatever
// query builder it owns.
type Composer interface {
	Primary(*algebra.Primary) error
	Union(*algebra.Union) error
	Qualify(*algebra.Qualify) error
	Alias(*algebra.Alias) error
	Nest(*algebra.Nest) error
	Include(*algebra.Include) error
	Exclude(*algebra.Exclude) error
	Rename(*algebra.Rename) error
	Define(*algebra.Define) error
	Redefine(*algebra.Redefine) error
	Where(*algebra.Where) error
	Group(*algebra.Group) error
	Assign(*algebra.Assign) error
	Distinct(*algebra.Distinct) error
	OrderBy(*algebra.OrderBy) error
	Slice(*algebra.Slice) error
	InnerJoin(*algebra.InnerJoin) error
	OuterJoin(*algebra.OuterJoin) error
	CrossJoin(*algebra.CrossJoin) error
	Inserting(*algebra.Inserting) error
	UpdatingAll(*algebra.UpdatingAll) error
	DeleteAll(*algebra.DeletingAll) error
	Extending(*algebra.Extending) error
	Merging(*algebra.Merging) error
}

// Dispatch renders e by calling the Emitter method matching its concrete
// type.
func Dispatch(em Emitter, e algebra.Expr) layout.Node {
	switch x := e.(type) {
	case *algebra.Constant:
		return em.Constant(x)
	case *algebra.Value:
		return em.Value(x)
	case *algebra.Item:
		return em.Item(x)
	case *algebra.HostItem:
		return em.HostItem(x)
	case *algebra.Parameter:
		return em.Parameter(x)
	case *algebra.Call:
		return em.Call(em, x)
	case *algebra.Cast:
		return em.Cast(em, x)
	case *algebra.Parentheses:
		return em.Parentheses(em, x)
	case *algebra.Neg:
		return em.Neg(em, x)
	case *algebra.Pos:
		return em.Pos(em, x)
	case *algebra.Summarize:
		return em.Summarize(em, x)
	case *algebra.Sub:
		return em.Sub(em, x)
	case *algebra.Multiply:
		return em.Multiply(em, x)
	case *algebra.Div:
		return em.Div(em, x)
	case *algebra.Concat:
		return em.Concat(em, x)
	case *algebra.Comparison:
		return em.Comparison(em, x)
	case *algebra.Between:
		return em.Between(em, x)
	case *algebra.IsNull:
		return em.IsNull(em, x)
	case *algebra.NotNull:
		return em.NotNull(em, x)
	case *algebra.IsIn:
		return em.IsIn(em, x)
	case *algebra.NotIn:
		return em.NotIn(em, x)
	case *algebra.Like:
		return em.Like(em, x)
	case *algebra.And:
		return em.And(em, x)
	case *algebra.Or:
		return em.Or(em, x)
	case *algebra.Not:
		return em.Not(em, x)
	case *algebra.Case:
		return em.Case(em, x)
	case *algebra.Switch:
		return em.Switch(em, x)
	case *algebra.ExpressionList:
		return em.ExpressionList(em, x)
	case *algebra.DateTimePart:
		return em.DateTimePart(em, x)
	case *algebra.PeriodStart:
		return em.PeriodStart(em, x)
	case *algebra.YYYY_MM_DD:
		return em.YYYY_MM_DD(em, x)
	case *algebra.HH_MM_SS:
		return em.HH_MM_SS(em, x)
	case *algebra.Now:
		return em.Now(x)
	case *algebra.NextVal:
		return em.NextVal(x)
	case *algebra.AllValue:
		return em.AllValue(x)
	case *algebra.AnyValue:
		return em.AnyValue(x)
	case *algebra.Existence:
		return em.Existence(x)
	case *algebra.Count:
		return em.Count(x)
	default:
		panic("emit: unhandled expression kind")
	}
}

// Compose drives cm with the table-operator method matching t's concrete
// type.
func Compose(cm Composer, t algebra.Table) error {
	switch x := t.(type) {
	case *algebra.Primary:
		return cm.Primary(x)
	case *algebra.Union:
		return cm.Union(x)
	case *algebra.Qualify:
		return cm.Qualify(x)
	case *algebra.Alias:
		return cm.Alias(x)
	case *algebra.Nest:
		return cm.Nest(x)
	case *algebra.Include:
		return cm.Include(x)
	case *algebra.Exclude:
		return cm.Exclude(x)
	case *algebra.Rename:
		return cm.Rename(x)
	case *algebra.Define:
		return cm.Define(x)
	case *algebra.Redefine:
		return cm.Redefine(x)
	case *algebra.Where:
		return cm.Where(x)
	case *algebra.Group:
		return cm.Group(x)
	case *algebra.Assign:
		return cm.Assign(x)
	case *algebra.Distinct:
		return cm.Distinct(x)
	case *algebra.OrderBy:
		return cm.OrderBy(x)
	case *algebra.Slice:
		return cm.Slice(x)
	case *algebra.InnerJoin:
		return cm.InnerJoin(x)
	case *algebra.OuterJoin:
		return cm.OuterJoin(x)
	case *algebra.CrossJoin:
		return cm.CrossJoin(x)
	case *algebra.Inserting:
		return cm.Inserting(x)
	case *algebra.UpdatingAll:
		return cm.UpdatingAll(x)
	case *algebra.DeletingAll:
		return cm.DeleteAll(x)
	case *algebra.Extending:
		return cm.Extending(x)
	case *algebra.Merging:
		return cm.Merging(x)
	default:
		panic("emit: unhandled table kind")
	}
}

// Inner recursively emits x and wraps the fragment in parentheses when
// em.Ambiguous(x, outer) holds.
func Inner(em Emitter, outer, x algebra.Expr) layout.Node {
	frag := Dispatch(em, x)
	if em.Ambiguous(x, outer) {
		scope := layout.NewScope("(", ")")
		scope.Add(frag)
		return scope
	}
	return frag
}

// BaseAmbiguous is the Ambiguous implementation concrete (non-decorator)
// emitters delegate to.
func BaseAmbiguous(em Emitter, x, outer algebra.Expr) bool {
	return Ambiguous(x, outer, em.ConcatByFunction())
}
