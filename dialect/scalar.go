package dialect

import (
	"fmt"

	"github.com/sqlforge/sqlforge/algebra"
	"github.com/sqlforge/sqlforge/emit"
	"github.com/sqlforge/sqlforge/layout"
	"github.com/sqlforge/sqlforge/sqlerr"
)

func (qb *QueryBuilder) Constant(x *algebra.Constant) layout.Node {
	return layout.NewLine(qb.litRepr(x.V))
}

func (qb *QueryBuilder) Value(x *algebra.Value) layout.Node {
	return layout.NewLine(qb.litRepr(x.V))
}

func (qb *QueryBuilder) Item(x *algebra.Item) layout.Node {
	if qb.qualifier != "" && !qb.root.qualifyWhatever {
		return layout.NewLine(qb.qualifier + "." + x.Name)
	}
	return layout.NewLine(x.Name)
}

func (qb *QueryBuilder) HostItem(x *algebra.HostItem) layout.Node {
	if qb.host == nil {
		panic(sqlerr.Withf(sqlerr.Assertion, x.Name, "host item %q referenced outside any enclosing query", x.Name))
	}
	return emit.Dispatch(qb.host.em, &algebra.Item{Name: x.Name})
}

func (qb *QueryBuilder) Parameter(x *algebra.Parameter) layout.Node {
	if qb.root.Dialect.BindByName {
		return layout.NewLine(qb.root.Dialect.ParamPrefix + x.Name)
	}
	return layout.NewLine("?")
}

func (qb *QueryBuilder) Call(em emit.Emitter, x *algebra.Call) layout.Node {
	scope := layout.NewScope("(", ")")
	lst := scope.NewList(",")
	for _, a := range x.Args {
		lst.Add(emit.Inner(em, x, a))
	}
	l := layout.NewLine(x.Name)
	l.Word(scope)
	return l
}

func (qb *QueryBuilder) Cast(em emit.Emitter, x *algebra.Cast) layout.Node {
	scope := layout.NewScope("(", ")")
	scope.Line(emit.Inner(em, x, x.E), qb.root.keyword("as"), qb.typeRepr(x.Type))
	l := layout.NewLine(qb.root.keyword("cast"))
	l.Word(scope)
	return l
}

func (qb *QueryBuilder) Parentheses(em emit.Emitter, x *algebra.Parentheses) layout.Node {
	scope := layout.NewScope("(", ")")
	scope.Add(emit.Dispatch(em, x.E))
	return scope
}

func (qb *QueryBuilder) Neg(em emit.Emitter, x *algebra.Neg) layout.Node {
	l := layout.NewLine("-")
	l.Word(emit.Inner(em, x, x.E))
	return l
}

func (qb *QueryBuilder) Pos(em emit.Emitter, x *algebra.Pos) layout.Node {
	l := layout.NewLine("+")
	l.Word(emit.Inner(em, x, x.E))
	return l
}

func joinInfix(em emit.Emitter, outer algebra.Expr, args []algebra.Expr, op string) layout.Node {
	l := &layout.Line{}
	for i, a := range args {
		if i > 0 {
			l.Word(op)
		}
		l.Word(emit.Inner(em, outer, a))
	}
	return l
}

func (qb *QueryBuilder) Summarize(em emit.Emitter, x *algebra.Summarize) layout.Node {
	return joinInfix(em, x, x.Args, "+")
}

func (qb *QueryBuilder) Sub(em emit.Emitter, x *algebra.Sub) layout.Node {
	return layout.NewLine(emit.Inner(em, x, x.A), "-", emit.Inner(em, x, x.B))
}

func (qb *QueryBuilder) Multiply(em emit.Emitter, x *algebra.Multiply) layout.Node {
	return joinInfix(em, x, x.Args, "*")
}

func (qb *QueryBuilder) Div(em emit.Emitter, x *algebra.Div) layout.Node {
	return layout.NewLine(emit.Inner(em, x, x.A), "/", emit.Inner(em, x, x.B))
}

func (qb *QueryBuilder) Concat(em emit.Emitter, x *algebra.Concat) layout.Node {
	if !qb.root.Dialect.ConcatByFunction {
		return joinInfix(em, x, x.Args, qb.root.Dialect.ConcatOperator)
	}
	if qb.root.Dialect.ConcatFunctionMultiArgs || len(x.Args) <= 2 {
		scope := layout.NewScope("(", ")")
		lst := scope.NewList(",")
		for _, a := range x.Args {
			lst.Add(emit.Inner(em, x, a))
		}
		l := layout.NewLine("CONCAT")
		l.Word(scope)
		return l
	}
	// Fold into nested two-argument calls when the dialect's concat
	// function only accepts two arguments at a time.
	result := x.Args[0]
	for _, a := range x.Args[1:] {
		result = &algebra.Concat{Args: []algebra.Expr{result, a}}
	}
	return emit.Dispatch(em, result)
}

var comparisonOps = map[algebra.ComparisonOp]string{
	algebra.OpLt: "<",
	algebra.OpLe: "<=",
	algebra.OpEq: "=",
	algebra.OpNe: "<>",
	algebra.OpGe: ">=",
	algebra.OpGt: ">",
}

func (qb *QueryBuilder) Comparison(em emit.Emitter, x *algebra.Comparison) layout.Node {
	return layout.NewLine(emit.Inner(em, x, x.A), comparisonOps[x.Op], emit.Inner(em, x, x.B))
}

func (qb *QueryBuilder) Between(em emit.Emitter, x *algebra.Between) layout.Node {
	return layout.NewLine(emit.Inner(em, x, x.A), qb.root.keyword("between"), emit.Inner(em, x, x.Lo), qb.root.keyword("and"), emit.Inner(em, x, x.Hi))
}

func (qb *QueryBuilder) IsNull(em emit.Emitter, x *algebra.IsNull) layout.Node {
	return layout.NewLine(emit.Inner(em, x, x.E), qb.root.keyword("is"), qb.root.keyword("null"))
}

func (qb *QueryBuilder) NotNull(em emit.Emitter, x *algebra.NotNull) layout.Node {
	return layout.NewLine(emit.Inner(em, x, x.E), qb.root.keyword("is"), qb.root.keyword("not"), qb.root.keyword("null"))
}

func setScope(em emit.Emitter, x algebra.Expr, s []algebra.Expr) *layout.Scope {
	scope := layout.NewScope("(", ")")
	lst := scope.NewList(",")
	for _, e := range s {
		lst.Add(emit.Inner(em, x, e))
	}
	return scope
}

func (qb *QueryBuilder) IsIn(em emit.Emitter, x *algebra.IsIn) layout.Node {
	l := layout.NewLine(emit.Inner(em, x, x.A), qb.root.keyword("in"))
	l.Word(setScope(em, x, x.S))
	return l
}

func (qb *QueryBuilder) NotIn(em emit.Emitter, x *algebra.NotIn) layout.Node {
	l := layout.NewLine(emit.Inner(em, x, x.A), qb.root.keyword("not"), qb.root.keyword("in"))
	l.Word(setScope(em, x, x.S))
	return l
}

func (qb *QueryBuilder) Like(em emit.Emitter, x *algebra.Like) layout.Node {
	l := layout.NewLine(emit.Inner(em, x, x.S), qb.root.keyword("like"), emit.Inner(em, x, x.Pattern))
	if x.Escape != nil {
		l.Word(qb.root.keyword("escape"), emit.Inner(em, x, x.Escape))
	}
	return l
}

func (qb *QueryBuilder) And(em emit.Emitter, x *algebra.And) layout.Node {
	return joinInfix(em, x, x.Args, qb.root.keyword("and"))
}

func (qb *QueryBuilder) Or(em emit.Emitter, x *algebra.Or) layout.Node {
	return joinInfix(em, x, x.Args, qb.root.keyword("or"))
}

func (qb *QueryBuilder) Not(em emit.Emitter, x *algebra.Not) layout.Node {
	l := layout.NewLine(qb.root.keyword("not"))
	l.Word(emit.Inner(em, x, x.E))
	return l
}

func (qb *QueryBuilder) Case(em emit.Emitter, x *algebra.Case) layout.Node {
	r := &layout.Roster{}
	content := r.Titled(qb.root.keyword("case"))
	for _, c := range x.Cases {
		content.Line(qb.root.keyword("when"), emit.Inner(em, x, c.When), qb.root.keyword("then"), emit.Inner(em, x, c.Then))
	}
	if x.Else != nil {
		content.Line(qb.root.keyword("else"), emit.Inner(em, x, x.Else))
	}
	r.Line(qb.root.keyword("end"))
	return r
}

func (qb *QueryBuilder) Switch(em emit.Emitter, x *algebra.Switch) layout.Node {
	r := &layout.Roster{}
	s := r.NewSection()
	s.Header.Line(qb.root.keyword("case"), emit.Inner(em, x, x.Disc))
	for _, c := range x.Cases {
		s.Content.Line(qb.root.keyword("when"), emit.Inner(em, x, c.Match), qb.root.keyword("then"), emit.Inner(em, x, c.Then))
	}
	if x.Else != nil {
		s.Content.Line(qb.root.keyword("else"), emit.Inner(em, x, x.Else))
	}
	r.Line(qb.root.keyword("end"))
	return r
}

func (qb *QueryBuilder) ExpressionList(em emit.Emitter, x *algebra.ExpressionList) layout.Node {
	scope := layout.NewScope("(", ")")
	lst := scope.NewList(",")
	for _, e := range x.Items {
		lst.Add(emit.Inner(em, x, e))
	}
	return scope
}

func (qb *QueryBuilder) DateTimePart(em emit.Emitter, x *algebra.DateTimePart) layout.Node {
	scope := layout.NewScope("(", ")")
	scope.Line(qb.root.keyword(x.Part), qb.root.keyword("from"), emit.Inner(em, x, x.Date))
	l := layout.NewLine(qb.root.keyword("extract"))
	l.Word(scope)
	return l
}

func (qb *QueryBuilder) PeriodStart(em emit.Emitter, x *algebra.PeriodStart) layout.Node {
	scope := layout.NewScope("(", ")")
	lst := scope.NewList(",")
	lst.Add(layout.NewLine(qb.root.keyword(x.Part)))
	lst.Add(emit.Inner(em, x, x.Date))
	if x.Offset != nil {
		lst.Add(emit.Inner(em, x, x.Offset))
	}
	l := layout.NewLine(qb.root.keyword("date_trunc"))
	l.Word(scope)
	return l
}

func (qb *QueryBuilder) YYYY_MM_DD(em emit.Emitter, x *algebra.YYYY_MM_DD) layout.Node {
	sep := x.Sep
	if sep == "" {
		sep = "-"
	}
	scope := layout.NewScope("(", ")")
	scope.Line(emit.Inner(em, x, x.Date), ",", sqlString(fmt.Sprintf("YYYY%sMM%sDD", sep, sep)))
	l := layout.NewLine(qb.root.keyword("to_char"))
	l.Word(scope)
	return l
}

func (qb *QueryBuilder) HH_MM_SS(em emit.Emitter, x *algebra.HH_MM_SS) layout.Node {
	sep := x.Sep
	if sep == "" {
		sep = ":"
	}
	scope := layout.NewScope("(", ")")
	scope.Line(emit.Inner(em, x, x.Date), ",", sqlString(fmt.Sprintf("HH24%sMI%sSS", sep, sep)))
	l := layout.NewLine(qb.root.keyword("to_char"))
	l.Word(scope)
	return l
}

func (qb *QueryBuilder) Now(x *algebra.Now) layout.Node {
	return layout.NewLine(qb.root.Dialect.NowLiteral)
}

func (qb *QueryBuilder) NextVal(x *algebra.NextVal) layout.Node {
	return layout.NewLine(fmt.Sprintf(qb.root.Dialect.NextValTemplate, x.Sequence))
}

func (qb *QueryBuilder) subquery(t algebra.Table) (*QueryBuilder, error) {
	guest := qb.guest()
	if err := emit.Compose(guest, t); err != nil {
		return nil, err
	}
	return guest, nil
}

func (qb *QueryBuilder) mustSubquery(t algebra.Table) *QueryBuilder {
	guest, err := qb.subquery(t)
	if err != nil {
		panic(err)
	}
	return guest
}

func (qb *QueryBuilder) AllValue(x *algebra.AllValue) layout.Node {
	guest := qb.mustSubquery(x.T)
	scope := layout.NewScope("(", ")")
	scope.Add(guest.renderSelect())
	l := layout.NewLine(qb.root.keyword("all"))
	l.Word(scope)
	return l
}

func (qb *QueryBuilder) AnyValue(x *algebra.AnyValue) layout.Node {
	guest := qb.mustSubquery(x.T)
	scope := layout.NewScope("(", ")")
	scope.Add(guest.renderSelect())
	l := layout.NewLine(qb.root.keyword("any"))
	l.Word(scope)
	return l
}

func (qb *QueryBuilder) Existence(x *algebra.Existence) layout.Node {
	guest := qb.mustSubquery(x.T)
	scope := layout.NewScope("(", ")")
	scope.Add(guest.renderSelect())
	l := layout.NewLine(qb.root.keyword("exists"))
	l.Word(scope)
	return l
}

func (qb *QueryBuilder) Count(x *algebra.Count) layout.Node {
	guest := qb.mustSubquery(x.T)
	scope := layout.NewScope("(", ")")
	scope.Add(guest.renderSelect())
	l := layout.NewLine(qb.root.keyword("count"))
	l.Word(scope)
	return l
}
