package dialect

import (
	"strconv"

	"github.com/sqlforge/sqlforge/algebra"
	"github.com/sqlforge/sqlforge/emit"
	"github.com/sqlforge/sqlforge/layout"
	"github.com/sqlforge/sqlforge/sqlerr"
)

// render dispatches on qb.command to build the final document tree for
// whichever statement this scope compiled into.
func (qb *QueryBuilder) render() layout.Node {
	switch qb.command {
	case "insert":
		return qb.renderInsert()
	case "update":
		return qb.renderUpdate()
	case "delete":
		return qb.renderDelete()
	case "extend":
		return qb.renderExtend()
	case "merge":
		return qb.renderMerge()
	default:
		return qb.renderSelect()
	}
}

// predicateList AND-joins terms into a List, each rendered under the em
// chain captured when it was accumulated and with outer nil — like a
// selection item, a bare predicate has no enclosing expression but is
// still wrapped in parentheses when its own kind is non-atomic (every
// Comparison/Between/And/Or is), matching
// models.Expression.emit_part(emitter) in the source this package is
// based on. Returns an empty, unattached List when terms is empty.
func predicateList(terms []whereTerm, sep string) *layout.List {
	lst := layout.NewList(sep)
	for _, t := range terms {
		lst.Add(emit.Inner(t.em, nil, t.pred))
	}
	return lst
}

// renderPrincipalSource renders this scope's own FROM-item: a bare table
// name, a parenthesized nested SELECT, or either followed by an alias.
func (qb *QueryBuilder) renderPrincipalSource() *layout.Line {
	l := &layout.Line{}
	if qb.principalTable != "" {
		l.Word(qb.principalTable)
	}
	if qb.principalQuery != nil {
		scope := layout.NewScope("(", ")")
		scope.Add(qb.principalQuery.renderSelect())
		l.Word(scope)
	}
	if qb.principalAlias != "" {
		if qb.root.Dialect.UseAsForSourceAlias {
			l.Word(qb.root.keyword("as"))
		}
		l.Word(qb.principalAlias)
	}
	return l
}

func (qb *QueryBuilder) fillSelection(lst *layout.List) {
	for _, name := range qb.labels {
		// outer is nil: a selection item has no enclosing expression, but
		// may still need parentheses (e.g. a Define'd arithmetic column),
		// matching models.Expression.emit_part's inner(emitter, self, None)
		// in the source this package is based on.
		item := emit.Inner(qb.em, nil, &algebra.Item{Name: name})
		if !qb.aliasings[name] {
			lst.Add(item)
			continue
		}
		l := &layout.Line{}
		l.Word(item)
		if qb.root.Dialect.UseAsForResultAlias {
			l.Word(qb.root.keyword("as"))
		}
		l.Word(name)
		lst.Add(l)
	}
}

func joinPrefix(r *SQLEmitter, kind string) string {
	switch kind {
	case "outer":
		return r.keyword("left") + " " + r.keyword("outer") + " " + r.keyword("join")
	case "cross":
		return r.keyword("cross") + " " + r.keyword("join")
	default:
		return r.keyword("join")
	}
}

// fillJoinClauses appends one JOIN ... ON ... line per join, each guest's
// ON condition drawn from the predicates accumulated (via Where) on the
// joined table's own chain before it was composed as the join's right
// operand — this package's own addition: the source this package is based
// on leaves the join predicate hook empty and instead expects matching
// conditions to live in the combined scope's WHERE, which would read
// stranger still once rendered with explicit JOIN syntax.
func (qb *QueryBuilder) fillJoinClauses(target *layout.Roster) error {
	if len(qb.joins) == 0 {
		return nil
	}
	if !qb.root.Dialect.UseJoinClause {
		return sqlerr.New(sqlerr.Unsupported, "dialect requires comma-joined sources, not implemented")
	}
	for _, j := range qb.joins {
		if err := j.qb.finalizeQualifier(); err != nil {
			return err
		}
		ln := target.Line(joinPrefix(qb.root, j.kind))
		ln.Word(j.qb.renderPrincipalSource())
		if j.kind != "cross" {
			if pred := predicateList(j.qb.wheres, qb.root.keyword("and")); !pred.Empty() {
				ln.Word(qb.root.keyword("on"))
				ln.Word(pred)
			}
		}
	}
	return nil
}

func (qb *QueryBuilder) renderSlice() (layout.Node, error) {
	if !qb.hasFirst && !qb.hasAfterLast {
		return nil, nil
	}
	if !qb.root.Dialect.UseLimitOffset {
		return nil, sqlerr.New(sqlerr.Unsupported, "dialect declares no supported slicing strategy")
	}
	l := &layout.Line{}
	if qb.hasAfterLast {
		limit := qb.afterLast
		if qb.hasFirst {
			limit -= qb.first
		}
		l.Word(qb.root.keyword("limit"), strconv.Itoa(limit))
	}
	if qb.hasFirst && qb.first > 0 {
		l.Word(qb.root.keyword("offset"), strconv.Itoa(qb.first))
	}
	return l, nil
}

// renderSelect produces the ordered SELECT/FROM/JOIN/WHERE/GROUP BY/HAVING/
// ORDER BY/LIMIT sections, each omitted when empty.
func (qb *QueryBuilder) renderSelect() layout.Node {
	if err := qb.finalizeQualifier(); err != nil {
		panic(err)
	}

	root := &layout.Roster{}

	title := qb.root.keyword("select")
	if qb.selectDistinct {
		title = title + " " + qb.root.keyword("distinct")
	}
	selContent := root.Titled(title)
	if !qb.labelsSet || len(qb.labels) == 0 {
		selContent.Line("*")
	} else {
		qb.fillSelection(selContent.NewList(","))
	}

	srcLst := layout.NewList(",")
	srcLst.Add(qb.renderPrincipalSource())
	if !srcLst.Empty() {
		frm := root.Titled(qb.root.keyword("from"))
		frm.Add(srcLst)
		if err := qb.fillJoinClauses(frm); err != nil {
			panic(err)
		}
	}

	if where := predicateList(qb.wheres, qb.root.keyword("and")); !where.Empty() {
		root.Titled(qb.root.keyword("where")).Add(where)
	}

	if qb.grouped {
		grp := root.Titled(qb.root.keyword("group") + " " + qb.root.keyword("by"))
		lst := grp.NewList(",")
		for _, label := range qb.groupBy {
			lst.Add(emit.Inner(qb.em, nil, &algebra.Item{Name: label}))
		}
	}

	if having := predicateList(qb.havings, qb.root.keyword("and")); !having.Empty() {
		root.Titled(qb.root.keyword("having")).Add(having)
	}

	if len(qb.orderBy) > 0 {
		ord := root.Titled(qb.root.keyword("order") + " " + qb.root.keyword("by"))
		lst := ord.NewList(",")
		for _, t := range qb.orderBy {
			lst.Add(emit.Inner(t.em, nil, t.expr))
		}
	}

	if slice, err := qb.renderSlice(); err != nil {
		panic(err)
	} else if slice != nil {
		root.Add(slice)
	}

	if qb.root.Dialect.LockSupport && qb.root.Dialect.LockSelectEnding != "" {
		root.Line(qb.root.Dialect.LockSelectEnding)
	}

	return root
}

func (qb *QueryBuilder) renderInsert() layout.Node {
	root := &layout.Roster{}

	cols := layout.NewScope("(", ")")
	collst := cols.NewList(",")
	vals := layout.NewScope("(", ")")
	vallst := vals.NewList(",")
	for _, b := range qb.setList {
		collst.Add(layout.NewLine(b.Name))
		vallst.Add(emit.Inner(qb.em, nil, b.Expr))
	}

	head := layout.NewLine(qb.root.keyword("insert"), qb.root.keyword("into"), qb.principalTable)
	head.Word(cols)
	root.Add(head)

	tail := layout.NewLine(qb.root.keyword("values"))
	tail.Word(vals)
	root.Add(tail)
	return root
}

func (qb *QueryBuilder) renderUpdate() layout.Node {
	root := &layout.Roster{}
	root.Line(qb.root.keyword("update"), qb.principalTable, qb.root.keyword("set"))
	lst := layout.NewList(",")
	for _, b := range qb.setList {
		lst.Add(layout.NewLine(b.Name, "=", emit.Inner(qb.em, nil, b.Expr)))
	}
	root.Add(lst)
	if where := predicateList(qb.wheres, qb.root.keyword("and")); !where.Empty() {
		root.Titled(qb.root.keyword("where")).Add(where)
	}
	return root
}

func (qb *QueryBuilder) renderDelete() layout.Node {
	root := &layout.Roster{}
	root.Line(qb.root.keyword("delete"), qb.root.keyword("from"), qb.principalTable)
	if where := predicateList(qb.wheres, qb.root.keyword("and")); !where.Empty() {
		root.Titled(qb.root.keyword("where")).Add(where)
	}
	return root
}

// renderExtend appends every row of Source, projected onto this scope's own
// labels, to the target table. This package's own addition: deduplicating
// against existing rows would need a two-sided match predicate the closed
// Extending node has no slot for, so this renders a plain bulk append.
func (qb *QueryBuilder) renderExtend() layout.Node {
	root := &layout.Roster{}
	if err := qb.extendSource.finalizeQualifier(); err != nil {
		panic(err)
	}

	cols := layout.NewScope("(", ")")
	collst := cols.NewList(",")
	for _, name := range qb.labels {
		collst.Add(layout.NewLine(name))
	}
	head := layout.NewLine(qb.root.keyword("insert"), qb.root.keyword("into"), qb.principalTable)
	head.Word(cols)
	root.Add(head)
	root.Add(qb.extendSource.renderSelect())
	return root
}

// renderMerge compiles Merging into USING (source) ... WHEN NOT MATCHED
// THEN INSERT, with the ON condition drawn from the predicates accumulated
// on Parent before Merging was composed. This package's own addition,
// scoped to upsert-by-insert-only since Merging carries no update bindings
// for a WHEN MATCHED arm.
func (qb *QueryBuilder) renderMerge() layout.Node {
	root := &layout.Roster{}
	if err := qb.mergeSource.finalizeQualifier(); err != nil {
		panic(err)
	}

	head := layout.NewLine(qb.root.keyword("merge"), qb.root.keyword("into"), qb.principalTable)
	root.Add(head)

	using := layout.NewLine(qb.root.keyword("using"))
	scope := layout.NewScope("(", ")")
	scope.Add(qb.mergeSource.renderSelect())
	using.Word(scope)
	if qb.mergeSource.principalAlias != "" {
		using.Word(qb.root.keyword("as"), qb.mergeSource.principalAlias)
	}
	root.Add(using)

	if pred := predicateList(qb.wheres, qb.root.keyword("and")); !pred.Empty() {
		on := layout.NewLine(qb.root.keyword("on"))
		on.Word(pred)
		root.Add(on)
	}

	notMatched := layout.NewLine(qb.root.keyword("when"), qb.root.keyword("not"), qb.root.keyword("matched"), qb.root.keyword("then"), qb.root.keyword("insert"))
	cols := layout.NewScope("(", ")")
	collst := cols.NewList(",")
	vals := layout.NewScope("(", ")")
	vallst := vals.NewList(",")
	for _, b := range qb.mergeInsert {
		collst.Add(layout.NewLine(b.Name))
		vallst.Add(emit.Inner(qb.mergeSource.em, nil, b.Expr))
	}
	notMatched.Word(cols)
	root.Add(notMatched)
	tail := layout.NewLine(qb.root.keyword("values"))
	tail.Word(vals)
	root.Add(tail)
	return root
}
