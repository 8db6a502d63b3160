package dialect

import (
	"fmt"

	"github.com/sqlforge/sqlforge/algebra"
	"github.com/sqlforge/sqlforge/emit"
	"github.com/sqlforge/sqlforge/layout"
	"github.com/sqlforge/sqlforge/sqlerr"
)

// build composes table against a fresh root QueryBuilder and renders its
// final document tree. InclusionDecorator/ExclusionDecorator/HostItem/
// subquery composition panic with a *sqlerr.Error on failure rather than
// threading an error through every emit.Emitter method (the protocol
// itself returns no error from its scalar methods); build recovers those
// here and turns them back into a returned error.
func build(table algebra.Table, d Dialect) (node layout.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*sqlerr.Error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()

	root := newSQLEmitter(d)
	root.qualifyWhatever = countComposites(table) <= 1

	qb := newQueryBuilder(root, nil)
	if cerr := emit.Compose(qb, table); cerr != nil {
		return nil, cerr
	}
	return qb.render(), nil
}

// Emit composes table against d and renders it with the indented,
// multi-line renderer, returning the offsets of any layout.Tag nodes
// encountered along the way.
func Emit(table algebra.Table, d Dialect) (string, layout.TagMap, error) {
	node, err := build(table, d)
	if err != nil {
		return "", nil, err
	}
	r := layout.NewIndentedRenderer(d.TabUnit)
	r.Render(node)
	return r.String(), r.Tags(), nil
}

// buildExpr renders e against a fresh, tableless root scope, the scalar
// counterpart of build: e is dispatched directly with no enclosing
// expression, mirroring emit_model(model) calling model.emit(self) straight
// through with no ambiguity check, rather than the emitter.inner(...) wrap
// every expression gets as a child of something else.
func buildExpr(e algebra.Expr, d Dialect) (node layout.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			if se, ok := r.(*sqlerr.Error); ok {
				err = se
				return
			}
			panic(r)
		}
	}()
	root := newSQLEmitter(d)
	root.qualifyWhatever = true
	qb := newQueryBuilder(root, nil)
	return emit.Dispatch(qb.em, e), nil
}

// EmitExpr renders a standalone scalar expression with the indented,
// multi-line renderer, independent of any enclosing query.
func EmitExpr(e algebra.Expr, d Dialect) (string, error) {
	node, err := buildExpr(e, d)
	if err != nil {
		return "", err
	}
	r := layout.NewIndentedRenderer(d.TabUnit)
	r.Render(node)
	return r.String(), nil
}

// EmitCompact composes table against d and renders it on a single line.
func EmitCompact(table algebra.Table, d Dialect) (string, error) {
	node, err := build(table, d)
	if err != nil {
		return "", err
	}
	return layout.RenderCompact(node), nil
}

// EmitUnion renders a top-level UNION ALL of tables, each rendered as its
// own SELECT and joined with the dialect's keyword — UNION composes
// outside the single-scope QueryBuilder model, so it is handled here
// rather than through QueryBuilder.Union, which always reports Unsupported.
func EmitUnion(tables []algebra.Table, d Dialect) (string, layout.TagMap, error) {
	if len(tables) == 0 {
		return "", nil, sqlerr.New(sqlerr.InvalidArgument, "union requires at least one table")
	}

	root := newSQLEmitter(d)
	total := 0
	for _, t := range tables {
		total += countComposites(t)
	}
	root.qualifyWhatever = total+len(tables)-1 <= 1

	nodes, err := buildUnionMembers(root, tables)
	if err != nil {
		return "", nil, err
	}

	doc := &layout.Roster{}
	unionAll := fmt.Sprintf("%s %s", root.keyword("union"), root.keyword("all"))
	for i, n := range nodes {
		if i > 0 {
			doc.Line(unionAll)
		}
		doc.Add(n)
	}
	r := layout.NewIndentedRenderer(d.TabUnit)
	r.Render(doc)
	return r.String(), r.Tags(), nil
}

func buildUnionMembers(root *SQLEmitter, tables []algebra.Table) (nodes []layout.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*sqlerr.Error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	for _, t := range tables {
		qb := newQueryBuilder(root, nil)
		if cerr := emit.Compose(qb, t); cerr != nil {
			return nil, cerr
		}
		nodes = append(nodes, qb.render())
	}
	return nodes, nil
}
