package dialect

import (
	"github.com/sqlforge/sqlforge/algebra"
	"github.com/sqlforge/sqlforge/emit"
	"github.com/sqlforge/sqlforge/sqlerr"
)

type whereTerm struct {
	em   emit.Emitter
	pred algebra.Expr
}

type orderTerm struct {
	em   emit.Emitter
	expr algebra.Expr
}

type joinTerm struct {
	kind string // "inner", "outer", "cross"
	qb   *QueryBuilder
}

// QueryBuilder is the mutable per-SELECT-scope state built by composing an
// algebra.Table tree onto it. It plays both halves of the emission
// protocol: it is an emit.Composer (its methods mutate its own fields) and
// an emit.Emitter (its base methods render Item/Constant/etc. in its own
// scope), matching how decorators layered via Rename/Define/ItemDef wrap
// whatever emit.Emitter it currently is.
type QueryBuilder struct {
	root *SQLEmitter
	host *QueryBuilder // nil for the outermost query

	qualifier          string
	qualifierFinalized bool

	principalTable string
	principalQuery *QueryBuilder
	principalAlias string

	joins []joinTerm

	wheres  []whereTerm
	grouped bool
	groupBy []string
	havings []whereTerm

	orderBy          []orderTerm
	selectDistinct   bool
	hasFirst         bool
	first            int
	hasAfterLast     bool
	afterLast        int

	labels    []string
	labelsSet bool
	aliasings map[string]bool

	qualifiers map[string]bool // finalized qualifiers of direct guest queries

	// DML payload, set by a terminal composer call.
	command string // "", "insert", "update", "delete", "extend", "merge"
	setList []algebra.Binding

	// extendSource/mergeSource hold the guest scope for Extending/Merging's
	// Source table; mergeInsert holds Merging's optional insert bindings
	// for its WHEN NOT MATCHED arm.
	extendSource *QueryBuilder
	mergeSource  *QueryBuilder
	mergeInsert  []algebra.Binding

	// em is the current rendering chain for this scope's own expressions;
	// it starts as qb itself and gets wrapped by Rename/Define/Redefine.
	em emit.Emitter
}

func newQueryBuilder(root *SQLEmitter, host *QueryBuilder) *QueryBuilder {
	qb := &QueryBuilder{
		root:      root,
		host:      host,
		aliasings: map[string]bool{},
		qualifiers: map[string]bool{},
	}
	qb.em = qb
	return qb
}

func (qb *QueryBuilder) aliasProposal() string {
	if qb.principalTable != "" {
		return qb.principalTable
	}
	if qb.principalQuery != nil {
		return qb.principalQuery.aliasProposal()
	}
	return "t"
}

func (qb *QueryBuilder) guest() *QueryBuilder {
	return newQueryBuilder(qb.root, qb)
}

// ConcatByFunction/Ambiguous/Composer satisfy emit.Emitter directly; actual
// rendering of Item/Constant/etc. lives in scalar.go.

func (qb *QueryBuilder) ConcatByFunction() bool { return qb.root.Dialect.ConcatByFunction }

func (qb *QueryBuilder) Ambiguous(x, outer algebra.Expr) bool {
	return emit.BaseAmbiguous(qb, x, outer)
}

func (qb *QueryBuilder) Composer() emit.Composer { return qb }

// --- emit.Composer: table-operator composition ---

func (qb *QueryBuilder) Primary(x *algebra.Primary) error {
	if qb.principalTable != "" || qb.principalQuery != nil {
		return sqlerr.New(sqlerr.Assertion, "primary source already set in this scope")
	}
	if x.Name == "" {
		return sqlerr.New(sqlerr.InvalidArgument, "empty table name is not allowed")
	}
	qb.principalTable = x.Name
	return nil
}

func (qb *QueryBuilder) Union(x *algebra.Union) error {
	return sqlerr.New(sqlerr.Unsupported, "Union composes via dialect.Emit's union path, not QueryBuilder.Union")
}

func (qb *QueryBuilder) Qualify(x *algebra.Qualify) error {
	if err := emit.Compose(qb, x.Parent); err != nil {
		return err
	}
	return qb.ensureQualifier()
}

// ensureQualifier defaults qb's qualifier to its principal table name when
// nothing has set one explicitly yet (via Alias or Nest).
func (qb *QueryBuilder) ensureQualifier() error {
	if qb.qualifier != "" {
		return nil
	}
	if qb.principalTable == "" {
		return sqlerr.New(sqlerr.Assertion, "qualify: no principal table to derive a qualifier from")
	}
	qb.qualifier = qb.principalTable
	return nil
}

func (qb *QueryBuilder) Alias(x *algebra.Alias) error {
	if err := emit.Compose(qb, x.Parent); err != nil {
		return err
	}
	qb.qualifier = x.Name
	qb.principalAlias = x.Name
	return nil
}

func (qb *QueryBuilder) Nest(x *algebra.Nest) error {
	inner := newQueryBuilder(qb.root, qb.host)
	if err := emit.Compose(inner, x.Parent); err != nil {
		return err
	}
	alias := x.Alias
	if alias == "" {
		alias = inner.aliasProposal()
	}
	qb.principalQuery = inner
	qb.principalAlias = alias
	qb.qualifier = alias
	return nil
}

func (qb *QueryBuilder) Include(x *algebra.Include) error {
	if err := emit.Compose(qb, x.Parent); err != nil {
		return err
	}
	// A bare table's labels are unknown until an operator sets them, so the
	// included names are then taken as given.
	labels := append([]string{}, x.Labels...)
	if qb.labelsSet {
		checked, err := algebra.IncludeLabels(qb.labels, x.Labels)
		if err != nil {
			return err
		}
		labels = checked
	}
	qb.labels, qb.labelsSet = labels, true
	return nil
}

func (qb *QueryBuilder) Exclude(x *algebra.Exclude) error {
	if err := emit.Compose(qb, x.Parent); err != nil {
		return err
	}
	labels, err := algebra.ExcludeLabels(qb.labels, x.Labels)
	if err != nil {
		return err
	}
	qb.labels, qb.labelsSet = labels, true
	return nil
}

func (qb *QueryBuilder) Rename(x *algebra.Rename) error {
	if err := emit.Compose(qb, x.Parent); err != nil {
		return err
	}
	labels, err := algebra.RenameLabels(qb.labels, x.Map)
	if err != nil {
		return err
	}
	qb.em = emit.NewRenameDecorator(qb.em, x.Map)
	qb.labels, qb.labelsSet = labels, true
	for _, to := range x.Map {
		qb.aliasings[to] = true
	}
	return nil
}

func (qb *QueryBuilder) Define(x *algebra.Define) error {
	if err := emit.Compose(qb, x.Parent); err != nil {
		return err
	}
	defs := make(map[string]algebra.Expr, len(x.Bindings))
	for _, b := range x.Bindings {
		defs[b.Name] = b.Expr
	}
	qb.em = emit.NewItemDefDecorator(qb.em, defs)
	qb.labels = algebra.DefineLabels(qb.labels, x.Bindings)
	qb.labelsSet = true
	for _, b := range x.Bindings {
		qb.aliasings[b.Name] = true
	}
	return nil
}

func (qb *QueryBuilder) Redefine(x *algebra.Redefine) error {
	if err := emit.Compose(qb, x.Parent); err != nil {
		return err
	}
	defs := make(map[string]algebra.Expr, len(x.Bindings))
	for _, b := range x.Bindings {
		defs[b.Name] = b.Expr
	}
	qb.em = emit.NewItemDefDecorator(qb.em, defs)
	qb.labels = algebra.RedefineLabels(x.Bindings)
	qb.labelsSet = true
	for _, b := range x.Bindings {
		qb.aliasings[b.Name] = true
	}
	return nil
}

func (qb *QueryBuilder) Where(x *algebra.Where) error {
	if err := emit.Compose(qb, x.Parent); err != nil {
		return err
	}
	term := whereTerm{em: qb.em, pred: x.Pred}
	if !qb.grouped {
		qb.wheres = append(qb.wheres, term)
	} else {
		qb.havings = append(qb.havings, term)
	}
	return nil
}

func (qb *QueryBuilder) Group(x *algebra.Group) error {
	if err := emit.Compose(qb, x.Parent); err != nil {
		return err
	}
	qb.groupBy = append([]string{}, x.Labels...)
	qb.grouped = true
	qb.labels = algebra.GroupLabels(x.Labels)
	qb.labelsSet = true
	return nil
}

func (qb *QueryBuilder) Assign(x *algebra.Assign) error {
	if err := emit.Compose(qb, x.Parent); err != nil {
		return err
	}
	qb.setList = x.Bindings
	return nil
}

func (qb *QueryBuilder) Distinct(x *algebra.Distinct) error {
	if err := emit.Compose(qb, x.Parent); err != nil {
		return err
	}
	if qb.hasFirst || qb.hasAfterLast {
		return sqlerr.New(sqlerr.InvalidArgument, "cannot apply distinct to a sliced query")
	}
	qb.selectDistinct = true
	return nil
}

func (qb *QueryBuilder) OrderBy(x *algebra.OrderBy) error {
	if err := emit.Compose(qb, x.Parent); err != nil {
		return err
	}
	for _, e := range x.Exprs {
		qb.orderBy = append(qb.orderBy, orderTerm{em: qb.em, expr: e})
	}
	return nil
}

func (qb *QueryBuilder) Slice(x *algebra.Slice) error {
	if err := emit.Compose(qb, x.Parent); err != nil {
		return err
	}
	if qb.selectDistinct {
		return sqlerr.New(sqlerr.InvalidArgument, "cannot slice a distinct query")
	}
	first, afterLast := x.First, x.AfterLast
	if qb.hasFirst {
		if first >= 0 {
			first += qb.first
		}
		if afterLast >= 0 {
			afterLast += qb.first
		}
	}
	if first >= 0 {
		qb.first, qb.hasFirst = first, true
	}
	if afterLast >= 0 {
		if !qb.hasAfterLast {
			qb.afterLast, qb.hasAfterLast = afterLast, true
		} else if afterLast < qb.afterLast {
			qb.afterLast = afterLast
		}
	}
	return nil
}

func (qb *QueryBuilder) InnerJoin(x *algebra.InnerJoin) error {
	if err := emit.Compose(qb, x.Left); err != nil {
		return err
	}
	return qb.addJoin("inner", x.Right)
}

func (qb *QueryBuilder) OuterJoin(x *algebra.OuterJoin) error {
	if err := emit.Compose(qb, x.Left); err != nil {
		return err
	}
	return qb.addJoin("outer", x.Right)
}

func (qb *QueryBuilder) CrossJoin(x *algebra.CrossJoin) error {
	if err := emit.Compose(qb, x.Left); err != nil {
		return err
	}
	return qb.addJoin("cross", x.Right)
}

func (qb *QueryBuilder) addJoin(kind string, right algebra.Table) error {
	guest := qb.guest()
	if err := emit.Compose(guest, right); err != nil {
		return err
	}
	qb.joins = append(qb.joins, joinTerm{kind: kind, qb: guest})
	return nil
}

func (qb *QueryBuilder) Inserting(x *algebra.Inserting) error {
	if err := emit.Compose(qb, x.Parent); err != nil {
		return err
	}
	qb.command = "insert"
	qb.setList = x.SetList
	return nil
}

func (qb *QueryBuilder) UpdatingAll(x *algebra.UpdatingAll) error {
	if err := emit.Compose(qb, x.Parent); err != nil {
		return err
	}
	qb.command = "update"
	qb.setList = x.SetList
	return nil
}

func (qb *QueryBuilder) DeleteAll(x *algebra.DeletingAll) error {
	if err := emit.Compose(qb, x.Parent); err != nil {
		return err
	}
	qb.command = "delete"
	return nil
}

func (qb *QueryBuilder) Extending(x *algebra.Extending) error {
	if err := emit.Compose(qb, x.Parent); err != nil {
		return err
	}
	source, err := qb.subquery(x.Source)
	if err != nil {
		return err
	}
	qb.command = "extend"
	qb.extendSource = source
	return nil
}

func (qb *QueryBuilder) Merging(x *algebra.Merging) error {
	if err := emit.Compose(qb, x.Parent); err != nil {
		return err
	}
	source, err := qb.subquery(x.Source)
	if err != nil {
		return err
	}
	qb.command = "merge"
	qb.mergeSource = source
	qb.mergeInsert = x.Inserting
	return nil
}
