// Package dialect renders an algebra tree into SQL text for a concrete
// target dialect: a Dialect knob struct, a SQLEmitter/QueryBuilder pair
// implementing the emit.Emitter/emit.Composer protocol, and the Emit entry
// point that drives the whole pipeline from algebra.Table to rendered text.
package dialect

// Dialect configures the syntax variations between SQL targets. Fields left
// at their zero value behave like the most conservative ANSI-leaning
// profile; Default returns a filled-in starting point.
type Dialect struct {
	// TabUnit is the indentation unit used by the indented renderer.
	TabUnit string

	// ConcatByFunction renders Concat as a function call (e.g. CONCAT(a, b))
	// instead of an infix operator chain.
	ConcatByFunction bool
	// ConcatFunctionMultiArgs reports whether the concat function accepts
	// more than two arguments at once; when false, a multi-argument Concat
	// is folded into nested two-argument calls.
	ConcatFunctionMultiArgs bool
	// ConcatOperator is the infix operator used when ConcatByFunction is
	// false.
	ConcatOperator string

	// NowLiteral is the literal text substituted for algebra.Now.
	NowLiteral string
	// NextValTemplate is a fmt.Sprintf template taking the sequence name,
	// substituted for algebra.NextVal.
	NextValTemplate string

	// UseAsForSourceAlias/UseAsForResultAlias control whether the AS
	// keyword precedes a FROM-clause source alias / a SELECT-list column
	// alias.
	UseAsForSourceAlias bool
	UseAsForResultAlias bool

	// UseJoinClause renders joins as JOIN ... ON ... clauses; when false,
	// joined sources are listed comma-separated in FROM with predicates
	// folded into WHERE instead (not implemented — reports Unsupported).
	UseJoinClause bool

	// ParamPrefix precedes a named bind parameter (e.g. ":" or "@").
	ParamPrefix string
	// BindByName renders parameters by name with ParamPrefix; when false,
	// positional "?" placeholders are used instead.
	BindByName bool

	// UseLimitOffset renders Slice as a trailing LIMIT/OFFSET clause. It is
	// the only slicing strategy rendered: with it unset, a Slice reports
	// Unsupported whatever UseRownum/UseAnalyticRowNumber say.
	UseLimitOffset bool
	// UseRownum selects a ROWNUM predicate for Slice; no renderer reads it,
	// so ROWNUM pagination is not produced.
	UseRownum bool
	// UseAnalyticRowNumber selects an analytic ROW_NUMBER() OVER wrapper for
	// Slice; no renderer reads it, so that wrapper is not produced.
	UseAnalyticRowNumber bool

	// MultiColumnsIn allows IsIn/NotIn membership sets with tuple items
	// (not implemented beyond single-column membership — reserved for a
	// future dialect).
	MultiColumnsIn bool

	// UniqueQualifiers requests that every qualifier in a query, including
	// nested guest queries, be unique across the whole root emission
	// rather than just within its immediate parent scope.
	UniqueQualifiers bool

	// TypeReprs/ConstReprs let a caller override how a Cast target type
	// name or a constant value renders its literal text, keyed by the
	// type name / Go dynamic type name respectively.
	TypeReprs  map[string]func(string) string
	ConstReprs map[string]func(any) string

	// LockSupport enables trailing row-locking clauses on SELECT.
	LockSupport bool
	// LockSelectEnding is appended verbatim (e.g. "FOR UPDATE") as the last
	// line of every SELECT when LockSupport is set. LockTableEnding (e.g.
	// "FOR UPDATE OF t") is carried in the profile but not rendered.
	LockSelectEnding string
	LockTableEnding  string
}

// Default returns an ANSI-leaning dialect profile: two-space indent,
// function-style CONCAT, AS before result aliases only, JOIN clauses,
// named ":name" parameters, and LIMIT/OFFSET slicing.
func Default() Dialect {
	return Dialect{
		TabUnit:                 "  ",
		ConcatByFunction:        true,
		ConcatFunctionMultiArgs: true,
		ConcatOperator:          "||",
		NowLiteral:              "CURRENT_TIMESTAMP",
		NextValTemplate:         "%s.NEXTVAL",
		UseAsForResultAlias:     true,
		UseJoinClause:           true,
		ParamPrefix:             ":",
		BindByName:              true,
		UseLimitOffset:          true,
	}
}
