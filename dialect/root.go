package dialect

import "strings"

// SQLEmitter holds the state shared by every QueryBuilder spawned during one
// Emit call: the dialect profile and the root-level qualifier-collision
// registry. It is not itself an emit.Emitter — QueryBuilder plays that role,
// consulting the SQLEmitter it was built from for dialect knobs and the
// shared qualifier bookkeeping.
type SQLEmitter struct {
	Dialect Dialect

	// qualifyWhatever is set once, before composition begins, by counting
	// how many composite (subquery-bearing) sources the whole tree
	// contains. With at most one, qualification is never ambiguous and
	// every qualifier is skipped — grounded on has_many_composites /
	// CheckCompositeEmitter in the source this package is based on.
	qualifyWhatever bool

	// qualifiers collects every qualifier finalized anywhere in the tree
	// when Dialect.UniqueQualifiers is set; otherwise each query scope
	// tracks collisions only against its own direct guest queries.
	qualifiers map[string]bool
}

func newSQLEmitter(d Dialect) *SQLEmitter {
	return &SQLEmitter{Dialect: d, qualifiers: map[string]bool{}}
}

func (r *SQLEmitter) keyword(s string) string { return strings.ToUpper(s) }
