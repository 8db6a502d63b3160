package algebra

// Table is the closed sum of table-operator variants, rooted at Primary or
// Union. Composition dispatches on the concrete type via a type switch in
// package emit.
type Table interface {
	table()
}

// Binding pairs a label with the expression that defines it.
type Binding struct {
	Name string
	Expr Expr
}

// Primary is a base table reference.
type Primary struct{ Name string }

// Union concatenates the rows of its member tables (UNION ALL).
type Union struct{ Tables []Table }

// Qualify requests that every item reference under Parent be qualified,
// defaulting the qualifier to the principal source name.
type Qualify struct{ Parent Table }

// Alias sets Parent's qualifier and principal alias to Name.
type Alias struct {
	Parent Table
	Name   string
}

// Nest wraps Parent as the principal_query of a new outer scope, aliased to
// Alias (or a derived default when empty).
type Nest struct {
	Parent Table
	Alias  string
}

// Include restricts Parent's visible labels to Labels, which must all
// already be present.
type Include struct {
	Parent Table
	Labels []string
}

// Exclude removes Labels from Parent's visible labels.
type Exclude struct {
	Parent Table
	Labels []string
}

// Rename applies Map (old name -> new name) to Parent's labels.
type Rename struct {
	Parent Table
	Map    map[string]string
}

// Define extends Parent's labels with new, locally-computed bindings.
type Define struct {
	Parent   Table
	Bindings []Binding
}

// Redefine replaces Parent's labels entirely with Bindings, in the order
// given.
type Redefine struct {
	Parent   Table
	Bindings []Binding
}

// Where accumulates Pred as a WHERE conjunct, or a HAVING conjunct if a
// Group has already been applied in this chain.
type Where struct {
	Parent Table
	Pred   Expr
}

// Group sets Parent's labels to Labels and switches subsequent Where calls
// to HAVING semantics. A second Group in one chain forces an implicit Nest.
type Group struct {
	Parent Table
	Labels []string
}

// Assign is a DML-style column assignment list. Inserting and UpdatingAll
// replace it with their own SetList.
type Assign struct {
	Parent   Table
	Bindings []Binding
}

// Distinct marks Parent's selection as DISTINCT.
type Distinct struct{ Parent Table }

// OrderBy appends Exprs as ORDER BY terms.
type OrderBy struct {
	Parent Table
	Exprs  []Expr
}

// Slice bounds the result to [First, AfterLast). A negative bound means
// unset.
type Slice struct {
	Parent           Table
	First, AfterLast int
}

// InnerJoin, OuterJoin, CrossJoin join Left and Right.
type InnerJoin struct{ Left, Right Table }
type OuterJoin struct{ Left, Right Table }
type CrossJoin struct{ Left, Right Table }

// Inserting compiles Parent into an INSERT using SetList.
type Inserting struct {
	Parent  Table
	SetList []Binding
}

// UpdatingAll compiles Parent into an UPDATE using SetList, carrying any
// accumulated WHERE.
type UpdatingAll struct {
	Parent  Table
	SetList []Binding
}

// DeletingAll compiles Parent into a DELETE, carrying any accumulated
// WHERE.
type DeletingAll struct{ Parent Table }

// Extending compiles Parent and Source into an extend/merge-insert shell.
type Extending struct {
	Parent Table
	Source Table
}

// Merging compiles Parent and Source into a MERGE, with an optional
// insert-bindings list for the WHEN NOT MATCHED arm.
type Merging struct {
	Parent    Table
	Source    Table
	Inserting []Binding
}

func (*Primary) table()     {}
func (*Union) table()       {}
func (*Qualify) table()     {}
func (*Alias) table()       {}
func (*Nest) table()        {}
func (*Include) table()     {}
func (*Exclude) table()     {}
func (*Rename) table()      {}
func (*Define) table()      {}
func (*Redefine) table()    {}
func (*Where) table()       {}
func (*Group) table()       {}
func (*Assign) table()      {}
func (*Distinct) table()    {}
func (*OrderBy) table()     {}
func (*Slice) table()       {}
func (*InnerJoin) table()   {}
func (*OuterJoin) table()   {}
func (*CrossJoin) table()   {}
func (*Inserting) table()   {}
func (*UpdatingAll) table() {}
func (*DeletingAll) table() {}
func (*Extending) table()   {}
func (*Merging) table()     {}
