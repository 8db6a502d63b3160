// Package sqlforge builds SQL query text from an in-memory relational
// algebra instead of string concatenation. A query starts from From and is
// shaped with chained operations (Include, Where, Define, Rename, joins);
// Emit walks the finished Table and renders it through a Dialect.
//
// Basic usage:
//
//	tbl := sqlforge.From("ORDERS").
//		Include("ORDER_ID", "CUST_ID", "TOTAL").
//		Where(sqlforge.Gt(sqlforge.Ident("TOTAL"), sqlforge.Const(100))).Table
//
//	sql, tags, err := sqlforge.Emit(tbl, sqlforge.Default())
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(sql)
//
// Rendering a single expression without a surrounding query:
//
//	sql, err := sqlforge.EmitExpr(sqlforge.Plus(sqlforge.Ident("A"), sqlforge.Const(1)), sqlforge.Default())
//
// Editing a text template by tagged region:
//
//	tpl, err := template.New(text, regions)
//	err = tpl.Set("price", "COST")
package sqlforge

import (
	"github.com/sqlforge/sqlforge/algebra"
	"github.com/sqlforge/sqlforge/dialect"
	"github.com/sqlforge/sqlforge/layout"
)

// Table is the interface implemented by every algebra relation node.
type Table = algebra.Table

// Expr is the interface implemented by every algebra scalar node.
type Expr = algebra.Expr

// Chain is a Table under construction, carrying the fluent builder methods
// (Include, Where, Define, joins, and so on).
type Chain = algebra.Chain

// Binding pairs a label with the expression that defines it, used by
// Define/Redefine/Assign/Inserting/UpdatingAll/Merging.
type Binding = algebra.Binding

// CaseWhen and SwitchCase are the arm types for When and SwitchOn.
type (
	CaseWhen   = algebra.CaseWhen
	SwitchCase = algebra.SwitchCase
)

// Dialect configures the syntax variations between SQL targets.
type Dialect = dialect.Dialect

// TagMap reports the rendered character spans of any tagged fragment
// encountered while emitting a Table.
type TagMap = layout.TagMap

// Default returns a conservative, ANSI-leaning Dialect.
func Default() Dialect { return dialect.Default() }

// From starts a new query chain rooted at the named source table.
func From(name string) Chain { return algebra.From(name) }

// UnionOf starts a new query chain that unions the given tables.
func UnionOf(tables ...Table) Chain { return algebra.UnionOf(tables...) }

// Bind pairs name with e for use in Define, Redefine, Assign, Inserting,
// UpdatingAll, and Merging.
func Bind(name string, e Expr) Binding { return algebra.Bind(name, e) }

// Scalar constructors mirror algebra's DSL one-to-one: identifiers and
// literals, arithmetic, comparisons, logical connectives, and the
// conditional forms.
var (
	Ident = algebra.Ident
	Host  = algebra.Host
	Param = algebra.Param
	Val   = algebra.Val
	Const = algebra.Const

	And = algebra.And
	Or  = algebra.Or
	Not = algebra.Not

	Plus     = algebra.Plus
	Minus    = algebra.Minus
	Times    = algebra.Times
	DivideBy = algebra.DivideBy
	Cat      = algebra.Cat
	NegOf    = algebra.NegOf
	PosOf    = algebra.PosOf

	Eq = algebra.Eq
	Ne = algebra.Ne
	Lt = algebra.Lt
	Le = algebra.Le
	Ge = algebra.Ge
	Gt = algebra.Gt

	IsBetween   = algebra.IsBetween
	IsNullOf    = algebra.IsNullOf
	IsNotNullOf = algebra.IsNotNullOf
	InList      = algebra.InList
	NotInList   = algebra.NotInList
	LikePattern = algebra.LikePattern
	When        = algebra.When
	SwitchOn    = algebra.SwitchOn
)

// Emit renders tbl as multi-line, indented SQL, returning the rendered text
// alongside a map of any tagged fragment's character spans within it.
func Emit(tbl Table, d Dialect) (string, TagMap, error) {
	return dialect.Emit(tbl, d)
}

// EmitCompact renders tbl as single-line SQL.
func EmitCompact(tbl Table, d Dialect) (string, error) {
	return dialect.EmitCompact(tbl, d)
}

// EmitExpr renders a bare scalar expression, outside of any surrounding
// query, as multi-line indented SQL.
func EmitExpr(e Expr, d Dialect) (string, error) {
	return dialect.EmitExpr(e, d)
}

// EmitUnion renders a slice of tables as a single UNION ALL query.
func EmitUnion(tables []Table, d Dialect) (string, TagMap, error) {
	return dialect.EmitUnion(tables, d)
}
