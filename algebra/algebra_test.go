package algebra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeCoercion(t *testing.T) {
	assert.Equal(t, &Constant{V: nil}, Make(nil))
	assert.Equal(t, &Constant{V: true}, Make(true))
	assert.Equal(t, &Constant{V: 5}, Make(5))
	existing := &Item{Name: "A"}
	assert.Same(t, existing, Make(existing))
	lst := Make([]any{1, 2})
	_, ok := lst.(*ExpressionList)
	assert.True(t, ok)
}

func TestParenBlocksFlattening(t *testing.T) {
	inner := Plus(Ident("A"), Ident("B"))
	wrapped := Paren(inner)
	outer := Plus(Ident("X"), wrapped, Ident("Y"))
	sum := outer.(*Summarize)
	require.Len(t, sum.Args, 3)
	_, ok := sum.Args[1].(*Parentheses)
	assert.True(t, ok, "explicitly parenthesized operand must not be flattened away")
}

func TestAndFlattensNested(t *testing.T) {
	e := And(Ident("A"), And(Ident("B"), Ident("C")))
	a := e.(*And)
	assert.Len(t, a.Args, 3)
}

func TestOrFlattensNested(t *testing.T) {
	e := Or(Ident("A"), Or(Ident("B"), Ident("C")))
	o := e.(*Or)
	assert.Len(t, o.Args, 3)
}

func TestSummarizeFlattensLeftAssociativeChain(t *testing.T) {
	e := Plus(Plus(Ident("A"), Ident("B")), Const(1), Const(2))
	sum := e.(*Summarize)
	assert.Len(t, sum.Args, 4)
}

func TestIncludeLabels(t *testing.T) {
	got, err := IncludeLabels(Labels{"A", "B", "C"}, []string{"A", "C"})
	require.NoError(t, err)
	assert.Equal(t, Labels{"A", "C"}, got)

	_, err = IncludeLabels(Labels{"A"}, []string{"Z"})
	require.Error(t, err)
}

func TestExcludeLabels(t *testing.T) {
	got, err := ExcludeLabels(Labels{"A", "B", "C"}, []string{"B"})
	require.NoError(t, err)
	assert.Equal(t, Labels{"A", "C"}, got)

	_, err = ExcludeLabels(Labels{"A"}, []string{"Z"})
	require.Error(t, err)
}

func TestRenameLabels(t *testing.T) {
	got, err := RenameLabels(Labels{"PRICE", "COST"}, map[string]string{"PRICE": "Cost", "COST": "Price"})
	require.NoError(t, err)
	assert.Equal(t, Labels{"Cost", "Price"}, got)

	_, err = RenameLabels(Labels{"A", "B"}, map[string]string{"A": "X", "B": "X"})
	require.Error(t, err)
}

func TestDefineAndRedefineLabels(t *testing.T) {
	base := Labels{"A", "B"}
	got := DefineLabels(base, []Binding{Bind("C", Ident("X"))})
	assert.Equal(t, Labels{"A", "B", "C"}, got)

	got2 := RedefineLabels([]Binding{Bind("Y", Const(1)), Bind("Z", Const(2))})
	assert.Equal(t, Labels{"Y", "Z"}, got2)
}

func TestGroupLabels(t *testing.T) {
	assert.Equal(t, Labels{"A"}, GroupLabels([]string{"A"}))
}

func TestChainBuildsPersistentTree(t *testing.T) {
	base := From("TABLE")
	a := base.Include("A", "B")
	b := base.Where(Gt(Ident("PRICE"), Const(100)))

	inc, ok := a.Table.(*Include)
	require.True(t, ok)
	assert.Same(t, base.Table, inc.Parent)

	w, ok := b.Table.(*Where)
	require.True(t, ok)
	assert.Same(t, base.Table, w.Parent)
}

func TestReleaseConstantClearsValue(t *testing.T) {
	c := GetConstant(1)
	ReleaseConstant(c)
	assert.Equal(t, nil, c.V)
}
