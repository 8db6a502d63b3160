package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompactLine(t *testing.T) {
	ln := NewLine("SELECT", "A")
	assert.Equal(t, "SELECT A", RenderCompact(ln))
}

func TestCompactList(t *testing.T) {
	r := &Roster{}
	lst := r.NewList(",")
	lst.Line("A")
	lst.Line("B")
	lst.Line("C")
	assert.Equal(t, "A, B, C", RenderCompact(r))
}

func TestCompactScopeElidesSpace(t *testing.T) {
	r := &Roster{}
	scp := r.NewScope("(", ")")
	scp.Line("A")
	assert.Equal(t, "(A)", RenderCompact(r))
}

func TestCompactSections(t *testing.T) {
	r := &Roster{}
	sel := r.Titled("SELECT")
	sel.Line("*")
	from := r.Titled("FROM")
	from.Line("TABLE")
	assert.Equal(t, "SELECT * FROM TABLE", RenderCompact(r))
}

func TestIndentedSections(t *testing.T) {
	r := &Roster{}
	sel := r.Titled("SELECT")
	sel.Line("*")
	from := r.Titled("FROM")
	from.Line("TABLE")
	want := "SELECT\n  *\nFROM\n  TABLE"
	assert.Equal(t, want, RenderIndented(r))
}

func TestIndentedNestedScope(t *testing.T) {
	r := &Roster{}
	sel := r.Titled("SELECT")
	sel.Line("*")
	from := r.Titled("FROM")
	inner := &Roster{}
	innerSel := inner.Titled("SELECT")
	innerSel.Line("*")
	innerFrom := inner.Titled("FROM")
	innerFrom.Line("TABLE")

	ln := from.Line()
	scp := &Scope{Open: "(", Close: ")", Condense: true, inline: true}
	scp.Subs = inner.Subs
	ln.Word(scp, "t")

	want := "SELECT\n  *\nFROM\n  (\n    SELECT\n      *\n    FROM\n      TABLE\n  ) t"
	assert.Equal(t, want, RenderIndented(r))
}

func TestIndentedListBreaksPerItem(t *testing.T) {
	r := &Roster{}
	sel := r.Titled("SELECT")
	lst := sel.NewList(",")
	lst.Line("A")
	lst.Line("B")
	want := "SELECT\n  A,\n  B"
	assert.Equal(t, want, RenderIndented(r))
}

func TestTagSpanIndented(t *testing.T) {
	r := &Roster{}
	tag := &Tag{Name: "price", Item: NewLine("PRICE")}
	r.Add(tag)
	r.Add(NewLine("USED"))
	renderer := NewIndentedRenderer("")
	renderer.Render(r)
	spans := renderer.Tags()["price"]
	if assert.Len(t, spans, 1) {
		out := renderer.String()
		assert.Equal(t, "PRICE", out[spans[0].Start:spans[0].End])
	}
}

func TestLineFlattensNestedLine(t *testing.T) {
	inner := NewLine("A", "B")
	outer := NewLine("X", inner, "Y")
	assert.Equal(t, "X A B Y", RenderCompact(outer))
}
