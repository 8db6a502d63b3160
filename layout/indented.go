package layout

import "strings"

// DefaultIndent is the indentation unit used when none is specified.
const DefaultIndent = "  "

// Span records the start and end character offset of a rendered Tag.
type Span struct {
	Start, End int
}

// TagMap collects the rendered spans of every Tag node encountered, keyed by
// tag name. A tag used more than once accumulates multiple spans, in
// render order.
type TagMap map[string][]Span

type token struct {
	text        string
	spaceBefore bool
}

type iLine struct {
	level  int
	tokens []token
}

func (l *iLine) text(indent string) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(indent, l.level))
	for i, t := range l.tokens {
		if i > 0 && t.spaceBefore {
			b.WriteString(" ")
		}
		b.WriteString(t.text)
	}
	return b.String()
}

func (l *iLine) length(indent string) int {
	return len(indent)*l.level + len(l.text(""))
}

// IndentedRenderer renders a layout tree across multiple lines using a fixed
// indentation unit, tracking the character offsets of any Tag nodes it
// encounters.
type IndentedRenderer struct {
	indent    string
	lines     []*iLine
	level     int
	adjNext   bool
	sealed    int
	sealedLen int
	tags      TagMap
}

// NewIndentedRenderer builds a renderer using indent as its indentation
// unit. An empty indent uses DefaultIndent.
func NewIndentedRenderer(indent string) *IndentedRenderer {
	if indent == "" {
		indent = DefaultIndent
	}
	return &IndentedRenderer{indent: indent, sealed: -1, tags: TagMap{}}
}

// RenderIndented renders n with the default indentation unit, discarding
// tag offsets. Use NewIndentedRenderer directly to recover the tag map.
func RenderIndented(n Node) string {
	r := NewIndentedRenderer(DefaultIndent)
	r.Render(n)
	return r.String()
}

// Render walks n, accumulating output lines and tag spans.
func (r *IndentedRenderer) Render(n Node) {
	r.write(n)
}

// String assembles the accumulated lines into the final text.
func (r *IndentedRenderer) String() string {
	parts := make([]string, len(r.lines))
	for i, l := range r.lines {
		parts[i] = l.text(r.indent)
	}
	return strings.Join(parts, "\n")
}

// Tags returns the tag offset map accumulated during Render.
func (r *IndentedRenderer) Tags() TagMap { return r.tags }

// openLine starts a new line at level+delta, unless the current line is
// still empty, in which case it is reused in place (so an empty line never
// accumulates before real content).
func (r *IndentedRenderer) openLine(delta int) {
	if len(r.lines) > 0 && len(r.lines[len(r.lines)-1].tokens) == 0 {
		return
	}
	r.level += delta
	r.lines = append(r.lines, &iLine{level: r.level})
}

func (r *IndentedRenderer) add(text string) {
	if text == "" {
		return
	}
	if len(r.lines) == 0 {
		r.openLine(0)
	}
	last := r.lines[len(r.lines)-1]
	sb := !r.adjNext && len(last.tokens) > 0
	last.tokens = append(last.tokens, token{text: text, spaceBefore: sb})
	r.adjNext = false
}

func (r *IndentedRenderer) lineLen(i int) int {
	return r.lines[i].length(r.indent)
}

func (r *IndentedRenderer) updateSealed() {
	newSealed := len(r.lines) - 2
	if newSealed < 0 {
		return
	}
	acc := 0
	for i := r.sealed + 1; i <= newSealed; i++ {
		acc += r.lineLen(i) + 1
	}
	r.sealed = newSealed
	r.sealedLen += acc
}

func (r *IndentedRenderer) current() int {
	if len(r.lines) == 0 {
		return 0
	}
	r.updateSealed()
	return r.sealedLen + r.lineLen(len(r.lines)-1)
}

func (r *IndentedRenderer) beginStructure(n Node) int {
	if len(r.lines) == 0 || !n.Inline() {
		r.openLine(0)
	}
	return r.level
}

func (r *IndentedRenderer) endStructure(level int) {
	r.level = level
}

func (r *IndentedRenderer) write(n any) {
	switch t := n.(type) {
	case nil:
		return
	case string:
		r.add(t)
	case *Roster:
		st := r.beginStructure(t)
		for i, s := range t.Subs {
			if i > 0 {
				r.openLine(0)
			}
			r.write(s)
		}
		r.endStructure(st)
	case *Section:
		st := r.beginStructure(t)
		r.write(t.Header)
		r.openLine(1)
		r.write(t.Content)
		r.endStructure(st)
	case *List:
		st := r.beginStructure(t)
		if len(t.Subs) == 0 {
			r.endStructure(st)
			return
		}
		for _, s := range t.Subs[:len(t.Subs)-1] {
			r.write(s)
			r.adjNext = t.Condense
			r.write(t.Sep)
			r.openLine(0)
		}
		r.write(t.Subs[len(t.Subs)-1])
		r.endStructure(st)
	case *Scope:
		st := r.beginStructure(t)
		r.write(t.Open)
		simple := true
		for _, s := range t.Subs {
			if !s.Inline() {
				simple = false
				break
			}
		}
		if simple {
			r.adjNext = t.Condense
			for _, s := range t.Subs {
				r.write(s)
			}
			r.adjNext = t.Condense
		} else {
			r.openLine(1)
			for _, s := range t.Subs {
				r.write(s)
			}
			r.openLine(-1)
		}
		r.write(t.Close)
		r.endStructure(st)
	case *Line:
		st := r.beginStructure(t)
		for _, w := range t.Words {
			if node, ok := w.(Node); ok && !node.Inline() {
				r.openLine(1)
			}
			r.write(w)
		}
		r.endStructure(st)
	case *Tag:
		st := r.beginStructure(t)
		start := r.current()
		r.write(t.Item)
		end := r.current()
		r.tags[t.Name] = append(r.tags[t.Name], Span{Start: start, End: end})
		r.endStructure(st)
	}
}
