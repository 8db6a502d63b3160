// Package layout implements the abstract document tree used to render SQL:
// Line, List, Scope, Section, Roster, and Tag nodes, plus a compact
// single-line renderer and an indented multi-line renderer.
package layout

// Node is the closed interface implemented by every document node.
type Node interface {
	node()
	// Inline reports whether this node renders without its own line break.
	Inline() bool
}

func isPunctuation(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}

// Roster is a bare sequence of child nodes.
type Roster struct {
	Subs []Node
}

func (*Roster) node()          {}
func (*Roster) Inline() bool   { return false }
func (r *Roster) Empty() bool  { return len(r.Subs) == 0 }
func (r *Roster) Add(n Node)   { r.Subs = append(r.Subs, n) }
func (r *Roster) NewRoster() *Roster {
	s := &Roster{}
	r.Subs = append(r.Subs, s)
	return s
}
func (r *Roster) NewSection() *Section {
	s := &Section{Header: &Roster{}, Content: &Roster{}}
	r.Subs = append(r.Subs, s)
	return s
}

// Titled starts a Section whose header is a single line with the given
// title, returning the section's content roster for further population.
func (r *Roster) Titled(title string) *Roster {
	s := r.NewSection()
	s.Header.Line(title)
	return s.Content
}

func (r *Roster) NewList(sep string) *List {
	l := NewList(sep)
	r.Subs = append(r.Subs, l)
	return l
}

// NewList builds a standalone List, not yet attached to any Roster. Used by
// callers that build a list speculatively and only attach it once it turns
// out to be non-empty.
func NewList(sep string) *List {
	return &List{Sep: sep, Condense: isPunctuation(sep)}
}

func (r *Roster) NewScope(open, close string) *Scope {
	s := NewScope(open, close)
	r.Subs = append(r.Subs, s)
	return s
}

// NewScope builds a standalone Scope, not yet attached to any Roster. Used
// by callers (such as the emission protocol) that need to wrap an
// already-built fragment in delimiters.
func NewScope(open, close string) *Scope {
	punc := isPunctuation(open) && isPunctuation(close)
	return &Scope{Open: open, Close: close, Condense: punc, inline: punc}
}

// Line appends a new Line built from words to this roster.
func (r *Roster) Line(words ...any) *Line {
	l := NewLine(words...)
	r.Subs = append(r.Subs, l)
	return l
}

// Section is a header line followed by an indented content block.
type Section struct {
	Header  *Roster
	Content *Roster
}

func (*Section) node()        {}
func (*Section) Inline() bool { return false }
func (s *Section) Empty() bool {
	return s.Header.Empty() && s.Content.Empty()
}

// List joins its items with a separator; if the separator is pure
// punctuation, the space before it is elided.
type List struct {
	Roster
	Sep      string
	Condense bool
}

func (*List) node() {}

// Scope delimits its items with an opening and closing token; if both
// tokens are pure punctuation the scope renders inline with no internal
// spaces.
type Scope struct {
	Roster
	Open, Close string
	Condense    bool
	inline      bool
}

func (s *Scope) Inline() bool { return s.inline }

// Line concatenates its words separated by single spaces.
type Line struct {
	Words []any
}

func NewLine(words ...any) *Line {
	l := &Line{}
	l.Word(words...)
	return l
}

func (*Line) node()        {}
func (*Line) Inline() bool { return true }
func (l *Line) Empty() bool {
	return len(l.Words) == 0
}

// Word appends words to the line. A *Line argument is flattened into this
// line's word list.
func (l *Line) Word(words ...any) {
	for _, w := range words {
		if sub, ok := w.(*Line); ok {
			l.Words = append(l.Words, sub.Words...)
		} else {
			l.Words = append(l.Words, w)
		}
	}
}

// JoinLines joins items into a single Line, inserting sep between each.
func JoinLines(sep string, items []any) *Line {
	l := &Line{}
	first := true
	for _, x := range items {
		if sep != "" && !first {
			l.Word(sep)
		}
		l.Word(x)
		first = false
	}
	return l
}

// Tag wraps an item transparently, recording its rendered span under name.
type Tag struct {
	Item Node
	Name string
}

func (*Tag) node() {}
func (t *Tag) Inline() bool {
	return t.Item.Inline()
}
