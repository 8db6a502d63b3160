package layout

import "strings"

// RenderCompact renders the tree on a single line with single spaces between
// words, eliding the space before pure-punctuation separators and around
// punctuation-bounded scopes.
func RenderCompact(n Node) string {
	v := &compactVisitor{}
	v.write(n)
	return strings.Join(v.items, " ")
}

type compactVisitor struct {
	items   []string
	adjNext bool
}

func (v *compactVisitor) writeItem(s string) {
	if s == "" {
		return
	}
	if len(v.items) > 0 && v.adjNext {
		v.items[len(v.items)-1] += s
	} else {
		v.items = append(v.items, s)
	}
	v.adjNext = false
}

func (v *compactVisitor) write(n any) {
	switch t := n.(type) {
	case nil:
		return
	case string:
		v.writeItem(t)
	case *Roster:
		for _, s := range t.Subs {
			v.write(s)
		}
	case *Section:
		v.write(t.Header)
		v.write(t.Content)
	case *List:
		if len(t.Subs) == 0 {
			return
		}
		for _, s := range t.Subs[:len(t.Subs)-1] {
			v.write(s)
			v.adjNext = t.Condense
			v.write(t.Sep)
		}
		v.write(t.Subs[len(t.Subs)-1])
	case *Scope:
		v.write(t.Open)
		v.adjNext = t.Condense
		for _, s := range t.Subs {
			v.write(s)
		}
		v.adjNext = t.Condense
		v.write(t.Close)
	case *Line:
		for _, w := range t.Words {
			v.write(w)
		}
	case *Tag:
		v.write(t.Item)
	}
}
