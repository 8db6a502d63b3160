package algebra

import "github.com/sqlforge/sqlforge/sqlerr"

// Labels is an ordered, uniquely-valued tuple of column names.
type Labels []string

func (l Labels) contains(name string) bool {
	for _, n := range l {
		if n == name {
			return true
		}
	}
	return false
}

func (l Labels) without(names []string) Labels {
	drop := map[string]bool{}
	for _, n := range names {
		drop[n] = true
	}
	out := make(Labels, 0, len(l))
	for _, n := range l {
		if !drop[n] {
			out = append(out, n)
		}
	}
	return out
}

// IncludeLabels computes Include(L, I): I itself, provided every element of
// I already appears in L.
func IncludeLabels(l Labels, include []string) (Labels, error) {
	for _, n := range include {
		if !l.contains(n) {
			return nil, sqlerr.Withf(sqlerr.NotFound, n, "include: label %q not in scope", n)
		}
	}
	return append(Labels{}, include...), nil
}

// ExcludeLabels computes Exclude(L, X): L with X removed.
func ExcludeLabels(l Labels, exclude []string) (Labels, error) {
	for _, n := range exclude {
		if !l.contains(n) {
			return nil, sqlerr.Withf(sqlerr.NotFound, n, "exclude: label %q not in scope", n)
		}
	}
	return l.without(exclude), nil
}

// RenameLabels computes Rename(L, M): applies M to L; every source key must
// be present in L, and no two labels may collide on the same target name.
func RenameLabels(l Labels, m map[string]string) (Labels, error) {
	for from := range m {
		if !l.contains(from) {
			return nil, sqlerr.Withf(sqlerr.InvalidArgument, from, "rename: source label %q not in scope", from)
		}
	}
	seen := map[string]bool{}
	out := make(Labels, len(l))
	for i, n := range l {
		target := n
		if to, ok := m[n]; ok {
			target = to
		}
		if seen[target] {
			return nil, sqlerr.Withf(sqlerr.InvalidArgument, target, "rename: duplicate target label %q", target)
		}
		seen[target] = true
		out[i] = target
	}
	return out, nil
}

// DefineLabels computes Define(L, D): L extended by keys of D not already
// present, in the order D's bindings are given.
func DefineLabels(l Labels, bindings []Binding) Labels {
	out := append(Labels{}, l...)
	for _, b := range bindings {
		if !out.contains(b.Name) {
			out = append(out, b.Name)
		}
	}
	return out
}

// RedefineLabels computes Redefine(_, D): the keys of D, in the order
// given, replacing the prior label set entirely.
func RedefineLabels(bindings []Binding) Labels {
	out := make(Labels, len(bindings))
	for i, b := range bindings {
		out[i] = b.Name
	}
	return out
}

// GroupLabels computes Group(L, G): G, unconditionally.
func GroupLabels(group []string) Labels {
	return append(Labels{}, group...)
}
