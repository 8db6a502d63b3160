package emit

import (
	"github.com/sqlforge/sqlforge/algebra"
	"github.com/sqlforge/sqlforge/layout"
	"github.com/sqlforge/sqlforge/sqlerr"
)

// InclusionDecorator restricts Item references to a visible label set,
// panicking with a *sqlerr.Error (recovered at the top-level Emit entry
// point) when a name outside that set is referenced.
type InclusionDecorator struct {
	emitterDecorator
	Visible map[string]bool
}

func NewInclusionDecorator(e Emitter, visible []string) *InclusionDecorator {
	set := make(map[string]bool, len(visible))
	for _, n := range visible {
		set[n] = true
	}
	return &InclusionDecorator{emitterDecorator{e}, set}
}

func (d *InclusionDecorator) Item(x *algebra.Item) layout.Node {
	if !d.Visible[x.Name] {
		panic(sqlerr.Withf(sqlerr.NotFound, x.Name, "item %q is not included in this scope", x.Name))
	}
	return d.emitterDecorator.Item(x)
}

// ExclusionDecorator hides a set of Item references, panicking with a
// *sqlerr.Error when an excluded name is referenced.
type ExclusionDecorator struct {
	emitterDecorator
	Hidden map[string]bool
}

func NewExclusionDecorator(e Emitter, hidden []string) *ExclusionDecorator {
	set := make(map[string]bool, len(hidden))
	for _, n := range hidden {
		set[n] = true
	}
	return &ExclusionDecorator{emitterDecorator{e}, set}
}

func (d *ExclusionDecorator) Item(x *algebra.Item) layout.Node {
	if d.Hidden[x.Name] {
		panic(sqlerr.Withf(sqlerr.NotFound, x.Name, "item %q is excluded from this scope", x.Name))
	}
	return d.emitterDecorator.Item(x)
}
