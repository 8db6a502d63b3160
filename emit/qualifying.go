package emit

import (
	"github.com/sqlforge/sqlforge/algebra"
	"github.com/sqlforge/sqlforge/layout"
)

// QualifyingDecorator prefixes every Item reference with a source
// qualifier: Item(name) becomes "q.name".
type QualifyingDecorator struct {
	emitterDecorator
	Qualifier string
}

func NewQualifyingDecorator(e Emitter, qualifier string) *QualifyingDecorator {
	return &QualifyingDecorator{emitterDecorator{e}, qualifier}
}

func (d *QualifyingDecorator) Item(x *algebra.Item) layout.Node {
	return layout.NewLine(d.Qualifier + "." + x.Name)
}
