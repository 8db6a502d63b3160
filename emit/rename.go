package emit

import (
	"github.com/sqlforge/sqlforge/algebra"
	"github.com/sqlforge/sqlforge/layout"
)

// RenameDecorator makes Item(new) emit the pre-rename source name: the
// inverse of the rename mapping applied when the label set was computed.
type RenameDecorator struct {
	emitterDecorator
	new2old map[string]string
}

func NewRenameDecorator(e Emitter, renamings map[string]string) *RenameDecorator {
	inv := make(map[string]string, len(renamings))
	for old, new := range renamings {
		inv[new] = old
	}
	return &RenameDecorator{emitterDecorator{e}, inv}
}

func (d *RenameDecorator) Item(x *algebra.Item) layout.Node {
	name := x.Name
	if old, ok := d.new2old[name]; ok {
		name = old
	}
	return d.emitterDecorator.Item(&algebra.Item{Name: name})
}
