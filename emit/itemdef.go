package emit

import (
	"github.com/sqlforge/sqlforge/algebra"
	"github.com/sqlforge/sqlforge/layout"
)

// ItemDefDecorator expands Item(name) inline to its bound expression when
// name is a locally-defined label; ambiguity is computed on the expansion
// so parenthesization of the substituted expression is correct.
type ItemDefDecorator struct {
	emitterDecorator
	Defs map[string]algebra.Expr
}

func NewItemDefDecorator(e Emitter, defs map[string]algebra.Expr) *ItemDefDecorator {
	return &ItemDefDecorator{emitterDecorator{e}, defs}
}

func (d *ItemDefDecorator) resolve(x algebra.Expr) algebra.Expr {
	if it, ok := x.(*algebra.Item); ok {
		if def, ok := d.Defs[it.Name]; ok {
			return def
		}
	}
	return x
}

func (d *ItemDefDecorator) Ambiguous(x, outer algebra.Expr) bool {
	return d.emitterDecorator.Ambiguous(d.resolve(x), outer)
}

func (d *ItemDefDecorator) Item(x *algebra.Item) layout.Node {
	if def, ok := d.Defs[x.Name]; ok {
		return Dispatch(d, def)
	}
	return d.emitterDecorator.Item(x)
}
