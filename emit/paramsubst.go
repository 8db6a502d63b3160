package emit

import (
	"github.com/sqlforge/sqlforge/algebra"
	"github.com/sqlforge/sqlforge/layout"
)

// ParamSubstDecorator expands Parameter(name) inline to its bound
// expression when name is present, with the same ambiguity delegation as
// ItemDefDecorator.
type ParamSubstDecorator struct {
	emitterDecorator
	Params map[string]algebra.Expr
}

func NewParamSubstDecorator(e Emitter, params map[string]algebra.Expr) *ParamSubstDecorator {
	return &ParamSubstDecorator{emitterDecorator{e}, params}
}

func (d *ParamSubstDecorator) resolve(x algebra.Expr) algebra.Expr {
	if p, ok := x.(*algebra.Parameter); ok {
		if def, ok := d.Params[p.Name]; ok {
			return def
		}
	}
	return x
}

func (d *ParamSubstDecorator) Ambiguous(x, outer algebra.Expr) bool {
	return d.emitterDecorator.Ambiguous(d.resolve(x), outer)
}

func (d *ParamSubstDecorator) Parameter(x *algebra.Parameter) layout.Node {
	if def, ok := d.Params[x.Name]; ok {
		return Dispatch(d, def)
	}
	return d.emitterDecorator.Parameter(x)
}
