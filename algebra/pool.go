package algebra

import "sync"

// Pooled allocation for the expression kinds built most often by the DSL
// (Constant, Item, Parameter, And, Or). A caller that builds and fully
// emits many short-lived trees — e.g. rendering a batch of similarly-shaped
// queries — can use GetX/ReleaseX to cut allocator pressure. Release(e) is
// safe to skip entirely; the pool exists purely to reduce GC churn for
// high-volume callers and is never required for correctness.
//
// Pooling a node is only safe once nothing else still references it: a
// Chain method shares its receiver's subtree with the node it returns, so a
// caller that kept an earlier Chain around must not release any node
// reachable from it.

var (
	constantPool  = sync.Pool{New: func() any { return new(Constant) }}
	itemPool      = sync.Pool{New: func() any { return new(Item) }}
	parameterPool = sync.Pool{New: func() any { return new(Parameter) }}
	andPool       = sync.Pool{New: func() any { return new(And) }}
	orPool        = sync.Pool{New: func() any { return new(Or) }}
)

func GetConstant(v any) *Constant {
	c := constantPool.Get().(*Constant)
	c.V = v
	return c
}

func ReleaseConstant(c *Constant) {
	c.V = nil
	constantPool.Put(c)
}

func GetItem(name string) *Item {
	i := itemPool.Get().(*Item)
	i.Name = name
	return i
}

func ReleaseItem(i *Item) {
	i.Name = ""
	itemPool.Put(i)
}

func GetParameter(name string) *Parameter {
	p := parameterPool.Get().(*Parameter)
	p.Name = name
	return p
}

func ReleaseParameter(p *Parameter) {
	p.Name = ""
	parameterPool.Put(p)
}

func GetAnd(args []Expr) *And {
	a := andPool.Get().(*And)
	a.Args = args
	return a
}

func ReleaseAnd(a *And) {
	a.Args = nil
	andPool.Put(a)
}

func GetOr(args []Expr) *Or {
	o := orPool.Get().(*Or)
	o.Args = args
	return o
}

func ReleaseOr(o *Or) {
	o.Args = nil
	orPool.Put(o)
}

// Release recursively returns e and every pooled descendant to their pools.
// Only the kinds above are pool-backed. Not, Summarize, Sub, Multiply, Div
// and Parentheses are not pooled themselves but are descended into; every
// other kind is skipped together with its children.
func Release(e Expr) {
	switch t := e.(type) {
	case *Constant:
		ReleaseConstant(t)
	case *Item:
		ReleaseItem(t)
	case *Parameter:
		ReleaseParameter(t)
	case *And:
		args := t.Args
		ReleaseAnd(t)
		for _, a := range args {
			Release(a)
		}
	case *Or:
		args := t.Args
		ReleaseOr(t)
		for _, a := range args {
			Release(a)
		}
	case *Not:
		Release(t.E)
	case *Summarize:
		for _, a := range t.Args {
			Release(a)
		}
	case *Sub:
		Release(t.A)
		Release(t.B)
	case *Multiply:
		for _, a := range t.Args {
			Release(a)
		}
	case *Div:
		Release(t.A)
		Release(t.B)
	case *Parentheses:
		Release(t.E)
	}
}
