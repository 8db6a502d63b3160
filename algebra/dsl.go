package algebra

// Chain wraps a Table so DSL operators can be applied fluently; every method
// returns a new Chain over a new node sharing the receiver as its parent.
type Chain struct{ Table }

func Wrap(t Table) Chain { return Chain{t} }

// items namespace.

func Ident(name string) Expr { return &Item{Name: name} }
func Host(name string) Expr  { return &HostItem{Name: name} }
func Param(name string) Expr { return &Parameter{Name: name} }
func Val(v any) Expr         { return &Value{V: v} }
func Const(v any) Expr       { return &Constant{V: v} }

// tables namespace.

// From starts a chain at a base table.
func From(name string) Chain { return Chain{&Primary{Name: name}} }

// UnionOf starts a chain at the union of the given tables.
func UnionOf(tables ...Table) Chain { return Chain{&Union{Tables: tables}} }

// operations namespace — boolean/arithmetic/comparison builders. Go has no
// operator overloading, so these are explicit functions/methods instead of
// overloaded `+`/`*`/`==`.

func flattenAnd(args []Expr) []Expr {
	out := make([]Expr, 0, len(args))
	for _, a := range args {
		if sub, ok := a.(*And); ok {
			out = append(out, sub.Args...)
		} else {
			out = append(out, a)
		}
	}
	return out
}

func flattenOr(args []Expr) []Expr {
	out := make([]Expr, 0, len(args))
	for _, a := range args {
		if sub, ok := a.(*Or); ok {
			out = append(out, sub.Args...)
		} else {
			out = append(out, a)
		}
	}
	return out
}

func flattenSummarize(args []Expr) []Expr {
	out := make([]Expr, 0, len(args))
	for _, a := range args {
		if sub, ok := a.(*Summarize); ok {
			out = append(out, sub.Args...)
		} else {
			out = append(out, a)
		}
	}
	return out
}

func flattenMultiply(args []Expr) []Expr {
	out := make([]Expr, 0, len(args))
	for _, a := range args {
		if sub, ok := a.(*Multiply); ok {
			out = append(out, sub.Args...)
		} else {
			out = append(out, a)
		}
	}
	return out
}

func flattenConcat(args []Expr) []Expr {
	out := make([]Expr, 0, len(args))
	for _, a := range args {
		if sub, ok := a.(*Concat); ok {
			out = append(out, sub.Args...)
		} else {
			out = append(out, a)
		}
	}
	return out
}

// And builds a flattened Kleene conjunction.
func And(args ...Expr) Expr { return &And{Args: flattenAnd(args)} }

// Or builds a flattened Kleene disjunction.
func Or(args ...Expr) Expr { return &Or{Args: flattenOr(args)} }

// Not negates e.
func Not(e Expr) Expr { return &Not{E: e} }

// Plus sums its arguments, flattening nested Summarize nodes.
func Plus(args ...Expr) Expr { return &Summarize{Args: flattenSummarize(args)} }

// Minus subtracts b from a.
func Minus(a, b Expr) Expr { return &Sub{A: a, B: b} }

// Times multiplies its arguments, flattening nested Multiply nodes.
func Times(args ...Expr) Expr { return &Multiply{Args: flattenMultiply(args)} }

// DivideBy divides a by b.
func DivideBy(a, b Expr) Expr { return &Div{A: a, B: b} }

// Cat concatenates its arguments, flattening nested Concat nodes.
func Cat(args ...Expr) Expr { return &Concat{Args: flattenConcat(args)} }

// NegOf/PosOf apply unary minus/plus.
func NegOf(e Expr) Expr { return &Neg{E: e} }
func PosOf(e Expr) Expr { return &Pos{E: e} }

func Eq(a, b Expr) Expr { return &Comparison{Op: OpEq, A: a, B: b} }
func Ne(a, b Expr) Expr { return &Comparison{Op: OpNe, A: a, B: b} }
func Lt(a, b Expr) Expr { return &Comparison{Op: OpLt, A: a, B: b} }
func Le(a, b Expr) Expr { return &Comparison{Op: OpLe, A: a, B: b} }
func Ge(a, b Expr) Expr { return &Comparison{Op: OpGe, A: a, B: b} }
func Gt(a, b Expr) Expr { return &Comparison{Op: OpGt, A: a, B: b} }

func IsBetween(a, lo, hi Expr) Expr    { return &Between{A: a, Lo: lo, Hi: hi} }
func IsNullOf(e Expr) Expr             { return &IsNull{E: e} }
func IsNotNullOf(e Expr) Expr          { return &NotNull{E: e} }
func InList(a Expr, s ...Expr) Expr    { return &IsIn{A: a, S: s} }
func NotInList(a Expr, s ...Expr) Expr { return &NotIn{A: a, S: s} }

// LikePattern builds a LIKE expression; escape may be nil.
func LikePattern(s, pattern Expr, escape Expr) Expr {
	return &Like{S: s, Pattern: pattern, Escape: escape}
}

// When builds a Case expression from ordered (when, then) arms plus an
// optional else (nil means absent).
func When(arms []CaseWhen, orElse Expr) Expr {
	return &Case{Cases: arms, Else: orElse}
}

// SwitchOn builds a Switch expression comparing disc against each arm's
// Match in order.
func SwitchOn(disc Expr, arms []SwitchCase, orElse Expr) Expr {
	return &Switch{Disc: disc, Cases: arms, Else: orElse}
}

// contexts namespace — chain methods building new Table nodes.

func (c Chain) Qualify() Chain { return Chain{&Qualify{Parent: c.Table}} }

func (c Chain) Alias(name string) Chain {
	return Chain{&Alias{Parent: c.Table, Name: name}}
}

func (c Chain) Nest(alias ...string) Chain {
	a := ""
	if len(alias) > 0 {
		a = alias[0]
	}
	return Chain{&Nest{Parent: c.Table, Alias: a}}
}

func (c Chain) Include(labels ...string) Chain {
	return Chain{&Include{Parent: c.Table, Labels: labels}}
}

func (c Chain) Exclude(labels ...string) Chain {
	return Chain{&Exclude{Parent: c.Table, Labels: labels}}
}

func (c Chain) Rename(m map[string]string) Chain {
	return Chain{&Rename{Parent: c.Table, Map: m}}
}

func (c Chain) Define(bindings ...Binding) Chain {
	return Chain{&Define{Parent: c.Table, Bindings: bindings}}
}

func (c Chain) Redefine(bindings ...Binding) Chain {
	return Chain{&Redefine{Parent: c.Table, Bindings: bindings}}
}

func (c Chain) Where(pred Expr) Chain {
	return Chain{&Where{Parent: c.Table, Pred: pred}}
}

// chainGrouped reports whether t already carries a Group within the current
// query scope, walking up through the single-parent derivative operators
// that don't open a new scope. A second Group in one chain forces an
// implicit Nest so the outer GROUP BY doesn't collide with the inner one.
func chainGrouped(t Table) bool {
	for {
		switch x := t.(type) {
		case *Group:
			return true
		case *Distinct:
			t = x.Parent
		case *OrderBy:
			t = x.Parent
		case *Slice:
			t = x.Parent
		case *Include:
			t = x.Parent
		case *Exclude:
			t = x.Parent
		case *Rename:
			t = x.Parent
		case *Define:
			t = x.Parent
		case *Redefine:
			t = x.Parent
		case *Where:
			t = x.Parent
		case *Assign:
			t = x.Parent
		default:
			return false
		}
	}
}

func (c Chain) Group(labels ...string) Chain {
	if chainGrouped(c.Table) {
		return c.Nest().Group(labels...)
	}
	return Chain{&Group{Parent: c.Table, Labels: labels}}
}

func (c Chain) Assign(bindings ...Binding) Chain {
	return Chain{&Assign{Parent: c.Table, Bindings: bindings}}
}

func (c Chain) Distinct() Chain { return Chain{&Distinct{Parent: c.Table}} }

func (c Chain) OrderBy(exprs ...Expr) Chain {
	return Chain{&OrderBy{Parent: c.Table, Exprs: exprs}}
}

// SliceRange bounds results to [first, afterLast). Pass -1 for an unset
// bound.
func (c Chain) SliceRange(first, afterLast int) Chain {
	return Chain{&Slice{Parent: c.Table, First: first, AfterLast: afterLast}}
}

func (c Chain) InnerJoin(right Table) Chain {
	return Chain{&InnerJoin{Left: c.Table, Right: right}}
}

func (c Chain) OuterJoin(right Table) Chain {
	return Chain{&OuterJoin{Left: c.Table, Right: right}}
}

func (c Chain) CrossJoin(right Table) Chain {
	return Chain{&CrossJoin{Left: c.Table, Right: right}}
}

func (c Chain) Inserting(setList ...Binding) Chain {
	return Chain{&Inserting{Parent: c.Table, SetList: setList}}
}

func (c Chain) UpdatingAll(setList ...Binding) Chain {
	return Chain{&UpdatingAll{Parent: c.Table, SetList: setList}}
}

func (c Chain) DeletingAll() Chain { return Chain{&DeletingAll{Parent: c.Table}} }

func (c Chain) Extending(source Table) Chain {
	return Chain{&Extending{Parent: c.Table, Source: source}}
}

func (c Chain) Merging(source Table, inserting ...Binding) Chain {
	return Chain{&Merging{Parent: c.Table, Source: source, Inserting: inserting}}
}

// Bind constructs a Binding from a label and the expression that defines it.
func Bind(name string, e Expr) Binding { return Binding{Name: name, Expr: e} }
