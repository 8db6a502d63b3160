package emit

import "github.com/sqlforge/sqlforge/algebra"

// isComposite reports whether x is an expression whose content is a table
// (a subquery used in scalar position). All four kinds currently in the
// algebra — AllValue, AnyValue, Existence, Count — are also the exempt set
// consulted by Ambiguous, so the composite branch below is a no-op today;
// it exists so a future composite kind outside that exempt set is still
// handled correctly.
func isComposite(x algebra.Expr) bool {
	switch x.(type) {
	case *algebra.AllValue, *algebra.AnyValue, *algebra.Existence, *algebra.Count:
		return true
	default:
		return false
	}
}

func isExemptComposite(x algebra.Expr) bool {
	// Every Composite kind in this algebra is exempt; see the doc comment
	// above.
	return isComposite(x)
}

func isAtomic(x algebra.Expr, concatByFunction bool) bool {
	if concatByFunction {
		if _, ok := x.(*algebra.Concat); ok {
			return true
		}
	}
	switch x.(type) {
	case *algebra.ExpressionList, *algebra.Parentheses, *algebra.Constant,
		*algebra.Value, *algebra.Item, *algebra.HostItem, *algebra.Parameter,
		*algebra.Call, *algebra.Cast:
		return true
	default:
		return false
	}
}

// simpleChain reports whether x is the left operand of a left-associative
// chain (Summarize/Sub, or Multiply/Div) under outer of the same pair —
// such chains render without parentheses because the operator already
// associates left to right in SQL text.
func simpleChain(x, outer algebra.Expr) bool {
	isSumSub := func(e algebra.Expr) bool {
		switch e.(type) {
		case *algebra.Summarize, *algebra.Sub:
			return true
		}
		return false
	}
	isMulDiv := func(e algebra.Expr) bool {
		switch e.(type) {
		case *algebra.Multiply, *algebra.Div:
			return true
		}
		return false
	}
	if !((isSumSub(x) && isSumSub(outer)) || (isMulDiv(x) && isMulDiv(outer))) {
		return false
	}
	var left algebra.Expr
	switch o := outer.(type) {
	case *algebra.Summarize:
		if len(o.Args) > 0 {
			left = o.Args[0]
		}
	case *algebra.Multiply:
		if len(o.Args) > 0 {
			left = o.Args[0]
		}
	case *algebra.Sub:
		left = o.A
	case *algebra.Div:
		left = o.A
	}
	return left != nil && left == x
}

// Ambiguous reports whether x needs parentheses when rendered as a child of
// outer, under the given dialect concat-by-function setting.
func Ambiguous(x, outer algebra.Expr, concatByFunction bool) bool {
	if _, ok := outer.(*algebra.Parentheses); ok {
		return false
	}
	if isComposite(x) && !isExemptComposite(x) {
		return true
	}
	if simpleChain(x, outer) {
		return false
	}
	if _, ok := outer.(*algebra.Call); ok {
		return false
	}
	return !isAtomic(x, concatByFunction)
}
