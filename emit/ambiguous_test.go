package emit

import (
	"testing"

	"github.com/sqlforge/sqlforge/algebra"
	"github.com/stretchr/testify/assert"
)

func TestAmbiguousUnderParenthesesIsNeverTrue(t *testing.T) {
	outer := &algebra.Parentheses{}
	assert.False(t, Ambiguous(&algebra.Summarize{}, outer, false))
}

func TestAmbiguousAtomicNeverWrapped(t *testing.T) {
	outer := &algebra.Summarize{}
	assert.False(t, Ambiguous(&algebra.Item{Name: "A"}, outer, false))
	assert.False(t, Ambiguous(&algebra.Constant{V: 1}, outer, false))
}

func TestAmbiguousUnderCallNeverWrapped(t *testing.T) {
	outer := &algebra.Call{Name: "COALESCE"}
	assert.False(t, Ambiguous(&algebra.Summarize{}, outer, false))
}

func TestSimpleChainLeftOperandNotWrapped(t *testing.T) {
	left := &algebra.Summarize{Args: []algebra.Expr{&algebra.Item{Name: "A"}, &algebra.Item{Name: "B"}}}
	outer := &algebra.Summarize{Args: []algebra.Expr{left, &algebra.Item{Name: "C"}}}
	assert.False(t, Ambiguous(left, outer, false))
}

func TestRightOperandOfSubarchitectureIsWrapped(t *testing.T) {
	right := &algebra.Summarize{Args: []algebra.Expr{&algebra.Item{Name: "B"}, &algebra.Item{Name: "C"}}}
	outer := &algebra.Sub{A: &algebra.Item{Name: "A"}, B: right}
	assert.True(t, Ambiguous(right, outer, false))
}

func TestConcatAtomicOnlyByFunctionFlag(t *testing.T) {
	cc := &algebra.Concat{Args: []algebra.Expr{&algebra.Item{Name: "A"}}}
	outer := &algebra.Summarize{}
	assert.True(t, Ambiguous(cc, outer, false))
	assert.False(t, Ambiguous(cc, outer, true))
}

func TestMultiplyUnderSummarizeIsWrapped(t *testing.T) {
	mul := &algebra.Multiply{Args: []algebra.Expr{&algebra.Item{Name: "A"}, &algebra.Constant{V: 2}}}
	outer := &algebra.Summarize{Args: []algebra.Expr{&algebra.Item{Name: "B"}, mul}}
	assert.True(t, Ambiguous(mul, outer, false))
}
