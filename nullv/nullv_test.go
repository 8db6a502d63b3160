package nullv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNull(t *testing.T) {
	assert.True(t, IsNull(nil))
	assert.False(t, IsNull(0))
	assert.False(t, IsNull(""))
	assert.False(t, IsNull(false))
}

func TestAndKleene(t *testing.T) {
	assert.Equal(t, false, And(true, false, nil))
	assert.Equal(t, nil, And(true, nil, true))
	assert.Equal(t, true, And(true, true))
}

func TestOrKleene(t *testing.T) {
	assert.Equal(t, true, Or(false, true, nil))
	assert.Equal(t, nil, Or(false, nil, false))
	assert.Equal(t, false, Or(false, false))
}

func TestNot(t *testing.T) {
	assert.Equal(t, false, Not(true))
	assert.Equal(t, nil, Not(nil))
}

func TestArithmeticPropagatesNull(t *testing.T) {
	assert.Equal(t, nil, Summarize(1, nil, 2))
	assert.Equal(t, 3.0, Summarize(1, 2))
	assert.Equal(t, nil, Sub(nil, 1))
	assert.Equal(t, 4.0, Sub(6, 2))
}

func TestDivisionByZeroErrors(t *testing.T) {
	_, err := TrueDiv(1, 0)
	require.Error(t, err)
	v, err := TrueDiv(nil, 0)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestIsInPolarity(t *testing.T) {
	assert.Equal(t, nil, IsIn(nil, []any{1, 2}))
	assert.Equal(t, true, IsIn(1, []any{1, 2}))
	assert.Equal(t, nil, IsIn(3, []any{1, nil}))
	assert.Equal(t, false, IsIn(3, []any{1, 2}))
}

func TestNotInPolarity(t *testing.T) {
	assert.Equal(t, true, NotIn(3, []any{1, 2}))
	assert.Equal(t, false, NotIn(1, []any{1, 2}))
	assert.Equal(t, nil, NotIn(3, []any{1, nil}))
}

func TestComparisons(t *testing.T) {
	assert.Equal(t, true, Lt(1, 2))
	assert.Equal(t, nil, Lt(nil, 2))
	assert.Equal(t, true, Eq("a", "a"))
	assert.Equal(t, false, Ne("a", "a"))
}

func TestBetween(t *testing.T) {
	assert.Equal(t, true, Between(5, 1, 10))
	assert.Equal(t, false, Between(15, 1, 10))
	assert.Equal(t, nil, Between(nil, 1, 10))
}

func TestStringOps(t *testing.T) {
	assert.Equal(t, "HELLO", UCase("hello"))
	assert.Equal(t, nil, UCase(nil))
	assert.Equal(t, "hi", Trim("  hi  "))
	assert.Equal(t, "new", Replace("old", "old", "new"))
}

func TestLikeBasic(t *testing.T) {
	assert.Equal(t, true, Like("hello", "h%o", nil))
	assert.Equal(t, true, Like("hello", "h_ll_", nil))
	assert.Equal(t, false, Like("hello", "world", nil))
	assert.Equal(t, nil, Like(nil, "x", nil))
}

func TestLikeEscape(t *testing.T) {
	assert.Equal(t, true, Like("50%", `50\%`, `\`))
	assert.Equal(t, false, Like("50X", `50\%`, `\`))
}

func TestLikeCacheBounded(t *testing.T) {
	ResetLikeCacheForTest()
	for i := 0; i < maxLikeCache+10; i++ {
		Like("x", patternFor(i), nil)
	}
	assert.LessOrEqual(t, likeCacheLen(), maxLikeCache)
}

func TestLikeCacheNoGrowthOnRepeat(t *testing.T) {
	ResetLikeCacheForTest()
	for i := 0; i < 5; i++ {
		Like("abc", "a%", nil)
	}
	assert.Equal(t, 1, likeCacheLen())
}

func patternFor(i int) string {
	return string(rune('a'+i%26)) + "%" + string(rune('a'+i/26))
}

func TestAggregateIgnoresNull(t *testing.T) {
	s := []any{1, nil, 2, nil, 3}
	assert.Equal(t, 6.0, AggregateSummary(s))
	assert.Equal(t, 3, AggregateCount(s))
	assert.Equal(t, 1, AggregateMinimum(s))
	assert.Equal(t, 3, AggregateMaximum(s))
}

func TestAggregateAllNullReturnsUnknown(t *testing.T) {
	s := []any{nil, nil}
	assert.Nil(t, AggregateSummary(s))
	assert.Equal(t, 0, AggregateCount(s))
}

func TestCast(t *testing.T) {
	v, err := Cast("42", "int")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	v, err = Cast(nil, "int")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = Cast("x", "unknown-type")
	require.Error(t, err)
}

func TestRegisterDetector(t *testing.T) {
	ResetDetectors()
	t.Cleanup(ResetDetectors)
	type sentinel struct{}
	RegisterDetector(func(v any) bool {
		_, ok := v.(sentinel)
		return ok
	})
	assert.True(t, IsNull(sentinel{}))
	assert.False(t, IsNull(1))
}
