package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesBoundary(t *testing.T) {
	_, err := New("short", map[string][]Region{"a": {{Start: 0, Stop: 99}}})
	require.Error(t, err)

	_, err = New("short", map[string][]Region{"a": {{Start: 3, Stop: 1}}})
	require.Error(t, err)
}

func TestNewValidatesRegionConsistency(t *testing.T) {
	text := "aaa bbb"
	_, err := New(text, map[string][]Region{"x": {{0, 3}, {4, 7}}})
	require.Error(t, err)

	tpl, err := New(text, map[string][]Region{"x": {{0, 3}, {0, 3}}})
	require.NoError(t, err)
	got, err := tpl.Get("x")
	require.NoError(t, err)
	assert.Equal(t, "aaa", got)
}

func TestNewRejectsCrossingRegions(t *testing.T) {
	text := "0123456789"
	_, err := New(text, map[string][]Region{
		"a": {{0, 5}},
		"b": {{3, 8}},
	})
	require.Error(t, err)

	_, err = New(text, map[string][]Region{
		"outer": {{0, 10}},
		"inner": {{2, 4}},
	})
	assert.NoError(t, err)
}

func TestGetMissingTag(t *testing.T) {
	tpl, err := New("abc", nil)
	require.NoError(t, err)
	_, err = tpl.Get("nope")
	require.Error(t, err)
}

func TestSetShiftsOtherRegions(t *testing.T) {
	text := "the PRICE is high"
	tpl, err := New(text, map[string][]Region{
		"price": {{4, 9}},
		"tail":  {{13, 17}},
	})
	require.NoError(t, err)

	require.NoError(t, tpl.Set("price", "COST"))
	assert.Equal(t, "the COST is high", tpl.Text())

	got, err := tpl.Get("tail")
	require.NoError(t, err)
	assert.Equal(t, "high", got)
}

func TestSetOnContainingRegionDropsNestedTag(t *testing.T) {
	text := "wrap INNER done"
	tpl, err := New(text, map[string][]Region{
		"outer": {{0, 15}},
		"inner": {{5, 10}},
	})
	require.NoError(t, err)

	require.NoError(t, tpl.Set("outer", "X"))
	assert.Equal(t, "X", tpl.Text())
	assert.False(t, tpl.Has("inner"))
}

// the following mirrors the fixture used by the original commandment-editor
// tests: a line with three repeated "TEST" occurrences, tagged individually,
// as an overlapping pair, and as a second overlapping pair.
func newCommandmentFixture(t *testing.T) *Template {
	t.Helper()
	text := "this is the TEST, TEST, and TEST"
	regions := []Region{{12, 16}, {18, 22}, {28, 32}}
	tpl, err := New(text, map[string][]Region{
		"test1":         {regions[0]},
		"test2":         {regions[1]},
		"test3":         {regions[2]},
		"test1 + test2": {{12, 22}},
		"test2 & test3": {regions[1], regions[2]},
	})
	require.NoError(t, err)
	return tpl
}

func TestCommandmentGet(t *testing.T) {
	tpl := newCommandmentFixture(t)
	got, err := tpl.Get("test1 + test2")
	require.NoError(t, err)
	assert.Equal(t, "TEST, TEST", got)
}

func TestCommandmentSetRejectsInconsistentSharedTag(t *testing.T) {
	tpl := newCommandmentFixture(t)
	err := tpl.Set("test2", "xx")
	require.Error(t, err)
}

func TestCommandmentRevise(t *testing.T) {
	tpl := newCommandmentFixture(t)
	err := tpl.Revise(map[string]string{
		"test1":         "THE_FIRST",
		"test1 + test2": "1st + 2nd",
		"test2 & test3": "2 & 3",
	})
	require.NoError(t, err)
	assert.Equal(t, "this is the 1st + 2nd, and 2 & 3", tpl.Text())
}

func TestCloneIsIndependent(t *testing.T) {
	tpl := newCommandmentFixture(t)
	clone := tpl.Clone()
	require.NoError(t, tpl.Set("test1", "LAST"))
	got, err := clone.Get("test1")
	require.NoError(t, err)
	assert.Equal(t, "TEST", got)
}
