package sqlerr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorString(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{NotFound, "not-found"},
		{InvalidArgument, "invalid-argument"},
		{Inconsistent, "inconsistent"},
		{BoundaryError, "boundary-error"},
		{Unsupported, "unsupported"},
		{Assertion, "assertion"},
	}
	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			assert.Equal(t, c.want, c.kind.String())
		})
	}
}

func TestWithfFragment(t *testing.T) {
	err := Withf(NotFound, "PRICE", "cannot find label: %s", "PRICE")
	assert.Contains(t, err.Error(), "not-found")
	assert.Contains(t, err.Error(), "PRICE")
	assert.True(t, Is(err, NotFound))
	assert.False(t, Is(err, Unsupported))
}

func TestIsRejectsPlainError(t *testing.T) {
	var err error = assertPlain{}
	assert.False(t, Is(err, Assertion))
}

type assertPlain struct{}

func (assertPlain) Error() string { return "plain" }
