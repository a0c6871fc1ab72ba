package statkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtendRange(t *testing.T) {
	lo, hi := ExtendRange(0, 10, 0.05)
	assert.Equal(t, -0.5, lo)
	assert.Equal(t, 10.5, hi)

	lo, hi = ExtendRange(-3, 3, 0.5)
	assert.Equal(t, -6.0, lo)
	assert.Equal(t, 6.0, hi)

	// Zero fraction is the identity, negative fractions shrink.
	lo, hi = ExtendRange(2, 8, 0)
	assert.Equal(t, 2.0, lo)
	assert.Equal(t, 8.0, hi)

	lo, hi = ExtendRange(0, 10, -0.1)
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 9.0, hi)
}
