package generic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryIsComplete(t *testing.T) {
	e := Entry()
	assert.Equal(t, "generic", e.Name)
	assert.Zero(t, e.Priority)
	assert.True(t, e.Accepts(8, 16, 32))
	assert.Empty(t, e.Scalar.Missing())
	assert.Empty(t, e.Q7.Regular.Missing())
	assert.Empty(t, e.Q15.Regular.Missing())
	assert.Empty(t, e.Q31.Regular.Missing())
}
