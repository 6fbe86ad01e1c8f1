package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAction(t *testing.T) {
	for _, a := range Actions() {
		parsed, ok := ParseAction(a.String())
		assert.True(t, ok)
		assert.Equal(t, a, parsed)
	}

	_, ok := ParseAction("teleport")
	assert.False(t, ok)
	assert.Equal(t, "unknown", ActionUnknown.String())
}
