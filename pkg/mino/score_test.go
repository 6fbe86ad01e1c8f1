package mino

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	for lines, want := range []int{0, 15, 60, 135, 240} {
		assert.Equalf(t, want, Score(lines), "%d lines", lines)
	}
}
