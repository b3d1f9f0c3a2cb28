package floatutils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r1"
)

func TestClip(t *testing.T) {
	assert.Equal(t, 0.0, Clip(-1, 0, 4))
	assert.Equal(t, 4.0, Clip(9, 0, 4))
	assert.Equal(t, 2.5, Clip(2.5, 0, 4))
}

func TestInInterval(t *testing.T) {
	i := r1.Interval{Min: 0, Max: 1}
	assert.True(t, InInterval(0, i))
	assert.True(t, InInterval(0.999, i))
	assert.False(t, InInterval(1, i))
	assert.False(t, InInterval(-0.001, i))
	assert.False(t, InInterval(math.NaN(), i))
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite(1, -2, 0))
	assert.False(t, Finite(1, math.NaN()))
	assert.False(t, Finite(math.Inf(-1)))
}

func TestWrap(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.5, 0.5},
		{1.5, 0.5},
		{2.25, 0.25},
		{-0.25, 0.75},
		{3, 0},
		{-1e-300, 0},
	}
	for _, test := range tests {
		got := Wrap(test.in)
		assert.InDelta(t, test.want, got, 1e-12, "Wrap(%v)", test.in)
		assert.True(t, got >= 0 && got < 1)
	}
}
