package tilecoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOddMultiples(t *testing.T) {
	assert.Equal(t, []float64{1, 3, 5}, OddMultiples(3))
	assert.Equal(t, []float64{1}, OddMultiples(1))
}

func TestUnitDisplacement(t *testing.T) {
	assert.Equal(t, []float64{1, 1, 1, 1}, UnitDisplacement(4))
}

func TestRandomDisplacement(t *testing.T) {
	a := RandomDisplacement(7)(3)
	b := RandomDisplacement(7)(3)
	assert.Equal(t, a, b)
	require.Len(t, a, 3)
	for _, d := range a {
		assert.True(t, d >= 1 && d <= 6, "displacement %v not in [1, 6]", d)
	}

	one := RandomDisplacement(7)(1)
	require.Len(t, one, 1)
	assert.True(t, one[0] >= 1 && one[0] <= 2)
}

func TestOffsetMatrix(t *testing.T) {
	offsets, err := offsetMatrix(OddMultiples, 2, 4)
	require.NoError(t, err)

	want := [][]float64{
		{0, 0},
		{0.25, 0.75},
		{0.5, 0.5},
		{0.75, 0.25},
	}
	require.Len(t, offsets, len(want))
	for i := range want {
		assert.InDeltaSlice(t, want[i], offsets[i], 1e-12, "tiling %d", i)
	}
}

func TestOffsetMatrixNegativeDisplacement(t *testing.T) {
	offsets, err := offsetMatrix(func(int) []float64 {
		return []float64{-1}
	}, 1, 4)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{0}, offsets[0], 1e-12)
	assert.InDeltaSlice(t, []float64{0.75}, offsets[1], 1e-12)
	assert.InDeltaSlice(t, []float64{0.5}, offsets[2], 1e-12)
	assert.InDeltaSlice(t, []float64{0.25}, offsets[3], 1e-12)
}
