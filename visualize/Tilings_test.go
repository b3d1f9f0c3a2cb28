package visualize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/gotile/tilecoder"
)

func newCoder(t *testing.T, dims int) *tilecoder.TileCoder {
	t.Helper()
	tiles := make([]float64, dims)
	limits := make([]r1.Interval, dims)
	for i := range tiles {
		tiles[i] = 4
		limits[i] = r1.Interval{Min: 0, Max: 1}
	}
	tc, err := tilecoder.New(tiles, limits, 3)
	require.NoError(t, err)
	return tc
}

func TestTilings(t *testing.T) {
	tc := newCoder(t, 3)

	p, err := Tilings(tc, 0, 2, [][]float64{{0.5, 0.1, 0.5}, {0.2, 0.2, 0.9}})
	require.NoError(t, err)
	assert.Equal(t, "3 tilings of 5 x 5 tiles", p.Title.Text)
	assert.Equal(t, 0.0, p.X.Min)
	assert.Equal(t, 1.0, p.Y.Max)
}

func TestTilingsInvalid(t *testing.T) {
	tc := newCoder(t, 2)

	for _, dims := range [][2]int{{0, 0}, {-1, 1}, {0, 2}} {
		_, err := Tilings(tc, dims[0], dims[1], nil)
		assert.Error(t, err, "dimensions %v", dims)
	}

	_, err := Tilings(tc, 0, 1, [][]float64{{0.5}})
	assert.True(t, tilecoder.IsDimensionMismatch(err), "got %v", err)
}

func TestSave(t *testing.T) {
	tc := newCoder(t, 2)
	filename := filepath.Join(t.TempDir(), "tilings.png")

	require.NoError(t, Save(filename, tc, 0, 1, [][]float64{{0.3, 0.7}}))
	info, err := os.Stat(filename)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
