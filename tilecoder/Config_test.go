package tilecoder

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r1"
)

func TestConfigJSON(t *testing.T) {
	data := []byte(`{
		"tiles": [4, 4],
		"limits": [{"min": 0, "max": 1}, {"min": 0, "max": 1}],
		"tilings": 2,
		"bounds": "clip"
	}`)

	var c Config
	require.NoError(t, json.Unmarshal(data, &c))
	assert.Equal(t, []r1.Interval{{Min: 0, Max: 1}, {Min: 0, Max: 1}}, c.Limits)
	assert.Equal(t, Clip, c.Bounds)
	require.NoError(t, c.Validate())

	tc, err := c.Create()
	require.NoError(t, err)
	assert.Equal(t, 50, tc.NTiles())
	assert.Equal(t, Clip, tc.Bounds())
	assert.Equal(t, unitSquare(t).Offsets(), tc.Offsets())

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"bounds":"clip"`)
}

func TestConfigOffsets(t *testing.T) {
	c := Config{
		Tiles:   []float64{4, 4},
		Limits:  []r1.Interval{{Min: 0, Max: 1}, {Min: 0, Max: 1}},
		Tilings: 4,
	}

	c.Offsets = UnitOffsets
	tc, err := c.Create()
	require.NoError(t, err)
	for _, row := range tc.Offsets() {
		assert.Equal(t, row[0], row[1])
	}

	c.Offsets = RandomOffsets
	c.Seed = 11
	a, err := c.Create()
	require.NoError(t, err)
	b, err := c.Create()
	require.NoError(t, err)
	assert.Equal(t, a.Offsets(), b.Offsets())

	c.Offsets = "Hexagonal"
	assert.True(t, IsInvalidConfig(c.Validate()))
	_, err = c.Create()
	assert.True(t, IsInvalidConfig(err))
}

func TestConfigInvalid(t *testing.T) {
	valid := Config{
		Tiles:   []float64{4},
		Limits:  []r1.Interval{{Min: 0, Max: 1}},
		Tilings: 1,
	}
	require.NoError(t, valid.Validate())

	tests := map[string]func(c *Config){
		"tilings":  func(c *Config) { c.Tilings = 0 },
		"tiles":    func(c *Config) { c.Tiles = []float64{-1} },
		"limits":   func(c *Config) { c.Limits = []r1.Interval{{Min: 1, Max: 1}} },
		"mismatch": func(c *Config) { c.Limits = nil },
		"bounds":   func(c *Config) { c.Bounds = BoundsMode(-1) },
		"workers":  func(c *Config) { c.Workers = -4 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := valid
			mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.True(t, IsInvalidConfig(err), "got %v", err)
		})
	}
}

func TestRegisterOffsets(t *testing.T) {
	const half OffsetType = "test-half"
	RegisterOffsets(half, func(uint64) OffsetFunc {
		return func(dims int) []float64 {
			d := make([]float64, dims)
			for i := range d {
				d[i] = 0.5
			}
			return d
		}
	})
	assert.Contains(t, RegisteredOffsets(), half)

	c := Config{
		Tiles:   []float64{4},
		Limits:  []r1.Interval{{Min: 0, Max: 1}},
		Tilings: 2,
		Offsets: half,
	}
	tc, err := c.Create()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0}, {0.25}}, tc.Offsets())
}

func TestBoundsModeText(t *testing.T) {
	for _, mode := range []BoundsMode{Extrapolate, Clip, Strict} {
		text, err := mode.MarshalText()
		require.NoError(t, err)

		var got BoundsMode
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, mode, got)
	}

	mode, err := ParseBoundsMode(" STRICT ")
	require.NoError(t, err)
	assert.Equal(t, Strict, mode)

	mode, err = ParseBoundsMode("")
	require.NoError(t, err)
	assert.Equal(t, Extrapolate, mode)

	_, err = ParseBoundsMode("wrap")
	assert.True(t, IsInvalidConfig(err))

	_, err = BoundsMode(5).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "BoundsMode(5)", BoundsMode(5).String())
}
