package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/gotile/tilecoder"
)

const yamlConfig = `
tiles: [4, 4]
limits:
  - {min: 0, max: 1}
  - {min: -1, max: 1}
tilings: 2
offsets: Random
seed: 12
bounds: strict
`

const jsonConfig = `{
	"tiles": [4, 4],
	"limits": [{"Min": 0, "Max": 1}, {"Min": -1, "Max": 1}],
	"tilings": 2,
	"offsets": "Random",
	"seed": 12,
	"bounds": "strict"
}`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	want := tilecoder.Config{
		Tiles:   []float64{4, 4},
		Limits:  []r1.Interval{{Min: 0, Max: 1}, {Min: -1, Max: 1}},
		Tilings: 2,
		Offsets: tilecoder.RandomOffsets,
		Seed:    12,
		Bounds:  tilecoder.Strict,
	}

	for name, data := range map[string]string{
		"coder.yaml": yamlConfig,
		"coder.yml":  yamlConfig,
		"coder.json": jsonConfig,
	} {
		t.Run(name, func(t *testing.T) {
			c, err := Load(writeFile(t, name, data))
			require.NoError(t, err)
			assert.Equal(t, want, c)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeFile(t, "coder.toml", yamlConfig))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "unknown.yaml", yamlConfig+"colour: red\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "invalid.json",
		`{"tiles": [4], "limits": [{"min": 1, "max": 0}], "tilings": 1}`))
	require.Error(t, err)
	assert.True(t, tilecoder.IsInvalidConfig(err), "got %v", err)
}

func TestSaveLoad(t *testing.T) {
	c := tilecoder.Config{
		Tiles:   []float64{8, 2.5},
		Limits:  []r1.Interval{{Min: -0.5, Max: 0.5}, {Min: 0, Max: 100}},
		Tilings: 6,
		Bounds:  tilecoder.Clip,
		Workers: 2,
	}

	for _, name := range []string{"saved.json", "saved.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Save(path, c))

			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, c, got)
		})
	}
}
