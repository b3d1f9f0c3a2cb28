// Package tilecoder implements dense tile coding of vectors
package tilecoder

import (
	"fmt"
	"math"
	"runtime"

	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/gotile/utils/floatutils"
	"github.com/samuelfneumann/gotile/utils/intutils"
)

// maxResolution bounds the number of cells along a single dimension
// of a tiling
const maxResolution = 1 << 40

// TileCoder implements functionality for tile coding a vector. Tile
// coding takes a low-dimensional vector and changes it into a small
// set of integer indices, one per tiling, each of which names the
// tile of that tiling containing the vector. Equivalently, the indices
// are the positions of the 1's in a large, sparse binary vector:
//
//	[0.5, 0.5] -> [12, 37] ~ [0 ... 0 1 0 ... 0 1 0 ... 0]
//
// The number of active tiles equals the number of tilings used to
// encode the vector. Tile coding requires that the space to be tiled
// be bounded.
//
// This implementation uses dense tilings over the entire input space.
// Every tiling has the same number of tiles along each dimension, one
// more than the requested number of tiles so that a shifted tiling
// still covers the whole space. Tilings are shifted against each
// other by fractions of a tile given by an OffsetFunc. Each tiling
// owns a disjoint band of indices, so indices of different tilings
// never collide.
//
// All geometry is computed by New and never modified afterwards, so a
// TileCoder is safe for concurrent use.
type TileCoder struct {
	numTilings int
	limits     []r1.Interval

	resolutions []int       // cells per dimension of each tiling
	offsets     [][]float64 // [tiling][dimension], in tile widths
	norms       []float64   // tiles per unit length, per dimension
	hashVec     []int       // mixed-radix weights
	baseIndices []int       // first index of each tiling's band
	tilingSize  int         // number of tiles in one tiling
	nTiles      int

	bounds  BoundsMode
	workers int
}

type options struct {
	offsetFn OffsetFunc
	bounds   BoundsMode
	workers  int
}

func defaultOptions() options {
	return options{
		offsetFn: OddMultiples,
		bounds:   Extrapolate,
		workers:  runtime.GOMAXPROCS(0),
	}
}

// Option configures optional behaviour of a TileCoder
type Option func(*options)

// WithOffsets sets the function generating the tiling displacement.
// The default is OddMultiples.
func WithOffsets(f OffsetFunc) Option {
	return func(o *options) {
		o.offsetFn = f
	}
}

// WithBounds sets how out-of-range input is treated. The default is
// Extrapolate.
func WithBounds(mode BoundsMode) Option {
	return func(o *options) {
		o.bounds = mode
	}
}

// WithWorkers sets the maximum number of goroutines used to encode or
// decode a single large batch. The default is runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// New creates and returns a new TileCoder.
//
// The tiles argument determines how many tiles are placed along each
// dimension of the input space and need not be integral. The limits
// argument determines the value range [Min, Max) of each dimension and
// must have the same length as tiles. The tilings argument determines
// the number of overlapping tilings.
//
// New returns an error wrapping ErrInvalidConfig if any argument
// cannot describe a set of tilings.
func New(tiles []float64, limits []r1.Interval, tilings int,
	opts ...Option) (*TileCoder, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t, err := newTileCoder(tiles, limits, tilings, o)
	if err != nil {
		return nil, &Error{Op: "new", Err: err}
	}
	return t, nil
}

func newTileCoder(tiles []float64, limits []r1.Interval, tilings int,
	o options) (*TileCoder, error) {
	if err := validate(tiles, limits, tilings, o); err != nil {
		return nil, err
	}
	dims := len(tiles)

	// Number of cells along each dimension of a tiling
	resolutions := make([]int, dims)
	norms := make([]float64, dims)
	for i := range tiles {
		resolutions[i] = int(math.Ceil(tiles[i])) + 1
		width := limits[i].Max - limits[i].Min
		norms[i] = tiles[i] / width
		if !floatutils.Finite(width, norms[i]) || width <= 0 || norms[i] <= 0 {
			return nil, fmt.Errorf("%w: dimension %d: value range %v gives "+
				"%v tiles per unit", ErrInvalidConfig, i, limits[i], norms[i])
		}
	}

	tilingSize, ok := intutils.CheckedProd(resolutions...)
	if !ok {
		return nil, fmt.Errorf("%w: tilings of %v cells overflow an int",
			ErrInvalidConfig, resolutions)
	}
	nTiles, ok := intutils.CheckedProd(tilingSize, tilings)
	if !ok {
		return nil, fmt.Errorf("%w: %d tilings of %d tiles overflow an int",
			ErrInvalidConfig, tilings, tilingSize)
	}

	offsets, err := offsetMatrix(o.offsetFn, dims, tilings)
	if err != nil {
		return nil, err
	}

	baseIndices := make([]int, tilings)
	for i := range baseIndices {
		baseIndices[i] = i * tilingSize
	}

	lim := make([]r1.Interval, dims)
	copy(lim, limits)

	return &TileCoder{
		numTilings:  tilings,
		limits:      lim,
		resolutions: resolutions,
		offsets:     offsets,
		norms:       norms,
		hashVec:     hashVector(resolutions),
		baseIndices: baseIndices,
		tilingSize:  tilingSize,
		nTiles:      nTiles,
		bounds:      o.bounds,
		workers:     o.workers,
	}, nil
}

// validate checks the arguments of New
func validate(tiles []float64, limits []r1.Interval, tilings int,
	o options) error {
	if len(tiles) == 0 {
		return fmt.Errorf("%w: at least one dimension is required",
			ErrInvalidConfig)
	}
	if len(tiles) != len(limits) {
		return fmt.Errorf("%w: cannot specify %d tile counts for %d "+
			"value ranges", ErrInvalidConfig, len(tiles), len(limits))
	}
	if tilings < 1 {
		return fmt.Errorf("%w: cannot have %d tilings, at least 1 is "+
			"required", ErrInvalidConfig, tilings)
	}

	for i := range tiles {
		if !floatutils.Finite(tiles[i]) || tiles[i] <= 0 {
			return fmt.Errorf("%w: dimension %d: tile count must be "+
				"positive and finite, got %v", ErrInvalidConfig, i, tiles[i])
		}
		if math.Ceil(tiles[i]) >= maxResolution {
			return fmt.Errorf("%w: dimension %d: tile count %v is too "+
				"large", ErrInvalidConfig, i, tiles[i])
		}
		if !floatutils.Finite(limits[i].Min, limits[i].Max) {
			return fmt.Errorf("%w: dimension %d: value range %v must be "+
				"finite", ErrInvalidConfig, i, limits[i])
		}
		if limits[i].Max <= limits[i].Min {
			return fmt.Errorf("%w: dimension %d: value range maximum %v "+
				"must exceed minimum %v", ErrInvalidConfig, i, limits[i].Max,
				limits[i].Min)
		}
	}

	if o.offsetFn == nil {
		return fmt.Errorf("%w: offset function cannot be nil",
			ErrInvalidConfig)
	}
	if !o.bounds.Valid() {
		return fmt.Errorf("%w: unknown bounds mode %d", ErrInvalidConfig,
			int(o.bounds))
	}
	if o.workers < 1 {
		return fmt.Errorf("%w: cannot use %d workers", ErrInvalidConfig,
			o.workers)
	}
	return nil
}

// NTiles returns the total number of tiles over all tilings, which is
// the length of a tile-coded binary vector
func (t *TileCoder) NTiles() int {
	return t.nTiles
}

// NumTilings returns the number of tilings the tile coder uses for
// encoding vectors
func (t *TileCoder) NumTilings() int {
	return t.numTilings
}

// Dims returns the dimensionality of vectors the TileCoder encodes
func (t *TileCoder) Dims() int {
	return len(t.resolutions)
}

// TilesPerTiling returns the number of tiles in a single tiling
func (t *TileCoder) TilesPerTiling() int {
	return t.tilingSize
}

// Bounds returns how the TileCoder treats out-of-range input
func (t *TileCoder) Bounds() BoundsMode {
	return t.bounds
}

// Resolutions returns the number of tiles along each dimension of a
// single tiling
func (t *TileCoder) Resolutions() []int {
	res := make([]int, len(t.resolutions))
	copy(res, t.resolutions)
	return res
}

// Limits returns the value range of each dimension
func (t *TileCoder) Limits() []r1.Interval {
	lim := make([]r1.Interval, len(t.limits))
	copy(lim, t.limits)
	return lim
}

// Norms returns the number of tiles per unit length along each
// dimension
func (t *TileCoder) Norms() []float64 {
	norms := make([]float64, len(t.norms))
	copy(norms, t.norms)
	return norms
}

// Offsets returns the offset of each tiling along each dimension, in
// tile widths. Element [i][j] is the offset of tiling i along
// dimension j.
func (t *TileCoder) Offsets() [][]float64 {
	offsets := make([][]float64, len(t.offsets))
	for i := range offsets {
		offsets[i] = make([]float64, len(t.offsets[i]))
		copy(offsets[i], t.offsets[i])
	}
	return offsets
}

// String returns a string representation of a *TileCoder
func (t *TileCoder) String() string {
	return fmt.Sprintf("Tilings %d  |  Tiles: %v  |  Limits: %v", t.numTilings,
		t.resolutions, t.limits)
}
