package tilecoder

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/samplemv"

	"github.com/samuelfneumann/gotile/utils/floatutils"
)

// OffsetFunc returns the displacement vector of a tile coder over
// dims dimensions. The returned slice must have dims elements.
//
// Tiling t of T is shifted along dimension d by
// (f(dims)[d] * t / T) mod 1 tile widths, so tiling 0 is never shifted
// and the remaining tilings are spread evenly through a single tile.
type OffsetFunc func(dims int) []float64

// OddMultiples is the default OffsetFunc. It displaces dimension d by
// the odd number 2d+1, which keeps the tilings from lining up along
// the diagonal.
func OddMultiples(dims int) []float64 {
	displacement := make([]float64, dims)
	for i := range displacement {
		displacement[i] = float64(2*i + 1)
	}
	return displacement
}

// UnitDisplacement displaces every dimension equally, so that all
// tilings are shifted along the main diagonal of the input space.
func UnitDisplacement(dims int) []float64 {
	displacement := make([]float64, dims)
	for i := range displacement {
		displacement[i] = 1.0
	}
	return displacement
}

// RandomDisplacement returns an OffsetFunc which samples the
// displacement of each dimension uniformly from the half-open range
// [1, 2*dims), or [1, 2) for a single dimension. The same seed always
// produces the same displacement vector.
func RandomDisplacement(seed uint64) OffsetFunc {
	return func(dims int) []float64 {
		bounds := make([]r1.Interval, dims)
		for i := range bounds {
			bounds[i] = r1.Interval{Min: 1.0, Max: float64(2 * dims)}
		}
		if dims == 1 {
			bounds[0].Max = 2.0
		}

		// Create RNG for uniform sampling of the displacement
		source := rand.NewSource(seed)
		u := distmv.NewUniform(bounds, source)
		sampler := samplemv.IID{Dist: u}

		samples := mat.NewDense(1, dims, nil)
		sampler.Sample(samples)
		return samples.RawRowView(0)
	}
}

// offsetMatrix calculates the [tilings][dims] matrix of tiling offsets,
// measured in tile widths, generated by the displacement function f
func offsetMatrix(f OffsetFunc, dims, tilings int) ([][]float64, error) {
	displacement := f(dims)
	if len(displacement) != dims {
		return nil, fmt.Errorf("%w: offset function returned %d values "+
			"for %d dimensions", ErrInvalidConfig, len(displacement), dims)
	}
	if !floatutils.Finite(displacement...) {
		return nil, fmt.Errorf("%w: offset function returned non-finite "+
			"displacement %v", ErrInvalidConfig, displacement)
	}

	offsets := make([][]float64, tilings)
	for t := range offsets {
		offsets[t] = make([]float64, dims)
		for d, disp := range displacement {
			offsets[t][d] = floatutils.Wrap(disp * float64(t) / float64(tilings))
		}
	}
	return offsets, nil
}
