package tilecoder

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gotile/utils/floatutils"
	"github.com/samuelfneumann/gotile/utils/matutils"
)

// Encode tile codes a batch of vectors. Each element of batch is a
// single vector with Dims() components. The returned batch holds, for
// each vector, the index of its active tile in each tiling, in tiling
// order.
//
// Components outside their value range are handled according to the
// TileCoder's BoundsMode. Non-finite components are always rejected.
func (t *TileCoder) Encode(batch [][]float64) ([][]int, error) {
	return t.EncodeContext(context.Background(), batch)
}

// EncodeContext is like Encode, but stops early and returns the
// context's error if ctx is cancelled before the batch is encoded.
func (t *TileCoder) EncodeContext(ctx context.Context,
	batch [][]float64) ([][]int, error) {
	indices, _, err := t.encode(ctx, batch)
	if err != nil {
		return nil, &Error{Op: "encode", Err: err}
	}
	return indices, nil
}

// encode tile codes each vector of a batch. The returned rows of
// indices are consecutive rows of the returned backing slice.
func (t *TileCoder) encode(ctx context.Context,
	batch [][]float64) ([][]int, []int, error) {
	backing := make([]int, len(batch)*t.numTilings)
	indices := make([][]int, len(batch))
	for i := range indices {
		indices[i] = backing[i*t.numTilings : (i+1)*t.numTilings : (i+1)*t.numTilings]
	}

	err := t.forEachRow(ctx, len(batch), func(i int, coord []int) error {
		return t.encodeRow(batch[i], indices[i], coord)
	})
	if err != nil {
		return nil, nil, err
	}
	return indices, backing, nil
}

// EncodeVec returns the indices of the active tiles of a single vector
func (t *TileCoder) EncodeVec(v mat.Vector) ([]int, error) {
	indices := make([]int, t.numTilings)
	coord := make([]int, t.Dims())

	if err := t.encodeRow(matutils.Vec(v), indices, coord); err != nil {
		return nil, &Error{Op: "encodeVec", Err: err}
	}
	return indices, nil
}

// EncodeMatrix tile codes a batch of vectors held in a matrix. In
// this batch, each row should be a sequential sample in the batch and
// each column a sequential feature. The returned batch has one row of
// NumTilings() indices per row of the matrix.
func (t *TileCoder) EncodeMatrix(b mat.Matrix) ([][]int, error) {
	if _, cols := b.Dims(); cols != t.Dims() {
		return nil, &Error{Op: "encodeMatrix", Err: fmt.Errorf("%w: matrix "+
			"has %d columns, expected %d", ErrDimensionMismatch, cols,
			t.Dims())}
	}
	return t.Encode(matutils.Rows(b))
}

// encodeRow stores the index of the active tile of each tiling for
// vector x in indices. The coord slice is scratch space.
func (t *TileCoder) encodeRow(x []float64, indices, coord []int) error {
	if len(x) != t.Dims() {
		return fmt.Errorf("%w: vector has %d components, expected %d",
			ErrDimensionMismatch, len(x), t.Dims())
	}
	for i, v := range x {
		if !floatutils.Finite(v) {
			return fmt.Errorf("%w: component %d is %v", ErrOutOfRange, i, v)
		}
		if t.bounds == Strict && !floatutils.InInterval(v, t.limits[i]) {
			return fmt.Errorf("%w: component %d is %v, not in [%v, %v)",
				ErrOutOfRange, i, v, t.limits[i].Min, t.limits[i].Max)
		}
	}

	for j := 0; j < t.numTilings; j++ {
		for i, v := range x {
			// Shift into the tiling before flooring, so that different
			// tilings quantize the same point at different boundaries
			c := math.Floor((v-t.limits[i].Min)*t.norms[i] + t.offsets[j][i])

			if t.bounds == Clip {
				c = floatutils.Clip(c, 0.0, float64(t.resolutions[i]-1))
			}
			coord[i] = int(c)
		}
		indices[j] = t.baseIndices[j] + t.flatten(coord)
	}
	return nil
}

// ToVector converts the indices of the active tiles of a single vector
// to a binary tile-coded vector of length NTiles()
func (t *TileCoder) ToVector(indices []int) (*mat.VecDense, error) {
	tileCoded := mat.NewVecDense(t.nTiles, nil)
	for _, index := range indices {
		if index < 0 || index >= t.nTiles {
			return nil, &Error{Op: "toVector", Err: fmt.Errorf("%w: %d is "+
				"not in [0, %d)", ErrInvalidIndex, index, t.nTiles)}
		}
		tileCoded.SetVec(index, 1.0)
	}
	return tileCoded, nil
}

// ToIndices converts a binary tile-coded vector to the indices of its
// non-zero elements, in increasing order
func (t *TileCoder) ToIndices(v mat.Vector) ([]int, error) {
	if v.Len() != t.nTiles {
		return nil, &Error{Op: "toIndices", Err: fmt.Errorf("%w: vector "+
			"has length %d, expected %d", ErrDimensionMismatch, v.Len(),
			t.nTiles)}
	}

	indices := make([]int, 0, t.numTilings)
	for i := 0; i < v.Len(); i++ {
		switch v.AtVec(i) {
		case 0.0:
		case 1.0:
			indices = append(indices, i)
		default:
			return nil, &Error{Op: "toIndices", Err: fmt.Errorf("%w: "+
				"element %d is %v", ErrNotTileCoded, i, v.AtVec(i))}
		}
	}
	return indices, nil
}
