package tilecoder

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Decode approximately reconstructs a batch of vectors from the indices
// of their active tiles. Each element of batch must hold NumTilings()
// indices. Each reconstructed vector is the mean of the centers of its
// active tiles, so decoding is lossy: the error along each dimension
// is at most one tile width.
//
// Decode returns an error wrapping ErrInvalidIndex if any index is
// outside [0, NTiles()).
func (t *TileCoder) Decode(batch [][]int) ([][]float64, error) {
	return t.DecodeContext(context.Background(), batch)
}

// DecodeContext is like Decode, but stops early and returns the
// context's error if ctx is cancelled before the batch is decoded.
func (t *TileCoder) DecodeContext(ctx context.Context,
	batch [][]int) ([][]float64, error) {
	vectors, _, err := t.decode(ctx, batch)
	if err != nil {
		return nil, &Error{Op: "decode", Err: err}
	}
	return vectors, nil
}

// DecodeMatrix is like Decode, but returns the reconstructed vectors
// as the rows of a matrix. The batch must not be empty.
func (t *TileCoder) DecodeMatrix(batch [][]int) (*mat.Dense, error) {
	if len(batch) == 0 {
		return nil, &Error{Op: "decodeMatrix", Err: fmt.Errorf("%w: cannot "+
			"decode an empty batch into a matrix", ErrDimensionMismatch)}
	}

	_, backing, err := t.decode(context.Background(), batch)
	if err != nil {
		return nil, &Error{Op: "decodeMatrix", Err: err}
	}
	return mat.NewDense(len(batch), t.Dims(), backing), nil
}

// decode reconstructs each vector of a batch. The returned vectors are
// consecutive rows of the returned backing slice.
func (t *TileCoder) decode(ctx context.Context,
	batch [][]int) ([][]float64, []float64, error) {
	dims := t.Dims()
	backing := make([]float64, len(batch)*dims)
	vectors := make([][]float64, len(batch))
	for i := range vectors {
		vectors[i] = backing[i*dims : (i+1)*dims : (i+1)*dims]
	}

	err := t.forEachRow(ctx, len(batch), func(i int, coord []int) error {
		return t.decodeRow(batch[i], vectors[i], coord)
	})
	if err != nil {
		return nil, nil, err
	}
	return vectors, backing, nil
}

// decodeRow stores in x the mean of the centers of the tiles with the
// given indices. The coord slice is scratch space.
func (t *TileCoder) decodeRow(indices []int, x []float64, coord []int) error {
	if len(indices) != t.numTilings {
		return fmt.Errorf("%w: got %d indices, expected one for each of "+
			"%d tilings", ErrDimensionMismatch, len(indices), t.numTilings)
	}

	for i := range x {
		x[i] = 0.0
	}
	for _, index := range indices {
		tiling, err := t.locate(index, coord)
		if err != nil {
			return err
		}
		for i := range x {
			x[i] += t.cellCenter(tiling, i, coord[i])
		}
	}
	floats.Scale(1/float64(t.numTilings), x)
	return nil
}
