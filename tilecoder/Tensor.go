package tilecoder

import (
	"context"
	"fmt"

	"gorgonia.org/tensor"
)

// EncodeTensor tile codes a batch of vectors held in a Float64 tensor
// of shape (N, Dims()), one vector per row. A tensor of shape (Dims())
// is treated as a batch of one. The returned Int tensor has shape
// (N, NumTilings()).
func (t *TileCoder) EncodeTensor(x tensor.Tensor) (*tensor.Dense, error) {
	if x.Dtype() != tensor.Float64 {
		return nil, &Error{Op: "encodeTensor", Err: fmt.Errorf("%w: %v, "+
			"expected %v", ErrUnsupportedDtype, x.Dtype(), tensor.Float64)}
	}
	rows, err := t.batchRows(x.Shape(), t.Dims())
	if err != nil {
		return nil, &Error{Op: "encodeTensor", Err: err}
	}

	data := float64s(materialize(x))
	batch := make([][]float64, rows)
	for i := range batch {
		batch[i] = data[i*t.Dims() : (i+1)*t.Dims()]
	}

	_, indices, err := t.encode(context.Background(), batch)
	if err != nil {
		return nil, &Error{Op: "encodeTensor", Err: err}
	}
	return tensor.New(
		tensor.WithShape(rows, t.numTilings),
		tensor.WithBacking(indices),
	), nil
}

// DecodeTensor approximately reconstructs a batch of vectors from an
// Int tensor of shape (N, NumTilings()) holding the indices of their
// active tiles. A tensor of shape (NumTilings()) is treated as a batch
// of one. The returned Float64 tensor has shape (N, Dims()).
func (t *TileCoder) DecodeTensor(x tensor.Tensor) (*tensor.Dense, error) {
	if x.Dtype() != tensor.Int {
		return nil, &Error{Op: "decodeTensor", Err: fmt.Errorf("%w: %v, "+
			"expected %v", ErrUnsupportedDtype, x.Dtype(), tensor.Int)}
	}
	rows, err := t.batchRows(x.Shape(), t.numTilings)
	if err != nil {
		return nil, &Error{Op: "decodeTensor", Err: err}
	}

	data := ints(materialize(x))
	batch := make([][]int, rows)
	for i := range batch {
		batch[i] = data[i*t.numTilings : (i+1)*t.numTilings]
	}

	_, vectors, err := t.decode(context.Background(), batch)
	if err != nil {
		return nil, &Error{Op: "decodeTensor", Err: err}
	}
	return tensor.New(
		tensor.WithShape(rows, t.Dims()),
		tensor.WithBacking(vectors),
	), nil
}

// batchRows returns the number of rows in a batch tensor of the given
// shape whose rows must have cols elements
func (t *TileCoder) batchRows(shape tensor.Shape, cols int) (int, error) {
	switch {
	case shape.Dims() == 1 && shape[0] == cols:
		return 1, nil

	case shape.Dims() == 2 && shape[0] > 0 && shape[1] == cols:
		return shape[0], nil
	}
	return 0, fmt.Errorf("%w: tensor has shape %v, expected (N, %d)",
		ErrDimensionMismatch, shape, cols)
}

// materialize returns a tensor whose Data holds exactly its elements
// in row-major order, copying views of other tensors
func materialize(x tensor.Tensor) tensor.Tensor {
	if d, ok := x.(*tensor.Dense); ok && d.IsMaterializable() {
		return d.Materialize()
	}
	return x
}

// float64s returns the elements of a Float64 tensor. Single-element
// tensors report their data as a scalar.
func float64s(x tensor.Tensor) []float64 {
	switch data := x.Data().(type) {
	case []float64:
		return data
	case float64:
		return []float64{data}
	}
	panic(fmt.Sprintf("float64s: unexpected data of type %T", x.Data()))
}

// ints returns the elements of an Int tensor. Single-element tensors
// report their data as a scalar.
func ints(x tensor.Tensor) []int {
	switch data := x.Data().(type) {
	case []int:
		return data
	case int:
		return []int{data}
	}
	panic(fmt.Sprintf("ints: unexpected data of type %T", x.Data()))
}
