package tilecoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorgonia.org/tensor"
)

func TestEncodeTensor(t *testing.T) {
	tc := unitSquare(t)

	x := tensor.New(
		tensor.WithShape(3, 2),
		tensor.WithBacking([]float64{0.5, 0.5, 0, 0, 0.999, 0.999}),
	)
	out, err := tc.EncodeTensor(x)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 2}, out.Shape())
	assert.Equal(t, tensor.Int, out.Dtype())
	assert.Equal(t, []int{12, 37, 0, 25, 18, 49}, out.Data())
}

func TestEncodeTensorSingleVector(t *testing.T) {
	tc := unitSquare(t)

	x := tensor.New(tensor.WithShape(2), tensor.WithBacking([]float64{0.5, 0.5}))
	out, err := tc.EncodeTensor(x)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 2}, out.Shape())
	assert.Equal(t, []int{12, 37}, out.Data())
}

func TestEncodeTensorInvalid(t *testing.T) {
	tc := unitSquare(t)

	f32 := tensor.New(tensor.WithShape(1, 2), tensor.WithBacking([]float32{0.5, 0.5}))
	_, err := tc.EncodeTensor(f32)
	assert.ErrorIs(t, err, ErrUnsupportedDtype)

	wide := tensor.New(tensor.WithShape(1, 3), tensor.WithBacking([]float64{0, 0, 0}))
	_, err = tc.EncodeTensor(wide)
	assert.True(t, IsDimensionMismatch(err), "got %v", err)

	cube := tensor.New(tensor.WithShape(1, 1, 2), tensor.WithBacking([]float64{0, 0}))
	_, err = tc.EncodeTensor(cube)
	assert.True(t, IsDimensionMismatch(err), "got %v", err)
}

func TestDecodeTensor(t *testing.T) {
	tc := unitSquare(t)

	x := tensor.New(tensor.WithShape(2, 2), tensor.WithBacking([]int{12, 37, 0, 25}))
	out, err := tc.DecodeTensor(x)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2}, out.Shape())
	assert.Equal(t, tensor.Float64, out.Dtype())
	assert.InDeltaSlice(t, []float64{0.5625, 0.5625, 0.0625, 0.0625},
		out.Data(), 1e-12)

	bad := tensor.New(tensor.WithShape(1, 2), tensor.WithBacking([]int{12, 99}))
	_, err = tc.DecodeTensor(bad)
	assert.True(t, IsInvalidIndex(err), "got %v", err)

	floats := tensor.New(tensor.WithShape(1, 2), tensor.WithBacking([]float64{12, 37}))
	_, err = tc.DecodeTensor(floats)
	assert.ErrorIs(t, err, ErrUnsupportedDtype)
}

func TestTensorRoundTrip(t *testing.T) {
	tc := unitSquare(t)
	batch := randomBatch(4, 16, tc.Limits())

	data := make([]float64, 0, 32)
	for _, row := range batch {
		data = append(data, row...)
	}
	x := tensor.New(tensor.WithShape(16, 2), tensor.WithBacking(data))

	indices, err := tc.EncodeTensor(x)
	require.NoError(t, err)
	want, err := tc.Encode(batch)
	require.NoError(t, err)
	for i, row := range want {
		for j, index := range row {
			got, err := indices.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, index, got)
		}
	}

	decoded, err := tc.DecodeTensor(indices)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{16, 2}, decoded.Shape())
}
