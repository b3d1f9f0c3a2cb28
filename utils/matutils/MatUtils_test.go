package matutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestRows(t *testing.T) {
	d := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	rows := Rows(d)
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, rows)

	rows = Rows(d.T())
	assert.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, rows)
}

func TestFromRows(t *testing.T) {
	d, err := FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	r, c := d.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 6.0, d.At(2, 1))

	_, err = FromRows([][]float64{{1, 2}, {3}})
	assert.Error(t, err)

	_, err = FromRows(nil)
	assert.Error(t, err)
}

func TestVec(t *testing.T) {
	v := mat.NewVecDense(3, []float64{1, 2, 3})
	assert.Equal(t, []float64{1, 2, 3}, Vec(v))

	d := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	assert.Equal(t, []float64{2, 4}, Vec(d.ColView(1)))
}
