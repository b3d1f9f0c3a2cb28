// Package matutils implements utility function for working with mat.Matrix
// structs
package matutils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Format formats a matrix for printing
func Format(X mat.Matrix) string {
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	return fmt.Sprintf("%v", fa)
}

// Rows returns the rows of a matrix as a slice of slices. If X is a
// *mat.Dense, the returned rows share X's backing data; otherwise
// each row is copied.
func Rows(X mat.Matrix) [][]float64 {
	r, _ := X.Dims()
	rows := make([][]float64, r)

	if d, ok := X.(mat.RawRowViewer); ok {
		for i := range rows {
			rows[i] = d.RawRowView(i)
		}
		return rows
	}
	for i := range rows {
		rows[i] = mat.Row(nil, i, X)
	}
	return rows
}

// FromRows returns a new matrix whose rows are copies of rows. All
// rows must have the same, non-zero length and there must be at least
// one row.
func FromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("fromRows: cannot create a matrix with " +
			"zero rows or columns")
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("fromRows: row %d has %d columns, "+
				"expected %d", i, len(row), cols)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}

// Vec returns the elements of a vector as a slice. If v is a
// *mat.VecDense with unit increment, the slice shares v's data.
func Vec(v mat.Vector) []float64 {
	if d, ok := v.(*mat.VecDense); ok {
		raw := d.RawVector()
		if raw.Inc == 1 {
			return raw.Data[:d.Len()]
		}
	}
	return mat.Col(nil, 0, v)
}
