package utils

import (
	"fmt"
)

// NewMatrixFromRows copies a rectangular [][]float64 into a Matrix.
func NewMatrixFromRows(rows [][]float64) (R Matrix, err error) {
	var (
		nr = len(rows)
		nc int
	)
	if nr == 0 {
		err = fmt.Errorf("unable to build matrix from zero rows")
		return
	}
	nc = len(rows[0])
	if nc == 0 {
		err = fmt.Errorf("unable to build matrix from zero length rows")
		return
	}
	data := make([]float64, 0, nr*nc)
	for i, row := range rows {
		if len(row) != nc {
			err = fmt.Errorf("ragged input: row %d has %d columns, expected %d", i, len(row), nc)
			return
		}
		data = append(data, row...)
	}
	R = NewMatrix(nr, nc, data)
	return
}
