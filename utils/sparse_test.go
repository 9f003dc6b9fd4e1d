package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparseOperator(t *testing.T) {
	// Second difference operator on 4 points, identity rows at the ends
	D := NewDOK(4, 4)
	D.Set(0, 0, 1)
	D.SetRowBand(1, 0, []float64{1, -2, 1})
	D.SetRowBand(2, 1, []float64{1, -2, 1})
	D.Set(3, 3, 1)
	C := D.ToCSR()
	nr, nc := C.Dims()
	assert.Equal(t, 4, nr)
	assert.Equal(t, 4, nc)
	assert.Equal(t, 8, C.NNZ())
	assert.Equal(t, -2., C.At(1, 1))
	y := C.MulVec([]float64{1, 4, 9, 16})
	assert.Equal(t, []float64{1, 2, 2, 16}, y)
	assert.Panics(t, func() { C.MulVec([]float64{1}) })
	assert.Panics(t, func() { D.Set(4, 0, 1) })
	D.SetReadOnly("D")
	assert.Panics(t, func() { D.Set(0, 0, 2) })
}
