package utils

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(N int, dataO ...[]float64) (R Vector) {
	if len(dataO) != 0 {
		R = Vector{mat.NewVecDense(N, dataO[0])}
		return
	}
	R = Vector{mat.NewVecDense(N, make([]float64, N))}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }
func (v Vector) Data() []float64          { return v.V.RawVector().Data }

// Chainable (extended) methods
func (v Vector) Copy() Vector {
	var (
		data = make([]float64, v.Len())
	)
	copy(data, v.Data())
	return NewVector(len(data), data)
}

func (v Vector) Scale(a float64) Vector {
	var (
		data = v.Data()
	)
	for i := range data {
		data[i] *= a
	}
	return v
}

func (v Vector) Linspace(begin, end float64) Vector {
	var (
		data = v.Data()
		n    = len(data)
	)
	if n == 1 {
		data[0] = begin
		return v
	}
	rge := (end - begin) / float64(n-1)
	for i := range data {
		data[i] = begin + float64(i)*rge
	}
	return v
}

