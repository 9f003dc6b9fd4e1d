package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"github.com/james-bowman/sparse/blas"
	"gonum.org/v1/gonum/mat"
)

// DOK is a dictionary-of-keys sparse matrix, used while assembling banded
// operators before conversion to CSR for application.
type DOK struct {
	M        *sparse.DOK
	readOnly bool
	name     string
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{
		sparse.NewDOK(nr, nc),
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }

func (m DOK) Set(i, j int, val float64) DOK { // Changes receiver
	var (
		nr, nc = m.Dims()
	)
	m.checkWritable()
	if i < 0 || i > nr-1 || j < 0 || j > nc-1 {
		panic(fmt.Errorf("index out of bounds: (%d, %d) in %d x %d", i, j, nr, nc))
	}
	m.M.Set(i, j, val)
	return m
}

// SetRowBand writes vals into row i starting at column j0.
func (m DOK) SetRowBand(i, j0 int, vals []float64) DOK { // Changes receiver
	for k, val := range vals {
		m.Set(i, j0+k, val)
	}
	return m
}

func (m *DOK) SetReadOnly(name ...string) DOK {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m DOK) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}

func (m DOK) ToCSR() CSR {
	return CSR{
		M:    m.M.ToCSR(),
		name: m.name,
	}
}

// CSR is the compressed sparse row form used to apply an operator.
type CSR struct {
	M    *sparse.CSR
	name string
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m CSR) Dims() (r, c int)              { return m.M.Dims() }
func (m CSR) At(i, j int) float64           { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix                 { return m.M.T() }
func (m CSR) RawMatrix() *blas.SparseMatrix { return m.M.RawMatrix() }
func (m CSR) NNZ() int                      { return m.M.NNZ() }

// MulVec returns m * x.
func (m CSR) MulVec(x []float64) (y []float64) {
	var (
		nr, nc = m.Dims()
		raw    = m.RawMatrix()
	)
	if len(x) != nc {
		panic(fmt.Errorf("dimension mismatch: operator is %d x %d, vector length %d", nr, nc, len(x)))
	}
	y = make([]float64, nr)
	for i := 0; i < nr; i++ {
		var sum float64
		for k := raw.Indptr[i]; k < raw.Indptr[i+1]; k++ {
			sum += raw.Data[k] * x[raw.Ind[k]]
		}
		y[i] = sum
	}
	return
}
