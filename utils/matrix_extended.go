package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a row-major dense matrix. For field data the convention is
// rows = timesteps, columns = zones.
type Matrix struct {
	M        *mat.Dense
	readOnly bool
	name     string
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{
		m,
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }
func (m Matrix) Data() []float64           { return m.M.RawMatrix().Data }
func (m Matrix) IsEmpty() bool             { return m.M == nil }

// Chainable methods (extended)
func (m *Matrix) SetReadOnly(name ...string) Matrix {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, m.Data())
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) Transpose() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		data   = m.Data()
	)
	R = NewMatrix(nc, nr)
	dataR := R.Data()
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			dataR[j*nr+i] = data[i*nc+j]
		}
	}
	return
}

// RowView returns the backing storage of row i, callers must not write to it.
func (m Matrix) RowView(i int) []float64 {
	var (
		nr, _ = m.Dims()
	)
	if i < 0 || i > nr-1 {
		panic(fmt.Errorf("row index out of bounds: index = %d, max_bounds = %d", i, nr-1))
	}
	return m.M.RawRowView(i)
}

func (m Matrix) Row(i int) Vector { // Does not change receiver
	var (
		row   = m.RowView(i)
		vData = make([]float64, len(row))
	)
	copy(vData, row)
	return NewVector(len(vData), vData)
}

func (m Matrix) Col(j int) Vector { // Does not change receiver
	var (
		data   = m.Data()
		nr, nc = m.Dims()
		vData  = make([]float64, nr)
	)
	if j < 0 || j > nc-1 {
		panic(fmt.Errorf("column index out of bounds: index = %d, max_bounds = %d", j, nc-1))
	}
	for i := range vData {
		vData[i] = data[i*nc+j]
	}
	return NewVector(nr, vData)
}

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) SetRow(i int, data []float64) Matrix { // Changes receiver
	m.checkWritable()
	m.M.SetRow(i, data)
	return m
}

func (m Matrix) Add(A Matrix) Matrix { // Changes receiver
	var (
		dataM = m.Data()
		dataA = A.Data()
	)
	m.checkWritable()
	checkSameDims(m, A)
	for i, val := range dataA {
		dataM[i] += val
	}
	return m
}

// ElDiv divides element by element, entries where A is not positive are set to zero.
func (m Matrix) ElDiv(A Matrix) Matrix { // Changes receiver
	var (
		dataM = m.Data()
		dataA = A.Data()
	)
	m.checkWritable()
	checkSameDims(m, A)
	for i, val := range dataA {
		if val > 0 {
			dataM[i] /= val
		} else {
			dataM[i] = 0
		}
	}
	return m
}

func (m Matrix) Scale(a float64) Matrix { // Changes receiver
	var (
		data = m.Data()
	)
	m.checkWritable()
	for i := range data {
		data[i] *= a
	}
	return m
}

func (m Matrix) Apply(f func(float64) float64) Matrix { // Changes receiver
	var (
		data = m.Data()
	)
	m.checkWritable()
	for i, val := range data {
		data[i] = f(val)
	}
	return m
}

func (m Matrix) Min() (min float64) {
	var (
		data = m.Data()
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (m Matrix) Max() (max float64) {
	var (
		data = m.Data()
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}

// RowMax returns the maximum of each row.
func (m Matrix) RowMax() (V Vector) {
	var (
		nr, _ = m.Dims()
		vData = make([]float64, nr)
	)
	for i := 0; i < nr; i++ {
		vData[i] = ArgMaxValue(m.RowView(i))
	}
	V = NewVector(nr, vData)
	return
}

func (m Matrix) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}

func checkSameDims(A, B Matrix) {
	var (
		nrA, ncA = A.Dims()
		nrB, ncB = B.Dims()
	)
	if nrA != nrB || ncA != ncB {
		panic(fmt.Errorf("dimension mismatch: %d x %d vs %d x %d", nrA, ncA, nrB, ncB))
	}
}
