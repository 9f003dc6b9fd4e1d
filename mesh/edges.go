package mesh

import (
	"fmt"

	"github.com/notargets/gohelios/utils"
)

// Edges1D returns the len(c)+1 cell boundaries of the centers c. Interior
// edges are midpoints of neighbouring centers, the two outer edges are
// extrapolated by half of the adjacent cell width.
func Edges1D(c []float64) (e []float64, err error) {
	var (
		n = len(c)
	)
	if n < 2 {
		err = fmt.Errorf("%w: got %d", ErrTooFewSamples, n)
		return
	}
	e = make([]float64, n+1)
	e[0] = c[0] - 0.5*(c[1]-c[0])
	for i := 1; i < n; i++ {
		e[i] = c[i-1] + 0.5*(c[i]-c[i-1])
	}
	e[n] = c[n-1] + 0.5*(c[n-1]-c[n-2])
	return
}

// CellEdges reconstructs zone edges for every timestep of a (T, Z) center
// array and returns a (T, Z+1) edge array.
func CellEdges(centers utils.Matrix) (edges utils.Matrix, err error) {
	var (
		nt, nz = centers.Dims()
		row    []float64
	)
	if nt < 1 || nz < 2 {
		err = fmt.Errorf("%w: centers are %d x %d, need at least 1 x 2", ErrTooFewSamples, nt, nz)
		return
	}
	edges = utils.NewMatrix(nt, nz+1)
	for t := 0; t < nt; t++ {
		if row, err = Edges1D(centers.RowView(t)); err != nil {
			return
		}
		edges.SetRow(t, row)
	}
	if nr, nc := edges.Dims(); nr != nt || nc != nz+1 {
		err = fmt.Errorf("%w: edges are %d x %d, expected %d x %d", ErrShape, nr, nc, nt, nz+1)
	}
	return
}

// TimeEdges converts T time centers into T+1 time edges.
func TimeEdges(centers []float64) (edges []float64, err error) {
	if edges, err = Edges1D(centers); err != nil {
		err = fmt.Errorf("time edges: %w", err)
	}
	return
}

// Centers returns the midpoints of a (T, Z+1) edge array as a (T, Z) array.
func Centers(edges utils.Matrix) (centers utils.Matrix, err error) {
	var (
		nt, ne = edges.Dims()
	)
	if nt < 1 || ne < 2 {
		err = fmt.Errorf("%w: edges are %d x %d, need at least 1 x 2", ErrTooFewSamples, nt, ne)
		return
	}
	centers = utils.NewMatrix(nt, ne-1)
	data := centers.Data()
	for t := 0; t < nt; t++ {
		e := edges.RowView(t)
		for i := 0; i < ne-1; i++ {
			data[t*(ne-1)+i] = 0.5 * (e[i] + e[i+1])
		}
	}
	return
}
