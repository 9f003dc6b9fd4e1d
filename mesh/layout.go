package mesh

import (
	"fmt"

	"github.com/notargets/gohelios/utils"
)

// Layout tags the orientation of a radius edge array.
type Layout uint8

const (
	// TimeMajor edges are stored (T, Z+1): one row per timestep.
	TimeMajor Layout = iota
	// ZoneMajor edges are stored (Z+1, T): one row per zone edge.
	ZoneMajor
)

var layoutNames = []string{"time-major", "zone-major"}

func (l Layout) String() string {
	if int(l) < len(layoutNames) {
		return layoutNames[l]
	}
	return fmt.Sprintf("Layout(%d)", uint8(l))
}

func (l Layout) valid() bool { return l == TimeMajor || l == ZoneMajor }

// RadiusEdges is a zone-edge array paired with its layout.
type RadiusEdges struct {
	M      utils.Matrix
	Layout Layout
}

// NewRadiusEdges pairs M with layout, rejecting unknown layouts.
func NewRadiusEdges(M utils.Matrix, layout Layout) (re RadiusEdges, err error) {
	if !layout.valid() {
		err = fmt.Errorf("%w: %v", ErrLayout, layout)
		return
	}
	re = RadiusEdges{M: M, Layout: layout}
	return
}

// Dims returns (timesteps, edges per timestep) regardless of layout.
func (re RadiusEdges) Dims() (nt, ne int) {
	nr, nc := re.M.Dims()
	if re.Layout == ZoneMajor {
		return nc, nr
	}
	return nr, nc
}

// Validate checks the edges against a (nt, nz) field.
func (re RadiusEdges) Validate(nt, nz int) (err error) {
	if !re.Layout.valid() {
		return fmt.Errorf("%w: %v", ErrLayout, re.Layout)
	}
	if re.M.IsEmpty() {
		return fmt.Errorf("%w: no edge data", ErrShape)
	}
	gotT, gotE := re.Dims()
	if gotT != nt || gotE != nz+1 {
		nr, nc := re.M.Dims()
		return fmt.Errorf("%w: %s edges are %d x %d, field is %d x %d", ErrShape, re.Layout, nr, nc, nt, nz)
	}
	return
}

// Edge returns edge i at timestep t.
func (re RadiusEdges) Edge(t, i int) float64 {
	if re.Layout == ZoneMajor {
		return re.M.At(i, t)
	}
	return re.M.At(t, i)
}

// Bracket returns the two edges bounding zone i at timestep t.
func (re RadiusEdges) Bracket(t, i int) (lo, hi float64) {
	return re.Edge(t, i), re.Edge(t, i+1)
}

// Center returns the midpoint of zone i at timestep t.
func (re RadiusEdges) Center(t, i int) float64 {
	lo, hi := re.Bracket(t, i)
	return 0.5 * (lo + hi)
}

// ToLayout returns the edges in the requested layout, copying when a
// transpose is needed.
func (re RadiusEdges) ToLayout(l Layout) (out RadiusEdges, err error) {
	if !l.valid() {
		err = fmt.Errorf("%w: %v", ErrLayout, l)
		return
	}
	if l == re.Layout {
		out = re
		return
	}
	out = RadiusEdges{M: re.M.Transpose(), Layout: l}
	return
}

// Row returns the edges at timestep t as a fresh slice.
func (re RadiusEdges) Row(t int) (e []float64) {
	_, ne := re.Dims()
	e = make([]float64, ne)
	for i := range e {
		e[i] = re.Edge(t, i)
	}
	return
}

// History returns the radius of edge i at every timestep as a fresh slice.
func (re RadiusEdges) History(i int) []float64 {
	if re.Layout == ZoneMajor {
		return re.M.Row(i).Data()
	}
	return re.M.Col(i).Data()
}
