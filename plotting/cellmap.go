package plotting

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/notargets/gohelios/mesh"
	"github.com/notargets/gohelios/utils"
)

// CellMap is a plot.Plotter that fills one quadrilateral per (timestep,
// zone) cell. Cell t spans TimeEdges[t] to TimeEdges[t+1] in x and the
// bracketing radius edges at t in y.
type CellMap struct {
	Field     utils.Matrix // (T, Z)
	TimeEdges []float64    // (T+1)
	Edges     mesh.RadiusEdges
	ColorMap  palette.ColorMap
}

func (cm *CellMap) Plot(c draw.Canvas, p *plot.Plot) {
	var (
		trX, trY = p.Transforms(&c)
		nt, nz   = cm.Field.Dims()
	)
	for t := 0; t < nt; t++ {
		x0, x1 := trX(cm.TimeEdges[t]), trX(cm.TimeEdges[t+1])
		row := cm.Field.RowView(t)
		for i := 0; i < nz; i++ {
			lo, hi := cm.Edges.Bracket(t, i)
			y0, y1 := trY(lo), trY(hi)
			pts := []vg.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
			c.FillPolygon(colorAt(cm.ColorMap, row[i]), c.ClipPolygonXY(pts))
		}
	}
}

func (cm *CellMap) DataRange() (xmin, xmax, ymin, ymax float64) {
	var (
		nt, ne = cm.Edges.Dims()
		first  = true
	)
	xmin, xmax = cm.TimeEdges[0], cm.TimeEdges[len(cm.TimeEdges)-1]
	for t := 0; t < nt; t++ {
		for i := 0; i < ne; i++ {
			e := cm.Edges.Edge(t, i)
			if first || e < ymin {
				ymin = e
			}
			if first || e > ymax {
				ymax = e
			}
			first = false
		}
	}
	return
}
