package plotting

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/notargets/gohelios/dataio"
	"github.com/notargets/gohelios/shockfront"
)

const (
	timeLabel   = "Time (ns)"
	radiusLabel = "Radius (μm)"
)

// Options are the per figure settings. Zero values select the style
// defaults.
type Options struct {
	Title      string
	XLim, YLim *[2]float64
	LineWidth  vg.Length
	LineColor  color.Color
	ShockTrack bool    // Overlay the detected shock on field maps
	Threshold  float64 // Density ratio used for the overlay, 0 selects the default
}

func (opts Options) threshold() float64 {
	if opts.Threshold == 0 {
		return shockfront.DefaultThreshold
	}
	return opts.Threshold
}

// applyLimits must run after the plotters are added, Add grows the ranges.
func (opts Options) applyLimits(p *plot.Plot) {
	if opts.XLim != nil {
		p.X.Min, p.X.Max = opts.XLim[0], opts.XLim[1]
	}
	if opts.YLim != nil {
		p.Y.Min, p.Y.Max = opts.YLim[0], opts.YLim[1]
	}
}

func newLine(xys plotter.XYs, w vg.Length, c color.Color) (l *plotter.Line, err error) {
	if l, err = plotter.NewLine(xys); err != nil {
		return
	}
	l.LineStyle.Width = w
	l.LineStyle.Color = c
	return
}

// RadiusPlot draws the trajectory of every zone edge against time.
func RadiusPlot(ds *dataio.Dataset, st Style, opts Options) (f *Figure, err error) {
	var (
		nt, ne = ds.RadiusEdgesUM.Dims()
		w, c   = st.lineStyle(opts)
		p      = st.newPlot(opts.Title, timeLabel, radiusLabel)
		l      *plotter.Line
	)
	for i := 0; i < ne; i++ {
		r := ds.RadiusEdgesUM.History(i)
		xys := make(plotter.XYs, nt)
		for t := range xys {
			xys[t] = plotter.XY{X: ds.TimeNS[t], Y: r[t]}
		}
		if l, err = newLine(xys, w, c); err != nil {
			return
		}
		p.Add(l)
	}
	opts.applyLimits(p)
	f = &Figure{Plot: p}
	return
}

// FieldMap draws a pseudo color map of one field over time and radius with
// a color bar, optionally overlaid with the detected shock front.
func FieldMap(ds *dataio.Dataset, field dataio.Field, st Style, opts Options) (f *Figure, err error) {
	var (
		p   = st.newPlot(opts.Title, timeLabel, radiusLabel)
		bar = st.newPlot(field.Label(), "", "")
		cm  = &CellMap{TimeEdges: ds.TimeEdgesNS, Edges: ds.RadiusEdgesUM}
	)
	if cm.Field, err = ds.Field(field); err != nil {
		return
	}
	if cm.ColorMap, err = NewColorMap(st.ColorMap, cm.Field.Min(), cm.Field.Max()); err != nil {
		return
	}
	p.Add(cm)
	if opts.ShockTrack {
		var (
			tr shockfront.Trajectory
			l  *plotter.Line
		)
		if tr, err = shockfront.DetectShockFront(ds.MassDensity, ds.RadiusEdgesUM, ds.TimeEdgesNS,
			opts.threshold()); err != nil {
			return
		}
		if l, err = newLine(trajectoryXYs(tr), vg.Points(1), color.White); err != nil {
			return
		}
		l.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(1)}
		p.Add(l)
	}
	opts.applyLimits(p)

	bar.HideX()
	bar.Add(&plotter.ColorBar{ColorMap: cm.ColorMap, Vertical: true})
	f = &Figure{Plot: p, ColorBar: bar}
	return
}

func trajectoryXYs(tr shockfront.Trajectory) (xys plotter.XYs) {
	xys = make(plotter.XYs, tr.Len())
	for i, pt := range tr.Points() {
		xys[i] = plotter.XY{X: pt[0], Y: pt[1]}
	}
	return
}

// ShockTrackPlot draws a shock trajectory on its own.
func ShockTrackPlot(tr shockfront.Trajectory, st Style, opts Options) (f *Figure, err error) {
	var (
		w, c = st.lineStyle(opts)
		p    = st.newPlot(opts.Title, timeLabel, "Shock radius (μm)")
		l    *plotter.Line
	)
	if tr.Len() == 0 {
		err = fmt.Errorf("%w: empty trajectory", ErrLength)
		return
	}
	if l, err = newLine(trajectoryXYs(tr), w, c); err != nil {
		return
	}
	p.Add(l)
	opts.applyLimits(p)
	f = &Figure{Plot: p}
	return
}

// SeriesPlot draws y against time, used for the per timestep maxima.
func SeriesPlot(time, y []float64, yLabel string, st Style, opts Options) (f *Figure, err error) {
	var (
		w, c = st.lineStyle(opts)
		p    = st.newPlot(opts.Title, timeLabel, yLabel)
		l    *plotter.Line
	)
	if len(time) != len(y) || len(y) == 0 {
		err = fmt.Errorf("%w: %d times, %d values", ErrLength, len(time), len(y))
		return
	}
	xys := make(plotter.XYs, len(y))
	for i := range xys {
		xys[i] = plotter.XY{X: time[i], Y: y[i]}
	}
	if l, err = newLine(xys, w, c); err != nil {
		return
	}
	p.Add(l)
	opts.applyLimits(p)
	f = &Figure{Plot: p}
	return
}
