package plotting

import (
	"context"
	"image/color"
	"math"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/gohelios/dataio"
	"github.com/notargets/gohelios/shockfront"
)

// Lines holds line segments per color as x1,y1,x2,y2 runs, the form chart2d
// draws.
type Lines map[color.RGBA][]float32

// AddPolyline appends the segments joining consecutive points.
func (ll Lines) AddPolyline(x, y []float64, col color.RGBA) {
	for i := 1; i < len(x) && i < len(y); i++ {
		ll[col] = append(ll[col],
			float32(x[i-1]), float32(y[i-1]),
			float32(x[i]), float32(y[i]),
		)
	}
}

func (ll Lines) bounds() (xMin, xMax, yMin, yMax float32) {
	xMin, xMax = float32(math.MaxFloat32), -float32(math.MaxFloat32)
	yMin, yMax = float32(math.MaxFloat32), -float32(math.MaxFloat32)
	for _, line := range ll {
		for i := 0; i+1 < len(line); i += 2 {
			xMin, xMax = min(xMin, line[i]), max(xMax, line[i])
			yMin, yMax = min(yMin, line[i+1]), max(yMax, line[i+1])
		}
	}
	return
}

// TrajectoryLines traces every zone edge in black and, when tr is not empty,
// the shock front in red.
func TrajectoryLines(ds *dataio.Dataset, tr shockfront.Trajectory) (ll Lines) {
	_, ne := ds.RadiusEdgesUM.Dims()
	ll = make(Lines)
	for i := 0; i < ne; i++ {
		ll.AddPolyline(ds.TimeNS, ds.RadiusEdgesUM.History(i), utils2.BLACK)
	}
	if tr.Len() > 0 {
		ll.AddPolyline(tr.Time, tr.Radius, utils2.RED)
	}
	return
}

// Interactive opens a chart window with the lines and holds it open until
// ctx is done.
func Interactive(ctx context.Context, ll Lines) {
	var (
		xMin, xMax, yMin, yMax = ll.bounds()
	)
	if len(ll) == 0 {
		return
	}
	ch := chart2d.NewChart2D(xMin, xMax, yMin, yMax,
		1024, 1024, utils2.WHITE, utils2.BLACK)
	for col, line := range ll {
		ch.AddLine(line, col)
	}
	<-ctx.Done()
}
