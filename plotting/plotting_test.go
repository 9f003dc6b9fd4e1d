package plotting

import (
	"bytes"
	"context"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	utils2 "github.com/notargets/avs/utils"
	"gonum.org/v1/plot/vg"

	"github.com/notargets/gohelios/dataio"
	"github.com/notargets/gohelios/shockfront"
	"github.com/notargets/gohelios/sod_shock_tube"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func sodDataset(t *testing.T) *dataio.Dataset {
	src := sod_shock_tube.NewSource(sod_shock_tube.NewStrongProblem(), 12, 40, 0.2)
	ds, err := dataio.Load(src)
	require.NoError(t, err)
	return ds
}

func TestColorMaps(t *testing.T) {
	cm, err := NewColorMap("jet", 0, 10)
	require.NoError(t, err)
	lo, err := cm.At(0)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0, G: 0, B: 128, A: 255}, lo)
	hi, err := cm.At(10)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 128, G: 0, B: 0, A: 255}, hi)
	assert.Equal(t, lo, colorAt(cm, -5))
	assert.Equal(t, hi, colorAt(cm, 50))
	assert.Len(t, cm.Palette(5).Colors(), 5)

	for _, name := range []string{"bluered", "blackbody", "kindlmann", "JET"} {
		cm, err = NewColorMap(name, -1, 1)
		require.NoError(t, err, name)
		assert.Equal(t, -1., cm.Min())
		assert.Equal(t, 1., cm.Max())
	}

	_, err = NewColorMap("viridis", 0, 1)
	assert.ErrorIs(t, err, ErrColorMap)

	// Constant fields still get a usable range
	cm, err = NewColorMap("jet", 2, 2)
	require.NoError(t, err)
	assert.Less(t, cm.Min(), 2.)
	assert.Greater(t, cm.Max(), 2.)
	_, err = cm.At(2)
	assert.NoError(t, err)

	cm, err = NewColorMap("jet", 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 1., cm.Min())
	assert.Equal(t, 3., cm.Max())
}

func TestStyle(t *testing.T) {
	st := DefaultStyle()
	assert.Equal(t, 200, st.DPI)
	assert.Equal(t, vg.Points(7), st.FontSize)
	assert.InDelta(t, float64(8.5*vg.Centimeter), float64(st.Width), 1e-9)
	assert.Contains(t, st.String(), "jet")

	w, c := st.lineStyle(Options{})
	assert.Equal(t, st.LineWidth, w)
	assert.Equal(t, color.Color(color.Black), c)
	w, c = st.lineStyle(Options{LineWidth: vg.Points(2), LineColor: color.White})
	assert.Equal(t, vg.Points(2), w)
	assert.Equal(t, color.Color(color.White), c)

	p := st.newPlot("title", timeLabel, radiusLabel)
	assert.Equal(t, "title", p.Title.Text)
	assert.Equal(t, st.TickLength, p.X.Tick.Length)
	assert.Equal(t, st.FontSize, p.Y.Label.TextStyle.Font.Size)
}

func TestCellMapDataRange(t *testing.T) {
	ds := sodDataset(t)
	cm := &CellMap{Field: ds.MassDensity, TimeEdges: ds.TimeEdgesNS, Edges: ds.RadiusEdgesUM}
	xmin, xmax, ymin, ymax := cm.DataRange()
	assert.Equal(t, ds.TimeEdgesNS[0], xmin)
	assert.Equal(t, ds.TimeEdgesNS[len(ds.TimeEdgesNS)-1], xmax)
	assert.InDelta(t, 0., ymin, 1e-9)
	assert.InDelta(t, 1., ymax, 1e-9)
}

func TestFigureWrite(t *testing.T) {
	var (
		ds = sodDataset(t)
		st = DefaultStyle()
	)
	f, err := FieldMap(ds, dataio.FieldMassDensity, st, Options{ShockTrack: true, YLim: &[2]float64{0, 1}})
	require.NoError(t, err)
	require.NotNil(t, f.ColorBar)
	assert.Equal(t, 1., f.Plot.Y.Max)

	var buf bytes.Buffer
	require.NoError(t, f.WriteTo(&buf, "png", st))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngSignature))

	buf.Reset()
	require.NoError(t, f.WriteTo(&buf, ".jpg", st))
	assert.NotZero(t, buf.Len())

	assert.ErrorIs(t, f.WriteTo(&buf, "bmp", st), ErrFormat)
	assert.ErrorIs(t, f.Save(filepath.Join(t.TempDir(), "out.gif"), st), ErrFormat)

	path := filepath.Join(t.TempDir(), "radius.png")
	f, err = RadiusPlot(ds, st, Options{Title: "zones"})
	require.NoError(t, err)
	assert.Nil(t, f.ColorBar)
	require.NoError(t, f.Save(path, st))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, pngSignature))
}

func TestFigureErrors(t *testing.T) {
	st := DefaultStyle()
	_, err := SeriesPlot([]float64{0, 1}, []float64{1}, "y", st, Options{})
	assert.ErrorIs(t, err, ErrLength)
	_, err = ShockTrackPlot(shockfront.Trajectory{}, st, Options{})
	assert.ErrorIs(t, err, ErrLength)

	ds := sodDataset(t)
	_, err = FieldMap(ds, dataio.FieldRadTemperature, st, Options{})
	assert.ErrorIs(t, err, dataio.ErrMissingVariable)
}

func TestFileRenderer(t *testing.T) {
	var (
		ds  = sodDataset(t)
		dir = filepath.Join(t.TempDir(), "plots")
		r   = NewFileRenderer(dir, DefaultStyle())
	)
	r.Name = "sod test"
	r.Options.ShockTrack = true
	for _, kind := range Kinds {
		path, err := r.Render(kind, ds)
		switch kind {
		case "elecdensity", "radtemp":
			assert.ErrorIs(t, err, dataio.ErrMissingVariable, kind)
			assert.Empty(t, path)
			continue
		}
		require.NoError(t, err, kind)
		assert.Equal(t, filepath.Join(dir, "sod_test_"+kind+".png"), path)
		assert.FileExists(t, path)
	}

	_, err := r.Render("vorticity", ds)
	assert.ErrorIs(t, err, ErrPlotKind)

	f, err := r.Build("max_pressure", ds)
	require.NoError(t, err)
	assert.Equal(t, "sod test Max Pressure", f.Plot.Title.Text)

	r.Options.Title = "fixed"
	f, err = r.Build("density", ds)
	require.NoError(t, err)
	assert.Equal(t, "fixed", f.Plot.Title.Text)

	// The renderer plugs into the facade
	h, err := dataio.NewHelios(sod_shock_tube.NewSource(sod_shock_tube.NewProblem(), 12, 40, 0.2), r)
	require.NoError(t, err)
	path, err := h.Plot("pressure")
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestFileStem(t *testing.T) {
	assert.Equal(t, "Riemann_problem_left_rho_1_P_1", fileStem("Riemann problem: left (rho 1, P 1)"))
	assert.Equal(t, "run-2.5", fileStem(" run-2.5 "))
}

func TestInteractiveLines(t *testing.T) {
	var (
		ds     = sodDataset(t)
		nt, ne = ds.RadiusEdgesUM.Dims()
	)
	tr, err := shockfront.DetectShockFront(ds.MassDensity, ds.RadiusEdgesUM, ds.TimeEdgesNS, shockfront.DefaultThreshold)
	require.NoError(t, err)
	ll := TrajectoryLines(ds, tr)
	assert.Len(t, ll, 2)
	assert.Len(t, ll[utils2.BLACK], 4*ne*(nt-1))
	assert.Len(t, ll[utils2.RED], 4*(tr.Len()-1))

	xMin, xMax, yMin, yMax := ll.bounds()
	// The shock track starts at the first time edge
	assert.InDelta(t, ds.TimeEdgesNS[0], float64(xMin), 1e-6)
	assert.InDelta(t, 0.2, float64(xMax), 1e-6)
	assert.InDelta(t, 0., float64(yMin), 1e-6)
	assert.InDelta(t, 1., float64(yMax), 1e-6)

	// Nothing to draw returns without opening a window
	Interactive(context.Background(), Lines{})
}
