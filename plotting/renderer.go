package plotting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/notargets/gohelios/dataio"
	"github.com/notargets/gohelios/shockfront"
	"github.com/notargets/gohelios/smoothing"
)

// Kinds lists every plot kind FileRenderer knows how to draw.
var Kinds = []string{
	"radius", "density", "elecdensity", "eletemp", "iontemp", "radtemp",
	"pressure", "fluidvel", "shocktrack", "max_pressure", "max_density",
}

// FileRenderer draws plots to image files in Dir. It satisfies
// dataio.Renderer.
type FileRenderer struct {
	Dir          string
	Name         string // File name prefix, the dataset title when empty
	Format       string // png when empty
	Style        Style
	Options      Options
	Smooth       bool
	WindowLength int
	PolyOrder    int
}

func NewFileRenderer(dir string, st Style) *FileRenderer {
	return &FileRenderer{
		Dir:          dir,
		Format:       "png",
		Style:        st,
		Smooth:       true,
		WindowLength: smoothing.DefaultWindow,
		PolyOrder:    smoothing.DefaultPolyOrder,
	}
}

func (r *FileRenderer) name(ds *dataio.Dataset) (name string) {
	if name = r.Name; name == "" {
		name = ds.Title
	}
	return strings.TrimSpace(name)
}

func (r *FileRenderer) title(ds *dataio.Dataset, what string) string {
	if r.Options.Title != "" {
		return r.Options.Title
	}
	return strings.TrimSpace(r.name(ds) + " " + what)
}

// Build constructs the figure for a plot kind without writing it.
func (r *FileRenderer) Build(kind string, ds *dataio.Dataset) (f *Figure, err error) {
	var (
		opts = r.Options
	)
	switch kind {
	case "radius":
		opts.Title = r.title(ds, "Zone Trajectories")
		return RadiusPlot(ds, r.Style, opts)
	case "shocktrack":
		var tr shockfront.Trajectory
		if tr, err = shockfront.DetectShockFront(ds.MassDensity, ds.RadiusEdgesUM, ds.TimeEdgesNS,
			opts.threshold()); err != nil {
			return
		}
		opts.Title = r.title(ds, "Shock Trajectory")
		return ShockTrackPlot(tr, r.Style, opts)
	case "max_pressure":
		var mx []float64
		if _, err = ds.Field(dataio.FieldPressure); err != nil {
			return
		}
		if mx, err = smoothing.MaxPressure(ds.Pressure, r.Smooth, r.WindowLength, r.PolyOrder); err != nil {
			return
		}
		opts.Title = r.title(ds, "Max Pressure")
		return SeriesPlot(ds.TimeNS, mx, dataio.FieldPressure.Label(), r.Style, opts)
	case "max_density":
		var mx []float64
		if mx, err = smoothing.MaxDensity(ds.MassDensity, r.Smooth, r.WindowLength, r.PolyOrder); err != nil {
			return
		}
		opts.Title = r.title(ds, "Max Density")
		return SeriesPlot(ds.TimeNS, mx, dataio.FieldMassDensity.Label(), r.Style, opts)
	}
	var (
		field dataio.Field
	)
	if field, err = dataio.ParseField(kind); err != nil {
		err = fmt.Errorf("%w: %q", ErrPlotKind, kind)
		return
	}
	opts.Title = r.title(ds, field.Label())
	return FieldMap(ds, field, r.Style, opts)
}

// Render builds the figure and saves it as <Dir>/<name>_<kind>.<format>.
func (r *FileRenderer) Render(kind string, ds *dataio.Dataset) (path string, err error) {
	var (
		f      *Figure
		format = r.Format
		stem   = kind
	)
	if f, err = r.Build(kind, ds); err != nil {
		return
	}
	if format == "" {
		format = "png"
	}
	if name := r.name(ds); name != "" {
		stem = fileStem(name) + "_" + kind
	}
	if r.Dir != "" {
		if err = os.MkdirAll(r.Dir, 0o755); err != nil {
			return
		}
	}
	path = filepath.Join(r.Dir, stem+"."+format)
	if err = f.Save(path, r.Style); err != nil {
		path = ""
	}
	return
}

// fileStem keeps letters, digits, dots and dashes, joining the rest with
// single underscores.
func fileStem(name string) string {
	return strings.Join(strings.FieldsFunc(name, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-')
	}), "_")
}
