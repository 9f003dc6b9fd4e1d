// Package plotting renders datasets and shock trajectories as publication
// style figures. Every call takes its Style explicitly; nothing here touches
// global plotting state.
package plotting

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
)

var (
	ErrFormat   = errors.New("plotting: unsupported image format")
	ErrColorMap = errors.New("plotting: unknown color map")
	ErrPlotKind = errors.New("plotting: unknown plot kind")
	ErrLength   = errors.New("plotting: series length mismatch")
)

// Style holds the figure wide text, border and tick settings.
type Style struct {
	FontSize    vg.Length
	Typeface    font.Typeface
	Variant     font.Variant // Liberation Sans is metric compatible with Arial
	DPI         int
	BorderWidth vg.Length
	TickLength  vg.Length
	TickWidth   vg.Length
	LineWidth   vg.Length
	Width       vg.Length
	Height      vg.Length
	ColorMap    string
}

func DefaultStyle() Style {
	return Style{
		FontSize:    vg.Points(7),
		Typeface:    "Liberation",
		Variant:     "Sans",
		DPI:         200,
		BorderWidth: vg.Points(0.5),
		TickLength:  vg.Points(3),
		TickWidth:   vg.Points(0.5),
		LineWidth:   vg.Points(0.5),
		Width:       8.5 * vg.Centimeter,
		Height:      8.5 / 1.618 * vg.Centimeter,
		ColorMap:    "jet",
	}
}

func (st Style) font() font.Font {
	return font.Font{
		Typeface: st.Typeface,
		Variant:  st.Variant,
		Size:     st.FontSize,
	}
}

// newPlot returns a plot with the style applied and the given labels.
func (st Style) newPlot(title, xLabel, yLabel string) (p *plot.Plot) {
	var (
		fnt = st.font()
	)
	p = plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font = fnt
	p.Legend.TextStyle.Font = fnt
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle.Font = fnt
		ax.Tick.Label.Font = fnt
		ax.Tick.Length = st.TickLength
		ax.Tick.LineStyle.Width = st.TickWidth
		ax.LineStyle.Width = st.BorderWidth
	}
	return
}

func (st Style) lineStyle(opts Options) (w vg.Length, c color.Color) {
	w, c = st.LineWidth, color.Color(color.Black)
	if opts.LineWidth > 0 {
		w = opts.LineWidth
	}
	if opts.LineColor != nil {
		c = opts.LineColor
	}
	return
}

func (st Style) String() string {
	return fmt.Sprintf("%s %s %.1fpt, %d dpi, %.2fcm x %.2fcm, %s",
		st.Typeface, st.Variant, float64(st.FontSize), st.DPI,
		float64(st.Width/vg.Centimeter), float64(st.Height/vg.Centimeter), st.ColorMap)
}
