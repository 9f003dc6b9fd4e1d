package plotting

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure is a main plot with an optional color bar drawn to its right.
type Figure struct {
	Plot     *plot.Plot
	ColorBar *plot.Plot
}

const colorBarFraction = 0.2

func (f *Figure) draw(st Style) (c *vgimg.Canvas) {
	c = vgimg.NewWith(vgimg.UseWH(st.Width, st.Height), vgimg.UseDPI(st.DPI))
	dc := draw.New(c)
	if f.ColorBar == nil {
		f.Plot.Draw(dc)
		return
	}
	barWidth := vg.Length(colorBarFraction) * (dc.Max.X - dc.Min.X)
	f.Plot.Draw(draw.Crop(dc, 0, -barWidth, 0, 0))
	f.ColorBar.Draw(draw.Crop(dc, dc.Max.X-dc.Min.X-barWidth, 0, 0, 0))
	return
}

// WriteTo renders the figure in the given format: png, jpg or tif.
func (f *Figure) WriteTo(w io.Writer, format string, st Style) (err error) {
	var (
		c  = f.draw(st)
		wt io.WriterTo
	)
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "png":
		wt = vgimg.PngCanvas{Canvas: c}
	case "jpg", "jpeg":
		wt = vgimg.JpegCanvas{Canvas: c}
	case "tif", "tiff":
		wt = vgimg.TiffCanvas{Canvas: c}
	default:
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
	_, err = wt.WriteTo(w)
	return
}

// Save writes the figure to path, the format follows the extension.
func (f *Figure) Save(path string, st Style) (err error) {
	var (
		file *os.File
		ext  = filepath.Ext(path)
	)
	switch strings.ToLower(ext) {
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
	default:
		return fmt.Errorf("%w: %q", ErrFormat, ext)
	}
	if file, err = os.Create(path); err != nil {
		return
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return f.WriteTo(file, ext, st)
}
