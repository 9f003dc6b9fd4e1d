package plotting

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// NewColorMap returns the named map scaled to [min, max]. A degenerate
// range is widened so the map stays usable.
func NewColorMap(name string, min, max float64) (cm palette.ColorMap, err error) {
	switch strings.ToLower(name) {
	case "jet", "":
		cm = &jet{alpha: 1}
	case "bluered":
		cm = moreland.SmoothBlueRed()
	case "blackbody":
		cm = moreland.BlackBody()
	case "kindlmann":
		cm = moreland.Kindlmann()
	default:
		err = fmt.Errorf("%w: %q", ErrColorMap, name)
		return
	}
	if max < min {
		min, max = max, min
	}
	if max == min {
		pad := 0.5 * math.Max(math.Abs(min), 1)
		min, max = min-pad, max+pad
	}
	cm.SetMin(min)
	cm.SetMax(max)
	return
}

// colorAt clamps v into the map range before lookup.
func colorAt(cm palette.ColorMap, v float64) color.Color {
	v = math.Max(cm.Min(), math.Min(cm.Max(), v))
	c, err := cm.At(v)
	if err != nil {
		return color.Transparent
	}
	return c
}

type jetSegment struct{ x, y float64 }

// Piecewise linear channel data of the classic jet map.
var (
	jetRed   = []jetSegment{{0, 0}, {0.35, 0}, {0.66, 1}, {0.89, 1}, {1, 0.5}}
	jetGreen = []jetSegment{{0, 0}, {0.125, 0}, {0.375, 1}, {0.64, 1}, {0.91, 0}, {1, 0}}
	jetBlue  = []jetSegment{{0, 0.5}, {0.11, 1}, {0.34, 1}, {0.65, 0}, {1, 0}}
)

func jetChannel(seg []jetSegment, x float64) float64 {
	for i := 1; i < len(seg); i++ {
		if x <= seg[i].x {
			f := (x - seg[i-1].x) / (seg[i].x - seg[i-1].x)
			return seg[i-1].y + f*(seg[i].y-seg[i-1].y)
		}
	}
	return seg[len(seg)-1].y
}

type jet struct {
	min, max, alpha float64
}

func (j *jet) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < j.min:
		return nil, palette.ErrUnderflow
	case v > j.max:
		return nil, palette.ErrOverflow
	}
	x := 0.
	if j.max > j.min {
		x = (v - j.min) / (j.max - j.min)
	}
	a := 255 * j.alpha
	return color.NRGBA{
		R: uint8(math.Round(255 * jetChannel(jetRed, x))),
		G: uint8(math.Round(255 * jetChannel(jetGreen, x))),
		B: uint8(math.Round(255 * jetChannel(jetBlue, x))),
		A: uint8(math.Round(a)),
	}, nil
}

func (j *jet) Max() float64       { return j.max }
func (j *jet) SetMax(v float64)   { j.max = v }
func (j *jet) Min() float64       { return j.min }
func (j *jet) SetMin(v float64)   { j.min = v }
func (j *jet) Alpha() float64     { return j.alpha }
func (j *jet) SetAlpha(a float64) { j.alpha = a }

func (j *jet) Palette(n int) palette.Palette {
	cs := make(colors, n)
	step := 0.
	if n > 1 {
		step = (j.max - j.min) / float64(n-1)
	}
	for i := range cs {
		cs[i] = colorAt(j, j.min+float64(i)*step)
	}
	return cs
}

type colors []color.Color

func (c colors) Colors() []color.Color { return c }
