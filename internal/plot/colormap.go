// Package plot renders elevation grids as figures into RGBA images: a 3D
// surface or a flat pseudocolor map, with a color bar, ticks and labels.
package plot

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// Colormap maps [0, 1] to colors through a gonum palette.ColorMap.
type Colormap struct {
	Name string
	cmap palette.ColorMap
}

// NewColormap wraps cm, setting its range to [0, 1]. A diverging map
// converges at 0.5.
func NewColormap(name string, cm palette.ColorMap) *Colormap {
	cm.SetMin(0)
	cm.SetMax(1)
	if d, ok := cm.(palette.DivergingColorMap); ok {
		d.SetConvergePoint(0.5)
	}
	return &Colormap{Name: name, cmap: cm}
}

// CoolWarm returns Moreland's diverging blue-to-red colormap.
func CoolWarm() *Colormap {
	return NewColormap("coolwarm", moreland.SmoothBlueRed())
}

// At returns the color for t. Values outside [0, 1] are clamped; NaN
// maps to transparent.
func (c *Colormap) At(t float64) color.RGBA {
	if math.IsNaN(t) {
		return color.RGBA{}
	}
	col, err := c.cmap.At(clamp(t, 0, 1))
	if err != nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(col).(color.RGBA)
}

// Norm linearly maps [Lo, Hi] onto [0, 1].
type Norm struct {
	Lo, Hi float64
}

// Scale returns the normalized position of v. A degenerate range maps to 0.
func (n Norm) Scale(v float64) float64 {
	if n.Hi == n.Lo {
		return 0
	}
	return (v - n.Lo) / (n.Hi - n.Lo)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// finiteRange returns the range of the finite values, or (0, 0) if none.
func finiteRange(vals []float64) Norm {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		return Norm{}
	}
	return Norm{Lo: lo, Hi: hi}
}
