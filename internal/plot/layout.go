package plot

import (
	"image"
	"math"
)

// Subplot margins and colorbar placement, as fractions of the figure.
const (
	marginLeft   = 0.125
	marginRight  = 0.90
	marginBottom = 0.11
	marginTop    = 0.88

	colorbarFraction = 0.15
	colorbarPad      = 0.05
)

// Layout holds the pixel rectangles of a figure.
type Layout struct {
	Figure   image.Rectangle
	Axes     image.Rectangle
	Colorbar image.Rectangle
}

// NewLayout places the axes and colorbar inside bounds. The colorbar
// takes a slot on the right of the axes; its height is shrink times the
// axes height and its width is height/aspect, capped by the slot.
func NewLayout(bounds image.Rectangle, opts Options) Layout {
	opts = opts.withDefaults()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	ox, oy := float64(bounds.Min.X), float64(bounds.Min.Y)

	left := ox + marginLeft*w
	right := ox + marginRight*w
	top := oy + (1-marginTop)*h
	bottom := oy + (1-marginBottom)*h

	parent := right - left
	axesRight := right - (colorbarFraction+colorbarPad)*parent

	axesH := bottom - top
	cbH := opts.ColorbarShrink * axesH
	cbW := math.Min(cbH/opts.ColorbarAspect, colorbarFraction*parent)
	cbLeft := axesRight + colorbarPad*parent
	cbTop := top + (axesH-cbH)/2

	return Layout{
		Figure:   bounds,
		Axes:     rect(left, top, axesRight, bottom),
		Colorbar: rect(cbLeft, cbTop, cbLeft+cbW, cbTop+cbH),
	}
}

func rect(x0, y0, x1, y1 float64) image.Rectangle {
	return image.Rect(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)))
}
