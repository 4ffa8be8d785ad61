package plot

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

type align int

const (
	alignStart align = iota
	alignMiddle
	alignEnd
)

var (
	face      = basicfont.Face7x13
	textColor = color.RGBA{0, 0, 0, 255}
)

func textWidth(s string) int {
	return font.MeasureString(face, s).Ceil()
}

// drawText draws s anchored at (x, y). h aligns horizontally, v vertically
// (start is the top of the text, end is its bottom).
func drawText(dst draw.Image, s string, x, y int, h, v align) {
	w := textWidth(s)
	m := face.Metrics()
	ascent, height := m.Ascent.Ceil(), m.Height.Ceil()

	switch h {
	case alignMiddle:
		x -= w / 2
	case alignEnd:
		x -= w
	}
	baseline := y + ascent
	switch v {
	case alignMiddle:
		baseline -= height / 2
	case alignEnd:
		baseline -= height
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(textColor),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}

// drawTextVertical draws s rotated a quarter turn counter-clockwise,
// centred on (cx, cy), reading bottom to top.
func drawTextVertical(dst draw.Image, s string, cx, cy int) {
	w := textWidth(s)
	h := face.Metrics().Height.Ceil()
	if w == 0 || h == 0 {
		return
	}
	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	drawText(tmp, s, 0, 0, alignStart, alignStart)

	rot := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			rot.SetRGBA(y, w-1-x, tmp.RGBAAt(x, y))
		}
	}
	r := image.Rect(cx-h/2, cy-w/2, cx-h/2+h, cy-w/2+w)
	draw.Draw(dst, r, rot, image.Point{}, draw.Over)
}
