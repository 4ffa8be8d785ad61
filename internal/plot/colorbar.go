package plot

import (
	"image"
	"math"
)

// drawColorbar fills r with the colormap from norm.Lo (bottom) to
// norm.Hi (top) and labels it on the right.
func drawColorbar(p *painter, r image.Rectangle, norm Norm, cmap *Colormap) {
	if r.Empty() {
		return
	}
	h := r.Dy()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		t := 0.5
		if h > 1 {
			t = float64(r.Max.Y-1-y) / float64(h-1)
		}
		p.fillRect(image.Rect(r.Min.X, y, r.Max.X, y+1), cmap.At(t))
	}
	drawFrame(p, r)

	if !(norm.Hi > norm.Lo) {
		return
	}
	for _, tk := range Ticks(norm.Lo, norm.Hi) {
		y := r.Max.Y - 1 - int(math.Round(norm.Scale(tk.Value)*float64(h-1)))
		p.fillRect(image.Rect(r.Max.X, y, r.Max.X+tickLen, y+1), frameColor)
		drawText(p.dst, tk.Label, r.Max.X+tickLen+3, y, alignStart, alignMiddle)
	}
}
