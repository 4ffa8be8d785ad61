package plot

import (
	"image"
	"math"

	"gonum.org/v1/gonum/mat"
)

// drawFlat draws a pseudocolor map. The cell between mesh points (i, j)
// and (i+1, j+1) is colored by z(i, j), so the last row and column of z
// only place cell corners.
func drawFlat(p *painter, axes image.Rectangle, xx, yy, z *mat.Dense, opts Options) Norm {
	rows, cols := z.Dims()
	xlo, xhi := extent(xx)
	ylo, yhi := extent(yy)

	vals := make([]float64, 0, (rows-1)*(cols-1))
	for i := 0; i < rows-1; i++ {
		vals = append(vals, z.RawRowView(i)[:cols-1]...)
	}
	norm := finiteRange(vals)

	toPx := func(x, y float64) point {
		return point{
			x: float64(axes.Min.X) + (x-xlo)/(xhi-xlo)*float64(axes.Dx()),
			y: float64(axes.Max.Y) - (y-ylo)/(yhi-ylo)*float64(axes.Dy()),
		}
	}

	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols-1; j++ {
			c := opts.Colormap.At(norm.Scale(z.At(i, j)))
			a := toPx(xx.At(i, j), yy.At(i, j))
			b := toPx(xx.At(i+1, j+1), yy.At(i+1, j+1))
			if xx.At(i+1, j) == xx.At(i, j) && yy.At(i, j+1) == yy.At(i, j) {
				// Rectilinear cell: snap to whole pixels so cells tile exactly.
				p.fillRect(image.Rect(
					int(math.Round(a.x)), int(math.Round(b.y)),
					int(math.Round(b.x)), int(math.Round(a.y)),
				).Canon(), c)
				continue
			}
			p.fillPolygon([]point{
				a,
				toPx(xx.At(i, j+1), yy.At(i, j+1)),
				b,
				toPx(xx.At(i+1, j), yy.At(i+1, j)),
			}, c)
		}
	}

	drawFrame(p, axes)
	drawAxisTicks(p, axes, xlo, xhi, ylo, yhi)
	if opts.XLabel != "" {
		drawText(p.dst, opts.XLabel, (axes.Min.X+axes.Max.X)/2, axes.Max.Y+24, alignMiddle, alignStart)
	}
	if opts.YLabel != "" {
		drawTextVertical(p.dst, opts.YLabel, axes.Min.X-52, (axes.Min.Y+axes.Max.Y)/2)
	}
	return norm
}

func drawFrame(p *painter, r image.Rectangle) {
	p.fillRect(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), frameColor)
	p.fillRect(image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), frameColor)
	p.fillRect(image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), frameColor)
	p.fillRect(image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), frameColor)
}

const tickLen = 4

func drawAxisTicks(p *painter, axes image.Rectangle, xlo, xhi, ylo, yhi float64) {
	for _, tk := range Ticks(xlo, xhi) {
		x := axes.Min.X + int(math.Round((tk.Value-xlo)/(xhi-xlo)*float64(axes.Dx()-1)))
		p.fillRect(image.Rect(x, axes.Max.Y, x+1, axes.Max.Y+tickLen), frameColor)
		drawText(p.dst, tk.Label, x, axes.Max.Y+tickLen+2, alignMiddle, alignStart)
	}

	for _, tk := range Ticks(ylo, yhi) {
		y := axes.Max.Y - 1 - int(math.Round((tk.Value-ylo)/(yhi-ylo)*float64(axes.Dy()-1)))
		p.fillRect(image.Rect(axes.Min.X-tickLen, y, axes.Min.X, y+1), frameColor)
		drawText(p.dst, tk.Label, axes.Min.X-tickLen-3, y, alignEnd, alignMiddle)
	}
}
