package plot

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

type point struct{ x, y float64 }

// painter draws filled shapes into an RGBA image. The rasterizer is sized
// to each shape's bounding box and reused between calls.
type painter struct {
	dst *image.RGBA
	z   *vector.Rasterizer
}

func newPainter(dst *image.RGBA) *painter {
	return &painter{dst: dst, z: vector.NewRasterizer(0, 0)}
}

func (p *painter) fillRect(r image.Rectangle, c color.Color) {
	draw.Draw(p.dst, r.Intersect(p.dst.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

// fillPolygon fills a closed polygon with anti-aliased edges. Vertices
// outside the image are clamped to its bounds.
func (p *painter) fillPolygon(pts []point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	b := p.dst.Bounds()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	q := make([]point, len(pts))
	for i, v := range pts {
		v.x = clamp(v.x, float64(b.Min.X), float64(b.Max.X))
		v.y = clamp(v.y, float64(b.Min.Y), float64(b.Max.Y))
		q[i] = v
		minX, maxX = math.Min(minX, v.x), math.Max(maxX, v.x)
		minY, maxY = math.Min(minY, v.y), math.Max(maxY, v.y)
	}
	r := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	if r.Empty() {
		return
	}

	p.z.Reset(r.Dx(), r.Dy())
	p.z.DrawOp = draw.Over
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	p.z.MoveTo(float32(q[0].x-ox), float32(q[0].y-oy))
	for _, v := range q[1:] {
		p.z.LineTo(float32(v.x-ox), float32(v.y-oy))
	}
	p.z.ClosePath()
	p.z.Draw(p.dst, r, image.NewUniform(c), image.Point{})
}

// line draws a segment of the given width.
func (p *painter) line(a, b point, width float64, c color.Color) {
	dx, dy := b.x-a.x, b.y-a.y
	n := math.Hypot(dx, dy)
	if n == 0 {
		return
	}
	nx, ny := -dy/n*width/2, dx/n*width/2
	p.fillPolygon([]point{
		{a.x + nx, a.y + ny},
		{b.x + nx, b.y + ny},
		{b.x - nx, b.y - ny},
		{a.x - nx, a.y - ny},
	}, c)
}

// dilate pushes every vertex d pixels away from the centroid so that
// neighbouring faces overlap and no background shows through the seams.
func dilate(pts []point, d float64) {
	var cx, cy float64
	for _, v := range pts {
		cx += v.x
		cy += v.y
	}
	cx /= float64(len(pts))
	cy /= float64(len(pts))
	for i, v := range pts {
		dx, dy := v.x-cx, v.y-cy
		n := math.Hypot(dx, dy)
		if n == 0 {
			continue
		}
		pts[i] = point{v.x + dx/n*d, v.y + dy/n*d}
	}
}
