package plot

import (
	"image"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Half extents of the 3D box; the vertical axis is drawn at 3/4 scale.
const (
	boxX = 0.5
	boxY = 0.5
	boxZ = 0.375
)

var (
	paneColor = color.RGBA{238, 238, 238, 255}
	paneEdge  = color.RGBA{170, 170, 170, 255}
	gridColor = color.RGBA{214, 214, 214, 255}
)

type quad struct {
	pts   [4]point
	depth float64
	value float64
}

// drawSurface draws z as filled quads, far ones first, inside a box whose
// vertical range is SurfaceLimits(z). Each quad is colored by the mean of
// its four corners.
func drawSurface(p *painter, axes image.Rectangle, xx, yy, z *mat.Dense, opts Options) Norm {
	rows, cols := z.Dims()
	xlo, xhi := extent(xx)
	ylo, yhi := extent(yy)
	zlo, zhi := SurfaceLimits(z)

	toBox := func(x, y, v float64) r3.Vec {
		return r3.Vec{
			X: (x-xlo)/(xhi-xlo)*2*boxX - boxX,
			Y: (y-ylo)/(yhi-ylo)*2*boxY - boxY,
			Z: (clamp(v, zlo, zhi)-zlo)/(zhi-zlo)*2*boxZ - boxZ,
		}
	}

	pr := fitBox(opts.View, axes)
	sides := backSides(pr.eye)
	drawPanes(p, pr, sides)
	drawGrid(p, pr, sides,
		boxTicks(xlo, xhi, boxX), boxTicks(ylo, yhi, boxY), boxTicks(zlo, zhi, boxZ))

	quads := make([]quad, 0, (rows-1)*(cols-1))
	vals := make([]float64, 0, cap(quads))
	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols-1; j++ {
			var q quad
			var sum float64
			for k, c := range [4][2]int{{i, j}, {i, j + 1}, {i + 1, j + 1}, {i + 1, j}} {
				v := z.At(c[0], c[1])
				b := toBox(xx.At(c[0], c[1]), yy.At(c[0], c[1]), v)
				q.pts[k] = pr.screen(b)
				q.depth += pr.depth(b)
				sum += v
			}
			q.value = sum / 4
			quads = append(quads, q)
			vals = append(vals, q.value)
		}
	}
	norm := finiteRange(vals)

	sort.SliceStable(quads, func(a, b int) bool { return quads[a].depth < quads[b].depth })
	for _, q := range quads {
		pts := q.pts[:]
		dilate(pts, 0.5)
		p.fillPolygon(pts, opts.Colormap.At(norm.Scale(q.value)))
	}

	drawBoxAxes(p, pr, sides, opts,
		axisTicks{lo: xlo, hi: xhi}, axisTicks{lo: ylo, hi: yhi}, axisTicks{lo: zlo, hi: zhi})
	return norm
}

// fitBox scales and centres the projected box inside the axes rectangle,
// leaving room around it for tick labels.
func fitBox(v View, axes image.Rectangle) *projector {
	right, up, eye := v.basis()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, sx := range []float64{-boxX, boxX} {
		for _, sy := range []float64{-boxY, boxY} {
			for _, sz := range []float64{-boxZ, boxZ} {
				q := r3.Vec{X: sx, Y: sy, Z: sz}
				px, py := r3.Dot(q, right), r3.Dot(q, up)
				minX, maxX = math.Min(minX, px), math.Max(maxX, px)
				minY, maxY = math.Min(minY, py), math.Max(maxY, py)
			}
		}
	}
	scale := 0.82 * math.Min(float64(axes.Dx())/(maxX-minX), float64(axes.Dy())/(maxY-minY))
	return &projector{
		right: right, up: up, eye: eye,
		scale: scale,
		cx:    float64(axes.Min.X+axes.Max.X) / 2,
		cy:    float64(axes.Min.Y+axes.Max.Y) / 2,
		bx:    (minX + maxX) / 2,
		by:    (minY + maxY) / 2,
	}
}

// boxSides holds the box coordinates of the three back panes, the ones
// facing away from the viewer.
type boxSides struct {
	x, y, z float64
}

func backSides(eye r3.Vec) boxSides {
	s := boxSides{x: -boxX, y: -boxY, z: -boxZ}
	if eye.X < 0 {
		s.x = boxX
	}
	if eye.Y < 0 {
		s.y = boxY
	}
	if eye.Z < 0 {
		s.z = boxZ
	}
	return s
}

func drawPanes(p *painter, pr *projector, s boxSides) {
	panes := [][4]r3.Vec{
		{{X: s.x, Y: -boxY, Z: -boxZ}, {X: s.x, Y: boxY, Z: -boxZ}, {X: s.x, Y: boxY, Z: boxZ}, {X: s.x, Y: -boxY, Z: boxZ}},
		{{X: -boxX, Y: s.y, Z: -boxZ}, {X: boxX, Y: s.y, Z: -boxZ}, {X: boxX, Y: s.y, Z: boxZ}, {X: -boxX, Y: s.y, Z: boxZ}},
		{{X: -boxX, Y: -boxY, Z: s.z}, {X: boxX, Y: -boxY, Z: s.z}, {X: boxX, Y: boxY, Z: s.z}, {X: -boxX, Y: boxY, Z: s.z}},
	}
	for _, pane := range panes {
		pts := make([]point, len(pane))
		for i, q := range pane {
			pts[i] = pr.screen(q)
		}
		p.fillPolygon(pts, paneColor)
		for i := range pts {
			p.line(pts[i], pts[(i+1)%len(pts)], 1, paneEdge)
		}
	}
}

// boxTicks returns the tick positions of [lo, hi] mapped to [-half, half].
func boxTicks(lo, hi, half float64) []float64 {
	var t []float64
	for _, tk := range Ticks(lo, hi) {
		t = append(t, (tk.Value-lo)/(hi-lo)*2*half-half)
	}
	return t
}

func drawGrid(p *painter, pr *projector, s boxSides, xt, yt, zt []float64) {
	seg := func(a, b r3.Vec) { p.line(pr.screen(a), pr.screen(b), 1, gridColor) }
	for _, x := range xt {
		seg(r3.Vec{X: x, Y: -boxY, Z: s.z}, r3.Vec{X: x, Y: boxY, Z: s.z})
		seg(r3.Vec{X: x, Y: s.y, Z: -boxZ}, r3.Vec{X: x, Y: s.y, Z: boxZ})
	}
	for _, y := range yt {
		seg(r3.Vec{X: -boxX, Y: y, Z: s.z}, r3.Vec{X: boxX, Y: y, Z: s.z})
		seg(r3.Vec{X: s.x, Y: y, Z: -boxZ}, r3.Vec{X: s.x, Y: y, Z: boxZ})
	}
	for _, z := range zt {
		seg(r3.Vec{X: s.x, Y: -boxY, Z: z}, r3.Vec{X: s.x, Y: boxY, Z: z})
		seg(r3.Vec{X: -boxX, Y: s.y, Z: z}, r3.Vec{X: boxX, Y: s.y, Z: z})
	}
}

type axisTicks struct{ lo, hi float64 }

func (a axisTicks) box(v, half float64) float64 {
	return (v-a.lo)/(a.hi-a.lo)*2*half - half
}

// drawBoxAxes labels the front floor edges with x and y ticks and one
// vertical edge with z ticks.
func drawBoxAxes(p *painter, pr *projector, s boxSides, opts Options, xa, ya, za axisTicks) {
	frontX, frontY := -s.x, -s.y
	floor := s.z

	// x runs along the front edge at y = frontY.
	xOut := outward(pr, r3.Vec{X: 0, Y: frontY, Z: floor}, r3.Vec{X: 0, Y: 1.3 * frontY, Z: floor})
	for _, tk := range Ticks(xa.lo, xa.hi) {
		at := pr.screen(r3.Vec{X: xa.box(tk.Value, boxX), Y: frontY, Z: floor})
		p.line(at, at.add(xOut, 5), 1, frameColor)
		q := at.add(xOut, 16)
		drawText(p.dst, tk.Label, int(q.x), int(q.y), alignMiddle, alignMiddle)
	}
	if opts.XLabel != "" {
		q := pr.screen(r3.Vec{X: 0, Y: frontY, Z: floor}).add(xOut, 38)
		drawText(p.dst, opts.XLabel, int(q.x), int(q.y), alignMiddle, alignMiddle)
	}

	// y runs along the front edge at x = frontX.
	yOut := outward(pr, r3.Vec{X: frontX, Y: 0, Z: floor}, r3.Vec{X: 1.3 * frontX, Y: 0, Z: floor})
	for _, tk := range Ticks(ya.lo, ya.hi) {
		at := pr.screen(r3.Vec{X: frontX, Y: ya.box(tk.Value, boxY), Z: floor})
		p.line(at, at.add(yOut, 5), 1, frameColor)
		q := at.add(yOut, 16)
		drawText(p.dst, tk.Label, int(q.x), int(q.y), alignMiddle, alignMiddle)
	}
	if opts.YLabel != "" {
		q := pr.screen(r3.Vec{X: frontX, Y: 0, Z: floor}).add(yOut, 38)
		drawText(p.dst, opts.YLabel, int(q.x), int(q.y), alignMiddle, alignMiddle)
	}

	// z goes on whichever side corner sits further right on screen.
	corner := r3.Vec{X: s.x, Y: frontY, Z: 0}
	if alt := (r3.Vec{X: frontX, Y: s.y, Z: 0}); pr.screen(alt).x > pr.screen(corner).x {
		corner = alt
	}
	centre := pr.screen(r3.Vec{})
	side := 1.0
	h := alignStart
	if pr.screen(corner).x < centre.x {
		side, h = -1, alignEnd
	}
	for _, tk := range Ticks(za.lo, za.hi) {
		at := pr.screen(r3.Vec{X: corner.X, Y: corner.Y, Z: za.box(tk.Value, boxZ)})
		p.line(at, point{at.x + side*5, at.y}, 1, frameColor)
		drawText(p.dst, tk.Label, int(at.x+side*8), int(at.y), h, alignMiddle)
	}
}

// outward returns the screen direction from a to b as a unit vector.
func outward(pr *projector, a, b r3.Vec) point {
	pa, pb := pr.screen(a), pr.screen(b)
	dx, dy := pb.x-pa.x, pb.y-pa.y
	n := math.Hypot(dx, dy)
	if n == 0 {
		return point{0, 1}
	}
	return point{dx / n, dy / n}
}

func (a point) add(dir point, d float64) point {
	return point{a.x + dir.x*d, a.y + dir.y*d}
}
