package plot

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// View is the camera of a 3D plot, in degrees. Azimuth turns about the
// vertical axis, elevation tilts above the x-y plane.
type View struct {
	Azimuth   float64
	Elevation float64
}

// DefaultView looks at the box from the front-left corner, slightly above.
func DefaultView() View {
	return View{Azimuth: -60, Elevation: 30}
}

// basis returns the screen right and up vectors and the unit vector
// pointing from the origin toward the viewer.
func (v View) basis() (right, up, eye r3.Vec) {
	az := v.Azimuth * math.Pi / 180
	el := v.Elevation * math.Pi / 180
	sa, ca := math.Sincos(az)
	se, ce := math.Sincos(el)
	right = r3.Vec{X: -sa, Y: ca}
	up = r3.Vec{X: -se * ca, Y: -se * sa, Z: ce}
	eye = r3.Vec{X: ce * ca, Y: ce * sa, Z: se}
	return right, up, eye
}

// Project maps a point to orthographic screen coordinates (x right, y up)
// and a depth that grows toward the viewer.
func (v View) Project(x, y, z float64) (sx, sy, depth float64) {
	right, up, eye := v.basis()
	p := r3.Vec{X: x, Y: y, Z: z}
	return r3.Dot(p, right), r3.Dot(p, up), r3.Dot(p, eye)
}

// projector caches the view basis and the fit of the box to the axes.
type projector struct {
	right, up, eye r3.Vec
	scale          float64
	cx, cy         float64 // pixel position of the box centre
	bx, by         float64 // projected centre of the box bounds
}

func (p *projector) depth(q r3.Vec) float64 { return r3.Dot(q, p.eye) }

func (p *projector) screen(q r3.Vec) point {
	return point{
		x: p.cx + p.scale*(r3.Dot(q, p.right)-p.bx),
		y: p.cy - p.scale*(r3.Dot(q, p.up)-p.by),
	}
}
