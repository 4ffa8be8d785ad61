package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrShapeMismatch is returned when the mesh and grid differ in shape
	// or are too small to form a single cell.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrEmptyTarget is returned for a nil or zero-sized destination image.
	ErrEmptyTarget = errors.New("empty target image")
)

// Mode selects how the grid is drawn.
type Mode int

const (
	// Surface draws a 3D surface colored by elevation.
	Surface Mode = iota
	// Flat draws a 2D pseudocolor map.
	Flat
)

func (m Mode) String() string {
	switch m {
	case Surface:
		return "surface"
	case Flat:
		return "flat"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Options configures a figure.
type Options struct {
	Mode     Mode
	View     View      // Surface only.
	Colormap *Colormap // nil means CoolWarm.

	Title  string
	XLabel string
	YLabel string

	ColorbarShrink float64 // fraction of the axes height; 0 means 1
	ColorbarAspect float64 // height over width; 0 means 20
}

// DefaultOptions returns the bed-elevation figure settings.
func DefaultOptions() Options {
	return Options{
		Mode:           Surface,
		View:           DefaultView(),
		Colormap:       CoolWarm(),
		Title:          "bed elevations  (m)",
		XLabel:         "x  (km)",
		YLabel:         "y  (km)",
		ColorbarShrink: 0.8,
		ColorbarAspect: 8,
	}
}

func (o Options) withDefaults() Options {
	if o.Colormap == nil {
		o.Colormap = CoolWarm()
	}
	if o.ColorbarShrink <= 0 {
		o.ColorbarShrink = 1
	}
	if o.ColorbarAspect <= 0 {
		o.ColorbarAspect = 20
	}
	return o
}

var (
	background = color.RGBA{255, 255, 255, 255}
	frameColor = color.RGBA{0, 0, 0, 255}
)

// Render draws a figure of z over the mesh (xx, yy) into dst. All three
// matrices must have the same shape with at least two rows and columns.
func Render(dst *image.RGBA, xx, yy, z *mat.Dense, opts Options) error {
	if dst == nil || dst.Bounds().Empty() {
		return ErrEmptyTarget
	}
	if err := checkShapes(xx, yy, z); err != nil {
		return err
	}
	opts = opts.withDefaults()

	p := newPainter(dst)
	p.fillRect(dst.Bounds(), background)
	lay := NewLayout(dst.Bounds(), opts)

	var norm Norm
	switch opts.Mode {
	case Flat:
		norm = drawFlat(p, lay.Axes, xx, yy, z, opts)
	default:
		norm = drawSurface(p, lay.Axes, xx, yy, z, opts)
	}
	drawColorbar(p, lay.Colorbar, norm, opts.Colormap)

	if opts.Title != "" {
		drawText(dst, opts.Title, (lay.Axes.Min.X+lay.Axes.Max.X)/2, lay.Axes.Min.Y-8, alignMiddle, alignEnd)
	}
	return nil
}

func checkShapes(xx, yy, z *mat.Dense) error {
	if xx == nil || yy == nil || z == nil {
		return fmt.Errorf("%w: nil matrix", ErrShapeMismatch)
	}
	r, c := z.Dims()
	xr, xc := xx.Dims()
	yr, yc := yy.Dims()
	if xr != r || xc != c || yr != r || yc != c {
		return fmt.Errorf("%w: mesh is %dx%d and %dx%d, grid is %dx%d", ErrShapeMismatch, xr, xc, yr, yc, r, c)
	}
	if r < 2 || c < 2 {
		return fmt.Errorf("%w: need at least 2x2 points, got %dx%d", ErrShapeMismatch, r, c)
	}
	return nil
}

// SurfaceLimits returns the z-axis range of a surface plot: from 0 to the
// grid maximum. Negative parts of the surface are clamped to the floor.
func SurfaceLimits(z *mat.Dense) (lo, hi float64) {
	r := finiteRange(values(z))
	lo, hi = 0, r.Hi
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

// values returns the entries of m in row-major order.
func values(m *mat.Dense) []float64 {
	r, c := m.Dims()
	v := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		v = append(v, m.RawRowView(i)...)
	}
	return v
}

// extent returns the range of m, widened to unit length if degenerate.
func extent(m *mat.Dense) (lo, hi float64) {
	lo, hi = mat.Min(m), mat.Max(m)
	if !(hi > lo) {
		hi = lo + 1
	}
	return lo, hi
}
