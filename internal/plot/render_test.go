package plot

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// ramp returns an n by n mesh over [0, size) with z = x, so values rise
// to the right.
func ramp(n int, size float64) (xx, yy, z *mat.Dense) {
	xx = mat.NewDense(n, n, nil)
	yy = mat.NewDense(n, n, nil)
	z = mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x := size * float64(j) / float64(n)
			y := size * float64(i) / float64(n)
			xx.Set(i, j, x)
			yy.Set(i, j, y)
			z.Set(i, j, x)
		}
	}
	return xx, yy, z
}

func isBackground(c color.RGBA) bool { return c == background }

// TestRender_Flat tests that the pseudocolor map is blue on the left and
// red on the right of the axes.
func TestRender_Flat(t *testing.T) {
	xx, yy, z := ramp(20, 1800)
	dst := image.NewRGBA(image.Rect(0, 0, 640, 480))
	opts := DefaultOptions()
	opts.Mode = Flat

	if err := Render(dst, xx, yy, z, opts); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	lay := NewLayout(dst.Bounds(), opts)
	midY := (lay.Axes.Min.Y + lay.Axes.Max.Y) / 2
	left := dst.RGBAAt(lay.Axes.Min.X+5, midY)
	right := dst.RGBAAt(lay.Axes.Max.X-5, midY)

	if left.B <= left.R {
		t.Errorf("left of axes = %v: expected blue", left)
	}
	if right.R <= right.B {
		t.Errorf("right of axes = %v: expected red", right)
	}
}

// uniformMesh returns an n by n unit mesh with z set to fill everywhere.
func uniformMesh(n int, fill float64) (xx, yy, z *mat.Dense) {
	xx, yy, z = ramp(n, float64(n))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			z.Set(i, j, fill)
		}
	}
	return xx, yy, z
}

// TestDrawFlat_LastRowAndColumn tests that the last row and column only
// place cell corners and never reach the color range.
func TestDrawFlat_LastRowAndColumn(t *testing.T) {
	xx, yy, z := uniformMesh(6, -100)
	z.Set(0, 0, 100)
	z.Set(5, 5, 1e9)
	z.Set(2, 5, -1e9)
	z.Set(5, 1, 5e8)

	dst := image.NewRGBA(image.Rect(0, 0, 400, 300))
	opts := DefaultOptions().withDefaults()
	axes := image.Rect(50, 30, 350, 270)
	norm := drawFlat(newPainter(dst), axes, xx, yy, z, opts)

	if norm.Lo != -100 || norm.Hi != 100 {
		t.Errorf("expected norm {-100 100}, got %+v", norm)
	}
}

// TestDrawFlat_Negative tests that flat mode keeps negative values in the
// color range instead of clipping them.
func TestDrawFlat_Negative(t *testing.T) {
	xx, yy, z := uniformMesh(6, 500)
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			z.Set(i, j, -800)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, 400, 300))
	opts := DefaultOptions().withDefaults()
	axes := image.Rect(50, 30, 350, 270)
	norm := drawFlat(newPainter(dst), axes, xx, yy, z, opts)

	if norm.Lo != -800 || norm.Hi != 500 {
		t.Fatalf("expected norm {-800 500}, got %+v", norm)
	}

	// The mesh spans x in [0, 5], so column 1 covers 1..2 and column 4 covers 4..5.
	midY := (axes.Min.Y + axes.Max.Y) / 2
	col := func(x float64) color.RGBA {
		return dst.RGBAAt(axes.Min.X+int(x/5*float64(axes.Dx())), midY)
	}
	if neg := col(1.5); neg != opts.Colormap.At(0) {
		t.Errorf("negative cell = %v: expected the low end %v", neg, opts.Colormap.At(0))
	}
	if pos := col(4.5); pos != opts.Colormap.At(1) {
		t.Errorf("positive cell = %v: expected the high end %v", pos, opts.Colormap.At(1))
	}
	if neg := col(1.5); neg.B <= neg.R {
		t.Errorf("negative cell = %v: expected blue", neg)
	}
}

// TestRender_Colorbar tests the gradient runs from blue at the bottom to red at the top.
func TestRender_Colorbar(t *testing.T) {
	xx, yy, z := ramp(10, 100)
	dst := image.NewRGBA(image.Rect(0, 0, 640, 480))
	opts := DefaultOptions()
	opts.Mode = Flat

	if err := Render(dst, xx, yy, z, opts); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	cb := NewLayout(dst.Bounds(), opts).Colorbar
	midX := (cb.Min.X + cb.Max.X) / 2
	top := dst.RGBAAt(midX, cb.Min.Y+2)
	bottom := dst.RGBAAt(midX, cb.Max.Y-3)
	if top.R <= top.B || bottom.B <= bottom.R {
		t.Errorf("colorbar top %v and bottom %v: expected red over blue", top, bottom)
	}
}

// TestRender_Surface tests that the surface mode draws inside the axes.
func TestRender_Surface(t *testing.T) {
	xx, yy, z := ramp(24, 1800)
	dst := image.NewRGBA(image.Rect(0, 0, 640, 480))

	if err := Render(dst, xx, yy, z, DefaultOptions()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	axes := NewLayout(dst.Bounds(), DefaultOptions()).Axes
	colored := 0
	for y := axes.Min.Y; y < axes.Max.Y; y++ {
		for x := axes.Min.X; x < axes.Max.X; x++ {
			c := dst.RGBAAt(x, y)
			if !isBackground(c) && c != paneColor && c.R != c.G {
				colored++
			}
		}
	}
	if colored < axes.Dx()*axes.Dy()/20 {
		t.Errorf("expected a visible surface, found %d colored pixels", colored)
	}
}

// TestRender_ShapeMismatch tests rejection of inconsistent inputs.
func TestRender_ShapeMismatch(t *testing.T) {
	xx, yy, z := ramp(5, 10)
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))

	tests := []struct {
		name       string
		xx, yy, zz *mat.Dense
	}{
		{"grid too wide", xx, yy, mat.NewDense(5, 6, nil)},
		{"mesh transposed", mat.NewDense(5, 4, nil), yy, z},
		{"nil grid", xx, yy, nil},
		{"single row", mat.NewDense(1, 5, nil), mat.NewDense(1, 5, nil), mat.NewDense(1, 5, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Render(dst, tt.xx, tt.yy, tt.zz, DefaultOptions())
			if !errors.Is(err, ErrShapeMismatch) {
				t.Errorf("expected ErrShapeMismatch, got %v", err)
			}
		})
	}
}

// TestRender_EmptyTarget tests rejection of an empty image.
func TestRender_EmptyTarget(t *testing.T) {
	xx, yy, z := ramp(5, 10)
	if err := Render(image.NewRGBA(image.Rectangle{}), xx, yy, z, DefaultOptions()); !errors.Is(err, ErrEmptyTarget) {
		t.Errorf("expected ErrEmptyTarget, got %v", err)
	}
	if err := Render(nil, xx, yy, z, DefaultOptions()); !errors.Is(err, ErrEmptyTarget) {
		t.Errorf("expected ErrEmptyTarget for nil, got %v", err)
	}
}

// TestSurfaceLimits tests the z-axis range from zero to the maximum.
func TestSurfaceLimits(t *testing.T) {
	tests := []struct {
		name   string
		data   []float64
		lo, hi float64
	}{
		{"mixed sign", []float64{-300, 100, 2500, 40}, 0, 2500},
		{"all negative", []float64{-5, -1, -2, -3}, 0, 1},
		{"with nan", []float64{math.NaN(), 10, 20, 30}, 0, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := SurfaceLimits(mat.NewDense(2, 2, tt.data))
			if lo != tt.lo || hi != tt.hi {
				t.Errorf("expected (%g, %g), got (%g, %g)", tt.lo, tt.hi, lo, hi)
			}
		})
	}
}

// TestNewLayout tests the colorbar sits right of the axes with the requested proportions.
func TestNewLayout(t *testing.T) {
	opts := DefaultOptions()
	lay := NewLayout(image.Rect(0, 0, 640, 480), opts)

	if !lay.Axes.In(lay.Figure) || !lay.Colorbar.In(lay.Figure) {
		t.Fatalf("layout %+v escapes the figure", lay)
	}
	if lay.Colorbar.Min.X <= lay.Axes.Max.X {
		t.Errorf("colorbar %v overlaps axes %v", lay.Colorbar, lay.Axes)
	}
	if got := float64(lay.Colorbar.Dy()) / float64(lay.Axes.Dy()); math.Abs(got-0.8) > 0.01 {
		t.Errorf("colorbar shrink: expected 0.8, got %.3f", got)
	}
	if got := float64(lay.Colorbar.Dy()) / float64(lay.Colorbar.Dx()); math.Abs(got-8) > 0.3 {
		t.Errorf("colorbar aspect: expected 8, got %.2f", got)
	}
}

// TestMode_String tests mode names.
func TestMode_String(t *testing.T) {
	if Surface.String() != "surface" || Flat.String() != "flat" || Mode(7).String() != "Mode(7)" {
		t.Errorf("unexpected mode names %q %q %q", Surface, Flat, Mode(7))
	}
}
