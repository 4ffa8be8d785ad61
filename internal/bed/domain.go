// Package bed synthesizes synthetic bed topography as a superposition of
// sine-sine modes on a square domain.
package bed

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrInvalidDomain is returned for a non-positive side length or grid size.
	ErrInvalidDomain = errors.New("invalid domain")
	// ErrShapeMismatch is returned when the coefficient matrix does not
	// match the mode-number lists.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrInvalidMode is returned for a mode number that is not positive.
	ErrInvalidMode = errors.New("invalid mode number")
)

// Domain is a square of side L metres sampled on an Nx by Ny grid.
// The grid is half-open: the far edge at L is not sampled.
type Domain struct {
	L  float64
	Nx int
	Ny int
}

// ReferenceDomain returns the 1800 km, 80 by 80 domain.
func ReferenceDomain() Domain {
	return Domain{L: 1800.0e3, Nx: 80, Ny: 80}
}

// Validate checks that the side length and resolution are usable.
func (d Domain) Validate() error {
	if !(d.L > 0) || math.IsInf(d.L, 0) {
		return fmt.Errorf("%w: side length must be positive and finite, got %g", ErrInvalidDomain, d.L)
	}
	if d.Nx <= 0 || d.Ny <= 0 {
		return fmt.Errorf("%w: grid resolution must be positive, got %dx%d", ErrInvalidDomain, d.Nx, d.Ny)
	}
	return nil
}

// Spacing returns the sample spacing along x and y.
func (d Domain) Spacing() (dx, dy float64) {
	return d.L / float64(d.Nx), d.L / float64(d.Ny)
}

// Axes returns the sample coordinates along x (length Nx) and y (length Ny).
func (d Domain) Axes() (x, y []float64) {
	return halfOpenAxis(d.L, d.Nx), halfOpenAxis(d.L, d.Ny)
}

// Mesh returns the meshgrid of the axes. Both matrices have shape (Ny, Nx);
// xx varies along columns and yy along rows.
func (d Domain) Mesh() (xx, yy *mat.Dense) {
	x, y := d.Axes()
	return meshgrid(x, y, 1)
}

// halfOpenAxis returns n points from 0 to l-l/n inclusive.
func halfOpenAxis(l float64, n int) []float64 {
	v := make([]float64, n)
	if n < 2 {
		return v
	}
	last := l - l/float64(n)
	floats.Span(v, 0, last)
	// Span may round the last step.
	v[n-1] = last
	return v
}

func meshgrid(x, y []float64, scale float64) (xx, yy *mat.Dense) {
	xx = mat.NewDense(len(y), len(x), nil)
	yy = mat.NewDense(len(y), len(x), nil)
	for i, yv := range y {
		for j, xv := range x {
			xx.Set(i, j, xv*scale)
			yy.Set(i, j, yv*scale)
		}
	}
	return xx, yy
}
