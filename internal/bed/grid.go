package bed

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Grid is an elevation field in metres. Z has shape (len(Y), len(X)) and
// Z.At(i, j) is the elevation at (X[j], Y[i]).
type Grid struct {
	X []float64
	Y []float64
	Z *mat.Dense
}

// Stats summarizes a grid against an equilibrium-line altitude.
type Stats struct {
	Min  float64
	Max  float64
	Mean float64
	// AboveELA is the fraction of points with elevation >= the ELA.
	AboveELA float64
}

// Shape returns (rows, cols), i.e. (Ny, Nx).
func (g *Grid) Shape() (rows, cols int) {
	return g.Z.Dims()
}

// Min returns the lowest elevation.
func (g *Grid) Min() float64 { return mat.Min(g.Z) }

// Max returns the highest elevation.
func (g *Grid) Max() float64 { return mat.Max(g.Z) }

// Finite reports whether every value is neither NaN nor infinite.
func (g *Grid) Finite() bool {
	rows, _ := g.Z.Dims()
	for i := 0; i < rows; i++ {
		for _, v := range g.Z.RawRowView(i) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

// Stats computes summary statistics for the given equilibrium-line altitude.
func (g *Grid) Stats(ela float64) Stats {
	rows, cols := g.Z.Dims()
	var sum float64
	above := 0
	for i := 0; i < rows; i++ {
		row := g.Z.RawRowView(i)
		sum += floats.Sum(row)
		for _, v := range row {
			if v >= ela {
				above++
			}
		}
	}
	n := float64(rows * cols)
	return Stats{
		Min:      g.Min(),
		Max:      g.Max(),
		Mean:     sum / n,
		AboveELA: float64(above) / n,
	}
}

// Mesh returns the coordinate meshgrid multiplied by scale, for example
// 1e-3 to get kilometres.
func (g *Grid) Mesh(scale float64) (xx, yy *mat.Dense) {
	return meshgrid(g.X, g.Y, scale)
}

// Transpose returns a new grid with the x and y axes swapped.
func (g *Grid) Transpose() *Grid {
	z := mat.DenseCopyOf(g.Z.T())
	return &Grid{
		X: append([]float64(nil), g.Y...),
		Y: append([]float64(nil), g.X...),
		Z: z,
	}
}
