package bed

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ReferenceScale multiplies every entry of the reference coefficient table.
const ReferenceScale = 750.0

// Mode numbers and coefficients of the reference bed. The values were
// picked by hand to give a plausible-looking glaciated landscape.
var (
	referenceJ = []int{1, 3, 6, 8}
	referenceK = []int{1, 3, 4, 7}

	referenceCoeffs = []float64{
		2.00000000, 0.33000000, -0.55020034, 0.54495520,
		0.50000000, 0.45014486, 0.60551833, -0.52250644,
		0.93812068, 0.32638429, -0.24654812, 0.33887052,
		0.17592361, -0.35496741, 0.22694547, -0.05280704,
	}
)

// Basis is a table of sine-sine modes. Row r of C pairs with mode number
// J[r] along x, column s with K[s] along y.
type Basis struct {
	C *mat.Dense
	J []int
	K []int
}

// Reference returns the 4x4 reference basis with ReferenceScale applied.
func Reference() Basis {
	raw := mat.NewDense(len(referenceJ), len(referenceK), append([]float64(nil), referenceCoeffs...))
	var c mat.Dense
	c.Scale(ReferenceScale, raw)
	return Basis{
		C: &c,
		J: append([]int(nil), referenceJ...),
		K: append([]int(nil), referenceK...),
	}
}

// Validate checks the coefficient matrix against the mode-number lists.
func (b Basis) Validate() error {
	if b.C == nil {
		return fmt.Errorf("%w: nil coefficient matrix", ErrShapeMismatch)
	}
	if len(b.J) == 0 || len(b.K) == 0 {
		return fmt.Errorf("%w: need at least one mode per axis, got %d and %d", ErrShapeMismatch, len(b.J), len(b.K))
	}
	r, c := b.C.Dims()
	if r != len(b.J) || c != len(b.K) {
		return fmt.Errorf("%w: coefficients are %dx%d but there are %d x-modes and %d y-modes",
			ErrShapeMismatch, r, c, len(b.J), len(b.K))
	}
	for i, j := range b.J {
		if j <= 0 {
			return fmt.Errorf("%w: J[%d] = %d", ErrInvalidMode, i, j)
		}
	}
	for i, k := range b.K {
		if k <= 0 {
			return fmt.Errorf("%w: K[%d] = %d", ErrInvalidMode, i, k)
		}
	}
	return nil
}

// Bound returns the sum of the absolute coefficients, an upper bound on |b(x,y)|.
func (b Basis) Bound() float64 {
	var s float64
	r, c := b.C.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := b.C.At(i, j)
			if v < 0 {
				v = -v
			}
			s += v
		}
	}
	return s
}
