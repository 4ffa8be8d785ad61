package bed

import (
	"fmt"

	"github.com/ojrac/opensimplex-go"
)

// Roughness is a fractal simplex-noise layer added on top of the smooth
// sine field.
type Roughness struct {
	Amplitude   float64 // metres
	Wavelength  float64 // metres, of the first octave
	Octaves     int
	Persistence float64 // amplitude ratio between octaves
	Seed        int64
}

// Apply adds the noise layer to g in place. A zero amplitude leaves g untouched.
func (r Roughness) Apply(g *Grid) error {
	if r.Amplitude == 0 {
		return nil
	}
	if !(r.Wavelength > 0) {
		return fmt.Errorf("roughness wavelength must be positive, got %g", r.Wavelength)
	}
	if r.Octaves <= 0 {
		return fmt.Errorf("roughness needs at least one octave, got %d", r.Octaves)
	}

	noise := opensimplex.New(r.Seed)
	for i, y := range g.Y {
		row := g.Z.RawRowView(i)
		for j, x := range g.X {
			row[j] += r.Amplitude * fbm(noise, x/r.Wavelength, y/r.Wavelength, r.Octaves, r.Persistence)
		}
	}
	return nil
}

// fbm sums octaves of noise and normalizes to roughly [-1, 1].
func fbm(n opensimplex.Noise, x, y float64, octaves int, persistence float64) float64 {
	var total, maxValue float64
	frequency, amplitude := 1.0, 1.0
	for i := 0; i < octaves; i++ {
		total += n.Eval2(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxValue
}
