package bed

import (
	"errors"
	"testing"
)

// TestDomainAxes checks the half-open coordinate axes.
func TestDomainAxes(t *testing.T) {
	tests := []struct {
		name string
		d    Domain
	}{
		{"reference", ReferenceDomain()},
		{"rectangular", Domain{L: 10.0, Nx: 7, Ny: 3}},
		{"two points", Domain{L: 1.0, Nx: 2, Ny: 2}},
		{"single point", Domain{L: 5.0, Nx: 1, Ny: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.d.Axes()
			checkAxis(t, "x", x, tt.d.L, tt.d.Nx)
			checkAxis(t, "y", y, tt.d.L, tt.d.Ny)
		})
	}
}

func checkAxis(t *testing.T, name string, v []float64, l float64, n int) {
	t.Helper()
	if len(v) != n {
		t.Fatalf("%s axis: expected length %d, got %d", name, n, len(v))
	}
	if v[0] != 0 {
		t.Errorf("%s axis: expected first value 0, got %g", name, v[0])
	}
	if last := l - l/float64(n); v[n-1] != last {
		t.Errorf("%s axis: expected last value %.10g, got %.10g", name, last, v[n-1])
	}
	for i := 1; i < n; i++ {
		if v[i] <= v[i-1] {
			t.Errorf("%s axis not increasing at %d: %g <= %g", name, i, v[i], v[i-1])
		}
	}
}

// TestDomainSpacing tests dx = L/Nx and dy = L/Ny.
func TestDomainSpacing(t *testing.T) {
	dx, dy := Domain{L: 100, Nx: 4, Ny: 5}.Spacing()
	if dx != 25 || dy != 20 {
		t.Errorf("expected spacing (25, 20), got (%g, %g)", dx, dy)
	}
}

// TestDomainMesh tests the meshgrid shape and orientation.
func TestDomainMesh(t *testing.T) {
	d := Domain{L: 6, Nx: 3, Ny: 2}
	xx, yy := d.Mesh()

	if r, c := xx.Dims(); r != 2 || c != 3 {
		t.Fatalf("xx shape: expected 2x3, got %dx%d", r, c)
	}
	if r, c := yy.Dims(); r != 2 || c != 3 {
		t.Fatalf("yy shape: expected 2x3, got %dx%d", r, c)
	}
	if xx.At(1, 2) != 4 || xx.At(0, 2) != 4 {
		t.Errorf("xx should vary along columns, got row0=%v row1=%v", xx.RawRowView(0), xx.RawRowView(1))
	}
	if yy.At(1, 0) != 3 || yy.At(1, 2) != 3 {
		t.Errorf("yy should vary along rows, got row1=%v", yy.RawRowView(1))
	}
}

// TestDomainValidate tests rejection of unusable domains.
func TestDomainValidate(t *testing.T) {
	tests := []struct {
		name    string
		d       Domain
		wantErr bool
	}{
		{"reference", ReferenceDomain(), false},
		{"zero length", Domain{L: 0, Nx: 4, Ny: 4}, true},
		{"negative length", Domain{L: -1, Nx: 4, Ny: 4}, true},
		{"zero nx", Domain{L: 1, Nx: 0, Ny: 4}, true},
		{"negative ny", Domain{L: 1, Nx: 4, Ny: -2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.d.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidDomain) {
				t.Errorf("expected ErrInvalidDomain, got %v", err)
			}
		})
	}
}
