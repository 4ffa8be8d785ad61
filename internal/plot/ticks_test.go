package plot

import (
	"math"
	"strconv"
	"testing"
)

// TestTicks tests tick placement on typical axis ranges.
func TestTicks(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
	}{
		{"reference km axis", 0, 1777.5},
		{"unit interval", 0, 1},
		{"symmetric", -1500, 2100},
		{"offset", 13, 37},
		{"bed range", -1234.5, 2601.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ticks(tt.lo, tt.hi)
			if len(got) < 2 {
				t.Fatalf("expected at least two ticks, got %v", got)
			}
			step := got[1].Value - got[0].Value
			for i, tk := range got {
				if tk.Value < tt.lo || tk.Value > tt.hi {
					t.Errorf("tick %d = %g outside [%g, %g]", i, tk.Value, tt.lo, tt.hi)
				}
				if i > 0 && math.Abs(tk.Value-got[i-1].Value-step) > 1e-9*step {
					t.Errorf("tick %d: uneven spacing in %v", i, got)
				}
				v, err := strconv.ParseFloat(tk.Label, 64)
				if err != nil || math.Abs(v-tk.Value) > 1e-9*math.Max(1, math.Abs(tk.Value)) {
					t.Errorf("tick %d: label %q does not match value %g", i, tk.Label, tk.Value)
				}
			}
		})
	}
}

// TestTicks_Degenerate tests that empty ranges give no ticks.
func TestTicks_Degenerate(t *testing.T) {
	for _, r := range [][2]float64{{1, 1}, {2, 1}, {0, math.Inf(1)}, {math.NaN(), 1}} {
		if got := Ticks(r[0], r[1]); got != nil {
			t.Errorf("Ticks(%g, %g): expected nil, got %v", r[0], r[1], got)
		}
	}
}
