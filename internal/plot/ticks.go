package plot

import (
	"math"

	gonumplot "gonum.org/v1/plot"
)

// Tick is a labelled axis position.
type Tick = gonumplot.Tick

// Ticks returns the labelled major ticks of gonum's default locator that
// fall within [lo, hi]. Empty or infinite ranges have no ticks.
func Ticks(lo, hi float64) []Tick {
	if !(hi > lo) || math.IsInf(hi-lo, 0) {
		return nil
	}
	eps := (hi - lo) * 1e-9
	var ticks []Tick
	for _, t := range (gonumplot.DefaultTicks{}).Ticks(lo, hi) {
		if t.IsMinor() || t.Value < lo-eps || t.Value > hi+eps {
			continue
		}
		ticks = append(ticks, t)
	}
	return ticks
}
