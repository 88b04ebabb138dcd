package plot

import "math"

// Scale maps a data-space coordinate linearly onto integer cell indices,
// [Min, Max] -> [0, Extent-1]. It is recomputed from the canvas limits on
// every render and never cached across limit changes.
//
// The mapping is undefined when Min == Max; callers must treat such
// degenerate ranges as an empty plot before using the scale.
type Scale struct {
	Min, Max float64
	Extent   int
}

// Cell returns the grid index for v. Values outside [Min, Max] map
// outside [0, Extent-1] and are clipped by the compositor.
func (s Scale) Cell(v float64) int {
	return int(math.Floor(float64(s.Extent-1) * (v - s.Min) / (s.Max - s.Min)))
}
