package colors

import "math/rand"

// Wheel generates a sequence of colors distributed relatively evenly around
// the hue circle. Each pull advances the phase by a random step in
// [0.1, 0.2), so successive colors are visually distinct.
//
// A Wheel is not safe for concurrent use; give each goroutine its own Wheel
// or serialize access externally.
type Wheel struct {
	phase float64
	rnd   *rand.Rand
}

// NewWheel returns a Wheel starting at the given phase, wrapped into [0, 1).
// The source must not be nil.
func NewWheel(start float64, rnd *rand.Rand) *Wheel {
	return &Wheel{
		phase: wrap(start),
		rnd:   rnd,
	}
}

// Next advances the wheel and returns the color at the new phase, with full
// saturation and a fixed value of 0.8. The sequence never ends; callers
// decide when to stop pulling.
func (w *Wheel) Next() Color {
	w.phase += 0.1 + w.rnd.Float64()*0.1
	if w.phase >= 1 {
		w.phase--
	}

	c, _ := FromHSV(w.phase, 1, 0.8) // phase and the fixed s, v are always valid
	return c
}

// Phase returns the current position on the hue circle, in [0, 1).
func (w *Wheel) Phase() float64 {
	return w.phase
}
