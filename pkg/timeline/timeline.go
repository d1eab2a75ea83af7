// Package timeline tracks the process section: which step is highlighted as
// the visitor scrolls, and the closed set of looks the section supports.
package timeline

import "math"

// Timeline maps scroll progress onto one of a fixed number of steps.
type Timeline struct {
	count  int
	active int
}

// New creates a timeline with n steps and nothing highlighted.
func New(n int) *Timeline {
	if n < 0 {
		n = 0
	}
	return &Timeline{count: n, active: -1}
}

// Len returns the number of steps.
func (t *Timeline) Len() int { return t.count }

// Active returns the highlighted step, or -1 before any progress was reported.
func (t *Timeline) Active() int { return t.active }

// Reached reports whether step i is at or before the highlighted step.
func (t *Timeline) Reached(i int) bool {
	return t.active >= 0 && i <= t.active
}

// Progress applies a scroll progress value in [0, 1]. Values that do not
// land on a step (including 1 itself and NaN) leave the timeline unchanged.
// It reports whether the highlighted step changed.
func (t *Timeline) Progress(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	idx := int(math.Floor(v * float64(t.count)))
	if idx < 0 || idx >= t.count || idx == t.active {
		return false
	}
	t.active = idx
	return true
}
