// Package gesture interprets horizontal touch samples as swipe gestures.
package gesture

import "math"

// DefaultThreshold is the minimum travel, in CSS pixels, that counts as a swipe.
const DefaultThreshold = 50

// Direction is the navigation a gesture resolves to.
type Direction int

const (
	// None means the gesture was a tap or jitter.
	None Direction = iota
	// Forward is a right-to-left swipe (advance to the next item).
	Forward
	// Backward is a left-to-right swipe (return to the previous item).
	Backward
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "unknown"
	}
}

// Swipe records the start and end samples of one touch gesture.
// The zero value is not ready for use; call NewSwipe.
type Swipe struct {
	threshold float64
	start     float64
	end       float64
	moved     bool
}

// NewSwipe creates a tracker. A non-positive threshold selects DefaultThreshold.
func NewSwipe(threshold float64) *Swipe {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Swipe{threshold: threshold}
}

// Threshold returns the configured minimum travel.
func (s *Swipe) Threshold() float64 {
	return s.threshold
}

// Start records the touch-down coordinate.
func (s *Swipe) Start(x float64) {
	s.start = x
	s.end = 0
	s.moved = false
}

// Move records the latest coordinate of the moving finger.
func (s *Swipe) Move(x float64) {
	s.end = x
	s.moved = true
}

// End interprets the recorded samples and resets them.
// A gesture without a Move sample is a tap.
func (s *Swipe) End() Direction {
	defer s.reset()

	if !s.moved {
		return None
	}
	distance := s.start - s.end
	if math.Abs(distance) < s.threshold {
		return None
	}
	if distance > 0 {
		return Forward
	}
	return Backward
}

// Samples returns the pending start and end samples.
func (s *Swipe) Samples() (start, end float64) {
	return s.start, s.end
}

func (s *Swipe) reset() {
	s.start = 0
	s.end = 0
	s.moved = false
}
