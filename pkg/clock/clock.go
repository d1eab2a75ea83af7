// Package clock abstracts the current time so renderers can be tested.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// System is the wall clock.
type System struct{}

// Now returns time.Now().
func (System) Now() time.Time { return time.Now() }

// Fixed always reports the same instant.
type Fixed time.Time

// Now returns the fixed instant.
func (f Fixed) Now() time.Time { return time.Time(f) }

// Year returns the current calendar year of c, falling back to the system clock.
func Year(c Clock) int {
	if c == nil {
		c = System{}
	}
	return c.Now().Year()
}
