// Package carousel provides a circular cursor over an ordered item list.
//
// A Carousel is owned by a single live component and is not safe for
// concurrent use; every mutation happens on that component's event loop.
package carousel

import (
	"github.com/mediaonstake/agencysite/pkg/gesture"
)

// Position describes where an item sits relative to the active one.
type Position int

const (
	Hidden Position = iota
	Left
	Center
	Right
)

// String returns the position name used as a CSS modifier.
func (p Position) String() string {
	switch p {
	case Hidden:
		return "hidden"
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	default:
		return "hidden"
	}
}

// ChangeFunc observes active-index changes.
type ChangeFunc func(prev, next int)

type options struct {
	initial   int
	threshold float64
	onChange  []ChangeFunc
}

// Option configures a Carousel.
type Option func(*options)

// WithInitialIndex sets the starting index. Out-of-range values are clamped.
func WithInitialIndex(i int) Option {
	return func(o *options) { o.initial = i }
}

// WithSwipeThreshold sets the minimum swipe travel.
func WithSwipeThreshold(px float64) Option {
	return func(o *options) { o.threshold = px }
}

// WithOnChange registers a hook run after every active-index change,
// whichever operation caused it.
func WithOnChange(fn ChangeFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.onChange = append(o.onChange, fn)
		}
	}
}

// Carousel cycles through a fixed list of items.
type Carousel[T any] struct {
	items    []T
	active   int
	swipe    *gesture.Swipe
	onChange []ChangeFunc
}

// New creates a carousel over items. The slice is copied.
func New[T any](items []T, opts ...Option) *Carousel[T] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Carousel[T]{
		items:    append([]T(nil), items...),
		swipe:    gesture.NewSwipe(o.threshold),
		onChange: o.onChange,
	}
	c.active = clamp(o.initial, len(c.items))
	return c
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

// Len returns the number of items.
func (c *Carousel[T]) Len() int { return len(c.items) }

// Empty reports whether there is nothing to show.
func (c *Carousel[T]) Empty() bool { return len(c.items) == 0 }

// Index returns the active index. It is 0 for an empty carousel.
func (c *Carousel[T]) Index() int { return c.active }

// Items returns the items in order. Callers must not modify the slice.
func (c *Carousel[T]) Items() []T { return c.items }

// Active returns the active item, or false when the carousel is empty.
func (c *Carousel[T]) Active() (T, bool) {
	var zero T
	if len(c.items) == 0 {
		return zero, false
	}
	return c.items[c.active], true
}

// Next advances to the following item, wrapping after the last one.
func (c *Carousel[T]) Next() {
	n := len(c.items)
	if n == 0 {
		return
	}
	c.set((c.active + 1) % n)
}

// Prev steps back to the preceding item, wrapping before the first one.
func (c *Carousel[T]) Prev() {
	n := len(c.items)
	if n == 0 {
		return
	}
	c.set((c.active - 1 + n) % n)
}

// JumpTo selects index i directly. Out-of-range indexes are rejected
// and leave the carousel unchanged.
func (c *Carousel[T]) JumpTo(i int) bool {
	if i < 0 || i >= len(c.items) {
		return false
	}
	c.set(i)
	return true
}

// TouchStart records the touch-down coordinate.
func (c *Carousel[T]) TouchStart(x float64) { c.swipe.Start(x) }

// TouchMove records the latest touch coordinate.
func (c *Carousel[T]) TouchMove(x float64) { c.swipe.Move(x) }

// TouchEnd interprets the gesture and navigates accordingly.
func (c *Carousel[T]) TouchEnd() gesture.Direction {
	dir := c.swipe.End()
	switch dir {
	case gesture.Forward:
		c.Next()
	case gesture.Backward:
		c.Prev()
	case gesture.None:
	}
	return dir
}

// Position reports where item i sits relative to the active item.
// Neighbours wrap, so the last item is Left of the first one.
func (c *Carousel[T]) Position(i int) Position {
	n := len(c.items)
	if i < 0 || i >= n {
		return Hidden
	}
	switch {
	case i == c.active:
		return Center
	case n > 1 && i == (c.active+1)%n:
		return Right
	case n > 2 && i == (c.active-1+n)%n:
		return Left
	default:
		return Hidden
	}
}

func (c *Carousel[T]) set(i int) {
	prev := c.active
	c.active = i
	if prev == i {
		return
	}
	for _, fn := range c.onChange {
		fn(prev, i)
	}
}
