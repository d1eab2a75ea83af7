package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwipeLeftIsForward(t *testing.T) {
	s := NewSwipe(0)
	s.Start(100)
	s.Move(40)
	assert.Equal(t, Forward, s.End())
}

func TestSwipeRightIsBackward(t *testing.T) {
	s := NewSwipe(50)
	s.Start(40)
	s.Move(100)
	assert.Equal(t, Backward, s.End())
}

func TestSwipeBelowThresholdIsIgnored(t *testing.T) {
	s := NewSwipe(50)
	s.Start(100)
	s.Move(90)
	assert.Equal(t, None, s.End())

	start, end := s.Samples()
	assert.Zero(t, start)
	assert.Zero(t, end)
}

func TestSwipeExactThresholdCounts(t *testing.T) {
	s := NewSwipe(50)
	s.Start(100)
	s.Move(50)
	assert.Equal(t, Forward, s.End())
}

func TestSwipeTapWithoutMove(t *testing.T) {
	s := NewSwipe(50)
	s.Start(300)
	assert.Equal(t, None, s.End())
}

func TestSwipeResetsAfterDispatch(t *testing.T) {
	s := NewSwipe(50)
	s.Start(200)
	s.Move(20)
	assert.Equal(t, Forward, s.End())

	start, end := s.Samples()
	assert.Zero(t, start)
	assert.Zero(t, end)

	// a following tap must not reuse the stale end sample
	s.Start(200)
	assert.Equal(t, None, s.End())
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "forward", Forward.String())
	assert.Equal(t, "unknown", Direction(9).String())
}
