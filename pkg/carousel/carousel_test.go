package carousel

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediaonstake/agencysite/pkg/gesture"
)

func letters() []string {
	return []string{"a", "b", "c", "d", "e"}
}

func TestNextPrevStayInRange(t *testing.T) {
	c := New(letters())
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		if rng.Intn(2) == 0 {
			c.Next()
		} else {
			c.Prev()
		}
		require.GreaterOrEqual(t, c.Index(), 0)
		require.Less(t, c.Index(), c.Len())
	}
}

func TestNextThenPrevRoundTrips(t *testing.T) {
	c := New(letters())
	for start := 0; start < c.Len(); start++ {
		require.True(t, c.JumpTo(start))
		c.Next()
		c.Prev()
		assert.Equal(t, start, c.Index())
	}
}

func TestNextNTimesCycles(t *testing.T) {
	c := New(letters(), WithInitialIndex(3))
	for i := 0; i < c.Len(); i++ {
		c.Next()
	}
	assert.Equal(t, 3, c.Index())
}

func TestWrapAround(t *testing.T) {
	c := New(letters())
	c.Prev()
	assert.Equal(t, 4, c.Index())
	c.Next()
	assert.Equal(t, 0, c.Index())
}

func TestJumpToRejectsOutOfRange(t *testing.T) {
	c := New(letters(), WithInitialIndex(2))

	assert.False(t, c.JumpTo(5))
	assert.False(t, c.JumpTo(-1))
	assert.Equal(t, 2, c.Index())

	assert.True(t, c.JumpTo(4))
	assert.Equal(t, 4, c.Index())
}

func TestInitialIndexIsClamped(t *testing.T) {
	assert.Equal(t, 4, New(letters(), WithInitialIndex(40)).Index())
	assert.Equal(t, 0, New(letters(), WithInitialIndex(-3)).Index())
}

func TestEmptyCarousel(t *testing.T) {
	c := New[string](nil)
	c.Next()
	c.Prev()
	c.TouchStart(100)
	c.TouchMove(0)
	c.TouchEnd()

	assert.True(t, c.Empty())
	assert.Equal(t, 0, c.Index())
	assert.False(t, c.JumpTo(0))

	_, ok := c.Active()
	assert.False(t, ok)
	assert.Equal(t, Hidden, c.Position(0))
}

func TestSwipeNavigates(t *testing.T) {
	c := New(letters())

	c.TouchStart(100)
	c.TouchMove(40)
	assert.Equal(t, gesture.Forward, c.TouchEnd())
	assert.Equal(t, 1, c.Index())

	c.TouchStart(100)
	c.TouchMove(90)
	assert.Equal(t, gesture.None, c.TouchEnd())
	assert.Equal(t, 1, c.Index())

	c.TouchStart(10)
	c.TouchMove(200)
	assert.Equal(t, gesture.Backward, c.TouchEnd())
	assert.Equal(t, 0, c.Index())
}

func TestOnChangeFiresForEveryPath(t *testing.T) {
	var calls [][2]int
	c := New(letters(), WithOnChange(func(prev, next int) {
		calls = append(calls, [2]int{prev, next})
	}))

	c.Next()
	c.Prev()
	c.JumpTo(3)
	c.JumpTo(3)
	c.JumpTo(9)
	c.TouchStart(300)
	c.TouchMove(100)
	c.TouchEnd()

	assert.Equal(t, [][2]int{{0, 1}, {1, 0}, {0, 3}, {3, 4}}, calls)
}

func TestPosition(t *testing.T) {
	c := New(letters())

	assert.Equal(t, Center, c.Position(0))
	assert.Equal(t, Right, c.Position(1))
	assert.Equal(t, Left, c.Position(4))
	assert.Equal(t, Hidden, c.Position(2))
	assert.Equal(t, Hidden, c.Position(7))

	two := New([]int{1, 2})
	assert.Equal(t, Right, two.Position(1))
}

func TestActive(t *testing.T) {
	c := New(letters(), WithInitialIndex(2))
	item, ok := c.Active()
	require.True(t, ok)
	assert.Equal(t, "c", item)
}
