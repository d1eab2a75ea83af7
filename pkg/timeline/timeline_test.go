package timeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestProgressSelectsStep(t *testing.T) {
	tl := New(4)
	assert.Equal(t, -1, tl.Active())

	assert.True(t, tl.Progress(0.1))
	assert.Equal(t, 0, tl.Active())

	assert.False(t, tl.Progress(0.2), "same step")
	assert.True(t, tl.Progress(0.5))
	assert.Equal(t, 2, tl.Active())
	assert.True(t, tl.Reached(1))
	assert.False(t, tl.Reached(3))
}

func TestProgressOutOfRangeIsIgnored(t *testing.T) {
	tl := New(4)
	tl.Progress(0.8)

	assert.False(t, tl.Progress(1))
	assert.False(t, tl.Progress(-0.2))
	assert.False(t, tl.Progress(math.NaN()))
	assert.Equal(t, 3, tl.Active())
}

func TestEmptyTimeline(t *testing.T) {
	tl := New(0)
	assert.False(t, tl.Progress(0.5))
	assert.False(t, tl.Reached(0))
}

func TestAlignmentSides(t *testing.T) {
	assert.True(t, AlignAlternating.LeftSide(0))
	assert.False(t, AlignAlternating.LeftSide(1))
	assert.True(t, AlignLeft.LeftSide(1))
	assert.False(t, AlignRight.LeftSide(0))
}

func TestStyleFromYAML(t *testing.T) {
	var s Style
	err := yaml.Unmarshal([]byte("alignment: right\ncard: outlined\neffect: glow\nreveal: flip\nconnector: dashed\n"), &s)
	require.NoError(t, err)

	assert.Equal(t, AlignRight, s.Alignment)
	assert.Equal(t, CardOutlined, s.Card)
	assert.Equal(t, EffectGlow, s.Effect)
	assert.Equal(t, RevealFlip, s.Reveal)
	assert.Equal(t, "dashed", s.Connector.BorderStyle())
}

func TestStyleRejectsUnknownNames(t *testing.T) {
	var s Style
	err := yaml.Unmarshal([]byte("card: sparkly\n"), &s)
	assert.Error(t, err)

	_, err = ParseIcon("rocket")
	assert.Error(t, err)
}
