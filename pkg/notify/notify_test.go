package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	var r Recorder
	_, ok := r.Last()
	assert.False(t, ok)

	r.Notify(Notice{Title: "a"})
	r.Notify(Notice{Title: "b", Variant: VariantDestructive})

	last, ok := r.Last()
	assert.True(t, ok)
	assert.Equal(t, "b", last.Title)
	assert.Len(t, r.Notices(), 2)
}

func TestPayload(t *testing.T) {
	p := Notice{Title: "Missing Information", Description: "d", Variant: VariantDestructive}.Payload()
	assert.Equal(t, map[string]any{"title": "Missing Information", "description": "d", "variant": "destructive"}, p)
	assert.Equal(t, "default", Variant(9).String())
}
