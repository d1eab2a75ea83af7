package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetBufferIsEmpty(t *testing.T) {
	buf := GetBuffer()
	buf.WriteString("region html")
	PutBuffer(buf)

	assert.Zero(t, GetBuffer().Len())
}

func TestPutBufferIgnoresNilAndOversized(t *testing.T) {
	assert.NotPanics(t, func() { PutBuffer(nil) })
	assert.NotPanics(t, func() { PutBuffer(bytes.NewBuffer(make([]byte, 0, MaxPooledSize+1))) })
}
