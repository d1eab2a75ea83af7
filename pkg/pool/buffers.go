// Package pool reuses render buffers. A full page render lands in the
// hundreds of kilobytes, and every live event renders once.
package pool

import (
	"bytes"
	"sync"
)

// MaxPooledSize is the largest buffer capacity returned to the pool.
const MaxPooledSize = 1 << 20

var buffers = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

// GetBuffer returns an empty buffer.
func GetBuffer() *bytes.Buffer {
	buf := buffers.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer recycles buf. Oversized buffers are dropped.
func PutBuffer(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > MaxPooledSize {
		return
	}
	buffers.Put(buf)
}
