// Package livetest drives live components in tests without a browser.
package livetest

import (
	"sync"
	"testing"
	"time"

	"github.com/mediaonstake/agencysite/pkg/core"
	"github.com/mediaonstake/agencysite/pkg/protocol"
)

// Conn is an in-memory live connection. Frames the server sends are
// recorded; frames the test pushes are delivered to the message loop.
type Conn struct {
	mu      sync.Mutex
	sent    []protocol.Message
	changed chan struct{}
	closed  bool

	recv chan protocol.Message
	done chan struct{}
	once sync.Once
}

// NewConn creates an open connection.
func NewConn() *Conn {
	return &Conn{
		changed: make(chan struct{}, 1),
		recv:    make(chan protocol.Message, 32),
		done:    make(chan struct{}),
	}
}

// Send records a server frame.
func (c *Conn) Send(msg protocol.Message) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return core.ErrSocketClosed
	}
	c.sent = append(c.sent, msg)
	c.mu.Unlock()

	select {
	case c.changed <- struct{}{}:
	default:
	}
	return nil
}

// Close ends the connection.
func (c *Conn) Close() error {
	c.once.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()
		close(c.done)
	})
	return nil
}

// IsConnected reports whether Close was not called yet.
func (c *Conn) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.closed
}

// Receive yields the frames pushed by the test.
func (c *Conn) Receive() <-chan protocol.Message { return c.recv }

// Done is closed by Close.
func (c *Conn) Done() <-chan struct{} { return c.done }

// Push delivers a client frame to the server.
func (c *Conn) Push(event string, payload map[string]any) {
	c.recv <- protocol.Message{Event: event, Payload: payload}
}

// PushRef delivers a client frame that expects a reply.
func (c *Conn) PushRef(ref, event string, payload map[string]any) {
	c.recv <- protocol.Message{Ref: ref, Event: event, Payload: payload}
}

// Sent returns every frame sent so far.
func (c *Conn) Sent() []protocol.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]protocol.Message(nil), c.sent...)
}

// WaitFor blocks until a sent frame satisfies match, failing the test
// after timeout.
func (c *Conn) WaitFor(t testing.TB, timeout time.Duration, match func(protocol.Message) bool) protocol.Message {
	t.Helper()
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	seen := 0
	for {
		sent := c.Sent()
		for _, m := range sent[seen:] {
			if match(m) {
				return m
			}
		}
		seen = len(sent)

		select {
		case <-c.changed:
		case <-deadline.C:
			t.Fatalf("no matching frame within %s; sent %d frames", timeout, len(sent))
			return protocol.Message{}
		}
	}
}

// Event matches frames by event name.
func Event(name string) func(protocol.Message) bool {
	return func(m protocol.Message) bool { return m.Event == name }
}
