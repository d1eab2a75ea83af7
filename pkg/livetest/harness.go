package livetest

import (
	"bytes"
	"context"
	"testing"

	"github.com/mediaonstake/agencysite/pkg/core"
	"github.com/mediaonstake/agencysite/pkg/protocol"
)

// Harness runs a component synchronously: events are applied in the
// calling goroutine and info messages wait in a queue until Flush.
type Harness struct {
	t         testing.TB
	ctx       context.Context
	Component core.Component
	Conn      *Conn
	Socket    *core.Socket
	queue     []any
}

// Mount wires c to an in-memory socket and mounts it.
func Mount(t testing.TB, c core.Component, params core.Params) *Harness {
	t.Helper()
	h := &Harness{t: t, Component: c, Conn: NewConn()}
	h.Socket = core.NewSocket("test-socket", h.Conn)
	h.Socket.SetInfoSink(func(msg any) bool {
		h.queue = append(h.queue, msg)
		return true
	})
	if sa, ok := c.(core.SocketAware); ok {
		sa.SetSocket(h.Socket)
	}
	h.ctx = core.WithSocket(context.Background(), h.Socket)

	if err := c.Mount(h.ctx, params, core.Session{}); err != nil {
		t.Fatalf("mount: %v", err)
	}
	t.Cleanup(func() {
		_ = c.Terminate(context.Background(), core.TerminateNormal)
	})
	return h
}

// Event applies a user event and returns its error.
func (h *Harness) Event(name string, payload map[string]any) error {
	if payload == nil {
		payload = map[string]any{}
	}
	return h.Component.HandleEvent(h.ctx, name, payload)
}

// MustEvent applies a user event and fails the test on error.
func (h *Harness) MustEvent(name string, payload map[string]any) {
	h.t.Helper()
	if err := h.Event(name, payload); err != nil {
		h.t.Fatalf("event %s: %v", name, err)
	}
}

// Pending returns the number of queued info messages.
func (h *Harness) Pending() int { return len(h.queue) }

// Flush delivers queued info messages, including any queued while flushing.
func (h *Harness) Flush() {
	h.t.Helper()
	for len(h.queue) > 0 {
		msg := h.queue[0]
		h.queue = h.queue[1:]
		if err := h.Component.HandleInfo(h.ctx, msg); err != nil {
			h.t.Fatalf("info %T: %v", msg, err)
		}
	}
}

// HTML renders the component.
func (h *Harness) HTML() string {
	h.t.Helper()
	r := h.Component.Render(h.ctx)
	if r == nil {
		h.t.Fatal("nil renderer")
	}
	var buf bytes.Buffer
	if err := r.Render(h.ctx, &buf); err != nil {
		h.t.Fatalf("render: %v", err)
	}
	return buf.String()
}

// Pushed returns the frames the component pushed with the given event name.
func (h *Harness) Pushed(event string) []protocol.Message {
	var out []protocol.Message
	for _, m := range h.Conn.Sent() {
		if m.Event == event {
			out = append(out, m)
		}
	}
	return out
}
