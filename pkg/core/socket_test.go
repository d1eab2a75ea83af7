package core

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mediaonstake/agencysite/pkg/protocol"
)

type mockTransport struct {
	mu        sync.Mutex
	connected bool
	sent      []protocol.Message
}

func newMockTransport() *mockTransport {
	return &mockTransport{connected: true}
}

func (m *mockTransport) Send(msg protocol.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.connected {
		return ErrSocketClosed
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *mockTransport) Close() error {
	m.mu.Lock()
	m.connected = false
	m.mu.Unlock()
	return nil
}

func (m *mockTransport) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}

func (m *mockTransport) messages() []protocol.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]protocol.Message(nil), m.sent...)
}

func TestSocketPush(t *testing.T) {
	tr := newMockTransport()
	s := NewSocket("abc", tr)

	if err := s.Push(protocol.EventNotice, map[string]any{"title": "hi"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msgs := tr.messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Topic != "site:abc" {
		t.Errorf("expected topic site:abc, got %s", msgs[0].Topic)
	}
	if msgs[0].Event != protocol.EventNotice {
		t.Errorf("expected event notice, got %s", msgs[0].Event)
	}
}

func TestSocketSendAfterClose(t *testing.T) {
	s := NewSocket("abc", newMockTransport())
	if err := s.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Push("render", nil); err != ErrSocketClosed {
		t.Errorf("expected ErrSocketClosed, got %v", err)
	}
	if s.IsConnected() {
		t.Error("expected socket to be disconnected")
	}
	// second close is a no-op
	if err := s.Close(); err != nil {
		t.Errorf("unexpected error on second close: %v", err)
	}
}

func TestSocketSendInfo(t *testing.T) {
	s := NewSocket("abc", newMockTransport())

	if err := s.SendInfo("tick"); err != ErrInfoDropped {
		t.Errorf("expected ErrInfoDropped without sink, got %v", err)
	}

	var got []any
	s.SetInfoSink(func(msg any) bool {
		got = append(got, msg)
		return true
	})
	if err := s.SendInfo("tick"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != "tick" {
		t.Errorf("expected [tick], got %v", got)
	}

	_ = s.Close()
	if err := s.SendInfo("late"); err != ErrSocketClosed {
		t.Errorf("expected ErrSocketClosed, got %v", err)
	}
}

func TestSocketManager(t *testing.T) {
	sm := NewSocketManager()
	a := NewSocket("a", newMockTransport())
	b := NewSocket("b", newMockTransport())

	if err := sm.Add(a); err != nil {
		t.Fatal(err)
	}
	if err := sm.Add(b); err != nil {
		t.Fatal(err)
	}
	if sm.Count() != 2 {
		t.Errorf("expected 2 sockets, got %d", sm.Count())
	}

	sm.Remove("a")
	if _, ok := sm.Get("a"); ok {
		t.Error("expected socket a to be removed")
	}

	if err := sm.Shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.IsConnected() {
		t.Error("expected shutdown to close socket b")
	}
	if err := sm.Add(NewSocket("c", newMockTransport())); err != ErrSocketClosed {
		t.Errorf("expected ErrSocketClosed after shutdown, got %v", err)
	}
}

func TestSocketManagerCleanupInactive(t *testing.T) {
	sm := NewSocketManager()
	idle := NewSocket("idle", newMockTransport())
	idle.lastActivity.Store(time.Now().Add(-time.Hour).UnixNano())
	fresh := NewSocket("fresh", newMockTransport())
	_ = sm.Add(idle)
	_ = sm.Add(fresh)

	if n := sm.CleanupInactive(time.Minute); n != 1 {
		t.Errorf("expected 1 removed, got %d", n)
	}
	if _, ok := sm.Get("fresh"); !ok {
		t.Error("expected fresh socket to remain")
	}
}

func TestHTMLRenderer(t *testing.T) {
	var b strings.Builder
	if err := HTML("<p>x</p>").Render(context.Background(), &b); err != nil {
		t.Fatal(err)
	}
	if b.String() != "<p>x</p>" {
		t.Errorf("unexpected output %q", b.String())
	}
}
