package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mediaonstake/agencysite/pkg/protocol"
)

var (
	ErrSocketClosed = errors.New("socket is closed")
	ErrSendFailed   = errors.New("failed to send message")
	// ErrInfoDropped is returned by SendInfo when no event loop accepts the message.
	ErrInfoDropped = errors.New("info message dropped")
)

// TopicPrefix prefixes the topic of every live socket.
const TopicPrefix = "site:"

// Transport carries frames to the browser.
type Transport interface {
	Send(msg protocol.Message) error
	Close() error
	IsConnected() bool
}

// InfoSink delivers a message to the component's event loop. It reports
// false if the loop is gone or its queue is full.
type InfoSink func(msg any) bool

// Socket is one live connection.
type Socket struct {
	id          string
	connectedAt time.Time
	// Unix nanoseconds
	lastActivity atomic.Int64

	mu        sync.RWMutex
	transport Transport
	connected bool
	info      InfoSink
}

// NewSocket wraps transport under id.
func NewSocket(id string, transport Transport) *Socket {
	now := time.Now()
	s := &Socket{
		id:          id,
		connectedAt: now,
		transport:   transport,
		connected:   true,
	}
	s.lastActivity.Store(now.UnixNano())
	return s
}

// ID returns the socket identifier.
func (s *Socket) ID() string { return s.id }

// Topic returns the socket's topic.
func (s *Socket) Topic() string { return TopicPrefix + s.id }

// ConnectedAt returns when the socket was created.
func (s *Socket) ConnectedAt() time.Time { return s.connectedAt }

// LastActivity returns the time of the last frame in either direction.
func (s *Socket) LastActivity() time.Time {
	return time.Unix(0, s.lastActivity.Load())
}

// Touch records activity.
func (s *Socket) Touch() {
	s.lastActivity.Store(time.Now().UnixNano())
}

// IsConnected reports whether frames can still be sent.
func (s *Socket) IsConnected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected && s.transport != nil && s.transport.IsConnected()
}

// Send writes msg to the transport.
func (s *Socket) Send(msg protocol.Message) error {
	s.mu.RLock()
	connected, t := s.connected, s.transport
	s.mu.RUnlock()

	if !connected || t == nil || !t.IsConnected() {
		return ErrSocketClosed
	}
	s.Touch()

	if err := t.Send(msg); err != nil {
		if !s.IsConnected() {
			return ErrSocketClosed
		}
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	return nil
}

// Push sends a server event on the socket's topic.
func (s *Socket) Push(event string, payload map[string]any) error {
	return s.Send(protocol.NewMessage(s.Topic(), event, payload))
}

// SetInfoSink connects the socket to its event loop. The router calls it
// before Mount.
func (s *Socket) SetInfoSink(sink InfoSink) {
	s.mu.Lock()
	s.info = sink
	s.mu.Unlock()
}

// SendInfo queues msg for the component's HandleInfo. It is safe to call
// from any goroutine, which makes it the way timers get back onto the loop.
func (s *Socket) SendInfo(msg any) error {
	s.mu.RLock()
	sink, connected := s.info, s.connected
	s.mu.RUnlock()

	if !connected {
		return ErrSocketClosed
	}
	if sink == nil || !sink(msg) {
		return ErrInfoDropped
	}
	return nil
}

// Close disconnects the socket. Closing twice is a no-op.
func (s *Socket) Close() error {
	s.mu.Lock()
	if !s.connected {
		s.mu.Unlock()
		return nil
	}
	s.connected = false
	t := s.transport
	s.info = nil
	s.mu.Unlock()

	if t != nil {
		return t.Close()
	}
	return nil
}

// SocketManager tracks the open sockets of the process.
type SocketManager struct {
	mu       sync.RWMutex
	sockets  map[string]*Socket
	shutdown bool
}

// NewSocketManager creates an empty manager.
func NewSocketManager() *SocketManager {
	return &SocketManager{sockets: make(map[string]*Socket)}
}

// Add registers s. It fails once Shutdown has started.
func (sm *SocketManager) Add(s *Socket) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.shutdown {
		return ErrSocketClosed
	}
	sm.sockets[s.ID()] = s
	return nil
}

// Remove forgets the socket with the given id.
func (sm *SocketManager) Remove(id string) {
	sm.mu.Lock()
	delete(sm.sockets, id)
	sm.mu.Unlock()
}

// Get returns the socket with the given id.
func (sm *SocketManager) Get(id string) (*Socket, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	s, ok := sm.sockets[id]
	return s, ok
}

// Count returns the number of open sockets.
func (sm *SocketManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sockets)
}

// Shutdown refuses new sockets and closes the open ones.
func (sm *SocketManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	sm.shutdown = true
	open := make([]*Socket, 0, len(sm.sockets))
	for _, s := range sm.sockets {
		open = append(open, s)
	}
	sm.sockets = make(map[string]*Socket)
	sm.mu.Unlock()

	var errs []error
	for _, s := range open {
		if err := ctx.Err(); err != nil {
			return errors.Join(append(errs, err)...)
		}
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// CleanupInactive closes sockets idle for longer than maxIdle.
func (sm *SocketManager) CleanupInactive(maxIdle time.Duration) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	now := time.Now()
	removed := 0
	for id, s := range sm.sockets {
		if now.Sub(s.LastActivity()) > maxIdle {
			_ = s.Close()
			delete(sm.sockets, id)
			removed++
		}
	}
	return removed
}
