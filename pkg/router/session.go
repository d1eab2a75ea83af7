package router

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mediaonstake/agencysite/pkg/core"
	"github.com/mediaonstake/agencysite/pkg/protocol"
)

// Conn is the part of a live transport the message loop needs.
type Conn interface {
	core.Transport
	Receive() <-chan protocol.Message
	Done() <-chan struct{}
}

const infoQueueSize = 16

// liveSession binds one component instance to one connection.
type liveSession struct {
	id        string
	clientIP  string
	component core.Component
	socket    *core.Socket
	conn      Conn
	params    core.Params
	session   core.Session
	createdAt time.Time

	mounted bool
	// FNV-64a hashes of the regions last sent to the browser
	regions map[string]uint64

	info chan any
	done chan struct{}
	once sync.Once
}

func newLiveSession(c Conn, component core.Component, params core.Params, session core.Session, clientIP string) *liveSession {
	id := uuid.NewString()
	s := &liveSession{
		id:        id,
		clientIP:  clientIP,
		component: component,
		socket:    core.NewSocket(id, c),
		conn:      c,
		params:    params,
		session:   session,
		createdAt: time.Now(),
		info:      make(chan any, infoQueueSize),
		done:      make(chan struct{}),
	}
	s.socket.SetInfoSink(s.deliver)
	return s
}

// deliver queues an info message without blocking. It never sends on a
// closed channel: info is left open and done gates delivery.
func (s *liveSession) deliver(msg any) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.info <- msg:
		return true
	default:
		return false
	}
}

func (s *liveSession) finish() {
	s.once.Do(func() { close(s.done) })
}

// sessionRegistry counts live sessions for health checks.
type sessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*liveSession
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{sessions: make(map[string]*liveSession)}
}

func (r *sessionRegistry) add(s *liveSession) {
	r.mu.Lock()
	r.sessions[s.id] = s
	r.mu.Unlock()
}

func (r *sessionRegistry) remove(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

func (r *sessionRegistry) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
