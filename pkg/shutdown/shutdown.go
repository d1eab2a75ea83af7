// Package shutdown runs ordered cleanup hooks when the site process stops.
package shutdown

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"sync"
	"syscall"
	"time"

	"github.com/mediaonstake/agencysite/pkg/logging"
)

var (
	ErrShutdownTimeout = errors.New("shutdown timed out")
	ErrAlreadyClosed   = errors.New("shutdown already ran")
)

// Hook priorities. Lower runs earlier.
const (
	PriorityHTTP    = 100
	PriorityLive    = 200
	PriorityContent = 300
	PriorityLast    = 1000
)

// Hook is one cleanup step.
type Hook struct {
	Name     string
	Priority int
	Fn       func(ctx context.Context) error
}

// Handler collects hooks and runs them once.
type Handler struct {
	timeout time.Duration
	signals []os.Signal
	log     logging.Logger

	mu     sync.Mutex
	hooks  []Hook
	closed bool
	done   chan struct{}
}

// Option configures a Handler.
type Option func(*Handler)

// WithTimeout bounds the whole shutdown sequence.
func WithTimeout(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.timeout = d
		}
	}
}

// WithSignals replaces the default SIGINT/SIGTERM set.
func WithSignals(sig ...os.Signal) Option {
	return func(h *Handler) { h.signals = sig }
}

// WithLogger reports each hook's outcome.
func WithLogger(l logging.Logger) Option {
	return func(h *Handler) { h.log = l }
}

// NewHandler creates a handler with a 15s timeout.
func NewHandler(opts ...Option) *Handler {
	h := &Handler{
		timeout: 15 * time.Second,
		signals: []os.Signal{os.Interrupt, syscall.SIGTERM},
		log:     logging.NopLogger{},
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register adds a hook.
func (h *Handler) Register(hook Hook) {
	h.mu.Lock()
	h.hooks = append(h.hooks, hook)
	h.mu.Unlock()
}

// RegisterFunc adds fn as a hook.
func (h *Handler) RegisterFunc(name string, priority int, fn func(ctx context.Context) error) {
	h.Register(Hook{Name: name, Priority: priority, Fn: fn})
}

// RegisterCloser adds a hook that calls c.Close.
func (h *Handler) RegisterCloser(name string, priority int, c interface{ Close() error }) {
	h.RegisterFunc(name, priority, func(context.Context) error { return c.Close() })
}

// Wait blocks until a signal arrives, ctx is cancelled, or Shutdown is
// called elsewhere, then runs the hooks.
func (h *Handler) Wait(ctx context.Context) error {
	sigCtx, stop := signal.NotifyContext(ctx, h.signals...)
	defer stop()

	select {
	case <-sigCtx.Done():
		h.log.Info("shutdown requested", logging.String("cause", context.Cause(sigCtx).Error()))
	case <-h.done:
		return nil
	}
	return h.Shutdown()
}

// Shutdown runs every hook in priority order. Hooks sharing a priority keep
// registration order.
func (h *Handler) Shutdown() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrAlreadyClosed
	}
	h.closed = true
	hooks := append([]Hook(nil), h.hooks...)
	h.mu.Unlock()
	defer close(h.done)

	sort.SliceStable(hooks, func(i, j int) bool { return hooks[i].Priority < hooks[j].Priority })

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	var errs []error
	for _, hook := range hooks {
		start := time.Now()
		err := hook.Fn(ctx)
		fields := []logging.Field{logging.String("hook", hook.Name), logging.Duration("took", time.Since(start))}
		if err != nil {
			h.log.Warn("shutdown hook failed", append(fields, logging.Err(err))...)
			errs = append(errs, fmt.Errorf("%s: %w", hook.Name, err))
		} else {
			h.log.Debug("shutdown hook done", fields...)
		}
		if ctx.Err() != nil {
			errs = append(errs, ErrShutdownTimeout)
			break
		}
	}
	return errors.Join(errs...)
}

// Done is closed after Shutdown has run all hooks.
func (h *Handler) Done() <-chan struct{} {
	return h.done
}
