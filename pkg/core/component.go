// Package core defines live components and the sockets they talk through.
package core

import (
	"context"
	"io"
)

// Component is a stateful, server-side piece of UI bound to one browser tab.
//
// The router calls every method from a single goroutine per connection, so
// implementations need no locking for their own state.
type Component interface {
	// Name identifies the component in logs.
	Name() string

	// Mount initializes state when a connection is established.
	Mount(ctx context.Context, params Params, session Session) error

	// Render returns the current HTML.
	Render(ctx context.Context) Renderer

	// HandleEvent applies a user interaction forwarded by the browser.
	HandleEvent(ctx context.Context, event string, payload map[string]any) error

	// HandleInfo applies an internal message, such as a fired timer.
	HandleInfo(ctx context.Context, msg any) error

	// Terminate releases resources. Pending timers must not fire afterwards.
	Terminate(ctx context.Context, reason TerminateReason) error
}

// Renderer writes HTML.
type Renderer interface {
	Render(ctx context.Context, w io.Writer) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(ctx context.Context, w io.Writer) error

func (f RendererFunc) Render(ctx context.Context, w io.Writer) error {
	return f(ctx, w)
}

// HTML renders a fixed string.
func HTML(s string) Renderer {
	return RendererFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

// Params holds query parameters of the connecting request.
type Params map[string]string

// Get returns the parameter or "".
func (p Params) Get(key string) string {
	return p[key]
}

// GetDefault returns the parameter or def when it is absent.
func (p Params) GetDefault(key, def string) string {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

// Session holds request-scoped data handed over by the HTTP layer.
type Session map[string]any

// GetString returns a string value or "".
func (s Session) GetString(key string) string {
	v, _ := s[key].(string)
	return v
}

// TerminateReason tells a component why it is being torn down.
type TerminateReason int

const (
	TerminateNormal TerminateReason = iota
	TerminateShutdown
	TerminateError
	TerminateTimeout
)

func (r TerminateReason) String() string {
	switch r {
	case TerminateNormal:
		return "normal"
	case TerminateShutdown:
		return "shutdown"
	case TerminateError:
		return "error"
	case TerminateTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// SocketAware is implemented by components that want their socket before Mount.
type SocketAware interface {
	SetSocket(s *Socket)
}

// BaseComponent supplies no-op lifecycle methods. Embed it and override
// what the component needs.
type BaseComponent struct {
	socket *Socket
}

// SetSocket is called by the router before Mount.
func (bc *BaseComponent) SetSocket(s *Socket) {
	bc.socket = s
}

// Socket returns the connection, or nil while rendering the initial HTTP response.
func (bc *BaseComponent) Socket() *Socket {
	return bc.socket
}

func (bc *BaseComponent) Name() string { return "" }

func (bc *BaseComponent) Mount(ctx context.Context, params Params, session Session) error {
	return nil
}

func (bc *BaseComponent) HandleEvent(ctx context.Context, event string, payload map[string]any) error {
	return nil
}

func (bc *BaseComponent) HandleInfo(ctx context.Context, msg any) error {
	return nil
}

func (bc *BaseComponent) Terminate(ctx context.Context, reason TerminateReason) error {
	return nil
}
