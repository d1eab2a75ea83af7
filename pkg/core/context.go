package core

import "context"

type contextKey string

const (
	socketKey  contextKey = "agencysite:socket"
	sessionKey contextKey = "agencysite:session"
	paramsKey  contextKey = "agencysite:params"
)

// WithSocket stores the socket in ctx.
func WithSocket(ctx context.Context, s *Socket) context.Context {
	return context.WithValue(ctx, socketKey, s)
}

// SocketFromContext returns the socket stored in ctx, or nil.
func SocketFromContext(ctx context.Context) *Socket {
	s, _ := ctx.Value(socketKey).(*Socket)
	return s
}

// WithSession stores session data in ctx.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromContext returns the session stored in ctx, or nil.
func SessionFromContext(ctx context.Context) Session {
	s, _ := ctx.Value(sessionKey).(Session)
	return s
}

// WithParams stores connection parameters in ctx.
func WithParams(ctx context.Context, p Params) context.Context {
	return context.WithValue(ctx, paramsKey, p)
}

// ParamsFromContext returns the parameters stored in ctx, or nil.
func ParamsFromContext(ctx context.Context) Params {
	p, _ := ctx.Value(paramsKey).(Params)
	return p
}
