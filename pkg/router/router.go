// Package router serves live components over HTTP: the first request gets
// the full HTML, and a WebSocket on the same path carries events and
// region updates afterwards.
package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/mediaonstake/agencysite/pkg/core"
	"github.com/mediaonstake/agencysite/pkg/limits"
	"github.com/mediaonstake/agencysite/pkg/logging"
	"github.com/mediaonstake/agencysite/pkg/metrics"
	"github.com/mediaonstake/agencysite/pkg/pool"
	"github.com/mediaonstake/agencysite/pkg/protocol"
	"github.com/mediaonstake/agencysite/pkg/transport"
)

var (
	ErrNilRenderer  = errors.New("component returned nil renderer")
	ErrNotJoined    = errors.New("event received before join")
	ErrRateLimited  = errors.New("too many events")
	ErrTooManyConns = errors.New("too many live connections from this address")
)

// Middleware wraps an HTTP handler.
type Middleware func(http.Handler) http.Handler

// Factory creates a fresh component per request or connection.
type Factory func() core.Component

// Router routes plain handlers and live components.
type Router struct {
	mux        *http.ServeMux
	middleware []Middleware
	log        logging.Logger

	transportCfg transport.Config
	events       *limits.KeyedLimiter
	conns        *limits.ConnectionLimiter
	metrics      *metrics.Metrics
	trustProxy   bool

	sockets  *core.SocketManager
	sessions *sessionRegistry

	// base is cancelled by Shutdown, ending every message loop.
	base   context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.RWMutex
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the router logger.
func WithLogger(l logging.Logger) Option {
	return func(r *Router) { r.log = l }
}

// WithTransportConfig sets WebSocket limits and allowed origins.
func WithTransportConfig(cfg transport.Config) Option {
	return func(r *Router) { r.transportCfg = cfg }
}

// WithEventLimit throttles user events per socket.
func WithEventLimit(rps float64, burst int) Option {
	return func(r *Router) { r.events = limits.NewKeyedLimiter(rps, burst) }
}

// WithMaxConnectionsPerIP caps concurrent live sockets per client address.
func WithMaxConnectionsPerIP(n int) Option {
	return func(r *Router) { r.conns = limits.NewConnectionLimiter(n) }
}

// WithMetrics records session, event and render counts into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Router) { r.metrics = m }
}

// WithTrustProxyHeaders keys client addresses on X-Forwarded-For and
// X-Real-IP instead of the peer address.
func WithTrustProxyHeaders(trust bool) Option {
	return func(r *Router) { r.trustProxy = trust }
}

// New creates a router.
func New(opts ...Option) *Router {
	base, cancel := context.WithCancel(context.Background())
	r := &Router{
		mux:          http.NewServeMux(),
		log:          logging.NopLogger{},
		transportCfg: transport.DefaultConfig(),
		events:       limits.NewKeyedLimiter(20, 40),
		conns:        limits.NewConnectionLimiter(0),
		sockets:      core.NewSocketManager(),
		sessions:     newSessionRegistry(),
		base:         base,
		cancel:       cancel,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Use appends global middleware. It applies to routes registered afterwards.
func (r *Router) Use(mw Middleware) {
	r.mu.Lock()
	r.middleware = append(r.middleware, mw)
	r.mu.Unlock()
}

// Sockets returns the socket manager.
func (r *Router) Sockets() *core.SocketManager { return r.sockets }

// ActiveSessions returns the number of live sessions.
func (r *Router) ActiveSessions() int { return r.sessions.count() }

// Handle registers a plain handler behind the global middleware.
func (r *Router) Handle(pattern string, h http.Handler) {
	r.mux.Handle(pattern, r.wrap(h))
}

// HandleFunc registers a plain handler function.
func (r *Router) HandleFunc(pattern string, h http.HandlerFunc) {
	r.Handle(pattern, h)
}

// Live registers a live component at path.
func (r *Router) Live(path string, factory Factory) {
	r.mux.Handle(path, r.wrap(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if isWebSocketRequest(req) {
			r.serveSocket(w, req, factory)
			return
		}
		r.renderPage(w, req, factory)
	})))
}

func (r *Router) wrap(h http.Handler) http.Handler {
	r.mu.RLock()
	mws := append([]Middleware(nil), r.middleware...)
	r.mu.RUnlock()
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// ServeHTTP implements http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Shutdown ends every live session and waits for the loops to finish.
func (r *Router) Shutdown(ctx context.Context) error {
	r.cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return r.sockets.Shutdown(ctx)
}

func (r *Router) renderPage(w http.ResponseWriter, req *http.Request, factory Factory) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := req.Context()
	log := logging.L(ctx)
	component := factory()
	defer func() { _ = component.Terminate(ctx, core.TerminateNormal) }()

	if err := component.Mount(ctx, extractParams(req), r.extractSession(req)); err != nil {
		log.Error("mount failed", logging.String("component", component.Name()), logging.Err(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	start := time.Now()
	html, err := render(ctx, component)
	if err != nil {
		log.Error("render failed", logging.String("component", component.Name()), logging.Err(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	r.metrics.ObserveRender(time.Since(start))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

func (r *Router) serveSocket(w http.ResponseWriter, req *http.Request, factory Factory) {
	codec, err := protocol.Lookup(req.URL.Query().Get("codec"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ip := limits.ClientIP(req, r.trustProxy)
	if !r.conns.Acquire(ip) {
		r.log.Warn("live connection refused", logging.String("ip", ip))
		http.Error(w, ErrTooManyConns.Error(), http.StatusTooManyRequests)
		return
	}

	ws, err := transport.Accept(w, req, r.transportCfg, codec, r.log)
	if err != nil {
		r.conns.Release(ip)
		r.log.Debug("websocket upgrade failed", logging.Err(err))
		return
	}

	r.Attach(ws, factory(), extractParams(req), r.extractSession(req), ip)
}

// Attach starts a message loop for component on an established connection.
// It is exported for alternative transports and tests.
func (r *Router) Attach(c Conn, component core.Component, params core.Params, session core.Session, clientIP string) {
	s := newLiveSession(c, component, params, session, clientIP)
	if sa, ok := component.(core.SocketAware); ok {
		sa.SetSocket(s.socket)
	}

	if err := r.sockets.Add(s.socket); err != nil {
		r.conns.Release(clientIP)
		_ = c.Close()
		return
	}
	r.sessions.add(s)
	r.metrics.SessionOpened()

	log := r.log.With(logging.String("socket_id", s.id), logging.String("component", component.Name()))
	ctx := core.WithSocket(r.base, s.socket)
	ctx = core.WithSession(ctx, session)
	ctx = core.WithParams(ctx, params)
	ctx = logging.ContextWithLogger(ctx, log)

	log.Debug("live session started", logging.String("codec", codecName(c)))

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		reason := core.TerminateError
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic in live session", logging.Any("panic", rec))
			}
			r.disconnect(ctx, s, reason)
		}()
		reason = r.messageLoop(ctx, s)
	}()
}

func codecName(c Conn) string {
	if ws, ok := c.(*transport.WebSocket); ok {
		return ws.Codec().Name()
	}
	return "custom"
}

func (r *Router) messageLoop(ctx context.Context, s *liveSession) core.TerminateReason {
	log := logging.L(ctx)
	for {
		select {
		case msg, ok := <-s.conn.Receive():
			if !ok {
				return core.TerminateNormal
			}
			s.socket.Touch()
			r.metrics.MessageReceived(msg.Kind().String())

			switch msg.Kind() {
			case protocol.KindHeartbeat:
				r.reply(s, msg, "ok", nil)
			case protocol.KindJoin:
				if err := r.join(ctx, s, msg); err != nil {
					log.Error("join failed", logging.Err(err))
					r.replyError(s, msg, err)
					return core.TerminateError
				}
			case protocol.KindLeave:
				return core.TerminateNormal
			case protocol.KindEvent:
				r.dispatch(ctx, s, msg)
			}

		case info := <-s.info:
			if !s.mounted {
				continue
			}
			if err := s.component.HandleInfo(ctx, info); err != nil {
				log.Warn("info handler failed", logging.Err(err))
			}
			r.pushRegions(ctx, s)

		case <-s.conn.Done():
			return core.TerminateNormal

		case <-ctx.Done():
			return core.TerminateShutdown
		}
	}
}

func (r *Router) join(ctx context.Context, s *liveSession, msg protocol.Message) error {
	if !s.mounted {
		if err := s.component.Mount(ctx, s.params, s.session); err != nil {
			return fmt.Errorf("mount %s: %w", s.component.Name(), err)
		}
		s.mounted = true
	}

	html, err := render(ctx, s.component)
	if err != nil {
		return err
	}
	regions := extractRegions(html)
	_, s.regions = changedRegions(nil, regions)

	r.reply(s, msg, "ok", map[string]any{
		"socket_id": s.id,
		"regions":   regions,
	})
	return nil
}

func (r *Router) dispatch(ctx context.Context, s *liveSession, msg protocol.Message) {
	log := logging.L(ctx)

	if !s.mounted {
		r.replyError(s, msg, ErrNotJoined)
		return
	}
	if !r.events.Allow(s.id) {
		log.Debug("event throttled", logging.String("event", msg.Event))
		r.metrics.EventThrottled()
		r.replyError(s, msg, ErrRateLimited)
		return
	}

	payload := msg.Payload
	if payload == nil {
		payload = map[string]any{}
	}

	if err := s.component.HandleEvent(ctx, msg.Event, payload); err != nil {
		log.Debug("event rejected", logging.String("event", msg.Event), logging.Err(err))
		section, _, _ := strings.Cut(msg.Event, ":")
		r.metrics.EventRejected(section)
		r.replyError(s, msg, err)
	} else if msg.Ref != "" {
		r.reply(s, msg, "ok", nil)
	}
	r.pushRegions(ctx, s)
}

// pushRegions re-renders the component and sends the regions that changed.
// Pages without regions are sent whole.
func (r *Router) pushRegions(ctx context.Context, s *liveSession) {
	log := logging.L(ctx)

	start := time.Now()
	html, err := render(ctx, s.component)
	if err != nil {
		log.Error("render failed", logging.Err(err))
		return
	}
	r.metrics.ObserveRender(time.Since(start))

	regions := extractRegions(html)
	if len(regions) == 0 {
		if err := s.socket.Push(protocol.EventRender, map[string]any{"html": html}); err != nil {
			log.Debug("push failed", logging.Err(err))
		}
		return
	}

	changed, hashes := changedRegions(s.regions, regions)
	s.regions = hashes
	if len(changed) == 0 {
		return
	}
	for name := range changed {
		r.metrics.RegionPushed(name)
	}
	if err := s.socket.Push(protocol.EventRender, map[string]any{"regions": changed}); err != nil {
		log.Debug("push failed", logging.Err(err))
	}
}

func (r *Router) disconnect(ctx context.Context, s *liveSession, reason core.TerminateReason) {
	s.finish()
	if s.mounted {
		if err := s.component.Terminate(context.WithoutCancel(ctx), reason); err != nil {
			logging.L(ctx).Warn("terminate failed", logging.Err(err))
		}
	}
	_ = s.socket.Close()

	r.sockets.Remove(s.id)
	r.sessions.remove(s.id)
	r.metrics.SessionClosed()
	r.events.Forget(s.id)
	r.conns.Release(s.clientIP)

	logging.L(ctx).Debug("live session ended", logging.String("reason", reason.String()))
}

func (r *Router) reply(s *liveSession, msg protocol.Message, status string, payload map[string]any) {
	_ = s.socket.Send(msg.Reply(status, payload))
}

func (r *Router) replyError(s *liveSession, msg protocol.Message, err error) {
	_ = s.socket.Send(msg.Reply("error", map[string]any{"reason": err.Error()}))
}

func render(ctx context.Context, c core.Component) (string, error) {
	renderer := c.Render(ctx)
	if renderer == nil {
		return "", ErrNilRenderer
	}
	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)
	if err := renderer.Render(ctx, buf); err != nil {
		return "", fmt.Errorf("render %s: %w", c.Name(), err)
	}
	return buf.String(), nil
}

func extractParams(req *http.Request) core.Params {
	params := make(core.Params)
	for key, values := range req.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	params["path"] = req.URL.Path
	return params
}

func (r *Router) extractSession(req *http.Request) core.Session {
	session := core.Session{
		"client_ip":  limits.ClientIP(req, r.trustProxy),
		"user_agent": req.UserAgent(),
	}
	for _, c := range req.Cookies() {
		session["cookie:"+c.Name] = c.Value
	}
	return session
}

func isWebSocketRequest(req *http.Request) bool {
	return strings.EqualFold(req.Header.Get("Upgrade"), "websocket")
}
