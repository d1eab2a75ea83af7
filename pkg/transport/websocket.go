package transport

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"

	"github.com/mediaonstake/agencysite/pkg/logging"
	"github.com/mediaonstake/agencysite/pkg/protocol"
)

// OriginAllowed reports whether a page served from origin may open a
// socket to host under cfg.
func OriginAllowed(cfg Config, origin, host string) bool {
	if cfg.InsecureDevMode || origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if u.Host == host {
		return true
	}
	for _, allowed := range cfg.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
		if au, err := url.Parse(allowed); err == nil && au.Host != "" && au.Host == u.Host {
			return true
		}
	}
	return false
}

// WebSocket is a server-side live connection.
type WebSocket struct {
	cfg   Config
	codec protocol.Codec
	log   logging.Logger

	conn      *websocket.Conn
	sendCh    chan protocol.Message
	recvCh    chan protocol.Message
	closeCh   chan struct{}
	closeOnce sync.Once
	connected atomic.Bool
}

// Accept validates the origin, upgrades the request and starts the
// read, write and ping loops.
func Accept(w http.ResponseWriter, r *http.Request, cfg Config, codec protocol.Codec, log logging.Logger) (*WebSocket, error) {
	cfg = cfg.withDefaults()
	if codec == nil {
		codec = protocol.JSONCodec{}
	}
	if log == nil {
		log = logging.NopLogger{}
	}

	if !OriginAllowed(cfg, r.Header.Get("Origin"), r.Host) {
		http.Error(w, "Forbidden: origin not allowed", http.StatusForbidden)
		return nil, ErrOriginNotAllowed
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: cfg.InsecureDevMode,
		// OriginAllowed already ran; let same-host proxies through.
		OriginPatterns: originPatterns(cfg),
	})
	if err != nil {
		return nil, fmt.Errorf("accept websocket: %w", err)
	}
	conn.SetReadLimit(cfg.MaxMessageSize)

	t := &WebSocket{
		cfg:     cfg,
		codec:   codec,
		log:     log,
		conn:    conn,
		sendCh:  make(chan protocol.Message, cfg.SendBuffer),
		recvCh:  make(chan protocol.Message, cfg.ReceiveBuffer),
		closeCh: make(chan struct{}),
	}
	t.connected.Store(true)

	go t.readLoop()
	go t.writeLoop()
	go t.pingLoop()
	return t, nil
}

func originPatterns(cfg Config) []string {
	var patterns []string
	for _, o := range cfg.AllowedOrigins {
		if o == "*" {
			return []string{"*"}
		}
		if u, err := url.Parse(o); err == nil && u.Host != "" {
			patterns = append(patterns, u.Host)
		}
	}
	return patterns
}

// Codec returns the codec negotiated for this connection.
func (t *WebSocket) Codec() protocol.Codec { return t.codec }

// IsConnected reports whether the connection is open.
func (t *WebSocket) IsConnected() bool { return t.connected.Load() }

// Receive yields decoded client frames. It is closed when the connection ends.
func (t *WebSocket) Receive() <-chan protocol.Message { return t.recvCh }

// Done is closed when the connection ends.
func (t *WebSocket) Done() <-chan struct{} { return t.closeCh }

// Send queues msg for writing.
func (t *WebSocket) Send(msg protocol.Message) error {
	if !t.IsConnected() {
		return ErrNotConnected
	}
	timer := time.NewTimer(t.cfg.WriteTimeout)
	defer timer.Stop()

	select {
	case t.sendCh <- msg:
		return nil
	case <-t.closeCh:
		return ErrConnectionClosed
	case <-timer.C:
		return ErrSendTimeout
	}
}

// Close ends the connection. It is safe to call more than once.
func (t *WebSocket) Close() error {
	var err error
	t.closeOnce.Do(func() {
		t.connected.Store(false)
		close(t.closeCh)
		err = t.conn.Close(websocket.StatusNormalClosure, "closing")
	})
	return err
}

func (t *WebSocket) readLoop() {
	defer close(t.recvCh)
	defer t.Close()

	for {
		ctx, cancel := context.WithTimeout(context.Background(), t.cfg.ReadTimeout)
		_, data, err := t.conn.Read(ctx)
		cancel()
		if err != nil {
			if websocket.CloseStatus(err) != websocket.StatusNormalClosure && websocket.CloseStatus(err) != websocket.StatusGoingAway {
				t.log.Debug("websocket read ended", logging.Err(err))
			}
			return
		}

		msg, err := t.codec.Decode(data)
		if err != nil {
			t.log.Debug("dropping undecodable frame", logging.Err(err), logging.Int("bytes", len(data)))
			continue
		}

		select {
		case t.recvCh <- msg:
		case <-t.closeCh:
			return
		default:
			t.log.Warn("receive buffer full, dropping frame", logging.String("event", msg.Event))
		}
	}
}

func (t *WebSocket) writeLoop() {
	typ := websocket.MessageText
	if t.codec.Binary() {
		typ = websocket.MessageBinary
	}

	for {
		select {
		case msg := <-t.sendCh:
			data, err := t.codec.Encode(msg)
			if err != nil {
				t.log.Error("encode frame", logging.Err(err), logging.String("event", msg.Event))
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), t.cfg.WriteTimeout)
			err = t.conn.Write(ctx, typ, data)
			cancel()
			if err != nil {
				t.log.Debug("websocket write failed", logging.Err(err))
				_ = t.Close()
				return
			}
		case <-t.closeCh:
			return
		}
	}
}

func (t *WebSocket) pingLoop() {
	ticker := time.NewTicker(t.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), t.cfg.WriteTimeout)
			err := t.conn.Ping(ctx)
			cancel()
			if err != nil {
				t.log.Debug("websocket ping failed", logging.Err(err))
				_ = t.Close()
				return
			}
		case <-t.closeCh:
			return
		}
	}
}
