package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediaonstake/agencysite/pkg/protocol"
)

func TestOriginAllowed(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		origin string
		want   bool
	}{
		{"same origin", Config{}, "https://mediaonstake.com", true},
		{"no origin header", Config{}, "", true},
		{"listed origin", Config{AllowedOrigins: []string{"https://preview.mediaonstake.com"}}, "https://preview.mediaonstake.com", true},
		{"unlisted origin", Config{AllowedOrigins: []string{"https://preview.mediaonstake.com"}}, "https://attacker.example", false},
		{"wildcard", Config{AllowedOrigins: []string{"*"}}, "https://anything.example", true},
		{"dev mode", Config{InsecureDevMode: true}, "https://attacker.example", true},
		{"cross origin by default", Config{}, "https://other.example", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OriginAllowed(tt.cfg, tt.origin, "mediaonstake.com"))
		})
	}
}

func TestAcceptRejectsForeignOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "mediaonstake.com"
	req.Header.Set("Origin", "https://attacker.example")
	rec := httptest.NewRecorder()

	_, err := Accept(rec, req, DefaultConfig(), nil, nil)
	assert.ErrorIs(t, err, ErrOriginNotAllowed)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestWebSocketEcho(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := Accept(w, r, DefaultConfig(), protocol.JSONCodec{}, nil)
		if err != nil {
			return
		}
		for msg := range ws.Receive() {
			_ = ws.Send(protocol.NewMessage("site:test", "echo", map[string]any{"event": msg.Event}))
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte(`{"event":"portfolio:next"}`)))

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	msg, err := protocol.JSONCodec{}.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "echo", msg.Event)
	assert.Equal(t, "portfolio:next", msg.Payload["event"])
}
