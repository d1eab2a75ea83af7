package commands

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediaonstake/agencysite/internal/config"
	"github.com/mediaonstake/agencysite/pkg/logging"
)

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestNewServerRoutes(t *testing.T) {
	c := config.Default()
	c.Server.PublicURL = "https://example.test"

	srv, err := newServer(c, logging.NopLogger{}, "")
	require.NoError(t, err)

	page := get(t, srv.router, "/")
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), `data-region="contact"`)
	assert.NotEmpty(t, page.Header().Get("X-Content-Type-Options"))

	assert.Equal(t, http.StatusOK, get(t, srv.router, "/healthz").Code)
	assert.Equal(t, http.StatusOK, get(t, srv.router, "/readyz").Code)

	js := get(t, srv.router, "/live.js")
	assert.Equal(t, http.StatusOK, js.Code)

	robots := get(t, srv.router, "/robots.txt")
	assert.Contains(t, robots.Body.String(), "https://example.test/sitemap.xml")

	m := get(t, srv.router, "/metrics")
	assert.Contains(t, m.Body.String(), "agencysite_render_duration_seconds_count 1")

	assert.Equal(t, http.StatusNotFound, get(t, srv.router, "/nope").Code)
	assert.Nil(t, srv.watcher)
}

func TestNewServerServesAssets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logo.svg"), []byte("<svg/>"), 0o644))

	srv, err := newServer(config.Default(), logging.NopLogger{}, dir)
	require.NoError(t, err)

	rec := get(t, srv.router, "/assets/logo.svg")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<svg/>", rec.Body.String())
}

func TestNewServerRejectsBrokenContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("brand: [unclosed"), 0o644))

	c := config.Default()
	c.Content.Path = path
	_, err := newServer(c, logging.NopLogger{}, "")
	assert.Error(t, err)
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := newLogger(config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}
