package metrics

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsRecordNothing(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.SessionOpened()
		m.SessionClosed()
		m.MessageReceived("event")
		m.EventRejected("contact")
		m.EventThrottled()
		m.RegionPushed("nav")
		m.ObserveRender(time.Millisecond)
		m.HandoffOpened()
		m.ValidationFailed()
	})
}

func TestSessionsGauge(t *testing.T) {
	m := New("test")
	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionsActive))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.SessionsTotal))
}

func TestMessagesConcurrent(t *testing.T) {
	m := New("test")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.MessageReceived("event")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 800.0, testutil.ToFloat64(m.Messages.WithLabelValues("event")))
}

func TestSeparateInstancesDoNotCollide(t *testing.T) {
	a, b := New("site"), New("site")
	a.HandoffOpened()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.Handoffs))
	assert.Zero(t, testutil.ToFloat64(b.Handoffs))
}

func TestRenderHistogram(t *testing.T) {
	m := New("test")
	m.ObserveRender(2 * time.Millisecond)
	m.ObserveRender(4 * time.Millisecond)

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != "test_render_duration_seconds" {
			continue
		}
		h := f.GetMetric()[0].GetHistogram()
		assert.Equal(t, uint64(2), h.GetSampleCount())
		assert.InDelta(t, 0.006, h.GetSampleSum(), 1e-9)
		return
	}
	t.Fatal("render histogram not registered")
}

func TestHandlerWritesPrometheusText(t *testing.T) {
	m := New("site")
	m.MessageReceived("join")
	m.MessageReceived("event")
	m.MessageReceived("event")
	m.RegionPushed("contact")
	m.HandoffOpened()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "# TYPE site_live_sessions_active gauge\n")
	assert.Contains(t, body, `site_messages_received_total{kind="event"} 2`)
	assert.Contains(t, body, `site_messages_received_total{kind="join"} 1`)
	assert.Contains(t, body, `site_regions_pushed_total{region="contact"} 1`)
	assert.Contains(t, body, "site_contact_handoffs_total 1\n")
	assert.Contains(t, body, "# TYPE site_render_duration_seconds histogram\n")
}
