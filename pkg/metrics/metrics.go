// Package metrics exposes the live site's Prometheus collectors.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the site's collectors on a private registry. A nil *Metrics
// records nothing.
type Metrics struct {
	registry *prometheus.Registry

	SessionsActive prometheus.Gauge
	SessionsTotal  prometheus.Counter

	Messages      *prometheus.CounterVec
	EventErrors   *prometheus.CounterVec
	RegionsPushed *prometheus.CounterVec
	Throttled     prometheus.Counter

	RenderDuration prometheus.Histogram

	Handoffs           prometheus.Counter
	ValidationFailures prometheus.Counter
}

// New registers the site's collectors under namespace on a fresh registry.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,

		SessionsActive: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_sessions_active",
			Help:      "Live sessions currently attached.",
		}),
		SessionsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "live_sessions_total",
			Help:      "Live sessions attached since start.",
		}),

		Messages: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_received_total",
			Help:      "Socket messages received.",
		}, []string{"kind"}),
		EventErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_errors_total",
			Help:      "Events the page rejected.",
		}, []string{"section"}),
		RegionsPushed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "regions_pushed_total",
			Help:      "Region updates pushed to clients.",
		}, []string{"region"}),
		Throttled: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_throttled_total",
			Help:      "Events dropped by the rate limiter.",
		}),

		RenderDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering a page.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		}),

		Handoffs: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_handoffs_total",
			Help:      "WhatsApp deep links sent to visitors.",
		}),
		ValidationFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_validation_failures_total",
			Help:      "Contact submits missing required fields.",
		}),
	}
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// SessionOpened records an attached live session.
func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.SessionsActive.Inc()
	m.SessionsTotal.Inc()
}

// SessionClosed records a detached live session.
func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.SessionsActive.Dec()
}

// MessageReceived counts one socket message of the given kind.
func (m *Metrics) MessageReceived(kind string) {
	if m == nil {
		return
	}
	m.Messages.WithLabelValues(kind).Inc()
}

// EventRejected counts an event error under the event's section.
func (m *Metrics) EventRejected(section string) {
	if m == nil {
		return
	}
	m.EventErrors.WithLabelValues(section).Inc()
}

func (m *Metrics) EventThrottled() {
	if m == nil {
		return
	}
	m.Throttled.Inc()
}

// RegionPushed counts one pushed region.
func (m *Metrics) RegionPushed(name string) {
	if m == nil {
		return
	}
	m.RegionsPushed.WithLabelValues(name).Inc()
}

// ObserveRender records how long a render took.
func (m *Metrics) ObserveRender(d time.Duration) {
	if m == nil {
		return
	}
	m.RenderDuration.Observe(d.Seconds())
}

// HandoffOpened counts a deep link sent to a visitor.
func (m *Metrics) HandoffOpened() {
	if m == nil {
		return
	}
	m.Handoffs.Inc()
}

// ValidationFailed counts a submit rejected for missing fields.
func (m *Metrics) ValidationFailed() {
	if m == nil {
		return
	}
	m.ValidationFailures.Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
