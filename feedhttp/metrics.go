package feedhttp

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "icsfeed"

const (
	outcomeOK          = "ok"
	outcomeBadMethod   = "bad_method"
	outcomeSourceError = "source_error"
	outcomeRenderError = "render_error"
)

// Metrics holds the Prometheus instruments the handler reports into. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	requests     *prometheus.CounterVec
	duration     prometheus.Summary
	renderEvents prometheus.Gauge
	lastSuccess  prometheus.Gauge
}

// NewMetrics builds the feed metrics and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Feed requests by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewSummary(prometheus.SummaryOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time spent loading and rendering the feed.",
		}),
		renderEvents: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "render_events",
			Help:      "Number of events in the last rendered feed.",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful render.",
		}),
	}
	reg.MustRegister(m.requests, m.duration, m.renderEvents, m.lastSuccess)
	return m
}

func (m *Metrics) observeRequest(outcome string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(outcome).Inc()
}

func (m *Metrics) observeRender(elapsed time.Duration, events int) {
	if m == nil {
		return
	}
	m.duration.Observe(elapsed.Seconds())
	m.renderEvents.Set(float64(events))
	m.lastSuccess.SetToCurrentTime()
}
