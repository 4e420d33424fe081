package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the Prometheus collectors for one server instance. Each
// server owns its own registry so independent instances (and tests) never
// collide on collector registration.
type Metrics struct {
	registry *prometheus.Registry

	ActiveSessions       prometheus.Gauge
	LinesRelayed         prometheus.Counter
	BroadcastsDelivered  prometheus.Counter
	AutoReplies          prometheus.Counter
	HistoryWriteFailures prometheus.Counter
}

// NewMetrics creates and registers the relay collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "relaychat_active_sessions",
			Help: "Number of sessions currently admitted to the registry.",
		}),
		LinesRelayed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "relaychat_lines_relayed_total",
			Help: "Protocol lines dispatched by the router.",
		}),
		BroadcastsDelivered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "relaychat_broadcast_deliveries_total",
			Help: "Individual line deliveries made by broadcast fan-out.",
		}),
		AutoReplies: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "relaychat_auto_replies_total",
			Help: "Auto-reply responses served from the trigger table.",
		}),
		HistoryWriteFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "relaychat_history_write_failures_total",
			Help: "History log appends that failed and were skipped.",
		}),
	}

	m.registry.MustRegister(
		m.ActiveSessions,
		m.LinesRelayed,
		m.BroadcastsDelivered,
		m.AutoReplies,
		m.HistoryWriteFailures,
	)

	return m
}

// Handler returns the HTTP handler serving this instance's metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
