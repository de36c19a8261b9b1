// Package metrics holds the Prometheus collectors of the server.
//
// Collectors are registered on a private registry instead of the global
// one so tests can create as many [Metrics] as they need.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "plusminus"

// Mail task results.
const (
	MailEnqueued  = "enqueued"
	MailFailed    = "failed"
	MailDelivered = "delivered"
)

type Metrics struct {
	registry *prometheus.Registry

	// RequestsTotal counts finished API requests by method, route pattern
	// and status code.
	RequestsTotal *prometheus.CounterVec
	// RequestDuration observes API latency by method and route pattern.
	RequestDuration *prometheus.HistogramVec
	// TokenRefreshes counts refresh endpoint calls by outcome.
	TokenRefreshes *prometheus.CounterVec

	MailTasks       *prometheus.CounterVec
	BlacklistPurged prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Number of API requests.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "API request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		TokenRefreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "token_refreshes_total",
			Help:      "Number of access token refreshes by outcome.",
		}, []string{"outcome"}),
		MailTasks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "mail",
			Name:      "tasks_total",
			Help:      "Password reset mails by result.",
		}, []string{"result"}),
		BlacklistPurged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "blacklist_purged_total",
			Help:      "Number of expired blacklist entries removed.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestsTotal,
		m.RequestDuration,
		m.TokenRefreshes,
		m.MailTasks,
		m.BlacklistPurged,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
