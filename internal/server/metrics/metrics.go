// Package metrics exposes Prometheus counters for the gRPC surface and
// the outbox relay, served over a plain HTTP endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	OutboxPublished prometheus.Counter
	OutboxFailed    prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "identity_grpc_requests_total",
			Help: "Completed gRPC requests by method and status code.",
		}, []string{"method", "code"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "identity_grpc_request_duration_seconds",
			Help:    "gRPC request latency by method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		OutboxPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "identity_outbox_published_total",
			Help: "Outbox messages delivered to the broker.",
		}),
		OutboxFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "identity_outbox_failed_total",
			Help: "Outbox messages that failed to publish and were unlocked for retry.",
		}),
	}

	m.registry.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.OutboxPublished,
		m.OutboxFailed,
	)

	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
