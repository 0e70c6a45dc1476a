// Package metrics registers the Prometheus collectors for the service.
// Exposed on /metrics via promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts served requests by route and status class.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mashup_http_requests_total",
		Help: "HTTP requests served, by route and status code.",
	}, []string{"route", "status"})

	// UpstreamRequestsTotal counts outbound fetches by source and outcome.
	// Outcome is "ok" or the source error kind (unauthorized, not_found,
	// upstream_error, network_failure, malformed_response).
	UpstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mashup_upstream_requests_total",
		Help: "Outbound upstream requests, by source and outcome.",
	}, []string{"source", "outcome"})

	// UpstreamDuration tracks upstream latency per source.
	UpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mashup_upstream_duration_seconds",
		Help:    "Upstream request duration in seconds, by source.",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"source"})

	// CircuitBreakerState reports breaker state per upstream:
	// 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "mashup_circuit_breaker_state",
		Help: "Circuit breaker state (0=closed, 1=half-open, 2=open).",
	}, []string{"name"})
)
