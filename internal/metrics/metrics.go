package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookagent_http_requests_total",
		Help: "Total number of inbound HTTP requests",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bookagent_http_request_duration_seconds",
		Help:    "Duration of inbound HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	// UpstreamRequestsTotal counts Open Library calls; outcome is the status code
	// or "error" when no response was received.
	UpstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookagent_upstream_requests_total",
		Help: "Total number of requests sent to Open Library",
	}, []string{"endpoint", "outcome"})

	UpstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bookagent_upstream_request_duration_seconds",
		Help:    "Duration of Open Library requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	DegradedStepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookagent_degraded_steps_total",
		Help: "Optional detail steps that failed and were skipped",
	}, []string{"step"})
)

func Handler() http.Handler { return promhttp.Handler() }
