// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// GenerationDuration tracks generative-text provider call duration.
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_generation_duration_seconds",
			Help:    "Generative-text provider call duration",
			Buckets: []float64{.5, 1, 2, 5, 10, 20, 30, 45, 60},
		},
		[]string{"provider", "kind", "status"},
	)

	// MessagesTotal tracks total chat messages persisted.
	MessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_messages_total",
			Help: "Total chat messages persisted",
		},
		[]string{"role"},
	)

	// ActivitiesTotal tracks activity log entries appended.
	ActivitiesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activities_total",
			Help: "Total activity log entries appended",
		},
		[]string{"type"},
	)

	// InsightFallbacksTotal counts daily-insight generations that fell back
	// to the fixed list.
	InsightFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "insight_fallbacks_total",
			Help: "Daily insight generations served from the fixed fallback",
		},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordGeneration records metrics for a provider generation call.
func RecordGeneration(provider, kind, status string, duration float64) {
	GenerationDuration.WithLabelValues(provider, kind, status).Observe(duration)
}
