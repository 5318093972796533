// Package metrics exposes the Prometheus instrumentation for the search
// and autocomplete API: request-level counters/histograms (C16), per-
// source task outcomes (C7), and per-provider circuit breaker state (C19).
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APIRequestsTotal counts every completed HTTP request by endpoint
	// (the URL path) and status code.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_requests_total",
			Help: "Total number of search/autocomplete API requests",
		},
		[]string{"endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "query_request_duration_seconds",
			Help:    "Duration of search/autocomplete API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "query_active_requests",
			Help: "Number of in-flight search/autocomplete API requests",
		},
	)

	// SourceTaskDuration times each source task the orchestrator (C7)
	// launches, labeled by outcome so slow-but-successful and
	// failed/timed-out tasks are distinguishable in a histogram.
	SourceTaskDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "source_task_duration_seconds",
			Help:    "Duration of individual source tasks",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 1.5, 2.5, 5},
		},
		[]string{"source", "outcome"},
	)

	SourceTaskOutcomeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_task_outcome_total",
			Help: "Total number of source task terminal outcomes",
		},
		[]string{"source", "outcome"},
	)

	// CircuitBreakerState tracks each brokered provider's breaker state:
	// 0 = closed, 1 = half-open, 2 = open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state per brokered source (0=closed, 1=half_open, 2=open)",
		},
		[]string{"source"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"source", "from", "to"},
	)

	// IndexQueryDuration times raw FT.SEARCH calls (C4), separate from
	// SourceTaskDuration which also covers brokered network calls.
	IndexQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "index_query_duration_seconds",
			Help:    "Duration of RediSearch FT.SEARCH calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)
)

// RecordAPIRequest records one completed HTTP request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordSourceTask records one source task's terminal outcome and
// duration (spec.md §7's per-source-task log event, mirrored as metrics).
func RecordSourceTask(source, outcome string, duration time.Duration) {
	SourceTaskDuration.WithLabelValues(source, outcome).Observe(duration.Seconds())
	SourceTaskOutcomeTotal.WithLabelValues(source, outcome).Inc()
}

// RecordIndexQuery records one FT.SEARCH call's duration.
func RecordIndexQuery(source string, duration time.Duration) {
	IndexQueryDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// SetCircuitBreakerState mirrors a breaker's current state into the gauge.
func SetCircuitBreakerState(source string, state float64) {
	CircuitBreakerState.WithLabelValues(source).Set(state)
}

// RecordCircuitBreakerTransition records a breaker state change.
func RecordCircuitBreakerTransition(source, from, to string) {
	CircuitBreakerTransitions.WithLabelValues(source, from, to).Inc()
}
