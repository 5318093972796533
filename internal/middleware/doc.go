// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package middleware provides the HTTP middleware internal/api.NewRouter
wraps every request in: request-ID propagation, Prometheus
instrumentation, gzip compression, latency tracking, and duplicate-request
suppression.

Stack order, outside-in, as NewRouter assembles it:

	chimiddleware.RealIP
	chimiddleware.Recoverer
	cors.Handler(...)
	middleware.RequestID
	middleware.PrometheusMetrics
	handler.performance.Middleware   // *PerformanceMonitor
	httprate.LimitByIP(...)          // per-route group
	middleware.NewDuplicateSuppressor(...).Middleware
	middleware.Compression           // batch endpoints only, see below

Compression wraps only /api/autocomplete, /api/search, and /api/details -
never the /stream variants. gzipResponseWriter doesn't implement
http.Flusher, and handlers_stream.go requires one to push each SSE event
as it's written; wrapping a stream route would make it fail the Flusher
type assertion and return 500.

RequestID generates (or forwards, via X-Request-ID) a UUID per request,
stores it in context for GetRequestID to retrieve, and also seeds
internal/logging's request-ID/correlation-ID context so every log line
the request touches carries it.

PerformanceMonitor keeps a bounded in-memory window of per-endpoint
latency samples and serves percentile stats off
GET /debug/performance; it's independent of internal/metrics'
Prometheus histograms, which back /metrics instead.
*/
package middleware
