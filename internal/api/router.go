// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/harborglass/mediasearch/internal/config"
	"github.com/harborglass/mediasearch/internal/middleware"
)

// chiMiddleware adapts the repo's func(http.HandlerFunc) http.HandlerFunc
// middleware shape to chi's func(http.Handler) http.Handler, letting the
// request-ID and Prometheus middleware compose with chi's r.Use() the
// same way they compose with a plain mux.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// NewRouter assembles the full HTTP surface (C13): CORS, per-client rate
// limiting, request-ID propagation, Prometheus instrumentation, the
// autocomplete/search/details endpoints, and the observability routes.
func NewRouter(handler *Handler, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Security.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(handler.performance.Middleware)

	dedupe := middleware.NewDuplicateSuppressor(dedupeCapacity)

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(httprate.LimitByIP(requestsPerMinute(cfg), ratePeriod))
			r.Use(dedupe.Middleware)

			// Compression wraps only the batch (non-SSE) endpoints: its
			// gzipResponseWriter doesn't implement http.Flusher, and the
			// stream handlers require one to push each SSE event as it's
			// written rather than buffering.
			r.Group(func(r chi.Router) {
				r.Use(chiMiddleware(middleware.Compression))
				r.Get("/autocomplete", handler.Autocomplete)
				r.Get("/search", handler.Search)
				r.Post("/details", handler.Details)
			})

			r.Get("/autocomplete/stream", handler.AutocompleteStream)
			r.Get("/search/stream", handler.SearchStream)
		})

		r.Get("/healthz", handler.Healthz)
		r.Get("/readyz", handler.Readyz)
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/debug/performance", handler.DebugPerformance)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}

// defaultRequestsPerMinute guards the public search surface when the
// operator leaves ratelimit.requests_per_minute unset (SPEC_FULL.md §9
// "go-chi/httprate guards /api/autocomplete* and /api/search* per-client-IP").
const defaultRequestsPerMinute = 120

// dedupeCapacity sizes the duplicate-request suppressor's LRU, generous
// enough that a burst of distinct clients never evicts an in-window entry
// early and lets a genuine duplicate slip through.
const dedupeCapacity = 10000

// ratePeriod is httprate's sliding window for the per-client-IP limit.
const ratePeriod = time.Minute

func requestsPerMinute(cfg *config.Config) int {
	if cfg.RateLimit.RequestsPerMinute > 0 {
		return cfg.RateLimit.RequestsPerMinute
	}
	return defaultRequestsPerMinute
}
