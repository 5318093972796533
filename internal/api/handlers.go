// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Package api implements the public HTTP surface (C10, C11, C13, C20):
// the batch and SSE-stream autocomplete/search endpoints, the details
// lookup, and the health/readiness/metrics/swagger observability routes.
package api

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/harborglass/mediasearch/internal/config"
	"github.com/harborglass/mediasearch/internal/index"
	"github.com/harborglass/mediasearch/internal/middleware"
	"github.com/harborglass/mediasearch/internal/orchestrator"
	"github.com/harborglass/mediasearch/internal/query"
	"github.com/harborglass/mediasearch/internal/registry"
)

// validate is a package-wide validator instance, safe for concurrent use;
// go-playground/validator caches struct reflection internally, so a single
// shared instance is the idiomatic pattern rather than one per request.
var validate = validator.New()

// Handler wires every dependency the HTTP layer needs to serve a request
// without reaching back into package globals.
type Handler struct {
	parser       *query.Parser
	orchestrator *orchestrator.Orchestrator
	indexClient  *index.Client
	registry     *registry.Registry
	performance  *middleware.PerformanceMonitor
	cfg          *config.Config
}

// NewHandler builds a Handler over the service's fully-constructed
// dependency graph.
func NewHandler(parser *query.Parser, orch *orchestrator.Orchestrator, indexClient *index.Client, reg *registry.Registry, pm *middleware.PerformanceMonitor, cfg *config.Config) *Handler {
	return &Handler{parser: parser, orchestrator: orch, indexClient: indexClient, registry: reg, performance: pm, cfg: cfg}
}

// readyzTimeout bounds how long /api/readyz waits on the index ping
// before declaring the service not ready.
const readyzTimeout = index.HealthCheckTimeout

// pingIndex is a thin indirection so readyz's test can stub index health
// without dialing a real Redis.
func (h *Handler) pingIndex(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, readyzTimeout)
	defer cancel()
	return h.indexClient.Ping(ctx)
}
