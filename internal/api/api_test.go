// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"io"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/harborglass/mediasearch/internal/broker"
	"github.com/harborglass/mediasearch/internal/config"
	"github.com/harborglass/mediasearch/internal/index"
	"github.com/harborglass/mediasearch/internal/logging"
	"github.com/harborglass/mediasearch/internal/middleware"
	"github.com/harborglass/mediasearch/internal/models"
	"github.com/harborglass/mediasearch/internal/orchestrator"
	"github.com/harborglass/mediasearch/internal/popularity"
	"github.com/harborglass/mediasearch/internal/query"
	"github.com/harborglass/mediasearch/internal/registry"
)

//nolint:gochecknoinits // matches the teacher's discard-logging test init
func init() {
	logging.Init(logging.Config{Level: "error", Format: "console", Output: io.Discard})
}

// newTestHandler builds a Handler against a miniredis-backed index client
// and no enabled brokered providers, enough to exercise every route that
// doesn't need a real search result.
func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	h, _ := newTestHandlerWithRedis(t)
	return h
}

// newTestHandlerWithRedis also returns the backing miniredis server, for
// tests that need to seed a document directly (e.g. the details lookup).
func newTestHandlerWithRedis(t *testing.T) (*Handler, *miniredis.Miniredis) {
	t.Helper()
	srv, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(srv.Close)

	indexClient := index.NewClientFromRedis(redis.NewClient(&redis.Options{Addr: srv.Addr()}))
	parser := query.NewParser(query.NewNormalizer())
	executor := index.NewExecutor(indexClient)
	orch := orchestrator.New(executor, map[models.Source]broker.Adapter{}, popularity.New(nil))
	reg := registry.Empty()
	pm := middleware.NewPerformanceMonitor(100)

	return NewHandler(parser, orch, indexClient, reg, pm, &config.Config{}), srv
}
