// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Package main is the entry point for the unified media search and
// autocomplete service.
//
// Startup order:
//
//  1. Configuration: layered defaults -> config file -> environment (Koanf v2).
//  2. Logging: zerolog initialized from the resolved log config.
//  3. Index: pooled RediSearch client (C17) and search executor (C4).
//  4. Registry: Badger-backed cache-version snapshot (C18), or an empty
//     one when no path is configured.
//  5. Query: tag normalizer (C2) and parser (C1).
//  6. Brokers: one HTTP adapter per enabled brokered provider (C6), each
//     wrapped rate limit -> circuit breaker (C19) -> response cache, the
//     cache keyed with the registry's version for that source.
//  7. Orchestrator: fan-out across indexed and brokered sources (C7).
//  8. HTTP server: chi router (C13) with graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/harborglass/mediasearch/internal/api"
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

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	logging.Info().Msg("starting media search service")

	indexClient := index.NewClient(index.ClientConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	defer func() {
		if err := indexClient.Close(); err != nil {
			logging.Warn().Err(err).Msg("error closing index client")
		}
	}()

	reg := loadRegistry(cfg.Registry.BadgerPath)

	normalizer := query.NewNormalizer()
	parser := query.NewParser(normalizer)
	executor := index.NewExecutor(indexClient)

	brokers := buildBrokers(cfg, reg)
	pop := popularity.New(nil)
	orch := orchestrator.New(executor, brokers, pop)

	pm := middleware.NewPerformanceMonitor(performanceMonitorWindow)
	handler := api.NewHandler(parser, orch, indexClient, reg, pm, cfg)
	router := api.NewRouter(handler, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logging.Info().Str("addr", addr).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("http server failed")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logging.Info().Str("signal", sig.String()).Msg("shutdown signal received")

	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("error during graceful shutdown")
	}
	logging.Info().Msg("service stopped")
}

// loadRegistry opens the persisted cache-version registry, falling back
// to an empty one (every prefix reports DefaultVersion) when no Badger
// path is configured or the store can't be opened.
func loadRegistry(path string) *registry.Registry {
	if path == "" {
		return registry.Empty()
	}
	reg, err := registry.Load(path)
	if err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("failed to load cache-version registry, using defaults")
		return registry.Empty()
	}
	return reg
}

// buildBrokers constructs one decorated Adapter per enabled brokered
// source. Ordering matches spec.md §4.6: the response cache sits
// outermost so a cache hit never consumes a rate-limit token or counts
// against the breaker; the breaker wraps the rate limiter, which wraps
// the raw HTTP adapter innermost. Each
// cache is keyed with the source's registry version (spec.md §6), so an
// operator can bust a provider's cached responses by bumping its
// cache_version:<source> key and restarting.
func buildBrokers(cfg *config.Config, reg *registry.Registry) map[models.Source]broker.Adapter {
	brokers := make(map[models.Source]broker.Adapter)

	addBroker := func(source models.Source, providerCfg config.ProviderConfig, build func(config.ProviderConfig) broker.Adapter) {
		if !providerCfg.Enabled {
			return
		}
		adapter := build(providerCfg)
		limited := broker.NewRateLimited(adapter, rateOrDefault(providerCfg.RatePerSec), burstOrDefault(providerCfg.Burst))
		breaker := broker.NewCircuitBreaker(limited)
		brokers[source] = broker.NewCachedAdapter(breaker, reg.VersionFor(string(source)))
	}

	addBroker(models.SourceNews, cfg.Providers.News, func(p config.ProviderConfig) broker.Adapter {
		return broker.NewNewsAdapter(broker.NewsConfig{BaseURL: p.BaseURL, Token: resolveToken(p), Timeout: p.Timeout})
	})
	addBroker(models.SourceVideo, cfg.Providers.Video, func(p config.ProviderConfig) broker.Adapter {
		return broker.NewVideoAdapter(broker.VideoConfig{BaseURL: p.BaseURL, Token: resolveToken(p), Timeout: p.Timeout})
	})
	addBroker(models.SourceRatings, cfg.Providers.Ratings, func(p config.ProviderConfig) broker.Adapter {
		return broker.NewRatingsAdapter(broker.RatingsConfig{BaseURL: p.BaseURL, Token: resolveToken(p), Timeout: p.Timeout})
	})
	addBroker(models.SourceArtist, cfg.Providers.Artist, func(p config.ProviderConfig) broker.Adapter {
		return broker.NewArtistAdapter(broker.ArtistConfig{BaseURL: p.BaseURL, Token: resolveToken(p), Timeout: p.Timeout})
	})
	addBroker(models.SourceAlbum, cfg.Providers.Album, func(p config.ProviderConfig) broker.Adapter {
		return broker.NewAlbumAdapter(broker.AlbumConfig{BaseURL: p.BaseURL, Token: resolveToken(p), Timeout: p.Timeout})
	})

	return brokers
}

func resolveToken(cfg config.ProviderConfig) string {
	if cfg.TokenEnvVar == "" {
		return ""
	}
	return os.Getenv(cfg.TokenEnvVar)
}

const (
	defaultRatePerSecond = 5.0
	defaultBurst         = 10

	// performanceMonitorWindow bounds the sliding window /debug/performance
	// reports percentiles over.
	performanceMonitorWindow = 5000
)

func rateOrDefault(rate float64) float64 {
	if rate > 0 {
		return rate
	}
	return defaultRatePerSecond
}

func burstOrDefault(burst int) int {
	if burst > 0 {
		return burst
	}
	return defaultBurst
}
