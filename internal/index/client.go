// Package index implements the inverted-index client (C17), document
// normalizer (C5), and search executor (C4) against a Redis deployment
// running the RediSearch module.
package index

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/harborglass/mediasearch/internal/logging"
)

// ClientConfig configures the pooled Redis connection (C17).
type ClientConfig struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
}

// DefaultPoolSize mirrors the teacher's pooled-client defaults: enough
// connections to keep fan-out queries from queuing behind each other
// without exhausting the server's maxclients under normal load.
const DefaultPoolSize = 10

// Client wraps a pooled *redis.Client and exposes the raw FT.SEARCH escape
// hatch the go-redis driver doesn't model natively.
type Client struct {
	rdb *redis.Client
}

// NewClient dials a Redis connection pool. It does not verify
// reachability; callers should call Ping during startup health checks.
func NewClient(cfg ClientConfig) *Client {
	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = DefaultPoolSize
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: poolSize,
	})
	return &Client{rdb: rdb}
}

// NewClientFromRedis wraps an already-constructed *redis.Client, letting
// tests point the index package at a miniredis instance.
func NewClientFromRedis(rdb *redis.Client) *Client {
	return &Client{rdb: rdb}
}

// Ping verifies connectivity for readiness checks (C13's /api/readyz).
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close releases pooled connections.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// FTSearch issues a raw FT.SEARCH command. go-redis/v9 has no native
// RediSearch binding, so arguments are sent through Do the same way the
// teacher's sync clients issue vendor-specific REST calls it has no typed
// wrapper for.
func (c *Client) FTSearch(ctx context.Context, args ...interface{}) ([]interface{}, error) {
	cmdArgs := append([]interface{}{"FT.SEARCH"}, args...)
	reply, err := c.rdb.Do(ctx, cmdArgs...).Result()
	if err != nil {
		logging.Debug().Err(err).Str("component", "index_client").Msg("FT.SEARCH failed")
		return nil, fmt.Errorf("index: FT.SEARCH: %w", err)
	}
	rows, ok := reply.([]interface{})
	if !ok {
		return nil, fmt.Errorf("index: FT.SEARCH: unexpected reply type %T", reply)
	}
	return rows, nil
}

// GetDoc fetches a single document's hash fields by its full Redis key
// (KeyPrefix(source) + source_id), used by the details lookup (C10's
// POST /api/details) which needs one document, not a search result page.
func (c *Client) GetDoc(ctx context.Context, key string) (map[string]string, error) {
	fields, err := c.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("index: HGETALL %s: %w", key, err)
	}
	return fields, nil
}

// HealthCheckTimeout bounds the readiness probe's Ping call.
const HealthCheckTimeout = 2 * time.Second
