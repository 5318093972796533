package broker

import (
	"context"
	"fmt"
	"time"

	"github.com/harborglass/mediasearch/internal/cache"
	"github.com/harborglass/mediasearch/internal/models"
)

// cachedResultTTL and cachedResultCapacity size the per-adapter response
// cache. Autocomplete traffic is heavily skewed toward short, common
// prefixes ("a", "the", "star"), so an LFU eviction policy keeps those hot
// entries resident far longer than their recency alone would justify,
// trading a little staleness for materially fewer calls against a
// rate-limited upstream.
const (
	cachedResultTTL      = 60 * time.Second
	cachedResultCapacity = 2000
)

// CachedAdapter wraps an Adapter with a frequency-aware response cache
// (spec.md §4.6 "brokered provider calls should be cached to respect
// upstream rate limits"). It sits outside the circuit breaker and rate
// limiter: a cache hit never counts against either.
type CachedAdapter struct {
	inner   Adapter
	cache   cache.Cacher
	version int
}

// NewCachedAdapter wraps inner with a fresh LFU cache. version folds the
// persisted registry's cache_version:<source> value (spec.md §6) into
// every cache key, so bumping that key in the store busts every entry for
// this source on the next restart without waiting out the TTL.
func NewCachedAdapter(inner Adapter, version int) *CachedAdapter {
	return &CachedAdapter{
		inner:   inner,
		cache:   cache.NewLFU(cachedResultCapacity, cachedResultTTL),
		version: version,
	}
}

// Source delegates to the wrapped adapter.
func (c *CachedAdapter) Source() models.Source { return c.inner.Source() }

// Search returns a cached result for (text, limit) if present, otherwise
// calls through to the wrapped adapter and caches a successful response.
// Errors are never cached so a transient provider failure does not pin a
// gap in results for the cache's full TTL.
func (c *CachedAdapter) Search(ctx context.Context, text string, limit int) ([]interface{}, error) {
	key := cacheKey(c.inner.Source(), c.version, text, limit)
	if v, ok := c.cache.Get(key); ok {
		if items, ok := v.([]interface{}); ok {
			return items, nil
		}
	}
	items, err := c.inner.Search(ctx, text, limit)
	if err != nil {
		return items, err
	}
	c.cache.Set(key, items)
	return items, nil
}

func cacheKey(source models.Source, version int, text string, limit int) string {
	return fmt.Sprintf("%s:v%d:%s:%d", source, version, text, limit)
}
