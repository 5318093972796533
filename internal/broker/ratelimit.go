package broker

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/harborglass/mediasearch/internal/models"
)

// RateLimited wraps an Adapter with a per-provider token bucket, since
// several brokered providers (news wires, video platforms) enforce strict
// per-minute request quotas that a circuit breaker alone won't respect.
type RateLimited struct {
	inner   Adapter
	limiter *rate.Limiter
}

// NewRateLimited builds a limiter allowing ratePerSecond steady-state
// requests with a burst of burst.
func NewRateLimited(inner Adapter, ratePerSecond float64, burst int) *RateLimited {
	return &RateLimited{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(ratePerSecond), burst),
	}
}

func (r *RateLimited) Source() models.Source { return r.inner.Source() }

// Search blocks until the token bucket admits the call or ctx is
// canceled/deadlined, then delegates to the wrapped adapter.
func (r *RateLimited) Search(ctx context.Context, text string, limit int) ([]interface{}, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return []interface{}{}, err
	}
	return r.inner.Search(ctx, text, limit)
}
