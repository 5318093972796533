// Package broker implements the brokered-provider adapters (C6) and the
// circuit breaker and rate limiter that guard each one (C19).
package broker

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/harborglass/mediasearch/internal/logging"
	"github.com/harborglass/mediasearch/internal/metrics"
	"github.com/harborglass/mediasearch/internal/models"
)

// maxErrorBodySize bounds how much of a failed provider response is read
// for error reporting.
const maxErrorBodySize = 64 * 1024

// Adapter is the contract every brokered source (news, video, ratings,
// artist, album) implements (spec.md §4.6).
type Adapter interface {
	Source() models.Source
	Search(ctx context.Context, text string, limit int) ([]interface{}, error)
}

// breakerOpenFailures and breakerOpenTimeout match the teacher's circuit
// breaker sizing for a single upstream dependency, scaled down from its
// 10-request statistical window: a brokered provider call either succeeds
// or fails outright, so five consecutive failures is a sufficient signal.
const (
	breakerOpenFailures = 5
	breakerOpenTimeout  = 30 * time.Second
)

// CircuitBreaker wraps an Adapter with a gobreaker circuit breaker keyed
// by source tag (spec.md §4.6 "per-provider circuit breaker").
type CircuitBreaker struct {
	inner Adapter
	cb    *gobreaker.CircuitBreaker[[]interface{}]
}

// NewCircuitBreaker wraps inner with a breaker that opens after
// breakerOpenFailures consecutive failures and stays open for
// breakerOpenTimeout before probing again.
func NewCircuitBreaker(inner Adapter) *CircuitBreaker {
	name := string(inner.Source())
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerOpenFailures
		},
		OnStateChange: func(breakerName string, from, to gobreaker.State) {
			logging.Warn().
				Str("source", breakerName).
				Str("from", stateString(from)).
				Str("to", stateString(to)).
				Msg("broker circuit breaker state change")
			metrics.RecordCircuitBreakerTransition(breakerName, stateString(from), stateString(to))
			metrics.SetCircuitBreakerState(breakerName, stateFloat(to))
		},
	}
	return &CircuitBreaker{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker[[]interface{}](settings),
	}
}

// Source delegates to the wrapped adapter.
func (c *CircuitBreaker) Source() models.Source { return c.inner.Source() }

// Search executes the wrapped adapter's call through the breaker. A
// rejected call (breaker open) and an upstream failure are both reported
// as plain errors; the orchestrator (C7) treats this source as failed for
// the request but does not propagate the error to the client envelope.
func (c *CircuitBreaker) Search(ctx context.Context, text string, limit int) ([]interface{}, error) {
	items, err := c.cb.Execute(func() ([]interface{}, error) {
		return c.inner.Search(ctx, text, limit)
	})
	if err != nil {
		logging.Debug().
			Str("source", string(c.inner.Source())).
			Err(err).
			Str("breaker_state", stateString(c.cb.State())).
			Msg("broker adapter call failed")
		return []interface{}{}, err
	}
	return items, nil
}

// State exposes the breaker's current state for /metrics (C19).
func (c *CircuitBreaker) State() gobreaker.State { return c.cb.State() }

func stateString(s gobreaker.State) string {
	switch s {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half_open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// stateFloat mirrors a breaker state into the gauge values CircuitBreakerState
// documents: 0=closed, 1=half_open, 2=open.
func stateFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// httpAdapter is the shared HTTP plumbing every concrete brokered adapter
// (news.go, video.go, ratings.go, artist.go, album.go) builds on: a
// timeout-bound client and a JSON-decode-with-bounded-error-body pattern.
type httpAdapter struct {
	client  *http.Client
	baseURL string
	token   string
}

func newHTTPAdapter(baseURL, token string, timeout time.Duration) httpAdapter {
	return httpAdapter{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		token:   token,
	}
}

// do issues req and returns a decode-ready body reader, or an error
// carrying up to maxErrorBodySize bytes of the provider's response for
// diagnostics if the status code is not 2xx.
func (h httpAdapter) do(req *http.Request) (io.ReadCloser, error) {
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("broker: request failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		body := readBodyForError(resp.Body)
		return nil, fmt.Errorf("broker: provider returned %d: %s", resp.StatusCode, body)
	}
	return resp.Body, nil
}

func readBodyForError(r io.Reader) []byte {
	limited := io.LimitReader(r, maxErrorBodySize)
	body, err := io.ReadAll(limited)
	if err != nil {
		return []byte("(failed to read response body)")
	}
	return body
}
