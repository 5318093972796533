// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package debounce

import (
	"sync"

	"github.com/harborglass/mediasearch/internal/models"
)

// Accumulator merges tier-1 and tier-2 results into one response envelope,
// per spec.md §4.12: "Results from tier-1 and tier-2 merge into the same
// accumulator; tier-2 results overwrite tier-1 for every key they touch. A
// stale response (whose query no longer matches the current query) MUST be
// discarded." It is the other half of the debounce contract Debouncer's
// timers drive: Debouncer decides *when* a tier fires, Accumulator decides
// what a fire's result does once it lands.
type Accumulator struct {
	mu    sync.Mutex
	query string
	resp  *models.Response
}

// NewAccumulator returns an Accumulator with no current query; any Merge
// before the first Reset is discarded as stale.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Reset starts a fresh envelope for query, discarding whatever the
// previous query had accumulated. Debouncer calls this once per keystroke
// change, at the same moment it restarts the tier-1/tier-2 timers.
func (a *Accumulator) Reset(query string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.query = query
	a.resp = models.NewResponse()
}

// Merge writes items into the slot for source, provided query still
// matches the accumulator's current query. A tier-2 merge simply replaces
// whatever a prior tier-1 merge left in that slot, since both tiers query
// the same text and tier-2 is always the more complete answer. Reports
// false, without writing anything, when query is stale.
func (a *Accumulator) Merge(query string, source models.Source, items []interface{}) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if query != a.query || a.resp == nil {
		return false
	}
	slot := a.resp.SlotFor(source)
	if slot == nil {
		return false
	}
	*slot = items
	return true
}

// MergeExactMatch records an exact-match candidate for query, subject to
// the same staleness check as Merge.
func (a *Accumulator) MergeExactMatch(query string, exactMatch interface{}) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if query != a.query || a.resp == nil {
		return false
	}
	a.resp.ExactMatch = exactMatch
	return true
}

// Snapshot returns a copy of the accumulated response as it stands right
// now. Safe to call concurrently with Merge; callers get a consistent view
// without blocking the next merge.
func (a *Accumulator) Snapshot() models.Response {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.resp == nil {
		return *models.NewResponse()
	}
	return *a.resp
}
