// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package middleware

import (
	"net/http"
	"time"

	"github.com/harborglass/mediasearch/internal/cache"
)

// DuplicateWindow is how long an identical request from the same client is
// treated as a repeat rather than a fresh query. It covers the gap between
// a client's debounce timer firing twice for the same keystroke (a slow
// network retry racing the original) without suppressing a user's second,
// intentional search a few seconds later.
const DuplicateWindow = 2 * time.Second

// DuplicateSuppressor collapses rapid identical autocomplete/search requests
// from the same client before they reach the orchestrator, using the
// cache package's LRU key-seen-recently check.
type DuplicateSuppressor struct {
	seen *cache.LRUCache
}

// NewDuplicateSuppressor builds a suppressor tracking up to capacity
// distinct request keys at a time.
func NewDuplicateSuppressor(capacity int) *DuplicateSuppressor {
	return &DuplicateSuppressor{seen: cache.NewLRUCache(capacity, DuplicateWindow)}
}

// Middleware rejects a request with 429 if an identical one (same client IP,
// method, and URL) was seen within DuplicateWindow.
func (d *DuplicateSuppressor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.String() + " " + clientIP(r)
		if d.seen.IsDuplicate(key) {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "duplicate request", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	return r.RemoteAddr
}
