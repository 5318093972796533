// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import "net/http"

// DebugPerformance handles GET /debug/performance: a snapshot of
// per-endpoint latency percentiles collected by the performance-monitor
// middleware, for an operator diagnosing a slow deploy without standing
// up a full tracing pipeline.
func (h *Handler) DebugPerformance(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.performance.GetStats())
}
