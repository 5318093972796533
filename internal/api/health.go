// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import "net/http"

// healthzBody and readyzBody keep the liveness/readiness payloads
// intentionally tiny; operators poll these far more often than any other
// route, and the teacher's own /api/v1/health/live endpoint follows the
// same one-field convention.
type healthzBody struct {
	Status string `json:"status"`
}

// Healthz handles GET /api/healthz: the process is running and serving
// requests. It never checks dependencies, so a degraded Redis never
// flaps the liveness probe and triggers an unnecessary restart.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthzBody{Status: "ok"})
}

// Readyz handles GET /api/readyz: the index connection is reachable, so
// the service can actually serve a search. A broker provider being down
// does not affect readiness; brokered results are optional by design.
func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	if err := h.pingIndex(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, healthzBody{Status: "index unreachable"})
		return
	}
	writeJSON(w, http.StatusOK, healthzBody{Status: "ok"})
}
