// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"net/http"

	"github.com/harborglass/mediasearch/internal/models"
)

// Search handles GET /api/search (spec.md §6).
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, models.ModeSearch, models.TransportBatch)
}

// SearchStream handles GET /api/search/stream.
func (h *Handler) SearchStream(w http.ResponseWriter, r *http.Request) {
	h.stream(w, r, models.ModeSearch)
}
