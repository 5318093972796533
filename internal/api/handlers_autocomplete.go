// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"net/http"
	"strconv"

	"github.com/harborglass/mediasearch/internal/middleware"
	"github.com/harborglass/mediasearch/internal/models"
)

// Autocomplete handles GET /api/autocomplete (spec.md §6). Brokered
// sources never participate in autocomplete mode; activeSources enforces
// that exclusion inside the orchestrator, so every brokered array in the
// response is always [].
func (h *Handler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, models.ModeAutocomplete, models.TransportBatch)
}

// AutocompleteStream handles GET /api/autocomplete/stream.
func (h *Handler) AutocompleteStream(w http.ResponseWriter, r *http.Request) {
	h.stream(w, r, models.ModeAutocomplete)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request, mode models.Mode, transport models.Transport) {
	req, err := decodeRequest(r, mode, transport)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	requestID := middleware.GetRequestID(r.Context())
	parsed := h.parser.Parse(req.Q, req.Filters, req.Raw)
	resp := h.orchestrator.Execute(r.Context(), parsed, requestedSources(req), mode, req.Limit, requestID)

	// Lets a client detect a server-side cache bust (spec.md §6 "Persisted
	// state") without re-requesting; an unset registry always reports
	// registry.DefaultVersion for any mode.
	w.Header().Set("X-Cache-Version", strconv.Itoa(h.registry.VersionFor(string(mode))))
	writeJSON(w, http.StatusOK, resp)
}
