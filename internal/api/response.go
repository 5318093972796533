// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/harborglass/mediasearch/internal/logging"
)

// writeJSON marshals v with goccy/go-json, matching the teacher's
// drop-in-compatible-with-encoding/json choice for hot response paths.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Warn().Err(err).Msg("api: failed to encode response body")
	}
}

// apiError is the batch-endpoint error body for a parse/validation
// failure (spec.md §7 "Parse error -> 400").
type apiError struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, apiError{Error: message})
}
