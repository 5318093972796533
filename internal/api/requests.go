// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/harborglass/mediasearch/internal/models"
)

// decodeRequest builds a models.Request from query parameters and runs it
// through the validator (C20) before C1's parser ever sees it, so a
// malformed mode/transport/limit never reaches the orchestrator.
func decodeRequest(r *http.Request, mode models.Mode, transport models.Transport) (models.Request, error) {
	q := r.URL.Query()

	req := models.Request{
		Q:         q.Get("q"),
		Filters:   q.Get("filters"),
		Raw:       q.Get("raw") == "true",
		Mode:      mode,
		Transport: transport,
		Limit:     models.DefaultLimit,
	}

	if sources := q.Get("sources"); sources != "" {
		for _, s := range strings.Split(sources, ",") {
			if s = strings.TrimSpace(s); s != "" {
				req.Sources = append(req.Sources, s)
			}
		}
	}

	if limitStr := q.Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil {
			return req, &validationError{field: "limit", reason: "must be an integer"}
		}
		req.Limit = n
	}

	if err := validate.Struct(req); err != nil {
		return req, err
	}
	return req, nil
}

// validationError reports a single bad request field without pulling in
// the full go-playground/validator error-translation machinery for the
// one case the struct tags can't express (a non-numeric limit).
type validationError struct {
	field  string
	reason string
}

func (e *validationError) Error() string {
	return e.field + ": " + e.reason
}

// requestedSources converts the request's raw sources tags into
// models.Source values, dropping any tag the validator didn't already
// catch (defensive only; validate:"dive,oneof=..." makes this unreachable
// for a request that passed decodeRequest).
func requestedSources(req models.Request) []models.Source {
	sources := make([]models.Source, 0, len(req.Sources))
	for _, tag := range req.Sources {
		sources = append(sources, models.Source(tag))
	}
	return sources
}
