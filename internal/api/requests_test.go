// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/harborglass/mediasearch/internal/models"
)

func TestDecodeRequestAppliesDefaults(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/autocomplete?q=batman", nil)

	req, err := decodeRequest(r, models.ModeAutocomplete, models.TransportBatch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Q != "batman" {
		t.Fatalf("expected q to roundtrip, got %q", req.Q)
	}
	if req.Limit != models.DefaultLimit {
		t.Fatalf("expected default limit %d, got %d", models.DefaultLimit, req.Limit)
	}
	if req.Mode != models.ModeAutocomplete || req.Transport != models.TransportBatch {
		t.Fatalf("expected mode/transport to be set from the caller, got %v/%v", req.Mode, req.Transport)
	}
}

func TestDecodeRequestParsesSourcesAndLimit(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/search?q=batman&sources=tv,movie&limit=5", nil)

	req, err := decodeRequest(r, models.ModeSearch, models.TransportBatch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(req.Sources) != 2 || req.Sources[0] != "tv" || req.Sources[1] != "movie" {
		t.Fatalf("unexpected sources: %v", req.Sources)
	}
	if req.Limit != 5 {
		t.Fatalf("expected limit 5, got %d", req.Limit)
	}
}

func TestDecodeRequestRejectsNonNumericLimit(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/search?q=batman&limit=abc", nil)

	if _, err := decodeRequest(r, models.ModeSearch, models.TransportBatch); err == nil {
		t.Fatal("expected an error for a non-numeric limit")
	}
}

func TestDecodeRequestRejectsOutOfRangeLimit(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/search?q=batman&limit=500", nil)

	if _, err := decodeRequest(r, models.ModeSearch, models.TransportBatch); err == nil {
		t.Fatal("expected the validator to reject a limit over 200")
	}
}

func TestDecodeRequestRejectsUnknownSourceTag(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/search?q=batman&sources=bogus", nil)

	if _, err := decodeRequest(r, models.ModeSearch, models.TransportBatch); err == nil {
		t.Fatal("expected the validator to reject an unrecognized source tag")
	}
}

func TestRequestedSourcesConvertsTags(t *testing.T) {
	req := models.Request{Sources: []string{"tv", "movie"}}
	sources := requestedSources(req)
	if len(sources) != 2 || sources[0] != models.SourceTV || sources[1] != models.SourceMovie {
		t.Fatalf("unexpected sources: %v", sources)
	}
}
