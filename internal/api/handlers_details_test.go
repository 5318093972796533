// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/harborglass/mediasearch/internal/models"
)

func TestDetailsReturnsNormalizedDocument(t *testing.T) {
	h, srv := newTestHandlerWithRedis(t)
	seed := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	defer seed.Close()

	ctx := context.Background()
	if err := seed.HSet(ctx, "doc:movie:42", map[string]string{
		"source_id":    "42",
		"search_title": "Dune",
		"popularity":   "88.5",
		"year":         "2021",
	}).Err(); err != nil {
		t.Fatalf("failed to seed document: %v", err)
	}

	body := `{"mc_id":"movie_42"}`
	req := httptest.NewRequest(http.MethodPost, "/api/details", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Details(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp models.MediaDetailResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Media.SearchTitle != "Dune" || resp.Media.Year != 2021 {
		t.Fatalf("unexpected media in response: %+v", resp.Media)
	}
}

func TestDetailsNotFoundForUnknownMcID(t *testing.T) {
	h := newTestHandler(t)

	body := `{"mc_id":"movie_missing"}`
	req := httptest.NewRequest(http.MethodPost, "/api/details", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Details(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an unknown mc_id, got %d", w.Code)
	}
}

func TestDetailsRejectsMalformedBody(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/details", strings.NewReader("not json"))
	w := httptest.NewRecorder()
	h.Details(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a malformed body, got %d", w.Code)
	}
}

func TestSplitMcIDRejectsBrokeredSource(t *testing.T) {
	if _, _, ok := splitMcID("news_123"); ok {
		t.Fatal("expected a brokered source prefix to be rejected, details only resolves indexed sources")
	}
}

func TestSplitMcIDParsesIndexedSource(t *testing.T) {
	source, sourceID, ok := splitMcID("movie_42")
	if !ok || source != models.SourceMovie || sourceID != "42" {
		t.Fatalf("unexpected parse: source=%v sourceID=%v ok=%v", source, sourceID, ok)
	}
}
