// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/harborglass/mediasearch/internal/feed"
	"github.com/harborglass/mediasearch/internal/index"
	"github.com/harborglass/mediasearch/internal/logging"
	"github.com/harborglass/mediasearch/internal/models"
)

// Details handles POST /api/details (spec.md §6): a single-document
// lookup keyed by mc_id, dispatched to the detail response shape for
// whatever mc_type the stored document actually carries.
func (h *Handler) Details(w http.ResponseWriter, r *http.Request) {
	var req models.DetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	source, sourceID, ok := splitMcID(req.McID)
	if !ok {
		writeJSON(w, http.StatusNotFound, models.DetailsErrorResponse{Error: "unknown mc_id", McID: req.McID})
		return
	}

	key := index.KeyPrefix(source) + sourceID
	fields, err := h.indexClient.GetDoc(r.Context(), key)
	if err != nil || len(fields) == 0 {
		writeJSON(w, http.StatusNotFound, models.DetailsErrorResponse{Error: "unknown mc_id", McID: req.McID})
		return
	}

	item := index.Normalize(source, fields)
	resp, ok := detailResponse(item)
	if !ok {
		writeJSON(w, http.StatusNotFound, models.DetailsErrorResponse{Error: "unknown mc_id", McID: req.McID})
		return
	}

	if podcastResp, ok := resp.(models.PodcastDetailResponse); ok && req.RSSDetails && podcastResp.Podcast.URL != "" {
		details, err := feed.FetchLatest(r.Context(), podcastResp.Podcast.URL)
		if err != nil {
			logging.Warn().Err(err).Str("mc_id", req.McID).Msg("details: rss fetch failed")
		} else {
			podcastResp.RSSDetails = details
			resp = podcastResp
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// splitMcID parses the "source_source_id" convention index.Normalize's
// mcID helper produces, recognizing only the indexed sources a details
// lookup can actually resolve (brokered items are never persisted).
func splitMcID(mcID string) (models.Source, string, bool) {
	prefix, rest, found := strings.Cut(mcID, "_")
	if !found || rest == "" {
		return "", "", false
	}
	source := models.Source(prefix)
	for _, s := range models.IndexedSources {
		if s == source {
			return source, rest, true
		}
	}
	return "", "", false
}

// detailResponse wraps a normalized item in its detail response shape.
// The caller attaches RSSDetails onto a PodcastDetailResponse afterward,
// since that requires a live fetch this function has no context for.
func detailResponse(item interface{}) (interface{}, bool) {
	switch v := item.(type) {
	case models.MediaItem:
		return models.MediaDetailResponse{Media: v}, true
	case models.PersonItem:
		return models.PersonDetailResponse{Person: v}, true
	case models.PodcastItem:
		return models.PodcastDetailResponse{Podcast: v}, true
	case models.AuthorItem:
		return models.AuthorDetailResponse{Author: v}, true
	case models.BookItem:
		return models.BookDetailResponse{Book: v}, true
	default:
		return nil, false
	}
}
