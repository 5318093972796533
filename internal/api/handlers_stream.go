// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"fmt"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/harborglass/mediasearch/internal/middleware"
	"github.com/harborglass/mediasearch/internal/models"
	"github.com/harborglass/mediasearch/internal/stream"
)

// streamResultPayload is the `data:` body of a "result" SSE event
// (spec.md §4.11 "{source, results[], latency_ms}").
type streamResultPayload struct {
	Source    models.Source `json:"source"`
	Results   []interface{} `json:"results"`
	LatencyMs int64         `json:"latency_ms"`
}

// streamDonePayload is the `data:` body of the terminal "done" event. The
// source hint, if any, rides along here rather than on every result event
// since it describes the request as a whole, not any one source's task.
type streamDonePayload struct {
	SourceHint []string `json:"source_hint,omitempty"`
}

// stream drives an SSE response off the orchestrator's event bus
// (spec.md §4.11). Event ordering guarantee: result events arrive in any
// order as each source finishes, an exact_match event (at most one)
// arrives only after every source has finished, and done always
// terminates the stream last.
func (h *Handler) stream(w http.ResponseWriter, r *http.Request, mode models.Mode) {
	req, err := decodeRequest(r, mode, models.TransportStream)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, `{"error":"streaming unsupported"}`, http.StatusInternalServerError)
		return
	}

	requestID := middleware.GetRequestID(r.Context())
	parsed := h.parser.Parse(req.Q, req.Filters, req.Raw)
	bus := h.orchestrator.ExecuteStream(r.Context(), parsed, requestedSources(req), mode, req.Limit, requestID)

	for {
		select {
		case <-r.Context().Done():
			return
		case event, ok := <-bus.Events():
			if !ok {
				return
			}
			writeSSEEvent(w, flusher, event)
			if event.Type == stream.EventDone {
				return
			}
		}
	}
}

func writeSSEEvent(w http.ResponseWriter, flusher http.Flusher, event stream.Event) {
	switch event.Type {
	case stream.EventResult:
		writeSSE(w, flusher, string(stream.EventResult), streamResultPayload{
			Source:    event.Source,
			Results:   event.Items,
			LatencyMs: event.Duration.Milliseconds(),
		})
	case stream.EventExactMatch:
		writeSSE(w, flusher, string(stream.EventExactMatch), event.ExactMatch)
	case stream.EventDone:
		writeSSE(w, flusher, string(stream.EventDone), streamDonePayload{SourceHint: event.SourceHint})
	}
}

func writeSSE(w http.ResponseWriter, flusher http.Flusher, eventName string, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventName, body)
	flusher.Flush()
}
