// Package stream implements the SSE event bus (C11) the streaming
// autocomplete/search endpoints publish onto as each source task
// completes.
package stream

import (
	"time"

	"github.com/harborglass/mediasearch/internal/models"
)

// EventType is the SSE `event:` field (spec.md §4.11).
type EventType string

const (
	// EventResult carries one source's items as soon as that source's
	// task finishes. Multiple result events may arrive in any order.
	EventResult EventType = "result"
	// EventExactMatch carries the arbitrated exact-match item, if any,
	// computed only after every source has finished.
	EventExactMatch EventType = "exact_match"
	// EventDone always terminates the stream, exactly once, last.
	EventDone EventType = "done"
)

// Event is one SSE message.
type Event struct {
	Type       EventType
	Source     models.Source
	Items      []interface{}
	Duration   time.Duration
	ExactMatch interface{}
	SourceHint []string
}

// Bus is a one-shot, single-consumer event channel scoped to one
// streamed request. Unlike a long-lived broadcast hub that fans one
// message out to many registered clients, a Bus has one consumer (the
// SSE handler writing to the response); its publishers are the
// orchestrator's per-source goroutines and the goroutine that sends the
// trailing exact-match and done events.
type Bus struct {
	events chan Event
}

// NewBus allocates a Bus with enough buffer for one event per active
// source plus the trailing exact-match and done events, so Publish never
// blocks on a slow consumer mid-request.
func NewBus(sourceCount int) *Bus {
	return &Bus{events: make(chan Event, sourceCount+2)}
}

// Publish enqueues an event. The caller must not publish after Close.
func (b *Bus) Publish(e Event) {
	b.events <- e
}

// Events returns the read side of the bus. The channel closes once the
// publisher has sent the terminal done event.
func (b *Bus) Events() <-chan Event {
	return b.events
}

// Close signals no further events will be published.
func (b *Bus) Close() {
	close(b.events)
}
