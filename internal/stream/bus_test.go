// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package stream

import (
	"testing"
	"time"

	"github.com/harborglass/mediasearch/internal/models"
)

func TestBusDeliversEventsInPublishOrder(t *testing.T) {
	bus := NewBus(2)

	bus.Publish(Event{Type: EventResult, Source: models.SourceMovie, Items: []interface{}{"a"}})
	bus.Publish(Event{Type: EventResult, Source: models.SourceTV, Items: []interface{}{"b"}})
	bus.Publish(Event{Type: EventDone})
	bus.Close()

	var got []Event
	for e := range bus.Events() {
		got = append(got, e)
	}

	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	if got[0].Source != models.SourceMovie || got[1].Source != models.SourceTV {
		t.Fatalf("expected publish order to be preserved, got %+v", got)
	}
	if got[2].Type != EventDone {
		t.Fatalf("expected the final event to be EventDone, got %v", got[2].Type)
	}
}

func TestBusClosedChannelStopsRangeWithoutBlocking(t *testing.T) {
	bus := NewBus(0)
	bus.Close()

	done := make(chan struct{})
	go func() {
		for range bus.Events() {
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ranging over a closed, empty bus should return immediately")
	}
}
