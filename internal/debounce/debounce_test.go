// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package debounce

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/harborglass/mediasearch/internal/models"
)

// recordingFire counts fires and records the text each fire received,
// so tests can assert both "did it fire" and "with what".
type recordingFire struct {
	mu    sync.Mutex
	calls []string
}

func (r *recordingFire) fire(_ context.Context, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, text)
}

func (r *recordingFire) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *recordingFire) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return ""
	}
	return r.calls[len(r.calls)-1]
}

func TestDebouncer_FiresBothTiersAfterPause(t *testing.T) {
	tier1, tier2 := &recordingFire{}, &recordingFire{}
	d := New(tier1.fire, tier2.fire)

	d.Keystroke("batman")

	time.Sleep(Tier1Delay + 50*time.Millisecond)
	if tier1.count() != 1 {
		t.Fatalf("expected tier1 to have fired once, got %d", tier1.count())
	}
	if tier2.count() != 0 {
		t.Fatalf("expected tier2 not to have fired yet, got %d", tier2.count())
	}

	time.Sleep(Tier2Delay - Tier1Delay + 50*time.Millisecond)
	if tier2.count() != 1 {
		t.Fatalf("expected tier2 to have fired once, got %d", tier2.count())
	}
}

func TestDebouncer_KeystrokeCancelsInFlightTimers(t *testing.T) {
	tier1, tier2 := &recordingFire{}, &recordingFire{}
	d := New(tier1.fire, tier2.fire)

	d.Keystroke("bat")
	time.Sleep(Tier1Delay / 2)
	d.Keystroke("batman")

	time.Sleep(Tier1Delay + 50*time.Millisecond)
	if tier1.count() != 1 {
		t.Fatalf("expected exactly one tier1 fire for the superseding keystroke, got %d", tier1.count())
	}
	if tier1.last() != "batman" {
		t.Fatalf("expected tier1 to fire for %q, got %q", "batman", tier1.last())
	}
}

func TestDebouncer_RepeatedKeystrokeIsNoop(t *testing.T) {
	tier1, tier2 := &recordingFire{}, &recordingFire{}
	d := New(tier1.fire, tier2.fire)

	d.Keystroke("batman")
	d.Keystroke("batman")
	d.Keystroke("batman")

	time.Sleep(Tier2Delay + 50*time.Millisecond)
	if tier1.count() != 1 || tier2.count() != 1 {
		t.Fatalf("expected one fire per tier for a repeated keystroke, got tier1=%d tier2=%d", tier1.count(), tier2.count())
	}
}

func TestDebouncer_EnterFiresTier2Immediately(t *testing.T) {
	tier1, tier2 := &recordingFire{}, &recordingFire{}
	d := New(tier1.fire, tier2.fire)

	d.Keystroke("batman")
	d.Enter()

	if tier2.count() != 1 {
		t.Fatalf("expected Enter to fire tier2 immediately, got %d", tier2.count())
	}

	time.Sleep(Tier2Delay + 50*time.Millisecond)
	if tier2.count() != 1 {
		t.Fatalf("expected the deferred tier2 timer to have been stopped by Enter, got %d", tier2.count())
	}
}

func TestDebouncer_StopPreventsPendingFires(t *testing.T) {
	tier1, tier2 := &recordingFire{}, &recordingFire{}
	d := New(tier1.fire, tier2.fire)

	d.Keystroke("batman")
	d.Stop()

	time.Sleep(Tier2Delay + 50*time.Millisecond)
	if tier1.count() != 0 || tier2.count() != 0 {
		t.Fatalf("expected Stop to prevent all pending fires, got tier1=%d tier2=%d", tier1.count(), tier2.count())
	}
}

func TestAccumulator_Tier2OverwritesTier1(t *testing.T) {
	acc := NewAccumulator()
	acc.Reset("batman")

	if ok := acc.Merge("batman", models.SourceMovie, []interface{}{"tier1-result"}); !ok {
		t.Fatal("expected tier1 merge to succeed")
	}
	snap := acc.Snapshot()
	if len(snap.Movie) != 1 || snap.Movie[0] != "tier1-result" {
		t.Fatalf("expected tier1 result in movie slot, got %#v", snap.Movie)
	}

	if ok := acc.Merge("batman", models.SourceMovie, []interface{}{"tier2-a", "tier2-b"}); !ok {
		t.Fatal("expected tier2 merge to succeed")
	}
	snap = acc.Snapshot()
	if len(snap.Movie) != 2 || snap.Movie[0] != "tier2-a" {
		t.Fatalf("expected tier2 result to overwrite tier1 in movie slot, got %#v", snap.Movie)
	}
}

func TestAccumulator_StaleMergeIsDiscarded(t *testing.T) {
	acc := NewAccumulator()
	acc.Reset("batman")

	ok := acc.Merge("bat", models.SourceMovie, []interface{}{"stale"})
	if ok {
		t.Fatal("expected a merge for a superseded query to be rejected")
	}
	snap := acc.Snapshot()
	if len(snap.Movie) != 0 {
		t.Fatalf("expected stale merge to leave the movie slot untouched, got %#v", snap.Movie)
	}
}

func TestAccumulator_ResetDiscardsPriorQueryState(t *testing.T) {
	acc := NewAccumulator()
	acc.Reset("bat")
	acc.Merge("bat", models.SourceMovie, []interface{}{"bat-result"})

	acc.Reset("batman")
	snap := acc.Snapshot()
	if len(snap.Movie) != 0 {
		t.Fatalf("expected Reset to start a clean envelope, got %#v", snap.Movie)
	}

	if ok := acc.Merge("bat", models.SourceMovie, []interface{}{"late-arrival"}); ok {
		t.Fatal("expected a late merge for the superseded query to be rejected after Reset")
	}
}

func TestAccumulator_ExactMatch(t *testing.T) {
	acc := NewAccumulator()
	acc.Reset("batman")

	if ok := acc.MergeExactMatch("batman", "exact-batman"); !ok {
		t.Fatal("expected exact match merge to succeed")
	}
	if snap := acc.Snapshot(); snap.ExactMatch != "exact-batman" {
		t.Fatalf("expected exact match to be recorded, got %#v", snap.ExactMatch)
	}
}

func TestDebouncer_AccumulatorResetsOnKeystroke(t *testing.T) {
	var acc *Accumulator
	d := New(
		func(ctx context.Context, text string) {
			acc.Merge(text, models.SourceMovie, []interface{}{"result-for-" + text})
		},
		func(ctx context.Context, text string) {},
	)
	acc = d.Accumulator()

	d.Keystroke("bat")
	time.Sleep(Tier1Delay + 50*time.Millisecond)
	if snap := acc.Snapshot(); len(snap.Movie) == 0 {
		t.Fatal("expected tier1 fire to have merged a result")
	}

	d.Keystroke("batman")
	if snap := acc.Snapshot(); len(snap.Movie) != 0 {
		t.Fatalf("expected a keystroke change to reset the accumulator immediately, got %#v", snap.Movie)
	}

	time.Sleep(Tier1Delay + 50*time.Millisecond)
	if snap := acc.Snapshot(); len(snap.Movie) != 1 || snap.Movie[0] != "result-for-batman" {
		t.Fatalf("expected the new keystroke's tier1 fire to merge cleanly, got %#v", snap.Movie)
	}
}
