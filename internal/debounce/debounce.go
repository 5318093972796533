// Package debounce models the client-side debouncer (C12) as an
// executable, testable contract. The actual debouncer runs in a browser
// and is out of this service's scope (spec.md §1); this package exists so
// other client implementations have something to check themselves
// against, and so cmd/querycheck can exercise the same semantics against
// a live server without re-implementing them ad hoc.
package debounce

import (
	"context"
	"sync"
	"time"
)

// Tier1Delay and Tier2Delay match spec.md §4.12's two cooperative timers:
// autocomplete fires quickly on every pause, search fires only once the
// user has clearly stopped typing (or pressed Enter).
const (
	Tier1Delay = 300 * time.Millisecond
	Tier2Delay = 750 * time.Millisecond
)

// FireFunc issues one request for text. ctx is cancelled the moment a
// newer keystroke supersedes this one, per spec.md §4.12 "all in-flight
// requests and streams are cancelled".
type FireFunc func(ctx context.Context, text string)

// Debouncer drives FireFunc calls off a stream of keystrokes, per
// spec.md §4.12's two-timer/cancel-on-change state machine. Tier-1 and
// tier-2 requests for the same keystroke share one cancelable context, so
// a keystroke change cancels both in one stroke; tier-2 firing never
// cancels tier-1's already-in-flight request, since they're independent
// requests for the same query, not a supersession.
type Debouncer struct {
	mu     sync.Mutex
	text   string
	ctx    context.Context
	cancel context.CancelFunc
	tier1  *time.Timer
	tier2  *time.Timer

	fireTier1 FireFunc
	fireTier2 FireFunc

	acc *Accumulator
}

// New builds a Debouncer that calls fireTier1 after Tier1Delay and
// fireTier2 after Tier2Delay (or immediately on Enter), both keyed to the
// most recent keystroke's text. Its Accumulator is reset every time a
// keystroke changes the current text, so FireFunc implementations can
// merge their results into it (via Accumulator) without separately
// tracking staleness.
func New(fireTier1, fireTier2 FireFunc) *Debouncer {
	return &Debouncer{fireTier1: fireTier1, fireTier2: fireTier2, acc: NewAccumulator()}
}

// Accumulator returns the merge target FireFunc implementations should
// write their per-source results into.
func (d *Debouncer) Accumulator() *Accumulator {
	return d.acc
}

// Keystroke records a new query text. If text differs from the
// previously recorded text, every in-flight timer and request context is
// cancelled and both tiers restart from zero (spec.md §4.12 "Whenever the
// query text differs from the previous keystroke, all in-flight requests
// and streams are cancelled"). An identical repeated keystroke (e.g. a
// duplicate event) is a no-op: the timers already in flight keep running.
func (d *Debouncer) Keystroke(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if text == d.text {
		return
	}
	d.resetLocked(text)
	ctx := d.ctx
	d.tier1 = time.AfterFunc(Tier1Delay, d.fire(ctx, text, d.fireTier1))
	d.tier2 = time.AfterFunc(Tier2Delay, d.fire(ctx, text, d.fireTier2))
}

// Enter fires tier-2 immediately for the current text, per spec.md
// §4.12 "fires ... immediately on Enter". Tier-1 is left running; its
// result, if it arrives later, still merges in (tier-2 simply overwrites
// whatever it touches).
func (d *Debouncer) Enter() {
	d.mu.Lock()
	text, ctx := d.text, d.ctx
	if d.tier2 != nil {
		d.tier2.Stop()
	}
	d.mu.Unlock()

	d.fireTier2(ctx, text)
}

// Stop cancels every in-flight timer and request context, leaving the
// Debouncer idle.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.resetLocked("")
}

// resetLocked cancels the previous keystroke's shared context and pending
// timers, then opens a fresh context for text. Callers must hold d.mu.
func (d *Debouncer) resetLocked(text string) {
	if d.cancel != nil {
		d.cancel()
	}
	if d.tier1 != nil {
		d.tier1.Stop()
	}
	if d.tier2 != nil {
		d.tier2.Stop()
	}
	d.text = text
	d.ctx, d.cancel = context.WithCancel(context.Background())
	d.acc.Reset(text)
}

// fire wraps a FireFunc so a timer that fires after a newer keystroke has
// already superseded it is a silent no-op rather than issuing a stale
// request (spec.md §8 "responses keyed to a stale query MUST be discarded").
func (d *Debouncer) fire(ctx context.Context, text string, f FireFunc) func() {
	return func() {
		d.mu.Lock()
		current := d.text
		d.mu.Unlock()
		if current != text {
			return
		}
		f(ctx, text)
	}
}
