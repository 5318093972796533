package orchestrator

import (
	"sync"
	"time"

	"github.com/harborglass/mediasearch/internal/models"
)

// taskState is the terminal state of one source task (spec.md §7
// "pending → running → {done, timed_out, cancelled, failed}").
type taskState string

const (
	stateDone      taskState = "done"
	stateTimedOut  taskState = "timed_out"
	stateCancelled taskState = "cancelled"
	stateFailed    taskState = "failed"
)

// sourceResult is one source task's published outcome.
type sourceResult struct {
	source   models.Source
	items    []interface{}
	state    taskState
	duration time.Duration
	err      error
}

// accumulator is the single mutex-guarded map every source task publishes
// its final result into (spec.md §4.7 implementation note): each task
// computes its full result set off the shared state and only takes the
// lock to publish, so the critical section is O(1).
type accumulator struct {
	mu      sync.Mutex
	results map[models.Source]sourceResult
}

func newAccumulator() *accumulator {
	return &accumulator{results: make(map[models.Source]sourceResult)}
}

func (a *accumulator) publish(r sourceResult) {
	a.mu.Lock()
	a.results[r.source] = r
	a.mu.Unlock()
}

func (a *accumulator) snapshot() map[models.Source]sourceResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make(map[models.Source]sourceResult, len(a.results))
	for k, v := range a.results {
		out[k] = v
	}
	return out
}
