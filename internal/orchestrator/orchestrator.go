package orchestrator

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/harborglass/mediasearch/internal/broker"
	"github.com/harborglass/mediasearch/internal/exactmatch"
	"github.com/harborglass/mediasearch/internal/index"
	"github.com/harborglass/mediasearch/internal/logging"
	"github.com/harborglass/mediasearch/internal/metrics"
	"github.com/harborglass/mediasearch/internal/models"
	"github.com/harborglass/mediasearch/internal/popularity"
	"github.com/harborglass/mediasearch/internal/query"
	"github.com/harborglass/mediasearch/internal/stream"
)

// Orchestrator implements C7: it fans a parsed query out to every
// applicable source task in parallel and folds the results into a
// response envelope, applying the popularity normalizer (C9) and the
// exact-match arbiter (C8) before handing the envelope to the transport
// layer.
type Orchestrator struct {
	executor   *index.Executor
	brokers    map[models.Source]broker.Adapter
	popularity *popularity.Normalizer
}

// New builds an Orchestrator over the index executor, the set of
// brokered adapters (already wrapped in circuit breakers by the caller),
// and the popularity normalizer.
func New(executor *index.Executor, brokers map[models.Source]broker.Adapter, pop *popularity.Normalizer) *Orchestrator {
	return &Orchestrator{executor: executor, brokers: brokers, popularity: pop}
}

// Execute runs every active source task for parsed and returns the
// populated response envelope. requestID is attached to every log line
// this call emits (spec.md §7).
func (o *Orchestrator) Execute(ctx context.Context, parsed query.Parsed, requested []models.Source, mode models.Mode, limit int, requestID string) *models.Response {
	active := activeSources(mode, requested, parsed.SourceHint)
	acc := newAccumulator()

	group, groupCtx := errgroup.WithContext(ctx)
	for _, d := range active {
		d := d
		group.Go(func() error {
			o.runTask(groupCtx, d, parsed, mode, limit, requestID, acc)
			return nil
		})
	}
	_ = group.Wait()

	results := acc.snapshot()
	o.normalizePopularity(results)
	return buildResponse(parsed, results)
}

// normalizePopularity rewrites every indexed item's displayed Popularity
// field onto the common 0-100 scale (C9), in place, before the envelope
// and the exact-match arbiter see the results. Brokered sources have no
// configured range and are left as the provider reported them.
func (o *Orchestrator) normalizePopularity(results map[models.Source]sourceResult) {
	for source, result := range results {
		for i, item := range result.items {
			result.items[i] = applyPopularity(o.popularity, source, item)
		}
	}
}

func applyPopularity(norm *popularity.Normalizer, source models.Source, item interface{}) interface{} {
	switch v := item.(type) {
	case models.MediaItem:
		v.Popularity = norm.Normalize(source, v.Popularity)
		return v
	case models.PersonItem:
		v.Popularity = norm.Normalize(source, v.Popularity)
		return v
	case models.PodcastItem:
		v.Popularity = norm.Normalize(source, v.Popularity)
		return v
	case models.BookItem:
		v.PopularityScore = norm.Normalize(source, v.PopularityScore)
		v.Popularity = v.PopularityScore
		return v
	case models.AuthorItem:
		v.QualityScore = norm.Normalize(source, v.QualityScore)
		v.Popularity = v.QualityScore
		return v
	default:
		return item
	}
}

// runTask executes one source's task and publishes its terminal result.
// It never returns an error to the errgroup: a source failure is captured
// as sourceResult.state, not propagated, so one slow/broken source never
// cancels its siblings (spec.md §5 "independent source tasks").
func (o *Orchestrator) runTask(ctx context.Context, d sourceDescriptor, parsed query.Parsed, mode models.Mode, limit int, requestID string, acc *accumulator) {
	result := o.runSource(ctx, d, parsed, mode, limit, requestID)
	acc.publish(result)
}

// runSource runs one source's task to completion, recording its metrics
// and log line. Shared by the batch path (runTask) and the streaming path
// (ExecuteStream), which additionally publishes the result onto a Bus as
// soon as it is available instead of waiting for every sibling task.
func (o *Orchestrator) runSource(ctx context.Context, d sourceDescriptor, parsed query.Parsed, mode models.Mode, limit int, requestID string) sourceResult {
	start := time.Now()
	var result sourceResult

	if d.indexed {
		result = o.runIndexed(ctx, d.source, parsed, mode, limit)
	} else {
		result = o.runBrokered(ctx, d.source, parsed, limit)
	}
	result.duration = time.Since(start)
	metrics.RecordSourceTask(string(d.source), string(result.state), result.duration)

	logEvent := logging.CtxInfo(ctx)
	if result.state == stateFailed || result.state == stateTimedOut {
		logEvent = logging.CtxWarn(ctx)
	}
	if result.err != nil {
		logEvent = logEvent.Str("reason", result.err.Error())
	} else if result.state != stateDone {
		logEvent = logEvent.Str("reason", string(result.state))
	}
	logEvent.
		Str("source", string(d.source)).
		Dur("duration_ms", result.duration).
		Str("state", string(result.state)).
		Msg("source task completed")

	return result
}

// ExecuteStream runs the same fan-out as Execute but returns a Bus that
// emits one result event per source as that source finishes, followed by
// at most one exact_match event once every source has completed, and
// always a terminal done event last (spec.md §4.11).
func (o *Orchestrator) ExecuteStream(ctx context.Context, parsed query.Parsed, requested []models.Source, mode models.Mode, limit int, requestID string) *stream.Bus {
	active := activeSources(mode, requested, parsed.SourceHint)
	bus := stream.NewBus(len(active))
	acc := newAccumulator()

	var hints []string
	if parsed.HasHint() {
		hints = make([]string, len(parsed.SourceHint))
		for i, h := range parsed.SourceHint {
			hints[i] = string(h)
		}
	}

	go func() {
		defer bus.Close()

		group, groupCtx := errgroup.WithContext(ctx)
		for _, d := range active {
			d := d
			group.Go(func() error {
				result := o.runSource(groupCtx, d, parsed, mode, limit, requestID)
				acc.publish(result)

				items := make([]interface{}, len(result.items))
				for i, item := range result.items {
					items[i] = applyPopularity(o.popularity, d.source, item)
				}
				bus.Publish(stream.Event{Type: stream.EventResult, Source: d.source, Items: items, Duration: result.duration})
				return nil
			})
		}
		_ = group.Wait()

		results := acc.snapshot()
		bySource := make(map[models.Source][]interface{}, len(results))
		for source, result := range results {
			bySource[source] = result.items
		}
		if exactMatch := exactmatch.Arbitrate(parsed.Text, bySource); exactMatch != nil {
			bus.Publish(stream.Event{Type: stream.EventExactMatch, ExactMatch: exactMatch})
		}
		bus.Publish(stream.Event{Type: stream.EventDone, SourceHint: hints})
	}()

	return bus
}

func (o *Orchestrator) runIndexed(ctx context.Context, source models.Source, parsed query.Parsed, mode models.Mode, limit int) sourceResult {
	built := query.Build(source, parsed, mode, limit)
	res := o.executor.Run(ctx, built, mode)

	switch {
	case res.Err != nil:
		return sourceResult{source: source, items: []interface{}{}, state: stateFailed, err: res.Err}
	case res.TimedOut:
		return sourceResult{source: source, items: res.Items, state: stateTimedOut}
	case ctx.Err() != nil:
		return sourceResult{source: source, items: []interface{}{}, state: stateCancelled}
	default:
		return sourceResult{source: source, items: res.Items, state: stateDone}
	}
}

func (o *Orchestrator) runBrokered(ctx context.Context, source models.Source, parsed query.Parsed, limit int) sourceResult {
	adapter, ok := o.brokers[source]
	if !ok {
		return sourceResult{source: source, items: []interface{}{}, state: stateDone}
	}

	items, err := adapter.Search(ctx, parsed.Text, limit)
	switch {
	case ctx.Err() != nil:
		return sourceResult{source: source, items: []interface{}{}, state: stateCancelled}
	case err != nil:
		return sourceResult{source: source, items: []interface{}{}, state: stateFailed, err: err}
	default:
		return sourceResult{source: source, items: items, state: stateDone}
	}
}

// buildResponse assembles the fixed-key response envelope from the
// accumulator's final snapshot, honoring the "never null" array invariant
// (spec.md §3) even for sources that never ran or failed entirely.
func buildResponse(parsed query.Parsed, results map[models.Source]sourceResult) *models.Response {
	resp := models.NewResponse()
	if parsed.HasHint() {
		hints := make([]string, len(parsed.SourceHint))
		for i, h := range parsed.SourceHint {
			hints[i] = string(h)
		}
		resp.SourceHint = hints
	}

	bySource := make(map[models.Source][]interface{}, len(results))
	for source, result := range results {
		slot := resp.SlotFor(source)
		if slot == nil {
			continue
		}
		*slot = result.items
		if *slot == nil {
			*slot = []interface{}{}
		}
		bySource[source] = result.items
	}

	resp.ExactMatch = exactmatch.Arbitrate(parsed.Text, bySource)
	return resp
}
