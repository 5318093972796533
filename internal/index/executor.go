package index

import (
	"context"
	"sort"
	"time"

	"github.com/harborglass/mediasearch/internal/metrics"
	"github.com/harborglass/mediasearch/internal/models"
	"github.com/harborglass/mediasearch/internal/query"
)

// AutocompleteDeadline and SearchDeadline are the per-source soft
// deadlines the orchestrator (C7) applies to index queries (spec.md §4.4,
// §4.7 "per-source timeout").
const (
	AutocompleteDeadline = 250 * time.Millisecond
	SearchDeadline       = 1500 * time.Millisecond
)

// Result is one source's outcome from the executor, including whether its
// deadline was hit before the index replied (spec.md §9(a): timed_out is
// tracked internally but never surfaced on the wire).
type Result struct {
	Source   models.Source
	Items    []interface{}
	TimedOut bool
	Err      error
}

// Executor runs per-source RediSearch queries and normalizes their
// replies into typed items (C4 + C5).
type Executor struct {
	client *Client
}

// NewExecutor builds an Executor over a pooled index Client.
func NewExecutor(client *Client) *Executor {
	return &Executor{client: client}
}

// Run executes one SourceQuery and returns normalized, sorted items.
// NoOp queries (short input, unsupported source) return an empty, non-timed-out
// result without touching the index. mode picks the per-source soft
// deadline (spec.md §4.4).
func (e *Executor) Run(ctx context.Context, q query.SourceQuery, mode models.Mode) Result {
	if q.NoOp {
		return Result{Source: q.Source, Items: []interface{}{}}
	}

	deadline := SearchDeadline
	if mode == models.ModeAutocomplete {
		deadline = AutocompleteDeadline
	}
	runCtx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	start := time.Now()
	rows, err := e.client.FTSearch(runCtx, ftSearchArgs(q)...)
	metrics.RecordIndexQuery(string(q.Source), time.Since(start))
	if err != nil {
		if runCtx.Err() != nil {
			return Result{Source: q.Source, Items: []interface{}{}, TimedOut: true}
		}
		return Result{Source: q.Source, Items: []interface{}{}, Err: err}
	}

	items := parseRows(q.Source, rows)
	sortItems(q.Source, items, q.SortField, q.SecondarySort)
	return Result{Source: q.Source, Items: items}
}

// ftSearchArgs renders the RediSearch command-line argument list for a
// built query, requesting WITHSCORES and SORTBY for deterministic paging.
func ftSearchArgs(q query.SourceQuery) []interface{} {
	args := []interface{}{q.Index, q.RediSearchQuery, "WITHSCORES", "LIMIT", 0, q.Limit}
	if q.SortField != "" {
		args = append(args, "SORTBY", q.SortField, "DESC")
	}
	return args
}

// parseRows decodes an FT.SEARCH reply into normalized items. The reply
// shape (without WITHSCORES consumed separately) is:
//
//	[total, docID1, score1, [field1, val1, field2, val2, ...], docID2, ...]
func parseRows(source models.Source, rows []interface{}) []interface{} {
	if len(rows) == 0 {
		return []interface{}{}
	}
	items := make([]interface{}, 0, (len(rows)-1)/3)
	i := 1
	for i < len(rows) {
		if i+2 >= len(rows) {
			break
		}
		fieldList, ok := rows[i+2].([]interface{})
		if !ok {
			i += 3
			continue
		}
		fields := fieldsFromFlatList(fieldList)
		items = append(items, Normalize(source, fields))
		i += 3
	}
	return items
}

func fieldsFromFlatList(flat []interface{}) map[string]string {
	fields := make(map[string]string, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		key, _ := flat[i].(string)
		val, _ := flat[i+1].(string)
		fields[key] = val
	}
	return fields
}

// sortItems applies the deterministic tie-break spec.md §4.3 requires
// beyond RediSearch's own relevance ranking: primary sort field
// descending, secondary field descending, both accessed via the item's
// exported getters rather than reflection.
func sortItems(source models.Source, items []interface{}, primary, secondary string) {
	sort.SliceStable(items, func(i, j int) bool {
		pi, pj := sortKey(items[i], primary), sortKey(items[j], primary)
		if pi != pj {
			return pi > pj
		}
		if secondary == "" {
			return false
		}
		return sortKey(items[i], secondary) > sortKey(items[j], secondary)
	})
}

// sortKey extracts a numeric ranking value from a normalized item by
// field name. Unknown fields or types rank as zero rather than erroring,
// since a missing sort field is a data-quality issue, not a query failure.
func sortKey(item interface{}, field string) float64 {
	switch v := item.(type) {
	case models.MediaItem:
		switch field {
		case "popularity":
			return v.Popularity
		case "year":
			return float64(v.Year)
		}
	case models.PersonItem:
		if field == "popularity" {
			return v.Popularity
		}
	case models.PodcastItem:
		if field == "popularity" {
			return v.Popularity
		}
	case models.BookItem:
		switch field {
		case "popularity_score":
			return v.PopularityScore
		case "first_publish_year":
			return float64(v.FirstPublishYear)
		}
	case models.AuthorItem:
		if field == "quality_score" {
			return v.QualityScore
		}
	case models.Item:
		if field == "popularity" {
			return v.Popularity
		}
	}
	return 0
}
