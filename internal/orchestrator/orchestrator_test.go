package orchestrator

import (
	"context"
	"testing"

	"github.com/harborglass/mediasearch/internal/broker"
	"github.com/harborglass/mediasearch/internal/models"
	"github.com/harborglass/mediasearch/internal/popularity"
	"github.com/harborglass/mediasearch/internal/query"
)

type stubAdapter struct {
	source models.Source
	items  []interface{}
	err    error
}

func (s stubAdapter) Source() models.Source { return s.source }

func (s stubAdapter) Search(ctx context.Context, text string, limit int) ([]interface{}, error) {
	return s.items, s.err
}

func newMovie(title string, popularity float64) models.MediaItem {
	item := models.Item{
		McID:        "movie:1",
		Source:      models.SourceMovie,
		SearchTitle: title,
		Popularity:  popularity,
	}
	item.SetCanonicalName(canonicalizeForTest(title))
	return models.MediaItem{Item: item}
}

// canonicalizeForTest mirrors the normalizer's canonicalization, which
// internal/index keeps unexported.
func canonicalizeForTest(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			out = append(out, r)
		}
	}
	return string(out)
}

func TestBuildResponseNeverNullsEmptySources(t *testing.T) {
	resp := buildResponse(query.Parsed{Text: "batman"}, map[models.Source]sourceResult{})
	if resp.Movie == nil || resp.TV == nil || resp.Person == nil {
		t.Fatalf("expected every array slot to be a non-nil empty slice, got %+v", resp)
	}
}

func TestBuildResponsePopulatesExactMatch(t *testing.T) {
	results := map[models.Source]sourceResult{
		models.SourceMovie: {source: models.SourceMovie, items: []interface{}{newMovie("Batman", 500)}, state: stateDone},
	}
	resp := buildResponse(query.Parsed{Text: "Batman"}, results)
	if resp.ExactMatch == nil {
		t.Fatalf("expected an exact match for \"Batman\"")
	}
}

func TestBuildResponseNoExactMatchForPartialText(t *testing.T) {
	results := map[models.Source]sourceResult{
		models.SourceMovie: {source: models.SourceMovie, items: []interface{}{newMovie("Batman Begins", 500)}, state: stateDone},
	}
	resp := buildResponse(query.Parsed{Text: "batman"}, results)
	if resp.ExactMatch != nil {
		t.Fatalf("expected no exact match for a prefix of the canonical title, got %+v", resp.ExactMatch)
	}
}

func TestApplyPopularityNormalizesMediaItem(t *testing.T) {
	norm := popularity.New(nil)
	out := applyPopularity(norm, models.SourceMovie, newMovie("Batman", 500))
	media, ok := out.(models.MediaItem)
	if !ok {
		t.Fatalf("expected a MediaItem back, got %T", out)
	}
	if media.Popularity != 50 {
		t.Fatalf("expected popularity 500/1000 to normalize to 50, got %v", media.Popularity)
	}
}

func TestApplyPopularityLeavesBrokeredItemsUntouched(t *testing.T) {
	norm := popularity.New(nil)
	brokered := models.NewsItem{Brokered: models.Brokered{Item: models.Item{Popularity: 7}}}
	out := applyPopularity(norm, models.SourceNews, brokered)
	news, ok := out.(models.NewsItem)
	if !ok {
		t.Fatalf("expected a NewsItem back, got %T", out)
	}
	if news.Popularity != 7 {
		t.Fatalf("expected brokered popularity to pass through unchanged, got %v", news.Popularity)
	}
}

func TestOrchestratorRunBrokeredReturnsAdapterItems(t *testing.T) {
	o := &Orchestrator{
		brokers: map[models.Source]broker.Adapter{
			models.SourceNews: stubAdapter{source: models.SourceNews, items: []interface{}{"a"}},
		},
		popularity: popularity.New(nil),
	}
	result := o.runBrokered(context.Background(), models.SourceNews, query.Parsed{Text: "x"}, 10)
	if result.state != stateDone || len(result.items) != 1 {
		t.Fatalf("expected one item and state done, got %+v", result)
	}
}

func TestOrchestratorRunBrokeredMissingAdapterIsDone(t *testing.T) {
	o := &Orchestrator{brokers: map[models.Source]broker.Adapter{}, popularity: popularity.New(nil)}
	result := o.runBrokered(context.Background(), models.SourceVideo, query.Parsed{Text: "x"}, 10)
	if result.state != stateDone || len(result.items) != 0 {
		t.Fatalf("expected an empty done result for an unconfigured source, got %+v", result)
	}
}
