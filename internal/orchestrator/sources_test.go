package orchestrator

import (
	"testing"

	"github.com/harborglass/mediasearch/internal/models"
)

func TestActiveSourcesExcludesBrokeredInAutocomplete(t *testing.T) {
	active := activeSources(models.ModeAutocomplete, nil, nil)
	for _, d := range active {
		if !d.indexed {
			t.Fatalf("expected brokered source %s to be excluded from autocomplete", d.source)
		}
	}
}

func TestActiveSourcesHonorsHint(t *testing.T) {
	active := activeSources(models.ModeSearch, nil, []models.Source{models.SourceMovie})
	if len(active) != 1 || active[0].source != models.SourceMovie {
		t.Fatalf("expected only movie to be active, got %+v", active)
	}
}

func TestActiveSourcesIntersectsRequestedAndHint(t *testing.T) {
	active := activeSources(models.ModeSearch,
		[]models.Source{models.SourceMovie, models.SourceTV},
		[]models.Source{models.SourceTV})
	if len(active) != 1 || active[0].source != models.SourceTV {
		t.Fatalf("expected only tv to survive intersection, got %+v", active)
	}
}
