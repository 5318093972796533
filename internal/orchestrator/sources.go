// Package orchestrator implements the fan-out orchestrator (C7): it runs
// every applicable source task in parallel, enforces per-source
// deadlines, and folds the results into the response envelope.
package orchestrator

import "github.com/harborglass/mediasearch/internal/models"

// sourceDescriptor names the fixed set of sources a query can fan out to
// and whether each participates in autocomplete mode (spec.md §9 "Source
// polymorphism": brokered sources are search-only, too slow/low-value for
// keystroke-driven autocomplete).
type sourceDescriptor struct {
	source              models.Source
	indexed             bool
	autocompleteEnabled bool
}

var allSources = []sourceDescriptor{
	{models.SourceTV, true, true},
	{models.SourceMovie, true, true},
	{models.SourcePerson, true, true},
	{models.SourcePodcast, true, true},
	{models.SourceBook, true, true},
	{models.SourceAuthor, true, true},
	{models.SourceNews, false, false},
	{models.SourceVideo, false, false},
	{models.SourceRatings, false, false},
	{models.SourceArtist, false, false},
	{models.SourceAlbum, false, false},
}

// activeSources narrows allSources to the intersection of the request's
// explicit sources filter, its source-hint prefix (if any), and the
// mode's exclusion mask (spec.md §4.7 "Enabled set").
func activeSources(mode models.Mode, requested, hints []models.Source) []sourceDescriptor {
	requestedSet := toSet(requested)
	hintedSet := toSet(hints)

	var active []sourceDescriptor
	for _, d := range allSources {
		if len(requestedSet) > 0 && !requestedSet[d.source] {
			continue
		}
		if len(hintedSet) > 0 && !hintedSet[d.source] {
			continue
		}
		if mode == models.ModeAutocomplete && !d.autocompleteEnabled {
			continue
		}
		active = append(active, d)
	}
	return active
}

func toSet(sources []models.Source) map[models.Source]bool {
	set := make(map[models.Source]bool, len(sources))
	for _, s := range sources {
		set[s] = true
	}
	return set
}
