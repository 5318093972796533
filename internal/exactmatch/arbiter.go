// Package exactmatch implements the exact-match arbiter (C8): at most one
// item per request, chosen by walking sources in a fixed priority order
// and comparing each candidate's canonical name against the query.
package exactmatch

import (
	"strings"

	"github.com/harborglass/mediasearch/internal/models"
)

// priorityOrder is the fixed source-priority ladder C8 walks (spec.md
// §4.8: "movie, tv, person, podcast, book, author").
var priorityOrder = []models.Source{
	models.SourceMovie,
	models.SourceTV,
	models.SourcePerson,
	models.SourcePodcast,
	models.SourceBook,
	models.SourceAuthor,
}

// canonicalNamer is implemented by every normalized item type (C5 sets
// this once; see internal/index/normalizer.go).
type canonicalNamer interface {
	CanonicalName() string
}

// Arbitrate walks resultsBySource in priority order and returns the first
// item whose canonical name equals the canonicalized query text. Media
// items are returned in their exact-match shape (cast zipped into
// {name,id|null} pairs); every other type is returned as-is.
func Arbitrate(query string, resultsBySource map[models.Source][]interface{}) interface{} {
	target := canonicalize(query)
	if target == "" {
		return nil
	}

	for _, source := range priorityOrder {
		for _, item := range resultsBySource[source] {
			named, ok := item.(canonicalNamer)
			if !ok || named.CanonicalName() != target {
				continue
			}
			return toExactMatchShape(item)
		}
	}
	return nil
}

// toExactMatchShape restructures a MediaItem's cast arrays into zipped
// pairs for the exact-match payload (spec.md §4.8); every other type
// passes through unchanged.
func toExactMatchShape(item interface{}) interface{} {
	if media, ok := item.(models.MediaItem); ok {
		return media.ToExactMatch()
	}
	return item
}

// canonicalize lowercases, trims, and strips punctuation, mirroring the
// normalization C5 applies to every item's SearchTitle so the comparison
// in Arbitrate is exact, not fuzzy (spec.md §4.8, §GLOSSARY "Exact match").
func canonicalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
