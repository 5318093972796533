// Package query implements the parser (C1), tag normalizer (C2), and
// per-source index query builder (C3) from spec.md §4.1–§4.3.
package query

import "github.com/harborglass/mediasearch/internal/models"

// knownSourceTags is the fixed set of source-hint tokens spec.md §4.1
// recognizes, matched case-insensitively against the prefix before ":".
var knownSourceTags = map[string]models.Source{
	"tv":      models.SourceTV,
	"movie":   models.SourceMovie,
	"person":  models.SourcePerson,
	"podcast": models.SourcePodcast,
	"author":  models.SourceAuthor,
	"book":    models.SourceBook,
	"news":    models.SourceNews,
	"video":   models.SourceVideo,
	"ratings": models.SourceRatings,
	"artist":  models.SourceArtist,
	"album":   models.SourceAlbum,
}

// FilterClause is a conjunctive (field, normalized-value-disjunction) pair
// (spec.md §9 "Tag filters"). Two clauses on the same field AND together;
// the values within one clause OR together (the IPTC expansion fan-out).
type FilterClause struct {
	Field  string
	Values []string
}

// Parsed is the output of the query parser (C1).
type Parsed struct {
	SourceHint []models.Source
	Filters    []FilterClause
	Text       string
	Raw        bool
}

// HasHint reports whether the query carried an explicit source-hint prefix.
func (p Parsed) HasHint() bool { return len(p.SourceHint) > 0 }

// HintsSource reports whether source is among the parsed hints.
func (p Parsed) HintsSource(source models.Source) bool {
	for _, s := range p.SourceHint {
		if s == source {
			return true
		}
	}
	return false
}
