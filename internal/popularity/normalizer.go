// Package popularity implements the popularity normalizer (C9): it maps
// each source's raw score onto a common 0-100 scale so results from
// different sources can be compared and displayed consistently.
package popularity

import "github.com/harborglass/mediasearch/internal/models"

// Range is a source's observed score distribution (spec.md §4.9).
type Range struct {
	Min float64
	Max float64
}

// DefaultRanges match spec.md §4.9's worked examples. New accepts
// per-source overrides, but no configuration (C14) entry sets them and
// cmd/server passes none, so these ranges are the ones in effect.
var DefaultRanges = map[models.Source]Range{
	models.SourceMovie:   {Min: 0, Max: 1000},
	models.SourceTV:      {Min: 0, Max: 1000},
	models.SourcePerson:  {Min: 0, Max: 1000},
	models.SourcePodcast: {Min: 0, Max: 29},
	models.SourceBook:    {Min: 0, Max: 100},
	models.SourceAuthor:  {Min: 0, Max: 100},
}

// Normalizer maps a source's raw score to 0-100 using a per-source range.
type Normalizer struct {
	ranges map[models.Source]Range
}

// New builds a Normalizer seeded with ranges, falling back to
// DefaultRanges for any source not present in ranges.
func New(ranges map[models.Source]Range) *Normalizer {
	merged := make(map[models.Source]Range, len(DefaultRanges))
	for source, r := range DefaultRanges {
		merged[source] = r
	}
	for source, r := range ranges {
		merged[source] = r
	}
	return &Normalizer{ranges: merged}
}

// Normalize maps raw score r for source onto [0, 100], deterministically
// and monotonically (spec.md §4.9): 100 * clamp01((r - min) / (max - min)).
func (n *Normalizer) Normalize(source models.Source, r float64) float64 {
	rng, ok := n.ranges[source]
	if !ok || rng.Max == rng.Min {
		return 0
	}
	fraction := (r - rng.Min) / (rng.Max - rng.Min)
	return 100 * clamp01(fraction)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
