// Package taxonomy expands a free-text filter token into its IPTC Media
// Topics parent categories (spec.md §4.2 "Tag Normalizer").
//
// The table below is a representative slice of the IPTC Media Topics
// taxonomy (https://iptc.org/standards/media-topics/), hand-curated for the
// genre/category vocabularies this service's sources actually use (movie
// and TV genres, podcast/book subject tags). It is not the full IPTC
// NewsCodes tree — only entries a query filter could plausibly carry.
package taxonomy

// aliases maps an informal/abbreviated spelling to its canonical category.
// Normalization already lowercases, turns runs of whitespace, "-" and "_"
// into a single "_", and drops other punctuation before this lookup runs,
// so keys here are post-normalization forms.
var aliases = map[string]string{
	"sci_fi": "science_fiction",
	"scifi":  "science_fiction",
}

// ancestors maps a canonical category to its parent chain, narrowest
// first. A category with no entry has no ancestors beyond itself.
var ancestors = map[string][]string{
	"science_fiction": {"fiction", "speculative"},
	"fantasy":         {"fiction", "speculative"},
	"horror":          {"fiction", "speculative"},
	"thriller":        {"fiction", "suspense"},
	"mystery":         {"fiction", "suspense"},
	"crime":           {"fiction", "suspense"},
	"romance":         {"fiction"},
	"drama":           {"fiction"},
	"comedy":          {"fiction"},
	"action":          {"fiction"},
	"adventure":       {"fiction"},
	"animation":       {"fiction"},
	"documentary":     {"nonfiction"},
	"biography":       {"nonfiction"},
	"history":         {"nonfiction"},
	"true_crime":      {"crime", "fiction", "suspense"},
	"self_help":       {"nonfiction"},
	"business":        {"nonfiction"},
	"politics":        {"nonfiction", "current_affairs"},
	"news":            {"current_affairs"},
	"sports":          {"current_affairs"},
	"technology":      {"nonfiction"},
	"science":         {"nonfiction"},
	"health":          {"nonfiction"},
	"music":           {"arts_culture"},
	"arts":            {"arts_culture"},
	"kids_family":     {"family"},
	"young_adult":     {"fiction"},
	"classics":        {"fiction"},
	"poetry":          {"arts_culture"},
	"religion":        {"nonfiction"},
	"philosophy":      {"nonfiction"},
	"war":             {"history", "nonfiction"},
	"western":         {"fiction"},
	"musical":         {"fiction", "arts_culture"},
}

// canonicalize resolves an alias to its canonical category, or returns the
// token unchanged if it has no alias.
func canonicalize(normalizedToken string) string {
	if canon, ok := aliases[normalizedToken]; ok {
		return canon
	}
	return normalizedToken
}

// Expand returns a token's canonical category plus its IPTC ancestor
// chain, e.g. Expand("sci_fi") -> []string{"science_fiction", "fiction",
// "speculative"}. A token with no taxonomy entry expands to itself only.
func Expand(normalizedToken string) []string {
	canon := canonicalize(normalizedToken)
	chain, ok := ancestors[canon]
	if !ok {
		return []string{canon}
	}
	out := make([]string, 0, len(chain)+1)
	out = append(out, canon)
	out = append(out, chain...)
	return out
}

// Known reports whether a token (after alias resolution) has a taxonomy
// entry. The tag normalizer does not call it; it tests its own bloom
// filter and then calls Expand.
func Known(normalizedToken string) bool {
	canon := canonicalize(normalizedToken)
	_, ok := ancestors[canon]
	return ok || canon != normalizedToken
}

// AllTokens returns every token (aliases and canonical categories) with a
// taxonomy entry, used to seed the normalizer's bloom filter and trie at
// startup.
func AllTokens() []string {
	tokens := make([]string, 0, len(ancestors)+len(aliases))
	for k := range ancestors {
		tokens = append(tokens, k)
	}
	for k := range aliases {
		tokens = append(tokens, k)
	}
	return tokens
}
