package query

import (
	"strings"
	"time"
	"unicode"

	"github.com/harborglass/mediasearch/internal/cache"
	"github.com/harborglass/mediasearch/internal/taxonomy"
)

// Normalizer implements the tag normalizer (C2): deterministic, total,
// idempotent token normalization plus IPTC taxonomy expansion.
//
// A bloom filter gives an O(1) negative answer for the overwhelming
// majority of free-text tokens that are not taxonomy entries, so the
// normalizer only pays for the taxonomy lookup when a token might expand
// (spec.md §4.2, SPEC_FULL.md §4.1–4.3). Normalized tokens are themselves
// cached since the same filter value recurs across many requests.
type Normalizer struct {
	known *cache.BloomFilter
	trie  *cache.Trie
	cache *cache.Cache
}

// NewNormalizer builds a Normalizer seeded with the IPTC taxonomy table.
func NewNormalizer() *Normalizer {
	tokens := taxonomy.AllTokens()
	bloom := cache.NewBloomFilter(len(tokens)*4+16, 0.01)
	trie := cache.NewTrie()
	for _, tok := range tokens {
		bloom.Add(tok)
		trie.Insert(tok)
	}
	return &Normalizer{
		known: bloom,
		trie:  trie,
		cache: cache.New(10 * time.Minute),
	}
}

// Normalize lowercases, strips non-alphanumerics (collapsing inter-word
// separators to a single "_"), and returns the resulting token. It never
// fails and is idempotent: Normalize(Normalize(x)) == Normalize(x).
func (n *Normalizer) Normalize(token string) string {
	if v, ok := n.cache.Get(token); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	out := normalizeRaw(token)
	n.cache.Set(token, out)
	return out
}

// normalizeRaw does the actual character-level work; Normalize wraps it
// with a cache.
func normalizeRaw(token string) string {
	var b strings.Builder
	b.Grow(len(token))
	lastWasSep := true // trims leading separators
	for _, r := range strings.ToLower(token) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastWasSep = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !lastWasSep {
				b.WriteByte('_')
				lastWasSep = true
			}
		default:
			// Other punctuation is dropped, not treated as a separator,
			// so "rock'n'roll" becomes "rocknroll"; "sci-fi" and "sci fi"
			// both become "sci_fi", while "scifi" stays distinct.
		}
	}
	out := strings.TrimSuffix(b.String(), "_")
	return out
}

// Expand normalizes a token and, if it is (or aliases) a known IPTC
// category, returns the full disjunction of category + ancestors for use
// as a tag filter's Values. An unknown token expands to itself only.
func (n *Normalizer) Expand(token string) []string {
	normalized := n.Normalize(token)
	if n.known.Test(normalized) {
		return taxonomy.Expand(normalized)
	}
	return []string{normalized}
}

// Suggest returns up to limit known taxonomy tokens starting with prefix,
// after normalization. Neither the parser (C1) nor the query builder
// (C3) calls it.
func (n *Normalizer) Suggest(prefix string, limit int) []string {
	results := n.trie.AutocompleteWithLimit(n.Normalize(prefix), limit)
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Value
	}
	return out
}
