package query

import (
	"regexp"
	"strings"

	"github.com/harborglass/mediasearch/internal/models"
)

// hintPrefix matches a leading "tag[,tag...]:" source-hint prefix.
var hintPrefix = regexp.MustCompile(`^([A-Za-z]+(?:\s*,\s*[A-Za-z]+)*)\s*:\s*`)

// bracketFilter matches a "[field=value]" filter segment.
var bracketFilter = regexp.MustCompile(`\[\s*([A-Za-z_]+)\s*=\s*([^\]]+)\]`)

// keywordFilter matches a 'keyword:"value"' filter segment. The field name
// is fixed at "keyword" by spec.md §4.1's example syntax.
var keywordFilter = regexp.MustCompile(`keyword:"([^"]*)"`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Parser implements the query parser (C1): split raw input into
// {source_hint?, filters[], text}. It never fails; the empty string is a
// legal parse (spec.md §4.1).
type Parser struct {
	normalizer *Normalizer
}

// NewParser builds a Parser backed by the given tag normalizer.
func NewParser(normalizer *Normalizer) *Parser {
	return &Parser{normalizer: normalizer}
}

// Parse implements C1. filtersCSV is the request's separate `filters=<csv>`
// parameter (spec.md §6): a comma-separated list of "field=value" pairs,
// normalized and expanded the same way a `[field=value]` segment inside q
// is, then merged conjunctively with whatever filters q itself carries. If
// raw is true, q's own text is forwarded verbatim as Text with no bracket
// or keyword parsing (spec.md §4.1 "raw=true"), but filtersCSV still
// applies since it travels outside q.
func (p *Parser) Parse(q, filtersCSV string, raw bool) Parsed {
	if raw {
		return Parsed{Text: q, Raw: true, Filters: p.parseFiltersCSV(filtersCSV)}
	}

	remaining := q
	var hints []models.Source

	if m := hintPrefix.FindStringSubmatch(remaining); m != nil {
		for _, tok := range strings.Split(m[1], ",") {
			tok = strings.ToLower(strings.TrimSpace(tok))
			if source, ok := knownSourceTags[tok]; ok {
				hints = append(hints, source)
			}
		}
		// Only consume the prefix if at least one token resolved to a
		// known source tag; otherwise "foo:bar" is ordinary text.
		if len(hints) > 0 {
			remaining = remaining[len(m[0]):]
		}
	}

	var filters []FilterClause

	remaining = bracketFilter.ReplaceAllStringFunc(remaining, func(seg string) string {
		m := bracketFilter.FindStringSubmatch(seg)
		field := p.normalizer.Normalize(m[1])
		filters = append(filters, FilterClause{Field: field, Values: p.normalizer.Expand(m[2])})
		return " "
	})

	remaining = keywordFilter.ReplaceAllStringFunc(remaining, func(seg string) string {
		m := keywordFilter.FindStringSubmatch(seg)
		filters = append(filters, FilterClause{Field: "keyword", Values: p.normalizer.Expand(m[1])})
		return " "
	})

	text := strings.TrimSpace(whitespaceRun.ReplaceAllString(remaining, " "))
	filters = append(filters, p.parseFiltersCSV(filtersCSV)...)

	return Parsed{SourceHint: hints, Filters: filters, Text: text}
}

// parseFiltersCSV parses the "field=value,field=value" request parameter
// into FilterClause values, one clause per comma-separated segment. A
// segment without "=" is dropped rather than forwarded to the index as an
// unconstrained field.
func (p *Parser) parseFiltersCSV(csv string) []FilterClause {
	if csv == "" {
		return nil
	}
	var filters []FilterClause
	for _, seg := range strings.Split(csv, ",") {
		field, value, ok := strings.Cut(strings.TrimSpace(seg), "=")
		if !ok || field == "" {
			continue
		}
		field = p.normalizer.Normalize(strings.TrimSpace(field))
		filters = append(filters, FilterClause{Field: field, Values: p.normalizer.Expand(strings.TrimSpace(value))})
	}
	return filters
}
