package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/harborglass/mediasearch/internal/models"
)

// weightedField is one OR-term in a source's primary full-text clause.
type weightedField struct {
	field  string
	weight float64
}

// sourceSpec describes a single indexed source's query shape (spec.md §4.3).
type sourceSpec struct {
	source        models.Source
	weightedOR    []weightedField
	tagFields     []string // constraint fields this source accepts from Filters
	sortField     string   // primary tie-break field after relevance
	secondarySort string   // second tie-break field, "" if none
}

var specs = map[models.Source]sourceSpec{
	models.SourceTV: {
		source: models.SourceTV,
		weightedOR: []weightedField{
			{"search_title", 5}, {"cast", 2}, {"director", 2}, {"keywords", 1},
		},
		tagFields:     []string{"mc_type", "genres", "origin_country", "us_rating", "year", "cast_names"},
		sortField:     "popularity",
		secondarySort: "year",
	},
	models.SourceMovie: {
		source: models.SourceMovie,
		weightedOR: []weightedField{
			{"search_title", 5}, {"cast", 2}, {"director", 2}, {"keywords", 1},
		},
		tagFields:     []string{"mc_type", "genres", "origin_country", "us_rating", "year", "cast_names"},
		sortField:     "popularity",
		secondarySort: "year",
	},
	models.SourcePerson: {
		source: models.SourcePerson,
		weightedOR: []weightedField{
			{"search_title", 5}, {"also_known_as", 3}, {"known_for_titles", 1},
		},
		tagFields: []string{"mc_subtype", "known_for_department"},
		sortField: "popularity",
	},
	models.SourcePodcast: {
		source: models.SourcePodcast,
		weightedOR: []weightedField{
			{"search_title", 5}, {"author", 3}, {"categories", 1},
		},
		tagFields: []string{"language", "categories"},
		sortField: "popularity",
	},
	models.SourceBook: {
		source: models.SourceBook,
		weightedOR: []weightedField{
			{"search_title", 5}, {"author_search", 3}, {"subjects_search", 1},
		},
		tagFields: []string{"language", "subjects_normalized", "first_publish_year"},
		sortField: "popularity_score",
	},
	models.SourceAuthor: {
		source:    models.SourceAuthor,
		weightedOR: []weightedField{{"search_title", 5}, {"name", 4}},
		sortField: "quality_score",
	},
}

// SourceQuery is a fully-built index query the executor (C4) can run.
type SourceQuery struct {
	Source   models.Source
	NoOp     bool // short-query policy: executor must not contact the index
	Index    string
	RediSearchQuery string
	SortField       string
	SecondarySort   string
	Limit           int
}

// minTextRunes is the short-query threshold (spec.md §4.3): fewer
// non-whitespace characters than this yields a no-op query.
const minTextRunes = 2

// Build renders an index query for source from a parsed query, honoring
// the short-query and prefix/autocomplete policies (spec.md §4.3).
func Build(source models.Source, parsed Parsed, mode models.Mode, limit int) SourceQuery {
	spec, ok := specs[source]
	if !ok {
		return SourceQuery{Source: source, NoOp: true}
	}

	trimmed := strings.TrimSpace(parsed.Text)
	if countNonSpace(trimmed) < minTextRunes {
		return SourceQuery{Source: source, NoOp: true}
	}

	textClause := buildTextClause(spec.weightedOR, trimmed, mode)
	tagClauses := buildTagClauses(parsed.Filters, spec.tagFields)

	full := textClause
	for _, tc := range tagClauses {
		full = full + " " + tc
	}

	return SourceQuery{
		Source:          source,
		Index:           "idx:" + string(source),
		RediSearchQuery: full,
		SortField:       spec.sortField,
		SecondarySort:   spec.secondarySort,
		Limit:           limit,
	}
}

// buildTextClause renders the weighted OR clause. In autocomplete mode the
// trailing whitespace-free token becomes a RediSearch prefix term on every
// weighted field; in search mode it stays exact (spec.md §4.3).
func buildTextClause(fields []weightedField, text string, mode models.Mode) string {
	term := text
	if mode == models.ModeAutocomplete {
		term = term + "*"
	}
	escaped := escapeRediSearch(term)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("(@%s:(%s)=>{$weight: %s})", f.field, escaped, formatWeight(f.weight))
	}
	return "(" + strings.Join(parts, " | ") + ")"
}

// buildTagClauses renders the conjunctive tag-filter clauses. Only fields
// this source declares as valid constraints are honored; an unsupported
// field in the parsed filters is silently dropped rather than forwarded
// to the index as free text (spec.md §9 "Tag filters").
func buildTagClauses(filters []FilterClause, allowed []string) []string {
	allowedSet := make(map[string]bool, len(allowed))
	for _, f := range allowed {
		allowedSet[f] = true
	}

	var clauses []string
	for _, fc := range filters {
		if !allowedSet[fc.Field] {
			continue
		}
		if isRangeField(fc.Field) {
			if r := buildRangeClause(fc.Field, fc.Values); r != "" {
				clauses = append(clauses, r)
			}
			continue
		}
		escapedValues := make([]string, len(fc.Values))
		for i, v := range fc.Values {
			escapedValues[i] = escapeRediSearch(v)
		}
		clauses = append(clauses, fmt.Sprintf("@%s:{%s}", fc.Field, strings.Join(escapedValues, "|")))
	}
	return clauses
}

// rangeFields are numeric fields the builder renders as RediSearch numeric
// ranges rather than tag-set membership (spec.md §4.3: year, first_publish_year).
var rangeFields = map[string]bool{"year": true, "first_publish_year": true}

func isRangeField(field string) bool { return rangeFields[field] }

// buildRangeClause renders "@field:[min max]". A single value is treated
// as an exact-year match (min == max); anything unparsable is dropped
// rather than forwarded to the index, per the normalizer's "never push raw
// user text into the index as a tag" rule.
func buildRangeClause(field string, values []string) string {
	if len(values) == 0 {
		return ""
	}
	year, err := strconv.Atoi(values[0])
	if err != nil {
		return ""
	}
	return fmt.Sprintf("@%s:[%d %d]", field, year, year)
}

func countNonSpace(s string) int {
	n := 0
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' {
			n++
		}
	}
	return n
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', 1, 64)
}

// escapeRediSearch escapes characters RediSearch's query parser treats as
// syntax (https://redis.io/docs/stack/search/reference/query_syntax/).
var rediSearchSpecial = strings.NewReplacer(
	"-", "\\-", "@", "\\@", "{", "\\{", "}", "\\}", "(", "\\(", ")", "\\)",
	"[", "\\[", "]", "\\]", "\"", "\\\"", "'", "\\'", ":", "\\:", "|", "\\|",
	"~", "\\~", "*", "\\*", "!", "\\!",
)

func escapeRediSearch(term string) string {
	// buildTextClause appends autocomplete's trailing "*" to term before
	// this function runs, so a trailing "*" is left unescaped as the
	// prefix wildcard.
	if strings.HasSuffix(term, "*") {
		return rediSearchSpecial.Replace(strings.TrimSuffix(term, "*")) + "*"
	}
	return rediSearchSpecial.Replace(term)
}
