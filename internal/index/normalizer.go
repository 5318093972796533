package index

import (
	"strconv"
	"strings"

	"github.com/harborglass/mediasearch/internal/models"
)

// Normalize implements the document normalizer (C5): it turns a flat
// RediSearch hash reply into the typed item spec.md §3 defines for the
// source, deriving mc_id and SearchTitle the same way for every source
// (spec.md §4.5 "uniform envelope, source-specific body").
func Normalize(source models.Source, fields map[string]string) interface{} {
	base := models.Item{
		McID:        mcID(source, fields),
		McType:      mcType(source),
		McSubtype:   models.Subtype(fields["mc_subtype"]),
		Source:      source,
		SourceID:    fields["source_id"],
		SearchTitle: searchTitle(fields),
		Popularity:  parseFloat(fields["popularity"]),
		Rating:      parseFloat(fields["rating"]),
		Image:       fields["image"],
		Overview:    fields["overview"],
	}
	base.SetCanonicalName(canonicalize(base.SearchTitle))

	switch source {
	case models.SourceTV, models.SourceMovie:
		return normalizeMedia(base, fields)
	case models.SourcePerson:
		return normalizePerson(base, fields)
	case models.SourcePodcast:
		return normalizePodcast(base, fields)
	case models.SourceBook:
		return normalizeBook(base, fields)
	case models.SourceAuthor:
		return normalizeAuthor(base, fields)
	default:
		return base
	}
}

// mcID mints the cross-source-unique identifier: "<source>_<source_id>"
// unless the index already carries one (spec.md §3 "mc_id").
func mcID(source models.Source, fields map[string]string) string {
	if v := fields["mc_id"]; v != "" {
		return v
	}
	return string(source) + "_" + fields["source_id"]
}

func mcType(source models.Source) models.Type {
	switch source {
	case models.SourceTV:
		return models.TypeTV
	case models.SourceMovie:
		return models.TypeMovie
	case models.SourcePerson:
		return models.TypePerson
	case models.SourcePodcast:
		return models.TypePodcast
	case models.SourceBook:
		return models.TypeBook
	case models.SourceAuthor:
		return models.TypePerson
	default:
		return ""
	}
}

// searchTitle prefers an explicit search_title field (set at index time
// to the normalized display title) but falls back to "title" for
// documents indexed before the field was introduced.
func searchTitle(fields map[string]string) string {
	if v := fields["search_title"]; v != "" {
		return v
	}
	return fields["title"]
}

func normalizeMedia(base models.Item, fields map[string]string) models.MediaItem {
	var director *models.Director
	if name := fields["director"]; name != "" {
		director = &models.Director{Name: name, ID: fields["director_id"]}
	}
	return models.MediaItem{
		Item:            base,
		Year:            parseInt(fields["year"]),
		Genres:          splitPipe(fields["genres"]),
		Cast:            splitPipe(fields["cast"]),
		CastNames:       splitPipe(fields["cast_names"]),
		CastIDs:         splitPipe(fields["cast_ids"]),
		Director:        director,
		Keywords:        splitPipe(fields["keywords"]),
		OriginCountry:   splitPipe(fields["origin_country"]),
		ReleaseDate:     fields["release_date"],
		FirstAirDate:    fields["first_air_date"],
		LastAirDate:     fields["last_air_date"],
		USRating:        fields["us_rating"],
		Runtime:         parseInt(fields["runtime"]),
		NumberOfSeasons: parseInt(fields["number_of_seasons"]),
		Networks:        splitNetworks(fields["networks"]),
		CreatedBy:       splitPipe(fields["created_by"]),
		SeriesStatus:    fields["series_status"],
		WatchProviders:  splitWatchProviders(fields["watch_providers"]),
	}
}

func normalizePerson(base models.Item, fields map[string]string) models.PersonItem {
	return models.PersonItem{
		Item:               base,
		KnownForDepartment: fields["known_for_department"],
		Birthday:           fields["birthday"],
		Deathday:           fields["deathday"],
		PlaceOfBirth:       fields["place_of_birth"],
		Age:                parseInt(fields["age"]),
		IsDeceased:         fields["deathday"] != "",
		KnownForTitles:     splitPipe(fields["known_for_titles"]),
		AlsoKnownAs:        fields["also_known_as"],
	}
}

func normalizePodcast(base models.Item, fields map[string]string) models.PodcastItem {
	return models.PodcastItem{
		Item:           base,
		URL:            fields["url"],
		Site:           fields["site"],
		Author:         fields["author"],
		Language:       fields["language"],
		Categories:     splitPipe(fields["categories"]),
		EpisodeCount:   parseInt(fields["episode_count"]),
		ItunesID:       fields["itunes_id"],
		PodcastGUID:    fields["podcast_guid"],
		LastUpdateTime: parseInt64(fields["last_update_time"]),
	}
}

func normalizeBook(base models.Item, fields map[string]string) models.BookItem {
	return models.BookItem{
		Item:               base,
		Author:             fields["author"],
		AuthorName:         splitPipe(fields["author_name"]),
		ISBN:               splitPipe(fields["isbn"]),
		PrimaryISBN13:      fields["primary_isbn_13"],
		FirstPublishYear:   parseInt(fields["first_publish_year"]),
		Subjects:           splitPipe(fields["subjects"]),
		SubjectsNormalized: splitPipe(fields["subjects_normalized"]),
		RatingsAverage:     parseFloat(fields["ratings_average"]),
		RatingsCount:       parseInt(fields["ratings_count"]),
		CoverURLs: models.CoverURLs{
			Small:  fields["cover_small"],
			Medium: fields["cover_medium"],
			Large:  fields["cover_large"],
		},
		PopularityScore: parseFloat(fields["popularity_score"]),
	}
}

func normalizeAuthor(base models.Item, fields map[string]string) models.AuthorItem {
	return models.AuthorItem{
		Item:           base,
		Bio:            fields["bio"],
		BirthDate:      fields["birth_date"],
		DeathDate:      fields["death_date"],
		WorkCount:      parseInt(fields["work_count"]),
		WikidataID:     fields["wikidata_id"],
		OpenLibraryKey: fields["open_library_key"],
		QualityScore:   parseFloat(fields["quality_score"]),
	}
}

// canonicalize lowercases and strips punctuation/whitespace for exact-match
// comparison (C8 uses this, not fuzzy matching, per spec.md §4.8).
func canonicalize(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func splitPipe(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "|")
}

// splitNetworks parses a "name:id|name:id" field into Network values;
// entries without a colon get an empty ID.
func splitNetworks(s string) []models.Network {
	parts := splitPipe(s)
	if parts == nil {
		return nil
	}
	out := make([]models.Network, len(parts))
	for i, p := range parts {
		name, id, _ := strings.Cut(p, ":")
		out[i] = models.Network{Name: name, ID: id}
	}
	return out
}

// splitWatchProviders parses a "name:type|name:type" field.
func splitWatchProviders(s string) []models.WatchProvider {
	parts := splitPipe(s)
	if parts == nil {
		return nil
	}
	out := make([]models.WatchProvider, len(parts))
	for i, p := range parts {
		name, typ, _ := strings.Cut(p, ":")
		out[i] = models.WatchProvider{Name: name, Type: typ}
	}
	return out
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

func parseInt64(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}
