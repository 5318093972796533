package models

// CastMember is a display-ready cast entry. In the exact-match payload
// (spec.md §4.8) Cast is restructured from parallel string arrays into
// this shape, zipped positionally with CastIDs; a missing ID is nil.
type CastMember struct {
	Name string  `json:"name"`
	ID   *string `json:"id"`
}

// Director is a single crew credit; nil for TV series.
type Director struct {
	Name string `json:"name"`
	ID   string `json:"id,omitempty"`
}

// Network is a TV broadcaster/platform credit.
type Network struct {
	Name string `json:"name"`
	ID   string `json:"id,omitempty"`
}

// WatchProvider names a streaming/rental availability source.
type WatchProvider struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"` // flatrate, rent, buy
}

// MediaItem is the movie/tv result shape (spec.md §3 "MediaItem").
type MediaItem struct {
	Item

	Year      int      `json:"year,omitempty"`
	Genres    []string `json:"genres,omitempty"`
	Cast      []string `json:"cast,omitempty"`
	CastNames []string `json:"cast_names,omitempty"`
	CastIDs   []string `json:"cast_ids,omitempty"`
	Director  *Director `json:"director"`
	Keywords  []string `json:"keywords,omitempty"`

	OriginCountry []string `json:"origin_country,omitempty"`
	ReleaseDate   string   `json:"release_date,omitempty"`
	FirstAirDate  string   `json:"first_air_date,omitempty"`
	LastAirDate   string   `json:"last_air_date,omitempty"`
	USRating      string   `json:"us_rating,omitempty"`
	Runtime       int      `json:"runtime,omitempty"`

	// Series-only fields; zero-valued for movies.
	NumberOfSeasons int             `json:"number_of_seasons,omitempty"`
	Networks        []Network       `json:"networks,omitempty"`
	CreatedBy       []string        `json:"created_by,omitempty"`
	SeriesStatus    string          `json:"series_status,omitempty"`

	WatchProviders []WatchProvider `json:"watch_providers,omitempty"`
}

// ExactMatchMedia is the exact-match payload shape for a MediaItem
// (spec.md §4.8): identical to MediaItem except Cast/CastIDs are
// restructured into zipped {name,id|null} pairs.
type ExactMatchMedia struct {
	MediaItem

	Cast []CastMember `json:"cast"`
}

// ToExactMatch builds the exact-match payload, zipping Cast with CastIDs
// and dropping the raw parallel-array fields from the embedded MediaItem's
// JSON output via the shadowing Cast field above.
func (m MediaItem) ToExactMatch() ExactMatchMedia {
	return ExactMatchMedia{
		MediaItem: m,
		Cast:      ZipCast(m.Cast, m.CastIDs),
	}
}

// ZipCast builds the [{name,id|null}] pairing required of exact-match
// media payloads, zipping Cast with CastIDs positionally.
func ZipCast(cast, castIDs []string) []CastMember {
	members := make([]CastMember, len(cast))
	for i, name := range cast {
		member := CastMember{Name: name}
		if i < len(castIDs) && castIDs[i] != "" {
			id := castIDs[i]
			member.ID = &id
		}
		members[i] = member
	}
	return members
}
