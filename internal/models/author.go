package models

// AuthorItem is the author result shape (spec.md §3 "AuthorItem").
type AuthorItem struct {
	Item

	Bio            string  `json:"bio,omitempty"`
	BirthDate      string  `json:"birth_date,omitempty"`
	DeathDate      string  `json:"death_date,omitempty"`
	WorkCount      int     `json:"work_count,omitempty"`
	WikidataID     string  `json:"wikidata_id,omitempty"`
	OpenLibraryKey string  `json:"openlibrary_key,omitempty"`
	QualityScore   float64 `json:"quality_score,omitempty"`
}
