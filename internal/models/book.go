package models

// CoverURLs holds the three sizes OpenLibrary-style providers expose.
type CoverURLs struct {
	Small  string `json:"small,omitempty"`
	Medium string `json:"medium,omitempty"`
	Large  string `json:"large,omitempty"`
}

// BookItem is the book result shape (spec.md §3 "BookItem").
type BookItem struct {
	Item

	Author               string    `json:"author,omitempty"`
	AuthorName           []string  `json:"author_name,omitempty"`
	ISBN                 []string  `json:"isbn,omitempty"`
	PrimaryISBN13        string    `json:"primary_isbn13,omitempty"`
	FirstPublishYear     int       `json:"first_publish_year,omitempty"`
	Subjects             []string  `json:"subjects,omitempty"`
	SubjectsNormalized   []string  `json:"subjects_normalized,omitempty"`
	RatingsAverage       float64   `json:"ratings_average,omitempty"`
	RatingsCount         int       `json:"ratings_count,omitempty"`
	CoverURLs            CoverURLs `json:"cover_urls"`
	PopularityScore      float64   `json:"popularity_score,omitempty"`
}
