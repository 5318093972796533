package models

// Link is a single outbound link attached to a brokered item (e.g. the
// provider's canonical page, a purchase link, a streaming link).
type Link struct {
	Rel string `json:"rel"`
	URL string `json:"url"`
}

// Image is a provider-supplied image reference with an optional role.
type Image struct {
	URL  string `json:"url"`
	Role string `json:"role,omitempty"` // thumbnail, poster, banner, ...
}

// ProviderError describes why a brokered adapter could not produce a
// result. No adapter populates it: a failed Search returns a Go error,
// and the orchestrator (C7) reports that source with an empty list and
// no error data on the envelope.
type ProviderError struct {
	Code       string `json:"code"`
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

// Brokered is the envelope shared by every external-provider item type
// (spec.md §3 "Brokered items").
type Brokered struct {
	Item

	Links      []Link            `json:"links,omitempty"`
	Images     []Image           `json:"images,omitempty"`
	Metrics    map[string]float64 `json:"metrics,omitempty"`
	ExternalIDs map[string]string `json:"external_ids,omitempty"`
	Error      *ProviderError    `json:"error,omitempty"`
	StatusCode int               `json:"status_code,omitempty"`
	SortOrder  int               `json:"sort_order"`
}

// NewsItem is a brokered news-article result.
type NewsItem struct {
	Brokered

	PublishedAt string `json:"published_at,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
	Author      string `json:"author,omitempty"`
}

// VideoItem is a brokered video result.
type VideoItem struct {
	Brokered

	DurationSeconds int    `json:"duration_seconds,omitempty"`
	Channel         string `json:"channel,omitempty"`
	PublishedAt     string `json:"published_at,omitempty"`
}

// RatingsItem is a brokered critical/audience rating result.
type RatingsItem struct {
	Brokered

	CriticScore  float64 `json:"critic_score,omitempty"`
	AudienceScore float64 `json:"audience_score,omitempty"`
}

// ArtistItem is a brokered music artist result.
type ArtistItem struct {
	Brokered

	Genres      []string `json:"genres,omitempty"`
	FollowerCount int    `json:"follower_count,omitempty"`
}

// AlbumItem is a brokered music album result.
type AlbumItem struct {
	Brokered

	Artist      string `json:"artist,omitempty"`
	ReleaseDate string `json:"release_date,omitempty"`
	TrackCount  int    `json:"track_count,omitempty"`
}
