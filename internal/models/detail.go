package models

// DetailsRequest is the body of POST /api/details (spec.md §6).
type DetailsRequest struct {
	McID        string `json:"mc_id" validate:"required"`
	RSSDetails  bool   `json:"rss_details,omitempty"`
}

// DetailsErrorResponse is returned for an unknown or malformed mc_id.
type DetailsErrorResponse struct {
	Error string `json:"error"`
	McID  string `json:"mc_id,omitempty"`
}

// MediaDetailResponse wraps a single movie/tv detail lookup.
type MediaDetailResponse struct {
	Media MediaItem `json:"media"`
}

// PersonDetailResponse wraps a single person detail lookup.
type PersonDetailResponse struct {
	Person PersonItem `json:"person"`
}

// PodcastDetailResponse wraps a single podcast detail lookup. RSSDetails
// (fetched live from the feed URL, not the index) is populated only when
// the request set rss_details=true.
type PodcastDetailResponse struct {
	Podcast    PodcastItem `json:"podcast"`
	RSSDetails *RSSDetails `json:"rss_details,omitempty"`
}

// RSSDetails is live-fetched supplementary data for a podcast feed.
type RSSDetails struct {
	LatestEpisodeTitle string `json:"latest_episode_title,omitempty"`
	LatestEpisodeDate  string `json:"latest_episode_date,omitempty"`
}

// AuthorDetailResponse wraps a single author detail lookup.
type AuthorDetailResponse struct {
	Author AuthorItem `json:"author"`
}

// BookDetailResponse wraps a single book detail lookup.
type BookDetailResponse struct {
	Book BookItem `json:"book"`
}
