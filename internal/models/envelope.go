package models

// Mode is the request's autocomplete-vs-search intent (spec.md §3, §4.3).
type Mode string

const (
	ModeAutocomplete Mode = "autocomplete"
	ModeSearch       Mode = "search"
)

// Transport picks batch-JSON vs SSE-stream delivery (spec.md §3).
type Transport string

const (
	TransportBatch  Transport = "batch"
	TransportStream Transport = "stream"
)

// Request is the parsed, validated request envelope (spec.md §3).
type Request struct {
	Q         string    `json:"q" validate:"max=512"`
	Sources   []string  `json:"sources,omitempty" validate:"dive,oneof=tv movie person podcast author book news video ratings artist album"`
	Filters   string    `json:"filters,omitempty" validate:"max=1024"`
	Limit     int       `json:"limit,omitempty" validate:"gte=0,lte=200"`
	Raw       bool      `json:"raw,omitempty"`
	Mode      Mode      `json:"mode" validate:"required,oneof=autocomplete search"`
	Transport Transport `json:"transport" validate:"required,oneof=batch stream"`
}

// DefaultLimit is applied when the request omits Limit.
const DefaultLimit = 20

// Response is the fixed-key-set batch response envelope (spec.md §3).
//
// Invariant: every key is always present; missing arrays are empty slices,
// never nil, so they serialize as `[]` rather than `null`.
type Response struct {
	ExactMatch interface{}   `json:"exact_match"`
	TV         []interface{} `json:"tv"`
	Movie      []interface{} `json:"movie"`
	Person     []interface{} `json:"person"`
	Podcast    []interface{} `json:"podcast"`
	Author     []interface{} `json:"author"`
	Book       []interface{} `json:"book"`
	News       []interface{} `json:"news"`
	Video      []interface{} `json:"video"`
	Ratings    []interface{} `json:"ratings"`
	Artist     []interface{} `json:"artist"`
	Album      []interface{} `json:"album"`
	SourceHint []string      `json:"source_hint,omitempty"`
}

// NewResponse returns a Response with every array initialized to an
// empty (non-nil) slice, satisfying the "never null" invariant up front.
func NewResponse() *Response {
	return &Response{
		TV:      []interface{}{},
		Movie:   []interface{}{},
		Person:  []interface{}{},
		Podcast: []interface{}{},
		Author:  []interface{}{},
		Book:    []interface{}{},
		News:    []interface{}{},
		Video:   []interface{}{},
		Ratings: []interface{}{},
		Artist:  []interface{}{},
		Album:   []interface{}{},
	}
}

// SlotFor returns a pointer to the envelope slice for a given source tag,
// or nil for an unknown tag. Centralizing this mapping keeps the transport
// layer (C10/C11) from hardcoding a switch per call site.
func (r *Response) SlotFor(source Source) *[]interface{} {
	switch source {
	case SourceTV:
		return &r.TV
	case SourceMovie:
		return &r.Movie
	case SourcePerson:
		return &r.Person
	case SourcePodcast:
		return &r.Podcast
	case SourceAuthor:
		return &r.Author
	case SourceBook:
		return &r.Book
	case SourceNews:
		return &r.News
	case SourceVideo:
		return &r.Video
	case SourceRatings:
		return &r.Ratings
	case SourceArtist:
		return &r.Artist
	case SourceAlbum:
		return &r.Album
	default:
		return nil
	}
}
