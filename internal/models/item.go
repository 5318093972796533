// Package models defines the public result shapes returned by the search
// and autocomplete API: the common Item envelope, per-type structured
// fields, and the request/response envelopes that bound every transport.
package models

// Type is the fixed set of top-level result kinds an Item can carry.
type Type string

const (
	TypeMovie       Type = "movie"
	TypeTV          Type = "tv"
	TypePerson      Type = "person"
	TypePodcast     Type = "podcast"
	TypeBook        Type = "book"
	TypeNewsArticle Type = "news_article"
	TypeVideo       Type = "video"
	TypeMusicAlbum  Type = "music_album"
)

// Subtype refines mc_type "person" into the role the person is known for.
type Subtype string

const (
	SubtypeActor       Subtype = "actor"
	SubtypeDirector    Subtype = "director"
	SubtypeWriter      Subtype = "writer"
	SubtypeAuthor      Subtype = "author"
	SubtypeMusicArtist Subtype = "music_artist"
	SubtypePodcaster   Subtype = "podcaster"
)

// Source tags every source the orchestrator knows how to run.
type Source string

const (
	SourceTV       Source = "tv"
	SourceMovie    Source = "movie"
	SourcePerson   Source = "person"
	SourcePodcast  Source = "podcast"
	SourceBook     Source = "book"
	SourceAuthor   Source = "author"
	SourceNews     Source = "news"
	SourceVideo    Source = "video"
	SourceRatings  Source = "ratings"
	SourceArtist   Source = "artist"
	SourceAlbum    Source = "album"
)

// IndexedSources is the ordered set of sources served from the local
// inverted index (§2, §4.3 of SPEC_FULL.md).
var IndexedSources = []Source{SourceTV, SourceMovie, SourcePerson, SourcePodcast, SourceBook, SourceAuthor}

// BrokeredSources is the ordered set of sources served by external
// providers. Autocomplete mode excludes all of these (spec.md §4.7).
var BrokeredSources = []Source{SourceNews, SourceVideo, SourceRatings, SourceArtist, SourceAlbum}

// Item is the shape shared by every result, indexed or brokered.
//
// Invariant: McID is stable across the lifetime of a document; two items
// with equal McID are the same entity regardless of which source produced
// them.
type Item struct {
	McID         string  `json:"mc_id"`
	McType       Type    `json:"mc_type"`
	McSubtype    Subtype `json:"mc_subtype,omitempty"`
	Source       Source  `json:"source"`
	SourceID     string  `json:"source_id"`
	SearchTitle  string  `json:"search_title"`
	Popularity   float64 `json:"popularity"`
	Rating       float64 `json:"rating,omitempty"`
	Image        string  `json:"image,omitempty"`
	Overview     string  `json:"overview,omitempty"`

	// canonicalName is the lowercased/trimmed/punctuation-stripped form of
	// SearchTitle, computed once by the document normalizer (C5) so the
	// exact-match arbiter (C8) never re-normalizes. Never serialized.
	canonicalName string
}

// CanonicalName returns the precomputed canonical form of the item's
// primary display name, used by the exact-match arbiter. Value receiver
// so it promotes to every embedding type's value method set too —
// results travel through []interface{} by value, not by pointer.
func (i Item) CanonicalName() string { return i.canonicalName }

// SetCanonicalName is called exactly once by the document/adapter
// normalizer that produces this item.
func (i *Item) SetCanonicalName(name string) { i.canonicalName = name }
