package models

import (
	"fmt"
	"strings"

	"github.com/amwagner/askminstrel/internal/shared"
)

// Kind identifies the type of catalog entity a query or item refers to.
type Kind string

const (
	KindArtist Kind = "artist"
	KindAlbum  Kind = "album"
	KindTrack  Kind = "track"
)

// Kinds lists every valid [Kind] in display order.
func Kinds() []Kind {
	return []Kind{KindArtist, KindAlbum, KindTrack}
}

// ParseKind validates a type filter supplied by a client.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindArtist:
		return KindArtist, nil
	case KindAlbum:
		return KindAlbum, nil
	case KindTrack:
		return KindTrack, nil
	default:
		return "", fmt.Errorf("%w: unknown type %q (want artist, album, or track)", shared.ErrInvalidInput, s)
	}
}

// SearchQuery is one validated search request against the catalog.
type SearchQuery struct {
	Text string
	Kind Kind
}

// Validate checks the query before it reaches the provider.
// The server rejects invalid queries without making an upstream call.
func (q SearchQuery) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("%w: search query is empty", shared.ErrInvalidInput)
	}
	if _, err := ParseKind(string(q.Kind)); err != nil {
		return err
	}
	return nil
}

// ItemRef is a flattened reference to a related catalog entity, enough for a
// client to render a link and fetch the full detail.
type ItemRef struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`
	Name string `json:"name"`
}

// CatalogItem is a read-only projection of one upstream catalog record.
//
// Summary lists populate the identity fields plus whatever the kind carries;
// detail pages additionally fill Popularity, Label, and TotalTracks.
type CatalogItem struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Name        string    `json:"name"`
	Artists     []ItemRef `json:"artists,omitempty"`
	Album       *ItemRef  `json:"album,omitempty"`
	Genres      []string  `json:"genres,omitempty"`
	ReleaseDate string    `json:"release_date,omitempty"`
	DiscNumber  int       `json:"disc_number,omitempty"`
	TrackNumber int       `json:"track_number,omitempty"`
	DurationMS  int       `json:"duration_ms,omitempty"`
	Popularity  int       `json:"popularity,omitempty"`
	Label       string    `json:"label,omitempty"`
	TotalTracks int       `json:"total_tracks,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	ExternalURL string    `json:"external_url,omitempty"`
}

// AudioFeatures is the distilled audio analysis for a track.
type AudioFeatures struct {
	Danceability float64 `json:"danceability"`
	Energy       float64 `json:"energy"`
	Valence      float64 `json:"valence"`
}

// ArtistPage is the artist detail response: the artist plus their albums.
type ArtistPage struct {
	Artist CatalogItem   `json:"artist"`
	Albums []CatalogItem `json:"albums"`
}

// AlbumPage is the album detail response: the album plus its tracks.
type AlbumPage struct {
	Album  CatalogItem   `json:"album"`
	Tracks []CatalogItem `json:"tracks"`
}

// TrackPage is the track detail response. Audio is nil when the upstream no
// longer serves audio features for the track.
type TrackPage struct {
	Track CatalogItem    `json:"track"`
	Audio *AudioFeatures `json:"audio,omitempty"`
}
