// package services defines interface Provider for the upstream music catalog
package services

import (
	"context"

	"github.com/amwagner/askminstrel/internal/models"
)

// Provider is the narrow adapter interface in front of the upstream catalog.
// The server, the CLI, and the TUI all consume the catalog through it.
type Provider interface {
	// Search returns a bounded list of summary items matching the query.
	// An empty result set is an empty slice, not an error.
	Search(ctx context.Context, query models.SearchQuery) ([]models.CatalogItem, error)

	// Artist retrieves artist detail plus the artist's albums.
	Artist(ctx context.Context, artistID string) (*models.ArtistPage, error)

	// Album retrieves album detail plus the album's tracks.
	Album(ctx context.Context, albumID string) (*models.AlbumPage, error)

	// Track retrieves track detail plus audio features when available.
	Track(ctx context.Context, trackID string) (*models.TrackPage, error)

	// Name returns the name of the upstream catalog (e.g., "Spotify")
	Name() string
}
