// Spotify API implementation of [Provider]
//
// Spotify API response types based on https://developer.spotify.com/documentation/web-api/reference/
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/amwagner/askminstrel/internal/models"
	"github.com/amwagner/askminstrel/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

const (
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyBaseURL  = "https://api.spotify.com/v1"

	defaultTimeout     = 10 * time.Second
	defaultRateLimit   = 5.0
	defaultSearchLimit = 20
	maxSearchLimit     = 50
)

// SpotifyImage represents an image resource.
type SpotifyImage struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

type externalURLs struct {
	Spotify string `json:"spotify"`
}

// SpotifyArtist represents a Spotify artist.
type SpotifyArtist struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Genres       []string       `json:"genres"`
	Popularity   int            `json:"popularity"`
	Images       []SpotifyImage `json:"images"`
	ExternalURLs externalURLs   `json:"external_urls"`
}

// SpotifyAlbum represents a Spotify album.
type SpotifyAlbum struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Artists      []SpotifyArtist `json:"artists"`
	ReleaseDate  string          `json:"release_date"`
	TotalTracks  int             `json:"total_tracks"`
	Label        string          `json:"label"`
	Genres       []string        `json:"genres"`
	Popularity   int             `json:"popularity"`
	Images       []SpotifyImage  `json:"images"`
	ExternalURLs externalURLs    `json:"external_urls"`
}

// SpotifyTrack represents a Spotify track. Album is empty for tracks listed
// inside an album response.
type SpotifyTrack struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Artists      []SpotifyArtist `json:"artists"`
	Album        SpotifyAlbum    `json:"album"`
	DiscNumber   int             `json:"disc_number"`
	TrackNumber  int             `json:"track_number"`
	DurationMS   int             `json:"duration_ms"`
	Popularity   int             `json:"popularity"`
	ExternalURLs externalURLs    `json:"external_urls"`
}

// SpotifyAudioFeatures represents the audio analysis summary for a track.
type SpotifyAudioFeatures struct {
	Danceability float64 `json:"danceability"`
	Energy       float64 `json:"energy"`
	Valence      float64 `json:"valence"`
}

type artistPaging struct {
	Items []SpotifyArtist `json:"items"`
}

type albumPaging struct {
	Items []SpotifyAlbum `json:"items"`
}

type trackPaging struct {
	Items []SpotifyTrack `json:"items"`
}

type searchResponse struct {
	Artists *artistPaging `json:"artists"`
	Albums  *albumPaging  `json:"albums"`
	Tracks  *trackPaging  `json:"tracks"`
}

// SpotifyService implements the [Provider] interface over the Spotify Web API.
//
// Authentication uses the client-credentials grant; the oauth2 transport on
// httpClient attaches and refreshes the bearer token.
type SpotifyService struct {
	httpClient  *http.Client
	baseURL     string
	limiter     *rate.Limiter
	timeout     time.Duration
	searchLimit int
}

// NewSpotifyService creates a Spotify provider and requests an initial token
// with the given credentials. A rejected credential pair surfaces as
// [shared.ErrUnauthorized] so callers can fail fast before serving.
func NewSpotifyService(ctx context.Context, creds *shared.Credentials, cfg shared.UpstreamConfig) (*SpotifyService, error) {
	if creds == nil {
		return nil, shared.ErrMissingCredentials
	}

	conf := &clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     spotifyTokenURL,
	}

	if _, err := conf.Token(ctx); err != nil {
		var rerr *oauth2.RetrieveError
		if errors.As(err, &rerr) {
			return nil, fmt.Errorf("%w: %v", shared.ErrUnauthorized, err)
		}
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	rps := cfg.RateLimit
	if rps <= 0 {
		rps = defaultRateLimit
	}

	searchLimit := cfg.SearchLimit
	if searchLimit <= 0 {
		searchLimit = defaultSearchLimit
	}
	if searchLimit > maxSearchLimit {
		searchLimit = maxSearchLimit
	}

	return &SpotifyService{
		httpClient:  conf.Client(ctx),
		baseURL:     spotifyBaseURL,
		limiter:     rate.NewLimiter(rate.Limit(rps), 1),
		timeout:     timeout,
		searchLimit: searchLimit,
	}, nil
}

func (s *SpotifyService) Name() string {
	return "Spotify"
}

// doRequest performs a rate-limited, timeout-bounded GET against the Spotify
// API and decodes the JSON response into result.
func (s *SpotifyService) doRequest(ctx context.Context, endpoint string, result any) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrUpstreamUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if err := statusError(resp); err != nil {
		return err
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("%w: malformed response: %v", shared.ErrUpstreamUnavailable, err)
		}
	}

	return nil
}

// statusError maps a non-2xx upstream response to the shared error taxonomy.
func statusError(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: spotify API status %d", shared.ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: spotify API status %d", shared.ErrNotFound, resp.StatusCode)
	case resp.StatusCode == http.StatusTooManyRequests:
		return &shared.RateLimitError{RetryAfter: retryAfter(resp)}
	default:
		return fmt.Errorf("%w: spotify API status %d", shared.ErrUpstreamUnavailable, resp.StatusCode)
	}
}

// retryAfter parses the Retry-After header in its delay-seconds form.
func retryAfter(resp *http.Response) time.Duration {
	seconds, err := strconv.Atoi(resp.Header.Get("Retry-After"))
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

// Search returns summary items of the query's kind. An empty result set is an
// empty slice with a nil error.
func (s *SpotifyService) Search(ctx context.Context, query models.SearchQuery) ([]models.CatalogItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", query.Text)
	params.Set("type", string(query.Kind))
	params.Set("limit", strconv.Itoa(s.searchLimit))

	var resp searchResponse
	if err := s.doRequest(ctx, "/search?"+params.Encode(), &resp); err != nil {
		return nil, err
	}

	items := []models.CatalogItem{}
	switch query.Kind {
	case models.KindArtist:
		if resp.Artists != nil {
			for _, a := range resp.Artists.Items {
				items = append(items, artistSummary(a))
			}
		}
	case models.KindAlbum:
		if resp.Albums != nil {
			for _, a := range resp.Albums.Items {
				items = append(items, albumSummary(a))
			}
		}
	case models.KindTrack:
		if resp.Tracks != nil {
			for _, t := range resp.Tracks.Items {
				items = append(items, trackSummary(t))
			}
		}
	}

	return items, nil
}

// Artist retrieves artist detail plus the artist's albums.
func (s *SpotifyService) Artist(ctx context.Context, artistID string) (*models.ArtistPage, error) {
	var artist SpotifyArtist
	if err := s.doRequest(ctx, "/artists/"+url.PathEscape(artistID), &artist); err != nil {
		return nil, err
	}

	var albums albumPaging
	endpoint := fmt.Sprintf("/artists/%s/albums?limit=%d", url.PathEscape(artistID), maxSearchLimit)
	if err := s.doRequest(ctx, endpoint, &albums); err != nil {
		return nil, err
	}

	page := &models.ArtistPage{
		Artist: artistDetail(artist),
		Albums: []models.CatalogItem{},
	}
	for _, a := range albums.Items {
		page.Albums = append(page.Albums, albumSummary(a))
	}

	return page, nil
}

// Album retrieves album detail plus the album's tracks.
func (s *SpotifyService) Album(ctx context.Context, albumID string) (*models.AlbumPage, error) {
	var album SpotifyAlbum
	if err := s.doRequest(ctx, "/albums/"+url.PathEscape(albumID), &album); err != nil {
		return nil, err
	}

	var tracks trackPaging
	endpoint := fmt.Sprintf("/albums/%s/tracks?limit=%d", url.PathEscape(albumID), maxSearchLimit)
	if err := s.doRequest(ctx, endpoint, &tracks); err != nil {
		return nil, err
	}

	page := &models.AlbumPage{
		Album:  albumDetail(album),
		Tracks: []models.CatalogItem{},
	}
	for _, t := range tracks.Items {
		page.Tracks = append(page.Tracks, albumTrackSummary(t))
	}

	return page, nil
}

// Track retrieves track detail plus audio features.
//
// The audio features endpoint is denied to newer API clients, so a 404 or 403
// there is treated as absence rather than a failed lookup.
func (s *SpotifyService) Track(ctx context.Context, trackID string) (*models.TrackPage, error) {
	var track SpotifyTrack
	if err := s.doRequest(ctx, "/tracks/"+url.PathEscape(trackID), &track); err != nil {
		return nil, err
	}

	page := &models.TrackPage{Track: trackDetail(track)}

	var features SpotifyAudioFeatures
	err := s.doRequest(ctx, "/audio-features/"+url.PathEscape(trackID), &features)
	switch {
	case err == nil:
		page.Audio = &models.AudioFeatures{
			Danceability: features.Danceability,
			Energy:       features.Energy,
			Valence:      features.Valence,
		}
	case errors.Is(err, shared.ErrNotFound) || errors.Is(err, shared.ErrUnauthorized):
		page.Audio = nil
	default:
		return nil, err
	}

	return page, nil
}

func imageURL(images []SpotifyImage) string {
	if len(images) == 0 {
		return ""
	}
	return images[0].URL
}

func artistRefs(artists []SpotifyArtist) []models.ItemRef {
	refs := make([]models.ItemRef, 0, len(artists))
	for _, a := range artists {
		refs = append(refs, models.ItemRef{ID: a.ID, Kind: models.KindArtist, Name: a.Name})
	}
	return refs
}

func albumRef(album SpotifyAlbum) *models.ItemRef {
	if album.ID == "" {
		return nil
	}
	return &models.ItemRef{ID: album.ID, Kind: models.KindAlbum, Name: album.Name}
}

func artistSummary(a SpotifyArtist) models.CatalogItem {
	return models.CatalogItem{
		ID:          a.ID,
		Kind:        models.KindArtist,
		Name:        a.Name,
		Genres:      a.Genres,
		ImageURL:    imageURL(a.Images),
		ExternalURL: a.ExternalURLs.Spotify,
	}
}

func artistDetail(a SpotifyArtist) models.CatalogItem {
	item := artistSummary(a)
	item.Popularity = a.Popularity
	return item
}

func albumSummary(a SpotifyAlbum) models.CatalogItem {
	return models.CatalogItem{
		ID:          a.ID,
		Kind:        models.KindAlbum,
		Name:        a.Name,
		Artists:     artistRefs(a.Artists),
		ReleaseDate: a.ReleaseDate,
		ImageURL:    imageURL(a.Images),
		ExternalURL: a.ExternalURLs.Spotify,
	}
}

func albumDetail(a SpotifyAlbum) models.CatalogItem {
	item := albumSummary(a)
	item.Genres = a.Genres
	item.Popularity = a.Popularity
	item.TotalTracks = a.TotalTracks
	item.Label = a.Label
	return item
}

func trackSummary(t SpotifyTrack) models.CatalogItem {
	return models.CatalogItem{
		ID:          t.ID,
		Kind:        models.KindTrack,
		Name:        t.Name,
		Artists:     artistRefs(t.Artists),
		Album:       albumRef(t.Album),
		ImageURL:    imageURL(t.Album.Images),
		ExternalURL: t.ExternalURLs.Spotify,
	}
}

// albumTrackSummary projects a track listed inside an album response, which
// carries positional fields but no album object of its own.
func albumTrackSummary(t SpotifyTrack) models.CatalogItem {
	return models.CatalogItem{
		ID:          t.ID,
		Kind:        models.KindTrack,
		Name:        t.Name,
		DiscNumber:  t.DiscNumber,
		TrackNumber: t.TrackNumber,
		DurationMS:  t.DurationMS,
		ExternalURL: t.ExternalURLs.Spotify,
	}
}

func trackDetail(t SpotifyTrack) models.CatalogItem {
	item := trackSummary(t)
	item.DiscNumber = t.DiscNumber
	item.TrackNumber = t.TrackNumber
	item.DurationMS = t.DurationMS
	item.Popularity = t.Popularity
	return item
}
