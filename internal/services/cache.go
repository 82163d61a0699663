package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/amwagner/askminstrel/internal/models"
	"github.com/amwagner/askminstrel/internal/shared"
	"github.com/charmbracelet/log"
)

// LookupStore persists serialized lookup responses keyed by operation.
// Implemented by repositories.LookupRepository.
type LookupStore interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, payload []byte) error
}

// CachedProvider decorates a [Provider] with a memo cache of serialized
// responses. Reads that miss fall through to the inner provider; store
// failures are logged and never fail the lookup.
type CachedProvider struct {
	inner  Provider
	store  LookupStore
	logger *log.Logger
}

// NewCachedProvider wraps inner with the given lookup store.
func NewCachedProvider(inner Provider, store LookupStore, logger *log.Logger) *CachedProvider {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &CachedProvider{inner: inner, store: store, logger: logger}
}

func (c *CachedProvider) Name() string {
	return c.inner.Name()
}

// Search serves cached results when the same kind and slugged text were seen
// before, mirroring the memoization of the original lookup client.
func (c *CachedProvider) Search(ctx context.Context, query models.SearchQuery) ([]models.CatalogItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("search:%s:%s", query.Kind, shared.Slugify(query.Text))

	var cached []models.CatalogItem
	if c.fetch(key, &cached) {
		return cached, nil
	}

	items, err := c.inner.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	c.save(key, items)
	return items, nil
}

func (c *CachedProvider) Artist(ctx context.Context, artistID string) (*models.ArtistPage, error) {
	key := "artist:" + artistID

	var cached models.ArtistPage
	if c.fetch(key, &cached) {
		return &cached, nil
	}

	page, err := c.inner.Artist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	c.save(key, page)
	return page, nil
}

func (c *CachedProvider) Album(ctx context.Context, albumID string) (*models.AlbumPage, error) {
	key := "album:" + albumID

	var cached models.AlbumPage
	if c.fetch(key, &cached) {
		return &cached, nil
	}

	page, err := c.inner.Album(ctx, albumID)
	if err != nil {
		return nil, err
	}

	c.save(key, page)
	return page, nil
}

func (c *CachedProvider) Track(ctx context.Context, trackID string) (*models.TrackPage, error) {
	key := "track:" + trackID

	var cached models.TrackPage
	if c.fetch(key, &cached) {
		return &cached, nil
	}

	page, err := c.inner.Track(ctx, trackID)
	if err != nil {
		return nil, err
	}

	c.save(key, page)
	return page, nil
}

// fetch loads and decodes a cached payload into target. Any failure is a miss.
func (c *CachedProvider) fetch(key string, target any) bool {
	payload, ok, err := c.store.Get(key)
	if err != nil {
		c.logger.Warn("lookup cache read failed", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}

	if err := json.Unmarshal(payload, target); err != nil {
		c.logger.Warn("lookup cache payload corrupt", "key", key, "error", err)
		return false
	}

	c.logger.Debug("lookup served from cache", "key", key)
	return true
}

// save serializes and stores a response, best effort.
func (c *CachedProvider) save(key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("lookup cache encode failed", "key", key, "error", err)
		return
	}

	if err := c.store.Put(key, payload); err != nil {
		c.logger.Warn("lookup cache write failed", "key", key, "error", err)
		return
	}

	c.logger.Debug("lookup cached", "key", key)
}
