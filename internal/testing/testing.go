// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/amwagner/askminstrel/internal/models"
)

// MockProvider is a configurable test double for services.Provider.
// Calls fall back to empty results when the corresponding func field is nil.
type MockProvider struct {
	SearchFunc  func(ctx context.Context, query models.SearchQuery) ([]models.CatalogItem, error)
	ArtistFunc  func(ctx context.Context, artistID string) (*models.ArtistPage, error)
	AlbumFunc   func(ctx context.Context, albumID string) (*models.AlbumPage, error)
	TrackFunc   func(ctx context.Context, trackID string) (*models.TrackPage, error)
	SearchCalls int
}

func (m *MockProvider) Search(ctx context.Context, query models.SearchQuery) ([]models.CatalogItem, error) {
	m.SearchCalls++
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return []models.CatalogItem{}, nil
}

func (m *MockProvider) Artist(ctx context.Context, artistID string) (*models.ArtistPage, error) {
	if m.ArtistFunc != nil {
		return m.ArtistFunc(ctx, artistID)
	}
	return &models.ArtistPage{Albums: []models.CatalogItem{}}, nil
}

func (m *MockProvider) Album(ctx context.Context, albumID string) (*models.AlbumPage, error) {
	if m.AlbumFunc != nil {
		return m.AlbumFunc(ctx, albumID)
	}
	return &models.AlbumPage{Tracks: []models.CatalogItem{}}, nil
}

func (m *MockProvider) Track(ctx context.Context, trackID string) (*models.TrackPage, error) {
	if m.TrackFunc != nil {
		return m.TrackFunc(ctx, trackID)
	}
	return &models.TrackPage{}, nil
}

func (m *MockProvider) Name() string { return "mock" }

// MockLookupStore is an in-memory test double for services.LookupStore.
type MockLookupStore struct {
	Data    map[string][]byte
	GetErr  error
	PutErr  error
	Puts    int
	Gets    int
}

func NewMockLookupStore() *MockLookupStore {
	return &MockLookupStore{Data: map[string][]byte{}}
}

func (s *MockLookupStore) Get(key string) ([]byte, bool, error) {
	s.Gets++
	if s.GetErr != nil {
		return nil, false, s.GetErr
	}
	payload, ok := s.Data[key]
	return payload, ok, nil
}

func (s *MockLookupStore) Put(key string, payload []byte) error {
	s.Puts++
	if s.PutErr != nil {
		return s.PutErr
	}
	s.Data[key] = payload
	return nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading a response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

var _ io.ReadCloser = (*FCloser)(nil)
