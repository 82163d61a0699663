package web

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amwagner/askminstrel/internal/shared"
)

func newTestUI(t *testing.T, apiBase string) *VanillaUI {
	t.Helper()
	ui, err := NewVanillaUI(apiBase, http.DefaultClient, shared.NewLogger(io.Discard))
	if err != nil {
		t.Fatalf("Failed to build vanilla UI: %v", err)
	}
	return ui
}

func doGet(t *testing.T, ui *VanillaUI, path string) *httptest.ResponseRecorder {
	t.Helper()

	mux := http.NewServeMux()
	for _, route := range ui.Routes() {
		mux.Handle(route, ui)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestVanillaUIForm(t *testing.T) {
	ui := newTestUI(t, "http://127.0.0.1:1")

	rec := doGet(t, ui, "/vanilla")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, `action="/vanilla/search"`) {
		t.Error("Expected the search form to post to /vanilla/search")
	}
	for _, kind := range []string{"artist", "album", "track"} {
		if !strings.Contains(body, `value="`+kind+`"`) {
			t.Errorf("Expected a type radio for %s", kind)
		}
	}
}

func TestVanillaUISearch(t *testing.T) {
	t.Run("renders matching results", func(t *testing.T) {
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/search" {
				t.Errorf("Unexpected API path %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("q"); got != "radiohead" {
				t.Errorf("Expected q=radiohead, got %q", got)
			}
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `[{"id": "a1", "kind": "artist", "name": "Radiohead"}]`)
		}))
		defer api.Close()

		rec := doGet(t, newTestUI(t, api.URL), "/vanilla/search?q=radiohead&type=artist")

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}

		body := rec.Body.String()
		if !strings.Contains(body, "Radiohead") {
			t.Error("Expected result name in the page")
		}
		if !strings.Contains(body, `href="/vanilla/detail/artist/a1"`) {
			t.Error("Expected a detail link for the result")
		}
	})

	t.Run("renders the empty state", func(t *testing.T) {
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[]`)
		}))
		defer api.Close()

		rec := doGet(t, newTestUI(t, api.URL), "/vanilla/search?q=zzzzzz&type=album")

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "No matching album found.") {
			t.Errorf("Expected the empty state message, got %q", rec.Body.String())
		}
	})

	t.Run("surfaces API errors", func(t *testing.T) {
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error": "invalid input: search query is empty"}`)
		}))
		defer api.Close()

		rec := doGet(t, newTestUI(t, api.URL), "/vanilla/search?q=&type=artist")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "search query is empty") {
			t.Error("Expected the API error message in the page")
		}
	})

	t.Run("unreachable API renders 502", func(t *testing.T) {
		rec := doGet(t, newTestUI(t, "http://127.0.0.1:1"), "/vanilla/search?q=radiohead&type=artist")

		if rec.Code != http.StatusBadGateway {
			t.Errorf("Expected 502, got %d", rec.Code)
		}
	})
}

func TestVanillaUIDetail(t *testing.T) {
	t.Run("artist page with albums", func(t *testing.T) {
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/artists/a1" {
				t.Errorf("Unexpected API path %s", r.URL.Path)
			}
			fmt.Fprint(w, `{
				"artist": {"id": "a1", "kind": "artist", "name": "Radiohead", "genres": ["art rock"]},
				"albums": [{"id": "al1", "kind": "album", "name": "In Rainbows"}]
			}`)
		}))
		defer api.Close()

		rec := doGet(t, newTestUI(t, api.URL), "/vanilla/detail/artist/a1")

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, "Radiohead") || !strings.Contains(body, "In Rainbows") {
			t.Error("Expected the artist and album names in the page")
		}
	})

	t.Run("track page with audio features", func(t *testing.T) {
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{
				"track": {"id": "t1", "kind": "track", "name": "Reckoner", "duration_ms": 290000},
				"audio": {"danceability": 0.6, "energy": 0.7, "valence": 0.3}
			}`)
		}))
		defer api.Close()

		rec := doGet(t, newTestUI(t, api.URL), "/vanilla/detail/track/t1")

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, "Reckoner") {
			t.Error("Expected the track name in the page")
		}
		if !strings.Contains(body, "Danceability") {
			t.Error("Expected audio features in the page")
		}
	})

	t.Run("plural kind in the link is accepted", func(t *testing.T) {
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"album": {"id": "al1", "kind": "album", "name": "In Rainbows"}, "tracks": []}`)
		}))
		defer api.Close()

		rec := doGet(t, newTestUI(t, api.URL), "/vanilla/detail/albums/al1")

		if rec.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d", rec.Code)
		}
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		rec := doGet(t, newTestUI(t, "http://127.0.0.1:1"), "/vanilla/detail/playlist/x")

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", rec.Code)
		}
	})

	t.Run("unknown id surfaces the 404", func(t *testing.T) {
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"error": "not found: artist nope"}`)
		}))
		defer api.Close()

		rec := doGet(t, newTestUI(t, api.URL), "/vanilla/detail/artist/nope")

		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", rec.Code)
		}
	})
}
