package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/amwagner/askminstrel/internal/models"
	"github.com/amwagner/askminstrel/internal/services"
	"github.com/amwagner/askminstrel/internal/shared"
	"github.com/charmbracelet/log"
)

// SearchHandler serves GET /api/search?q={text}&type={artist|album|track}.
//
// Responds 200 with a JSON array of catalog items, possibly empty. A blank q
// or unknown type is rejected with 400 before the provider is invoked.
type SearchHandler struct {
	provider services.Provider
	logger   *log.Logger
}

func NewSearchHandler(provider services.Provider, logger *log.Logger) *SearchHandler {
	return &SearchHandler{provider: provider, logger: logger}
}

func (h *SearchHandler) Routes() []string {
	return []string{"GET /api/search"}
}

func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	text := strings.TrimSpace(r.URL.Query().Get("q"))
	if text == "" {
		writeError(w, h.logger, fmt.Errorf("%w: query parameter q is required", shared.ErrInvalidInput))
		return
	}

	// The type filter is optional and defaults to track search.
	kindParam := r.URL.Query().Get("type")
	kind := models.KindTrack
	if kindParam != "" {
		parsed, err := models.ParseKind(kindParam)
		if err != nil {
			writeError(w, h.logger, err)
			return
		}
		kind = parsed
	}

	items, err := h.provider.Search(r.Context(), models.SearchQuery{Text: text, Kind: kind})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, items)
}

// DetailHandler serves the detail endpoints for all three catalog kinds:
//
//	GET /api/artists/{id}
//	GET /api/albums/{id}
//	GET /api/tracks/{id}
type DetailHandler struct {
	provider services.Provider
	logger   *log.Logger
}

func NewDetailHandler(provider services.Provider, logger *log.Logger) *DetailHandler {
	return &DetailHandler{provider: provider, logger: logger}
}

func (h *DetailHandler) Routes() []string {
	return []string{
		"GET /api/artists/{id}",
		"GET /api/albums/{id}",
		"GET /api/tracks/{id}",
	}
}

func (h *DetailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		writeError(w, h.logger, fmt.Errorf("%w: item id is required", shared.ErrInvalidInput))
		return
	}

	var (
		page any
		err  error
	)

	switch {
	case strings.HasPrefix(r.URL.Path, "/api/artists/"):
		page, err = h.provider.Artist(r.Context(), id)
	case strings.HasPrefix(r.URL.Path, "/api/albums/"):
		page, err = h.provider.Album(r.Context(), id)
	case strings.HasPrefix(r.URL.Path, "/api/tracks/"):
		page, err = h.provider.Track(r.Context(), id)
	default:
		err = fmt.Errorf("%w: unknown detail path %s", shared.ErrInvalidInput, r.URL.Path)
	}

	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, page)
}

// HealthHandler serves GET /healthz for liveness checks.
type HealthHandler struct {
	logger *log.Logger
}

func NewHealthHandler(logger *log.Logger) *HealthHandler {
	return &HealthHandler{logger: logger}
}

func (h *HealthHandler) Routes() []string {
	return []string{"GET /healthz"}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, map[string]string{"status": "ok"})
}

// IndexHandler serves the landing page linking to the available front ends.
type IndexHandler struct {
	hasStatic bool
}

func NewIndexHandler(hasStatic bool) *IndexHandler {
	return &IndexHandler{hasStatic: hasStatic}
}

func (h *IndexHandler) Routes() []string {
	return []string{"GET /{$}"}
}

func (h *IndexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	fmt.Fprint(w, `<!DOCTYPE html>
<html>
<head><title>AskMinstrel</title></head>
<body>
<h1>AskMinstrel Server</h1>
<a href="/vanilla">Use Vanilla UI</a><br>
`)
	if h.hasStatic {
		fmt.Fprint(w, `<a href="/app/">Use reactive UI</a><br>
`)
	}
	fmt.Fprint(w, `<a href="/healthz">Health</a>
</body>
</html>
`)
}

// StaticHandler serves the built reactive front end verbatim from a directory.
// No templating and no server-side rendering happen here.
type StaticHandler struct {
	fileServer http.Handler
}

func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{
		fileServer: http.StripPrefix("/app/", http.FileServer(http.Dir(dir))),
	}
}

func (h *StaticHandler) Routes() []string {
	return []string{"GET /app/"}
}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.fileServer.ServeHTTP(w, r)
}
