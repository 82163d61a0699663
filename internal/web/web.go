// Package web implements the vanilla HTML front end.
//
// The vanilla UI is deliberately an external consumer of the JSON contract:
// its handlers fetch from the local /api endpoints over HTTP and render the
// decoded payloads with html/template. Nothing in here calls the provider
// directly, so the reactive front end and this one stay interchangeable
// consumers of the same endpoints.
package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/amwagner/askminstrel/internal/models"
	"github.com/amwagner/askminstrel/internal/shared"
	"github.com/charmbracelet/log"
)

//go:embed templates/*.html
var templateFiles embed.FS

// VanillaUI serves the server-rendered plain HTML interface at /vanilla.
type VanillaUI struct {
	apiBase string
	client  *http.Client
	logger  *log.Logger
	tmpl    *template.Template
}

// NewVanillaUI creates the vanilla front end. apiBase is the address of the
// local JSON API, e.g. "http://127.0.0.1:50861".
func NewVanillaUI(apiBase string, client *http.Client, logger *log.Logger) (*VanillaUI, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	funcs := template.FuncMap{
		"duration": shared.FormatDuration,
		"title": func(s string) string {
			if s == "" {
				return s
			}
			return strings.ToUpper(s[:1]) + s[1:]
		},
	}

	tmpl, err := template.New("vanilla").Funcs(funcs).ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &VanillaUI{
		apiBase: strings.TrimSuffix(apiBase, "/"),
		client:  client,
		logger:  logger,
		tmpl:    tmpl,
	}, nil
}

// Routes returns the patterns the vanilla UI serves.
func (v *VanillaUI) Routes() []string {
	return []string{
		"GET /vanilla",
		"GET /vanilla/search",
		"GET /vanilla/detail/{kind}/{id}",
	}
}

func (v *VanillaUI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/vanilla":
		v.render(w, http.StatusOK, "form.html", nil)
	case r.URL.Path == "/vanilla/search":
		v.search(w, r)
	default:
		v.detail(w, r)
	}
}

type resultsData struct {
	Kind  string
	Query string
	Items []models.CatalogItem
}

// search fetches /api/search with the submitted form values and renders the
// result table.
func (v *VanillaUI) search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	kind := r.URL.Query().Get("type")
	if kind == "" {
		kind = string(models.KindTrack)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("type", kind)

	var items []models.CatalogItem
	if status, err := v.get("/api/search?"+params.Encode(), &items); err != nil {
		v.renderError(w, status, err)
		return
	}

	v.render(w, http.StatusOK, "results.html", resultsData{Kind: kind, Query: query, Items: items})
}

type detailData struct {
	Kind         string
	Item         models.CatalogItem
	Audio        *models.AudioFeatures
	Related      []models.CatalogItem
	RelatedTitle string
}

// detail fetches the detail endpoint matching the link kind and renders one
// detail page. Plural kinds are accepted since list pages link both ways.
func (v *VanillaUI) detail(w http.ResponseWriter, r *http.Request) {
	kind, err := models.ParseKind(strings.TrimSuffix(r.PathValue("kind"), "s"))
	if err != nil {
		v.renderError(w, http.StatusBadRequest, err)
		return
	}

	id := url.PathEscape(r.PathValue("id"))

	var data detailData
	data.Kind = string(kind)

	switch kind {
	case models.KindArtist:
		var page models.ArtistPage
		if status, err := v.get("/api/artists/"+id, &page); err != nil {
			v.renderError(w, status, err)
			return
		}
		data.Item = page.Artist
		data.Related = page.Albums
		data.RelatedTitle = "Albums"
	case models.KindAlbum:
		var page models.AlbumPage
		if status, err := v.get("/api/albums/"+id, &page); err != nil {
			v.renderError(w, status, err)
			return
		}
		data.Item = page.Album
		data.Related = page.Tracks
		data.RelatedTitle = "Tracks"
	case models.KindTrack:
		var page models.TrackPage
		if status, err := v.get("/api/tracks/"+id, &page); err != nil {
			v.renderError(w, status, err)
			return
		}
		data.Item = page.Track
		data.Audio = page.Audio
	}

	v.render(w, http.StatusOK, "detail.html", data)
}

// get performs one JSON API request and decodes the 200 payload into target.
// On failure it returns the upstream status (or 502) and the error message
// from the JSON error body.
func (v *VanillaUI) get(path string, target any) (int, error) {
	resp, err := v.client.Get(v.apiBase + path)
	if err != nil {
		return http.StatusBadGateway, fmt.Errorf("lookup service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
			return resp.StatusCode, fmt.Errorf("lookup failed with status %d", resp.StatusCode)
		}
		return resp.StatusCode, fmt.Errorf("%s", body.Error)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return http.StatusBadGateway, fmt.Errorf("malformed response from lookup service: %w", err)
	}

	return http.StatusOK, nil
}

func (v *VanillaUI) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := v.tmpl.ExecuteTemplate(w, name, data); err != nil {
		v.logger.Error("template render failed", "template", name, "error", err)
	}
}

func (v *VanillaUI) renderError(w http.ResponseWriter, status int, err error) {
	v.logger.Debug("vanilla page error", "status", status, "error", err)
	v.render(w, status, "error.html", map[string]string{"Message": err.Error()})
}
