package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/amwagner/askminstrel/internal/models"
	"github.com/amwagner/askminstrel/internal/services"
	"github.com/amwagner/askminstrel/internal/shared"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	QueryView ViewState = iota
	ResultsView
	DetailView
)

// Model represents the TUI application state.
type Model struct {
	ctx      context.Context
	provider services.Provider
	view     ViewState
	kind     models.Kind
	input    textinput.Model
	results  list.Model
	detail   string
	err      error
	width    int
	height   int
	help     help.Model
	keys     keyMap
}

// NewModel creates the initial TUI model for the given provider.
func NewModel(ctx context.Context, provider services.Provider) Model {
	input := textinput.New()
	input.Placeholder = "artist, album, or track..."
	input.CharLimit = 64
	input.Focus()

	results := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	results.SetShowTitle(true)
	results.SetShowHelp(false)

	return Model{
		ctx:      ctx,
		provider: provider,
		view:     QueryView,
		kind:     models.KindArtist,
		input:    input,
		results:  results,
		help:     help.New(),
		keys:     newKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.results.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case searchResultMsg:
		items := make([]list.Item, 0, len(msg.items))
		for _, item := range msg.items {
			items = append(items, catalogItem{item: item})
		}
		m.results.SetItems(items)
		m.results.Title = fmt.Sprintf("%s results for %q", m.kind, m.input.Value())
		m.err = nil
		m.view = ResultsView
		return m, nil

	case detailMsg:
		m.detail = msg.text
		m.view = DetailView
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			return m, tea.Quit
		}
		return m.updateView(msg)
	}

	return m, nil
}

func (m Model) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view {
	case QueryView:
		switch {
		case key.Matches(msg, m.keys.cycle):
			m.kind = nextKind(m.kind)
			return m, nil
		case key.Matches(msg, m.keys.enter):
			if strings.TrimSpace(m.input.Value()) == "" {
				m.err = fmt.Errorf("%w: type something to search for", shared.ErrInvalidInput)
				return m, nil
			}
			return m, m.performSearch()
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case ResultsView:
		switch {
		case key.Matches(msg, m.keys.back):
			m.view = QueryView
			return m, nil
		case key.Matches(msg, m.keys.enter):
			if selected, ok := m.results.SelectedItem().(catalogItem); ok {
				return m, m.fetchDetail(selected.item)
			}
			return m, nil
		}

		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd

	case DetailView:
		if key.Matches(msg, m.keys.back) {
			m.view = ResultsView
			return m, nil
		}
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	switch m.view {
	case QueryView:
		b.WriteString(styles.title.Render("AskMinstrel"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Searching for: %s\n\n", styles.ok.Render(string(m.kind))))
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case ResultsView:
		b.WriteString(m.results.View())
		b.WriteString("\n")
	case DetailView:
		b.WriteString(styles.detail.Render(m.detail))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(styles.err.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(styles.help.Render(m.help.View(m.keys)))
	return b.String()
}

// performSearch runs the provider search off the update loop.
func (m Model) performSearch() tea.Cmd {
	query := models.SearchQuery{Text: m.input.Value(), Kind: m.kind}
	return func() tea.Msg {
		items, err := m.provider.Search(m.ctx, query)
		if err != nil {
			return errMsg{err: err}
		}
		return searchResultMsg{items: items}
	}
}

// fetchDetail loads the detail page for the selected item and renders it as text.
func (m Model) fetchDetail(item models.CatalogItem) tea.Cmd {
	return func() tea.Msg {
		switch item.Kind {
		case models.KindArtist:
			page, err := m.provider.Artist(m.ctx, item.ID)
			if err != nil {
				return errMsg{err: err}
			}
			return detailMsg{text: renderArtist(page)}
		case models.KindAlbum:
			page, err := m.provider.Album(m.ctx, item.ID)
			if err != nil {
				return errMsg{err: err}
			}
			return detailMsg{text: renderAlbum(page)}
		default:
			page, err := m.provider.Track(m.ctx, item.ID)
			if err != nil {
				return errMsg{err: err}
			}
			return detailMsg{text: renderTrack(page)}
		}
	}
}

func nextKind(k models.Kind) models.Kind {
	kinds := models.Kinds()
	for i, kind := range kinds {
		if kind == k {
			return kinds[(i+1)%len(kinds)]
		}
	}
	return kinds[0]
}

func renderArtist(page *models.ArtistPage) string {
	var b strings.Builder
	b.WriteString(styles.title.Render(page.Artist.Name))
	b.WriteString("\n")
	if len(page.Artist.Genres) > 0 {
		b.WriteString(fmt.Sprintf("Genres: %s\n", strings.Join(page.Artist.Genres, ", ")))
	}
	b.WriteString(fmt.Sprintf("Popularity: %d\n\nAlbums:\n", page.Artist.Popularity))
	for _, album := range page.Albums {
		b.WriteString(fmt.Sprintf("  %s (%s)\n", album.Name, album.ReleaseDate))
	}
	return b.String()
}

func renderAlbum(page *models.AlbumPage) string {
	var b strings.Builder
	b.WriteString(styles.title.Render(page.Album.Name))
	b.WriteString("\n")
	if names := artistNames(page.Album); names != "" {
		b.WriteString(fmt.Sprintf("By: %s\n", names))
	}
	b.WriteString(fmt.Sprintf("Released: %s", page.Album.ReleaseDate))
	if page.Album.Label != "" {
		b.WriteString(fmt.Sprintf(" on %s", page.Album.Label))
	}
	b.WriteString("\n\nTracks:\n")
	for _, track := range page.Tracks {
		b.WriteString(fmt.Sprintf("  %d.%d %s [%s]\n",
			track.DiscNumber, track.TrackNumber, track.Name, shared.FormatDuration(track.DurationMS)))
	}
	return b.String()
}

func renderTrack(page *models.TrackPage) string {
	var b strings.Builder
	b.WriteString(styles.title.Render(page.Track.Name))
	b.WriteString("\n")
	if names := artistNames(page.Track); names != "" {
		b.WriteString(fmt.Sprintf("By: %s\n", names))
	}
	if page.Track.Album != nil {
		b.WriteString(fmt.Sprintf("Album: %s\n", page.Track.Album.Name))
	}
	b.WriteString(fmt.Sprintf("Duration: %s\n", shared.FormatDuration(page.Track.DurationMS)))
	if page.Audio != nil {
		b.WriteString(fmt.Sprintf("\nDanceability: %.2f\nEnergy: %.2f\nValence: %.2f\n",
			page.Audio.Danceability, page.Audio.Energy, page.Audio.Valence))
	}
	return b.String()
}

// Run launches the TUI and blocks until the user quits.
func Run(ctx context.Context, provider services.Provider) error {
	program := tea.NewProgram(NewModel(ctx, provider), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
