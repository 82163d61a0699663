package ui

import (
	"strings"

	"github.com/amwagner/askminstrel/internal/models"
	"github.com/amwagner/askminstrel/internal/shared"
)

// catalogItem wraps [models.CatalogItem] to implement list.Item.
type catalogItem struct {
	item models.CatalogItem
}

func (i catalogItem) FilterValue() string { return i.item.Name }
func (i catalogItem) Title() string       { return i.item.Name }

func (i catalogItem) Description() string {
	var parts []string

	if names := artistNames(i.item); names != "" {
		parts = append(parts, names)
	}
	if i.item.Album != nil {
		parts = append(parts, i.item.Album.Name)
	}
	if i.item.ReleaseDate != "" {
		parts = append(parts, i.item.ReleaseDate)
	}
	if len(i.item.Genres) > 0 {
		parts = append(parts, strings.Join(i.item.Genres, ", "))
	}
	if i.item.DurationMS > 0 {
		parts = append(parts, shared.FormatDuration(i.item.DurationMS))
	}

	if len(parts) == 0 {
		return string(i.item.Kind)
	}
	return strings.Join(parts, " • ")
}

func artistNames(item models.CatalogItem) string {
	names := make([]string, 0, len(item.Artists))
	for _, a := range item.Artists {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}
