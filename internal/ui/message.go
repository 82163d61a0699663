package ui

import "github.com/amwagner/askminstrel/internal/models"

// searchResultMsg carries a completed search back into the update loop.
type searchResultMsg struct {
	items []models.CatalogItem
}

// detailMsg carries a rendered detail pane for the selected item.
type detailMsg struct {
	text string
}

// errMsg carries a failed provider call.
type errMsg struct {
	err error
}
