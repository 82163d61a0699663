// Package ui implements the terminal search browser.
//
// The TUI is a third consumer of the provider adapter next to the JSON
// endpoints and the CLI. It cycles through three views: a query prompt with a
// kind toggle, a result list, and a detail pane for the selected item.
//
// Built on bubbletea with bubbles' textinput and list components; styling
// lives in the shared [Palette].
package ui
