package formatter

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/amwagner/askminstrel/internal/models"
)

func sampleItems() []models.CatalogItem {
	return []models.CatalogItem{
		{
			ID:      "t1",
			Kind:    models.KindTrack,
			Name:    "Reckoner",
			Artists: []models.ItemRef{{ID: "a1", Kind: models.KindArtist, Name: "Radiohead"}},
			Album:   &models.ItemRef{ID: "al1", Kind: models.KindAlbum, Name: "In Rainbows"},

			ReleaseDate: "2007-10-10",
			DurationMS:  290000,
			ExternalURL: "https://open.spotify.com/track/t1",
		},
		{
			ID:   "t2",
			Kind: models.KindTrack,
			Name: "Weird Fishes/Arpeggi",
		},
	}
}

func TestResultsToCSV(t *testing.T) {
	data, err := ResultsToCSV(sampleItems())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("Output is not valid CSV: %v", err)
	}

	t.Run("header row", func(t *testing.T) {
		want := []string{"ID", "Kind", "Name", "Artists", "Album", "Released", "Duration"}
		if len(records[0]) != len(want) {
			t.Fatalf("Expected %d columns, got %d", len(want), len(records[0]))
		}
		for i, col := range want {
			if records[0][i] != col {
				t.Errorf("Column %d: expected %q, got %q", i, col, records[0][i])
			}
		}
	})

	t.Run("data rows", func(t *testing.T) {
		if len(records) != 3 {
			t.Fatalf("Expected header plus 2 rows, got %d", len(records))
		}
		if records[1][2] != "Reckoner" || records[1][3] != "Radiohead" {
			t.Errorf("Unexpected first row %v", records[1])
		}
		if records[1][6] != "4:50" {
			t.Errorf("Expected duration 4:50, got %q", records[1][6])
		}
		if records[2][4] != "" {
			t.Errorf("Expected empty album for second row, got %q", records[2][4])
		}
	})
}

func TestResultsToMarkdown(t *testing.T) {
	query := models.SearchQuery{Text: "reckoner", Kind: models.KindTrack}
	output := string(ResultsToMarkdown(query, sampleItems()))

	if !strings.Contains(output, `# track results for "reckoner"`) {
		t.Errorf("Expected a heading, got %q", output)
	}
	if !strings.Contains(output, "**Matches**: 2") {
		t.Error("Expected a match count")
	}
	if !strings.Contains(output, "1. Reckoner - Radiohead (In Rainbows) [4:50]") {
		t.Errorf("Unexpected listing format:\n%s", output)
	}
	if !strings.Contains(output, "<https://open.spotify.com/track/t1>") {
		t.Error("Expected the external URL")
	}
}

func TestResultsToText(t *testing.T) {
	query := models.SearchQuery{Text: "reckoner", Kind: models.KindTrack}
	output := string(ResultsToText(query, sampleItems()))

	if !strings.Contains(output, "Search: reckoner (track)") {
		t.Errorf("Expected a header line, got %q", output)
	}
	if !strings.Contains(output, "Matches: 2") {
		t.Error("Expected a match count")
	}
	if !strings.Contains(output, "2. Weird Fishes/Arpeggi\n") {
		t.Errorf("Unexpected listing:\n%s", output)
	}
}

func TestPopularity(t *testing.T) {
	if got := Popularity(82); got != "82%" {
		t.Errorf("Expected 82%%, got %q", got)
	}
}
