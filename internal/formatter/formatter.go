// package formatter renders search results in various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/amwagner/askminstrel/internal/models"
	"github.com/amwagner/askminstrel/internal/shared"
)

// ResultsToCSV converts search results to CSV with columns: ID, Kind, Name, Artists, Album, Released, Duration
func ResultsToCSV(items []models.CatalogItem) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Kind", "Name", "Artists", "Album", "Released", "Duration"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, item := range items {
		record := []string{
			item.ID,
			string(item.Kind),
			item.Name,
			artistNames(item),
			albumName(item),
			item.ReleaseDate,
			duration(item),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ResultsToMarkdown converts search results to a Markdown listing.
func ResultsToMarkdown(query models.SearchQuery, items []models.CatalogItem) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s results for %q\n\n", query.Kind, query.Text))
	buf.WriteString(fmt.Sprintf("**Matches**: %d\n\n", len(items)))

	for i, item := range items {
		buf.WriteString(fmt.Sprintf("%d. %s", i+1, item.Name))
		if names := artistNames(item); names != "" {
			buf.WriteString(" - " + names)
		}
		if album := albumName(item); album != "" {
			buf.WriteString(fmt.Sprintf(" (%s)", album))
		}
		if d := duration(item); d != "" {
			buf.WriteString(fmt.Sprintf(" [%s]", d))
		}
		if item.ExternalURL != "" {
			buf.WriteString(fmt.Sprintf(" <%s>", item.ExternalURL))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes()
}

// ResultsToText converts search results to a plain text listing.
func ResultsToText(query models.SearchQuery, items []models.CatalogItem) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Search: %s (%s)\n", query.Text, query.Kind))
	buf.WriteString(fmt.Sprintf("Matches: %d\n\n", len(items)))

	for i, item := range items {
		buf.WriteString(fmt.Sprintf("%d. %s", i+1, item.Name))
		if names := artistNames(item); names != "" {
			buf.WriteString(" - " + names)
		}
		buf.WriteString("\n")
	}

	return buf.Bytes()
}

func artistNames(item models.CatalogItem) string {
	names := make([]string, 0, len(item.Artists))
	for _, a := range item.Artists {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}

func albumName(item models.CatalogItem) string {
	if item.Album == nil {
		return ""
	}
	return item.Album.Name
}

func duration(item models.CatalogItem) string {
	if item.DurationMS <= 0 {
		return ""
	}
	return shared.FormatDuration(item.DurationMS)
}

// Popularity renders a 0-100 popularity score as a percentage string.
func Popularity(p int) string {
	return strconv.Itoa(p) + "%"
}
