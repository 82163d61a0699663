package main

import (
	"context"
	"fmt"

	"github.com/amwagner/askminstrel/internal/formatter"
	"github.com/amwagner/askminstrel/internal/models"
	"github.com/amwagner/askminstrel/internal/shared"
	"github.com/urfave/cli/v3"
)

// Search queries the catalog and prints the results in the requested format.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	r.loadConfig(cmd)

	text := cmd.StringArg("query")
	if text == "" {
		return fmt.Errorf("%w: search query", shared.ErrMissingArgument)
	}

	kind, err := models.ParseKind(cmd.String("type"))
	if err != nil {
		return err
	}

	query := models.SearchQuery{Text: text, Kind: kind}

	provider, cleanup, err := r.buildProvider(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	r.logger.Info("searching", "type", kind, "query", text)

	items, err := provider.Search(ctx, query)
	if err != nil {
		return err
	}

	switch format := cmd.String("format"); format {
	case "json":
		return r.writeJSON(items, cmd.Bool("pretty"))
	case "csv":
		output, err := formatter.ResultsToCSV(items)
		if err != nil {
			return err
		}
		return r.writePlain("%s", output)
	case "markdown":
		return r.writePlain("%s", formatter.ResultsToMarkdown(query, items))
	case "text":
		return r.writePlain("%s", formatter.ResultsToText(query, items))
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
}

// Get fetches one detail page by id and prints it as JSON.
func (r *Runner) Get(ctx context.Context, cmd *cli.Command) error {
	r.loadConfig(cmd)

	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: item id", shared.ErrMissingArgument)
	}

	kind, err := models.ParseKind(cmd.String("type"))
	if err != nil {
		return err
	}

	provider, cleanup, err := r.buildProvider(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	r.logger.Info("fetching detail", "type", kind, "id", id)

	var page any
	switch kind {
	case models.KindArtist:
		page, err = provider.Artist(ctx, id)
	case models.KindAlbum:
		page, err = provider.Album(ctx, id)
	case models.KindTrack:
		page, err = provider.Track(ctx, id)
	}
	if err != nil {
		return err
	}

	return r.writeJSON(page, cmd.Bool("pretty"))
}
