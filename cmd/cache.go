package main

import (
	"context"

	"github.com/amwagner/askminstrel/internal/repositories"
	"github.com/urfave/cli/v3"
)

// CacheStats prints lookup cache statistics.
func (r *Runner) CacheStats(ctx context.Context, cmd *cli.Command) error {
	r.loadConfig(cmd)

	db, err := r.openCache()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewLookupRepository(db)

	count, err := repo.Count()
	if err != nil {
		return err
	}

	r.writePlain("Lookup cache: %s\n", r.config.Cache.Path)
	r.writePlain("Cached lookups: %d\n", count)

	if count > 0 {
		oldest, err := repo.Oldest()
		if err != nil {
			return err
		}
		r.writePlain("Oldest entry: %s\n", oldest.Format("2006-01-02 15:04:05"))
	}

	return nil
}

// CacheClear removes every cached lookup.
func (r *Runner) CacheClear(ctx context.Context, cmd *cli.Command) error {
	r.loadConfig(cmd)

	db, err := r.openCache()
	if err != nil {
		return err
	}
	defer db.Close()

	dropped, err := repositories.NewLookupRepository(db).Purge()
	if err != nil {
		return err
	}

	r.logger.Info("lookup cache cleared", "dropped", dropped)
	r.writePlain("Removed %d cached lookups.\n", dropped)

	return nil
}
