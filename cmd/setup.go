package main

import (
	"context"
	"fmt"
	"os"

	"github.com/amwagner/askminstrel/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup writes a config template when none exists and initializes the lookup
// cache database.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if _, err := os.Stat(configPath); err == nil {
		r.logger.Info("config file already exists", "path", configPath)
	} else {
		if err := shared.CreateConfigFile(configPath); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		r.logger.Info("config file created", "path", configPath)
	}

	r.loadConfig(cmd)

	r.logger.Info("initializing lookup cache", "path", r.config.Cache.Path)

	db, err := r.openCache()
	if err != nil {
		return err
	}
	defer db.Close()

	r.writePlainln("Setup complete.")
	r.writePlainln("Add your API credentials to %s as {\"client_id\": ..., \"client_secret\": ...}",
		r.config.Upstream.CredentialsPath)

	return nil
}
