package main

import (
	"context"

	"github.com/amwagner/askminstrel/internal/ui"
	"github.com/urfave/cli/v3"
)

// Tui launches the terminal search browser.
func (r *Runner) Tui(ctx context.Context, cmd *cli.Command) error {
	r.loadConfig(cmd)

	provider, cleanup, err := r.buildProvider(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	return ui.Run(ctx, provider)
}
