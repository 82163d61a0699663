package main

import (
	"context"
	"errors"
	"os"

	"github.com/amwagner/askminstrel/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	runner := NewRunner(RunnerOpts{Logger: logger})

	app := &cli.Command{
		Name:     "minstrel",
		Usage:    "A web based client for all musical questions. Launch and browse.",
		Version:  "1.0.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrMissingCredentials) || errors.Is(err, shared.ErrInvalidCredentials) {
			logger.Fatalf("credential error: %v", err)
		}
		logger.Fatalf("application error: %v", err)
	}
}
