package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/amwagner/askminstrel/internal/repositories"
	"github.com/amwagner/askminstrel/internal/services"
	"github.com/amwagner/askminstrel/internal/shared"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	provider   services.Provider
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Provider   services.Provider
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &Runner{
		config:     opts.Config,
		provider:   opts.Provider,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		serveCommand, searchCommand, getCommand, setupCommand, cacheCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// loadConfig reads the config file named by the command's --config flag,
// falling back to embedded defaults when it does not exist.
func (r *Runner) loadConfig(cmd *cli.Command) {
	configPath := cmd.String("config")

	if _, err := os.Stat(configPath); err == nil {
		if loaded, err := shared.LoadConfig(configPath); err == nil {
			r.config = loaded
			return
		} else {
			r.logger.Warn("failed to load config, using defaults", "path", configPath, "error", err)
		}
	}

	r.config = shared.DefaultConfig()
}

// openCache opens the lookup cache database and ensures the schema is current.
func (r *Runner) openCache() (*sql.DB, error) {
	db, err := shared.NewDatabase(r.config.Cache.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lookup cache: %w", err)
	}

	shared.ConfigureDatabase(db, r.config.Cache.MaxOpenConns, r.config.Cache.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate lookup cache: %w", err)
	}

	return db, nil
}

// buildProvider constructs the catalog provider for a command invocation.
//
// Credentials are loaded fresh and any failure aborts the command before
// network listeners or upstream calls happen. The returned cleanup closes the
// cache database when one was opened.
func (r *Runner) buildProvider(ctx context.Context, cmd *cli.Command) (services.Provider, func(), error) {
	noop := func() {}

	if r.provider != nil {
		return r.provider, noop, nil
	}

	creds, err := shared.LoadCredentials(r.config.Upstream.CredentialsPath)
	if err != nil {
		return nil, noop, err
	}

	spotify, err := services.NewSpotifyService(ctx, creds, r.config.Upstream)
	if err != nil {
		return nil, noop, err
	}

	if cmd.Bool("no-store") {
		// Erase any stored lookups along with disabling the cache.
		if err := os.Remove(r.config.Cache.Path); err != nil && !os.IsNotExist(err) {
			r.logger.Warn("failed to erase lookup cache", "path", r.config.Cache.Path, "error", err)
		}
		return spotify, noop, nil
	}

	if !r.config.Cache.Enabled {
		return spotify, noop, nil
	}

	db, err := r.openCache()
	if err != nil {
		r.logger.Warn("lookup cache unavailable, continuing without it", "error", err)
		return spotify, noop, nil
	}

	repo := repositories.NewLookupRepository(db)
	return services.NewCachedProvider(spotify, repo, r.logger), func() { db.Close() }, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
