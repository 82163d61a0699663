// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// serveCommand launches the lookup server
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the local lookup server",
		Flags: []cli.Flag{
			configFlag(),
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Ephemeral TCP/IP port for the web server (49152-65535)",
				Value:   50861,
			},
			&cli.StringFlag{
				Name:  "static-dir",
				Usage: "Directory of built reactive front end assets",
			},
			&cli.BoolFlag{
				Name:  "no-store",
				Usage: "Disable and erase lookup memoization",
			},
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Open the vanilla UI in the system browser",
			},
		},
		Action: r.Serve,
	}
}

// searchCommand searches the catalog from the terminal
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search the catalog for artists, albums, or tracks",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "query"},
		},
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Result type: artist, album, or track",
				Value:   "track",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: json, csv, markdown, or text",
				Value:   "json",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
				Value: true,
			},
			&cli.BoolFlag{
				Name:  "no-store",
				Usage: "Disable and erase lookup memoization",
			},
		},
		Action: r.Search,
	}
}

// getCommand fetches a detail page by id
func getCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Fetch detail for a catalog item by id",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id"},
		},
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:     "type",
				Aliases:  []string{"t"},
				Usage:    "Item type: artist, album, or track",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
				Value: true,
			},
			&cli.BoolFlag{
				Name:  "no-store",
				Usage: "Disable and erase lookup memoization",
			},
		},
		Action: r.Get,
	}
}

// setupCommand initializes configuration and the lookup cache
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Create config.toml and initialize the lookup cache",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Setup,
	}
}

// cacheCommand inspects and clears the lookup cache
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Lookup cache maintenance",
		Commands: []*cli.Command{
			{
				Name:   "stats",
				Usage:  "Show lookup cache statistics",
				Flags:  []cli.Flag{configFlag()},
				Action: r.CacheStats,
			},
			{
				Name:   "clear",
				Usage:  "Remove every cached lookup",
				Flags:  []cli.Flag{configFlag()},
				Action: r.CacheClear,
			},
		},
	}
}

// tuiCommand launches the terminal search browser
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Browse the catalog in the terminal",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "no-store",
				Usage: "Disable and erase lookup memoization",
			},
		},
		Action: r.Tui,
	}
}
