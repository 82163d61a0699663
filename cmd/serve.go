package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/amwagner/askminstrel/internal/server"
	"github.com/amwagner/askminstrel/internal/shared"
	"github.com/amwagner/askminstrel/internal/web"
	"github.com/urfave/cli/v3"
)

// validatePort enforces the ephemeral port range the server is allowed to bind.
func validatePort(port int) error {
	if port < 49152 || port > 65535 {
		return fmt.Errorf("%w: port %d must be in range 49152-65535", shared.ErrInvalidFlag, port)
	}
	return nil
}

// Serve builds the provider and the endpoint layer, then runs the HTTP server
// until the context is cancelled.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	r.loadConfig(cmd)

	port := cmd.Int("port")
	if err := validatePort(port); err != nil {
		return err
	}

	staticDir := cmd.String("static-dir")
	if staticDir == "" {
		staticDir = r.config.Server.StaticDir
	}

	// Credentials load and token fetch happen here, before the listener binds.
	provider, cleanup, err := r.buildProvider(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	addr := fmt.Sprintf("%s:%d", r.config.Server.Host, port)
	baseURL := "http://" + addr

	router := server.NewBasicRouter()
	router.Use(server.Recover(r.logger), server.RequestLogger(r.logger))

	router.Handler(server.NewSearchHandler(provider, r.logger))
	router.Handler(server.NewDetailHandler(provider, r.logger))
	router.Handler(server.NewHealthHandler(r.logger))

	hasStatic := false
	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			router.Handler(server.NewStaticHandler(staticDir))
			hasStatic = true
			r.logger.Info("serving static assets", "dir", staticDir)
		} else {
			r.logger.Warn("static asset directory not found, /app disabled", "dir", staticDir)
		}
	}

	vanilla, err := web.NewVanillaUI(baseURL, r.httpClient, r.logger)
	if err != nil {
		return fmt.Errorf("failed to build vanilla UI: %w", err)
	}
	router.Handler(vanilla)
	router.Handler(server.NewIndexHandler(hasStatic))

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	if cmd.Bool("open") {
		go func() {
			time.Sleep(250 * time.Millisecond)
			if err := shared.OpenBrowser(baseURL + "/vanilla"); err != nil {
				r.logger.Warn("failed to open browser", "error", err)
			}
		}()
	}

	r.logger.Info("server listening", "addr", addr, "provider", provider.Name())

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
