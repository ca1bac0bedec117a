package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/testspec/internal/api"
	"github.com/matzehuels/testspec/pkg/cache"
	"github.com/matzehuels/testspec/pkg/pipeline"
)

// apiKeyPrefix scopes service entries in a cache shared with the CLI.
const apiKeyPrefix = "api:"

// serveCommand creates the serve command that runs the HTTP render service.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Long: `Run an HTTP service that renders YAML test specifications.

  POST /api/render?format=excel   YAML body in, artifact out
  GET  /health                    liveness probe

Column, font and color settings come from the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(ctx, noCache, cache.NewScopedKeyer(nil, apiKeyPrefix))
	if err != nil {
		return err
	}
	defer runner.Close()

	var defaults pipeline.Options
	c.config.Apply(&defaults)
	if err := defaults.ValidateForRender(); err != nil {
		return err
	}
	defaults.Logger = nil

	srv := &http.Server{
		Addr:         addr,
		Handler:      api.NewServer(runner, defaults, logger),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		printInfo("Listening on %s", StyleHighlight.Render(addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		printSuccess("Server stopped")
		return nil
	}
}
