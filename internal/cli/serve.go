package cli

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/piechart/pkg/cache"
)

// serveCommand creates the serve command that exposes the pipeline over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		timeout  time.Duration
		origins  []string
		cacheDir string
		cacheTTL time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout and render pipeline over HTTP",
		Long: `Serve the layout and render pipeline over HTTP.

Endpoints:
  GET  /healthz               build information
  GET  /v1/palettes           built-in color scales and themes
  POST /v1/layout             chart file in, layout JSON out
  POST /v1/render?format=svg  chart file in, artifact out

The chart format is taken from the "chart" query parameter (json, toml, yaml)
or the Content-Type header, defaulting to JSON.

With --cache-dir, layouts and artifacts are cached on disk by content and
render options. Responses carry X-Cache: hit or miss.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := serverConfig{timeout: timeout, origins: origins, cacheTTL: cacheTTL}
			if cacheDir != "" {
				fc, err := cache.NewFileCache(cacheDir)
				if err != nil {
					return err
				}
				defer fc.Close()
				c.Logger.Debug("artifact cache enabled", "dir", fc.Dir(), "ttl", cacheTTL)
				cfg.cache = fc
			}
			return c.runServe(cmd.Context(), addr, cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().DurationVar(&timeout, "timeout", defaultRequestTimeout, "per-request timeout")
	cmd.Flags().StringSliceVar(&origins, "cors-origin", nil, "allowed CORS origins (default: none)")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "cache rendered artifacts in this directory")
	cmd.Flags().DurationVar(&cacheTTL, "cache-ttl", cache.DefaultTTL, "how long cached artifacts stay valid")

	return cmd
}

// runServe starts the server and shuts it down gracefully when ctx is done.
func (c *CLI) runServe(ctx context.Context, addr string, cfg serverConfig) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           newServer(c.Logger, cfg).Router(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.timeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
