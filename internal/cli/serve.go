package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/wordgrid/wordgrid/internal/server"
	"github.com/wordgrid/wordgrid/pkg/cache"
	"github.com/wordgrid/wordgrid/pkg/pipeline"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		mongoURL string
		mongoDB  string
		redisURL string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the wordgrid HTTP API",
		Long: `Run the wordgrid HTTP API.

The API creates puzzles from word lists, stores them, and serves rendered
artifacts. Puzzles live in memory unless a MongoDB URL is given. Rendered
artifacts are cached on disk, or in Redis when a Redis URL is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, mongoURL, mongoDB, redisURL, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&mongoURL, "mongo-url", "", "MongoDB connection URL (in-memory store if empty)")
	cmd.Flags().StringVar(&mongoDB, "mongo-db", "wordgrid", "MongoDB database name")
	cmd.Flags().StringVar(&redisURL, "redis-url", "", "Redis connection URL (file cache if empty)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable artifact caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, mongoURL, mongoDB, redisURL string, noCache bool) error {
	store, err := c.newStore(ctx, mongoURL, mongoDB)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			c.Logger.Warn("Store close failed", "error", err)
		}
	}()

	runner, err := c.newServerRunner(ctx, redisURL, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	srv := &http.Server{
		Addr:    addr,
		Handler: server.NewServer(store, runner, c.Logger),
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("Listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newStore selects the puzzle store backend.
func (c *CLI) newStore(ctx context.Context, mongoURL, mongoDB string) (server.Store, error) {
	if mongoURL == "" {
		c.Logger.Debug("Using in-memory puzzle store")
		return server.NewMemoryStore(), nil
	}
	c.Logger.Debug("Connecting to MongoDB", "db", mongoDB)
	return server.NewMongoStore(ctx, mongoURL, mongoDB)
}

// newServerRunner builds the pipeline runner for the HTTP API. Server cache
// keys carry a prefix so a shared Redis instance can also serve other uses.
func (c *CLI) newServerRunner(ctx context.Context, redisURL string, noCache bool) (*pipeline.Runner, error) {
	if redisURL == "" {
		return c.newRunner(noCache)
	}
	rc, err := cache.NewRedisCache(ctx, redisURL)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(nil, "server:")
	return pipeline.NewRunner(rc, keyer, c.Logger), nil
}
