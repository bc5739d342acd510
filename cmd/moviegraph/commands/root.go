// Package commands defines the moviegraph command tree.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/moviegraph/moviegraph/internal/config"
	"github.com/moviegraph/moviegraph/internal/driver"
	"github.com/moviegraph/moviegraph/internal/logging"
	"github.com/moviegraph/moviegraph/internal/movie"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "moviegraph",
	Short:         "Console client for the Neo4j Movies demo dataset",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	defaultPath := "config/config.toml"
	if v := os.Getenv("MOVIEGRAPH_CONFIG"); v != "" {
		defaultPath = v
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultPath, "path to the TOML config file")

	rootCmd.AddCommand(consoleCmd, serveCmd, exportCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

// app bundles the pieces every command needs: configuration, logger, the
// long-lived driver handle and the movie service on top of it.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	drv    *driver.Neo4jDriver
	movies *movie.Service
}

// newApp loads configuration and establishes the store connection. Callers
// own the returned app and must close it; a connection failure here ends
// the session before any command logic runs.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.Log.Level)

	drv, err := driver.NewNeo4jDriver(ctx, cfg.Neo4j.URI, cfg.Neo4j.User, cfg.Neo4j.Password, cfg.Neo4j.Database)
	if err != nil {
		return nil, err
	}
	logger.Info("connected", "uri", cfg.Neo4j.URI, "database", cfg.Neo4j.Database)

	return &app{
		cfg:    cfg,
		logger: logger,
		drv:    drv,
		movies: movie.NewService(drv, logger),
	}, nil
}

func (a *app) close(ctx context.Context) {
	if err := a.drv.Close(ctx); err != nil {
		a.logger.Warn("driver close failed", "error", err)
	}
}
