// Package api parses configuration for and runs the backend API service.
package api

import (
	"context"
	"flag"
	"fmt"

	"github.com/boyalintegrated/boyalintegrated.com/internal/platform/config"
	"github.com/boyalintegrated/boyalintegrated.com/internal/platform/observability"
	"github.com/boyalintegrated/boyalintegrated.com/internal/platform/otel"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/api/app"
)

type envConfig struct {
	HTTPAddr    string `env:"BOYAL_API_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath      string `env:"BOYAL_API_DB_PATH" envDefault:"data/boyal.db"`
	SeedOnStart bool   `env:"BOYAL_API_SEED_ON_START" envDefault:"true"`
}

// ParseConfig reads the environment and then lets flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (app.Config, error) {
	var envCfg envConfig
	if err := config.ParseEnv(&envCfg); err != nil {
		return app.Config{}, err
	}

	cfg := app.Config{
		Addr:        envCfg.HTTPAddr,
		DBPath:      envCfg.DBPath,
		SeedOnStart: envCfg.SeedOnStart,
	}
	fs.StringVar(&cfg.Addr, "http-addr", cfg.Addr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.BoolVar(&cfg.SeedOnStart, "seed", cfg.SeedOnStart, "seed sample catalog data when empty")
	if err := fs.Parse(args); err != nil {
		return app.Config{}, err
	}
	return cfg, nil
}

// Run serves the API until ctx is cancelled.
func Run(ctx context.Context, cfg app.Config) error {
	logger, err := observability.NewLogger()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	shutdown, err := otel.Setup(ctx, "boyal-api")
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer shutdown(context.Background())

	srv, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("init api server: %w", err)
	}
	return srv.Run(ctx)
}
