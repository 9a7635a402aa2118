// Package seed populates the catalog database with sample data.
package seed

import (
	"context"
	"flag"
	"fmt"

	"go.uber.org/zap"

	"github.com/boyalintegrated/boyalintegrated.com/internal/platform/config"
	"github.com/boyalintegrated/boyalintegrated.com/internal/platform/observability"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/api/seed"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/api/storage/sqlite"
)

type envConfig struct {
	DBPath string `env:"BOYAL_API_DB_PATH" envDefault:"data/boyal.db"`
}

// Config holds the seed command configuration.
type Config struct {
	DBPath string
	// Force reseeds even when the catalog already has rows.
	Force bool
}

// ParseConfig reads the environment and then lets flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var envCfg envConfig
	if err := config.ParseEnv(&envCfg); err != nil {
		return Config{}, err
	}

	cfg := Config{DBPath: envCfg.DBPath}
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.BoolVar(&cfg.Force, "force", false, "clear the catalog tables and reseed")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run applies the sample dataset and reports what was inserted.
func Run(ctx context.Context, cfg Config) error {
	logger, err := observability.NewLogger()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	apply := seed.Apply
	if cfg.Force {
		apply = seed.ForceApply
	}
	res, err := apply(ctx, store)
	if err != nil {
		return fmt.Errorf("seed store: %w", err)
	}
	if res.Skipped {
		logger.Info("seed skipped, catalog already populated", zap.String("db", cfg.DBPath))
		return nil
	}
	logger.Info("seeded catalog",
		zap.String("db", cfg.DBPath),
		zap.Int("services", res.Services),
		zap.Int("products", res.Products),
		zap.Int("testimonials", res.Testimonials))
	return nil
}
