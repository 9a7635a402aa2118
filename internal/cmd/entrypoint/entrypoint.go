// Package entrypoint runs the API and web services in one process,
// the arrangement used by the single-container deployment.
package entrypoint

import (
	"context"
	"flag"
	"fmt"

	"golang.org/x/sync/errgroup"

	apicmd "github.com/boyalintegrated/boyalintegrated.com/internal/cmd/api"
	webcmd "github.com/boyalintegrated/boyalintegrated.com/internal/cmd/web"
	apiapp "github.com/boyalintegrated/boyalintegrated.com/internal/services/api/app"
	webapp "github.com/boyalintegrated/boyalintegrated.com/internal/services/web/app"
)

// Config pairs the settings of both services.
type Config struct {
	API apiapp.Config
	Web webapp.Config
}

// ParseConfig resolves both services' configuration. Flags are split by
// prefix so one command line can address either service.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	apiFS := flag.NewFlagSet("api", flag.ContinueOnError)
	apiCfg, err := apicmd.ParseConfig(apiFS, nil)
	if err != nil {
		return Config{}, fmt.Errorf("api config: %w", err)
	}

	webFS := flag.NewFlagSet("web", flag.ContinueOnError)
	webCfg, err := webcmd.ParseConfig(webFS, nil)
	if err != nil {
		return Config{}, fmt.Errorf("web config: %w", err)
	}

	fs.StringVar(&apiCfg.Addr, "api-addr", apiCfg.Addr, "API listen address")
	fs.StringVar(&apiCfg.DBPath, "db-path", apiCfg.DBPath, "SQLite database path")
	fs.StringVar(&webCfg.Addr, "web-addr", webCfg.Addr, "website listen address")
	fs.StringVar(&webCfg.APIBaseURL, "api-base-url", webCfg.APIBaseURL, "backend API base URL")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return Config{API: apiCfg, Web: webCfg}, nil
}

// Run supervises both services; the first failure stops the other.
func Run(ctx context.Context, cfg Config) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return apicmd.Run(ctx, cfg.API)
	})
	g.Go(func() error {
		return webcmd.Run(ctx, cfg.Web)
	})
	return g.Wait()
}
