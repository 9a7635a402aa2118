// Package web parses configuration for and runs the website service.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/boyalintegrated/boyalintegrated.com/internal/platform/config"
	"github.com/boyalintegrated/boyalintegrated.com/internal/platform/observability"
	"github.com/boyalintegrated/boyalintegrated.com/internal/platform/otel"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/web/app"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/web/chat"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/web/site"
)

type envConfig struct {
	HTTPAddr   string `env:"BOYAL_WEB_HTTP_ADDR" envDefault:"localhost:8081"`
	APIBaseURL string `env:"BOYAL_WEB_API_BASE_URL" envDefault:"http://localhost:8080"`
	AssetsDir  string `env:"BOYAL_WEB_ASSETS_DIR" envDefault:"public"`

	ChatAPIKey   string        `env:"BOYAL_WEB_CHAT_API_KEY"`
	ChatBaseURL  string        `env:"BOYAL_WEB_CHAT_BASE_URL"`
	ChatModel    string        `env:"BOYAL_WEB_CHAT_MODEL"`
	ReplyTimeout time.Duration `env:"BOYAL_WEB_CHAT_REPLY_TIMEOUT"`
}

// ParseConfig reads the environment and then lets flags override it.
// The chat API key is env-only so it never shows up in process listings.
func ParseConfig(fs *flag.FlagSet, args []string) (app.Config, error) {
	var envCfg envConfig
	if err := config.ParseEnv(&envCfg); err != nil {
		return app.Config{}, err
	}
	if envCfg.ChatModel == "" {
		envCfg.ChatModel = chat.DefaultModel
	}
	if envCfg.ReplyTimeout <= 0 {
		envCfg.ReplyTimeout = site.DefaultReplyTimeout
	}

	cfg := app.Config{
		Addr:         envCfg.HTTPAddr,
		APIBaseURL:   envCfg.APIBaseURL,
		AssetsDir:    envCfg.AssetsDir,
		ChatAPIKey:   envCfg.ChatAPIKey,
		ChatBaseURL:  envCfg.ChatBaseURL,
		ChatModel:    envCfg.ChatModel,
		ReplyTimeout: envCfg.ReplyTimeout,
	}
	fs.StringVar(&cfg.Addr, "http-addr", cfg.Addr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "backend API base URL")
	fs.StringVar(&cfg.AssetsDir, "assets-dir", cfg.AssetsDir, "directory with site media")
	fs.StringVar(&cfg.ChatModel, "chat-model", cfg.ChatModel, "chat completion model")
	if err := fs.Parse(args); err != nil {
		return app.Config{}, err
	}
	return cfg, nil
}

// Run serves the website until ctx is cancelled.
func Run(ctx context.Context, cfg app.Config) error {
	logger, err := observability.NewLogger()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	shutdown, err := otel.Setup(ctx, "boyal-web")
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer shutdown(context.Background())

	srv, err := app.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	return srv.Run(ctx)
}
