// Package app wires the web service together and runs its HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/boyalintegrated/boyalintegrated.com/internal/services/web/apiclient"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/web/chat"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/web/content"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/web/session"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/web/site"
)

// pruneInterval paces expired-session cleanup.
const pruneInterval = time.Hour

// Config holds the web service settings.
type Config struct {
	Addr       string
	APIBaseURL string
	AssetsDir  string

	// ChatAPIKey enables the assistant; empty leaves the widget unavailable.
	ChatAPIKey   string
	ChatBaseURL  string
	ChatModel    string
	ReplyTimeout time.Duration
}

// Server is the assembled web service.
type Server struct {
	cfg      Config
	logger   *zap.Logger
	loader   *content.Loader
	sessions *session.Registry
	http     *http.Server

	// addr is set once the listener is bound, for tests using ":0".
	addr chan string
}

// New builds the API client, chat assistant, and site handler.
func New(cfg Config, logger *zap.Logger) (*Server, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("http address is required")
	}

	api, err := apiclient.New(cfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("api client: %w", err)
	}

	var assistant chat.Assistant
	if cfg.ChatAPIKey != "" {
		a, err := chat.NewOpenAIAssistant(cfg.ChatAPIKey, cfg.ChatBaseURL, cfg.ChatModel)
		if err != nil {
			return nil, fmt.Errorf("chat assistant: %w", err)
		}
		assistant = a
	} else {
		logger.Warn("chat api key not set, widget will report itself unavailable")
	}

	loader := content.NewLoader(api, logger)
	sessions := session.NewRegistry(assistant != nil)

	handler, err := site.New(site.Config{
		Loader:       loader,
		Sessions:     sessions,
		Submitter:    api,
		Assistant:    assistant,
		ReplyTimeout: cfg.ReplyTimeout,
		AssetsDir:    cfg.AssetsDir,
		Logger:       logger,
	})
	if err != nil {
		return nil, fmt.Errorf("site handler: %w", err)
	}

	return &Server{
		cfg:      cfg,
		logger:   logger,
		loader:   loader,
		sessions: sessions,
		http: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler.Router(),
			ReadHeaderTimeout: 10 * time.Second,
		},
		addr: make(chan string, 1),
	}, nil
}

// Addr returns the bound listen address once Run has started.
func (s *Server) Addr() string {
	return <-s.addr
}

// Run loads the catalog, serves HTTP until ctx is cancelled, and shuts
// down gracefully. A failed initial load falls back to demo content, so
// the site comes up even when the API is unreachable.
func (s *Server) Run(ctx context.Context) error {
	snapshot := s.loader.Load(ctx)
	if snapshot.DemoMode {
		s.logger.Warn("catalog load fell back to demo content")
	}

	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	s.addr <- ln.Addr().String()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.Serve(ln)
	}()
	s.logger.Info("web listening", zap.String("addr", ln.Addr().String()))

	go s.pruneLoop(ctx)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) pruneLoop(ctx context.Context) {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.sessions.Prune(); n > 0 {
				s.logger.Info("pruned expired sessions", zap.Int("count", n))
			}
		}
	}
}
