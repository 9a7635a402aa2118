// Package app wires the API service together and runs its HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/boyalintegrated/boyalintegrated.com/internal/services/api/rest"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/api/seed"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/api/storage/sqlite"
)

// Config holds the API service settings.
type Config struct {
	Addr        string
	DBPath      string
	SeedOnStart bool
}

// Server is the assembled API service.
type Server struct {
	cfg    Config
	logger *zap.Logger
	store  *sqlite.Store
	http   *http.Server

	// addr is set once the listener is bound, for tests using ":0".
	addr chan string
}

// New opens storage, optionally seeds it, and prepares the HTTP server.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (*Server, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("http address is required")
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if cfg.SeedOnStart {
		res, err := seed.Apply(ctx, store)
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("seed store: %w", err)
		}
		if res.Skipped {
			logger.Info("seed skipped, catalog already populated")
		} else {
			logger.Info("seeded catalog",
				zap.Int("services", res.Services),
				zap.Int("products", res.Products),
				zap.Int("testimonials", res.Testimonials))
		}
	}

	handler := rest.New(store, logger)
	return &Server{
		cfg:    cfg,
		logger: logger,
		store:  store,
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

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	defer s.store.Close()

	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	s.addr <- ln.Addr().String()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.Serve(ln)
	}()
	s.logger.Info("api listening", zap.String("addr", ln.Addr().String()))

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
