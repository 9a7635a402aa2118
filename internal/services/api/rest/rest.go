// Package rest exposes the public JSON API for the website.
package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/boyalintegrated/boyalintegrated.com/internal/platform/observability"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/api/storage"
)

// Handler serves the /api routes.
type Handler struct {
	store    storage.Store
	logger   *zap.Logger
	validate *validator.Validate
}

// New constructs the API handler.
func New(store storage.Store, logger *zap.Logger) Handler {
	return Handler{
		store:    store,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Router builds the chi router with the standard middleware stack.
func (h Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(observability.RequestLogger(h.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/services", h.listServices)
		r.Get("/products", h.listProducts)
		r.Get("/testimonials", h.listTestimonials)
		r.Post("/booking", h.createBooking)
		r.Post("/contact", h.createContact)
		r.Get("/health", h.health)
	})

	return otelhttp.NewHandler(r, "api")
}
