// Package site serves the Boyal Integrated Service website: the page
// handlers, form and chat endpoints, and the hypermedia fragments that
// update them in place.
package site

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/boyalintegrated/boyalintegrated.com/internal/catalog"
	"github.com/boyalintegrated/boyalintegrated.com/internal/platform/observability"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/web/chat"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/web/content"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/web/forms"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/web/session"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/web/state"
)

// DefaultReplyTimeout bounds one streamed chat reply.
const DefaultReplyTimeout = 60 * time.Second

// Handler serves all website routes.
type Handler struct {
	loader       *content.Loader
	sessions     *session.Registry
	submitter    forms.Submitter
	assistant    chat.Assistant
	replyTimeout time.Duration
	assetsDir    string
	rd           *renderer
	logger       *zap.Logger
}

// Config assembles a site handler.
type Config struct {
	Loader    *content.Loader
	Sessions  *session.Registry
	Submitter forms.Submitter
	// Assistant may be nil; the chat widget then reports itself unavailable.
	Assistant    chat.Assistant
	ReplyTimeout time.Duration
	// AssetsDir points at the media directory; DefaultAssetsDir when empty.
	AssetsDir string
	Logger    *zap.Logger
}

// New builds the handler and parses all templates.
func New(cfg Config) (Handler, error) {
	if cfg.Loader == nil || cfg.Sessions == nil || cfg.Submitter == nil || cfg.Logger == nil {
		return Handler{}, fmt.Errorf("loader, sessions, submitter, and logger are required")
	}
	if cfg.ReplyTimeout <= 0 {
		cfg.ReplyTimeout = DefaultReplyTimeout
	}
	if cfg.AssetsDir == "" {
		cfg.AssetsDir = DefaultAssetsDir
	}
	rd, err := newRenderer(cfg.Logger)
	if err != nil {
		return Handler{}, err
	}
	return Handler{
		loader:       cfg.Loader,
		sessions:     cfg.Sessions,
		submitter:    cfg.Submitter,
		assistant:    cfg.Assistant,
		replyTimeout: cfg.ReplyTimeout,
		assetsDir:    cfg.AssetsDir,
		rd:           rd,
		logger:       cfg.Logger,
	}, nil
}

// Router builds the site routes.
func (h Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(observability.RequestLogger(h.logger))

	r.Get("/", h.page)
	r.Get("/about", h.page)
	r.Get("/services", h.page)
	r.Get("/services/{title}", h.page)
	r.Get("/gallery", h.page)
	r.Get("/products", h.page)
	r.Get("/products/{name}", h.page)
	r.Get("/booking", h.page)
	r.Get("/contact", h.page)

	r.Post("/forms/booking", h.submitBooking)
	r.Post("/forms/contact", h.submitContact)

	r.Get("/chat", h.chatWidget)
	r.Post("/chat/toggle", h.chatToggle)
	r.Post("/chat/send", h.chatSend)

	r.Post("/retry-connection", h.retryConnection)

	r.Handle("/static/*", staticHandler())
	r.Handle("/images/*", assetsHandler(h.assetsDir))

	r.NotFound(h.notFound)

	return otelhttp.NewHandler(r, "web")
}

// pageData is the template context shared by every page.
type pageData struct {
	Title   string
	Nav     state.Navigation
	Links   []state.NavLink
	Catalog content.Catalog
	Loaded  bool
	Loading bool

	// Category filters the services and products list pages; empty shows all.
	Category string

	Service catalog.Service
	Product catalog.Product
	Found   bool
	Missing string

	Booking forms.BookingForm
	Contact forms.ContactForm
	Chat    chat.View

	Gallery   []GalleryImage
	Showcases []ArtistShowcase
	Values    []CompanyValue
	Stats     []CompanyStat
	AboutMD   string

	Year int
}

func (h Handler) baseData(w http.ResponseWriter, r *http.Request, nav state.Navigation) (pageData, *session.State) {
	snapshot, loaded := h.loader.Snapshot()
	visitor := h.sessions.Ensure(w, r)

	data := pageData{
		Nav:     nav,
		Links:   state.NavLinks(),
		Catalog: snapshot,
		Loaded:  loaded,
		Loading: h.loader.Loading(),
		Year:    time.Now().Year(),
	}
	visitor.WithLock(func(s *session.State) {
		data.Booking = s.Booking
		data.Contact = s.Contact
		// Detached copy: the live session keeps mutating under the lock
		// while a reply streams, the template reads the copy.
		data.Chat = s.Chat.Snapshot()
	})
	return data, visitor
}
