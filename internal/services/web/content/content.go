// Package content loads the catalog from the backend API, falling back to
// the embedded demo data per collection when the backend is down or empty.
package content

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/boyalintegrated/boyalintegrated.com/internal/catalog"
)

// Source fetches the live catalog, normally the backend API client.
type Source interface {
	Services(ctx context.Context) ([]catalog.Service, error)
	Products(ctx context.Context) ([]catalog.Product, error)
	Testimonials(ctx context.Context) ([]catalog.Testimonial, error)
}

// Catalog is one loaded snapshot of site content.
type Catalog struct {
	Services     []catalog.Service
	Products     []catalog.Product
	Testimonials []catalog.Testimonial
	// DemoMode is set when any collection came from the embedded fallback.
	DemoMode bool
}

// ServiceByTitle finds a service by its exact title.
func (c Catalog) ServiceByTitle(title string) (catalog.Service, bool) {
	for _, s := range c.Services {
		if s.Title == title {
			return s, true
		}
	}
	return catalog.Service{}, false
}

// ProductByName finds a product by its exact name.
func (c Catalog) ProductByName(name string) (catalog.Product, bool) {
	for _, p := range c.Products {
		if p.Name == name {
			return p, true
		}
	}
	return catalog.Product{}, false
}

// ServicesIn returns the services in the named category. An empty or
// unknown category returns the full list.
func (c Catalog) ServicesIn(category string) []catalog.Service {
	want := catalog.ServiceCategory(category)
	if !want.Valid() {
		return c.Services
	}
	var filtered []catalog.Service
	for _, s := range c.Services {
		if s.Category == want {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// ProductsIn returns the products in the named category. An empty or
// unknown category returns the full list.
func (c Catalog) ProductsIn(category string) []catalog.Product {
	want := catalog.ProductCategory(category)
	if !want.Valid() {
		return c.Products
	}
	var filtered []catalog.Product
	for _, p := range c.Products {
		if p.Category == want {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Loader fetches and caches the catalog snapshot.
type Loader struct {
	source Source
	logger *zap.Logger

	mu      sync.RWMutex
	cached  Catalog
	loaded  bool
	loading bool
}

// NewLoader constructs a loader over the given source.
func NewLoader(source Source, logger *zap.Logger) *Loader {
	return &Loader{source: source, logger: logger}
}

// Load fetches all three collections concurrently. A collection that fails
// or comes back empty is replaced by the embedded demo data and flips the
// snapshot into demo mode; the other collections keep their live data.
func (l *Loader) Load(ctx context.Context) Catalog {
	l.mu.Lock()
	l.loading = true
	l.mu.Unlock()

	var (
		snapshot Catalog
		demo     [3]bool
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		services, err := l.source.Services(ctx)
		if err != nil || len(services) == 0 {
			l.logFallback("services", err)
			services, demo[0] = l.fallbackServices(), true
		}
		snapshot.Services = services
		return nil
	})
	g.Go(func() error {
		products, err := l.source.Products(ctx)
		if err != nil || len(products) == 0 {
			l.logFallback("products", err)
			products, demo[1] = l.fallbackProducts(), true
		}
		snapshot.Products = products
		return nil
	})
	g.Go(func() error {
		testimonials, err := l.source.Testimonials(ctx)
		if err != nil || len(testimonials) == 0 {
			l.logFallback("testimonials", err)
			testimonials, demo[2] = l.fallbackTestimonials(), true
		}
		snapshot.Testimonials = testimonials
		return nil
	})
	_ = g.Wait()

	snapshot.DemoMode = demo[0] || demo[1] || demo[2]

	l.mu.Lock()
	l.cached = snapshot
	l.loaded = true
	l.loading = false
	l.mu.Unlock()
	return snapshot
}

// Snapshot returns the cached catalog. ok is false before the first Load.
func (l *Loader) Snapshot() (Catalog, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cached, l.loaded
}

// Loading reports whether a Load is in flight.
func (l *Loader) Loading() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loading
}

// Retry refetches the catalog, replacing the cached snapshot.
func (l *Loader) Retry(ctx context.Context) Catalog {
	return l.Load(ctx)
}

func (l *Loader) logFallback(collection string, err error) {
	if err != nil {
		l.logger.Warn("catalog fallback", zap.String("collection", collection), zap.Error(err))
		return
	}
	l.logger.Info("catalog fallback, empty collection", zap.String("collection", collection))
}

func (l *Loader) fallbackServices() []catalog.Service {
	services, err := catalog.FallbackServices()
	if err != nil {
		l.logger.Error("load fallback services", zap.Error(err))
		return nil
	}
	return services
}

func (l *Loader) fallbackProducts() []catalog.Product {
	products, err := catalog.FallbackProducts()
	if err != nil {
		l.logger.Error("load fallback products", zap.Error(err))
		return nil
	}
	return products
}

func (l *Loader) fallbackTestimonials() []catalog.Testimonial {
	testimonials, err := catalog.FallbackTestimonials()
	if err != nil {
		l.logger.Error("load fallback testimonials", zap.Error(err))
		return nil
	}
	return testimonials
}
