// Package seed populates an empty database with the sample catalog.
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/boyalintegrated/boyalintegrated.com/internal/catalog"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/api/storage"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFile struct {
	Services     []catalog.ServiceRecord     `yaml:"services"`
	Products     []catalog.ProductRecord     `yaml:"products"`
	Testimonials []catalog.TestimonialRecord `yaml:"testimonials"`
}

// Result reports how many rows were inserted.
type Result struct {
	Services     int
	Products     int
	Testimonials int
	Skipped      bool
}

// ForceApply drops the current catalog rows and reapplies the sample
// data, regardless of what the database holds.
func ForceApply(ctx context.Context, store storage.CatalogStore) (Result, error) {
	if err := store.ClearCatalog(ctx); err != nil {
		return Result{}, fmt.Errorf("clear catalog: %w", err)
	}
	return Apply(ctx, store)
}

// Apply inserts the sample catalog when the services table is empty.
// A database that already has services is left untouched.
func Apply(ctx context.Context, store storage.CatalogStore) (Result, error) {
	count, err := store.CountServices(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("count services: %w", err)
	}
	if count > 0 {
		return Result{Skipped: true}, nil
	}

	var f seedFile
	if err := yaml.Unmarshal(seedYAML, &f); err != nil {
		return Result{}, fmt.Errorf("parse seed data: %w", err)
	}

	var res Result
	for _, rec := range f.Services {
		if _, err := store.InsertService(ctx, rec); err != nil {
			return res, fmt.Errorf("seed service %q: %w", rec.Title, err)
		}
		res.Services++
	}
	for _, rec := range f.Products {
		if _, err := store.InsertProduct(ctx, rec); err != nil {
			return res, fmt.Errorf("seed product %q: %w", rec.Name, err)
		}
		res.Products++
	}
	for _, rec := range f.Testimonials {
		if _, err := store.InsertTestimonial(ctx, rec); err != nil {
			return res, fmt.Errorf("seed testimonial by %q: %w", rec.Author, err)
		}
		res.Testimonials++
	}
	return res, nil
}
