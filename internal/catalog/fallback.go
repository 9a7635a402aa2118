package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed fallback.yaml
var fallbackYAML []byte

type fallbackFile struct {
	Services     []ServiceRecord     `yaml:"services"`
	Products     []ProductRecord     `yaml:"products"`
	Testimonials []TestimonialRecord `yaml:"testimonials"`
}

var loadFallback = sync.OnceValues(func() (fallbackFile, error) {
	var f fallbackFile
	if err := yaml.Unmarshal(fallbackYAML, &f); err != nil {
		return f, fmt.Errorf("parse fallback catalog: %w", err)
	}
	return f, nil
})

// FallbackServices returns the embedded demo services.
func FallbackServices() ([]Service, error) {
	f, err := loadFallback()
	if err != nil {
		return nil, err
	}
	services := make([]Service, len(f.Services))
	for i, rec := range f.Services {
		services[i] = ServiceFromRecord(rec)
	}
	return services, nil
}

// FallbackProducts returns the embedded demo products.
func FallbackProducts() ([]Product, error) {
	f, err := loadFallback()
	if err != nil {
		return nil, err
	}
	products := make([]Product, len(f.Products))
	for i, rec := range f.Products {
		products[i] = ProductFromRecord(rec)
	}
	return products, nil
}

// FallbackTestimonials returns the embedded demo testimonials.
func FallbackTestimonials() ([]Testimonial, error) {
	f, err := loadFallback()
	if err != nil {
		return nil, err
	}
	testimonials := make([]Testimonial, len(f.Testimonials))
	for i, rec := range f.Testimonials {
		testimonials[i] = TestimonialFromRecord(rec, i)
	}
	return testimonials, nil
}

// FallbackRecords returns the raw embedded records, used to seed an empty
// database with the demo catalog.
func FallbackRecords() ([]ServiceRecord, []ProductRecord, []TestimonialRecord, error) {
	f, err := loadFallback()
	if err != nil {
		return nil, nil, nil, err
	}
	return f.Services, f.Products, f.Testimonials, nil
}
