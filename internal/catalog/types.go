// Package catalog defines the domain types shared by the API backend and
// the website: services, rental products, and client testimonials.
package catalog

// ServiceCategory groups services on the services page.
type ServiceCategory string

const (
	CategoryProduction ServiceCategory = "Production"
	CategoryLiveSound  ServiceCategory = "Live Sound"
	CategoryPlanning   ServiceCategory = "Planning"
)

// ServiceCategories lists all categories in display order.
func ServiceCategories() []ServiceCategory {
	return []ServiceCategory{CategoryProduction, CategoryLiveSound, CategoryPlanning}
}

// Valid reports whether c is a known service category.
func (c ServiceCategory) Valid() bool {
	switch c {
	case CategoryProduction, CategoryLiveSound, CategoryPlanning:
		return true
	}
	return false
}

// ProductCategory groups rental products.
type ProductCategory string

const (
	ProductMicrophones ProductCategory = "Microphones"
	ProductSpeakers    ProductCategory = "Speakers"
	ProductMixers      ProductCategory = "Mixers"
	ProductLighting    ProductCategory = "Lighting"
)

// ProductCategories lists all product categories in display order.
func ProductCategories() []ProductCategory {
	return []ProductCategory{ProductMicrophones, ProductSpeakers, ProductMixers, ProductLighting}
}

// Valid reports whether c is a known product category.
func (c ProductCategory) Valid() bool {
	switch c {
	case ProductMicrophones, ProductSpeakers, ProductMixers, ProductLighting:
		return true
	}
	return false
}

// Service is one offering, e.g. Music Production or Equipment Rental.
type Service struct {
	ID              int64
	Icon            Icon
	Title           string
	Description     string
	LongDescription string
	Features        []string
	Image           string
	HighlightImage  string
	Category        ServiceCategory
}

// SpecEntry is a single key/value row in a product spec sheet.
type SpecEntry struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Product is a rental or sale item in the equipment catalog.
type Product struct {
	ID              int64
	Name            string
	Category        ProductCategory
	Brand           string
	Image           string
	Description     string
	LongDescription string
	Specs           []SpecEntry
}

// Testimonial is a client quote shown on the home page.
type Testimonial struct {
	ID     int64
	Quote  string
	Author string
	Event  string
	Avatar string
}
