package catalog

import (
	"fmt"
	"strings"
)

// ServiceRecord is the wire/storage form of a service before normalization.
type ServiceRecord struct {
	ID              int64    `json:"id" yaml:"id"`
	IconName        string   `json:"iconName" yaml:"iconName"`
	Title           string   `json:"title" yaml:"title"`
	Description     string   `json:"description" yaml:"description"`
	LongDescription string   `json:"longDescription" yaml:"longDescription"`
	Features        []string `json:"features" yaml:"features"`
	Image           string   `json:"image" yaml:"image"`
	HighlightImage  string   `json:"highlightImage" yaml:"highlightImage"`
	Category        string   `json:"category" yaml:"category"`
}

// ProductRecord is the wire/storage form of a product before normalization.
type ProductRecord struct {
	ID              int64       `json:"id" yaml:"id"`
	Name            string      `json:"name" yaml:"name"`
	Category        string      `json:"category" yaml:"category"`
	Brand           string      `json:"brand" yaml:"brand"`
	Image           string      `json:"image" yaml:"image"`
	Description     string      `json:"description" yaml:"description"`
	LongDescription string      `json:"longDescription" yaml:"longDescription"`
	Specs           []SpecEntry `json:"specs" yaml:"specs"`
}

// TestimonialRecord is the wire/storage form of a testimonial. Alternate
// field names cover older row shapes still present in production data.
type TestimonialRecord struct {
	ID           int64  `json:"id" yaml:"id"`
	Quote        string `json:"quote" yaml:"quote"`
	Content      string `json:"content" yaml:"content"`
	Author       string `json:"author" yaml:"author"`
	CustomerName string `json:"customerName" yaml:"customerName"`
	Event        string `json:"event" yaml:"event"`
	Company      string `json:"company" yaml:"company"`
	Avatar       string `json:"avatar" yaml:"avatar"`
	ImageURL     string `json:"imageUrl" yaml:"imageUrl"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// ServiceFromRecord normalizes a raw record into a Service, filling every
// missing field with a usable default so a partial row never breaks a page.
func ServiceFromRecord(rec ServiceRecord) Service {
	iconName := rec.IconName
	if iconName == "" {
		iconName = strings.ReplaceAll(rec.Title, " ", "")
	}
	icon, _ := ParseIcon(iconName)

	features := rec.Features
	if len(features) == 0 {
		features = []string{"Professional Service", "Quality Guaranteed"}
	}

	image := firstNonEmpty(rec.Image, "/images/services/default.jpg")
	category := ServiceCategory(rec.Category)
	if !category.Valid() {
		category = CategoryProduction
	}

	return Service{
		ID:              rec.ID,
		Icon:            icon,
		Title:           firstNonEmpty(rec.Title, "Service"),
		Description:     firstNonEmpty(rec.Description, "Professional service"),
		LongDescription: firstNonEmpty(rec.LongDescription, rec.Description, "Detailed description coming soon."),
		Features:        features,
		Image:           image,
		HighlightImage:  firstNonEmpty(rec.HighlightImage, image),
		Category:        category,
	}
}

// ProductFromRecord normalizes a raw record into a Product.
func ProductFromRecord(rec ProductRecord) Product {
	category := ProductCategory(rec.Category)
	if !category.Valid() {
		category = ProductMicrophones
	}

	specs := rec.Specs
	if len(specs) == 0 {
		specs = []SpecEntry{
			{Key: "Type", Value: "Professional"},
			{Key: "Quality", Value: "Premium"},
		}
	}

	return Product{
		ID:              rec.ID,
		Name:            rec.Name,
		Category:        category,
		Brand:           firstNonEmpty(rec.Brand, "Generic"),
		Image:           firstNonEmpty(rec.Image, "/images/products/default.png"),
		Description:     firstNonEmpty(rec.Description, "Professional equipment"),
		LongDescription: firstNonEmpty(rec.LongDescription, rec.Description, "Detailed product description coming soon."),
		Specs:           specs,
	}
}

// TestimonialFromRecord normalizes a raw record into a Testimonial. The
// index assigns an ID and a stable placeholder avatar when the row lacks them.
func TestimonialFromRecord(rec TestimonialRecord, index int) Testimonial {
	id := rec.ID
	if id == 0 {
		id = int64(index + 1)
	}

	author := firstNonEmpty(rec.Author, rec.CustomerName, "Happy Client")

	avatar := firstNonEmpty(rec.Avatar, rec.ImageURL)
	if avatar == "" {
		seed := rec.Author
		if seed == "" {
			seed = fmt.Sprintf("%d", index)
		}
		avatar = "https://i.pravatar.cc/150?u=" + seed
	}

	return Testimonial{
		ID:     id,
		Quote:  firstNonEmpty(rec.Quote, rec.Content, "Great service!"),
		Author: author,
		Event:  firstNonEmpty(rec.Event, rec.Company, "Event"),
		Avatar: avatar,
	}
}
