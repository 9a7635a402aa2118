// Package storage defines the persistence contracts for the API backend.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/boyalintegrated/boyalintegrated.com/internal/catalog"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Booking is a persisted booking request.
type Booking struct {
	ID        int64
	FullName  string
	Email     string
	Phone     string
	EventType string
	Subject   string
	Service   string
	EventDate string
	Details   string
	Status    string
	CreatedAt time.Time
}

// ContactMessage is a persisted contact form submission.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Message   string
	Status    string
	CreatedAt time.Time
}

// CatalogStore reads and writes the public catalog tables.
type CatalogStore interface {
	ListServices(ctx context.Context) ([]catalog.ServiceRecord, error)
	ListProducts(ctx context.Context) ([]catalog.ProductRecord, error)
	ListTestimonials(ctx context.Context) ([]catalog.TestimonialRecord, error)

	CountServices(ctx context.Context) (int64, error)
	InsertService(ctx context.Context, rec catalog.ServiceRecord) (int64, error)
	InsertProduct(ctx context.Context, rec catalog.ProductRecord) (int64, error)
	InsertTestimonial(ctx context.Context, rec catalog.TestimonialRecord) (int64, error)
	ClearCatalog(ctx context.Context) error
}

// LeadStore persists inbound booking and contact submissions.
type LeadStore interface {
	CreateBooking(ctx context.Context, booking Booking) (int64, error)
	GetBooking(ctx context.Context, id int64) (Booking, error)
	ListBookings(ctx context.Context) ([]Booking, error)

	CreateContactMessage(ctx context.Context, msg ContactMessage) (int64, error)
	ListContactMessages(ctx context.Context) ([]ContactMessage, error)
}

// Store is the full persistence surface the API service requires.
type Store interface {
	CatalogStore
	LeadStore

	Ping(ctx context.Context) error
	Close() error
}
