package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/boyalintegrated/boyalintegrated.com/internal/catalog"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/api/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "api.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestServiceRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	count, err := store.CountServices(ctx)
	if err != nil {
		t.Fatalf("CountServices: %v", err)
	}
	if count != 0 {
		t.Fatalf("count = %d, want 0", count)
	}

	rec := catalog.ServiceRecord{
		IconName:        "Mic",
		Title:           "Sound Reinforcement",
		Description:     "PA systems for any venue.",
		LongDescription: "Full PA design and tuning.",
		Features:        []string{"PA System Design", "Live Mixing"},
		Image:           "/images/services/Sound.jpg",
		HighlightImage:  "/images/services/Sound.jpg",
		Category:        "Live Sound",
	}
	id, err := store.InsertService(ctx, rec)
	if err != nil {
		t.Fatalf("InsertService: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero id")
	}

	services, err := store.ListServices(ctx)
	if err != nil {
		t.Fatalf("ListServices: %v", err)
	}
	if len(services) != 1 {
		t.Fatalf("got %d services, want 1", len(services))
	}
	got := services[0]
	if got.Title != rec.Title || got.Category != rec.Category {
		t.Errorf("service = %+v", got)
	}
	if len(got.Features) != 2 || got.Features[0] != "PA System Design" {
		t.Errorf("features = %v", got.Features)
	}
}

func TestInsertServiceRequiresTitle(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	if _, err := store.InsertService(context.Background(), catalog.ServiceRecord{}); err == nil {
		t.Fatal("expected error for missing title")
	}
}

func TestProductRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	rec := catalog.ProductRecord{
		Name:        "Shure SM58",
		Category:    "Microphones",
		Brand:       "Shure",
		Description: "Dynamic vocal microphone.",
		Specs:       []catalog.SpecEntry{{Key: "Polar Pattern", Value: "Cardioid"}},
	}
	if _, err := store.InsertProduct(ctx, rec); err != nil {
		t.Fatalf("InsertProduct: %v", err)
	}

	products, err := store.ListProducts(ctx)
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}
	if products[0].Brand != "Shure" {
		t.Errorf("brand = %q", products[0].Brand)
	}
	if len(products[0].Specs) != 1 || products[0].Specs[0].Value != "Cardioid" {
		t.Errorf("specs = %v", products[0].Specs)
	}
}

func TestTestimonialsNewestFirst(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	clock := base
	store.now = func() time.Time { return clock }

	if _, err := store.InsertTestimonial(ctx, catalog.TestimonialRecord{Quote: "first", Author: "A"}); err != nil {
		t.Fatalf("InsertTestimonial: %v", err)
	}
	clock = base.Add(time.Minute)
	if _, err := store.InsertTestimonial(ctx, catalog.TestimonialRecord{Quote: "second", Author: "B"}); err != nil {
		t.Fatalf("InsertTestimonial: %v", err)
	}

	testimonials, err := store.ListTestimonials(ctx)
	if err != nil {
		t.Fatalf("ListTestimonials: %v", err)
	}
	if len(testimonials) != 2 {
		t.Fatalf("got %d testimonials, want 2", len(testimonials))
	}
	if testimonials[0].Quote != "second" {
		t.Errorf("first row = %+v, want newest", testimonials[0])
	}
}

func TestBookingRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	booking := storage.Booking{
		FullName:  "Ada Obi",
		Email:     "ada@example.com",
		Phone:     "+2348000000000",
		EventType: "Wedding",
		Subject:   "Reception audio",
		Service:   "Sound Reinforcement",
		EventDate: "2026-10-10",
		Details:   "Outdoor reception for 300 guests.",
	}
	id, err := store.CreateBooking(ctx, booking)
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	got, err := store.GetBooking(ctx, id)
	if err != nil {
		t.Fatalf("GetBooking: %v", err)
	}
	if got.FullName != booking.FullName || got.EventDate != booking.EventDate {
		t.Errorf("booking = %+v", got)
	}
	if got.Status != "pending" {
		t.Errorf("status = %q, want pending", got.Status)
	}
	if got.CreatedAt.IsZero() {
		t.Error("created at not set")
	}
}

func TestGetBookingNotFound(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	if _, err := store.GetBooking(context.Background(), 42); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.CreateBooking(ctx, storage.Booking{Email: "x@example.com"}); err == nil {
		t.Error("expected error for missing full name")
	}
	if _, err := store.CreateBooking(ctx, storage.Booking{FullName: "X"}); err == nil {
		t.Error("expected error for missing email")
	}
}

func TestContactMessageRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	id, err := store.CreateContactMessage(ctx, storage.ContactMessage{
		Name:    "Sam",
		Email:   "sam@example.com",
		Message: "Do you rent line arrays?",
	})
	if err != nil {
		t.Fatalf("CreateContactMessage: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero id")
	}

	messages, err := store.ListContactMessages(ctx)
	if err != nil {
		t.Fatalf("ListContactMessages: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(messages))
	}
	if messages[0].Status != "unread" {
		t.Errorf("status = %q, want unread", messages[0].Status)
	}
}

func TestCancelledContext(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.ListServices(ctx); err == nil {
		t.Error("expected context error")
	}
	if _, err := store.CreateBooking(ctx, storage.Booking{FullName: "X", Email: "x@example.com"}); err == nil {
		t.Error("expected context error")
	}
}
