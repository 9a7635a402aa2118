package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/boyalintegrated/boyalintegrated.com/internal/catalog"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/api/seed"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/api/storage/sqlite"
)

func newTestServer(t *testing.T, seeded bool) (*httptest.Server, *sqlite.Store) {
	t.Helper()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "api.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if seeded {
		if _, err := seed.Apply(context.Background(), store); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	handler := New(store, zap.NewNop())
	srv := httptest.NewServer(handler.Router())
	t.Cleanup(srv.Close)
	return srv, store
}

func getJSON(t *testing.T, url string, dst any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if dst != nil {
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func postJSON(t *testing.T, url, body string, dst any) int {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	if dst != nil {
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestListServices(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, true)

	var body struct {
		Data []catalog.ServiceRecord `json:"data"`
	}
	if status := getJSON(t, srv.URL+"/api/services", &body); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if len(body.Data) != 6 {
		t.Fatalf("got %d services, want 6", len(body.Data))
	}
	if body.Data[0].Title != "Music Production" || body.Data[0].IconName != "Music" {
		t.Errorf("first service = %+v", body.Data[0])
	}
	if len(body.Data[0].Features) == 0 {
		t.Error("features not decoded")
	}
}

func TestListServicesEmptyIsArray(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, false)

	resp, err := http.Get(srv.URL + "/api/services")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(raw["data"]) != "[]" {
		t.Errorf("data = %s, want []", raw["data"])
	}
}

func TestListProducts(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, true)

	var body struct {
		Data []catalog.ProductRecord `json:"data"`
	}
	if status := getJSON(t, srv.URL+"/api/products", &body); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if len(body.Data) != 3 {
		t.Fatalf("got %d products, want 3", len(body.Data))
	}
	if body.Data[0].Name != "Shure SM7B" || len(body.Data[0].Specs) != 4 {
		t.Errorf("first product = %+v", body.Data[0])
	}
}

func TestListTestimonials(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, true)

	var body struct {
		Data []catalog.TestimonialRecord `json:"data"`
	}
	if status := getJSON(t, srv.URL+"/api/testimonials", &body); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if len(body.Data) != 3 {
		t.Fatalf("got %d testimonials, want 3", len(body.Data))
	}
}

func TestCreateBooking(t *testing.T) {
	t.Parallel()

	srv, store := newTestServer(t, false)

	var body struct {
		Message   string `json:"message"`
		Status    string `json:"status"`
		BookingID int64  `json:"bookingId"`
	}
	status := postJSON(t, srv.URL+"/api/booking", `{
		"fullName": "Ada Obi",
		"email": "ada@example.com",
		"phone": "+2348000000000",
		"eventType": "Wedding",
		"subject": "Reception audio",
		"service": "Sound Reinforcement",
		"eventDate": "2026-10-10",
		"details": "Outdoor reception for 300 guests."
	}`, &body)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if body.Message != "Booking request received successfully" || body.Status != "success" {
		t.Errorf("body = %+v", body)
	}
	if body.BookingID == 0 {
		t.Fatal("expected booking id")
	}

	saved, err := store.GetBooking(context.Background(), body.BookingID)
	if err != nil {
		t.Fatalf("GetBooking: %v", err)
	}
	if saved.FullName != "Ada Obi" || saved.Status != "pending" {
		t.Errorf("saved = %+v", saved)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, false)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing full name", body: `{"email":"a@example.com","eventType":"Wedding","service":"Sound"}`},
		{name: "missing email", body: `{"fullName":"Ada","eventType":"Wedding","service":"Sound"}`},
		{name: "missing event type", body: `{"fullName":"Ada","email":"a@example.com","service":"Sound"}`},
		{name: "missing service", body: `{"fullName":"Ada","email":"a@example.com","eventType":"Wedding"}`},
		{name: "bad email", body: `{"fullName":"Ada","email":"not-an-email","eventType":"Wedding","service":"Sound"}`},
		{name: "bad date", body: `{"fullName":"Ada","email":"a@example.com","eventType":"Wedding","service":"Sound","eventDate":"10/10/2026"}`},
		{name: "malformed json", body: `{`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var body struct {
				Error  string `json:"error"`
				Status int    `json:"status"`
			}
			if status := postJSON(t, srv.URL+"/api/booking", tc.body, &body); status != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", status)
			}
			if body.Error == "" {
				t.Error("expected error field")
			}
		})
	}
}

func TestCreateContact(t *testing.T) {
	t.Parallel()

	srv, store := newTestServer(t, false)

	var body struct {
		Message   string `json:"message"`
		Status    string `json:"status"`
		ContactID int64  `json:"contactId"`
	}
	status := postJSON(t, srv.URL+"/api/contact", `{
		"name": "Sam",
		"email": "sam@example.com",
		"message": "Do you rent line arrays?"
	}`, &body)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if body.Message != "Message sent successfully" || body.ContactID == 0 {
		t.Errorf("body = %+v", body)
	}

	messages, err := store.ListContactMessages(context.Background())
	if err != nil {
		t.Fatalf("ListContactMessages: %v", err)
	}
	if len(messages) != 1 || messages[0].Name != "Sam" {
		t.Errorf("messages = %+v", messages)
	}
}

func TestCreateContactValidation(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, false)

	if status := postJSON(t, srv.URL+"/api/contact", `{"name":"Sam","email":"sam@example.com"}`, nil); status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, false)

	var body struct {
		Status   string `json:"status"`
		Database string `json:"database"`
	}
	if status := getJSON(t, srv.URL+"/api/health", &body); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if body.Status != "OK" || body.Database != "connected" {
		t.Errorf("body = %+v", body)
	}
}

func TestHealthDatabaseDown(t *testing.T) {
	t.Parallel()

	srv, store := newTestServer(t, false)
	store.Close()

	var body struct {
		Status   string `json:"status"`
		Database string `json:"database"`
	}
	if status := getJSON(t, srv.URL+"/api/health", &body); status != http.StatusOK {
		t.Fatalf("status = %d, want 200 even when db is down", status)
	}
	if body.Status != "OK" || body.Database != "disconnected" {
		t.Errorf("body = %+v", body)
	}
}
