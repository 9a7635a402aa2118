package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/boyalintegrated/boyalintegrated.com/internal/catalog"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}

func TestNewRequiresBaseURL(t *testing.T) {
	t.Parallel()

	if _, err := New("   "); err == nil {
		t.Fatal("expected error for empty base url")
	}
}

func TestServicesEnvelope(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/services" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"id":1,"iconName":"Mic","title":"Sound Reinforcement","category":"Live Sound"}]}`))
	})

	services, err := client.Services(context.Background())
	if err != nil {
		t.Fatalf("Services: %v", err)
	}
	if len(services) != 1 {
		t.Fatalf("got %d services", len(services))
	}
	if services[0].Title != "Sound Reinforcement" || services[0].Icon != catalog.IconMic {
		t.Errorf("service = %+v", services[0])
	}
}

func TestServicesBareArray(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":2,"title":"Event Planning","category":"Planning"}]`))
	})

	services, err := client.Services(context.Background())
	if err != nil {
		t.Fatalf("Services: %v", err)
	}
	if len(services) != 1 || services[0].Category != catalog.CategoryPlanning {
		t.Fatalf("services = %+v", services)
	}
}

func TestServicesNormalizesPartialRows(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":3}]`))
	})

	services, err := client.Services(context.Background())
	if err != nil {
		t.Fatalf("Services: %v", err)
	}
	if services[0].Title != "Service" || services[0].Category != catalog.CategoryProduction {
		t.Errorf("defaults not applied: %+v", services[0])
	}
}

func TestServicesServerError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.Services(context.Background())
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Status != http.StatusInternalServerError {
		t.Fatalf("err = %v", err)
	}
}

func TestServicesMalformedBody(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	})

	if _, err := client.Services(context.Background()); err == nil {
		t.Fatal("expected error for missing data field")
	}
}

func TestProducts(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":1,"name":"Shure SM7B","category":"Microphones","brand":"Shure","specs":[{"key":"Type","value":"Dynamic"}]}]}`))
	})

	products, err := client.Products(context.Background())
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if len(products) != 1 || products[0].Brand != "Shure" {
		t.Fatalf("products = %+v", products)
	}
}

func TestTestimonialsAlternateShape(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"content":"Great!","customerName":"Sam","company":"Lee Events"}]`))
	})

	testimonials, err := client.Testimonials(context.Background())
	if err != nil {
		t.Fatalf("Testimonials: %v", err)
	}
	got := testimonials[0]
	if got.Quote != "Great!" || got.Author != "Sam" || got.Event != "Lee Events" {
		t.Errorf("testimonial = %+v", got)
	}
}

func TestSubmitBooking(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/booking" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		var req BookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if req.FullName != "Ada Obi" {
			t.Errorf("fullName = %q", req.FullName)
		}
		w.Write([]byte(`{"message":"Booking request received successfully","status":"success","bookingId":7}`))
	})

	result, err := client.SubmitBooking(context.Background(), BookingRequest{
		FullName: "Ada Obi",
		Email:    "ada@example.com",
	})
	if err != nil {
		t.Fatalf("SubmitBooking: %v", err)
	}
	if result.BookingID != 7 || result.Status != "success" {
		t.Errorf("result = %+v", result)
	}
}

func TestSubmitContactError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Invalid contact request","status":400}`))
	})

	_, err := client.SubmitContact(context.Background(), ContactRequest{Name: "Sam"})
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Status != http.StatusBadRequest {
		t.Fatalf("err = %v", err)
	}
	if got := statusErr.ServerMessage(); got != "Invalid contact request" {
		t.Errorf("ServerMessage = %q", got)
	}
}

func TestStatusErrorServerMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "error field", body: `{"error":"Email is required"}`, want: "Email is required"},
		{name: "message field", body: `{"message":"Too many requests"}`, want: "Too many requests"},
		{name: "error wins over message", body: `{"error":"bad","message":"also bad"}`, want: "bad"},
		{name: "not json", body: `<html>502</html>`, want: ""},
		{name: "empty body", body: "", want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			statusErr := &StatusError{Status: 400, Body: tc.body}
			if got := statusErr.ServerMessage(); got != tc.want {
				t.Errorf("ServerMessage = %q, want %q", got, tc.want)
			}
		})
	}
}
