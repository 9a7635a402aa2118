// Package apiclient is the website's HTTP client for the backend API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/boyalintegrated/boyalintegrated.com/internal/catalog"
)

// Client calls the backend REST API.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New constructs a client for the given base URL, e.g. "http://localhost:3001".
func New(baseURL string) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("api base url is required")
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// StatusError reports a non-2xx API response.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api returned status %d", e.Status)
}

// ServerMessage extracts the error or message field from the response
// body, or "" when the body was not a JSON error envelope.
func (e *StatusError) ServerMessage() string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(e.Body), &envelope); err != nil {
		return ""
	}
	if msg := strings.TrimSpace(envelope.Error); msg != "" {
		return msg
	}
	return strings.TrimSpace(envelope.Message)
}

func (c *Client) getList(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Status: resp.StatusCode, Body: string(body)}
	}
	return unwrapList(body, path)
}

// unwrapList accepts either a bare JSON array or a {"data": [...]} envelope.
func unwrapList(body []byte, path string) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.RawMessage(trimmed), nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(envelope.Data) == 0 {
		return nil, fmt.Errorf("decode %s: missing data field", path)
	}
	return envelope.Data, nil
}

// Services fetches and normalizes the service catalog.
func (c *Client) Services(ctx context.Context) ([]catalog.Service, error) {
	raw, err := c.getList(ctx, "/api/services")
	if err != nil {
		return nil, err
	}
	var records []catalog.ServiceRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}
	services := make([]catalog.Service, len(records))
	for i, rec := range records {
		services[i] = catalog.ServiceFromRecord(rec)
	}
	return services, nil
}

// Products fetches and normalizes the product catalog.
func (c *Client) Products(ctx context.Context) ([]catalog.Product, error) {
	raw, err := c.getList(ctx, "/api/products")
	if err != nil {
		return nil, err
	}
	var records []catalog.ProductRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	products := make([]catalog.Product, len(records))
	for i, rec := range records {
		products[i] = catalog.ProductFromRecord(rec)
	}
	return products, nil
}

// Testimonials fetches and normalizes the testimonials.
func (c *Client) Testimonials(ctx context.Context) ([]catalog.Testimonial, error) {
	raw, err := c.getList(ctx, "/api/testimonials")
	if err != nil {
		return nil, err
	}
	var records []catalog.TestimonialRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode testimonials: %w", err)
	}
	testimonials := make([]catalog.Testimonial, len(records))
	for i, rec := range records {
		testimonials[i] = catalog.TestimonialFromRecord(rec, i)
	}
	return testimonials, nil
}

// BookingRequest mirrors the POST /api/booking payload.
type BookingRequest struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	EventType string `json:"eventType"`
	Subject   string `json:"subject"`
	Service   string `json:"service"`
	EventDate string `json:"eventDate"`
	Details   string `json:"details"`
}

// ContactRequest mirrors the POST /api/contact payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SubmitResult is the backend acknowledgement for a form submission.
type SubmitResult struct {
	Message   string `json:"message"`
	Status    string `json:"status"`
	BookingID int64  `json:"bookingId"`
	ContactID int64  `json:"contactId"`
}

func (c *Client) post(ctx context.Context, path string, payload any) (SubmitResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("encode payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return SubmitResult{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return SubmitResult{}, fmt.Errorf("read %s: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return SubmitResult{}, &StatusError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var result SubmitResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return SubmitResult{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return result, nil
}

// SubmitBooking sends a booking request to the backend.
func (c *Client) SubmitBooking(ctx context.Context, req BookingRequest) (SubmitResult, error) {
	return c.post(ctx, "/api/booking", req)
}

// SubmitContact sends a contact message to the backend.
func (c *Client) SubmitContact(ctx context.Context, req ContactRequest) (SubmitResult, error) {
	return c.post(ctx, "/api/contact", req)
}
