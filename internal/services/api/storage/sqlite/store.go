// Package sqlite provides a SQLite-backed implementation of the API store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/boyalintegrated/boyalintegrated.com/internal/catalog"
	"github.com/boyalintegrated/boyalintegrated.com/internal/platform/storage/sqlitemigrate"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/api/storage"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/api/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists the catalog and lead tables in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return s.sqlDB.PingContext(ctx)
}

// ListServices returns all services ordered by id.
func (s *Store) ListServices(ctx context.Context) ([]catalog.ServiceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT id, icon_name, title, description, long_description, features, image, highlight_image, category
FROM services ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query services: %w", err)
	}
	defer rows.Close()

	var records []catalog.ServiceRecord
	for rows.Next() {
		var rec catalog.ServiceRecord
		var features string
		if err := rows.Scan(&rec.ID, &rec.IconName, &rec.Title, &rec.Description, &rec.LongDescription, &features, &rec.Image, &rec.HighlightImage, &rec.Category); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		if err := json.Unmarshal([]byte(features), &rec.Features); err != nil {
			return nil, fmt.Errorf("decode service features: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate services: %w", err)
	}
	return records, nil
}

// ListProducts returns all products ordered by id.
func (s *Store) ListProducts(ctx context.Context) ([]catalog.ProductRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT id, name, category, brand, image, description, long_description, specs
FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var records []catalog.ProductRecord
	for rows.Next() {
		var rec catalog.ProductRecord
		var specs string
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Category, &rec.Brand, &rec.Image, &rec.Description, &rec.LongDescription, &specs); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if err := json.Unmarshal([]byte(specs), &rec.Specs); err != nil {
			return nil, fmt.Errorf("decode product specs: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return records, nil
}

// ListTestimonials returns all testimonials, newest first.
func (s *Store) ListTestimonials(ctx context.Context) ([]catalog.TestimonialRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT id, quote, author, event, avatar
FROM testimonials ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query testimonials: %w", err)
	}
	defer rows.Close()

	var records []catalog.TestimonialRecord
	for rows.Next() {
		var rec catalog.TestimonialRecord
		if err := rows.Scan(&rec.ID, &rec.Quote, &rec.Author, &rec.Event, &rec.Avatar); err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate testimonials: %w", err)
	}
	return records, nil
}

// CountServices returns the number of service rows.
func (s *Store) CountServices(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var count int64
	if err := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM services`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count services: %w", err)
	}
	return count, nil
}

// InsertService inserts one service row and returns its id.
func (s *Store) InsertService(ctx context.Context, rec catalog.ServiceRecord) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if strings.TrimSpace(rec.Title) == "" {
		return 0, fmt.Errorf("title is required")
	}
	features, err := json.Marshal(rec.Features)
	if err != nil {
		return 0, fmt.Errorf("encode service features: %w", err)
	}
	result, err := s.sqlDB.ExecContext(ctx, `INSERT INTO services (icon_name, title, description, long_description, features, image, highlight_image, category, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.IconName, rec.Title, rec.Description, rec.LongDescription, string(features), rec.Image, rec.HighlightImage, rec.Category, toMillis(s.now()))
	if err != nil {
		return 0, fmt.Errorf("insert service: %w", err)
	}
	return result.LastInsertId()
}

// InsertProduct inserts one product row and returns its id.
func (s *Store) InsertProduct(ctx context.Context, rec catalog.ProductRecord) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if strings.TrimSpace(rec.Name) == "" {
		return 0, fmt.Errorf("name is required")
	}
	specs, err := json.Marshal(rec.Specs)
	if err != nil {
		return 0, fmt.Errorf("encode product specs: %w", err)
	}
	result, err := s.sqlDB.ExecContext(ctx, `INSERT INTO products (name, category, brand, image, description, long_description, specs, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Name, rec.Category, rec.Brand, rec.Image, rec.Description, rec.LongDescription, string(specs), toMillis(s.now()))
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return result.LastInsertId()
}

// InsertTestimonial inserts one testimonial row and returns its id.
func (s *Store) InsertTestimonial(ctx context.Context, rec catalog.TestimonialRecord) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if strings.TrimSpace(rec.Quote) == "" {
		return 0, fmt.Errorf("quote is required")
	}
	result, err := s.sqlDB.ExecContext(ctx, `INSERT INTO testimonials (quote, author, event, avatar, created_at)
VALUES (?, ?, ?, ?, ?)`,
		rec.Quote, rec.Author, rec.Event, rec.Avatar, toMillis(s.now()))
	if err != nil {
		return 0, fmt.Errorf("insert testimonial: %w", err)
	}
	return result.LastInsertId()
}

// ClearCatalog empties the catalog tables. Bookings and contact
// messages are left alone.
func (s *Store) ClearCatalog(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin clear catalog: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"services", "products", "testimonials"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit clear catalog: %w", err)
	}
	return nil
}

// CreateBooking inserts a booking request and returns its id.
func (s *Store) CreateBooking(ctx context.Context, booking storage.Booking) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if strings.TrimSpace(booking.FullName) == "" {
		return 0, fmt.Errorf("full name is required")
	}
	if strings.TrimSpace(booking.Email) == "" {
		return 0, fmt.Errorf("email is required")
	}
	status := booking.Status
	if status == "" {
		status = "pending"
	}
	createdAt := booking.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}
	result, err := s.sqlDB.ExecContext(ctx, `INSERT INTO bookings (full_name, email, phone, event_type, subject, service, event_date, details, status, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		booking.FullName, booking.Email, booking.Phone, booking.EventType, booking.Subject, booking.Service, booking.EventDate, booking.Details, status, toMillis(createdAt))
	if err != nil {
		return 0, fmt.Errorf("insert booking: %w", err)
	}
	return result.LastInsertId()
}

// GetBooking loads one booking by id.
func (s *Store) GetBooking(ctx context.Context, id int64) (storage.Booking, error) {
	if err := ctx.Err(); err != nil {
		return storage.Booking{}, err
	}
	var booking storage.Booking
	var createdAt int64
	err := s.sqlDB.QueryRowContext(ctx, `SELECT id, full_name, email, phone, event_type, subject, service, event_date, details, status, created_at
FROM bookings WHERE id = ?`, id).Scan(
		&booking.ID, &booking.FullName, &booking.Email, &booking.Phone, &booking.EventType,
		&booking.Subject, &booking.Service, &booking.EventDate, &booking.Details, &booking.Status, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Booking{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.Booking{}, fmt.Errorf("query booking: %w", err)
	}
	booking.CreatedAt = fromMillis(createdAt)
	return booking, nil
}

// ListBookings returns all bookings, newest first.
func (s *Store) ListBookings(ctx context.Context) ([]storage.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT id, full_name, email, phone, event_type, subject, service, event_date, details, status, created_at
FROM bookings ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []storage.Booking
	for rows.Next() {
		var booking storage.Booking
		var createdAt int64
		if err := rows.Scan(&booking.ID, &booking.FullName, &booking.Email, &booking.Phone, &booking.EventType,
			&booking.Subject, &booking.Service, &booking.EventDate, &booking.Details, &booking.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		booking.CreatedAt = fromMillis(createdAt)
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}
	return bookings, nil
}

// CreateContactMessage inserts a contact message and returns its id.
func (s *Store) CreateContactMessage(ctx context.Context, msg storage.ContactMessage) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if strings.TrimSpace(msg.Name) == "" {
		return 0, fmt.Errorf("name is required")
	}
	if strings.TrimSpace(msg.Email) == "" {
		return 0, fmt.Errorf("email is required")
	}
	if strings.TrimSpace(msg.Message) == "" {
		return 0, fmt.Errorf("message is required")
	}
	status := msg.Status
	if status == "" {
		status = "unread"
	}
	createdAt := msg.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}
	result, err := s.sqlDB.ExecContext(ctx, `INSERT INTO contact_messages (name, email, message, status, created_at)
VALUES (?, ?, ?, ?, ?)`,
		msg.Name, msg.Email, msg.Message, status, toMillis(createdAt))
	if err != nil {
		return 0, fmt.Errorf("insert contact message: %w", err)
	}
	return result.LastInsertId()
}

// ListContactMessages returns all contact messages, newest first.
func (s *Store) ListContactMessages(ctx context.Context) ([]storage.ContactMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT id, name, email, message, status, created_at
FROM contact_messages ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query contact messages: %w", err)
	}
	defer rows.Close()

	var messages []storage.ContactMessage
	for rows.Next() {
		var msg storage.ContactMessage
		var createdAt int64
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Message, &msg.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		msg.CreatedAt = fromMillis(createdAt)
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact messages: %w", err)
	}
	return messages, nil
}
