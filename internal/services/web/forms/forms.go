// Package forms runs the booking and contact form flows: drafts, field
// validation, submission, and the status banner.
package forms

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/boyalintegrated/boyalintegrated.com/internal/services/web/apiclient"
)

// BannerKind distinguishes the success and failure banner styles.
type BannerKind string

const (
	BannerSuccess BannerKind = "success"
	BannerError   BannerKind = "error"
)

// Banner is the single status message shown above a form. A new submission
// outcome replaces any previous banner.
type Banner struct {
	Kind BannerKind
	Text string
}

// Submitter sends completed drafts to the backend.
type Submitter interface {
	SubmitBooking(ctx context.Context, req apiclient.BookingRequest) (apiclient.SubmitResult, error)
	SubmitContact(ctx context.Context, req apiclient.ContactRequest) (apiclient.SubmitResult, error)
}

// BookingDraft holds the booking form fields as typed by the visitor.
type BookingDraft struct {
	FullName  string `validate:"required"`
	Email     string `validate:"required,email"`
	Phone     string
	EventType string `validate:"required"`
	Subject   string
	Service   string `validate:"required"`
	EventDate string `validate:"omitempty,datetime=2006-01-02"`
	Details   string
}

// ContactDraft holds the contact form fields.
type ContactDraft struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Message string `validate:"required"`
}

// BookingForm is the state of the booking page form.
type BookingForm struct {
	Draft      BookingDraft
	Submitting bool
	Banner     *Banner
	FieldErrs  map[string]string
}

// ContactForm is the state of the contact page form.
type ContactForm struct {
	Draft      ContactDraft
	Submitting bool
	Banner     *Banner
	FieldErrs  map[string]string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func fieldErrors(err error) map[string]string {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"": "invalid input"}
	}
	errs := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			errs[fe.Field()] = "This field is required"
		case "email":
			errs[fe.Field()] = "Enter a valid email address"
		case "datetime":
			errs[fe.Field()] = "Use the YYYY-MM-DD date form"
		default:
			errs[fe.Field()] = "Invalid value"
		}
	}
	return errs
}

func trimBooking(d BookingDraft) BookingDraft {
	d.FullName = strings.TrimSpace(d.FullName)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
	d.EventType = strings.TrimSpace(d.EventType)
	d.Subject = strings.TrimSpace(d.Subject)
	d.Service = strings.TrimSpace(d.Service)
	d.EventDate = strings.TrimSpace(d.EventDate)
	d.Details = strings.TrimSpace(d.Details)
	return d
}

// Submit validates and sends the draft. On success the draft is cleared;
// on failure it is preserved so the visitor can correct and resend. A
// submission already in flight makes Submit a no-op.
func (f BookingForm) Submit(ctx context.Context, submitter Submitter) BookingForm {
	if f.Submitting {
		return f
	}

	f.Draft = trimBooking(f.Draft)
	if err := validate.Struct(f.Draft); err != nil {
		// Validation blocks before any network call; the field errors
		// carry the message, the banner stays as it was.
		f.FieldErrs = fieldErrors(err)
		return f
	}
	f.FieldErrs = nil
	f.Submitting = true

	res, err := submitter.SubmitBooking(ctx, apiclient.BookingRequest{
		FullName:  f.Draft.FullName,
		Email:     f.Draft.Email,
		Phone:     f.Draft.Phone,
		EventType: f.Draft.EventType,
		Subject:   f.Draft.Subject,
		Service:   f.Draft.Service,
		EventDate: f.Draft.EventDate,
		Details:   f.Draft.Details,
	})
	f.Submitting = false
	if err != nil {
		f.Banner = errorBanner(err)
		return f
	}

	f.Draft = BookingDraft{}
	f.Banner = successBanner(res, "Booking request received successfully. We will be in touch shortly.")
	return f
}

// Submit validates and sends the contact draft, mirroring the booking flow.
func (f ContactForm) Submit(ctx context.Context, submitter Submitter) ContactForm {
	if f.Submitting {
		return f
	}

	f.Draft.Name = strings.TrimSpace(f.Draft.Name)
	f.Draft.Email = strings.TrimSpace(f.Draft.Email)
	f.Draft.Message = strings.TrimSpace(f.Draft.Message)
	if err := validate.Struct(f.Draft); err != nil {
		f.FieldErrs = fieldErrors(err)
		return f
	}
	f.FieldErrs = nil
	f.Submitting = true

	res, err := submitter.SubmitContact(ctx, apiclient.ContactRequest{
		Name:    f.Draft.Name,
		Email:   f.Draft.Email,
		Message: f.Draft.Message,
	})
	f.Submitting = false
	if err != nil {
		f.Banner = errorBanner(err)
		return f
	}

	f.Draft = ContactDraft{}
	f.Banner = successBanner(res, "Message sent successfully. Thank you for reaching out.")
	return f
}

// successBanner prefers the server's message over the fixed fallback.
func successBanner(res apiclient.SubmitResult, fallback string) *Banner {
	text := strings.TrimSpace(res.Message)
	if text == "" {
		text = fallback
	}
	return &Banner{Kind: BannerSuccess, Text: text}
}

// errorBanner surfaces the server's error message when one was parseable.
func errorBanner(err error) *Banner {
	var statusErr *apiclient.StatusError
	if errors.As(err, &statusErr) {
		if msg := statusErr.ServerMessage(); msg != "" {
			return &Banner{Kind: BannerError, Text: msg}
		}
	}
	return &Banner{Kind: BannerError, Text: "Something went wrong. Please try again."}
}
