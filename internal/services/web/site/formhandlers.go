package site

import (
	"net/http"

	"github.com/boyalintegrated/boyalintegrated.com/internal/services/web/forms"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/web/session"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/web/state"
)

func (h Handler) submitBooking(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	visitor := h.sessions.Ensure(w, r)

	// The in-flight flag lives in the session so an overlapping POST on
	// the same cookie sees it and never reaches the backend.
	var (
		form     forms.BookingForm
		inFlight bool
	)
	visitor.WithLock(func(s *session.State) {
		if s.Booking.Submitting {
			inFlight = true
			form = s.Booking
			return
		}
		s.Booking.Draft = forms.BookingDraft{
			FullName:  r.PostFormValue("fullName"),
			Email:     r.PostFormValue("email"),
			Phone:     r.PostFormValue("phone"),
			EventType: r.PostFormValue("eventType"),
			Subject:   r.PostFormValue("subject"),
			Service:   r.PostFormValue("service"),
			EventDate: r.PostFormValue("eventDate"),
			Details:   r.PostFormValue("details"),
		}
		form = s.Booking
		s.Booking.Submitting = true
	})

	if !inFlight {
		form = form.Submit(r.Context(), h.submitter)
		visitor.WithLock(func(s *session.State) {
			s.Booking = form
		})
	}

	if isHXRequest(r) {
		data, _ := h.baseData(w, r, state.Navigation{Page: state.PageBooking})
		data.Booking = form
		h.rd.renderPartial(w, "booking", "booking_form", data)
		return
	}
	http.Redirect(w, r, "/booking", http.StatusSeeOther)
}

func (h Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	visitor := h.sessions.Ensure(w, r)

	var (
		form     forms.ContactForm
		inFlight bool
	)
	visitor.WithLock(func(s *session.State) {
		if s.Contact.Submitting {
			inFlight = true
			form = s.Contact
			return
		}
		s.Contact.Draft = forms.ContactDraft{
			Name:    r.PostFormValue("name"),
			Email:   r.PostFormValue("email"),
			Message: r.PostFormValue("message"),
		}
		form = s.Contact
		s.Contact.Submitting = true
	})

	if !inFlight {
		form = form.Submit(r.Context(), h.submitter)
		visitor.WithLock(func(s *session.State) {
			s.Contact = form
		})
	}

	if isHXRequest(r) {
		data, _ := h.baseData(w, r, state.Navigation{Page: state.PageContact})
		data.Contact = form
		h.rd.renderPartial(w, "contact", "contact_form", data)
		return
	}
	http.Redirect(w, r, "/contact", http.StatusSeeOther)
}
