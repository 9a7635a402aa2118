package rest

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/boyalintegrated/boyalintegrated.com/internal/platform/httpx"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/api/storage"
)

type bookingRequest struct {
	FullName  string `json:"fullName" validate:"required,max=200"`
	Email     string `json:"email" validate:"required,email,max=320"`
	Phone     string `json:"phone" validate:"omitempty,max=40"`
	EventType string `json:"eventType" validate:"required,max=100"`
	Subject   string `json:"subject" validate:"omitempty,max=200"`
	Service   string `json:"service" validate:"required,max=200"`
	EventDate string `json:"eventDate" validate:"omitempty,datetime=2006-01-02"`
	Details   string `json:"details" validate:"omitempty,max=5000"`
}

type bookingResponse struct {
	Message   string `json:"message"`
	Status    string `json:"status"`
	BookingID int64  `json:"bookingId"`
}

func (h Handler) createBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid booking request", validationMessage(err))
		return
	}

	id, err := h.store.CreateBooking(r.Context(), storage.Booking{
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		EventType: req.EventType,
		Subject:   req.Subject,
		Service:   req.Service,
		EventDate: req.EventDate,
		Details:   req.Details,
	})
	if err != nil {
		h.logger.Error("create booking", zap.Error(err))
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to create booking", "")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, bookingResponse{
		Message:   "Booking request received successfully",
		Status:    "success",
		BookingID: id,
	})
}

// validationMessage flattens the first field error into a short message.
func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "invalid request"
	}
	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "datetime":
		return fe.Field() + " must be a date in YYYY-MM-DD form"
	case "max":
		return fe.Field() + " is too long"
	}
	return fe.Field() + " is invalid"
}
