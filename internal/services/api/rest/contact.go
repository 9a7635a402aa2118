package rest

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/boyalintegrated/boyalintegrated.com/internal/platform/httpx"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/api/storage"
)

type contactRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email,max=320"`
	Message string `json:"message" validate:"required,max=5000"`
}

type contactResponse struct {
	Message   string `json:"message"`
	Status    string `json:"status"`
	ContactID int64  `json:"contactId"`
}

func (h Handler) createContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid contact request", validationMessage(err))
		return
	}

	id, err := h.store.CreateContactMessage(r.Context(), storage.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		h.logger.Error("create contact message", zap.Error(err))
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to send message", "")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, contactResponse{
		Message:   "Message sent successfully",
		Status:    "success",
		ContactID: id,
	})
}
