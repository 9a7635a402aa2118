package rest

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/boyalintegrated/boyalintegrated.com/internal/catalog"
	"github.com/boyalintegrated/boyalintegrated.com/internal/platform/httpx"
)

// dataEnvelope wraps list responses so the payload shape can grow
// without breaking clients.
type dataEnvelope struct {
	Data any `json:"data"`
}

func (h Handler) listServices(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListServices(r.Context())
	if err != nil {
		h.logger.Error("list services", zap.Error(err))
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch services", "")
		return
	}
	if records == nil {
		records = []catalog.ServiceRecord{}
	}
	httpx.WriteJSON(w, http.StatusOK, dataEnvelope{Data: records})
}

func (h Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("list products", zap.Error(err))
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch products", "")
		return
	}
	if records == nil {
		records = []catalog.ProductRecord{}
	}
	httpx.WriteJSON(w, http.StatusOK, dataEnvelope{Data: records})
}

func (h Handler) listTestimonials(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListTestimonials(r.Context())
	if err != nil {
		h.logger.Error("list testimonials", zap.Error(err))
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch testimonials", "")
		return
	}
	if records == nil {
		records = []catalog.TestimonialRecord{}
	}
	httpx.WriteJSON(w, http.StatusOK, dataEnvelope{Data: records})
}
