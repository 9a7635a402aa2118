package rest

import (
	"net/http"

	"github.com/boyalintegrated/boyalintegrated.com/internal/platform/httpx"
)

type healthResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Database string `json:"database"`
}

// health reports liveness. The endpoint answers 200 even when the
// database is down so load balancers keep routing to the static catalog.
func (h Handler) health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "OK", Message: "Server and database are running", Database: "connected"}
	if err := h.store.Ping(r.Context()); err != nil {
		resp.Message = "Server is running but database is disconnected"
		resp.Database = "disconnected"
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
