// Package httpx holds small helpers shared by HTTP handlers.
package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the JSON envelope returned for failed requests.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Status  int    `json:"status"`
}

// WriteJSON serializes v to the response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already out; nothing left to do but drop the body.
		return
	}
}

// WriteError writes the standard error envelope.
func WriteError(w http.ResponseWriter, status int, errText, message string) {
	WriteJSON(w, status, ErrorBody{Error: errText, Message: message, Status: status})
}

// DecodeJSON reads a JSON body into dst. Unknown fields are ignored.
func DecodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
