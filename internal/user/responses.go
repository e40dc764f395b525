package user

import (
	"log/slog"
	"net/http"

	json "github.com/go-json-experiment/json"
)

// Error bodies for POST /users. Clients only ever see these strings, never decoder internals.
const (
	msgInvalidJSON      = "invalid JSON"
	msgUsernameRequired = "username required"
	msgBodyTooLarge     = "request body too large"
	msgInternal         = "internal server error"
)

// WriteJSON writes status and JSON body. Sets Content-Type to application/json.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.MarshalWrite(w, data); err != nil {
		slog.Error("write response failed", "status", status, "err", err)
	}
}

// WriteError writes a JSON error response with the given status and message.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, errorResponse{Error: message})
}

type errorResponse struct {
	Error string `json:"error"`
}
