// internal/common/utils/response.go
// Every handler answers with the same JSON envelope.

package utils

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Response is the envelope written by all endpoints. Exactly one of Data,
// Message or Error is normally set.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

const marshalFailure = `{"success":false,"error":"failed to encode response"}`

func SuccessResponse(w http.ResponseWriter, data interface{}, statusCode int) {
	RespondWithJSON(w, statusCode, Response{Success: true, Data: data})
}

func ErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	RespondWithJSON(w, statusCode, Response{Error: message})
}

func MessageResponse(w http.ResponseWriter, message string, statusCode int) {
	RespondWithJSON(w, statusCode, Response{Success: true, Message: message})
}

// RespondWithError is ErrorResponse with the status first.
func RespondWithError(w http.ResponseWriter, code int, message string) {
	ErrorResponse(w, message, code)
}

// RespondWithJSON encodes payload before touching the header so a marshal
// failure can still produce a 500.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("response encoding failed", "error", err, "status", code)
		body, code = []byte(marshalFailure), http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		slog.Debug("response write failed", "error", err)
	}
}
