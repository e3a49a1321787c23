package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"contra-api/internal/logger"
)

// MessageResponse is the body of fixed-message replies.
type MessageResponse struct {
	Message string `json:"message"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

// WriteJSON encodes data as the response body with the given status.
// Encoding failures are logged to log when it is non-nil.
func WriteJSON(w http.ResponseWriter, status int, data interface{}, log *logger.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil && log != nil {
		// Headers are already sent, so the status can't change now
		log.Error("HTTP", fmt.Sprintf("Error encoding response: %v", err))
	}
}
