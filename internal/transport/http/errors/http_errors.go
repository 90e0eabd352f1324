package errors

import (
	"encoding/json"
	"net/http"
)

// APIError is the body every failed request gets: {"error":true,"message":...}.
// The shape is part of the public contract with the site frontend.
type APIError struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type RateLimitError struct {
	Error         bool   `json:"error"`
	Message       string `json:"message"`
	RetryAfterSec int64  `json:"retry_after_sec"`
}

func New(message string) APIError {
	return APIError{Error: true, Message: message}
}

func Write(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
