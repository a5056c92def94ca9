package middleware

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body written for requests that fail outside a handler.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// GenericErrorMessage is returned for unexpected failures.
const GenericErrorMessage = "Something went wrong"

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{StatusCode: status, Message: message})
}
