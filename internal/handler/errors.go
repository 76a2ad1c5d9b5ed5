package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"microblog/internal/service"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	WriteJSON(w, ErrorResponse{Error: message}, statusCode)
}

func WriteJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("encode response: %v", err)
	}
}

// writeServiceError maps the service error taxonomy to a status and a
// generic message. Unknown errors are logged and reported as 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrConflict):
		WriteError(w, "User already exists", http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidPassword):
		WriteError(w, "Password must be at most 72 bytes", http.StatusBadRequest)
	case errors.Is(err, service.ErrUnauthorized), errors.Is(err, service.ErrInvalidToken):
		WriteError(w, "Incorrect email or password", http.StatusUnauthorized)
	case errors.Is(err, service.ErrPayloadTooLarge):
		WriteError(w, "Payload too large", http.StatusBadRequest)
	case errors.Is(err, service.ErrNotFound):
		WriteError(w, "Post not found", http.StatusNotFound)
	default:
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
		WriteError(w, "Internal server error", http.StatusInternalServerError)
	}
}
