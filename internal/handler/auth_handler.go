package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
)

// maxCredentialsBody bounds /signup and /login request bodies.
const maxCredentialsBody = 4 << 10

type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	token, err := h.AuthService.Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, TokenResponse{Token: token}, http.StatusOK)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, TokenResponse{Token: token}, http.StatusOK)
}

func (h *Handlers) decodeCredentials(w http.ResponseWriter, r *http.Request) (CredentialsRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxCredentialsBody)

	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			WriteError(w, "Payload too large", http.StatusBadRequest)
			return req, false
		}
		WriteError(w, "Invalid request format", http.StatusBadRequest)
		return req, false
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Invalid email or password format", http.StatusBadRequest)
		return req, false
	}

	return req, true
}
