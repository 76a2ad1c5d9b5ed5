package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"microblog/internal/config"
	"microblog/internal/models"
)

type CreatePostRequest struct {
	Text string `json:"text"`
}

type DeletePostRequest struct {
	PostID int64 `json:"post_id" validate:"required,gt=0"`
}

func (h *Handlers) AddPost(w http.ResponseWriter, r *http.Request, user *models.User) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestBody())

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			WriteError(w, "Payload too large", http.StatusBadRequest)
			return
		}
		WriteError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), user, req.Text)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, post, http.StatusCreated)
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request, user *models.User) {
	posts, err := h.PostService.ListPosts(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, posts, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request, user *models.User) {
	var req DeletePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "post_id must be a positive integer", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.DeletePost(r.Context(), user, req.PostID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

// maxRequestBody bounds the JSON body of a new post. Escaping can make the
// encoded text up to six times longer than the text itself; the decoded
// length is checked by the post service.
func (h *Handlers) maxRequestBody() int64 {
	size := min(int64(h.Cfg.MaxPayloadSize), config.MaxPayloadLimit)
	return size*6 + 1024
}
