package test

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"microblog/internal/models"
	"microblog/internal/service"
)

var testUser = &models.User{ID: 1, Email: "a@x.com"}

func TestAddPostHandler_Success(t *testing.T) {
	// Arrange
	h, deps := createTestHandler()
	deps.posts.On("CreatePost", mock.Anything, testUser, "hello").
		Return(&models.Post{ID: 1, Text: "hello", AuthorID: 1}, nil)

	req := httptest.NewRequest(http.MethodPost, "/add-post", jsonBody(t, map[string]string{"text": "hello"}))
	rr := httptest.NewRecorder()

	// Act
	h.AddPost(rr, req, testUser)

	// Assert
	assert.Equal(t, http.StatusCreated, rr.Code)
	var post models.Post
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &post))
	assert.Equal(t, models.Post{ID: 1, Text: "hello", AuthorID: 1}, post)
	deps.posts.AssertExpectations(t)
}

func TestAddPostHandler_PayloadTooLarge(t *testing.T) {
	t.Run("rejected by the service", func(t *testing.T) {
		h, deps := createTestHandler()
		deps.posts.On("CreatePost", mock.Anything, testUser, mock.AnythingOfType("string")).
			Return(nil, service.ErrPayloadTooLarge)

		req := httptest.NewRequest(http.MethodPost, "/add-post", jsonBody(t, map[string]string{"text": "long"}))
		rr := httptest.NewRecorder()

		h.AddPost(rr, req, testUser)

		assertJSONError(t, rr, http.StatusBadRequest, "Payload too large")
	})

	t.Run("body over the read limit", func(t *testing.T) {
		h, deps := createTestHandler()
		h.Cfg.MaxPayloadSize = 10

		body := `{"text":"` + strings.Repeat("x", 2048) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/add-post", strings.NewReader(body))
		rr := httptest.NewRecorder()

		h.AddPost(rr, req, testUser)

		assertJSONError(t, rr, http.StatusBadRequest, "Payload too large")
		deps.posts.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAddPostHandler_HugePayloadSetting(t *testing.T) {
	h, deps := createTestHandler()
	h.Cfg.MaxPayloadSize = math.MaxInt
	deps.posts.On("CreatePost", mock.Anything, testUser, "hello").
		Return(&models.Post{ID: 1, Text: "hello", AuthorID: 1}, nil)

	req := httptest.NewRequest(http.MethodPost, "/add-post", jsonBody(t, map[string]string{"text": "hello"}))
	rr := httptest.NewRecorder()

	h.AddPost(rr, req, testUser)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestAddPostHandler_InvalidJSON(t *testing.T) {
	h, _ := createTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/add-post", strings.NewReader("{"))
	rr := httptest.NewRecorder()

	h.AddPost(rr, req, testUser)

	assertJSONError(t, rr, http.StatusBadRequest, "Invalid request format")
}

func TestGetPostsHandler(t *testing.T) {
	t.Run("lists posts", func(t *testing.T) {
		h, deps := createTestHandler()
		deps.posts.On("ListPosts", mock.Anything, testUser).Return([]models.Post{
			{ID: 1, Text: "one", AuthorID: 1},
			{ID: 2, Text: "two", AuthorID: 1},
		}, nil)

		rr := httptest.NewRecorder()
		h.GetPosts(rr, httptest.NewRequest(http.MethodGet, "/get-posts", nil), testUser)

		assert.Equal(t, http.StatusOK, rr.Code)
		var posts []models.Post
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &posts))
		assert.Len(t, posts, 2)
		assert.Equal(t, "one", posts[0].Text)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		h, deps := createTestHandler()
		deps.posts.On("ListPosts", mock.Anything, testUser).Return([]models.Post{}, nil)

		rr := httptest.NewRecorder()
		h.GetPosts(rr, httptest.NewRequest(http.MethodGet, "/get-posts", nil), testUser)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		h, deps := createTestHandler()
		deps.posts.On("ListPosts", mock.Anything, testUser).Return(nil, errors.New("timeout"))

		rr := httptest.NewRecorder()
		h.GetPosts(rr, httptest.NewRequest(http.MethodGet, "/get-posts", nil), testUser)

		assertJSONError(t, rr, http.StatusInternalServerError, "Internal server error")
	})
}

func TestDeletePostHandler(t *testing.T) {
	t.Run("deletes own post", func(t *testing.T) {
		h, deps := createTestHandler()
		deps.posts.On("DeletePost", mock.Anything, testUser, int64(1)).
			Return(&models.Post{ID: 1, Text: "hello", AuthorID: 1}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/delete-post", strings.NewReader(`{"post_id":1}`))
		rr := httptest.NewRecorder()

		h.DeletePost(rr, req, testUser)

		assert.Equal(t, http.StatusOK, rr.Code)
		var post models.Post
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &post))
		assert.Equal(t, int64(1), post.ID)
	})

	t.Run("not found or not owned", func(t *testing.T) {
		h, deps := createTestHandler()
		deps.posts.On("DeletePost", mock.Anything, testUser, int64(7)).Return(nil, service.ErrNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/delete-post", strings.NewReader(`{"post_id":7}`))
		rr := httptest.NewRecorder()

		h.DeletePost(rr, req, testUser)

		assertJSONError(t, rr, http.StatusNotFound, "Post not found")
	})

	tests := []struct {
		name          string
		body          string
		expectedError string
	}{
		{"malformed json", `{"post_id":`, "Invalid request format"},
		{"string id", `{"post_id":"1"}`, "Invalid request format"},
		{"missing id", `{}`, "post_id must be a positive integer"},
		{"negative id", `{"post_id":-3}`, "post_id must be a positive integer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := createTestHandler()
			req := httptest.NewRequest(http.MethodDelete, "/delete-post", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			h.DeletePost(rr, req, testUser)

			assertJSONError(t, rr, http.StatusBadRequest, tt.expectedError)
			deps.posts.AssertNotCalled(t, "DeletePost", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
