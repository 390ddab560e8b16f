package httpx

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/meinblog/blog-api/internal/domain/model"
	"github.com/meinblog/blog-api/internal/service"
)

// PostServiceInterface defines the interface for post operations.
type PostServiceInterface interface {
	ListPublished(ctx context.Context, limit int) ([]service.PostListItem, error)
	GetBySlug(ctx context.Context, slug string) (*model.Post, error)
	Create(ctx context.Context, input service.CreateInput) (*model.Post, error)
	UpdateBySlug(ctx context.Context, slug string, fields model.UpdatePostFields) (*model.Post, error)
	DeleteBySlug(ctx context.Context, slug string) error
}

// PostHandlers provides HTTP handlers for blog posts. Reads are public;
// mutations sit behind RequireAuth.
type PostHandlers struct {
	Svc PostServiceInterface
}

// List returns the newest published posts.
// GET /api/posts?limit=<n>.
func (h *PostHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_limit", Err: errors.New("limit must be a positive integer")})
			return
		}
		limit = n
	}

	items, err := h.Svc.ListPublished(r.Context(), limit)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"posts": items})
}

// Get returns a single published post.
// GET /api/posts/{slug}.
func (h *PostHandlers) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.Svc.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"post": post})
}

type createPostRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
}

// Create authors a new post owned by the current user.
// POST /api/protected/posts.
func (h *PostHandlers) Create(w http.ResponseWriter, r *http.Request) {
	cred, ok := GetCredentialFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	var req createPostRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	post, err := h.Svc.Create(r.Context(), service.CreateInput{
		Title:     req.Title,
		Content:   req.Content,
		Tags:      req.Tags,
		Published: req.Published,
		AuthorID:  cred.UserID,
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]any{"post": post})
}

type updatePostRequest struct {
	Title     *string   `json:"title"`
	Content   *string   `json:"content"`
	Tags      *[]string `json:"tags"`
	Published *bool     `json:"published"`
}

// Update applies partial changes to a post.
// PUT /api/protected/posts/{slug}.
func (h *PostHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req updatePostRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	post, err := h.Svc.UpdateBySlug(r.Context(), r.PathValue("slug"), model.UpdatePostFields{
		Title:     req.Title,
		Content:   req.Content,
		Tags:      req.Tags,
		Published: req.Published,
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"post": post})
}

// Delete removes a post.
// DELETE /api/protected/posts/{slug}.
func (h *PostHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.DeleteBySlug(r.Context(), r.PathValue("slug")); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "post deleted"})
}
