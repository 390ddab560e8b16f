package httpx

import (
	"context"
	"errors"
	"net/http"

	"github.com/meinblog/blog-api/internal/domain/model"
	"github.com/meinblog/blog-api/internal/service"
)

// ProfileServiceInterface defines the interface for profile operations.
type ProfileServiceInterface interface {
	Get(ctx context.Context, userID string) (*model.PublicUser, error)
	Update(ctx context.Context, userID string, input service.UpdateInput) (*model.PublicUser, error)
	RemovePicture(ctx context.Context, userID string) (*model.PublicUser, error)
}

// ProfileHandlers provides HTTP handlers for the authenticated user's profile.
// All routes sit behind RequireAuth, so the credential is taken from context.
type ProfileHandlers struct {
	Svc ProfileServiceInterface
}

// Get returns the current profile.
// GET /api/protected/profile.
func (h *ProfileHandlers) Get(w http.ResponseWriter, r *http.Request) {
	cred, ok := GetCredentialFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	profile, err := h.Svc.Get(r.Context(), cred.UserID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"user": profile})
}

type updateProfileRequest struct {
	Name           *string        `json:"name"`
	ProfilePicture *string        `json:"profilePicture"`
	Age            *int           `json:"age"`
	Hobbies        *[]string      `json:"hobbies"`
	Address        *model.Address `json:"address"`
}

// Update applies partial profile changes.
// PUT /api/protected/profile.
func (h *ProfileHandlers) Update(w http.ResponseWriter, r *http.Request) {
	cred, ok := GetCredentialFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	var req updateProfileRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	profile, err := h.Svc.Update(r.Context(), cred.UserID, service.UpdateInput{
		Name:           req.Name,
		ProfilePicture: req.ProfilePicture,
		Age:            req.Age,
		Hobbies:        req.Hobbies,
		Address:        req.Address,
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"user": profile})
}

// RemovePicture clears the stored profile picture.
// DELETE /api/protected/profile/picture.
func (h *ProfileHandlers) RemovePicture(w http.ResponseWriter, r *http.Request) {
	cred, ok := GetCredentialFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	profile, err := h.Svc.RemovePicture(r.Context(), cred.UserID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"user": profile})
}
