package httpx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/meinblog/blog-api/internal/domain/model"
	errs "github.com/meinblog/blog-api/internal/errors"
	"github.com/meinblog/blog-api/internal/service"
)

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	Register(ctx context.Context, input service.RegisterInput) (*service.AuthResult, error)
	Login(ctx context.Context, input service.LoginInput) (*service.AuthResult, error)
	Whoami(ctx context.Context, rawToken string) (*model.PublicUser, error)
}

// AuthHandlers provides HTTP handlers for session endpoints.
type AuthHandlers struct {
	Svc     AuthServiceInterface
	Cookies CookieSettings
	Logger  *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles account creation.
// POST /auth/register.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errs.IsInternal(err) || errs.IsUnavailable(err) {
			h.logger().ErrorContext(r.Context(), "register failed", "error", err)
		}
		WriteAppError(w, err)
		return
	}

	setSessionCookie(w, r, result.Token, h.Cookies)
	WriteJSON(w, http.StatusCreated, map[string]any{"user": result.User})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles credential authentication.
// POST /auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errs.IsInternal(err) || errs.IsUnavailable(err) {
			h.logger().ErrorContext(r.Context(), "login failed", "error", err)
		}
		WriteAppError(w, err)
		return
	}

	setSessionCookie(w, r, result.Token, h.Cookies)
	WriteJSON(w, http.StatusOK, map[string]any{"user": result.User})
}

// Logout clears the session cookie. It succeeds regardless of whether a
// session was present; signed tokens have no server side state to revoke.
// POST /auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w, r, h.Cookies.Domain)
	WriteJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Me returns the account behind the current session cookie.
// GET /auth/me.
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.Svc.Whoami(r.Context(), sessionTokenFromRequest(r))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"user": user})
}
