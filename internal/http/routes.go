package httpx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/meinblog/blog-api/internal/ports"
)

// RouterServices holds all the services and settings needed by the HTTP router.
type RouterServices struct {
	Auth    AuthServiceInterface
	Profile ProfileServiceInterface
	Posts   PostServiceInterface
	Tokens  ports.TokenCodec

	Guard               GuardConfig
	CookieDomain        string
	SessionTTL          time.Duration
	MaxBodyBytes        int64
	MaxProfileBodyBytes int64
	Logger              *slog.Logger
}

// NewRouter creates and configures the HTTP router. The route guard wraps the
// whole mux so every path is classified; API mutations additionally sit
// behind RequireAuth for JSON 401 semantics.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:     services.Auth,
		Cookies: CookieSettings{Domain: services.CookieDomain, MaxAge: services.SessionTTL},
		Logger:  logger,
	}
	profileHandlers := &ProfileHandlers{Svc: services.Profile}
	postHandlers := &PostHandlers{Svc: services.Posts}

	limitBody := MaxBody(services.MaxBodyBytes)
	limitProfileBody := MaxBody(services.MaxProfileBodyBytes)
	requireAuth := RequireAuth(services.Tokens)

	mux.Handle("POST /auth/register", limitBody(http.HandlerFunc(authHandlers.Register)))
	mux.Handle("POST /auth/login", limitBody(http.HandlerFunc(authHandlers.Login)))
	mux.Handle("POST /auth/logout", http.HandlerFunc(authHandlers.Logout))
	mux.Handle("GET /auth/me", http.HandlerFunc(authHandlers.Me))

	mux.Handle("GET /api/posts", http.HandlerFunc(postHandlers.List))
	mux.Handle("GET /api/posts/{slug}", http.HandlerFunc(postHandlers.Get))

	mux.Handle("GET /api/protected/profile", requireAuth(http.HandlerFunc(profileHandlers.Get)))
	mux.Handle("PUT /api/protected/profile", requireAuth(limitProfileBody(http.HandlerFunc(profileHandlers.Update))))
	mux.Handle("DELETE /api/protected/profile/picture", requireAuth(http.HandlerFunc(profileHandlers.RemovePicture)))

	mux.Handle("POST /api/protected/posts", requireAuth(limitBody(http.HandlerFunc(postHandlers.Create))))
	mux.Handle("PUT /api/protected/posts/{slug}", requireAuth(limitBody(http.HandlerFunc(postHandlers.Update))))
	mux.Handle("DELETE /api/protected/posts/{slug}", requireAuth(http.HandlerFunc(postHandlers.Delete)))

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	guard := RouteGuard(services.Tokens, services.Guard, services.CookieDomain)
	handler := guard(mux)
	handler = Logging(logger)(handler)
	return Recover(logger)(handler)
}
