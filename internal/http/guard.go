package httpx

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/meinblog/blog-api/internal/ports"
)

// GuardConfig declares which path prefixes the route guard protects and where
// it redirects browsers.
type GuardConfig struct {
	// Protected prefixes require a valid session cookie.
	Protected []string
	// AuthEntry prefixes (login, register pages) bounce already
	// authenticated visitors to HomePath.
	AuthEntry []string
	// LoginPath receives unauthenticated visitors, with the original
	// destination in the "from" query parameter.
	LoginPath string
	// HomePath receives authenticated visitors who hit an auth entry page.
	HomePath string
}

// DefaultGuardConfig mirrors the site layout: the dashboard and profile pages
// plus the protected API subtree require a session.
func DefaultGuardConfig() GuardConfig {
	return GuardConfig{
		Protected: []string{"/dashboard", "/profile", "/api/protected"},
		AuthEntry: []string{"/login", "/register"},
		LoginPath: "/login",
		HomePath:  "/dashboard",
	}
}

// RouteGuard returns an edge middleware that classifies every request by path
// and session validity. It only inspects and verifies the session cookie; it
// never consults the account store, so a deleted account's unexpired token
// still passes here and is caught by handlers that load the account.
//
// Protected paths without a valid session redirect to the login page with the
// original destination preserved. Auth entry paths with a valid session
// redirect back to that destination when the "from" parameter carries a safe
// relative path, or home otherwise. Everything else passes through, with the
// verified credential placed in the request context when present.
func RouteGuard(codec ports.TokenCodec, cfg GuardConfig, cookieDomain string) func(http.Handler) http.Handler {
	if cfg.LoginPath == "" {
		cfg.LoginPath = "/login"
	}
	if cfg.HomePath == "" {
		cfg.HomePath = "/"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawToken := sessionTokenFromRequest(r)
			cred, valid := codec.Verify(rawToken)

			switch {
			case matchesPrefix(r.URL.Path, cfg.Protected) && !valid:
				// An invalid or expired cookie is cleared on the way out so
				// the browser stops resending it.
				if rawToken != "" {
					clearSessionCookie(w, r, cookieDomain)
				}
				http.Redirect(w, r, loginRedirectURL(cfg.LoginPath, r.URL), http.StatusFound)
				return

			case matchesPrefix(r.URL.Path, cfg.AuthEntry) && valid:
				http.Redirect(w, r, postLoginDestination(r, cfg.HomePath), http.StatusFound)
				return
			}

			if valid {
				r = r.WithContext(SetCredentialInContext(r.Context(), cred))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// matchesPrefix reports whether the path equals a prefix or sits below it as
// a path segment, so "/profilex" does not match "/profile".
func matchesPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// postLoginDestination resolves where an authenticated visitor hitting an
// auth entry page should land. A "from" parameter is honored only when it is
// a safe relative path; anything else falls back to home.
func postLoginDestination(r *http.Request, homePath string) string {
	from := r.URL.Query().Get("from")
	if from == "" {
		return homePath
	}
	if safe := safeRedirectPath(from); safe != "/" {
		return safe
	}
	return homePath
}

// loginRedirectURL builds the login redirect with the original destination in
// the "from" parameter.
func loginRedirectURL(loginPath string, dest *url.URL) string {
	from := dest.Path
	if dest.RawQuery != "" {
		from += "?" + dest.RawQuery
	}
	u := url.URL{Path: loginPath}
	q := url.Values{}
	q.Set("from", from)
	u.RawQuery = q.Encode()
	return u.String()
}
