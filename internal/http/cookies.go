package httpx

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

// sessionCookieName is the cookie that carries the signed session token.
const sessionCookieName = "token"

// CookieSettings carries the deployment-dependent cookie attributes.
type CookieSettings struct {
	Domain string
	MaxAge time.Duration
}

// setSessionCookie stores the signed token in an HttpOnly cookie. Secure is
// derived from the request so the same binary works behind TLS terminators.
func setSessionCookie(w http.ResponseWriter, r *http.Request, token string, settings CookieSettings) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Domain:   settings.Domain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(settings.MaxAge.Seconds()),
	})
}

// clearSessionCookie expires the session cookie immediately. It mirrors the
// attributes used when setting the cookie to maximize compatibility across
// browsers during deletion.
func clearSessionCookie(w http.ResponseWriter, r *http.Request, domain string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   domain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// sessionTokenFromRequest returns the raw token cookie value, empty when absent.
func sessionTokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// safeRedirectPath allows only relative paths (no scheme/host) starting with "/".
// Anything else falls back to root.
func safeRedirectPath(path string) string {
	u, err := url.Parse(path)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	return u.String()
}
