package config

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// CookieDomain is the domain for session cookies.
	// Leave empty to use the request domain.
	CookieDomain string `env:"APP_COOKIE_DOMAIN" envDefault:""`

	// MaxBodyBytes bounds JSON request bodies. Default is 1 MiB.
	MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" envDefault:"1048576"`

	// MaxProfileBodyBytes bounds the profile update body, which may carry a
	// base64-encoded picture of up to ~10 MiB. Default is 12 MiB.
	MaxProfileBodyBytes int64 `env:"HTTP_MAX_PROFILE_BODY_BYTES" envDefault:"12582912"`

	// MaxConns limits concurrently accepted connections on the listener.
	MaxConns int `env:"HTTP_MAX_CONNS" envDefault:"512"`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	if h.MaxBodyBytes <= 0 {
		h.MaxBodyBytes = 1 << 20
	}
	if h.MaxProfileBodyBytes < h.MaxBodyBytes {
		h.MaxProfileBodyBytes = h.MaxBodyBytes
	}
	if h.MaxConns <= 0 {
		h.MaxConns = 512
	}
}
