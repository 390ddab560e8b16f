package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/meinblog/blog-api/internal/domain/auth"
)

// sessionClaims is the JWT payload of a session token: the credential claim
// set plus the registered time claims.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// TokenCodec issues and verifies signed, expiring session tokens. Tokens are
// stateless: there is no server-side session table, and a token becomes
// unusable simply by expiring or by the client dropping its cookie.
//
// The signing key is fixed for the process lifetime. Rotating it invalidates
// every outstanding token, which forces re-login; no migration is attempted.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenCodec creates a codec signing with the given symmetric secret.
// Tokens expire ttl after issuance.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue serializes the credential with iat=now and exp=now+ttl and signs it
// with HMAC-SHA256.
func (c *TokenCodec) Issue(cred domainauth.Credential) (string, error) {
	now := c.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   cred.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		UserID: cred.UserID,
		Email:  cred.Email,
		Name:   cred.Name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify checks signature integrity and expiry and returns the embedded
// credential only if both pass. It reports a single undifferentiated false
// for a malformed token, a bad signature, an expired token, or an unparsable
// payload, so callers cannot leak which check failed.
func (c *TokenCodec) Verify(raw string) (domainauth.Credential, bool) {
	if raw == "" {
		return domainauth.Credential{}, false
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !token.Valid {
		return domainauth.Credential{}, false
	}

	return domainauth.Credential{
		UserID: claims.UserID,
		Email:  claims.Email,
		Name:   claims.Name,
	}, true
}
