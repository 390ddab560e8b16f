package config

import "time"

// Bcrypt cost bounds accepted by golang.org/x/crypto/bcrypt.
const (
	minBcryptCost = 4
	maxBcryptCost = 31
)

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// JWTSecret is the symmetric key used to sign session tokens.
	// Rotating it invalidates every outstanding token and forces re-login.
	JWTSecret string `env:"JWT_SECRET,required"`

	// TokenTTL is the session token lifetime. Default is 7 days.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"168h"`

	// BcryptCost is the bcrypt work factor for password hashing.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"12"`

	// MinPasswordLength is the minimum accepted password length at registration.
	MinPasswordLength int `env:"MIN_PASSWORD_LENGTH" envDefault:"6"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.TokenTTL <= 0 {
		a.TokenTTL = 168 * time.Hour
	}
	if a.BcryptCost < minBcryptCost {
		a.BcryptCost = minBcryptCost
	}
	if a.BcryptCost > maxBcryptCost {
		a.BcryptCost = maxBcryptCost
	}
	if a.MinPasswordLength < 1 {
		a.MinPasswordLength = 6
	}
}
