// Package auth implements the credential primitives of the session system:
// bcrypt password hashing and signed session tokens.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor used when no cost is configured.
const DefaultBcryptCost = 12

// Hasher performs one-way password hashing and verification with bcrypt.
// The expensive work factor is the security property; callers should treat
// Hash and Verify as CPU-bound.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher with the given bcrypt cost. Costs outside the
// range bcrypt accepts are replaced with DefaultBcryptCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &Hasher{cost: cost}
}

// Hash derives a salted bcrypt hash from the password. It fails only on
// underlying resource failure, never on password content.
func (h *Hasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether the password matches the stored hash. Any mismatch,
// malformed hash, or unknown hash version returns false; it never returns an
// error, so callers cannot distinguish the cause.
func (h *Hasher) Verify(password, passwordHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}
