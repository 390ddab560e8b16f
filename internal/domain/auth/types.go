package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

// Credential is the identity claim set embedded in a session token.
// It never carries the password hash; the token it rides in is an opaque
// signed string issued at login/registration and ignored once expired.
type Credential struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// IsZero reports whether the credential carries no identity.
func (c Credential) IsZero() bool {
	return c.UserID == "" && c.Email == "" && c.Name == ""
}
