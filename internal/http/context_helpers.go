package httpx

import (
	"context"

	domainauth "github.com/meinblog/blog-api/internal/domain/auth"
)

// credentialKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type credentialKey struct{}

// SetCredentialInContext returns a child context that carries the verified
// session credential. A zero credential leaves ctx unchanged.
func SetCredentialInContext(ctx context.Context, cred domainauth.Credential) context.Context {
	if cred.IsZero() {
		return ctx
	}
	return context.WithValue(ctx, credentialKey{}, cred)
}

// GetCredentialFromContext returns the credential from context and a boolean
// indicating presence.
func GetCredentialFromContext(ctx context.Context) (domainauth.Credential, bool) {
	if cred, ok := ctx.Value(credentialKey{}).(domainauth.Credential); ok && !cred.IsZero() {
		return cred, true
	}
	return domainauth.Credential{}, false
}
