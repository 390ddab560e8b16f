package ports

// Package ports defines interfaces (hexagonal ports) for auth and persistence
// behavior. Implementations live in internal/auth and internal/data;
// orchestration in internal/service.

import (
	"context"

	"github.com/google/uuid"

	domainauth "github.com/meinblog/blog-api/internal/domain/auth"
	"github.com/meinblog/blog-api/internal/domain/model"
)

// PasswordHasher performs one-way password hashing and verification.
type PasswordHasher interface {
	// Hash derives a salted one-way hash from the password.
	Hash(password string) (string, error)

	// Verify reports whether the password matches the stored hash. It returns
	// false, never an error, for any mismatch or malformed hash.
	Verify(password, passwordHash string) bool
}

// TokenCodec issues and verifies signed, expiring session tokens.
type TokenCodec interface {
	// Issue signs a session token embedding the credential.
	Issue(cred domainauth.Credential) (string, error)

	// Verify returns the embedded credential only when the signature and
	// expiry both check out. The single boolean deliberately hides which
	// check failed.
	Verify(token string) (domainauth.Credential, bool)
}

// UserStore is the persistence boundary for user accounts.
type UserStore interface {
	// FindByEmail matches the email case-insensitively. Returns a NotFound
	// error when no account exists.
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// Create inserts a new account. Returns a Conflict error when the email
	// is already registered.
	Create(ctx context.Context, params model.CreateUserParams) (*model.User, error)

	// Update applies only the provided fields. Returns a NotFound error when
	// no such account exists.
	Update(ctx context.Context, id uuid.UUID, fields model.UpdateUserFields) (*model.User, error)
}

// PostStore is the persistence boundary for blog posts.
type PostStore interface {
	// ListPublished returns published posts, newest first, with their author
	// projection.
	ListPublished(ctx context.Context, limit int) ([]*model.Post, error)

	// GetBySlug returns a published post by slug.
	GetBySlug(ctx context.Context, slug string) (*model.Post, error)

	Create(ctx context.Context, params model.CreatePostParams) (*model.Post, error)

	UpdateBySlug(ctx context.Context, slug string, fields model.UpdatePostFields) (*model.Post, error)

	DeleteBySlug(ctx context.Context, slug string) error
}
