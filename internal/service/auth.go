package service

import (
	"context"
	"strings"

	domainauth "github.com/meinblog/blog-api/internal/domain/auth"
	"github.com/meinblog/blog-api/internal/domain/model"
	errs "github.com/meinblog/blog-api/internal/errors"
	"github.com/meinblog/blog-api/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Users  ports.UserStore
	Hasher ports.PasswordHasher
	Tokens ports.TokenCodec
}

// AuthService orchestrates account registration, login, and session introspection.
type AuthService struct {
	users  ports.UserStore
	hasher ports.PasswordHasher
	tokens ports.TokenCodec

	minPasswordLength int
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	return &AuthService{
		users:             opts.Users,
		hasher:            opts.Hasher,
		tokens:            opts.Tokens,
		minPasswordLength: defaultMinPasswordLength,
	}
}

const defaultMinPasswordLength = 6

// SetMinPasswordLength overrides the minimum accepted password length.
func (s *AuthService) SetMinPasswordLength(n int) {
	if n > 0 {
		s.minPasswordLength = n
	}
}

// RegisterInput groups parameters for creating an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthResult is a signed session token paired with the authenticated account.
type AuthResult struct {
	Token string
	User  model.PublicUser
}

// Register validates the input, creates the account, and signs a session token for it.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)

	if name == "" {
		return nil, errs.ValidationField("name", "name is required")
	}
	if email == "" {
		return nil, errs.ValidationField("email", "email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, errs.ValidationField("email", "email is invalid")
	}
	if len(input.Password) < s.minPasswordLength {
		return nil, errs.ValidationField("password", "password is too short")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, errs.Wrap(err, errs.ErrCodeInternal, "hash password")
	}

	user, err := s.users.Create(ctx, model.CreateUserParams{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	return s.issueFor(user)
}

// LoginInput groups credentials for authenticating an account.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies the credentials and signs a session token. A missing email
// or password is a validation error; once both are present, the same generic
// error is returned whether the account is missing or the password is wrong.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return nil, errs.ValidationField("email", "email is required")
	}
	if input.Password == "" {
		return nil, errs.ValidationField("password", "password is required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errs.IsNotFound(err) {
			return nil, errs.Unauthenticated("invalid credentials")
		}
		return nil, err
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, errs.Unauthenticated("invalid credentials")
	}

	return s.issueFor(user)
}

// Whoami resolves a raw session token to the current account. A token that
// fails verification yields an unauthenticated error; a token whose account
// no longer exists yields not found.
func (s *AuthService) Whoami(ctx context.Context, rawToken string) (*model.PublicUser, error) {
	cred, ok := s.tokens.Verify(rawToken)
	if !ok {
		return nil, errs.Unauthenticated("not authenticated")
	}

	id, err := parseUserID(cred.UserID)
	if err != nil {
		return nil, errs.Unauthenticated("not authenticated")
	}

	user, findErr := s.users.FindByID(ctx, id)
	if findErr != nil {
		return nil, findErr
	}

	public := user.Public()
	return &public, nil
}

func (s *AuthService) issueFor(user *model.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(domainauth.Credential{
		UserID: user.ID.String(),
		Email:  user.Email,
		Name:   user.Name,
	})
	if err != nil {
		return nil, errs.Wrap(err, errs.ErrCodeInternal, "issue session token")
	}
	return &AuthResult{Token: token, User: user.Public()}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
