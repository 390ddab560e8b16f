package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/meinblog/blog-api/internal/domain/auth"
	"github.com/meinblog/blog-api/internal/domain/model"
	errs "github.com/meinblog/blog-api/internal/errors"
)

// mockUserStore is a test helper with per-call overrides.
type mockUserStore struct {
	findByEmailFunc func(context.Context, string) (*model.User, error)
	findByIDFunc    func(context.Context, uuid.UUID) (*model.User, error)
	createFunc      func(context.Context, model.CreateUserParams) (*model.User, error)
	updateFunc      func(context.Context, uuid.UUID, model.UpdateUserFields) (*model.User, error)
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, errs.NotFound("user")
}

func (m *mockUserStore) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errs.NotFound("user")
}

func (m *mockUserStore) Create(ctx context.Context, params model.CreateUserParams) (*model.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, params)
	}
	return &model.User{ID: uuid.New(), Name: params.Name, Email: params.Email, PasswordHash: params.PasswordHash}, nil
}

func (m *mockUserStore) Update(ctx context.Context, id uuid.UUID, fields model.UpdateUserFields) (*model.User, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, fields)
	}
	return nil, errs.NotFound("user")
}

// mockHasher avoids bcrypt cost in service tests.
type mockHasher struct {
	hashFunc   func(string) (string, error)
	verifyFunc func(string, string) bool
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.hashFunc != nil {
		return m.hashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, passwordHash string) bool {
	if m.verifyFunc != nil {
		return m.verifyFunc(password, passwordHash)
	}
	return passwordHash == "hashed:"+password
}

type mockTokenCodec struct {
	issueFunc  func(domainauth.Credential) (string, error)
	verifyFunc func(string) (domainauth.Credential, bool)
}

func (m *mockTokenCodec) Issue(cred domainauth.Credential) (string, error) {
	if m.issueFunc != nil {
		return m.issueFunc(cred)
	}
	return "token-for-" + cred.UserID, nil
}

func (m *mockTokenCodec) Verify(token string) (domainauth.Credential, bool) {
	if m.verifyFunc != nil {
		return m.verifyFunc(token)
	}
	return domainauth.Credential{}, false
}

func newTestAuthService(users *mockUserStore) *AuthService {
	return NewAuthService(AuthServiceOptions{
		Users:  users,
		Hasher: &mockHasher{},
		Tokens: &mockTokenCodec{},
	})
}

func TestAuthService_Register_Success(t *testing.T) {
	var captured model.CreateUserParams
	users := &mockUserStore{
		findByEmailFunc: func(context.Context, string) (*model.User, error) {
			return nil, errs.NotFound("user")
		},
		createFunc: func(_ context.Context, params model.CreateUserParams) (*model.User, error) {
			captured = params
			return &model.User{ID: uuid.New(), Name: params.Name, Email: params.Email, PasswordHash: params.PasswordHash, CreatedAt: time.Now()}, nil
		},
	}
	svc := newTestAuthService(users)

	result, err := svc.Register(context.Background(), RegisterInput{
		Name:     "  Ada Lovelace  ",
		Email:    "Ada@Example.COM",
		Password: "s3cret!",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "Ada Lovelace", captured.Name)
	assert.Equal(t, "ada@example.com", captured.Email, "email must be stored lowercase")
	assert.Equal(t, "hashed:s3cret!", captured.PasswordHash)
	assert.Equal(t, "ada@example.com", result.User.Email)
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newTestAuthService(&mockUserStore{})

	cases := []struct {
		name  string
		input RegisterInput
		field string
	}{
		{"missing name", RegisterInput{Email: "a@b.de", Password: "longenough"}, "name"},
		{"missing email", RegisterInput{Name: "Ada", Password: "longenough"}, "email"},
		{"bad email", RegisterInput{Name: "Ada", Email: "not-an-email", Password: "longenough"}, "email"},
		{"short password", RegisterInput{Name: "Ada", Email: "a@b.de", Password: "tiny"}, "password"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.input)
			require.Error(t, err)
			assert.True(t, errs.IsValidation(err))
			assert.Equal(t, tc.field, errs.GetField(err))
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	users := &mockUserStore{
		createFunc: func(context.Context, model.CreateUserParams) (*model.User, error) {
			return nil, errs.ConflictField("email", "email is already registered")
		},
	}
	svc := newTestAuthService(users)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "s3cret!",
	})

	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))
}

func TestAuthService_Login_Success(t *testing.T) {
	id := uuid.New()
	users := &mockUserStore{
		findByEmailFunc: func(_ context.Context, email string) (*model.User, error) {
			assert.Equal(t, "ada@example.com", email)
			return &model.User{ID: id, Name: "Ada", Email: email, PasswordHash: "hashed:s3cret!"}, nil
		},
	}
	svc := newTestAuthService(users)

	result, err := svc.Login(context.Background(), LoginInput{Email: " Ada@Example.com ", Password: "s3cret!"})

	require.NoError(t, err)
	assert.Equal(t, "token-for-"+id.String(), result.Token)
	assert.Equal(t, id, result.User.ID)
}

func TestAuthService_Login_MissingFieldsAreValidationErrors(t *testing.T) {
	svc := newTestAuthService(&mockUserStore{
		findByEmailFunc: func(context.Context, string) (*model.User, error) {
			t.Fatal("store must not be consulted before both fields are present")
			return nil, nil
		},
	})

	_, noEmailErr := svc.Login(context.Background(), LoginInput{Password: "s3cret!"})
	_, noPwErr := svc.Login(context.Background(), LoginInput{Email: "ada@example.com"})

	require.Error(t, noEmailErr)
	require.Error(t, noPwErr)
	assert.True(t, errs.IsValidation(noEmailErr))
	assert.Equal(t, "email", errs.GetField(noEmailErr))
	assert.True(t, errs.IsValidation(noPwErr))
	assert.Equal(t, "password", errs.GetField(noPwErr))
}

func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	users := &mockUserStore{
		findByEmailFunc: func(_ context.Context, email string) (*model.User, error) {
			if email == "ada@example.com" {
				return &model.User{ID: uuid.New(), Email: email, PasswordHash: "hashed:correct"}, nil
			}
			return nil, errs.NotFound("user")
		},
	}
	svc := newTestAuthService(users)

	_, unknownErr := svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "whatever"})
	_, wrongPwErr := svc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "wrong"})

	require.Error(t, unknownErr)
	require.Error(t, wrongPwErr)
	assert.True(t, errs.IsUnauthenticated(unknownErr))
	assert.True(t, errs.IsUnauthenticated(wrongPwErr))
	assert.Equal(t, unknownErr.Error(), wrongPwErr.Error(), "unknown account and wrong password must be indistinguishable")
}

func TestAuthService_Login_StoreFailurePassesThrough(t *testing.T) {
	users := &mockUserStore{
		findByEmailFunc: func(context.Context, string) (*model.User, error) {
			return nil, errs.Unavailable("backing store unreachable")
		},
	}
	svc := newTestAuthService(users)

	_, err := svc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "s3cret!"})

	require.Error(t, err)
	assert.True(t, errs.IsUnavailable(err), "infrastructure failures must not look like bad credentials")
}

func TestAuthService_Whoami_Success(t *testing.T) {
	id := uuid.New()
	tokens := &mockTokenCodec{
		verifyFunc: func(token string) (domainauth.Credential, bool) {
			if token == "good" {
				return domainauth.Credential{UserID: id.String(), Email: "ada@example.com", Name: "Ada"}, true
			}
			return domainauth.Credential{}, false
		},
	}
	users := &mockUserStore{
		findByIDFunc: func(_ context.Context, gotID uuid.UUID) (*model.User, error) {
			assert.Equal(t, id, gotID)
			return &model.User{ID: id, Name: "Ada", Email: "ada@example.com"}, nil
		},
	}
	svc := NewAuthService(AuthServiceOptions{Users: users, Hasher: &mockHasher{}, Tokens: tokens})

	user, err := svc.Whoami(context.Background(), "good")

	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "Ada", user.Name)
}

func TestAuthService_Whoami_BadToken(t *testing.T) {
	svc := newTestAuthService(&mockUserStore{})

	_, err := svc.Whoami(context.Background(), "garbage")

	require.Error(t, err)
	assert.True(t, errs.IsUnauthenticated(err))
}

func TestAuthService_Whoami_AccountGone(t *testing.T) {
	id := uuid.New()
	tokens := &mockTokenCodec{
		verifyFunc: func(string) (domainauth.Credential, bool) {
			return domainauth.Credential{UserID: id.String()}, true
		},
	}
	users := &mockUserStore{
		findByIDFunc: func(context.Context, uuid.UUID) (*model.User, error) {
			return nil, errs.NotFound("user")
		},
	}
	svc := NewAuthService(AuthServiceOptions{Users: users, Hasher: &mockHasher{}, Tokens: tokens})

	_, err := svc.Whoami(context.Background(), "stale")

	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err), "a verified token for a deleted account is not found, not unauthenticated")
}

func TestAuthService_Register_TokenIssueFailure(t *testing.T) {
	tokens := &mockTokenCodec{
		issueFunc: func(domainauth.Credential) (string, error) {
			return "", errors.New("boom")
		},
	}
	svc := NewAuthService(AuthServiceOptions{Users: &mockUserStore{}, Hasher: &mockHasher{}, Tokens: tokens})

	_, err := svc.Register(context.Background(), RegisterInput{Name: "Ada", Email: "a@b.de", Password: "longenough"})

	require.Error(t, err)
	assert.True(t, errs.IsInternal(err))
}
