package data

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/meinblog/blog-api/internal/data/pgxutil"
	"github.com/meinblog/blog-api/internal/domain/model"
	errs "github.com/meinblog/blog-api/internal/errors"
)

const userColumns = `id, name, email, password_hash, profile_picture, age, hobbies, address, created_at, updated_at`

// UserRepo provides database operations for user accounts. Every operation
// acquires the shared handle through the connection cache; the repo owns no
// connection lifecycle of its own.
type UserRepo struct {
	Conns        *ConnCache
	timeProvider TimeProvider
}

// NewUserRepo creates a new UserRepo with real time provider.
func NewUserRepo(conns *ConnCache) *UserRepo {
	return &UserRepo{Conns: conns, timeProvider: &RealTimeProvider{}}
}

// NewUserRepoWithTimeProvider creates a new UserRepo with a custom time provider (useful for tests).
func NewUserRepoWithTimeProvider(conns *ConnCache, tp TimeProvider) *UserRepo {
	return &UserRepo{Conns: conns, timeProvider: tp}
}

// FindByEmail retrieves a user by email, case-insensitively.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = lower($1)`
	return r.getByQuery(ctx, query, strings.TrimSpace(email))
}

// FindByID retrieves a user by ID.
func (r *UserRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getByQuery(ctx, query, id)
}

// Create inserts a new account. The unique-email invariant is enforced by the
// database; a violation surfaces as a Conflict error.
func (r *UserRepo) Create(ctx context.Context, params model.CreateUserParams) (*model.User, error) {
	db, err := r.Conns.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	var out model.User
	if err := pgxutil.WithPgxConn(ctx, db, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO users (id, name, email, password_hash, created_at)
			VALUES ($1, $2, lower($3), $4, $5)
			RETURNING `+userColumns,
			uuid.New(),
			strings.TrimSpace(params.Name),
			strings.TrimSpace(params.Email),
			params.PasswordHash,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		return nil, errs.MapDBError(err)
	}
	return &out, nil
}

// Update applies only the provided fields and returns the updated row.
func (r *UserRepo) Update(ctx context.Context, id uuid.UUID, fields model.UpdateUserFields) (*model.User, error) {
	if fields.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	db, err := r.Conns.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	query, args := r.buildUpdateQuery(id, fields)

	var out model.User
	if err := pgxutil.WithPgxConn(ctx, db, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		return nil, errs.MapDBError(err)
	}
	return &out, nil
}

// buildUpdateQuery renders the partial UPDATE statement with its positional
// args. updated_at is stamped from the repo's time provider.
func (r *UserRepo) buildUpdateQuery(id uuid.UUID, fields model.UpdateUserFields) (string, []any) {
	set, args := buildUserUpdate(fields)
	args = append(args, r.timeProvider.Now().UTC(), id)
	query := fmt.Sprintf(
		`UPDATE users SET %s, updated_at = $%d WHERE id = $%d RETURNING `+userColumns,
		strings.Join(set, ", "), len(args)-1, len(args),
	)
	return query, args
}

// buildUserUpdate translates the partial-update fields into SET clauses with
// positional args starting at $1.
func buildUserUpdate(fields model.UpdateUserFields) ([]string, []any) {
	var (
		set  []string
		args []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if fields.Name != nil {
		add("name", strings.TrimSpace(*fields.Name))
	}
	switch {
	case fields.RemovePicture:
		set = append(set, "profile_picture = NULL")
	case fields.ProfilePicture != nil:
		add("profile_picture", *fields.ProfilePicture)
	}
	if fields.Age != nil {
		add("age", *fields.Age)
	}
	if fields.Hobbies != nil {
		add("hobbies", *fields.Hobbies)
	}
	if fields.Address != nil {
		add("address", fields.Address)
	}
	return set, args
}

func (r *UserRepo) getByQuery(ctx context.Context, query string, arg any) (*model.User, error) {
	db, err := r.Conns.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	var out model.User
	if err := pgxutil.WithPgxConn(ctx, db, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, arg)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		return nil, errs.MapDBError(err)
	}
	return &out, nil
}
