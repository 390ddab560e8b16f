package errors

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapDBError_NoRows(t *testing.T) {
	err := MapDBError(pgx.ErrNoRows)
	assert.True(t, IsNotFound(err))
}

func TestMapDBError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: "users_email_key",
		Detail:         "Key (email)=(dup@x.com) already exists.",
	}

	err := MapDBError(pgErr)
	require.True(t, IsConflict(err))
	assert.Equal(t, "email", GetField(err))
}

func TestMapDBError_UniqueViolation_ConstraintFallback(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: "posts_slug_key",
	}

	err := MapDBError(pgErr)
	require.True(t, IsConflict(err))
	assert.Equal(t, "slug", GetField(err))
}

func TestMapDBError_ForeignKey(t *testing.T) {
	err := MapDBError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})
	assert.True(t, IsValidation(err))
}

func TestMapDBError_ContextErrors(t *testing.T) {
	assert.Equal(t, ErrCodeTimeout, GetCode(MapDBError(context.DeadlineExceeded)))
	assert.Equal(t, ErrCodeCanceled, GetCode(MapDBError(context.Canceled)))
}

func TestMapDBError_PassthroughAndNil(t *testing.T) {
	plain := errors.New("not a db error")
	assert.Equal(t, plain, MapDBError(plain))
	assert.NoError(t, MapDBError(nil))
}
