package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert")))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
}

func TestViolatedConstraint(t *testing.T) {
	err := errors.Wrap(&pgconn.PgError{Code: "23505", ConstraintName: constraintUsersSingleAdmin}, "insert")
	assert.Equal(t, constraintUsersSingleAdmin, violatedConstraint(err))
	assert.Empty(t, violatedConstraint(gorm.ErrDuplicatedKey))
}

func TestIsForeignKeyAndNotNullViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23502"}))
	assert.True(t, isNotNullConstraintViolation(errors.Wrap(&pgconn.PgError{Code: "23502"}, "insert")))
	assert.False(t, isNotNullConstraintViolation(errors.New("timeout")))
	// Only the SQLSTATE counts, not the wording of the message.
	assert.False(t, isNotNullConstraintViolation(errors.New(`read tcp: value is not null-terminated`)))
	assert.False(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "57P01", Message: "null value terminated connection"}))
}
