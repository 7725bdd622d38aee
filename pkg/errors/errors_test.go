package errorsUtils_test

import (
	"errors"
	"testing"

	errorsUtils "github.com/Egor213/LogiBoard/pkg/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

var errBase = errors.New("base")

func TestWrapPathErr(t *testing.T) {
	err := errorsUtils.WrapPathErr(errBase)

	assert.ErrorIs(t, err, errBase)
	assert.Contains(t, err.Error(), "TestWrapPathErr")
	assert.Nil(t, errorsUtils.WrapPathErr(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: errorsUtils.CodeUniqueViolation}

	assert.True(t, errorsUtils.IsUniqueViolation(errorsUtils.WrapPathErr(pgErr)))
	assert.False(t, errorsUtils.IsNotNullViolation(pgErr))
	assert.False(t, errorsUtils.IsUniqueViolation(errBase))
}
