package postgres

import (
	"strings"

	domainerrors "kanakku/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// classifyWriteError maps constraint violations to domain errors and wraps
// everything else as a store execution failure.
func classifyWriteError(err error, msg string) error {
	switch {
	case isNotNullConstraintViolation(err):
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("missing required field"))
	case isCheckConstraintViolation(err):
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("value out of range"))
	case isUniqueConstraintViolation(err):
		return domainerrors.NewDatabaseExecuteError(err, msg+": duplicate id")
	default:
		return domainerrors.NewDatabaseExecuteError(err, msg)
	}
}

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "23514") // PostgreSQL check_violation error code
}
