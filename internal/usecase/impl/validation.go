package impl

import (
	"strings"
	"time"

	domainerrors "kanakku/internal/domain/errors"
	"kanakku/internal/util"

	"github.com/pkg/errors"
)

func validationError(details string) error {
	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(details))
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// parseDateOr parses an optional payload date, falling back when it is empty.
func parseDateOr(raw string, fallback time.Time, field string) (time.Time, error) {
	if isBlank(raw) {
		return fallback, nil
	}
	t, err := util.ParseDate(raw)
	if err != nil {
		return time.Time{}, validationError(field + " must be an RFC 3339 timestamp or YYYY-MM-DD date")
	}

	return t.UTC(), nil
}

// coerceQuantity maps a payload number to a non-negative whole quantity.
func coerceQuantity(n util.Number) int64 {
	return util.WholeNumber(n.NonNegative())
}
