// Package errors provides a unified interface for error handling,
// combining stdlib errors with pkg/errors for stack trace support and
// the domain AppError classification used by the delivery layer.
package errors

import (
	stderrors "errors"
	"net/http"

	domainerrors "kanakku/internal/domain/errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error that formats as the given text.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap returns an error annotating err with a stack trace and the supplied message.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// WithStack annotates err with a stack trace at the point WithStack was called.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf formats according to a format specifier and returns the string as a
// value that satisfies error with stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// AsAppError returns the first AppError in err's chain.
func AsAppError(err error) (domainerrors.AppError, bool) {
	var appErr domainerrors.AppError
	if !stderrors.As(err, &appErr) {
		return nil, false
	}

	return appErr, true
}

// ClientError returns the AppError in err's chain when it maps to a 4xx status.
// Anything else is a server error and must be logged before rendering.
func ClientError(err error) (domainerrors.AppError, bool) {
	appErr, ok := AsAppError(err)
	if !ok || appErr.HTTPCode() >= http.StatusInternalServerError {
		return nil, false
	}

	return appErr, true
}

// Details returns the AppError details as a JSON-friendly value, nil when empty.
func Details(appErr domainerrors.AppError) any {
	if d := appErr.Details(); d != "" {
		return d
	}

	return nil
}
