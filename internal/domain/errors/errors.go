package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying the given details.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors of the same business code, so copies made by WithDetails
// still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Identity errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusForbidden,
		"INVALID_TOKEN",
		"Unauthorized: Invalid token",
		"",
	)

	// Ownership errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Unauthorized",
		"",
	)

	ErrShopAccessDenied = NewBaseError(
		http.StatusForbidden,
		"SHOP_ACCESS_DENIED",
		"Unauthorized: Shop access denied",
		"",
	)

	// Not found errors
	ErrShopNotFound = NewBaseError(
		http.StatusNotFound,
		"SHOP_NOT_FOUND",
		"Shop not found",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrTransactionNotFound = NewBaseError(
		http.StatusNotFound,
		"TRANSACTION_NOT_FOUND",
		"Transaction not found",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrImageRejected = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_REJECTED",
		"Image upload rejected",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal Server Error",
		"",
	)
)

// DatabaseExecuteError represents a store execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a store-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying store error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "INTERNAL_ERROR"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Internal Server Error"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
