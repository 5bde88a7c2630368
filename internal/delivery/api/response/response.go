// Package response renders the JSON envelope shared by every API endpoint.
package response

import (
	"net/http"

	deliverycontext "kanakku/internal/delivery/context"
	domainerrors "kanakku/internal/domain/errors"
	"kanakku/internal/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// MessageData is the payload of operations that only report an outcome.
type MessageData struct {
	Message string `json:"message"`
	Result  any    `json:"result,omitempty"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Message returns a successful response carrying a message and an optional result.
func Message(c echo.Context, message string, result any) error {
	return Success(c, http.StatusOK, MessageData{Message: message, Result: result})
}

// Error returns an error response. Details are never sent with authentication
// or authorization failures.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// BindingError reports a request body that could not be decoded.
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), message)
}

// HandleAppError renders client errors directly and hands everything else to
// the HTTP error handler, which logs it.
func HandleAppError(c echo.Context, err error) error {
	if appErr, ok := errors.ClientError(err); ok {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), errors.Details(appErr))
	}

	return errors.WithStack(err)
}
