// Package context carries request-scoped values between the HTTP layer and the services.
package context

import (
	"context"
	"log/slog"

	"kanakku/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyIdentity is the key for storing the verified caller in context.
	KeyIdentity ContextKey = "identity"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context, generating one when
// the request-id middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger extracts the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the request-scoped logger, falling back to the given one.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetIdentity stores the verified caller on both echo.Context and the request context.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(string(KeyIdentity), identity)
	req := c.Request()
	c.SetRequest(req.WithContext(WithIdentity(req.Context(), identity)))
}

// GetIdentity returns the verified caller set by the auth middleware.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(string(KeyIdentity)).(*entity.Identity)
	if !ok || identity == nil || identity.UID == "" {
		return nil, false
	}

	return identity, true
}

// WithIdentity returns a new context with the verified caller.
func WithIdentity(ctx context.Context, identity *entity.Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// IdentityFromContext returns the verified caller stored by WithIdentity.
func IdentityFromContext(ctx context.Context) (*entity.Identity, bool) {
	identity, ok := ctx.Value(KeyIdentity).(*entity.Identity)
	if !ok || identity == nil || identity.UID == "" {
		return nil, false
	}

	return identity, true
}
