package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "kanakku/internal/delivery/context"
	domainerrors "kanakku/internal/domain/errors"
	"kanakku/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier service.IdentityVerifier
	Logger   *slog.Logger
}

// AuthMiddleware resolves the caller from the bearer token.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: params.Verifier,
		logger:   params.Logger,
	}
}

// Authenticate rejects requests without a bearer token with 401 and requests
// whose token fails verification with 403.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if token == "" {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		ctx := c.Request().Context()
		identity, err := m.verifier.Verify(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Token verification failed", slog.Any("error", err))

			return errors.WithStack(domainerrors.ErrInvalidToken)
		}
		if identity == nil || identity.UID == "" {
			return errors.WithStack(domainerrors.ErrInvalidToken)
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}
