// Package handler implements the ledger HTTP endpoints.
package handler

import (
	"net/http"

	"kanakku/internal/delivery/api/response"
	deliverycontext "kanakku/internal/delivery/context"
	"kanakku/internal/domain/entity"
	domainerrors "kanakku/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bannerText = "Kanakku Backend Server is Running"

// Banner answers the unauthenticated root route.
func Banner(c echo.Context) error {
	return c.String(http.StatusOK, bannerText)
}

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// currentIdentity returns the caller resolved by the auth middleware.
func currentIdentity(c echo.Context) (*entity.Identity, error) {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return identity, nil
}

// bindAndValidate decodes the request body into req and validates it. The
// returned error is rendered by the HTTP error handler.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("request body could not be decoded"))
	}

	return c.Validate(req)
}

func createdStatus(upserted bool) int {
	if upserted {
		return http.StatusOK
	}

	return http.StatusCreated
}
