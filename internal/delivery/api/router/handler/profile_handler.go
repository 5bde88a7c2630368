package handler

import (
	"log/slog"
	"net/http"

	"kanakku/internal/delivery/api/response"
	"kanakku/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves /api/profile.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// GetProfile returns the stored profile or a default built from the token.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateProfile merges the request into the caller's profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req usecase.UpdateProfileInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), identity, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// ResetAccount hard-deletes the caller's shops and transactions.
func (h *ProfileHandler) ResetAccount(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.accountUC.ResetAccount(c.Request().Context(), identity.UID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Account data reset successfully", result)
}
