package handler

import (
	"net/http"

	"kanakku/internal/delivery/api/response"
	"kanakku/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AnalyticsHandlerParams holds dependencies for AnalyticsHandler, injected by Fx.
type AnalyticsHandlerParams struct {
	fx.In

	AnalyticsUC usecase.AnalyticsUsecase
}

// AnalyticsHandler serves /api/analytics.
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler
func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUC: params.AnalyticsUC}
}

// Dashboard returns the caller's balance summary.
func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	summary, err := h.analyticsUC.Dashboard(c.Request().Context(), identity.UID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}
