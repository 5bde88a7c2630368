package handler

import (
	"log/slog"
	"net/http"

	"kanakku/internal/delivery/api/response"
	"kanakku/internal/usecase"
	"kanakku/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC      usecase.ShopUsecase
	AnalyticsUC usecase.AnalyticsUsecase
	Logger      *slog.Logger
}

// ShopHandler serves /api/shops.
type ShopHandler struct {
	shopUC      usecase.ShopUsecase
	analyticsUC usecase.AnalyticsUsecase
	logger      *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shopUC:      params.ShopUC,
		analyticsUC: params.AnalyticsUC,
		logger:      params.Logger,
	}
}

// CreateShop answers 201, or 200 when an explicit ID was upserted.
func (h *ShopHandler) CreateShop(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req usecase.CreateShopInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.shopUC.CreateShop(c.Request().Context(), identity.UID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, createdStatus(out.Upserted), out.Shop)
}

// ListShops returns the caller's active shops.
func (h *ShopHandler) ListShops(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	shops, err := h.shopUC.ListShops(c.Request().Context(), identity.UID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shops)
}

// UpdateShop applies a partial update.
func (h *ShopHandler) UpdateShop(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req usecase.UpdateShopInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	shop, err := h.shopUC.UpdateShop(c.Request().Context(), identity.UID, c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// DeleteShop soft-deletes the shop and its transactions.
func (h *ShopHandler) DeleteShop(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.shopUC.DeleteShop(c.Request().Context(), identity.UID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Shop and all related data deleted successfully", result)
}

// ShopBalance returns the outstanding balance of one shop.
func (h *ShopHandler) ShopBalance(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	balance, err := h.analyticsUC.ShopBalance(c.Request().Context(), identity.UID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, balance)
}

// PaymentQR streams a PNG UPI QR code. The optional amount query overrides the balance.
func (h *ShopHandler) PaymentQR(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var amount *float64
	if raw := c.QueryParam("amount"); raw != "" {
		v, err := util.ParseNumber(raw)
		if err != nil {
			return response.BindingError(c, "amount must be a number")
		}
		amount = &v
	}

	png, err := h.shopUC.PaymentQR(c.Request().Context(), identity.UID, c.Param("id"), amount)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
