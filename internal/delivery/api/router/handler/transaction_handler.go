package handler

import (
	"log/slog"
	"net/http"

	"kanakku/internal/delivery/api/response"
	"kanakku/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TransactionHandlerParams holds dependencies for TransactionHandler, injected by Fx.
type TransactionHandlerParams struct {
	fx.In

	TransactionUC usecase.TransactionUsecase
	Logger        *slog.Logger
}

// TransactionHandler serves /api/transactions.
type TransactionHandler struct {
	transactionUC usecase.TransactionUsecase
	logger        *slog.Logger
}

// NewTransactionHandler is the constructor for TransactionHandler
func NewTransactionHandler(params TransactionHandlerParams) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: params.TransactionUC,
		logger:        params.Logger,
	}
}

// CreateTransaction records a purchase or payment.
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req usecase.CreateTransactionInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.transactionUC.CreateTransaction(c.Request().Context(), identity.UID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, createdStatus(out.Upserted), out.Transaction)
}

// ListTransactions returns active transactions, optionally filtered by ?shopId.
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	txns, err := h.transactionUC.ListTransactions(c.Request().Context(), identity.UID, c.QueryParam("shopId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, txns)
}

// DeleteTransaction soft-deletes one transaction.
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	if err := h.transactionUC.DeleteTransaction(c.Request().Context(), identity.UID, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Transaction deleted successfully", nil)
}
