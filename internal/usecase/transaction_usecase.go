package usecase

import (
	"context"

	"kanakku/internal/domain/entity"
	"kanakku/internal/util"
)

// TransactionUsecase defines the transaction lifecycle operations.
type TransactionUsecase interface {
	CreateTransaction(ctx context.Context, userID string, input *CreateTransactionInput) (*CreateTransactionOutput, error)
	ListTransactions(ctx context.Context, userID, shopID string) ([]*entity.Transaction, error)

	// DeleteTransaction soft-deletes a single transaction.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// CreateTransactionInput defines the data required to record a transaction.
type CreateTransactionInput struct {
	ID               string                 `json:"id,omitempty" validate:"omitempty,max=128,excludesall=/"`
	ShopID           string                 `json:"shopId" validate:"required"`
	Amount           util.Number            `json:"amount"`
	Type             entity.TransactionType `json:"type"`
	Date             string                 `json:"date,omitempty"`
	Note             string                 `json:"note,omitempty" validate:"max=1000"`
	RelatedProductID string                 `json:"relatedProductId,omitempty"`
}

// CreateTransactionOutput is the recorded transaction. Upserted is set when an explicit ID was written.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
	Upserted    bool
}
