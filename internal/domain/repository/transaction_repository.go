package repository

import (
	"context"

	"kanakku/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrTransactionNotFound is returned when a transaction document does not exist.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionRepository defines the ledger store operations on transactions.
type TransactionRepository interface {
	CreateTransaction(ctx context.Context, txn *entity.Transaction) error
	UpsertTransaction(ctx context.Context, txn *entity.Transaction) error
	FindTransactionByID(ctx context.Context, id string) (*entity.Transaction, error)

	// FindActiveTransactions retrieves active transactions matching the filter.
	FindActiveTransactions(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error)

	// FindActiveTransactionAmounts reads only amount and type of active transactions matching the filter.
	FindActiveTransactionAmounts(ctx context.Context, filter entity.TransactionFilter) ([]entity.TransactionAmount, error)

	// FindTransactionIDsByShop lists IDs of the user's transactions in a shop, active or not.
	FindTransactionIDsByShop(ctx context.Context, userID, shopID string) ([]string, error)

	// FindTransactionIDsByRelatedProduct lists IDs of the user's transactions linked to a product.
	FindTransactionIDsByRelatedProduct(ctx context.Context, userID, productID string) ([]string, error)

	// FindTransactionIDsByUser lists IDs of every transaction owned by the user.
	FindTransactionIDsByUser(ctx context.Context, userID string) ([]string, error)
}
