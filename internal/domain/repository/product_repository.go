package repository

import (
	"context"

	"kanakku/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrProductNotFound is returned when a product document does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the ledger store operations on products.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product *entity.Product) error
	UpsertProduct(ctx context.Context, product *entity.Product) error
	FindProductByID(ctx context.Context, id string) (*entity.Product, error)

	// FindActiveProducts retrieves active products matching the filter.
	FindActiveProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	// FindProductIDsByShop lists IDs of the user's products in a shop, active or not.
	FindProductIDsByShop(ctx context.Context, userID, shopID string) ([]string, error)

	// FindProductIDsByUser lists IDs of every product owned by the user.
	FindProductIDsByUser(ctx context.Context, userID string) ([]string, error)

	UpdateProduct(ctx context.Context, id string, patch *entity.ProductPatch) error
}
