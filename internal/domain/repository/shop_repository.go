// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"kanakku/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrShopNotFound is returned when a shop document does not exist.
var ErrShopNotFound = errors.New("shop not found")

// ShopRepository defines the ledger store operations on shops.
type ShopRepository interface {
	// CreateShop inserts the shop under a store-generated ID and writes it back to shop.ID.
	CreateShop(ctx context.Context, shop *entity.Shop) error

	// UpsertShop writes the shop at shop.ID, merging into an existing document.
	UpsertShop(ctx context.Context, shop *entity.Shop) error

	// FindShopByID retrieves a shop regardless of its active flag.
	FindShopByID(ctx context.Context, id string) (*entity.Shop, error)

	// FindActiveShopsByUser retrieves all active shops owned by the user.
	FindActiveShopsByUser(ctx context.Context, userID string) ([]*entity.Shop, error)

	// CountActiveShopsByUser counts active shops owned by the user.
	CountActiveShopsByUser(ctx context.Context, userID string) (int64, error)

	// FindShopIDsByUser lists the IDs of every shop owned by the user, active or not.
	FindShopIDsByUser(ctx context.Context, userID string) ([]string, error)

	// UpdateShop applies a partial update to an existing shop.
	UpdateShop(ctx context.Context, id string, patch *entity.ShopPatch) error
}
