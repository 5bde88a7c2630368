package usecase

import (
	"context"

	"kanakku/internal/domain/entity"
)

// ShopUsecase defines the shop lifecycle operations.
type ShopUsecase interface {
	// CreateShop creates a shop owned by userID, or upserts it when input.ID is set.
	CreateShop(ctx context.Context, userID string, input *CreateShopInput) (*CreateShopOutput, error)

	// ListShops returns the caller's active shops.
	ListShops(ctx context.Context, userID string) ([]*entity.Shop, error)

	// UpdateShop applies a partial update and returns the merged shop.
	UpdateShop(ctx context.Context, userID, shopID string, input *UpdateShopInput) (*entity.Shop, error)

	// DeleteShop soft-deletes the shop and cascades to its transactions.
	DeleteShop(ctx context.Context, userID, shopID string) (*CascadeResult, error)

	// PaymentQR renders a UPI payment QR for the shop. A nil amount defaults to the outstanding balance.
	PaymentQR(ctx context.Context, userID, shopID string, amount *float64) ([]byte, error)
}

// --- Input DTOs ---

// CreateShopInput defines the data required to create a shop.
type CreateShopInput struct {
	ID            string `json:"id,omitempty" validate:"omitempty,max=128,excludesall=/"`
	Name          string `json:"name" validate:"required,max=200"`
	OwnerName     string `json:"ownerName,omitempty" validate:"max=200"`
	ContactNumber string `json:"contactNumber,omitempty" validate:"max=32"`
	Address       string `json:"address,omitempty" validate:"max=500"`
	UPIID         string `json:"upiId,omitempty" validate:"max=100"`
}

// UpdateShopInput defines the patchable shop fields. Absent fields are left unchanged.
type UpdateShopInput struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,max=200"`
	OwnerName     *string `json:"ownerName,omitempty" validate:"omitempty,max=200"`
	ContactNumber *string `json:"contactNumber,omitempty" validate:"omitempty,max=32"`
	Address       *string `json:"address,omitempty" validate:"omitempty,max=500"`
	UPIID         *string `json:"upiId,omitempty" validate:"omitempty,max=100"`
	IsActive      *bool   `json:"isActive,omitempty"`
}

// --- Output DTOs ---

// CreateShopOutput is the created shop. Upserted is set when an explicit ID was written.
type CreateShopOutput struct {
	Shop     *entity.Shop
	Upserted bool
}

// CascadeResult reports how many documents a cascading delete or reset touched.
type CascadeResult struct {
	Shops        int `json:"shops"`
	Products     int `json:"products"`
	Transactions int `json:"transactions"`
	Batches      int `json:"batches"`
}

// Total returns the number of documents written.
func (r *CascadeResult) Total() int {
	return r.Shops + r.Products + r.Transactions
}
