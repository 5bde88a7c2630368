package usecase

import (
	"context"
	"io"

	"kanakku/internal/domain/entity"
	"kanakku/internal/util"
)

// ProductUsecase defines the product lifecycle operations.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, userID string, input *CreateProductInput) (*CreateProductOutput, error)
	ListProducts(ctx context.Context, userID, shopID string) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, userID, productID string, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct soft-deletes the product and its related transactions in one batch.
	DeleteProduct(ctx context.Context, userID, productID string) (*CascadeResult, error)
}

// ImageUpload is a product image received with a multipart create request.
type ImageUpload struct {
	Filename string
	Reader   io.Reader
}

// CreateProductInput defines the data required to create a product. Price and
// Quantity are coerced to 0 when missing, invalid or negative.
type CreateProductInput struct {
	ID          string       `json:"id,omitempty" form:"id" validate:"omitempty,max=128,excludesall=/"`
	ShopID      string       `json:"shopId" form:"shopId" validate:"required"`
	Name        string       `json:"name" form:"name" validate:"required,max=200"`
	Price       util.Number  `json:"price" form:"price"`
	Quantity    util.Number  `json:"quantity" form:"quantity"`
	ImagePath   string       `json:"imagePath,omitempty" form:"imagePath"`
	PurchasedAt string       `json:"purchasedAt,omitempty" form:"purchasedAt"`
	Image       *ImageUpload `json:"-" form:"-"`
}

// UpdateProductInput defines the patchable product fields.
type UpdateProductInput struct {
	Name        *string     `json:"name,omitempty" validate:"omitempty,max=200"`
	Price       util.Number `json:"price"`
	Quantity    util.Number `json:"quantity"`
	ImagePath   *string     `json:"imagePath,omitempty"`
	PurchasedAt *string     `json:"purchasedAt,omitempty"`
	IsActive    *bool       `json:"isActive,omitempty"`
}

// CreateProductOutput is the created product. Upserted is set when an explicit ID was written.
type CreateProductOutput struct {
	Product  *entity.Product
	Upserted bool
}
