package entity

import "time"

// Product is a good purchased on credit from a shop. Active products are the
// purchase-side debt signal; no purchase transaction is created for them.
type Product struct {
	ID          string    `json:"id"`
	ShopID      string    `json:"shopId"` // Parent shop; immutable after creation.
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Quantity    int64     `json:"quantity"`
	ImagePath   string    `json:"imagePath"` // Opaque reference returned by the image storage.
	PurchasedAt time.Time `json:"purchasedAt"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProductPatch is a partial update of a product. ShopID and UserID cannot be patched.
type ProductPatch struct {
	Name        *string
	Price       *float64
	Quantity    *int64
	ImagePath   *string
	PurchasedAt *time.Time
	IsActive    *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p *ProductPatch) IsEmpty() bool {
	return p == nil || (p.Name == nil && p.Price == nil && p.Quantity == nil &&
		p.ImagePath == nil && p.PurchasedAt == nil && p.IsActive == nil)
}

// Apply writes the patch onto the product in place.
func (p *ProductPatch) Apply(product *Product) {
	if p == nil {
		return
	}
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Quantity != nil {
		product.Quantity = *p.Quantity
	}
	if p.ImagePath != nil {
		product.ImagePath = *p.ImagePath
	}
	if p.PurchasedAt != nil {
		product.PurchasedAt = *p.PurchasedAt
	}
	if p.IsActive != nil {
		product.IsActive = *p.IsActive
	}
}

// ProductFilter selects active products of a user, optionally within one shop.
type ProductFilter struct {
	UserID string
	ShopID string // Empty means all shops.
}
