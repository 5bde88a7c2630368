package model

import (
	"time"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID          string    `gorm:"type:varchar(64);primaryKey"`
	ShopID      string    `gorm:"type:varchar(64);not null;index"`
	UserID      string    `gorm:"type:varchar(128);not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Price       float64   `gorm:"type:double precision;not null"`
	Quantity    int64     `gorm:"not null"`
	ImagePath   string    `gorm:"type:text"`
	PurchasedAt time.Time `gorm:"not null"`
	IsActive    bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
