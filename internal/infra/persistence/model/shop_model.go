package model

import (
	"time"
)

// ShopModel is the GORM-specific struct for the 'shops' table.
type ShopModel struct {
	ID            string    `gorm:"type:varchar(64);primaryKey"`
	UserID        string    `gorm:"type:varchar(128);not null;index:idx_shops_user_active,priority:1"`
	Name          string    `gorm:"type:varchar(255);not null"`
	OwnerName     string    `gorm:"type:varchar(255)"`
	ContactNumber string    `gorm:"type:varchar(32)"`
	Address       string    `gorm:"type:text"`
	UPIID         string    `gorm:"column:upi_id;type:varchar(255)"`
	IsActive      bool      `gorm:"not null;index:idx_shops_user_active,priority:2"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}
