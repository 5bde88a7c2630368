package model

import (
	"time"
)

// TransactionModel is the GORM-specific struct for the 'transactions' table.
// Type holds the raw stored value; legacy rows may carry "0" or "1".
type TransactionModel struct {
	ID               string    `gorm:"type:varchar(64);primaryKey"`
	ShopID           string    `gorm:"type:varchar(64);not null;index"`
	UserID           string    `gorm:"type:varchar(128);not null;index"`
	Amount           float64   `gorm:"type:double precision;not null"`
	Type             string    `gorm:"type:varchar(16);not null"`
	Date             time.Time `gorm:"not null"`
	Note             string    `gorm:"type:text"`
	RelatedProductID string    `gorm:"type:varchar(64);index"`
	IsActive         bool      `gorm:"not null"`
	CreatedAt        time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}

// TransactionAmountModel is the projection scanned by balance reads.
type TransactionAmountModel struct {
	Amount float64
	Type   string
}
