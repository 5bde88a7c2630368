package model

import (
	"time"
)

// ProfileModel is the GORM-specific struct for the 'users' table, keyed by identity UID.
type ProfileModel struct {
	UID       string `gorm:"type:varchar(128);primaryKey"`
	Email     string `gorm:"type:varchar(255)"`
	Name      string `gorm:"type:varchar(255)"`
	Address   string `gorm:"type:text"`
	Phone     string `gorm:"type:varchar(32)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "users"
}
