package entity

import "time"

// Profile is the business profile of a user, keyed by the identity UID.
type Profile struct {
	UID         string     `json:"uid"`
	Email       string     `json:"email"`
	Name        string     `json:"name,omitempty"`
	Address     string     `json:"address,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Description string     `json:"description,omitempty"` // Only set on synthesized defaults.
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// ProfilePatch carries a merge-write of a profile. Nil fields are left untouched.
type ProfilePatch struct {
	Email     string
	Name      *string
	Address   *string
	Phone     *string
	UpdatedAt time.Time
}
