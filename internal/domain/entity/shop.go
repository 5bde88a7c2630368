package entity

import "time"

// Shop is a wholesale customer owned by exactly one user.
type Shop struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"` // Owner; immutable after creation.
	Name          string    `json:"name"`
	OwnerName     string    `json:"ownerName"`
	ContactNumber string    `json:"contactNumber"`
	Address       string    `json:"address"`
	UPIID         string    `json:"upiId"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ShopPatch is a partial update of a shop. ID, UserID and CreatedAt are not patchable.
type ShopPatch struct {
	Name          *string
	OwnerName     *string
	ContactNumber *string
	Address       *string
	UPIID         *string
	IsActive      *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p *ShopPatch) IsEmpty() bool {
	return p == nil || (p.Name == nil && p.OwnerName == nil && p.ContactNumber == nil &&
		p.Address == nil && p.UPIID == nil && p.IsActive == nil)
}

// Apply writes the patch onto the shop in place.
func (p *ShopPatch) Apply(shop *Shop) {
	if p == nil {
		return
	}
	if p.Name != nil {
		shop.Name = *p.Name
	}
	if p.OwnerName != nil {
		shop.OwnerName = *p.OwnerName
	}
	if p.ContactNumber != nil {
		shop.ContactNumber = *p.ContactNumber
	}
	if p.Address != nil {
		shop.Address = *p.Address
	}
	if p.UPIID != nil {
		shop.UPIID = *p.UPIID
	}
	if p.IsActive != nil {
		shop.IsActive = *p.IsActive
	}
}
