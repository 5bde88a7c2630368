package entity

import "time"

// LedgerEventType names an audit event emitted after a destructive ledger operation.
type LedgerEventType string

const (
	LedgerEventShopDeleted    LedgerEventType = "shop.deleted"
	LedgerEventProductDeleted LedgerEventType = "product.deleted"
	LedgerEventAccountReset   LedgerEventType = "account.reset"
)

// LedgerEvent is published after a cascade or reset commits.
type LedgerEvent struct {
	RequestID  string          `json:"request_id,omitempty"` // For distributed tracing
	Type       LedgerEventType `json:"type"`
	UserID     string          `json:"user_id"`
	EntityID   string          `json:"entity_id,omitempty"`
	Affected   int             `json:"affected"` // Documents written, including the parent.
	OccurredAt time.Time       `json:"occurred_at"`
}
