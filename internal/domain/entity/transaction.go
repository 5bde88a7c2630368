package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TransactionType tells how a transaction amount affects the balance.
type TransactionType string

const (
	TransactionTypePurchase TransactionType = "purchase"
	TransactionTypePayment  TransactionType = "payment"
)

// Legacy numeric codes written by older clients.
const (
	legacyPurchaseCode = 0
	legacyPaymentCode  = 1
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypePurchase || t == TransactionTypePayment
}

// ParseTransactionType normalizes a stored or submitted type value. Strings are
// matched as-is, and the legacy codes 0 and 1 (numeric or numeric strings) map to
// purchase and payment. Anything else is returned unnormalized with ok=false.
func ParseTransactionType(raw any) (t TransactionType, ok bool) {
	switch v := raw.(type) {
	case TransactionType:
		return ParseTransactionType(string(v))
	case string:
		if code, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return fromLegacyCode(int64(code))
		}
		t = TransactionType(v)

		return t, t.Valid()
	case int:
		return fromLegacyCode(int64(v))
	case int64:
		return fromLegacyCode(v)
	case float64:
		if v != float64(int64(v)) {
			return TransactionType(fmt.Sprint(v)), false
		}

		return fromLegacyCode(int64(v))
	case nil:
		return "", false
	default:
		return TransactionType(fmt.Sprint(v)), false
	}
}

func fromLegacyCode(code int64) (TransactionType, bool) {
	switch code {
	case legacyPurchaseCode:
		return TransactionTypePurchase, true
	case legacyPaymentCode:
		return TransactionTypePayment, true
	default:
		return TransactionType(strconv.FormatInt(code, 10)), false
	}
}

// UnmarshalJSON accepts both the string form and the legacy numeric codes.
func (t *TransactionType) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t, _ = ParseTransactionType(raw)

	return nil
}

// UnmarshalParam accepts form values for echo's binder.
func (t *TransactionType) UnmarshalParam(param string) error {
	*t, _ = ParseTransactionType(param)

	return nil
}

// Transaction is a purchase or payment recorded against a shop.
type Transaction struct {
	ID               string          `json:"id"`
	ShopID           string          `json:"shopId"`
	UserID           string          `json:"userId"`
	Amount           float64         `json:"amount"`
	Type             TransactionType `json:"type"`
	Date             time.Time       `json:"date"`
	Note             string          `json:"note"`
	RelatedProductID string          `json:"relatedProductId,omitempty"` // Back-reference only, not an ownership edge.
	IsActive         bool            `json:"isActive"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// TransactionFilter selects active transactions of a user, optionally within one shop.
type TransactionFilter struct {
	UserID string
	ShopID string // Empty means all shops.
}

// TransactionAmount is the projection read by balance aggregation.
type TransactionAmount struct {
	Amount float64
	Type   TransactionType
}
