package entity

// DashboardSummary is the per-user balance overview.
type DashboardSummary struct {
	ShopCount      int64   `json:"shopCount"`
	TotalPurchase  float64 `json:"totalPurchase"`
	TotalPaid      float64 `json:"totalPaid"`
	CurrentBalance float64 `json:"currentBalance"`
}

// ShopBalance is the outstanding balance of one shop. ProductTotal is the value
// of active products and is reported separately, never folded into CurrentBalance.
type ShopBalance struct {
	ShopID         string  `json:"shopId"`
	TotalPurchase  float64 `json:"totalPurchase"`
	TotalPaid      float64 `json:"totalPaid"`
	CurrentBalance float64 `json:"currentBalance"`
	ProductTotal   float64 `json:"productTotal"`
}

// PaymentRequest is the content of a UPI payment QR code.
type PaymentRequest struct {
	PayeeVPA  string  `json:"pa"`
	PayeeName string  `json:"pn"`
	Amount    float64 `json:"am,omitempty"` // Zero means the payer enters the amount.
	Currency  string  `json:"cu"`
	Note      string  `json:"tn,omitempty"`
}
