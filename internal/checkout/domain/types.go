package domain

import "github.com/shopspring/decimal"

const (
	AdvisoryPriceChanged      = "price_changed"
	AdvisoryInsufficientStock = "insufficient_stock"
	AdvisoryUnavailable       = "unavailable"
)

// QuoteLine prices one cart line in the quote currency. Unavailable lines
// are listed but contribute nothing to the total.
type QuoteLine struct {
	ProductID  string          `json:"productId"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	LineTotal  decimal.Decimal `json:"lineTotal"`
	Advisories []string        `json:"advisories,omitempty"`
}

type Quote struct {
	Currency  string          `json:"currency"`
	Lines     []QuoteLine     `json:"lines"`
	ItemCount int             `json:"itemCount"`
	BaseTotal decimal.Decimal `json:"baseTotal"`
	Total     decimal.Decimal `json:"total"`
}
