package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const StatusPending = "PENDING"

// Order freezes a checkout quote. Amounts are in Currency.
type Order struct {
	ID        string          `json:"id"`
	SessionID string          `json:"sessionId"`
	Status    string          `json:"status"`
	Currency  string          `json:"currency"`
	Items     []OrderItem     `json:"items"`
	SubTotal  decimal.Decimal `json:"subTotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
}

type OrderItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type PlaceOrderRequest struct {
	SessionID string
	Shipping  decimal.Decimal
}
