package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string
	Title       string
	Description string
	Category    string
	Seller      string
	Image       string
	Price       decimal.Decimal
	Stock       int
	CreatedAt   time.Time
}

func (p Product) InStock() bool { return p.Stock > 0 }

const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortTitle     = "title"
)

// Filter narrows and orders a product listing. Zero prices mean unbounded.
// Cursor is the id of the last product of the previous page.
type Filter struct {
	Query       string
	Category    string
	MinPrice    decimal.Decimal
	MaxPrice    decimal.Decimal
	InStockOnly bool
	Sort        string
	Limit       int
	Cursor      string
}
