package domain

import "github.com/shopspring/decimal"

// Entry is a saved product. There is no quantity; an id is either saved or not.
type Entry struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"imageUrl"`
	Seller   string          `json:"seller"`
	InStock  bool            `json:"inStock"`
}

type Wishlist struct {
	SessionID string
	Entries   []Entry
}
