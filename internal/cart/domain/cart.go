package domain

import "github.com/shopspring/decimal"

// Item is the product snapshot handed over when adding to the cart.
type Item struct {
	ID     string          `json:"id"`
	Title  string          `json:"title"`
	Image  string          `json:"image"`
	Seller string          `json:"seller"`
	Price  decimal.Decimal `json:"price"`
	Stock  *int            `json:"stock,omitempty"`
}

// CartLine is one distinct product held at a quantity. Title, Image, Seller
// and Price are captured when the line is created and never refreshed.
type CartLine struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Image    string          `json:"image"`
	Seller   string          `json:"seller"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Stock    *int            `json:"stock,omitempty"`
}

func NewLine(item Item, quantity int) CartLine {
	return CartLine{
		ID:       item.ID,
		Title:    item.Title,
		Image:    item.Image,
		Seller:   item.Seller,
		Price:    item.Price,
		Quantity: quantity,
		Stock:    item.Stock,
	}
}

func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Cart struct {
	SessionID string
	Lines     []CartLine
}

func (c Cart) ItemCount() int {
	return ItemCount(c.Lines)
}

func (c Cart) Subtotal() decimal.Decimal {
	return Subtotal(c.Lines)
}

func ItemCount(lines []CartLine) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

func Subtotal(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.LineTotal())
	}
	return total
}
