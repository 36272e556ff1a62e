package adapter

import (
	"context"

	cartapp "github.com/Biz-Hub01/pureez/internal/cart/app"
	checkoutapp "github.com/Biz-Hub01/pureez/internal/checkout/app"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) GetCart(ctx context.Context, sessionID string) ([]checkoutapp.CartItem, error) {
	cart, err := r.svc.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	items := make([]checkoutapp.CartItem, 0, len(cart.Lines))
	for _, it := range cart.Lines {
		items = append(items, checkoutapp.CartItem{
			ProductID: it.ID,
			Title:     it.Title,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return items, nil
}
