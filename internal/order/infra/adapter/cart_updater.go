package adapter

import (
	"context"

	cartapp "github.com/Biz-Hub01/pureez/internal/cart/app"
	"github.com/Biz-Hub01/pureez/internal/order/domain"
)

type CartServiceUpdater struct {
	svc *cartapp.Service
}

func NewCartServiceUpdater(svc *cartapp.Service) *CartServiceUpdater {
	return &CartServiceUpdater{svc: svc}
}

// RemoveOrdered deducts the ordered quantities under the cart's own lock.
func (c *CartServiceUpdater) RemoveOrdered(ctx context.Context, sessionID string, items []domain.OrderItem) error {
	m, err := c.svc.GetOrCreate(ctx, sessionID)
	if err != nil {
		return err
	}
	quantities := make(map[string]int, len(items))
	for _, it := range items {
		quantities[it.ProductID] += it.Quantity
	}
	m.Deduct(ctx, quantities)
	return nil
}
