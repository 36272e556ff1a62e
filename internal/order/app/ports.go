package app

import (
	"context"

	checkoutdomain "github.com/Biz-Hub01/pureez/internal/checkout/domain"
	"github.com/Biz-Hub01/pureez/internal/order/domain"
)

type OrderRepo interface {
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	Get(ctx context.Context, id string) (domain.Order, error)
	ListBySession(ctx context.Context, sessionID string) ([]domain.Order, error)
}

type Quoter interface {
	Quote(ctx context.Context, sessionID string) (checkoutdomain.Quote, error)
}

// CartUpdater takes ordered quantities out of a session's cart, leaving
// anything added since the quote in place.
type CartUpdater interface {
	RemoveOrdered(ctx context.Context, sessionID string, items []domain.OrderItem) error
}
