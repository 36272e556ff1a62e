package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	checkoutdomain "github.com/Biz-Hub01/pureez/internal/checkout/domain"
	"github.com/Biz-Hub01/pureez/internal/order/domain"
	"github.com/Biz-Hub01/pureez/internal/session"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("order not found")
	// ErrNeedsReview is returned when the cart has lines that can no longer
	// be bought as they are.
	ErrNeedsReview = errors.New("cart needs review before ordering")
)

type Service struct {
	repo  OrderRepo
	quote Quoter
	carts CartUpdater
	log   *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(repo OrderRepo, quote Quoter, carts CartUpdater, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, quote: quote, carts: carts, log: log, locks: make(map[string]*sync.Mutex)}
}

// sessionLock serializes order placement per session.
func (s *Service) sessionLock(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

// PlaceOrder prices the session's cart, records it as a pending order and
// takes the ordered quantities out of the cart. Lines flagged unavailable or
// short of stock block the order; a price change alone does not. Orders for
// one session are placed one at a time.
func (s *Service) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (domain.Order, error) {
	if req.Shipping.IsNegative() {
		return domain.Order{}, fmt.Errorf("%w: shipping cannot be negative, got %s", ErrInvalidInput, req.Shipping)
	}
	id, err := session.Parse(req.SessionID)
	if err != nil {
		return domain.Order{}, err
	}

	lock := s.sessionLock(id)
	lock.Lock()
	defer lock.Unlock()

	q, err := s.quote.Quote(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}

	items := make([]domain.OrderItem, 0, len(q.Lines))
	subTotal := decimal.Zero
	for _, line := range q.Lines {
		if slices.Contains(line.Advisories, checkoutdomain.AdvisoryUnavailable) ||
			slices.Contains(line.Advisories, checkoutdomain.AdvisoryInsufficientStock) {
			return domain.Order{}, fmt.Errorf("%w: %s", ErrNeedsReview, line.ProductID)
		}
		items = append(items, domain.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal,
		})
		subTotal = subTotal.Add(line.LineTotal)
	}

	shipping := req.Shipping.Round(2)
	order := domain.Order{
		SessionID: id,
		Status:    domain.StatusPending,
		Currency:  q.Currency,
		Items:     items,
		SubTotal:  subTotal,
		Shipping:  shipping,
		Total:     subTotal.Add(shipping),
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("save order: %w", err)
	}

	if err := s.carts.RemoveOrdered(ctx, id, created.Items); err != nil {
		s.log.ErrorContext(ctx, "remove ordered items from cart failed", slog.String("order", created.ID), slog.Any("err", err))
	}

	s.log.InfoContext(ctx, "order placed",
		slog.String("order", created.ID),
		slog.String("session", created.SessionID),
		slog.String("total", created.Total.String()),
		slog.String("currency", created.Currency),
	)
	return created, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	if id == "" {
		return domain.Order{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) ListOrders(ctx context.Context, sessionID string) ([]domain.Order, error) {
	id, err := session.Parse(sessionID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListBySession(ctx, id)
}
