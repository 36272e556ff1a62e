package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Biz-Hub01/pureez/internal/order/app"
	"github.com/Biz-Hub01/pureez/internal/order/domain"
	"github.com/Biz-Hub01/pureez/internal/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderRepo keeps each order under "order:<id>" and a per-session id index
// under "<session>:orders".
type OrderRepo struct {
	mu    sync.Mutex
	store storage.Store
	now   func() time.Time
}

func NewOrderRepo(store storage.Store) *OrderRepo {
	return &OrderRepo{store: store, now: time.Now}
}

func orderKey(id string) string        { return "order:" + id }
func indexKey(sessionID string) string { return sessionID + ":orders" }

func (r *OrderRepo) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	sum := decimal.Zero
	for i, item := range order.Items {
		if item.Quantity <= 0 {
			return domain.Order{}, fmt.Errorf("item %d: quantity must be positive, got %d", i, item.Quantity)
		}
		sum = sum.Add(item.LineTotal)
	}
	if !sum.Equal(order.SubTotal) {
		return domain.Order{}, fmt.Errorf("subtotal mismatch: items sum to %s, order says %s", sum, order.SubTotal)
	}

	order.ID = uuid.NewString()
	order.CreatedAt = r.now().UTC()

	raw, err := json.Marshal(order)
	if err != nil {
		return domain.Order{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ids, err := r.index(ctx, order.SessionID)
	if err != nil {
		return domain.Order{}, err
	}

	if err := r.store.Set(ctx, orderKey(order.ID), string(raw)); err != nil {
		return domain.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	idx, err := json.Marshal(append(ids, order.ID))
	if err != nil {
		return domain.Order{}, err
	}
	if err := r.store.Set(ctx, indexKey(order.SessionID), string(idx)); err != nil {
		if delErr := r.store.Delete(ctx, orderKey(order.ID)); delErr != nil {
			return domain.Order{}, fmt.Errorf("index order: %w; rollback err: %v", err, delErr)
		}
		return domain.Order{}, fmt.Errorf("index order: %w", err)
	}
	return order, nil
}

func (r *OrderRepo) Get(ctx context.Context, id string) (domain.Order, error) {
	raw, err := r.store.Get(ctx, orderKey(id))
	if errors.Is(err, storage.ErrNotFound) {
		return domain.Order{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Order{}, err
	}
	var o domain.Order
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		return domain.Order{}, fmt.Errorf("decode order %s: %w", id, err)
	}
	return o, nil
}

// ListBySession returns the session's orders, oldest first.
func (r *OrderRepo) ListBySession(ctx context.Context, sessionID string) ([]domain.Order, error) {
	r.mu.Lock()
	ids, err := r.index(ctx, sessionID)
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}

	out := make([]domain.Order, 0, len(ids))
	for _, id := range ids {
		o, err := r.Get(ctx, id)
		if errors.Is(err, app.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *OrderRepo) index(ctx context.Context, sessionID string) ([]string, error) {
	raw, err := r.store.Get(ctx, indexKey(sessionID))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		// A corrupt index only hides history; new orders start a fresh one.
		return nil, nil
	}
	return ids, nil
}
