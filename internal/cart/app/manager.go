package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/Biz-Hub01/pureez/internal/cart/domain"
	"github.com/Biz-Hub01/pureez/internal/notify"
	"github.com/Biz-Hub01/pureez/internal/storage"
	"github.com/shopspring/decimal"
)

// Manager owns one shopper's cart. The in-memory lines are authoritative;
// every mutation is mirrored to the store under a single key.
type Manager struct {
	mu       sync.Mutex
	store    Store
	notifier notify.Notifier
	log      *slog.Logger
	lines    []domain.CartLine
}

func NewManager(store Store, notifier notify.Notifier, log *slog.Logger) *Manager {
	if notifier == nil {
		notifier = notify.Discard
	}
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		store:    store,
		notifier: notifier,
		log:      log,
	}
}

// Load replaces the in-memory cart with the persisted one. A missing or
// unparsable value yields an empty cart; only store failures are returned.
func (m *Manager) Load(ctx context.Context) error {
	raw, err := m.store.Get(ctx, storeKey)
	if errors.Is(err, storage.ErrNotFound) {
		m.replace(nil)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}

	lines, err := decodeLines(raw)
	if err != nil {
		m.log.WarnContext(ctx, "stored cart is corrupt, starting empty", slog.Any("err", err))
		lines = nil
	}
	m.replace(lines)
	return nil
}

func (m *Manager) replace(lines []domain.CartLine) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = lines
}

// AddToCart increments the line for item.ID or appends a new one. A
// quantity below 1 counts as 1. An item without an id is ignored and the
// zero line is returned.
func (m *Manager) AddToCart(ctx context.Context, item domain.Item, quantity int) domain.CartLine {
	if item.ID == "" {
		return domain.CartLine{}
	}
	if quantity < 1 {
		quantity = 1
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var line domain.CartLine
	if i := m.indexOf(item.ID); i >= 0 {
		m.lines[i].Quantity += quantity
		line = m.lines[i]
	} else {
		line = domain.NewLine(item, quantity)
		m.lines = append(m.lines, line)
	}

	m.persist(ctx)
	m.notifier.Notify(ctx, notify.Event{
		Kind:    notify.KindCartAdded,
		Message: fmt.Sprintf("%s added to cart", item.Title),
		Payload: line,
	})
	return line
}

// RemoveFromCart reports whether a line was removed.
func (m *Manager) RemoveFromCart(ctx context.Context, id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return false
	}
	removed := m.lines[i]
	m.lines = slices.Delete(m.lines, i, i+1)

	m.persist(ctx)
	m.notifier.Notify(ctx, notify.Event{
		Kind:    notify.KindCartRemoved,
		Message: fmt.Sprintf("%s removed from cart", removed.Title),
		Payload: removed,
	})
	return true
}

// UpdateQuantity sets the quantity of an existing line. Quantities below 1
// and unknown ids are ignored; the result reports whether anything changed.
func (m *Manager) UpdateQuantity(ctx context.Context, id string, quantity int) bool {
	if quantity < 1 {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return false
	}
	m.lines[i].Quantity = quantity

	m.persist(ctx)
	m.notifier.Notify(ctx, notify.Event{
		Kind:    notify.KindCartUpdated,
		Message: fmt.Sprintf("%s quantity set to %d", m.lines[i].Title, quantity),
		Payload: m.lines[i],
	})
	return true
}

func (m *Manager) ClearCart(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lines = nil

	m.persist(ctx)
	m.notifier.Notify(ctx, notify.Event{
		Kind:    notify.KindCartCleared,
		Message: "cart cleared",
	})
}

// Deduct lowers each line by the quantity given for its id and drops lines
// that reach zero. Ids not in the cart are skipped. It reports whether the
// cart changed.
func (m *Manager) Deduct(ctx context.Context, quantities map[string]int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	changed := false
	kept := m.lines[:0]
	for _, l := range m.lines {
		if q := quantities[l.ID]; q > 0 {
			changed = true
			l.Quantity -= q
			if l.Quantity < 1 {
				continue
			}
		}
		kept = append(kept, l)
	}
	if !changed {
		return false
	}
	clear(m.lines[len(kept):])
	m.lines = kept

	m.persist(ctx)
	m.notifier.Notify(ctx, notify.Event{
		Kind:    notify.KindCartUpdated,
		Message: "ordered items removed from cart",
	})
	return true
}

func (m *Manager) IsInCart(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.indexOf(id) >= 0
}

// Lines returns a copy of the cart in insertion order.
func (m *Manager) Lines() []domain.CartLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.lines)
}

func (m *Manager) Line(id string) (domain.CartLine, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.indexOf(id); i >= 0 {
		return m.lines[i], true
	}
	return domain.CartLine{}, false
}

// ItemCount is the sum of all line quantities.
func (m *Manager) ItemCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return domain.ItemCount(m.lines)
}

// Subtotal is the base-currency total of the cart.
func (m *Manager) Subtotal() decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return domain.Subtotal(m.lines)
}

func (m *Manager) indexOf(id string) int {
	return slices.IndexFunc(m.lines, func(l domain.CartLine) bool { return l.ID == id })
}

// persist must be called with m.mu held so the stored value always matches a
// state the manager actually went through.
func (m *Manager) persist(ctx context.Context) {
	raw, err := encodeLines(m.lines)
	if err != nil {
		m.log.ErrorContext(ctx, "encode cart failed", slog.Any("err", err))
		return
	}
	if err := m.store.Set(ctx, storeKey, raw); err != nil {
		m.log.ErrorContext(ctx, "persist cart failed", slog.Any("err", err))
	}
}
