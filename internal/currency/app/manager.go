package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/Biz-Hub01/pureez/internal/currency/domain"
	"github.com/Biz-Hub01/pureez/internal/notify"
	"github.com/Biz-Hub01/pureez/internal/storage"
	"github.com/shopspring/decimal"
)

const preferenceKey = "currency"

// Manager holds one shopper's display currency on top of the shared rates.
type Manager struct {
	mu       sync.Mutex
	rates    *Rates
	store    Store
	notifier notify.Notifier
	log      *slog.Logger
	active   string
}

func NewManager(rates *Rates, store Store, notifier notify.Notifier, log *slog.Logger) *Manager {
	if notifier == nil {
		notifier = notify.Discard
	}
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		rates:    rates,
		store:    store,
		notifier: notifier,
		log:      log,
		active:   rates.Base(),
	}
}

// Load restores the preferred currency. Unknown or unreadable values fall
// back to the base currency.
func (m *Manager) Load(ctx context.Context) error {
	raw, err := m.store.Get(ctx, preferenceKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load currency preference: %w", err)
	}

	code := decodePreference(raw)
	if _, ok := m.rates.Lookup(code); !ok {
		m.log.WarnContext(ctx, "stored currency preference is unknown, using base", slog.String("code", raw))
		return nil
	}

	m.mu.Lock()
	m.active = code
	m.mu.Unlock()
	return nil
}

// decodePreference accepts both the bare code and a JSON string.
func decodePreference(raw string) string {
	raw = strings.TrimSpace(raw)
	var quoted string
	if err := json.Unmarshal([]byte(raw), &quoted); err == nil {
		raw = quoted
	}
	return domain.NormalizeCode(raw)
}

// SetCurrency switches the active currency. Unknown codes are rejected and
// leave the selection unchanged.
func (m *Manager) SetCurrency(ctx context.Context, code string) error {
	c, ok := m.rates.Lookup(code)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrInvalidCurrencyCode, code)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.active = c.Code
	if err := m.store.Set(ctx, preferenceKey, c.Code); err != nil {
		m.log.ErrorContext(ctx, "persist currency preference failed", slog.Any("err", err))
	}
	m.notifier.Notify(ctx, notify.Event{
		Kind:    notify.KindCurrencyChanged,
		Message: fmt.Sprintf("prices now shown in %s", c.Code),
		Payload: c,
	})
	return nil
}

// Active returns the selected currency with its current rate.
func (m *Manager) Active() domain.Currency {
	m.mu.Lock()
	code := m.active
	m.mu.Unlock()

	c, ok := m.rates.Lookup(code)
	if !ok {
		c, _ = m.rates.Lookup(m.rates.Base())
	}
	return c
}

func (m *Manager) Currencies() []domain.Currency {
	return m.rates.Currencies()
}

// ConvertPrice multiplies a base-currency amount by the rate of targetCode,
// or of the active currency when no known target is given. No rounding.
func (m *Manager) ConvertPrice(amount decimal.Decimal, targetCode ...string) decimal.Decimal {
	if len(targetCode) > 0 && targetCode[0] != "" {
		if c, ok := m.rates.Lookup(targetCode[0]); ok {
			return amount.Mul(c.Rate)
		}
	}
	return amount.Mul(m.Active().Rate)
}

// Convert is the strict form of ConvertPrice.
func (m *Manager) Convert(amount decimal.Decimal, code string) (decimal.Decimal, error) {
	c, ok := m.rates.Lookup(code)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidCurrencyCode, code)
	}
	return amount.Mul(c.Rate), nil
}

// FormatPrice converts a base-currency amount to the active currency and
// renders it for display.
func (m *Manager) FormatPrice(amount decimal.Decimal) string {
	c := m.Active()
	return Format(c, amount.Mul(c.Rate))
}
