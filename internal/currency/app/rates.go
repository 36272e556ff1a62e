package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Biz-Hub01/pureez/internal/currency/domain"
	"github.com/Biz-Hub01/pureez/internal/notify"
	"github.com/Biz-Hub01/pureez/internal/storage"
	"github.com/Biz-Hub01/pureez/pkg/config"
	"github.com/shopspring/decimal"
)

const (
	ratesKey        = "currency:rates"
	DefaultInterval = time.Hour
)

type RatesConfig struct {
	Base       string
	Currencies []domain.Currency
	Interval   time.Duration
}

// RatesConfigFrom maps the file/env configuration onto the rate table seed.
func RatesConfigFrom(cfg config.CurrencyConfig) RatesConfig {
	out := RatesConfig{
		Base:     cfg.Base,
		Interval: time.Duration(cfg.RefreshSec) * time.Second,
	}
	for _, s := range cfg.Currencies {
		out.Currencies = append(out.Currencies, domain.Currency{
			Code:   domain.NormalizeCode(s.Code),
			Name:   s.Name,
			Symbol: s.Symbol,
			Rate:   decimal.NewFromFloat(s.Rate),
		})
	}
	return out
}

type cachedRates struct {
	FetchedAt time.Time                  `json:"fetchedAt"`
	Rates     map[string]decimal.Decimal `json:"rates"`
}

// Rates is the shared rate table. It starts from static defaults and is
// refreshed from the provider on Start and then every interval. A failed
// refresh leaves the current rates untouched.
type Rates struct {
	mu          sync.RWMutex
	base        string
	order       []string
	table       map[string]domain.Currency
	lastRefresh time.Time
	refreshed   bool
	started     bool
	closed      bool

	provider RateProvider
	store    Store
	notifier notify.Notifier
	log      *slog.Logger
	interval time.Duration
	now      func() time.Time

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRates(cfg RatesConfig, provider RateProvider, store Store, notifier notify.Notifier, log *slog.Logger) (*Rates, error) {
	base := domain.NormalizeCode(cfg.Base)
	if base == "" {
		base = domain.DefaultBase
	}
	seed := cfg.Currencies
	if len(seed) == 0 {
		seed = domain.DefaultCurrencies()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if notifier == nil {
		notifier = notify.Discard
	}
	if log == nil {
		log = slog.Default()
	}

	r := &Rates{
		base:     base,
		table:    make(map[string]domain.Currency, len(seed)),
		provider: provider,
		store:    store,
		notifier: notifier,
		log:      log,
		interval: cfg.Interval,
		now:      time.Now,
	}
	for _, c := range seed {
		c.Code = domain.NormalizeCode(c.Code)
		if _, dup := r.table[c.Code]; dup {
			return nil, fmt.Errorf("duplicate currency %s", c.Code)
		}
		if c.Code == base {
			c.Rate = decimal.NewFromInt(1)
		}
		r.order = append(r.order, c.Code)
		r.table[c.Code] = c
	}
	if _, ok := r.table[base]; !ok {
		return nil, fmt.Errorf("currency table does not contain base %s", base)
	}
	return r, nil
}

// Start restores cached rates and returns. The first refresh and the
// periodic ones run in the background until ctx is done or Close is called.
// Calling Start again, or after Close, does nothing.
func (r *Rates) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	r.mu.Lock()
	if r.closed || r.started {
		r.mu.Unlock()
		cancel()
		return
	}
	r.started = true
	r.cancel = cancel
	r.wg.Add(1)
	r.mu.Unlock()

	r.Restore(ctx)

	go func() {
		defer r.wg.Done()
		defer func() {
			if p := recover(); p != nil {
				r.log.Error("rates refresh loop panic recovered", slog.Any("panic", p))
			}
		}()

		if err := r.Refresh(ctx); err != nil {
			r.log.WarnContext(ctx, "initial rates refresh failed, using last known rates", slog.Any("err", err))
		}

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				r.log.Info("rates refresh stopped")
				return
			case <-ticker.C:
				if err := r.Refresh(ctx); err != nil {
					r.log.WarnContext(ctx, "rates refresh failed, using last known rates", slog.Any("err", err))
				}
			}
		}
	}()
}

// Close stops the refresh loop and waits for it. Responses that arrive after
// Close are discarded.
func (r *Rates) Close() {
	r.mu.Lock()
	r.closed = true
	cancel := r.cancel
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	r.wg.Wait()
}

// Refresh fetches the provider table and applies it. The error is returned
// for callers that want to report it; the table is never left half-updated.
func (r *Rates) Refresh(ctx context.Context) error {
	if r.provider == nil {
		return errors.New("no rate provider configured")
	}
	fetched, err := r.provider.Latest(ctx, r.base)
	if err != nil {
		return fmt.Errorf("fetch rates: %w", err)
	}

	at := r.now().UTC()
	updated, ok := r.apply(fetched, at, true)
	if !ok {
		return nil
	}

	r.log.InfoContext(ctx, "exchange rates refreshed", slog.Int("updated", updated), slog.String("base", r.base))
	r.persist(ctx, fetched, at)
	r.notifier.Notify(ctx, notify.Event{
		Kind:    notify.KindRatesRefreshed,
		Message: "exchange rates updated",
		At:      at,
		Payload: r.Currencies(),
	})
	return nil
}

// apply updates the rate of every known currency present in fetched. It
// reports false when the table was closed and nothing was applied.
func (r *Rates) apply(fetched map[string]decimal.Decimal, at time.Time, live bool) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return 0, false
	}

	updated := 0
	for code, c := range r.table {
		if code == r.base {
			continue
		}
		rate, ok := fetched[code]
		if !ok || !rate.IsPositive() {
			continue
		}
		c.Rate = rate
		r.table[code] = c
		updated++
	}
	r.lastRefresh = at
	if live {
		r.refreshed = true
	}
	return updated, true
}

// Restore applies the rates cached by the last successful refresh, if any.
// Corrupt cache entries are ignored.
func (r *Rates) Restore(ctx context.Context) {
	if r.store == nil {
		return
	}
	raw, err := r.store.Get(ctx, ratesKey)
	if errors.Is(err, storage.ErrNotFound) {
		return
	}
	if err != nil {
		r.log.WarnContext(ctx, "read cached rates failed", slog.Any("err", err))
		return
	}
	var cached cachedRates
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		r.log.WarnContext(ctx, "cached rates are corrupt, ignoring", slog.Any("err", err))
		return
	}
	r.apply(cached.Rates, cached.FetchedAt, false)
}

func (r *Rates) persist(ctx context.Context, fetched map[string]decimal.Decimal, at time.Time) {
	if r.store == nil {
		return
	}
	b, err := json.Marshal(cachedRates{FetchedAt: at, Rates: fetched})
	if err != nil {
		return
	}
	if err := r.store.Set(ctx, ratesKey, string(b)); err != nil {
		r.log.WarnContext(ctx, "cache rates failed", slog.Any("err", err))
	}
}

func (r *Rates) Base() string { return r.base }

func (r *Rates) Lookup(code string) (domain.Currency, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.table[domain.NormalizeCode(code)]
	return c, ok
}

// Currencies lists the table in seed order.
func (r *Rates) Currencies() []domain.Currency {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Currency, 0, len(r.order))
	for _, code := range r.order {
		out = append(out, r.table[code])
	}
	return out
}

// SetRate overrides one rate by hand; the base rate cannot change.
func (r *Rates) SetRate(code string, rate decimal.Decimal) error {
	code = domain.NormalizeCode(code)
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.table[code]
	if !ok {
		return domain.ErrInvalidCurrencyCode
	}
	if code == r.base || !rate.IsPositive() {
		return fmt.Errorf("rate for %s cannot be set to %s", code, rate)
	}
	c.Rate = rate
	r.table[code] = c
	return nil
}

// Refreshed reports whether a live refresh has succeeded since startup.
func (r *Rates) Refreshed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.refreshed
}

func (r *Rates) LastRefresh() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastRefresh
}
