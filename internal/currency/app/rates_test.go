package app

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Biz-Hub01/pureez/internal/currency/domain"
	"github.com/Biz-Hub01/pureez/internal/notify"
	"github.com/Biz-Hub01/pureez/internal/storage"
	"github.com/Biz-Hub01/pureez/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeProvider struct {
	mu    sync.Mutex
	rates map[string]decimal.Decimal
	err   error
	calls atomic.Int32
	gate  chan struct{}
}

func (f *fakeProvider) Latest(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	f.calls.Add(1)
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[string]decimal.Decimal, len(f.rates))
	for k, v := range f.rates {
		out[k] = v
	}
	return out, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newRates(t *testing.T, p RateProvider, store Store) *Rates {
	t.Helper()
	r, err := NewRates(RatesConfig{}, p, store, nil, logger.Discard())
	require.NoError(t, err)
	return r
}

func rateOf(t *testing.T, r *Rates, code string) decimal.Decimal {
	t.Helper()
	c, ok := r.Lookup(code)
	require.True(t, ok, "currency %s missing", code)
	return c.Rate
}

func TestNewRates(t *testing.T) {
	t.Run("defaults to KES table", func(t *testing.T) {
		r := newRates(t, nil, nil)
		assert.Equal(t, "KES", r.Base())
		codes := []string{}
		for _, c := range r.Currencies() {
			codes = append(codes, c.Code)
		}
		assert.Equal(t, []string{"KES", "USD", "EUR", "GBP", "UGX", "TZS"}, codes)
		assert.False(t, r.Refreshed())
	})

	t.Run("base rate is forced to one", func(t *testing.T) {
		r, err := NewRates(RatesConfig{
			Base: "usd",
			Currencies: []domain.Currency{
				{Code: "USD", Symbol: "$", Rate: dec("3")},
				{Code: "kes", Symbol: "KES", Rate: dec("130")},
			},
		}, nil, nil, nil, logger.Discard())
		require.NoError(t, err)
		assert.True(t, rateOf(t, r, "USD").Equal(decimal.NewFromInt(1)))
		assert.True(t, rateOf(t, r, "KES").Equal(dec("130")))
	})

	t.Run("rejects table without base", func(t *testing.T) {
		_, err := NewRates(RatesConfig{
			Base:       "KES",
			Currencies: []domain.Currency{{Code: "USD", Rate: dec("1")}},
		}, nil, nil, nil, logger.Discard())
		require.Error(t, err)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		_, err := NewRates(RatesConfig{
			Base: "KES",
			Currencies: []domain.Currency{
				{Code: "KES", Rate: dec("1")},
				{Code: "kes", Rate: dec("1")},
			},
		}, nil, nil, nil, logger.Discard())
		require.Error(t, err)
	})
}

func TestRates_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("updates known currencies and keeps the rest", func(t *testing.T) {
		p := &fakeProvider{rates: map[string]decimal.Decimal{
			"USD": dec("0.008"),
			"EUR": dec("0"),
			"XYZ": dec("5"),
			"KES": dec("2"),
		}}
		store := storage.NewMemory()
		r := newRates(t, p, store)

		require.NoError(t, r.Refresh(ctx))

		assert.True(t, rateOf(t, r, "USD").Equal(dec("0.008")))
		assert.True(t, rateOf(t, r, "EUR").Equal(dec("0.0071")), "non-positive rate must be ignored")
		assert.True(t, rateOf(t, r, "GBP").Equal(dec("0.0061")), "absent currency keeps its rate")
		assert.True(t, rateOf(t, r, "KES").Equal(decimal.NewFromInt(1)), "base rate is fixed")
		_, ok := r.Lookup("XYZ")
		assert.False(t, ok)
		assert.True(t, r.Refreshed())

		raw, err := store.Get(ctx, ratesKey)
		require.NoError(t, err)
		assert.Contains(t, raw, "USD")
	})

	t.Run("failure keeps last known rates", func(t *testing.T) {
		p := &fakeProvider{err: errors.New("provider down")}
		r := newRates(t, p, nil)

		err := r.Refresh(ctx)
		require.Error(t, err)
		assert.True(t, rateOf(t, r, "USD").Equal(dec("0.0077")))
		assert.False(t, r.Refreshed())
	})

	t.Run("notifies subscribers", func(t *testing.T) {
		var got []notify.Event
		n := notify.NotifierFunc(func(_ context.Context, ev notify.Event) { got = append(got, ev) })
		p := &fakeProvider{rates: map[string]decimal.Decimal{"USD": dec("0.0078")}}
		r, err := NewRates(RatesConfig{}, p, nil, n, logger.Discard())
		require.NoError(t, err)

		require.NoError(t, r.Refresh(ctx))
		require.Len(t, got, 1)
		assert.Equal(t, notify.KindRatesRefreshed, got[0].Kind)
	})

	t.Run("response after Close is discarded", func(t *testing.T) {
		p := &fakeProvider{
			rates: map[string]decimal.Decimal{"USD": dec("9")},
			gate:  make(chan struct{}),
		}
		r := newRates(t, p, nil)

		done := make(chan error, 1)
		go func() { done <- r.Refresh(ctx) }()
		require.Eventually(t, func() bool { return p.calls.Load() == 1 }, time.Second, time.Millisecond)

		r.Close()
		close(p.gate)
		require.NoError(t, <-done)

		assert.True(t, rateOf(t, r, "USD").Equal(dec("0.0077")))
	})
}

func TestRates_RestoreFromCache(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	store := storage.NewMemory()
	require.NoError(t, store.Set(ctx, ratesKey, `{"fetchedAt":"2026-01-02T03:04:05Z","rates":{"USD":"0.0081"}}`))

	p := &fakeProvider{err: errors.New("offline")}
	r := newRates(t, p, store)
	r.Start(ctx)
	defer r.Close()

	assert.True(t, rateOf(t, r, "USD").Equal(dec("0.0081")))
	assert.False(t, r.Refreshed(), "cached rates are not a live refresh")
	assert.Equal(t, 2026, r.LastRefresh().Year())
}

func TestRates_CorruptCacheIgnored(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	require.NoError(t, store.Set(ctx, ratesKey, "{not json"))

	r := newRates(t, &fakeProvider{err: errors.New("offline")}, store)
	r.Start(ctx)
	defer r.Close()

	assert.True(t, rateOf(t, r, "USD").Equal(dec("0.0077")))
}

func TestRates_PeriodicRefresh(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := &fakeProvider{rates: map[string]decimal.Decimal{"USD": dec("0.0079")}}
	r, err := NewRates(RatesConfig{Interval: 5 * time.Millisecond}, p, nil, nil, logger.Discard())
	require.NoError(t, err)

	r.Start(context.Background())
	require.Eventually(t, func() bool { return p.calls.Load() >= 3 }, 2*time.Second, time.Millisecond)
	r.Close()

	calls := p.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, calls, p.calls.Load(), "no refresh after Close")
}

func TestRates_StartAfterCloseIsNoop(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := &fakeProvider{rates: map[string]decimal.Decimal{"USD": dec("1")}}
	r := newRates(t, p, nil)
	r.Close()
	r.Start(context.Background())

	assert.Zero(t, p.calls.Load())
}

func TestRates_StartDoesNotWaitForProvider(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := &fakeProvider{
		rates: map[string]decimal.Decimal{"USD": dec("0.0079")},
		gate:  make(chan struct{}),
	}
	r := newRates(t, p, nil)

	started := make(chan struct{})
	go func() {
		r.Start(context.Background())
		close(started)
	}()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("Start blocked on the provider")
	}
	require.Eventually(t, func() bool { return p.calls.Load() == 1 }, time.Second, time.Millisecond)
	assert.False(t, r.Refreshed())

	close(p.gate)
	require.Eventually(t, r.Refreshed, time.Second, time.Millisecond)
	assert.True(t, rateOf(t, r, "USD").Equal(dec("0.0079")))
	r.Close()
}

func TestRates_SecondStartIsNoop(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := &fakeProvider{rates: map[string]decimal.Decimal{"USD": dec("0.0079")}}
	r := newRates(t, p, nil)

	r.Start(context.Background())
	r.Start(context.Background())
	require.Eventually(t, func() bool { return p.calls.Load() >= 1 }, time.Second, time.Millisecond)

	closed := make(chan struct{})
	go func() {
		r.Close()
		close(closed)
	}()
	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("Close hung after a repeated Start")
	}
	assert.EqualValues(t, 1, p.calls.Load(), "only one loop refreshes")
}

func TestRates_SetRate(t *testing.T) {
	r := newRates(t, nil, nil)

	require.NoError(t, r.SetRate("usd", dec("0.01")))
	assert.True(t, rateOf(t, r, "USD").Equal(dec("0.01")))

	assert.ErrorIs(t, r.SetRate("XYZ", dec("1")), domain.ErrInvalidCurrencyCode)
	assert.Error(t, r.SetRate("KES", dec("2")))
	assert.Error(t, r.SetRate("USD", dec("-1")))
}
