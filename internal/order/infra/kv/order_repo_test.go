package kv

import (
	"context"
	"testing"

	"github.com/Biz-Hub01/pureez/internal/order/app"
	"github.com/Biz-Hub01/pureez/internal/order/domain"
	"github.com/Biz-Hub01/pureez/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func order(session string, totals ...string) domain.Order {
	o := domain.Order{SessionID: session, Status: domain.StatusPending, Currency: "KES", SubTotal: decimal.Zero}
	for i, t := range totals {
		lt := decimal.RequireFromString(t)
		o.Items = append(o.Items, domain.OrderItem{ProductID: string(rune('a' + i)), Quantity: 1, UnitPrice: lt, LineTotal: lt})
		o.SubTotal = o.SubTotal.Add(lt)
	}
	o.Total = o.SubTotal
	return o
}

func TestOrderRepo_CreateGetList(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	repo := NewOrderRepo(store)

	first, err := repo.Create(ctx, order("s1", "1800", "950"))
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := repo.Create(ctx, order("s1", "2500"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, order("s2", "1200"))
	require.NoError(t, err)

	got, err := repo.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.True(t, got.SubTotal.Equal(decimal.NewFromInt(2750)))
	assert.Len(t, got.Items, 2)

	list, err := repo.ListBySession(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)

	none, err := repo.ListBySession(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOrderRepo_Validation(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepo(storage.NewMemory())

	bad := order("s1", "100")
	bad.SubTotal = decimal.NewFromInt(99)
	_, err := repo.Create(ctx, bad)
	assert.ErrorContains(t, err, "subtotal mismatch")

	zero := order("s1", "100")
	zero.Items[0].Quantity = 0
	_, err = repo.Create(ctx, zero)
	assert.ErrorContains(t, err, "quantity must be positive")
}

func TestOrderRepo_NotFound(t *testing.T) {
	_, err := NewOrderRepo(storage.NewMemory()).Get(context.Background(), "missing")
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestOrderRepo_CorruptIndexStartsFresh(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	require.NoError(t, store.Set(ctx, "s1:orders", "{not json"))
	repo := NewOrderRepo(store)

	list, err := repo.ListBySession(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, list)

	o, err := repo.Create(ctx, order("s1", "10"))
	require.NoError(t, err)
	list, err = repo.ListBySession(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, o.ID, list[0].ID)
}

func TestOrderRepo_ConcurrentCreateKeepsIndex(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepo(storage.NewMemory())

	const n = 20
	g, gctx := errgroup.WithContext(ctx)
	for range n {
		g.Go(func() error {
			_, err := repo.Create(gctx, order("s1", "5"))
			return err
		})
	}
	require.NoError(t, g.Wait())

	list, err := repo.ListBySession(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, list, n)
}
