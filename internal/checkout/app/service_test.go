package app

import (
	"context"
	"errors"
	"testing"

	"github.com/Biz-Hub01/pureez/internal/checkout/domain"
	"github.com/Biz-Hub01/pureez/pkg/logger"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

type fakeCart []CartItem

func (f fakeCart) GetCart(context.Context, string) ([]CartItem, error) { return f, nil }

type fakeCatalog struct {
	products map[string]Product
	err      error
}

func (f fakeCatalog) GetProduct(_ context.Context, id string) (Product, error) {
	if f.err != nil {
		return Product{}, f.err
	}
	p, ok := f.products[id]
	if !ok {
		return Product{}, ErrUnavailable
	}
	return p, nil
}

type fixedCurrency Currency

func (c fixedCurrency) Active(context.Context, string) (Currency, error) { return Currency(c), nil }

var kes = fixedCurrency{Code: "KES", Rate: decimal.NewFromInt(1)}

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func TestQuote(t *testing.T) {
	ctx := context.Background()
	catalog := fakeCatalog{products: map[string]Product{
		"p1": {ID: "p1", Name: "Kikoy", Price: d("1800"), Stock: 10},
		"p2": {ID: "p2", Name: "Shuka", Price: d("2600"), Stock: 1},
	}}

	t.Run("empty cart", func(t *testing.T) {
		svc := NewService(fakeCart{}, catalog, kes, 2, logger.Discard())
		if _, err := svc.Quote(ctx, "s"); !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
	})

	t.Run("advisories and totals", func(t *testing.T) {
		cart := fakeCart{
			{ProductID: "p1", Title: "Kikoy", Quantity: 2, Price: d("1800")},
			{ProductID: "p2", Title: "Shuka", Quantity: 3, Price: d("2500")},
			{ProductID: "gone", Title: "Old bowl", Quantity: 1, Price: d("950")},
		}
		svc := NewService(cart, catalog, kes, 2, logger.Discard())

		q, err := svc.Quote(ctx, "s")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := domain.Quote{
			Currency: "KES",
			Lines: []domain.QuoteLine{
				{ProductID: "p1", Name: "Kikoy", Quantity: 2, UnitPrice: d("1800"), LineTotal: d("3600")},
				{ProductID: "p2", Name: "Shuka", Quantity: 3, UnitPrice: d("2600"), LineTotal: d("7800"),
					Advisories: []string{domain.AdvisoryPriceChanged, domain.AdvisoryInsufficientStock}},
				{ProductID: "gone", Name: "Old bowl", Quantity: 1, UnitPrice: d("950"), LineTotal: d("0"),
					Advisories: []string{domain.AdvisoryUnavailable}},
			},
			ItemCount: 5,
			BaseTotal: d("11400"),
			Total:     d("11400"),
		}
		if diff := cmp.Diff(want, q, decimalEqual); diff != "" {
			t.Fatalf("quote mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("converted once and rounded", func(t *testing.T) {
		cart := fakeCart{
			{ProductID: "p1", Quantity: 3, Price: d("1800")},
		}
		usd := fixedCurrency{Code: "USD", Rate: d("0.0077")}
		q, err := NewService(cart, catalog, usd, 0, logger.Discard()).Quote(ctx, "s")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !q.Total.Equal(d("41.58")) || !q.Lines[0].UnitPrice.Equal(d("13.86")) {
			t.Fatalf("unexpected conversion: total %s unit %s", q.Total, q.Lines[0].UnitPrice)
		}
		if q.Currency != "USD" {
			t.Fatalf("expected USD quote, got %s", q.Currency)
		}
	})

	t.Run("total is the sum of rounded lines", func(t *testing.T) {
		pennies := fakeCatalog{products: map[string]Product{
			"a": {ID: "a", Name: "A", Price: d("1"), Stock: 5},
			"b": {ID: "b", Name: "B", Price: d("1"), Stock: 5},
			"c": {ID: "c", Name: "C", Price: d("1"), Stock: 5},
		}}
		cart := fakeCart{
			{ProductID: "a", Quantity: 1, Price: d("1")},
			{ProductID: "b", Quantity: 1, Price: d("1")},
			{ProductID: "c", Quantity: 1, Price: d("1")},
		}
		usd := fixedCurrency{Code: "USD", Rate: d("0.0077")}
		q, err := NewService(cart, pennies, usd, 2, logger.Discard()).Quote(ctx, "s")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sum := decimal.Zero
		for _, l := range q.Lines {
			sum = sum.Add(l.LineTotal)
		}
		if !q.Total.Equal(d("0.03")) || !q.Total.Equal(sum) {
			t.Fatalf("total %s, line sum %s", q.Total, sum)
		}
	})

	t.Run("catalog failure aborts", func(t *testing.T) {
		cart := fakeCart{{ProductID: "p1", Quantity: 1, Price: d("1800")}}
		broken := fakeCatalog{err: errors.New("catalog down")}
		if _, err := NewService(cart, broken, kes, 1, logger.Discard()).Quote(ctx, "s"); err == nil {
			t.Fatal("expected error")
		}
	})
}
