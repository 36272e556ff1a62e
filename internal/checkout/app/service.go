package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Biz-Hub01/pureez/internal/checkout/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type CartReader interface {
	GetCart(ctx context.Context, sessionID string) ([]CartItem, error)
}

// CartItem is a cart line as captured at add time. Price is in base currency.
type CartItem struct {
	ProductID string
	Title     string
	Quantity  int
	Price     decimal.Decimal
}

type CatalogReader interface {
	GetProduct(ctx context.Context, productID string) (Product, error)
}

type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
	Stock int
}

type CurrencyReader interface {
	Active(ctx context.Context, sessionID string) (Currency, error)
}

type Currency struct {
	Code string
	Rate decimal.Decimal
}

var (
	ErrEmptyCart = errors.New("cart is empty")
	// ErrUnavailable is returned by a CatalogReader for products that no
	// longer exist.
	ErrUnavailable = errors.New("product unavailable")
)

type Service struct {
	Cart     CartReader
	Catalog  CatalogReader
	Currency CurrencyReader

	maxConcurrent int
	log           *slog.Logger
}

func NewService(cart CartReader, catalog CatalogReader, currency CurrencyReader, maxConcurrent int, log *slog.Logger) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}
	if log == nil {
		log = slog.Default()
	}

	return &Service{
		Cart:          cart,
		Catalog:       catalog,
		Currency:      currency,
		maxConcurrent: maxConcurrent,
		log:           log,
	}
}

func (s *Service) Quote(ctx context.Context, sessionID string) (domain.Quote, error) {
	items, err := s.Cart.GetCart(ctx, sessionID)
	if err != nil {
		return domain.Quote{}, err
	}

	if len(items) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	cur, err := s.Currency.Active(ctx, sessionID)
	if err != nil {
		return domain.Quote{}, err
	}

	lines := make([]domain.QuoteLine, len(items))
	baseTotals := make([]decimal.Decimal, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range items {
		g.Go(func() error {
			it := items[idx]
			if it.Quantity <= 0 {
				return fmt.Errorf("quantity must be greater than zero: %d", it.Quantity)
			}

			line := domain.QuoteLine{
				ProductID: it.ProductID,
				Name:      it.Title,
				Quantity:  it.Quantity,
			}

			product, err := s.Catalog.GetProduct(gctx, it.ProductID)
			if errors.Is(err, ErrUnavailable) {
				line.UnitPrice = convert(it.Price, cur.Rate)
				line.LineTotal = decimal.Zero
				line.Advisories = []string{domain.AdvisoryUnavailable}
				lines[idx] = line
				baseTotals[idx] = decimal.Zero
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to get product %s: %w", it.ProductID, err)
			}

			if product.Name != "" {
				line.Name = product.Name
			}
			if !product.Price.Equal(it.Price) {
				line.Advisories = append(line.Advisories, domain.AdvisoryPriceChanged)
			}
			if product.Stock < it.Quantity {
				line.Advisories = append(line.Advisories, domain.AdvisoryInsufficientStock)
			}

			base := product.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
			line.UnitPrice = convert(product.Price, cur.Rate)
			line.LineTotal = convert(base, cur.Rate)
			lines[idx] = line
			baseTotals[idx] = base
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	// Total is the sum of the rounded line totals, so it matches what an
	// order built from these lines bills.
	quote := domain.Quote{Currency: cur.Code, Lines: lines, BaseTotal: decimal.Zero, Total: decimal.Zero}
	for i, line := range lines {
		quote.BaseTotal = quote.BaseTotal.Add(baseTotals[i])
		quote.Total = quote.Total.Add(line.LineTotal)
		if !hasAdvisory(line, domain.AdvisoryUnavailable) {
			quote.ItemCount += line.Quantity
		}
	}

	s.log.DebugContext(ctx, "quote computed",
		slog.String("session", sessionID),
		slog.String("currency", cur.Code),
		slog.Int("lines", len(lines)),
	)
	return quote, nil
}

func convert(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Round(2)
}

func hasAdvisory(line domain.QuoteLine, kind string) bool {
	for _, a := range line.Advisories {
		if a == kind {
			return true
		}
	}
	return false
}
