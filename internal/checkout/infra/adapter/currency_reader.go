package adapter

import (
	"context"

	checkoutapp "github.com/Biz-Hub01/pureez/internal/checkout/app"
	currencyapp "github.com/Biz-Hub01/pureez/internal/currency/app"
)

type CurrencyServiceReader struct {
	svc *currencyapp.Service
}

func NewCurrencyServiceReader(svc *currencyapp.Service) *CurrencyServiceReader {
	return &CurrencyServiceReader{svc: svc}
}

func (r *CurrencyServiceReader) Active(ctx context.Context, sessionID string) (checkoutapp.Currency, error) {
	m, err := r.svc.GetOrCreate(ctx, sessionID)
	if err != nil {
		return checkoutapp.Currency{}, err
	}
	c := m.Active()
	return checkoutapp.Currency{Code: c.Code, Rate: c.Rate}, nil
}
