package app

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateProvider returns currency code → multiplier relative to base.
type RateProvider interface {
	Latest(ctx context.Context, base string) (map[string]decimal.Decimal, error)
}

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
