package app

import (
	"context"

	"github.com/Biz-Hub01/pureez/internal/catalog/domain"
)

type ProductRepo interface {
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Get(ctx context.Context, id string) (domain.Product, error)
	List(ctx context.Context, f domain.Filter) ([]domain.Product, string, error)
}
