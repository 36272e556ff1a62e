package app

import (
	"context"
	"errors"
	"strings"

	"github.com/Biz-Hub01/pureez/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	p.Title = strings.TrimSpace(p.Title)
	p.Category = strings.ToLower(strings.TrimSpace(p.Category))

	if p.Title == "" || !p.Price.IsPositive() || p.Stock < 0 {
		return domain.Product{}, ErrInvalidInput
	}

	return s.repo.Create(ctx, p)
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, strings.TrimSpace(id))
}

func (s *Service) ListProducts(ctx context.Context, f domain.Filter) ([]domain.Product, string, error) {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	switch f.Sort {
	case "":
		f.Sort = domain.SortNewest
	case domain.SortNewest, domain.SortPriceAsc, domain.SortPriceDesc, domain.SortTitle:
	default:
		return nil, "", ErrInvalidInput
	}

	if f.MinPrice.IsNegative() || f.MaxPrice.IsNegative() {
		return nil, "", ErrInvalidInput
	}
	if f.MaxPrice.IsPositive() && f.MinPrice.GreaterThan(f.MaxPrice) {
		return nil, "", ErrInvalidInput
	}

	f.Query = strings.TrimSpace(f.Query)
	f.Category = strings.ToLower(strings.TrimSpace(f.Category))
	f.Cursor = strings.TrimSpace(f.Cursor)

	return s.repo.List(ctx, f)
}
