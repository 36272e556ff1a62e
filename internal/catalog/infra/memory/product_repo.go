package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Biz-Hub01/pureez/internal/catalog/app"
	"github.com/Biz-Hub01/pureez/internal/catalog/domain"
	"github.com/google/uuid"
)

// ProductRepo keeps the catalog in memory. Listing applies the filter,
// orders the result and pages after the cursor id.
type ProductRepo struct {
	mu       sync.RWMutex
	products map[string]domain.Product
	now      func() time.Time
}

func NewProductRepo(seed ...domain.Product) *ProductRepo {
	r := &ProductRepo{products: make(map[string]domain.Product, len(seed)), now: time.Now}
	for _, p := range seed {
		r.products[p.ID] = p
	}
	return r
}

// Create stores p, assigning an id when it has none. An existing product
// with the same id is replaced.
func (r *ProductRepo) Create(_ context.Context, p domain.Product) (domain.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = r.now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
	return p, nil
}

func (r *ProductRepo) Get(_ context.Context, id string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, app.ErrNotFound
	}
	return p, nil
}

func (r *ProductRepo) List(_ context.Context, f domain.Filter) ([]domain.Product, string, error) {
	r.mu.RLock()
	matched := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if matches(p, f) {
			matched = append(matched, p)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(matched, ordering(f.Sort))

	start := 0
	if f.Cursor != "" {
		idx := slices.IndexFunc(matched, func(p domain.Product) bool { return p.ID == f.Cursor })
		if idx < 0 {
			return nil, "", app.ErrInvalidInput
		}
		start = idx + 1
	}

	end := min(start+f.Limit, len(matched))
	page := matched[start:end]

	var next string
	if end < len(matched) && len(page) > 0 {
		next = page[len(page)-1].ID
	}
	return page, next, nil
}

func matches(p domain.Product, f domain.Filter) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.InStockOnly && !p.InStock() {
		return false
	}
	if f.MinPrice.IsPositive() && p.Price.LessThan(f.MinPrice) {
		return false
	}
	if f.MaxPrice.IsPositive() && p.Price.GreaterThan(f.MaxPrice) {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) &&
			!strings.Contains(strings.ToLower(p.Seller), q) {
			return false
		}
	}
	return true
}

func ordering(sort string) func(a, b domain.Product) int {
	byID := func(a, b domain.Product) int { return cmp.Compare(a.ID, b.ID) }
	switch sort {
	case domain.SortPriceAsc:
		return func(a, b domain.Product) int {
			return cmp.Or(a.Price.Cmp(b.Price), byID(a, b))
		}
	case domain.SortPriceDesc:
		return func(a, b domain.Product) int {
			return cmp.Or(b.Price.Cmp(a.Price), byID(a, b))
		}
	case domain.SortTitle:
		return func(a, b domain.Product) int {
			return cmp.Or(cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)), byID(a, b))
		}
	default:
		return func(a, b domain.Product) int {
			return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), byID(a, b))
		}
	}
}
