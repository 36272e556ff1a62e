package app

import (
	"context"

	cartdomain "github.com/Biz-Hub01/pureez/internal/cart/domain"
	"github.com/Biz-Hub01/pureez/internal/catalog/domain"
	wishlistdomain "github.com/Biz-Hub01/pureez/internal/wishlist/domain"
)

// Snapshot captures the fields a cart line keeps from the product at add time.
func Snapshot(p domain.Product) cartdomain.Item {
	stock := p.Stock
	return cartdomain.Item{
		ID:     p.ID,
		Title:  p.Title,
		Image:  p.Image,
		Seller: p.Seller,
		Price:  p.Price,
		Stock:  &stock,
	}
}

func WishlistEntry(p domain.Product) wishlistdomain.Entry {
	return wishlistdomain.Entry{
		ID:       p.ID,
		Name:     p.Title,
		Price:    p.Price,
		ImageURL: p.Image,
		Seller:   p.Seller,
		InStock:  p.InStock(),
	}
}

// CartItem looks up a product and returns its cart snapshot.
func (s *Service) CartItem(ctx context.Context, productID string) (cartdomain.Item, error) {
	p, err := s.GetProduct(ctx, productID)
	if err != nil {
		return cartdomain.Item{}, err
	}
	return Snapshot(p), nil
}

// WishlistItem looks up a product and returns its wishlist entry.
func (s *Service) WishlistItem(ctx context.Context, productID string) (wishlistdomain.Entry, error) {
	p, err := s.GetProduct(ctx, productID)
	if err != nil {
		return wishlistdomain.Entry{}, err
	}
	return WishlistEntry(p), nil
}
