package grpc

import (
	"context"

	wishlistv1 "github.com/Biz-Hub01/pureez/api/wishlist/v1"
	catalogapp "github.com/Biz-Hub01/pureez/internal/catalog/app"
	"github.com/Biz-Hub01/pureez/internal/rpc"
	"github.com/Biz-Hub01/pureez/internal/session"
	"github.com/Biz-Hub01/pureez/internal/wishlist/app"
	"github.com/Biz-Hub01/pureez/internal/wishlist/domain"
	"google.golang.org/grpc/codes"
)

type Catalog interface {
	WishlistItem(ctx context.Context, productID string) (domain.Entry, error)
}

type Server struct {
	svc     *app.Service
	catalog Catalog
}

func NewServer(svc *app.Service, catalog Catalog) *Server {
	return &Server{svc: svc, catalog: catalog}
}

func (s *Server) GetWishlist(ctx context.Context, req *wishlistv1.GetWishlistRequest) (*wishlistv1.Wishlist, error) {
	m, err := s.svc.GetOrCreate(ctx, req.SessionId)
	if err != nil {
		return nil, mapErr(err)
	}
	return toProto(req.SessionId, m.Entries()), nil
}

func (s *Server) AddItem(ctx context.Context, req *wishlistv1.AddItemRequest) (*wishlistv1.MutationResponse, error) {
	m, err := s.svc.GetOrCreate(ctx, req.SessionId)
	if err != nil {
		return nil, mapErr(err)
	}
	entry, err := s.catalog.WishlistItem(ctx, req.ProductId)
	if err != nil {
		return nil, mapErr(err)
	}
	applied := m.AddToWishlist(ctx, entry)
	return &wishlistv1.MutationResponse{Applied: applied, Wishlist: toProto(req.SessionId, m.Entries())}, nil
}

func (s *Server) RemoveItem(ctx context.Context, req *wishlistv1.RemoveItemRequest) (*wishlistv1.MutationResponse, error) {
	m, err := s.svc.GetOrCreate(ctx, req.SessionId)
	if err != nil {
		return nil, mapErr(err)
	}
	applied := m.RemoveFromWishlist(ctx, req.ProductId)
	return &wishlistv1.MutationResponse{Applied: applied, Wishlist: toProto(req.SessionId, m.Entries())}, nil
}

func (s *Server) IsInWishlist(ctx context.Context, req *wishlistv1.IsInWishlistRequest) (*wishlistv1.IsInWishlistResponse, error) {
	m, err := s.svc.GetOrCreate(ctx, req.SessionId)
	if err != nil {
		return nil, mapErr(err)
	}
	return &wishlistv1.IsInWishlistResponse{InWishlist: m.IsInWishlist(req.ProductId)}, nil
}

func toProto(sessionID string, entries []domain.Entry) *wishlistv1.Wishlist {
	out := make([]*wishlistv1.Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, &wishlistv1.Entry{
			ProductId: e.ID,
			Name:      e.Name,
			Price:     e.Price,
			ImageUrl:  e.ImageURL,
			Seller:    e.Seller,
			InStock:   e.InStock,
		})
	}
	id, _ := session.Parse(sessionID)
	return &wishlistv1.Wishlist{SessionId: id, Entries: out, Count: int32(len(out))}
}

func mapErr(err error) error {
	return rpc.Status(err,
		rpc.Is(session.ErrInvalid, codes.InvalidArgument),
		rpc.Is(catalogapp.ErrInvalidInput, codes.InvalidArgument),
		rpc.Is(catalogapp.ErrNotFound, codes.NotFound),
	)
}
