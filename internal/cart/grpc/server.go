package grpc

import (
	"context"

	cartv1 "github.com/Biz-Hub01/pureez/api/cart/v1"
	"github.com/Biz-Hub01/pureez/internal/cart/app"
	"github.com/Biz-Hub01/pureez/internal/cart/domain"
	catalogapp "github.com/Biz-Hub01/pureez/internal/catalog/app"
	"github.com/Biz-Hub01/pureez/internal/rpc"
	"github.com/Biz-Hub01/pureez/internal/session"
	"google.golang.org/grpc/codes"
)

// Catalog resolves a product id into the snapshot a new cart line keeps.
type Catalog interface {
	CartItem(ctx context.Context, productID string) (domain.Item, error)
}

type Server struct {
	svc     *app.Service
	catalog Catalog
}

func NewServer(svc *app.Service, catalog Catalog) *Server {
	return &Server{svc: svc, catalog: catalog}
}

func (s *Server) GetCart(ctx context.Context, req *cartv1.GetCartRequest) (*cartv1.Cart, error) {
	m, err := s.svc.GetOrCreate(ctx, req.SessionId)
	if err != nil {
		return nil, mapErr(err)
	}
	return toProto(req.SessionId, m), nil
}

func (s *Server) AddItem(ctx context.Context, req *cartv1.AddItemRequest) (*cartv1.AddItemResponse, error) {
	m, err := s.svc.GetOrCreate(ctx, req.SessionId)
	if err != nil {
		return nil, mapErr(err)
	}

	item, err := s.catalog.CartItem(ctx, req.ProductId)
	if err != nil {
		return nil, mapErr(err)
	}

	line := m.AddToCart(ctx, item, int(req.Quantity))
	return &cartv1.AddItemResponse{
		Line: lineToProto(line),
		Cart: toProto(req.SessionId, m),
	}, nil
}

func (s *Server) RemoveItem(ctx context.Context, req *cartv1.RemoveItemRequest) (*cartv1.MutationResponse, error) {
	m, err := s.svc.GetOrCreate(ctx, req.SessionId)
	if err != nil {
		return nil, mapErr(err)
	}
	applied := m.RemoveFromCart(ctx, req.ProductId)
	return &cartv1.MutationResponse{Applied: applied, Cart: toProto(req.SessionId, m)}, nil
}

func (s *Server) UpdateQuantity(ctx context.Context, req *cartv1.UpdateQuantityRequest) (*cartv1.MutationResponse, error) {
	m, err := s.svc.GetOrCreate(ctx, req.SessionId)
	if err != nil {
		return nil, mapErr(err)
	}
	applied := m.UpdateQuantity(ctx, req.ProductId, int(req.Quantity))
	return &cartv1.MutationResponse{Applied: applied, Cart: toProto(req.SessionId, m)}, nil
}

func (s *Server) ClearCart(ctx context.Context, req *cartv1.ClearCartRequest) (*cartv1.MutationResponse, error) {
	m, err := s.svc.GetOrCreate(ctx, req.SessionId)
	if err != nil {
		return nil, mapErr(err)
	}
	m.ClearCart(ctx)
	return &cartv1.MutationResponse{Applied: true, Cart: toProto(req.SessionId, m)}, nil
}

func (s *Server) IsInCart(ctx context.Context, req *cartv1.IsInCartRequest) (*cartv1.IsInCartResponse, error) {
	m, err := s.svc.GetOrCreate(ctx, req.SessionId)
	if err != nil {
		return nil, mapErr(err)
	}
	line, ok := m.Line(req.ProductId)
	return &cartv1.IsInCartResponse{InCart: ok, Quantity: int32(line.Quantity)}, nil
}

func toProto(sessionID string, m *app.Manager) *cartv1.Cart {
	lines := m.Lines()
	out := make([]*cartv1.CartLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, lineToProto(l))
	}

	id, _ := session.Parse(sessionID)
	return &cartv1.Cart{
		SessionId: id,
		Lines:     out,
		ItemCount: int32(domain.ItemCount(lines)),
		Subtotal:  domain.Subtotal(lines),
	}
}

func lineToProto(l domain.CartLine) *cartv1.CartLine {
	line := &cartv1.CartLine{
		ProductId: l.ID,
		Title:     l.Title,
		Image:     l.Image,
		Seller:    l.Seller,
		Price:     l.Price,
		Quantity:  int32(l.Quantity),
		LineTotal: l.LineTotal(),
	}
	if l.Stock != nil {
		stock := int32(*l.Stock)
		line.Stock = &stock
	}
	return line
}

func mapErr(err error) error {
	return rpc.Status(err,
		rpc.Is(session.ErrInvalid, codes.InvalidArgument),
		rpc.Is(catalogapp.ErrInvalidInput, codes.InvalidArgument),
		rpc.Is(catalogapp.ErrNotFound, codes.NotFound),
	)
}
