package grpc

import (
	"context"

	catalogv1 "github.com/Biz-Hub01/pureez/api/catalog/v1"
	"github.com/Biz-Hub01/pureez/internal/catalog/app"
	"github.com/Biz-Hub01/pureez/internal/catalog/domain"
	"github.com/Biz-Hub01/pureez/internal/rpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) CreateProduct(ctx context.Context, req *catalogv1.CreateProductRequest) (*catalogv1.CreateProductResponse, error) {
	if req == nil || req.Product == nil {
		return nil, status.Error(codes.InvalidArgument, "missing product")
	}
	product, err := s.svc.CreateProduct(ctx, fromProto(req.Product))
	if err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.CreateProductResponse{
		Product: toProto(product),
	}, nil
}

func (s *Server) GetProduct(ctx context.Context, req *catalogv1.GetProductRequest) (*catalogv1.GetProductResponse, error) {
	p, err := s.svc.GetProduct(ctx, req.Id)
	if err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.GetProductResponse{Product: toProto(p)}, nil
}

func (s *Server) ListProducts(ctx context.Context, req *catalogv1.ListProductsRequest) (*catalogv1.ListProductsResponse, error) {
	products, next, err := s.svc.ListProducts(ctx, domain.Filter{
		Query:       req.Query,
		Category:    req.Category,
		MinPrice:    req.MinPrice,
		MaxPrice:    req.MaxPrice,
		InStockOnly: req.InStockOnly,
		Sort:        req.Sort,
		Limit:       int(req.Limit),
		Cursor:      req.Cursor,
	})
	if err != nil {
		return nil, mapErr(err)
	}

	out := make([]*catalogv1.Product, 0, len(products))
	for _, p := range products {
		out = append(out, toProto(p))
	}

	return &catalogv1.ListProductsResponse{Products: out, NextCursor: next}, nil
}

func toProto(p domain.Product) *catalogv1.Product {
	out := &catalogv1.Product{
		Id:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Seller:      p.Seller,
		Image:       p.Image,
		Price:       p.Price,
		Stock:       int32(p.Stock),
	}
	if !p.CreatedAt.IsZero() {
		out.CreatedAtUnix = p.CreatedAt.Unix()
	}
	return out
}

func fromProto(p *catalogv1.Product) domain.Product {
	return domain.Product{
		ID:          p.Id,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Seller:      p.Seller,
		Image:       p.Image,
		Price:       p.Price,
		Stock:       int(p.Stock),
	}
}

func mapErr(err error) error {
	return rpc.Status(err,
		rpc.Is(app.ErrInvalidInput, codes.InvalidArgument),
		rpc.Is(app.ErrNotFound, codes.NotFound),
	)
}
