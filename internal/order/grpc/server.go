package grpc

import (
	"context"

	orderv1 "github.com/Biz-Hub01/pureez/api/order/v1"
	checkoutapp "github.com/Biz-Hub01/pureez/internal/checkout/app"
	"github.com/Biz-Hub01/pureez/internal/order/app"
	"github.com/Biz-Hub01/pureez/internal/order/domain"
	"github.com/Biz-Hub01/pureez/internal/rpc"
	"github.com/Biz-Hub01/pureez/internal/session"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

var orderErrors = []rpc.ErrorMapper{
	rpc.Is(app.ErrInvalidInput, codes.InvalidArgument),
	rpc.Is(session.ErrInvalid, codes.InvalidArgument),
	rpc.Is(app.ErrNotFound, codes.NotFound),
	rpc.Is(app.ErrNeedsReview, codes.FailedPrecondition),
	rpc.Is(checkoutapp.ErrEmptyCart, codes.FailedPrecondition),
}

func (s *Server) PlaceOrder(ctx context.Context, req *orderv1.PlaceOrderRequest) (*orderv1.Order, error) {
	if req.SessionId == "" {
		return nil, status.Error(codes.InvalidArgument, "session_id is required")
	}

	order, err := s.svc.PlaceOrder(ctx, domain.PlaceOrderRequest{
		SessionID: req.SessionId,
		Shipping:  req.ShippingFee,
	})
	if err != nil {
		return nil, rpc.Status(err, orderErrors...)
	}
	return toProto(order), nil
}

func (s *Server) GetOrder(ctx context.Context, req *orderv1.GetOrderRequest) (*orderv1.Order, error) {
	if req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	order, err := s.svc.GetOrder(ctx, req.OrderId)
	if err != nil {
		return nil, rpc.Status(err, orderErrors...)
	}
	return toProto(order), nil
}

func (s *Server) ListOrders(ctx context.Context, req *orderv1.ListOrdersRequest) (*orderv1.ListOrdersResponse, error) {
	orders, err := s.svc.ListOrders(ctx, req.SessionId)
	if err != nil {
		return nil, rpc.Status(err, orderErrors...)
	}

	out := make([]*orderv1.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toProto(o))
	}
	return &orderv1.ListOrdersResponse{Orders: out}, nil
}

func toProto(o domain.Order) *orderv1.Order {
	items := make([]*orderv1.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, &orderv1.OrderItem{
			ProductId: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  int32(it.Quantity),
			LineTotal: it.LineTotal,
		})
	}

	return &orderv1.Order{
		OrderId:       o.ID,
		SessionId:     o.SessionID,
		Status:        o.Status,
		Currency:      o.Currency,
		Items:         items,
		SubTotal:      o.SubTotal,
		Shipping:      o.Shipping,
		Total:         o.Total,
		CreatedAtUnix: o.CreatedAt.Unix(),
	}
}
