package grpc

import (
	"context"

	checkoutv1 "github.com/Biz-Hub01/pureez/api/checkout/v1"
	"github.com/Biz-Hub01/pureez/internal/checkout/app"
	"github.com/Biz-Hub01/pureez/internal/checkout/domain"
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

func (s *Server) Quote(ctx context.Context, req *checkoutv1.QuoteRequest) (*checkoutv1.QuoteResponse, error) {
	if req.SessionId == "" {
		return nil, status.Error(codes.InvalidArgument, "session_id is required")
	}

	q, err := s.svc.Quote(ctx, req.SessionId)
	if err != nil {
		return nil, rpc.Status(err,
			rpc.Is(app.ErrEmptyCart, codes.FailedPrecondition),
			rpc.Is(session.ErrInvalid, codes.InvalidArgument),
		)
	}

	return toProto(q), nil
}

func toProto(q domain.Quote) *checkoutv1.QuoteResponse {
	lines := make([]*checkoutv1.QuoteLine, 0, len(q.Lines))
	for _, ln := range q.Lines {
		lines = append(lines, &checkoutv1.QuoteLine{
			ProductId:  ln.ProductID,
			Name:       ln.Name,
			Quantity:   int32(ln.Quantity),
			UnitPrice:  ln.UnitPrice,
			LineTotal:  ln.LineTotal,
			Advisories: ln.Advisories,
		})
	}

	return &checkoutv1.QuoteResponse{
		Currency:  q.Currency,
		Lines:     lines,
		ItemCount: int32(q.ItemCount),
		BaseTotal: q.BaseTotal,
		Total:     q.Total,
	}
}
