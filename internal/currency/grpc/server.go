package grpc

import (
	"context"

	currencyv1 "github.com/Biz-Hub01/pureez/api/currency/v1"
	"github.com/Biz-Hub01/pureez/internal/currency/app"
	"github.com/Biz-Hub01/pureez/internal/currency/domain"
	"github.com/Biz-Hub01/pureez/internal/rpc"
	"github.com/Biz-Hub01/pureez/internal/session"
	"google.golang.org/grpc/codes"
)

type Server struct {
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) ListCurrencies(ctx context.Context, req *currencyv1.ListCurrenciesRequest) (*currencyv1.ListCurrenciesResponse, error) {
	rates := s.svc.Rates()
	resp := &currencyv1.ListCurrenciesResponse{
		Base:       rates.Base(),
		Currencies: listToProto(rates.Currencies()),
		Refreshed:  rates.Refreshed(),
	}
	if t := rates.LastRefresh(); !t.IsZero() {
		resp.LastRefreshUnix = t.Unix()
	}

	if req.SessionId != "" {
		m, err := s.svc.GetOrCreate(ctx, req.SessionId)
		if err != nil {
			return nil, mapErr(err)
		}
		resp.Active = toProto(m.Active())
	} else if base, ok := rates.Lookup(rates.Base()); ok {
		resp.Active = toProto(base)
	}
	return resp, nil
}

func (s *Server) SetCurrency(ctx context.Context, req *currencyv1.SetCurrencyRequest) (*currencyv1.SetCurrencyResponse, error) {
	m, err := s.svc.GetOrCreate(ctx, req.SessionId)
	if err != nil {
		return nil, mapErr(err)
	}
	if err := m.SetCurrency(ctx, req.Code); err != nil {
		return nil, mapErr(err)
	}
	return &currencyv1.SetCurrencyResponse{Active: toProto(m.Active())}, nil
}

func (s *Server) ConvertPrice(ctx context.Context, req *currencyv1.ConvertPriceRequest) (*currencyv1.ConvertPriceResponse, error) {
	m, err := s.svc.GetOrCreate(ctx, req.SessionId)
	if err != nil {
		return nil, mapErr(err)
	}

	code := m.Active().Code
	if c, ok := s.svc.Rates().Lookup(req.Target); ok {
		code = c.Code
	}
	return &currencyv1.ConvertPriceResponse{
		Amount:   m.ConvertPrice(req.Amount, req.Target),
		Currency: code,
	}, nil
}

func (s *Server) FormatPrice(ctx context.Context, req *currencyv1.FormatPriceRequest) (*currencyv1.FormatPriceResponse, error) {
	m, err := s.svc.GetOrCreate(ctx, req.SessionId)
	if err != nil {
		return nil, mapErr(err)
	}
	return &currencyv1.FormatPriceResponse{
		Formatted: m.FormatPrice(req.Amount),
		Currency:  m.Active().Code,
	}, nil
}

func (s *Server) RefreshRates(ctx context.Context, _ *currencyv1.RefreshRatesRequest) (*currencyv1.RefreshRatesResponse, error) {
	rates := s.svc.Rates()
	if err := rates.Refresh(ctx); err != nil {
		return nil, rpc.Status(err, func(error) (codes.Code, bool) { return codes.Unavailable, true })
	}
	return &currencyv1.RefreshRatesResponse{
		Currencies:      listToProto(rates.Currencies()),
		LastRefreshUnix: rates.LastRefresh().Unix(),
	}, nil
}

func toProto(c domain.Currency) *currencyv1.Currency {
	return &currencyv1.Currency{Code: c.Code, Name: c.Name, Symbol: c.Symbol, Rate: c.Rate}
}

func listToProto(cs []domain.Currency) []*currencyv1.Currency {
	out := make([]*currencyv1.Currency, 0, len(cs))
	for _, c := range cs {
		out = append(out, toProto(c))
	}
	return out
}

func mapErr(err error) error {
	return rpc.Status(err,
		rpc.Is(session.ErrInvalid, codes.InvalidArgument),
		rpc.Is(domain.ErrInvalidCurrencyCode, codes.InvalidArgument),
	)
}
