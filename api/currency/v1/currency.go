// Package currencyv1 declares the pureez.currency.v1.CurrencyService
// messages and service descriptor.
package currencyv1

import (
	"context"

	"github.com/Biz-Hub01/pureez/internal/rpc"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
)

type Currency struct {
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	Symbol string          `json:"symbol"`
	Rate   decimal.Decimal `json:"rate"`
}

type ListCurrenciesRequest struct {
	SessionId string `json:"sessionId"`
}

type ListCurrenciesResponse struct {
	Base            string      `json:"base"`
	Active          *Currency   `json:"active"`
	Currencies      []*Currency `json:"currencies"`
	Refreshed       bool        `json:"refreshed"`
	LastRefreshUnix int64       `json:"lastRefreshUnix"`
}

type SetCurrencyRequest struct {
	SessionId string `json:"sessionId"`
	Code      string `json:"code"`
}

type SetCurrencyResponse struct {
	Active *Currency `json:"active"`
}

// ConvertPriceRequest converts a base-currency amount. An empty or unknown
// Target uses the session's active currency.
type ConvertPriceRequest struct {
	SessionId string          `json:"sessionId"`
	Amount    decimal.Decimal `json:"amount"`
	Target    string          `json:"target,omitempty"`
}

type ConvertPriceResponse struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type FormatPriceRequest struct {
	SessionId string          `json:"sessionId"`
	Amount    decimal.Decimal `json:"amount"`
}

type FormatPriceResponse struct {
	Formatted string `json:"formatted"`
	Currency  string `json:"currency"`
}

type RefreshRatesRequest struct{}

type RefreshRatesResponse struct {
	Currencies      []*Currency `json:"currencies"`
	LastRefreshUnix int64       `json:"lastRefreshUnix"`
}

const (
	CurrencyService_ListCurrencies_FullMethodName = "/pureez.currency.v1.CurrencyService/ListCurrencies"
	CurrencyService_SetCurrency_FullMethodName    = "/pureez.currency.v1.CurrencyService/SetCurrency"
	CurrencyService_ConvertPrice_FullMethodName   = "/pureez.currency.v1.CurrencyService/ConvertPrice"
	CurrencyService_FormatPrice_FullMethodName    = "/pureez.currency.v1.CurrencyService/FormatPrice"
	CurrencyService_RefreshRates_FullMethodName   = "/pureez.currency.v1.CurrencyService/RefreshRates"
)

type CurrencyServiceServer interface {
	ListCurrencies(context.Context, *ListCurrenciesRequest) (*ListCurrenciesResponse, error)
	SetCurrency(context.Context, *SetCurrencyRequest) (*SetCurrencyResponse, error)
	ConvertPrice(context.Context, *ConvertPriceRequest) (*ConvertPriceResponse, error)
	FormatPrice(context.Context, *FormatPriceRequest) (*FormatPriceResponse, error)
	RefreshRates(context.Context, *RefreshRatesRequest) (*RefreshRatesResponse, error)
}

var CurrencyService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pureez.currency.v1.CurrencyService",
	HandlerType: (*CurrencyServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListCurrencies", Handler: rpc.Unary(CurrencyService_ListCurrencies_FullMethodName, CurrencyServiceServer.ListCurrencies)},
		{MethodName: "SetCurrency", Handler: rpc.Unary(CurrencyService_SetCurrency_FullMethodName, CurrencyServiceServer.SetCurrency)},
		{MethodName: "ConvertPrice", Handler: rpc.Unary(CurrencyService_ConvertPrice_FullMethodName, CurrencyServiceServer.ConvertPrice)},
		{MethodName: "FormatPrice", Handler: rpc.Unary(CurrencyService_FormatPrice_FullMethodName, CurrencyServiceServer.FormatPrice)},
		{MethodName: "RefreshRates", Handler: rpc.Unary(CurrencyService_RefreshRates_FullMethodName, CurrencyServiceServer.RefreshRates)},
	},
	Metadata: "pureez/currency/v1/currency.proto",
}

func RegisterCurrencyServiceServer(s grpc.ServiceRegistrar, srv CurrencyServiceServer) {
	s.RegisterService(&CurrencyService_ServiceDesc, srv)
}

type CurrencyServiceClient interface {
	ListCurrencies(ctx context.Context, in *ListCurrenciesRequest, opts ...grpc.CallOption) (*ListCurrenciesResponse, error)
	SetCurrency(ctx context.Context, in *SetCurrencyRequest, opts ...grpc.CallOption) (*SetCurrencyResponse, error)
	ConvertPrice(ctx context.Context, in *ConvertPriceRequest, opts ...grpc.CallOption) (*ConvertPriceResponse, error)
	FormatPrice(ctx context.Context, in *FormatPriceRequest, opts ...grpc.CallOption) (*FormatPriceResponse, error)
	RefreshRates(ctx context.Context, in *RefreshRatesRequest, opts ...grpc.CallOption) (*RefreshRatesResponse, error)
}

type currencyServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCurrencyServiceClient(cc grpc.ClientConnInterface) CurrencyServiceClient {
	return &currencyServiceClient{cc: cc}
}

func (c *currencyServiceClient) ListCurrencies(ctx context.Context, in *ListCurrenciesRequest, opts ...grpc.CallOption) (*ListCurrenciesResponse, error) {
	return rpc.Invoke[ListCurrenciesResponse](ctx, c.cc, CurrencyService_ListCurrencies_FullMethodName, in, opts...)
}

func (c *currencyServiceClient) SetCurrency(ctx context.Context, in *SetCurrencyRequest, opts ...grpc.CallOption) (*SetCurrencyResponse, error) {
	return rpc.Invoke[SetCurrencyResponse](ctx, c.cc, CurrencyService_SetCurrency_FullMethodName, in, opts...)
}

func (c *currencyServiceClient) ConvertPrice(ctx context.Context, in *ConvertPriceRequest, opts ...grpc.CallOption) (*ConvertPriceResponse, error) {
	return rpc.Invoke[ConvertPriceResponse](ctx, c.cc, CurrencyService_ConvertPrice_FullMethodName, in, opts...)
}

func (c *currencyServiceClient) FormatPrice(ctx context.Context, in *FormatPriceRequest, opts ...grpc.CallOption) (*FormatPriceResponse, error) {
	return rpc.Invoke[FormatPriceResponse](ctx, c.cc, CurrencyService_FormatPrice_FullMethodName, in, opts...)
}

func (c *currencyServiceClient) RefreshRates(ctx context.Context, in *RefreshRatesRequest, opts ...grpc.CallOption) (*RefreshRatesResponse, error) {
	return rpc.Invoke[RefreshRatesResponse](ctx, c.cc, CurrencyService_RefreshRates_FullMethodName, in, opts...)
}
