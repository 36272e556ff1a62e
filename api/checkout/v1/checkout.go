// Package checkoutv1 declares the pureez.checkout.v1.CheckoutService
// messages and service descriptor.
package checkoutv1

import (
	"context"

	"github.com/Biz-Hub01/pureez/internal/rpc"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
)

type QuoteRequest struct {
	SessionId string `json:"sessionId"`
}

type QuoteLine struct {
	ProductId  string          `json:"productId"`
	Name       string          `json:"name"`
	Quantity   int32           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	LineTotal  decimal.Decimal `json:"lineTotal"`
	Advisories []string        `json:"advisories,omitempty"`
}

type QuoteResponse struct {
	Currency  string          `json:"currency"`
	Lines     []*QuoteLine    `json:"lines"`
	ItemCount int32           `json:"itemCount"`
	BaseTotal decimal.Decimal `json:"baseTotal"`
	Total     decimal.Decimal `json:"total"`
}

const CheckoutService_Quote_FullMethodName = "/pureez.checkout.v1.CheckoutService/Quote"

type CheckoutServiceServer interface {
	Quote(context.Context, *QuoteRequest) (*QuoteResponse, error)
}

var CheckoutService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pureez.checkout.v1.CheckoutService",
	HandlerType: (*CheckoutServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Quote", Handler: rpc.Unary(CheckoutService_Quote_FullMethodName, CheckoutServiceServer.Quote)},
	},
	Metadata: "pureez/checkout/v1/checkout.proto",
}

func RegisterCheckoutServiceServer(s grpc.ServiceRegistrar, srv CheckoutServiceServer) {
	s.RegisterService(&CheckoutService_ServiceDesc, srv)
}

type CheckoutServiceClient interface {
	Quote(ctx context.Context, in *QuoteRequest, opts ...grpc.CallOption) (*QuoteResponse, error)
}

type checkoutServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCheckoutServiceClient(cc grpc.ClientConnInterface) CheckoutServiceClient {
	return &checkoutServiceClient{cc: cc}
}

func (c *checkoutServiceClient) Quote(ctx context.Context, in *QuoteRequest, opts ...grpc.CallOption) (*QuoteResponse, error) {
	return rpc.Invoke[QuoteResponse](ctx, c.cc, CheckoutService_Quote_FullMethodName, in, opts...)
}
