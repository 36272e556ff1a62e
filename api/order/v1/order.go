// Package orderv1 declares the pureez.order.v1.OrderService messages and
// service descriptor.
package orderv1

import (
	"context"

	"github.com/Biz-Hub01/pureez/internal/rpc"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
)

type OrderItem struct {
	ProductId string          `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int32           `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type Order struct {
	OrderId       string          `json:"orderId"`
	SessionId     string          `json:"sessionId"`
	Status        string          `json:"status"`
	Currency      string          `json:"currency"`
	Items         []*OrderItem    `json:"items"`
	SubTotal      decimal.Decimal `json:"subTotal"`
	Shipping      decimal.Decimal `json:"shipping"`
	Total         decimal.Decimal `json:"total"`
	CreatedAtUnix int64           `json:"createdAtUnix"`
}

type PlaceOrderRequest struct {
	SessionId   string          `json:"sessionId"`
	ShippingFee decimal.Decimal `json:"shippingFee"`
}

type GetOrderRequest struct {
	OrderId string `json:"orderId"`
}

type ListOrdersRequest struct {
	SessionId string `json:"sessionId"`
}

type ListOrdersResponse struct {
	Orders []*Order `json:"orders"`
}

const (
	OrderService_PlaceOrder_FullMethodName = "/pureez.order.v1.OrderService/PlaceOrder"
	OrderService_GetOrder_FullMethodName   = "/pureez.order.v1.OrderService/GetOrder"
	OrderService_ListOrders_FullMethodName = "/pureez.order.v1.OrderService/ListOrders"
)

type OrderServiceServer interface {
	PlaceOrder(context.Context, *PlaceOrderRequest) (*Order, error)
	GetOrder(context.Context, *GetOrderRequest) (*Order, error)
	ListOrders(context.Context, *ListOrdersRequest) (*ListOrdersResponse, error)
}

var OrderService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pureez.order.v1.OrderService",
	HandlerType: (*OrderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "PlaceOrder", Handler: rpc.Unary(OrderService_PlaceOrder_FullMethodName, OrderServiceServer.PlaceOrder)},
		{MethodName: "GetOrder", Handler: rpc.Unary(OrderService_GetOrder_FullMethodName, OrderServiceServer.GetOrder)},
		{MethodName: "ListOrders", Handler: rpc.Unary(OrderService_ListOrders_FullMethodName, OrderServiceServer.ListOrders)},
	},
	Metadata: "pureez/order/v1/order.proto",
}

func RegisterOrderServiceServer(s grpc.ServiceRegistrar, srv OrderServiceServer) {
	s.RegisterService(&OrderService_ServiceDesc, srv)
}

type OrderServiceClient interface {
	PlaceOrder(ctx context.Context, in *PlaceOrderRequest, opts ...grpc.CallOption) (*Order, error)
	GetOrder(ctx context.Context, in *GetOrderRequest, opts ...grpc.CallOption) (*Order, error)
	ListOrders(ctx context.Context, in *ListOrdersRequest, opts ...grpc.CallOption) (*ListOrdersResponse, error)
}

type orderServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewOrderServiceClient(cc grpc.ClientConnInterface) OrderServiceClient {
	return &orderServiceClient{cc: cc}
}

func (c *orderServiceClient) PlaceOrder(ctx context.Context, in *PlaceOrderRequest, opts ...grpc.CallOption) (*Order, error) {
	return rpc.Invoke[Order](ctx, c.cc, OrderService_PlaceOrder_FullMethodName, in, opts...)
}

func (c *orderServiceClient) GetOrder(ctx context.Context, in *GetOrderRequest, opts ...grpc.CallOption) (*Order, error) {
	return rpc.Invoke[Order](ctx, c.cc, OrderService_GetOrder_FullMethodName, in, opts...)
}

func (c *orderServiceClient) ListOrders(ctx context.Context, in *ListOrdersRequest, opts ...grpc.CallOption) (*ListOrdersResponse, error) {
	return rpc.Invoke[ListOrdersResponse](ctx, c.cc, OrderService_ListOrders_FullMethodName, in, opts...)
}
