// Package cartv1 declares the pureez.cart.v1.CartService messages and
// service descriptor.
package cartv1

import (
	"context"

	"github.com/Biz-Hub01/pureez/internal/rpc"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
)

type CartLine struct {
	ProductId string          `json:"productId"`
	Title     string          `json:"title"`
	Image     string          `json:"image"`
	Seller    string          `json:"seller"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int32           `json:"quantity"`
	Stock     *int32          `json:"stock,omitempty"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type Cart struct {
	SessionId string          `json:"sessionId"`
	Lines     []*CartLine     `json:"lines"`
	ItemCount int32           `json:"itemCount"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type GetCartRequest struct {
	SessionId string `json:"sessionId"`
}

type AddItemRequest struct {
	SessionId string `json:"sessionId"`
	ProductId string `json:"productId"`
	Quantity  int32  `json:"quantity"`
}

type AddItemResponse struct {
	Line *CartLine `json:"line"`
	Cart *Cart     `json:"cart"`
}

type RemoveItemRequest struct {
	SessionId string `json:"sessionId"`
	ProductId string `json:"productId"`
}

type UpdateQuantityRequest struct {
	SessionId string `json:"sessionId"`
	ProductId string `json:"productId"`
	Quantity  int32  `json:"quantity"`
}

type ClearCartRequest struct {
	SessionId string `json:"sessionId"`
}

// MutationResponse reports whether the change was applied and the cart
// after it.
type MutationResponse struct {
	Applied bool  `json:"applied"`
	Cart    *Cart `json:"cart"`
}

type IsInCartRequest struct {
	SessionId string `json:"sessionId"`
	ProductId string `json:"productId"`
}

type IsInCartResponse struct {
	InCart   bool  `json:"inCart"`
	Quantity int32 `json:"quantity"`
}

const (
	CartService_GetCart_FullMethodName        = "/pureez.cart.v1.CartService/GetCart"
	CartService_AddItem_FullMethodName        = "/pureez.cart.v1.CartService/AddItem"
	CartService_RemoveItem_FullMethodName     = "/pureez.cart.v1.CartService/RemoveItem"
	CartService_UpdateQuantity_FullMethodName = "/pureez.cart.v1.CartService/UpdateQuantity"
	CartService_ClearCart_FullMethodName      = "/pureez.cart.v1.CartService/ClearCart"
	CartService_IsInCart_FullMethodName       = "/pureez.cart.v1.CartService/IsInCart"
)

type CartServiceServer interface {
	GetCart(context.Context, *GetCartRequest) (*Cart, error)
	AddItem(context.Context, *AddItemRequest) (*AddItemResponse, error)
	RemoveItem(context.Context, *RemoveItemRequest) (*MutationResponse, error)
	UpdateQuantity(context.Context, *UpdateQuantityRequest) (*MutationResponse, error)
	ClearCart(context.Context, *ClearCartRequest) (*MutationResponse, error)
	IsInCart(context.Context, *IsInCartRequest) (*IsInCartResponse, error)
}

var CartService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pureez.cart.v1.CartService",
	HandlerType: (*CartServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetCart", Handler: rpc.Unary(CartService_GetCart_FullMethodName, CartServiceServer.GetCart)},
		{MethodName: "AddItem", Handler: rpc.Unary(CartService_AddItem_FullMethodName, CartServiceServer.AddItem)},
		{MethodName: "RemoveItem", Handler: rpc.Unary(CartService_RemoveItem_FullMethodName, CartServiceServer.RemoveItem)},
		{MethodName: "UpdateQuantity", Handler: rpc.Unary(CartService_UpdateQuantity_FullMethodName, CartServiceServer.UpdateQuantity)},
		{MethodName: "ClearCart", Handler: rpc.Unary(CartService_ClearCart_FullMethodName, CartServiceServer.ClearCart)},
		{MethodName: "IsInCart", Handler: rpc.Unary(CartService_IsInCart_FullMethodName, CartServiceServer.IsInCart)},
	},
	Metadata: "pureez/cart/v1/cart.proto",
}

func RegisterCartServiceServer(s grpc.ServiceRegistrar, srv CartServiceServer) {
	s.RegisterService(&CartService_ServiceDesc, srv)
}

type CartServiceClient interface {
	GetCart(ctx context.Context, in *GetCartRequest, opts ...grpc.CallOption) (*Cart, error)
	AddItem(ctx context.Context, in *AddItemRequest, opts ...grpc.CallOption) (*AddItemResponse, error)
	RemoveItem(ctx context.Context, in *RemoveItemRequest, opts ...grpc.CallOption) (*MutationResponse, error)
	UpdateQuantity(ctx context.Context, in *UpdateQuantityRequest, opts ...grpc.CallOption) (*MutationResponse, error)
	ClearCart(ctx context.Context, in *ClearCartRequest, opts ...grpc.CallOption) (*MutationResponse, error)
	IsInCart(ctx context.Context, in *IsInCartRequest, opts ...grpc.CallOption) (*IsInCartResponse, error)
}

type cartServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCartServiceClient(cc grpc.ClientConnInterface) CartServiceClient {
	return &cartServiceClient{cc: cc}
}

func (c *cartServiceClient) GetCart(ctx context.Context, in *GetCartRequest, opts ...grpc.CallOption) (*Cart, error) {
	return rpc.Invoke[Cart](ctx, c.cc, CartService_GetCart_FullMethodName, in, opts...)
}

func (c *cartServiceClient) AddItem(ctx context.Context, in *AddItemRequest, opts ...grpc.CallOption) (*AddItemResponse, error) {
	return rpc.Invoke[AddItemResponse](ctx, c.cc, CartService_AddItem_FullMethodName, in, opts...)
}

func (c *cartServiceClient) RemoveItem(ctx context.Context, in *RemoveItemRequest, opts ...grpc.CallOption) (*MutationResponse, error) {
	return rpc.Invoke[MutationResponse](ctx, c.cc, CartService_RemoveItem_FullMethodName, in, opts...)
}

func (c *cartServiceClient) UpdateQuantity(ctx context.Context, in *UpdateQuantityRequest, opts ...grpc.CallOption) (*MutationResponse, error) {
	return rpc.Invoke[MutationResponse](ctx, c.cc, CartService_UpdateQuantity_FullMethodName, in, opts...)
}

func (c *cartServiceClient) ClearCart(ctx context.Context, in *ClearCartRequest, opts ...grpc.CallOption) (*MutationResponse, error) {
	return rpc.Invoke[MutationResponse](ctx, c.cc, CartService_ClearCart_FullMethodName, in, opts...)
}

func (c *cartServiceClient) IsInCart(ctx context.Context, in *IsInCartRequest, opts ...grpc.CallOption) (*IsInCartResponse, error) {
	return rpc.Invoke[IsInCartResponse](ctx, c.cc, CartService_IsInCart_FullMethodName, in, opts...)
}
