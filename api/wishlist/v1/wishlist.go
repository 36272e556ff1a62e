// Package wishlistv1 declares the pureez.wishlist.v1.WishlistService
// messages and service descriptor.
package wishlistv1

import (
	"context"

	"github.com/Biz-Hub01/pureez/internal/rpc"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
)

type Entry struct {
	ProductId string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageUrl  string          `json:"imageUrl"`
	Seller    string          `json:"seller"`
	InStock   bool            `json:"inStock"`
}

type Wishlist struct {
	SessionId string   `json:"sessionId"`
	Entries   []*Entry `json:"entries"`
	Count     int32    `json:"count"`
}

type GetWishlistRequest struct {
	SessionId string `json:"sessionId"`
}

type AddItemRequest struct {
	SessionId string `json:"sessionId"`
	ProductId string `json:"productId"`
}

type RemoveItemRequest struct {
	SessionId string `json:"sessionId"`
	ProductId string `json:"productId"`
}

type MutationResponse struct {
	Applied  bool      `json:"applied"`
	Wishlist *Wishlist `json:"wishlist"`
}

type IsInWishlistRequest struct {
	SessionId string `json:"sessionId"`
	ProductId string `json:"productId"`
}

type IsInWishlistResponse struct {
	InWishlist bool `json:"inWishlist"`
}

const (
	WishlistService_GetWishlist_FullMethodName  = "/pureez.wishlist.v1.WishlistService/GetWishlist"
	WishlistService_AddItem_FullMethodName      = "/pureez.wishlist.v1.WishlistService/AddItem"
	WishlistService_RemoveItem_FullMethodName   = "/pureez.wishlist.v1.WishlistService/RemoveItem"
	WishlistService_IsInWishlist_FullMethodName = "/pureez.wishlist.v1.WishlistService/IsInWishlist"
)

type WishlistServiceServer interface {
	GetWishlist(context.Context, *GetWishlistRequest) (*Wishlist, error)
	AddItem(context.Context, *AddItemRequest) (*MutationResponse, error)
	RemoveItem(context.Context, *RemoveItemRequest) (*MutationResponse, error)
	IsInWishlist(context.Context, *IsInWishlistRequest) (*IsInWishlistResponse, error)
}

var WishlistService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pureez.wishlist.v1.WishlistService",
	HandlerType: (*WishlistServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetWishlist", Handler: rpc.Unary(WishlistService_GetWishlist_FullMethodName, WishlistServiceServer.GetWishlist)},
		{MethodName: "AddItem", Handler: rpc.Unary(WishlistService_AddItem_FullMethodName, WishlistServiceServer.AddItem)},
		{MethodName: "RemoveItem", Handler: rpc.Unary(WishlistService_RemoveItem_FullMethodName, WishlistServiceServer.RemoveItem)},
		{MethodName: "IsInWishlist", Handler: rpc.Unary(WishlistService_IsInWishlist_FullMethodName, WishlistServiceServer.IsInWishlist)},
	},
	Metadata: "pureez/wishlist/v1/wishlist.proto",
}

func RegisterWishlistServiceServer(s grpc.ServiceRegistrar, srv WishlistServiceServer) {
	s.RegisterService(&WishlistService_ServiceDesc, srv)
}

type WishlistServiceClient interface {
	GetWishlist(ctx context.Context, in *GetWishlistRequest, opts ...grpc.CallOption) (*Wishlist, error)
	AddItem(ctx context.Context, in *AddItemRequest, opts ...grpc.CallOption) (*MutationResponse, error)
	RemoveItem(ctx context.Context, in *RemoveItemRequest, opts ...grpc.CallOption) (*MutationResponse, error)
	IsInWishlist(ctx context.Context, in *IsInWishlistRequest, opts ...grpc.CallOption) (*IsInWishlistResponse, error)
}

type wishlistServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewWishlistServiceClient(cc grpc.ClientConnInterface) WishlistServiceClient {
	return &wishlistServiceClient{cc: cc}
}

func (c *wishlistServiceClient) GetWishlist(ctx context.Context, in *GetWishlistRequest, opts ...grpc.CallOption) (*Wishlist, error) {
	return rpc.Invoke[Wishlist](ctx, c.cc, WishlistService_GetWishlist_FullMethodName, in, opts...)
}

func (c *wishlistServiceClient) AddItem(ctx context.Context, in *AddItemRequest, opts ...grpc.CallOption) (*MutationResponse, error) {
	return rpc.Invoke[MutationResponse](ctx, c.cc, WishlistService_AddItem_FullMethodName, in, opts...)
}

func (c *wishlistServiceClient) RemoveItem(ctx context.Context, in *RemoveItemRequest, opts ...grpc.CallOption) (*MutationResponse, error) {
	return rpc.Invoke[MutationResponse](ctx, c.cc, WishlistService_RemoveItem_FullMethodName, in, opts...)
}

func (c *wishlistServiceClient) IsInWishlist(ctx context.Context, in *IsInWishlistRequest, opts ...grpc.CallOption) (*IsInWishlistResponse, error) {
	return rpc.Invoke[IsInWishlistResponse](ctx, c.cc, WishlistService_IsInWishlist_FullMethodName, in, opts...)
}
