// Package catalogv1 declares the pureez.catalog.v1.CatalogService messages
// and service descriptor.
package catalogv1

import (
	"context"

	"github.com/Biz-Hub01/pureez/internal/rpc"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
)

type Product struct {
	Id            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Seller        string          `json:"seller"`
	Image         string          `json:"image"`
	Price         decimal.Decimal `json:"price"`
	Stock         int32           `json:"stock"`
	CreatedAtUnix int64           `json:"createdAtUnix"`
}

type CreateProductRequest struct {
	Product *Product `json:"product"`
}

type CreateProductResponse struct {
	Product *Product `json:"product"`
}

type GetProductRequest struct {
	Id string `json:"id"`
}

type GetProductResponse struct {
	Product *Product `json:"product"`
}

type ListProductsRequest struct {
	Query       string          `json:"query,omitempty"`
	Category    string          `json:"category,omitempty"`
	MinPrice    decimal.Decimal `json:"minPrice"`
	MaxPrice    decimal.Decimal `json:"maxPrice"`
	InStockOnly bool            `json:"inStockOnly,omitempty"`
	Sort        string          `json:"sort,omitempty"`
	Limit       int32           `json:"limit,omitempty"`
	Cursor      string          `json:"cursor,omitempty"`
}

type ListProductsResponse struct {
	Products   []*Product `json:"products"`
	NextCursor string     `json:"nextCursor,omitempty"`
}

const (
	CatalogService_CreateProduct_FullMethodName = "/pureez.catalog.v1.CatalogService/CreateProduct"
	CatalogService_GetProduct_FullMethodName    = "/pureez.catalog.v1.CatalogService/GetProduct"
	CatalogService_ListProducts_FullMethodName  = "/pureez.catalog.v1.CatalogService/ListProducts"
)

type CatalogServiceServer interface {
	CreateProduct(context.Context, *CreateProductRequest) (*CreateProductResponse, error)
	GetProduct(context.Context, *GetProductRequest) (*GetProductResponse, error)
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
}

var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pureez.catalog.v1.CatalogService",
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateProduct", Handler: rpc.Unary(CatalogService_CreateProduct_FullMethodName, CatalogServiceServer.CreateProduct)},
		{MethodName: "GetProduct", Handler: rpc.Unary(CatalogService_GetProduct_FullMethodName, CatalogServiceServer.GetProduct)},
		{MethodName: "ListProducts", Handler: rpc.Unary(CatalogService_ListProducts_FullMethodName, CatalogServiceServer.ListProducts)},
	},
	Metadata: "pureez/catalog/v1/catalog.proto",
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

type CatalogServiceClient interface {
	CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*CreateProductResponse, error)
	GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*GetProductResponse, error)
	ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error)
}

type catalogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogServiceClient(cc grpc.ClientConnInterface) CatalogServiceClient {
	return &catalogServiceClient{cc: cc}
}

func (c *catalogServiceClient) CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*CreateProductResponse, error) {
	return rpc.Invoke[CreateProductResponse](ctx, c.cc, CatalogService_CreateProduct_FullMethodName, in, opts...)
}

func (c *catalogServiceClient) GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*GetProductResponse, error) {
	return rpc.Invoke[GetProductResponse](ctx, c.cc, CatalogService_GetProduct_FullMethodName, in, opts...)
}

func (c *catalogServiceClient) ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error) {
	return rpc.Invoke[ListProductsResponse](ctx, c.cc, CatalogService_ListProducts_FullMethodName, in, opts...)
}
