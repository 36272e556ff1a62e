package grpc

import (
	"context"
	"testing"

	cartv1 "github.com/Biz-Hub01/pureez/api/cart/v1"
	"github.com/Biz-Hub01/pureez/internal/cart/app"
	catalogapp "github.com/Biz-Hub01/pureez/internal/catalog/app"
	"github.com/Biz-Hub01/pureez/internal/catalog/infra/memory"
	"github.com/Biz-Hub01/pureez/internal/rpc/rpctest"
	"github.com/Biz-Hub01/pureez/internal/session"
	"github.com/Biz-Hub01/pureez/internal/storage"
	"github.com/Biz-Hub01/pureez/pkg/logger"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newClient(t *testing.T) cartv1.CartServiceClient {
	t.Helper()
	catalog := catalogapp.NewService(memory.NewProductRepo(memory.DefaultSeed()...))
	svc := app.NewService(storage.NewMemory(), nil, logger.Discard())
	conn := rpctest.Dial(t, func(s *grpc.Server) {
		cartv1.RegisterCartServiceServer(s, NewServer(svc, catalog))
	})
	return cartv1.NewCartServiceClient(conn)
}

func TestCartServer(t *testing.T) {
	ctx := context.Background()
	client := newClient(t)
	sid := session.New()

	t.Run("add twice increments", func(t *testing.T) {
		if _, err := client.AddItem(ctx, &cartv1.AddItemRequest{SessionId: sid, ProductId: "kenyan-aa-coffee", Quantity: 1}); err != nil {
			t.Fatalf("AddItem: %v", err)
		}
		resp, err := client.AddItem(ctx, &cartv1.AddItemRequest{SessionId: sid, ProductId: "kenyan-aa-coffee", Quantity: 2})
		if err != nil {
			t.Fatalf("AddItem: %v", err)
		}
		if resp.Line.Quantity != 3 || resp.Cart.ItemCount != 3 {
			t.Fatalf("expected quantity 3, got line %+v cart count %d", resp.Line, resp.Cart.ItemCount)
		}
		if !resp.Cart.Subtotal.Equal(decimal.NewFromInt(3600)) {
			t.Fatalf("expected subtotal 3600, got %s", resp.Cart.Subtotal)
		}
	})

	t.Run("update quantity below one is not applied", func(t *testing.T) {
		resp, err := client.UpdateQuantity(ctx, &cartv1.UpdateQuantityRequest{SessionId: sid, ProductId: "kenyan-aa-coffee", Quantity: 0})
		if err != nil {
			t.Fatalf("UpdateQuantity: %v", err)
		}
		if resp.Applied {
			t.Fatal("expected no-op")
		}
	})

	t.Run("is in cart", func(t *testing.T) {
		resp, err := client.IsInCart(ctx, &cartv1.IsInCartRequest{SessionId: sid, ProductId: "kenyan-aa-coffee"})
		if err != nil {
			t.Fatalf("IsInCart: %v", err)
		}
		if !resp.InCart || resp.Quantity != 3 {
			t.Fatalf("unexpected %+v", resp)
		}
	})

	t.Run("remove then clear", func(t *testing.T) {
		resp, err := client.RemoveItem(ctx, &cartv1.RemoveItemRequest{SessionId: sid, ProductId: "kenyan-aa-coffee"})
		if err != nil || !resp.Applied || len(resp.Cart.Lines) != 0 {
			t.Fatalf("RemoveItem: %v %+v", err, resp)
		}
		cleared, err := client.ClearCart(ctx, &cartv1.ClearCartRequest{SessionId: sid})
		if err != nil || cleared.Cart.ItemCount != 0 {
			t.Fatalf("ClearCart: %v %+v", err, cleared)
		}
	})
}

func TestCartServerErrors(t *testing.T) {
	ctx := context.Background()
	client := newClient(t)

	tests := []struct {
		name string
		req  *cartv1.AddItemRequest
		want codes.Code
	}{
		{name: "invalid session", req: &cartv1.AddItemRequest{SessionId: "nope", ProductId: "kenyan-aa-coffee"}, want: codes.InvalidArgument},
		{name: "unknown product", req: &cartv1.AddItemRequest{SessionId: session.New(), ProductId: "missing"}, want: codes.NotFound},
		{name: "empty product", req: &cartv1.AddItemRequest{SessionId: session.New()}, want: codes.InvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.AddItem(ctx, tt.req)
			if got := status.Code(err); got != tt.want {
				t.Fatalf("expected %s, got %s (%v)", tt.want, got, err)
			}
		})
	}
}
