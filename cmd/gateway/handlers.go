package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	cartv1 "github.com/Biz-Hub01/pureez/api/cart/v1"
	catalogv1 "github.com/Biz-Hub01/pureez/api/catalog/v1"
	checkoutv1 "github.com/Biz-Hub01/pureez/api/checkout/v1"
	currencyv1 "github.com/Biz-Hub01/pureez/api/currency/v1"
	notifyv1 "github.com/Biz-Hub01/pureez/api/notify/v1"
	orderv1 "github.com/Biz-Hub01/pureez/api/order/v1"
	wishlistv1 "github.com/Biz-Hub01/pureez/api/wishlist/v1"
	"github.com/Biz-Hub01/pureez/internal/session"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
)

// gateway translates JSON over HTTP into calls on the API services.
type gateway struct {
	cart     cartv1.CartServiceClient
	wishlist wishlistv1.WishlistServiceClient
	currency currencyv1.CurrencyServiceClient
	catalog  catalogv1.CatalogServiceClient
	checkout checkoutv1.CheckoutServiceClient
	notify   notifyv1.NotificationServiceClient
	order    orderv1.OrderServiceClient

	log *slog.Logger
}

func newGateway(conn grpc.ClientConnInterface, log *slog.Logger) *gateway {
	return &gateway{
		cart:     cartv1.NewCartServiceClient(conn),
		wishlist: wishlistv1.NewWishlistServiceClient(conn),
		currency: currencyv1.NewCurrencyServiceClient(conn),
		catalog:  catalogv1.NewCatalogServiceClient(conn),
		checkout: checkoutv1.NewCheckoutServiceClient(conn),
		notify:   notifyv1.NewNotificationServiceClient(conn),
		order:    orderv1.NewOrderServiceClient(conn),
		log:      log,
	}
}

func (g *gateway) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.HandleFunc("GET /readyz", g.ready)

	mux.HandleFunc("POST /v1/sessions", g.newSession)

	mux.HandleFunc("GET /v1/products", g.listProducts)
	mux.HandleFunc("GET /v1/products/{id}", g.getProduct)

	mux.HandleFunc("GET /v1/sessions/{sid}/cart", g.getCart)
	mux.HandleFunc("DELETE /v1/sessions/{sid}/cart", g.clearCart)
	mux.HandleFunc("POST /v1/sessions/{sid}/cart/items", g.addCartItem)
	mux.HandleFunc("GET /v1/sessions/{sid}/cart/items/{pid}", g.isInCart)
	mux.HandleFunc("PATCH /v1/sessions/{sid}/cart/items/{pid}", g.updateCartItem)
	mux.HandleFunc("DELETE /v1/sessions/{sid}/cart/items/{pid}", g.removeCartItem)

	mux.HandleFunc("GET /v1/sessions/{sid}/wishlist", g.getWishlist)
	mux.HandleFunc("POST /v1/sessions/{sid}/wishlist/items", g.addWishlistItem)
	mux.HandleFunc("GET /v1/sessions/{sid}/wishlist/items/{pid}", g.isInWishlist)
	mux.HandleFunc("DELETE /v1/sessions/{sid}/wishlist/items/{pid}", g.removeWishlistItem)
	mux.HandleFunc("POST /v1/sessions/{sid}/wishlist/items/{pid}/move", g.moveToCart)

	mux.HandleFunc("GET /v1/sessions/{sid}/currency", g.listCurrencies)
	mux.HandleFunc("PUT /v1/sessions/{sid}/currency", g.setCurrency)
	mux.HandleFunc("GET /v1/sessions/{sid}/prices/convert", g.convertPrice)
	mux.HandleFunc("GET /v1/sessions/{sid}/prices/format", g.formatPrice)
	mux.HandleFunc("POST /v1/currencies/refresh", g.refreshRates)

	mux.HandleFunc("GET /v1/sessions/{sid}/quote", g.quote)
	mux.HandleFunc("POST /v1/sessions/{sid}/orders", g.placeOrder)
	mux.HandleFunc("GET /v1/sessions/{sid}/orders", g.listOrders)
	mux.HandleFunc("GET /v1/orders/{id}", g.getOrder)
	mux.HandleFunc("GET /v1/sessions/{sid}/events", g.events)
	return mux
}

func (g *gateway) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if _, err := g.currency.ListCurrencies(ctx, &currencyv1.ListCurrenciesRequest{}); err != nil {
		writeGRPCError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (g *gateway) newSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, map[string]string{"sessionId": session.New()})
}

func (g *gateway) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &catalogv1.ListProductsRequest{
		Query:       q.Get("q"),
		Category:    q.Get("category"),
		Sort:        q.Get("sort"),
		Cursor:      q.Get("cursor"),
		InStockOnly: q.Get("in_stock") == "true",
	}
	var ok bool
	if req.MinPrice, ok = decimalParam(w, q.Get("min_price")); !ok {
		return
	}
	if req.MaxPrice, ok = decimalParam(w, q.Get("max_price")); !ok {
		return
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "limit must be an integer")
			return
		}
		req.Limit = int32(n)
	}

	resp, err := g.catalog.ListProducts(r.Context(), req)
	if err != nil {
		writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (g *gateway) getProduct(w http.ResponseWriter, r *http.Request) {
	resp, err := g.catalog.GetProduct(r.Context(), &catalogv1.GetProductRequest{Id: r.PathValue("id")})
	if err != nil {
		writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp.Product)
}

func (g *gateway) getCart(w http.ResponseWriter, r *http.Request) {
	resp, err := g.cart.GetCart(r.Context(), &cartv1.GetCartRequest{SessionId: r.PathValue("sid")})
	reply(w, resp, err)
}

func (g *gateway) clearCart(w http.ResponseWriter, r *http.Request) {
	resp, err := g.cart.ClearCart(r.Context(), &cartv1.ClearCartRequest{SessionId: r.PathValue("sid")})
	reply(w, resp, err)
}

type addItemBody struct {
	ProductID string `json:"productId"`
	Quantity  int32  `json:"quantity"`
}

func (g *gateway) addCartItem(w http.ResponseWriter, r *http.Request) {
	var body addItemBody
	if !decodeBody(w, r, &body) {
		return
	}
	resp, err := g.cart.AddItem(r.Context(), &cartv1.AddItemRequest{
		SessionId: r.PathValue("sid"),
		ProductId: body.ProductID,
		Quantity:  body.Quantity,
	})
	if err != nil {
		writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (g *gateway) isInCart(w http.ResponseWriter, r *http.Request) {
	resp, err := g.cart.IsInCart(r.Context(), &cartv1.IsInCartRequest{
		SessionId: r.PathValue("sid"),
		ProductId: r.PathValue("pid"),
	})
	reply(w, resp, err)
}

func (g *gateway) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Quantity int32 `json:"quantity"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	resp, err := g.cart.UpdateQuantity(r.Context(), &cartv1.UpdateQuantityRequest{
		SessionId: r.PathValue("sid"),
		ProductId: r.PathValue("pid"),
		Quantity:  body.Quantity,
	})
	reply(w, resp, err)
}

func (g *gateway) removeCartItem(w http.ResponseWriter, r *http.Request) {
	resp, err := g.cart.RemoveItem(r.Context(), &cartv1.RemoveItemRequest{
		SessionId: r.PathValue("sid"),
		ProductId: r.PathValue("pid"),
	})
	reply(w, resp, err)
}

func (g *gateway) getWishlist(w http.ResponseWriter, r *http.Request) {
	resp, err := g.wishlist.GetWishlist(r.Context(), &wishlistv1.GetWishlistRequest{SessionId: r.PathValue("sid")})
	reply(w, resp, err)
}

func (g *gateway) addWishlistItem(w http.ResponseWriter, r *http.Request) {
	var body addItemBody
	if !decodeBody(w, r, &body) {
		return
	}
	resp, err := g.wishlist.AddItem(r.Context(), &wishlistv1.AddItemRequest{
		SessionId: r.PathValue("sid"),
		ProductId: body.ProductID,
	})
	reply(w, resp, err)
}

func (g *gateway) isInWishlist(w http.ResponseWriter, r *http.Request) {
	resp, err := g.wishlist.IsInWishlist(r.Context(), &wishlistv1.IsInWishlistRequest{
		SessionId: r.PathValue("sid"),
		ProductId: r.PathValue("pid"),
	})
	reply(w, resp, err)
}

func (g *gateway) removeWishlistItem(w http.ResponseWriter, r *http.Request) {
	resp, err := g.wishlist.RemoveItem(r.Context(), &wishlistv1.RemoveItemRequest{
		SessionId: r.PathValue("sid"),
		ProductId: r.PathValue("pid"),
	})
	reply(w, resp, err)
}

// moveToCart adds a saved product to the cart and then drops it from the
// wishlist. The two managers stay independent; only this route links them.
func (g *gateway) moveToCart(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Quantity int32 `json:"quantity"`
	}
	if !decodeOptionalBody(w, r, &body) {
		return
	}
	sid, pid := r.PathValue("sid"), r.PathValue("pid")

	saved, err := g.wishlist.IsInWishlist(r.Context(), &wishlistv1.IsInWishlistRequest{SessionId: sid, ProductId: pid})
	if err != nil {
		writeGRPCError(w, err)
		return
	}
	if !saved.InWishlist {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "product is not in the wishlist")
		return
	}

	added, err := g.cart.AddItem(r.Context(), &cartv1.AddItemRequest{SessionId: sid, ProductId: pid, Quantity: body.Quantity})
	if err != nil {
		writeGRPCError(w, err)
		return
	}
	removed, err := g.wishlist.RemoveItem(r.Context(), &wishlistv1.RemoveItemRequest{SessionId: sid, ProductId: pid})
	if err != nil {
		writeGRPCError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"cart":     added.Cart,
		"wishlist": removed.Wishlist,
	})
}

func (g *gateway) listCurrencies(w http.ResponseWriter, r *http.Request) {
	resp, err := g.currency.ListCurrencies(r.Context(), &currencyv1.ListCurrenciesRequest{SessionId: r.PathValue("sid")})
	reply(w, resp, err)
}

func (g *gateway) setCurrency(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Code string `json:"code"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	resp, err := g.currency.SetCurrency(r.Context(), &currencyv1.SetCurrencyRequest{
		SessionId: r.PathValue("sid"),
		Code:      body.Code,
	})
	reply(w, resp, err)
}

func (g *gateway) convertPrice(w http.ResponseWriter, r *http.Request) {
	amount, ok := requiredDecimal(w, r.URL.Query().Get("amount"))
	if !ok {
		return
	}
	resp, err := g.currency.ConvertPrice(r.Context(), &currencyv1.ConvertPriceRequest{
		SessionId: r.PathValue("sid"),
		Amount:    amount,
		Target:    r.URL.Query().Get("target"),
	})
	reply(w, resp, err)
}

func (g *gateway) formatPrice(w http.ResponseWriter, r *http.Request) {
	amount, ok := requiredDecimal(w, r.URL.Query().Get("amount"))
	if !ok {
		return
	}
	resp, err := g.currency.FormatPrice(r.Context(), &currencyv1.FormatPriceRequest{
		SessionId: r.PathValue("sid"),
		Amount:    amount,
	})
	reply(w, resp, err)
}

func (g *gateway) refreshRates(w http.ResponseWriter, r *http.Request) {
	resp, err := g.currency.RefreshRates(r.Context(), &currencyv1.RefreshRatesRequest{})
	reply(w, resp, err)
}

func (g *gateway) quote(w http.ResponseWriter, r *http.Request) {
	resp, err := g.checkout.Quote(r.Context(), &checkoutv1.QuoteRequest{SessionId: r.PathValue("sid")})
	reply(w, resp, err)
}

func (g *gateway) placeOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ShippingFee decimal.Decimal `json:"shippingFee"`
	}
	if !decodeOptionalBody(w, r, &body) {
		return
	}
	resp, err := g.order.PlaceOrder(r.Context(), &orderv1.PlaceOrderRequest{
		SessionId:   r.PathValue("sid"),
		ShippingFee: body.ShippingFee,
	})
	if err != nil {
		writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (g *gateway) listOrders(w http.ResponseWriter, r *http.Request) {
	resp, err := g.order.ListOrders(r.Context(), &orderv1.ListOrdersRequest{SessionId: r.PathValue("sid")})
	reply(w, resp, err)
}

func (g *gateway) getOrder(w http.ResponseWriter, r *http.Request) {
	resp, err := g.order.GetOrder(r.Context(), &orderv1.GetOrderRequest{OrderId: r.PathValue("id")})
	reply(w, resp, err)
}

func reply(w http.ResponseWriter, resp any, err error) {
	if err != nil {
		writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid JSON body")
		return false
	}
	return true
}

// decodeOptionalBody is decodeBody that also accepts an empty body.
func decodeOptionalBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid JSON body")
		return false
	}
	return true
}

func decimalParam(w http.ResponseWriter, v string) (decimal.Decimal, bool) {
	if v == "" {
		return decimal.Zero, true
	}
	return requiredDecimal(w, v)
}

func requiredDecimal(w http.ResponseWriter, v string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(v)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "amount must be a decimal number")
		return decimal.Zero, false
	}
	return d, true
}
