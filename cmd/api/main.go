package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"sync"
	"time"

	cartv1 "github.com/Biz-Hub01/pureez/api/cart/v1"
	catalogv1 "github.com/Biz-Hub01/pureez/api/catalog/v1"
	checkoutv1 "github.com/Biz-Hub01/pureez/api/checkout/v1"
	currencyv1 "github.com/Biz-Hub01/pureez/api/currency/v1"
	notifyv1 "github.com/Biz-Hub01/pureez/api/notify/v1"
	orderv1 "github.com/Biz-Hub01/pureez/api/order/v1"
	wishlistv1 "github.com/Biz-Hub01/pureez/api/wishlist/v1"

	cartapp "github.com/Biz-Hub01/pureez/internal/cart/app"
	cartgrpc "github.com/Biz-Hub01/pureez/internal/cart/grpc"

	catalogapp "github.com/Biz-Hub01/pureez/internal/catalog/app"
	catalogdomain "github.com/Biz-Hub01/pureez/internal/catalog/domain"
	cgrpc "github.com/Biz-Hub01/pureez/internal/catalog/grpc"
	"github.com/Biz-Hub01/pureez/internal/catalog/infra/memory"

	checkoutapp "github.com/Biz-Hub01/pureez/internal/checkout/app"
	checkoutgrpc "github.com/Biz-Hub01/pureez/internal/checkout/grpc"
	checkoutadapter "github.com/Biz-Hub01/pureez/internal/checkout/infra/adapter"

	currencyapp "github.com/Biz-Hub01/pureez/internal/currency/app"
	currencygrpc "github.com/Biz-Hub01/pureez/internal/currency/grpc"
	"github.com/Biz-Hub01/pureez/internal/currency/infra/ratesapi"

	orderapp "github.com/Biz-Hub01/pureez/internal/order/app"
	ordergrpc "github.com/Biz-Hub01/pureez/internal/order/grpc"
	orderadapter "github.com/Biz-Hub01/pureez/internal/order/infra/adapter"
	orderkv "github.com/Biz-Hub01/pureez/internal/order/infra/kv"

	wishlistapp "github.com/Biz-Hub01/pureez/internal/wishlist/app"
	wishlistgrpc "github.com/Biz-Hub01/pureez/internal/wishlist/grpc"

	"github.com/Biz-Hub01/pureez/internal/notify"
	notifygrpc "github.com/Biz-Hub01/pureez/internal/notify/grpc"
	"github.com/Biz-Hub01/pureez/internal/rpc"
	"github.com/Biz-Hub01/pureez/internal/storage"

	"github.com/Biz-Hub01/pureez/pkg/config"
	"github.com/Biz-Hub01/pureez/pkg/logger"
	"github.com/Biz-Hub01/pureez/pkg/shutdown"
	"google.golang.org/grpc"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New(logger.Options{Service: "api", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	store, err := storage.Open(ctx, cfg.Store)
	if err != nil {
		log.Error("store open failed", slog.Any("err", err), slog.String("driver", cfg.Store.Driver))
		os.Exit(1)
	}
	defer store.Close()

	hub := notify.NewHub(32)
	defer hub.Close()
	notifier := notify.Multi{hub, notify.NewLogNotifier(log)}

	// Catalog
	catalogSvc := catalogapp.NewService(memory.NewProductRepo(mustSeed(cfg, log)...))

	// Cart, wishlist
	cartSvc := cartapp.NewService(store, notifier, log)
	wishlistSvc := wishlistapp.NewService(store, notifier, log)

	// Currency
	provider := ratesapi.NewClient(cfg.Currency.ProviderURL,
		time.Duration(cfg.Currency.RequestTimeoutSec)*time.Second,
		ratesapi.WithLogger(log),
	)
	rates, err := currencyapp.NewRates(currencyapp.RatesConfigFrom(cfg.Currency), provider, store, notifier, log)
	if err != nil {
		log.Error("currency table invalid", slog.Any("err", err))
		os.Exit(1)
	}
	rates.Start(ctx)
	defer rates.Close()
	currencySvc := currencyapp.NewService(rates, store, notifier, log)

	// Checkout (adapters)
	cartReader := checkoutadapter.NewCartServiceReader(cartSvc)
	catalogReader := checkoutadapter.NewCatalogServiceReader(catalogSvc)
	currencyReader := checkoutadapter.NewCurrencyServiceReader(currencySvc)
	checkoutSvc := checkoutapp.NewService(cartReader, catalogReader, currencyReader, 10, log)

	// Order
	orderSvc := orderapp.NewService(orderkv.NewOrderRepo(store), checkoutSvc, orderadapter.NewCartServiceUpdater(cartSvc), log)

	addr := fmt.Sprintf(":%d", cfg.GRPCPort)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Error("listen failed", slog.Any("err", err), slog.String("addr", addr))
		os.Exit(1)
	}

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(rpc.LoggingInterceptor(log)))
	catalogv1.RegisterCatalogServiceServer(grpcServer, cgrpc.NewServer(catalogSvc))
	cartv1.RegisterCartServiceServer(grpcServer, cartgrpc.NewServer(cartSvc, catalogSvc))
	wishlistv1.RegisterWishlistServiceServer(grpcServer, wishlistgrpc.NewServer(wishlistSvc, catalogSvc))
	currencyv1.RegisterCurrencyServiceServer(grpcServer, currencygrpc.NewServer(currencySvc))
	checkoutv1.RegisterCheckoutServiceServer(grpcServer, checkoutgrpc.NewServer(checkoutSvc))
	orderv1.RegisterOrderServiceServer(grpcServer, ordergrpc.NewServer(orderSvc))
	notifyv1.RegisterNotificationServiceServer(grpcServer, notifygrpc.NewServer(hub, log))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("grpc starting", slog.String("addr", addr))
		if err := grpcServer.Serve(lis); err != nil {
			log.Error("grpc serve error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	// Streams block GracefulStop until they end; closing the hub ends them.
	hub.Close()
	if !shutdown.Graceful(10*time.Second, grpcServer.GracefulStop, grpcServer.Stop) {
		log.Warn("graceful stop timeout, forcing stop")
	}

	wg.Wait()
	log.Info("bye")
}

func mustSeed(cfg config.Config, log *slog.Logger) []catalogdomain.Product {
	if cfg.CatalogFile == "" {
		return memory.DefaultSeed()
	}
	products, err := memory.LoadSeed(cfg.CatalogFile)
	if err != nil {
		log.Error("catalog seed failed", slog.Any("err", err), slog.String("file", cfg.CatalogFile))
		os.Exit(1)
	}
	log.Info("catalog seeded", slog.Int("products", len(products)), slog.String("file", cfg.CatalogFile))
	return products
}
