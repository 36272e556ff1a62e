// Command shopctl drives the shopper state managers against a local store.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	cartapp "github.com/Biz-Hub01/pureez/internal/cart/app"
	catalogapp "github.com/Biz-Hub01/pureez/internal/catalog/app"
	"github.com/Biz-Hub01/pureez/internal/catalog/infra/memory"
	checkoutapp "github.com/Biz-Hub01/pureez/internal/checkout/app"
	"github.com/Biz-Hub01/pureez/internal/checkout/infra/adapter"
	currencyapp "github.com/Biz-Hub01/pureez/internal/currency/app"
	"github.com/Biz-Hub01/pureez/internal/currency/infra/ratesapi"
	"github.com/Biz-Hub01/pureez/internal/notify"
	orderapp "github.com/Biz-Hub01/pureez/internal/order/app"
	orderadapter "github.com/Biz-Hub01/pureez/internal/order/infra/adapter"
	orderkv "github.com/Biz-Hub01/pureez/internal/order/infra/kv"
	"github.com/Biz-Hub01/pureez/internal/session"
	"github.com/Biz-Hub01/pureez/internal/storage"
	wishlistapp "github.com/Biz-Hub01/pureez/internal/wishlist/app"
	"github.com/Biz-Hub01/pureez/pkg/config"
	"github.com/Biz-Hub01/pureez/pkg/logger"
	"github.com/spf13/cobra"
)

const sessionKey = "shopctl:session"

// env is everything a subcommand needs, opened once per invocation.
type env struct {
	cfg       config.Config
	log       *slog.Logger
	store     storage.Store
	sessionID string

	catalog    *catalogapp.Service
	carts      *cartapp.Service
	wishlists  *wishlistapp.Service
	rates      *currencyapp.Rates
	currencies *currencyapp.Service
	checkout   *checkoutapp.Service
	orders     *orderapp.Service

	cancel context.CancelFunc
}

type options struct {
	driver   string
	dbPath   string
	session  string
	logLevel string
	timeout  time.Duration
}

func newRootCmd(e *env) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:           "shopctl",
		Short:         "Inspect and edit a shopper's cart, wishlist, currency and orders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			e.cancel = cancel
			cmd.SetContext(ctx)
			return e.open(ctx, opts, cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&opts.driver, "store", "", "Store driver: memory, sqlite or postgres (default from STORE_DRIVER)")
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "SQLite database path (default from SQLITE_PATH)")
	root.PersistentFlags().StringVar(&opts.session, "session", "", "Session id (default: the one remembered in the store)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Operation timeout")

	root.AddCommand(
		newCartCmd(e),
		newWishlistCmd(e),
		newCurrencyCmd(e),
		newQuoteCmd(e),
		newOrderCmd(e),
		newSessionCmd(e),
	)
	return root
}

func (e *env) open(ctx context.Context, opts options, logOut io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.driver != "" {
		cfg.Store.Driver = opts.driver
	}
	if opts.dbPath != "" {
		cfg.Store.SQLitePath = opts.dbPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.cfg = cfg
	e.log = logger.New(logger.Options{Service: "shopctl", Env: cfg.AppEnv, Level: opts.logLevel, Output: logOut})

	e.store, err = storage.Open(ctx, cfg.Store)
	if err != nil {
		return err
	}

	e.sessionID, err = e.resolveSession(ctx, opts.session)
	if err != nil {
		return err
	}

	seed := memory.DefaultSeed()
	if cfg.CatalogFile != "" {
		if seed, err = memory.LoadSeed(cfg.CatalogFile); err != nil {
			return err
		}
	}
	notifier := notify.NewLogNotifier(e.log)

	e.catalog = catalogapp.NewService(memory.NewProductRepo(seed...))
	e.carts = cartapp.NewService(e.store, notifier, e.log)
	e.wishlists = wishlistapp.NewService(e.store, notifier, e.log)

	provider := ratesapi.NewClient(cfg.Currency.ProviderURL,
		time.Duration(cfg.Currency.RequestTimeoutSec)*time.Second,
		ratesapi.WithLogger(e.log),
	)
	e.rates, err = currencyapp.NewRates(currencyapp.RatesConfigFrom(cfg.Currency), provider, e.store, notifier, e.log)
	if err != nil {
		return err
	}
	e.rates.Restore(ctx)
	e.currencies = currencyapp.NewService(e.rates, e.store, notifier, e.log)

	e.checkout = checkoutapp.NewService(
		adapter.NewCartServiceReader(e.carts),
		adapter.NewCatalogServiceReader(e.catalog),
		adapter.NewCurrencyServiceReader(e.currencies),
		4, e.log,
	)
	e.orders = orderapp.NewService(orderkv.NewOrderRepo(e.store), e.checkout, orderadapter.NewCartServiceUpdater(e.carts), e.log)
	return nil
}

// resolveSession returns the explicit id, or the remembered one, or a new
// id that is remembered for next time.
func (e *env) resolveSession(ctx context.Context, explicit string) (string, error) {
	if explicit != "" {
		return session.Parse(explicit)
	}
	raw, err := e.store.Get(ctx, sessionKey)
	if err == nil {
		if id, err := session.Parse(raw); err == nil {
			return id, nil
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		return "", err
	}

	id := session.New()
	if err := e.store.Set(ctx, sessionKey, id); err != nil {
		return "", err
	}
	return id, nil
}

func (e *env) close() {
	if e.rates != nil {
		e.rates.Close()
	}
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			e.log.Warn("store close failed", slog.Any("err", err))
		}
		e.store = nil
	}
	if e.cancel != nil {
		e.cancel()
	}
}

// execute runs one command line and releases whatever it opened, whether
// or not the command succeeded.
func execute(ctx context.Context, args []string, out, errOut io.Writer) error {
	e := &env{}
	defer e.close()

	root := newRootCmd(e)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.ExecuteContext(ctx)
}

func newSessionCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Print the active session id",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), e.sessionID)
			return nil
		},
	}
}

func main() {
	if err := execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
