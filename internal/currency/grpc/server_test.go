package grpc

import (
	"context"
	"testing"

	currencyv1 "github.com/Biz-Hub01/pureez/api/currency/v1"
	"github.com/Biz-Hub01/pureez/internal/currency/app"
	"github.com/Biz-Hub01/pureez/internal/rpc/rpctest"
	"github.com/Biz-Hub01/pureez/internal/session"
	"github.com/Biz-Hub01/pureez/internal/storage"
	"github.com/Biz-Hub01/pureez/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCurrencyServer(t *testing.T) {
	ctx := context.Background()
	rates, err := app.NewRates(app.RatesConfig{}, nil, nil, nil, logger.Discard())
	require.NoError(t, err)
	svc := app.NewService(rates, storage.NewMemory(), nil, logger.Discard())

	conn := rpctest.Dial(t, func(s *grpc.Server) {
		currencyv1.RegisterCurrencyServiceServer(s, NewServer(svc))
	})
	client := currencyv1.NewCurrencyServiceClient(conn)
	sid := session.New()

	list, err := client.ListCurrencies(ctx, &currencyv1.ListCurrenciesRequest{SessionId: sid})
	require.NoError(t, err)
	assert.Equal(t, "KES", list.Base)
	assert.Equal(t, "KES", list.Active.Code)
	assert.Len(t, list.Currencies, 6)

	_, err = client.SetCurrency(ctx, &currencyv1.SetCurrencyRequest{SessionId: sid, Code: "XYZ"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	set, err := client.SetCurrency(ctx, &currencyv1.SetCurrencyRequest{SessionId: sid, Code: "usd"})
	require.NoError(t, err)
	assert.Equal(t, "USD", set.Active.Code)

	conv, err := client.ConvertPrice(ctx, &currencyv1.ConvertPriceRequest{SessionId: sid, Amount: decimal.NewFromInt(100), Target: "EUR"})
	require.NoError(t, err)
	assert.Equal(t, "EUR", conv.Currency)
	assert.True(t, conv.Amount.Equal(decimal.RequireFromString("0.71")))

	formatted, err := client.FormatPrice(ctx, &currencyv1.FormatPriceRequest{SessionId: sid, Amount: decimal.NewFromInt(1000)})
	require.NoError(t, err)
	assert.Equal(t, "$ 7.7", formatted.Formatted)

	_, err = client.RefreshRates(ctx, &currencyv1.RefreshRatesRequest{})
	assert.Equal(t, codes.Unavailable, status.Code(err), "no provider configured")
}
