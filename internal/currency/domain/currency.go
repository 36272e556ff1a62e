package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultBase is the currency every Rate is expressed against.
const DefaultBase = "KES"

var ErrInvalidCurrencyCode = errors.New("invalid currency code")

// Currency is one supported display currency. Rate multiplies a base-currency
// amount into this currency.
type Currency struct {
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	Symbol string          `json:"symbol"`
	Rate   decimal.Decimal `json:"rate"`
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// DefaultCurrencies is the static table used until the first refresh.
func DefaultCurrencies() []Currency {
	return []Currency{
		{Code: "KES", Name: "Kenyan Shilling", Symbol: "KES", Rate: decimal.NewFromInt(1)},
		{Code: "USD", Name: "US Dollar", Symbol: "$", Rate: decimal.RequireFromString("0.0077")},
		{Code: "EUR", Name: "Euro", Symbol: "€", Rate: decimal.RequireFromString("0.0071")},
		{Code: "GBP", Name: "British Pound", Symbol: "£", Rate: decimal.RequireFromString("0.0061")},
		{Code: "UGX", Name: "Ugandan Shilling", Symbol: "USh", Rate: decimal.RequireFromString("28.5")},
		{Code: "TZS", Name: "Tanzanian Shilling", Symbol: "TSh", Rate: decimal.RequireFromString("20.1")},
	}
}
