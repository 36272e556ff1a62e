package app

import (
	"testing"

	"github.com/Biz-Hub01/pureez/internal/currency/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	kes := domain.Currency{Code: "KES", Symbol: "KES"}

	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "small", amount: "12", want: "KES 12"},
		{name: "grouped", amount: "1234567", want: "KES 1,234,567"},
		{name: "rounds half up", amount: "999.995", want: "KES 1,000"},
		{name: "two digits", amount: "0.05", want: "KES 0.05"},
		{name: "trailing zero dropped", amount: "10.50", want: "KES 10.5"},
		{name: "negative", amount: "-1234.5", want: "KES -1,234.5"},
		{name: "beyond float precision", amount: "12345678901234567.89", want: "KES 12,345,678,901,234,567.89"},
		{name: "beyond int64", amount: "123456789012345678901.5", want: "KES 123,456,789,012,345,678,901.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(kes, dec(tt.amount)))
		})
	}
}
