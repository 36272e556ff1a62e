package app

import (
	"strings"

	"github.com/Biz-Hub01/pureez/internal/currency/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxPrinted is the largest whole part handed to the locale printer; it
// stays well inside int64.
var maxPrinted = decimal.New(1, 18)

// Format renders amount, already expressed in c, as "<symbol> <grouped>"
// with at most two fraction digits and no trailing zeros. The digits come
// from the decimal itself, so large amounts keep every digit.
func Format(c domain.Currency, amount decimal.Decimal) string {
	r := amount.Round(2)

	var b strings.Builder
	b.WriteString(c.Symbol)
	b.WriteByte(' ')
	if r.IsNegative() {
		b.WriteByte('-')
		r = r.Abs()
	}

	whole := r.Truncate(0)
	b.WriteString(groupWhole(whole))
	if frac := r.Sub(whole); !frac.IsZero() {
		// frac.String() is "0.x" or "0.xy"
		b.WriteString(strings.TrimPrefix(frac.String(), "0"))
	}
	return b.String()
}

func groupWhole(whole decimal.Decimal) string {
	if whole.LessThan(maxPrinted) {
		p := message.NewPrinter(language.English)
		return p.Sprint(number.Decimal(whole.IntPart()))
	}

	digits := whole.String()
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return b.String()
}
