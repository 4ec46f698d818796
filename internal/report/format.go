package report

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = "USD"

// Formatter renders decimal amounts in one currency.
type Formatter struct {
	cur *money.Currency
}

// NewFormatter returns a Formatter for an ISO 4217 currency code known to
// go-money.
func NewFormatter(code string) (*Formatter, error) {
	cur := money.GetCurrency(strings.ToUpper(strings.TrimSpace(code)))
	if cur == nil {
		return nil, fmt.Errorf("unknown currency %q", code)
	}
	return &Formatter{cur: cur}, nil
}

// Code returns the currency code.
func (f *Formatter) Code() string { return f.cur.Code }

// Format renders amount with the currency's symbol, separators and fraction
// digits, e.g. "$1,000.00" or "-$749.50". Extra digits are rounded. The
// layout follows go-money's Formatter but works on the decimal directly, so
// amounts beyond the int64 range of minor units are not truncated.
func (f *Formatter) Format(amount decimal.Decimal) string {
	places := int32(f.cur.Fraction)
	rounded := amount.Round(places)

	digits := rounded.Abs().StringFixed(places)
	whole, frac, _ := strings.Cut(digits, ".")

	s := group(whole, f.cur.Thousand)
	if places > 0 {
		s += f.cur.Decimal + frac
	}
	s = strings.Replace(f.cur.Template, "1", s, 1)
	s = strings.Replace(s, "$", f.cur.Grapheme, 1)

	if rounded.IsNegative() {
		s = "-" + s
	}
	return s
}

// group inserts sep between every three digits of whole, counting from the right.
func group(whole, sep string) string {
	if sep == "" || len(whole) <= 3 {
		return whole
	}
	var b strings.Builder
	head := len(whole) % 3
	if head > 0 {
		b.WriteString(whole[:head])
	}
	for i := head; i < len(whole); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(whole[i : i+3])
	}
	return b.String()
}
