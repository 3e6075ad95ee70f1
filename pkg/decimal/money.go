package decimal

import (
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var (
	thousand = decimal.NewFromInt(1000)
	million  = decimal.NewFromInt(1000000)
	hundred  = decimal.NewFromInt(100)
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// String returns the amount fixed to cents without grouping.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as US dollars with thousands grouping: "$1,234.57".
func (m Money) Format() string {
	return signed(m.Decimal, grouped(m.Decimal.Abs(), 2))
}

// FormatSigned is Format with an explicit sign for gains: "+$1,234.57", "-$12.00".
// Amounts that round to zero carry no sign.
func (m Money) FormatSigned() string {
	text := m.Format()
	if m.Decimal.IsPositive() && !isZeroText(grouped(m.Decimal, 2)) {
		return "+" + text
	}
	return text
}

// FormatWhole renders the amount rounded to whole dollars: "$1,235".
func (m Money) FormatWhole() string {
	return signed(m.Decimal, grouped(m.Decimal.Abs(), 0))
}

// FormatCompact renders chart-friendly amounts: "$1.2M", "$87K", "$123".
// Negative amounts are rendered in full so a loss is never abbreviated.
// A value that rounds up into the next unit is promoted (999,600 -> "$1M").
func (m Money) FormatCompact() string {
	v := m.Decimal
	if v.IsNegative() {
		return m.FormatWhole()
	}
	switch {
	case v.Div(thousand).Round(0).GreaterThanOrEqual(thousand):
		return "$" + groupedTrimmed(v.Div(million).Round(1)) + "M"
	case v.Round(0).GreaterThanOrEqual(thousand):
		return "$" + grouped(v.Div(thousand), 0) + "K"
	default:
		return "$" + grouped(v, 0)
	}
}

// Percent renders a fraction of a whole (0.25) as "25.0%".
func Percent(fraction decimal.Decimal, places int32) string {
	return fraction.Mul(hundred).StringFixed(places) + "%"
}

func signed(d decimal.Decimal, body string) string {
	if d.IsNegative() && !isZeroText(body) {
		return "-$" + body
	}
	return "$" + body
}

func isZeroText(s string) bool {
	return strings.Trim(s, "0.,") == ""
}

// grouped formats a non-negative amount with the given number of decimals
// and comma thousands separators.
func grouped(d decimal.Decimal, places int32) string {
	return groupText(d.StringFixed(places))
}

// groupedTrimmed is grouped without trailing fractional zeros ("1.0" -> "1").
func groupedTrimmed(d decimal.Decimal) string {
	return groupText(d.String())
}

func groupText(text string) string {
	whole, frac, hasFrac := strings.Cut(text, ".")
	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return text
	}
	out := humanize.BigComma(n)
	if hasFrac {
		out += "." + frac
	}
	return out
}
