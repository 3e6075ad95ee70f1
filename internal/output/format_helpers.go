package output

import (
	money "github.com/rpgo/investment-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as grouped USD with 2 decimals: "$1,234.57".
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatSignedCurrency is FormatCurrency with a leading "+" for gains.
func FormatSignedCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).FormatSigned()
}

// FormatWhole formats a decimal as grouped USD rounded to dollars.
func FormatWhole(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).FormatWhole()
}

// FormatCompact formats a decimal the way chart labels do: "$1.2M", "$87K".
func FormatCompact(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).FormatCompact()
}

// FormatPercentage formats a value that is already a percentage (9 -> "9.00%").
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatShare formats a fraction of a whole (0.25 -> "25.0%").
func FormatShare(fraction decimal.Decimal) string { return money.Percent(fraction, 1) }
