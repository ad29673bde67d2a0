package utils

import (
	"github.com/shopspring/decimal"
)

// FormatAmount renders a money amount with two decimals, e.g. 119 -> "119.00".
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatWithPrecision formats an amount with the given precision
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
