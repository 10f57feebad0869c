package utils

import (
	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of decimals shown for amounts and balances.
const DisplayPrecision = 2

// FormatAmount formats an amount for display with DisplayPrecision decimals.
// Example: 12.3456 returns "12.35"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(DisplayPrecision)
}
