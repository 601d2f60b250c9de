package commands

import "github.com/shopspring/decimal"

// fixedOrBlank renders an amount with two decimals, or blank when zero, so
// debit/credit columns stay readable.
func fixedOrBlank(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.StringFixed(2)
}
