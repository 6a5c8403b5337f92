package swap

import "github.com/shopspring/decimal"

// FormatPercent renders a percentage value with two decimal places, e.g.
// "1.20%".
func FormatPercent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}
