package utils

import "github.com/shopspring/decimal"

// FormatMinorUnits renders an integer minor-unit amount as a fixed-precision
// major-unit string for display.
// Example: amount 12345 with exponent 2 returns "123.45"
// Example: amount 12345 with exponent 0 returns "12345"
// All ledger arithmetic stays on integers; this is display-only.
func FormatMinorUnits(amount int64, exponent int32) string {
	return decimal.New(amount, -exponent).StringFixed(exponent)
}
