// Package moneypkg provides common money formatting for apps.
//
// Running balance arithmetic keeps full decimal precision; rounding to
// 2 decimal places happens here, at the point of display.
package moneypkg

import "github.com/shopspring/decimal"

// Rupee is the currency symbol used across all screens.
const Rupee = "₹"

// Round2 rounds a money amount to 2 decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Format renders an amount as "₹1234.50".
func Format(d decimal.Decimal) string {
	return Rupee + Round2(d).StringFixed(2)
}

// FormatBalance renders a signed DEBIT-positive balance with its side,
// e.g. "₹50.00 Cr" for -50. A zero balance renders as debit.
func FormatBalance(d decimal.Decimal) string {
	side := "Dr"
	if d.IsNegative() {
		side = "Cr"
	}

	return Format(d.Abs()) + " " + side
}
