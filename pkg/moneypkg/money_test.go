package moneypkg

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	require.Equal(t, "₹1234.50", Format(decimal.RequireFromString("1234.5")))
	require.Equal(t, "₹0.00", Format(decimal.Zero))
	require.Equal(t, "₹10.13", Format(decimal.RequireFromString("10.125")))
}

func TestFormatBalance(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		balance string
		want    string
	}{
		{name: "Debit", balance: "700", want: "₹700.00 Dr"},
		{name: "Credit", balance: "-50", want: "₹50.00 Cr"},
		{name: "Zero", balance: "0", want: "₹0.00 Dr"},
		{name: "CreditFraction", balance: "-40.1", want: "₹40.10 Cr"},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := FormatBalance(decimal.RequireFromString(tc.balance))
			require.Equal(t, tc.want, got)
		})
	}
}
