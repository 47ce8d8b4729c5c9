// Package render turns aggregated trees and budget summaries into tables
// and JSON for the command line.
package render

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/ledgertree/ledgertree/internal/amount"
)

// FormatAmount displays d in commodity. ISO currencies get their symbol and
// fraction digits; anything else, or an amount too large for int64 minor
// units, prints as "<amount> <code>".
func FormatAmount(d decimal.Decimal, commodity string) string {
	c := money.GetCurrency(commodity)
	if c == nil {
		return plain(d, commodity)
	}
	minor := d.Shift(int32(c.Fraction)).Round(0).BigInt()
	if !minor.IsInt64() {
		return plain(d, commodity)
	}
	return money.New(minor.Int64(), c.Code).Display()
}

func plain(d decimal.Decimal, commodity string) string {
	if commodity == "" {
		return d.String()
	}
	return d.String() + " " + commodity
}

// FormatDetail displays every non-zero commodity of d in sorted order.
func FormatDetail(d amount.Detail) string {
	var parts []string
	for _, commodity := range d.NonZero() {
		parts = append(parts, FormatAmount(d[commodity], commodity))
	}
	return strings.Join(parts, ", ")
}

// FormatSummary displays the calculated total, prefixed with ≈ when it is
// approximate.
func FormatSummary(s amount.Summary) string {
	out := FormatAmount(s.Calculated, s.Commodity)
	if s.Approximate {
		out = "≈ " + out
	}
	return out
}
