// Package amount combines per-commodity balances and derives the single
// display total shown next to them.
package amount

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Detail maps a commodity code to an exact amount.
type Detail map[string]decimal.Decimal

// ParseError reports a balance value that is not a decimal number.
type ParseError struct {
	Account   string
	Commodity string
	Value     string
	Err       error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("account %s [%s]: parsing amount %q: %v", e.Account, e.Commodity, e.Value, e.Err)
}

func (e ParseError) Unwrap() error {
	return e.Err
}

// Parse converts an account's raw balances into a Detail. Every value that
// fails to parse yields a ParseError; it is never coerced to zero.
func Parse(account string, balances map[string]string) (Detail, []ParseError) {
	detail := make(Detail, len(balances))
	var errs []ParseError
	for _, commodity := range sortedKeys(balances) {
		raw := balances[commodity]
		d, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			errs = append(errs, ParseError{Account: account, Commodity: commodity, Value: raw, Err: err})
			continue
		}
		detail[commodity] = d
	}
	return detail, errs
}

// Add returns a new Detail holding the per-commodity sum of d and other.
// Commodities missing on one side count as zero.
func (d Detail) Add(other Detail) Detail {
	sum := d.Clone()
	sum.Merge(other)
	return sum
}

// Merge adds other into d in place.
func (d Detail) Merge(other Detail) {
	for commodity, v := range other {
		d[commodity] = d[commodity].Add(v)
	}
}

// Clone returns a copy of d.
func (d Detail) Clone() Detail {
	c := make(Detail, len(d))
	for commodity, v := range d {
		c[commodity] = v
	}
	return c
}

// Get returns the amount for commodity, zero if absent.
func (d Detail) Get(commodity string) decimal.Decimal {
	return d[commodity]
}

// Commodities returns the commodity codes in sorted order.
func (d Detail) Commodities() []string {
	return sortedKeys(d)
}

// NonZero returns the sorted commodity codes whose amount is not zero.
func (d Detail) NonZero() []string {
	var out []string
	for _, commodity := range d.Commodities() {
		if !d[commodity].IsZero() {
			out = append(out, commodity)
		}
	}
	return out
}

// IsZero reports whether every commodity amount is zero.
func (d Detail) IsZero() bool {
	return len(d.NonZero()) == 0
}

// Equal reports whether d and other hold the same amounts, treating absent
// commodities as zero.
func (d Detail) Equal(other Detail) bool {
	for commodity, v := range d {
		if !v.Equal(other[commodity]) {
			return false
		}
	}
	for commodity, v := range other {
		if !v.Equal(d[commodity]) {
			return false
		}
	}
	return true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
