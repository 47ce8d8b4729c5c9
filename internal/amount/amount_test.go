package amount

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParse(t *testing.T) {
	detail, errs := Parse("Assets:Bank", map[string]string{"USD": "100.00", "EUR": " 5.5 "})
	require.Empty(t, errs)
	assert.True(t, dec("100").Equal(detail["USD"]))
	assert.True(t, dec("5.5").Equal(detail["EUR"]))
}

func TestParse_Errors(t *testing.T) {
	detail, errs := Parse("Assets:Bank", map[string]string{"USD": "1O0", "EUR": "", "JPY": "7"})
	require.Len(t, errs, 2)

	// Errors come out in commodity order.
	assert.Equal(t, "EUR", errs[0].Commodity)
	assert.Equal(t, "USD", errs[1].Commodity)
	assert.Equal(t, "Assets:Bank", errs[1].Account)
	assert.Equal(t, "1O0", errs[1].Value)
	assert.Contains(t, errs[1].Error(), "Assets:Bank")
	assert.Contains(t, errs[1].Error(), "USD")

	var pe ParseError
	require.True(t, errors.As(errs[0], &pe))
	assert.NotNil(t, errors.Unwrap(pe))

	assert.Len(t, detail, 1)
	assert.True(t, dec("7").Equal(detail["JPY"]))
}

func TestDetailAdd(t *testing.T) {
	a := Detail{"USD": dec("10.00"), "EUR": dec("5.00")}
	b := Detail{"USD": dec("2.50"), "GBP": dec("1")}

	sum := a.Add(b)
	assert.True(t, dec("12.50").Equal(sum["USD"]))
	assert.True(t, dec("5").Equal(sum["EUR"]))
	assert.True(t, dec("1").Equal(sum["GBP"]))

	// Inputs are untouched.
	assert.True(t, dec("10").Equal(a["USD"]))
	assert.Len(t, a, 2)
}

func TestDetailAdd_NoFloatDrift(t *testing.T) {
	sum := Detail{}
	for range 1000 {
		sum.Merge(Detail{"USD": dec("0.1")})
	}
	assert.Equal(t, "100.00", sum["USD"].StringFixed(2))
	assert.True(t, dec("100").Equal(sum["USD"]))
}

func TestDetailNonZeroAndEqual(t *testing.T) {
	d := Detail{"USD": dec("0"), "EUR": dec("3"), "CHF": dec("-1")}
	assert.Equal(t, []string{"CHF", "EUR"}, d.NonZero())
	assert.Equal(t, []string{"CHF", "EUR", "USD"}, d.Commodities())
	assert.False(t, d.IsZero())
	assert.True(t, Detail{"USD": dec("0")}.IsZero())

	assert.True(t, d.Equal(Detail{"EUR": dec("3.00"), "CHF": dec("-1")}))
	assert.False(t, d.Equal(Detail{"EUR": dec("3")}))
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name        string
		detail      Detail
		policy      Policy
		commodity   string
		calculated  string
		approximate bool
	}{
		{
			name:       "single commodity",
			detail:     Detail{"USD": dec("150.00")},
			commodity:  "USD",
			calculated: "150",
		},
		{
			name:       "single non-zero among zeros",
			detail:     Detail{"USD": dec("0"), "EUR": dec("4")},
			policy:     Policy{Primary: "USD"},
			commodity:  "EUR",
			calculated: "4",
		},
		{
			name:       "empty uses primary",
			detail:     Detail{},
			policy:     Policy{Primary: "CNY"},
			commodity:  "CNY",
			calculated: "0",
		},
		{
			name:       "all zero falls back to first sorted",
			detail:     Detail{"USD": dec("0"), "EUR": dec("0")},
			commodity:  "EUR",
			calculated: "0",
		},
		{
			name:        "several commodities without primary",
			detail:      Detail{"USD": dec("10"), "EUR": dec("5")},
			commodity:   "EUR",
			calculated:  "5",
			approximate: true,
		},
		{
			name:        "several commodities with primary",
			detail:      Detail{"USD": dec("10"), "EUR": dec("5")},
			policy:      Policy{Primary: "USD"},
			commodity:   "USD",
			calculated:  "10",
			approximate: true,
		},
		{
			name:        "primary absent from detail",
			detail:      Detail{"USD": dec("10"), "EUR": dec("5")},
			policy:      Policy{Primary: "JPY"},
			commodity:   "JPY",
			calculated:  "0",
			approximate: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(tt.detail, tt.policy)
			assert.Equal(t, tt.commodity, s.Commodity)
			assert.True(t, dec(tt.calculated).Equal(s.Calculated), "calculated = %s", s.Calculated)
			assert.Equal(t, tt.approximate, s.Approximate)
		})
	}
}

func TestSummarize_NilDetail(t *testing.T) {
	s := Summarize(nil, Policy{})
	assert.NotNil(t, s.Detail)
	assert.Empty(t, s.Commodity)
	assert.True(t, s.Calculated.IsZero())
}
