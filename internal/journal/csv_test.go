package journal

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgertree/ledgertree/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRoundTrip(t *testing.T) {
	postings := []model.Posting{
		{Txn: "2025-01-001", Date: date(2025, 1, 3), Account: "Expenses:Software", Commodity: "USD", Amount: dec("4.00"), Narration: "GitHub, Pro plan"},
		{Txn: "2025-01-001", Date: date(2025, 1, 3), Account: "Assets:Bank:Checking", Commodity: "USD", Amount: dec("-4.00"), Narration: "GitHub, Pro plan"},
	}

	var buf bytes.Buffer
	err := WritePostings(&buf, postings)
	require.NoError(t, err)

	// Verify header is present.
	assert.True(t, strings.HasPrefix(buf.String(), "txn,"))

	got, err := ReadPostings(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	for i := range postings {
		assert.Equal(t, postings[i].Txn, got[i].Txn)
		assert.True(t, postings[i].Date.Equal(got[i].Date))
		assert.Equal(t, postings[i].Account, got[i].Account)
		assert.Equal(t, postings[i].Commodity, got[i].Commodity)
		assert.True(t, postings[i].Amount.Equal(got[i].Amount), "amount mismatch row %d", i)
		assert.Equal(t, postings[i].Narration, got[i].Narration)
	}
}

func TestAppendPostings(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePostings(&buf, nil))
	require.NoError(t, AppendPostings(&buf, []model.Posting{
		{Txn: "2025-02-001", Date: date(2025, 2, 1), Account: "Assets:Cash", Commodity: "EUR", Amount: dec("1")},
	}))

	got, err := ReadPostings(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "EUR", got[0].Commodity)
}

func TestUnmarshalPosting_Errors(t *testing.T) {
	bad := [][]string{
		{"2025-01-001", "2025-01-32", "Assets:Cash", "USD", "1", ""},
		{"2025-01-001", "2025-01-02", "Assets:Cash", "USD", "one", ""},
		{"2025-01-001", "2025-01-02", "Assets:Cash", "", "1", ""},
		{"2025-01-001", "2025-01-02", "Assets:Cash"},
	}
	for _, rec := range bad {
		_, err := UnmarshalPosting(rec)
		assert.Error(t, err, "record: %v", rec)
	}
}

func TestReadPostings_RowNumberInError(t *testing.T) {
	input := Header + "\n2025-01-001,2025-01-02,Assets:Cash,USD,1,\n2025-01-001,2025-01-02,Assets:Bank,USD,x,\n"
	_, err := ReadPostings(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
}

func TestReadTestdata(t *testing.T) {
	f, err := os.Open("../../testdata/ledger/journal.csv")
	require.NoError(t, err)
	defer f.Close()

	postings, err := ReadPostings(f)
	require.NoError(t, err)
	require.NotEmpty(t, postings)
	assert.Empty(t, ValidatePostings(postings, openAccounts(
		"Assets:Bank:Checking", "Assets:Bank:Savings", "Assets:Cash", "Assets:Broker",
		"Liabilities:CreditCard", "Equity:Opening-Balances", "Income:Salary",
		"Expenses:Food:Groceries", "Expenses:Food:Dining", "Expenses:Housing:Rent",
	)))
}
