package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_RecordsTransfer(t *testing.T) {
	dir := copyLedger(t)

	out, stderr, err := runLedgertree(t, nil, "add", "--repo", dir,
		"--date", "2025-02-03",
		"--from", "Assets:Bank:Checking",
		"--to", "Expenses:Food:Groceries",
		"--amount", "12.34",
		"--narration", "Bakery")
	require.NoError(t, err, stderr)
	assert.Contains(t, out, "Recorded 2025-02-001")

	data, err := os.ReadFile(filepath.Join(dir, "journal.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "2025-02-001,2025-02-03,Expenses:Food:Groceries,USD,12.34,Bakery")
	assert.Contains(t, string(data), "2025-02-001,2025-02-03,Assets:Bank:Checking,USD,-12.34,Bakery")

	v := treeJSON(t, nil, "--repo", dir, "Assets:Bank:Checking")
	assertDecimal(t, "3187.66", v.Calculated)

	out, _, err = runLedgertree(t, nil, "check", "--repo", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "16 postings")
}

func TestAdd_SequenceContinues(t *testing.T) {
	dir := copyLedger(t)

	out, _, err := runLedgertree(t, nil, "add", "--repo", dir, "--date", "2025-01-20",
		"--from", "Assets:Bank:Checking", "--to", "Assets:Bank:Savings", "--amount", "100", "--commodity", "USD")
	require.NoError(t, err)
	assert.Contains(t, out, "Recorded 2025-01-008")
}

func TestAdd_Rejected(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"closed account", []string{"--from", "Assets:Bank:Checking", "--to", "Liabilities:OldCard", "--amount", "5"}, "is closed"},
		{"unknown account", []string{"--from", "Assets:Bank:Checking", "--to", "Expenses:Travel", "--amount", "5"}, "unknown account"},
		{"negative amount", []string{"--from", "Assets:Bank:Checking", "--to", "Assets:Bank:Savings", "--amount", "-5"}, "must be positive"},
		{"bad amount", []string{"--from", "Assets:Bank:Checking", "--to", "Assets:Bank:Savings", "--amount", "five"}, "invalid amount"},
		{"bad date", []string{"--date", "03/02/2025", "--from", "Assets:Bank:Checking", "--to", "Assets:Bank:Savings", "--amount", "5"}, "invalid date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := copyLedger(t)
			before, err := os.ReadFile(filepath.Join(dir, "journal.csv"))
			require.NoError(t, err)

			args := append([]string{"add", "--repo", dir}, tt.args...)
			_, stderr, err := runLedgertree(t, nil, args...)
			require.Error(t, err)
			assert.Contains(t, stderr, tt.want)

			after, err := os.ReadFile(filepath.Join(dir, "journal.csv"))
			require.NoError(t, err)
			assert.Equal(t, string(before), string(after), "journal must be unchanged")
		})
	}
}
