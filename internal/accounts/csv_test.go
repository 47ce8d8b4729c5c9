package accounts

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgertree/ledgertree/internal/model"
)

func TestRoundTrip(t *testing.T) {
	accounts := []model.Account{
		{Name: "Assets:Bank:Checking", Status: model.AccountStatusOpen},
		{Name: "Liabilities:OldCard", Status: model.AccountStatusClose},
	}

	var buf bytes.Buffer
	err := WriteAccounts(&buf, accounts)
	require.NoError(t, err)

	got, err := ReadAccounts(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, accounts[0].Name, got[0].Name)
	assert.Equal(t, accounts[0].Status, got[0].Status)
	assert.Equal(t, accounts[1].Name, got[1].Name)
	assert.Equal(t, model.AccountStatusClose, got[1].Status)
}

func TestEmptyStatusIsOpen(t *testing.T) {
	got, err := ReadAccounts(strings.NewReader("account,status\nAssets:Cash,\n"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.AccountStatusOpen, got[0].Status)
}

func TestInvalidStatus(t *testing.T) {
	_, err := ReadAccounts(strings.NewReader("account,status\nAssets:Cash,Archived\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "Archived")
}

func TestWrongFieldCount(t *testing.T) {
	_, err := ReadAccounts(strings.NewReader("account,status\nAssets:Cash,Open,extra\n"))
	assert.Error(t, err)
}

func TestReadEmpty(t *testing.T) {
	got, err := ReadAccounts(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDefaultChartRoundTrip(t *testing.T) {
	chart := DefaultChart()
	require.NotEmpty(t, chart)

	var buf bytes.Buffer
	err := WriteAccounts(&buf, chart)
	require.NoError(t, err)

	got, err := ReadAccounts(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(chart))

	for i := range chart {
		assert.Equal(t, chart[i].Name, got[i].Name)
		assert.Equal(t, chart[i].Status, got[i].Status)
	}
}

func TestReadTestdata(t *testing.T) {
	f, err := os.Open("../../testdata/ledger/accounts.csv")
	require.NoError(t, err)
	defer f.Close()

	accounts, err := ReadAccounts(f)
	require.NoError(t, err)
	require.Len(t, accounts, 10)

	closed := 0
	for _, a := range accounts {
		if !a.IsOpen() {
			closed++
		}
	}
	assert.Equal(t, 1, closed)
}

func TestSnapshotRoundTrip(t *testing.T) {
	accounts := []model.Account{
		{Name: "Assets:Bank", Status: model.AccountStatusOpen, Balances: map[string]string{"USD": "100.00", "EUR": "5"}},
		{Name: "Expenses:Food", Status: model.AccountStatusClose},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, accounts))

	got, err := ReadSnapshot(&buf)
	require.NoError(t, err)
	assert.Equal(t, accounts, got)
}

func TestReadSnapshot_Testdata(t *testing.T) {
	f, err := os.Open("../../testdata/snapshot.json")
	require.NoError(t, err)
	defer f.Close()

	accounts, err := ReadSnapshot(f)
	require.NoError(t, err)
	require.NotEmpty(t, accounts)
	assert.Equal(t, "100.00", accounts[0].Balances["USD"])
}

func TestReadSnapshot_Errors(t *testing.T) {
	_, err := ReadSnapshot(strings.NewReader(`{"name": "not a list"}`))
	assert.Error(t, err)

	_, err = ReadSnapshot(strings.NewReader(`[{"name": "Assets", "status": "Frozen"}]`))
	assert.Error(t, err)
}
