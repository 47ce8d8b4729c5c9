package journal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransfer_NewJournal(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir, defaultAccounts)

	txn, err := svc.Transfer(TransferParams{
		Date:      date(2025, 1, 15),
		From:      "Assets:Cash",
		To:        "Expenses:Food",
		Commodity: "USD",
		Amount:    dec("4.00"),
		Narration: "Lunch",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-001", txn)

	// Verify file was created.
	_, err = os.Stat(filepath.Join(dir, FileName))
	require.NoError(t, err)

	postings, err := svc.ReadAll()
	require.NoError(t, err)
	require.Len(t, postings, 2)
	assert.Equal(t, "Expenses:Food", postings[0].Account)
	assert.True(t, postings[0].Amount.Equal(dec("4.00")))
	assert.Equal(t, "Assets:Cash", postings[1].Account)
	assert.True(t, postings[1].Amount.Equal(dec("-4.00")))

	verrs, err := svc.Validate()
	require.NoError(t, err)
	assert.Empty(t, verrs)
}

func TestTransfer_Sequence(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir, defaultAccounts)

	params := TransferParams{
		Date:      date(2025, 1, 10),
		From:      "Assets:Cash",
		To:        "Expenses:Food",
		Commodity: "USD",
		Amount:    dec("10.00"),
	}
	first, err := svc.Transfer(params)
	require.NoError(t, err)
	second, err := svc.Transfer(params)
	require.NoError(t, err)

	params.Date = date(2025, 2, 1)
	third, err := svc.Transfer(params)
	require.NoError(t, err)

	assert.Equal(t, "2025-01-001", first)
	assert.Equal(t, "2025-01-002", second)
	assert.Equal(t, "2025-02-001", third)

	seq, err := svc.NextTxnSeq(2025, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, seq)

	postings, err := svc.ReadAll()
	require.NoError(t, err)
	assert.Len(t, postings, 6)
}

func TestTransfer_ValidationFailure(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir, defaultAccounts)

	_, err := svc.Transfer(TransferParams{
		Date:      date(2025, 1, 10),
		From:      "Assets:OldBank",
		To:        "Expenses:Food",
		Commodity: "USD",
		Amount:    dec("1"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed")

	// Nothing was written.
	_, err = os.Stat(filepath.Join(dir, FileName))
	assert.True(t, os.IsNotExist(err))
}

func TestTransfer_NonPositiveAmount(t *testing.T) {
	svc := NewService(t.TempDir(), defaultAccounts)
	for _, amt := range []string{"0", "-5"} {
		_, err := svc.Transfer(TransferParams{
			Date:      date(2025, 1, 10),
			From:      "Assets:Cash",
			To:        "Expenses:Food",
			Commodity: "USD",
			Amount:    dec(amt),
		})
		assert.Error(t, err, "amount %s", amt)
	}
}

func TestReadAll_Missing(t *testing.T) {
	svc := NewService(t.TempDir(), defaultAccounts)
	postings, err := svc.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, postings)

	seq, err := svc.NextTxnSeq(2025, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, seq)
}
