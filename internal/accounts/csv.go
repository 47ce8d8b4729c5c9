package accounts

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ledgertree/ledgertree/internal/model"
)

// Header is the CSV header for accounts.csv.
const Header = "account,status"

const (
	numFields = 2
	colName   = 0
	colStatus = 1
)

// ReadAccounts reads accounts.csv.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes accounts.csv.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"account", "status"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row. Balances are not part of
// accounts.csv; they come from the journal.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colName] = acct.Name
	row[colStatus] = string(acct.Status)
	return row
}

// UnmarshalAccount converts a CSV row to an Account. An empty status means Open.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	status, err := ParseStatus(record[colStatus])
	if err != nil {
		return model.Account{}, err
	}

	return model.Account{
		Name:   record[colName],
		Status: status,
	}, nil
}

// ParseStatus validates an account status. The empty string is Open.
func ParseStatus(s string) (model.AccountStatus, error) {
	switch model.AccountStatus(s) {
	case "", model.AccountStatusOpen:
		return model.AccountStatusOpen, nil
	case model.AccountStatusClose:
		return model.AccountStatusClose, nil
	default:
		return "", fmt.Errorf("invalid account status %q", s)
	}
}
