package accounts

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ledgertree/ledgertree/internal/model"
)

// ReadSnapshot decodes the JSON account list served by the ledger backend:
// [{"name": ..., "status": ..., "balances": {"USD": "1.00"}}].
func ReadSnapshot(r io.Reader) ([]model.Account, error) {
	var accounts []model.Account
	if err := json.NewDecoder(r).Decode(&accounts); err != nil {
		return nil, fmt.Errorf("decoding account snapshot: %w", err)
	}
	for i := range accounts {
		status, err := ParseStatus(string(accounts[i].Status))
		if err != nil {
			return nil, fmt.Errorf("account %d (%s): %w", i, accounts[i].Name, err)
		}
		accounts[i].Status = status
	}
	return accounts, nil
}

// WriteSnapshot encodes accounts in the backend's JSON shape.
func WriteSnapshot(w io.Writer, accounts []model.Account) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(accounts); err != nil {
		return fmt.Errorf("encoding account snapshot: %w", err)
	}
	return nil
}
