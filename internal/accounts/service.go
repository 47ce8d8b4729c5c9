package accounts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ledgertree/ledgertree/internal/model"
)

// FileName is the account list inside a ledger directory.
const FileName = "accounts.csv"

// Service provides in-memory lookup over the account list.
type Service struct {
	accounts []model.Account
	byName   map[string]int
}

// NewService creates a Service from a slice of accounts. A repeated name
// resolves to the last record.
func NewService(accounts []model.Account) *Service {
	byName := make(map[string]int, len(accounts))
	for i, a := range accounts {
		byName[a.Name] = i
	}
	return &Service{accounts: accounts, byName: byName}
}

// Load reads accounts.csv from a ledger directory.
func Load(ledgerDir string) (*Service, error) {
	return LoadFile(filepath.Join(ledgerDir, FileName))
}

// LoadFile reads an accounts CSV file from an explicit path.
func LoadFile(path string) (*Service, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading accounts: %w", err)
	}
	return NewService(accts), nil
}

// All returns all accounts.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by full name.
func (s *Service) Get(name string) (model.Account, bool) {
	i, ok := s.byName[name]
	if !ok {
		return model.Account{}, false
	}
	return s.accounts[i], true
}

// Exists reports whether an account name exists.
func (s *Service) Exists(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// IsOpen reports whether the named account exists and is open.
func (s *Service) IsOpen(name string) bool {
	a, ok := s.Get(name)
	return ok && a.IsOpen()
}

// Open returns the accounts that have not been closed.
func (s *Service) Open() []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.IsOpen() {
			result = append(result, a)
		}
	}
	return result
}

// WithBalances returns a copy of the account list with balances attached
// from a map keyed by account name. Accounts missing from the map get none;
// map entries for accounts not in the list are ignored.
func (s *Service) WithBalances(balances map[string]map[string]string) []model.Account {
	out := make([]model.Account, len(s.accounts))
	for i, a := range s.accounts {
		a.Balances = balances[a.Name]
		out[i] = a
	}
	return out
}

// Save writes the account list to accounts.csv in a ledger directory.
func (s *Service) Save(ledgerDir string) error {
	if err := os.MkdirAll(ledgerDir, 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	path := filepath.Join(ledgerDir, FileName)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing accounts: %w", err)
	}
	return nil
}
