package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgertree/ledgertree/internal/id"
	"github.com/ledgertree/ledgertree/internal/model"
)

// FileName is the journal inside a ledger directory.
const FileName = "journal.csv"

// Service provides business logic for the journal.
type Service struct {
	path     string
	accounts AccountChecker
}

// NewService creates a journal Service for the journal.csv in ledgerDir.
func NewService(ledgerDir string, accounts AccountChecker) *Service {
	return NewFileService(filepath.Join(ledgerDir, FileName), accounts)
}

// NewFileService creates a journal Service for the journal at path.
func NewFileService(path string, accounts AccountChecker) *Service {
	return &Service{path: path, accounts: accounts}
}

// TransferParams holds parameters for moving an amount between two accounts.
type TransferParams struct {
	Date      time.Time
	From      string
	To        string
	Commodity string
	Amount    decimal.Decimal
	Narration string
}

// Transfer records a balanced two-posting transaction (From decreases, To
// increases), validates the new postings, and appends them to the journal.
// Returns the transaction ID.
func (s *Service) Transfer(params TransferParams) (string, error) {
	if !params.Amount.IsPositive() {
		return "", fmt.Errorf("amount must be positive, got %s", params.Amount)
	}

	year := params.Date.Year()
	month := int(params.Date.Month())

	existing, err := s.ReadAll()
	if err != nil {
		return "", err
	}

	txn := id.FormatTxnID(year, month, nextSeq(existing, year, month))
	newPostings := []model.Posting{
		{
			Txn:       txn,
			Date:      params.Date,
			Account:   params.To,
			Commodity: params.Commodity,
			Amount:    params.Amount,
			Narration: params.Narration,
		},
		{
			Txn:       txn,
			Date:      params.Date,
			Account:   params.From,
			Commodity: params.Commodity,
			Amount:    params.Amount.Neg(),
			Narration: params.Narration,
		},
	}

	// Only the new postings can introduce violations the caller is responsible for.
	if verrs := ValidatePostings(newPostings, s.accounts); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return "", fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return "", fmt.Errorf("creating ledger dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return "", fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return "", fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendPostings(f, newPostings); err != nil {
		return "", fmt.Errorf("appending postings: %w", err)
	}

	return txn, nil
}

// ReadAll reads every posting. A missing journal is empty.
func (s *Service) ReadAll() ([]model.Posting, error) {
	return ReadFile(s.path)
}

// Validate checks every posting in the journal.
func (s *Service) Validate() ([]ValidationError, error) {
	postings, err := s.ReadAll()
	if err != nil {
		return nil, err
	}
	return ValidatePostings(postings, s.accounts), nil
}

// NextTxnSeq returns the next available sequence number for a month.
func (s *Service) NextTxnSeq(year, month int) (int, error) {
	postings, err := s.ReadAll()
	if err != nil {
		return 0, err
	}
	return nextSeq(postings, year, month), nil
}

// ReadFile reads postings from a journal file. A missing file is empty.
func ReadFile(path string) ([]model.Posting, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}
	defer f.Close()

	postings, err := ReadPostings(f)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", path, err)
	}
	return postings, nil
}

func nextSeq(postings []model.Posting, year, month int) int {
	maxSeq := 0
	for _, p := range postings {
		y, m, seq, err := id.ParseTxnID(p.Txn)
		if err != nil || y != year || m != month {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1
}
