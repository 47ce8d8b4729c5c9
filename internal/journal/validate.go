package journal

import (
	"fmt"

	"github.com/ledgertree/ledgertree/internal/amount"
	"github.com/ledgertree/ledgertree/internal/id"
	"github.com/ledgertree/ledgertree/internal/model"
	"github.com/ledgertree/ledgertree/internal/trie"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	Txn         string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.Txn, e.Description)
}

// AccountChecker tests account names against the account list.
type AccountChecker interface {
	Exists(name string) bool
	IsOpen(name string) bool
}

// ValidatePostings enforces 6 invariants on a set of postings. Every
// violation is collected; validation never stops early.
func ValidatePostings(postings []model.Posting, accounts AccountChecker) []ValidationError {
	var errs []ValidationError

	// Group postings by transaction.
	groups := make(map[string]amount.Detail)
	var groupOrder []string
	for _, p := range postings {
		d, seen := groups[p.Txn]
		if !seen {
			d = amount.Detail{}
			groups[p.Txn] = d
			groupOrder = append(groupOrder, p.Txn)
		}
		d[p.Commodity] = d[p.Commodity].Add(p.Amount)
	}

	// Invariant 1: Every transaction balances per commodity.
	for _, txn := range groupOrder {
		for _, commodity := range groups[txn].NonZero() {
			errs = append(errs, ValidationError{
				Invariant:   1,
				Txn:         txn,
				Description: fmt.Sprintf("%s postings sum to %s, not zero", commodity, groups[txn][commodity]),
			})
		}
	}

	for _, p := range postings {
		// Invariant 2: Well-formed account name.
		if _, err := trie.Split(p.Account); err != nil {
			errs = append(errs, ValidationError{
				Invariant:   2,
				Txn:         p.Txn,
				Description: fmt.Sprintf("account %q: %v", p.Account, err),
			})
			continue
		}

		// Invariant 3: Known account.
		if !accounts.Exists(p.Account) {
			errs = append(errs, ValidationError{
				Invariant:   3,
				Txn:         p.Txn,
				Description: fmt.Sprintf("unknown account %s", p.Account),
			})
		} else if !accounts.IsOpen(p.Account) {
			// Invariant 4: No postings to closed accounts.
			errs = append(errs, ValidationError{
				Invariant:   4,
				Txn:         p.Txn,
				Description: fmt.Sprintf("account %s is closed", p.Account),
			})
		}

		// Invariant 5: Non-zero amount.
		if p.Amount.IsZero() {
			errs = append(errs, ValidationError{
				Invariant:   5,
				Txn:         p.Txn,
				Description: fmt.Sprintf("zero amount posted to %s", p.Account),
			})
		}
	}

	// Invariant 6: Transaction IDs parse and match the posting date's month.
	for _, p := range postings {
		year, month, _, err := id.ParseTxnID(p.Txn)
		if err != nil {
			errs = append(errs, ValidationError{
				Invariant:   6,
				Txn:         p.Txn,
				Description: fmt.Sprintf("invalid transaction ID: %v", err),
			})
			continue
		}
		if p.Date.Year() != year || int(p.Date.Month()) != month {
			errs = append(errs, ValidationError{
				Invariant:   6,
				Txn:         p.Txn,
				Description: fmt.Sprintf("date %s not in %04d-%02d", p.Date.Format(dateFormat), year, month),
			})
		}
	}

	return errs
}
