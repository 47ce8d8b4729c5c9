package ledger

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/ledgertree/ledgertree/internal/amount"
	"github.com/ledgertree/ledgertree/internal/model"
	"github.com/ledgertree/ledgertree/internal/trie"
)

// TreeOptions controls how the account tree is built.
type TreeOptions struct {
	Primary    string // commodity for the calculated total
	HideClosed bool
	HideZero   bool
}

// Problems collects the per-record failures of one tree build.
type Problems struct {
	Invalid  []trie.InvalidInputError
	Parse    []amount.ParseError
	Unlisted []UnlistedAccountError
}

// Len returns the number of problems.
func (p Problems) Len() int {
	return len(p.Invalid) + len(p.Parse) + len(p.Unlisted)
}

// Errors returns every problem as an error: invalid names, then bad
// balances, then unlisted accounts.
func (p Problems) Errors() []error {
	errs := make([]error, 0, p.Len())
	for _, e := range p.Invalid {
		errs = append(errs, e)
	}
	for _, e := range p.Parse {
		errs = append(errs, e)
	}
	for _, e := range p.Unlisted {
		errs = append(errs, e)
	}
	return errs
}

// Err joins all problems into one error, or returns nil.
func (p Problems) Err() error {
	return errors.Join(p.Errors()...)
}

// Policy returns the calculated-total policy for primary, folding in the
// snapshot's prices when it has any.
func (s *Snapshot) Policy(primary string) amount.Policy {
	policy := amount.Policy{Primary: primary}
	if len(s.Prices) > 0 {
		policy.Prices = amount.NewPriceTable(s.Prices)
	}
	return policy
}

// Tree builds and aggregates the account tree. Malformed records are
// skipped and returned as problems; the rest of the tree is complete.
// Problem indexes refer to s.Accounts.
func (s *Snapshot) Tree(opts TreeOptions) (*trie.Node, Problems) {
	accts := s.Accounts
	var source []int // source[i] is the index in s.Accounts of accts[i]
	if opts.HideClosed {
		accts = make([]model.Account, 0, len(s.Accounts))
		for i, a := range s.Accounts {
			if a.IsOpen() {
				accts = append(accts, a)
				source = append(source, i)
			}
		}
	}

	var problems Problems
	root, invalid := trie.Build(accts)
	if source != nil {
		for i := range invalid {
			invalid[i].Index = source[invalid[i].Index]
		}
	}
	problems.Invalid = invalid
	problems.Parse = trie.Aggregate(root, s.Policy(opts.Primary))
	problems.Unlisted = s.Unlisted

	for _, e := range problems.Invalid {
		log.Warn("Skipping account", "index", e.Index, "name", e.Name, "error", e.Err)
	}
	for _, e := range problems.Parse {
		log.Warn("Skipping balance", "account", e.Account, "commodity", e.Commodity, "value", e.Value)
	}
	for _, e := range problems.Unlisted {
		log.Warn("Skipping postings to unlisted account", "account", e.Account)
	}

	if opts.HideZero {
		root.Prune(func(n *trie.Node) bool { return !n.Amount.Detail.IsZero() })
	}
	return root, problems
}
