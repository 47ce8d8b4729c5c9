// Package ledger loads a ledger snapshot and turns it into the aggregated
// account tree and budget summaries.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/ledgertree/ledgertree/internal/accounts"
	"github.com/ledgertree/ledgertree/internal/budget"
	"github.com/ledgertree/ledgertree/internal/config"
	"github.com/ledgertree/ledgertree/internal/journal"
	"github.com/ledgertree/ledgertree/internal/model"
	"github.com/ledgertree/ledgertree/internal/prices"
)

// Snapshot is one immutable read of a ledger.
type Snapshot struct {
	Accounts []model.Account // balances attached
	Postings []model.Posting
	Budget   []model.BudgetLineItem
	Prices   []model.Price

	// Unlisted holds journal balances of accounts missing from the account
	// list. They cannot be placed in the tree.
	Unlisted []UnlistedAccountError

	checker journal.AccountChecker
}

// UnlistedAccountError reports postings to an account that is not in the
// account list.
type UnlistedAccountError struct {
	Account  string
	Balances map[string]string
}

func (e UnlistedAccountError) Error() string {
	return fmt.Sprintf("account %s has postings but is not in the account list", e.Account)
}

// Load reads a ledger directory. The data files are read concurrently; the
// accounts file is required, the others may be absent.
func Load(ctx context.Context, dir string, cfg *config.Config) (*Snapshot, error) {
	var (
		svc      *accounts.Service
		postings []model.Posting
		items    []model.BudgetLineItem
		history  []model.Price
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		svc, err = accounts.LoadFile(filepath.Join(dir, cfg.Files.Accounts))
		return err
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		postings, err = journal.ReadFile(filepath.Join(dir, cfg.Files.Journal))
		return err
	})
	g.Go(func() error {
		var err error
		items, err = readOptional(ctx, filepath.Join(dir, cfg.Files.Budgets), budget.ReadItems)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = readOptional(ctx, filepath.Join(dir, cfg.Files.Prices), prices.ReadPrices)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading ledger %s: %w", dir, err)
	}

	log.Debug("Loaded ledger",
		"dir", dir,
		"accounts", len(svc.All()),
		"postings", len(postings),
		"budget_items", len(items),
		"prices", len(history))

	balances := journal.Balances(postings)
	return &Snapshot{
		Accounts: svc.WithBalances(balances),
		Postings: postings,
		Budget:   items,
		Prices:   history,
		Unlisted: unlisted(svc, balances),
		checker:  svc,
	}, nil
}

// LoadJSON reads an account snapshot in the backend's JSON shape. Balances
// come with the accounts; there are no postings, budgets or prices.
func LoadJSON(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	accts, err := accounts.ReadSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}
	log.Debug("Loaded snapshot", "path", path, "accounts", len(accts))

	return &Snapshot{Accounts: accts, checker: accounts.NewService(accts)}, nil
}

// Validate checks the snapshot's postings against its account list.
func (s *Snapshot) Validate() []journal.ValidationError {
	if len(s.Postings) == 0 {
		return nil
	}
	return journal.ValidatePostings(s.Postings, s.checker)
}

// Budgets returns the budget summaries per category and commodity. Items
// without a commodity are counted in primary.
func (s *Snapshot) Budgets(primary string) []budget.CategorySummary {
	return budget.Aggregate(budget.WithCommodity(s.Budget, primary))
}

// unlisted returns the balances whose account is not in svc, sorted by name.
func unlisted(svc *accounts.Service, balances map[string]map[string]string) []UnlistedAccountError {
	var out []UnlistedAccountError
	for name, b := range balances {
		if !svc.Exists(name) {
			out = append(out, UnlistedAccountError{Account: name, Balances: b})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Account < out[j].Account })
	return out
}

func readOptional[T any](ctx context.Context, path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug("Optional ledger file missing", "path", path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	out, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return out, nil
}
