package journal

import (
	"github.com/ledgertree/ledgertree/internal/amount"
	"github.com/ledgertree/ledgertree/internal/model"
)

// Balances sums postings per account and commodity. The result is keyed by
// account name and holds decimal strings, the shape carried by model.Account.
func Balances(postings []model.Posting) map[string]map[string]string {
	sums := make(map[string]amount.Detail)
	for _, p := range postings {
		d, ok := sums[p.Account]
		if !ok {
			d = amount.Detail{}
			sums[p.Account] = d
		}
		d[p.Commodity] = d[p.Commodity].Add(p.Amount)
	}

	out := make(map[string]map[string]string, len(sums))
	for account, d := range sums {
		balances := make(map[string]string, len(d))
		for commodity, v := range d {
			balances[commodity] = v.String()
		}
		out[account] = balances
	}
	return out
}
