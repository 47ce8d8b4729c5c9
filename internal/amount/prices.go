package amount

import (
	"github.com/shopspring/decimal"

	"github.com/ledgertree/ledgertree/internal/model"
)

type pair struct {
	from, to string
}

// PriceTable answers "what is one unit of X worth in Y" from the latest
// known price of each commodity pair.
type PriceTable struct {
	latest map[pair]model.Price
}

// NewPriceTable indexes prices by pair. The newest date wins; on equal dates
// the later entry wins.
func NewPriceTable(prices []model.Price) *PriceTable {
	t := &PriceTable{latest: make(map[pair]model.Price, len(prices))}
	for _, p := range prices {
		key := pair{p.Commodity, p.Target}
		if cur, ok := t.latest[key]; ok && p.Date.Before(cur.Date) {
			continue
		}
		t.latest[key] = p
	}
	return t
}

// Len returns the number of commodity pairs with a price.
func (t *PriceTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.latest)
}

// Latest returns the newest price quoting from in to.
func (t *PriceTable) Latest(from, to string) (model.Price, bool) {
	if t == nil {
		return model.Price{}, false
	}
	p, ok := t.latest[pair{from, to}]
	return p, ok
}

// Rate returns how many units of to one unit of from is worth. A direct
// quote is preferred; the inverse of a reverse quote is used otherwise.
func (t *PriceTable) Rate(from, to string) (decimal.Decimal, bool) {
	if from == to {
		return decimal.NewFromInt(1), true
	}
	if p, ok := t.Latest(from, to); ok {
		return p.Amount, true
	}
	if p, ok := t.Latest(to, from); ok && !p.Amount.IsZero() {
		return decimal.NewFromInt(1).Div(p.Amount), true
	}
	return decimal.Zero, false
}

// Convert expresses amt of from in to.
func (t *PriceTable) Convert(amt decimal.Decimal, from, to string) (decimal.Decimal, bool) {
	rate, ok := t.Rate(from, to)
	if !ok {
		return decimal.Zero, false
	}
	return amt.Mul(rate), true
}
