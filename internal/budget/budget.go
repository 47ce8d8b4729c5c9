// Package budget sums budget line items per category.
package budget

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ledgertree/ledgertree/internal/model"
)

var hundred = decimal.NewFromInt(100)

// CategorySummary holds the summed amounts of one budget category in one
// commodity.
type CategorySummary struct {
	Category   string                 `json:"category"`
	Commodity  string                 `json:"commodity,omitempty"`
	Items      []model.BudgetLineItem `json:"items"`
	Assigned   decimal.Decimal        `json:"assigned_amount"`
	Activity   decimal.Decimal        `json:"activity_amount"`
	Available  decimal.Decimal        `json:"available_amount"`
	Percentage decimal.Decimal        `json:"percentage"`
}

type groupKey struct {
	category, commodity string
}

// Aggregate groups items by category and commodity and sums assigned,
// activity and available independently. Amounts in different commodities
// are never added: a category holding several commodities yields one
// summary per commodity. Summaries are sorted by category, then commodity;
// items keep their input order.
func Aggregate(items []model.BudgetLineItem) []CategorySummary {
	groups := make(map[groupKey]*CategorySummary)
	for _, item := range items {
		key := groupKey{item.Category, item.Commodity}
		s, ok := groups[key]
		if !ok {
			s = &CategorySummary{Category: item.Category, Commodity: item.Commodity}
			groups[key] = s
		}
		s.Items = append(s.Items, item)
		s.add(item.Assigned, item.Activity, item.Available)
	}

	out := make([]CategorySummary, 0, len(groups))
	for _, s := range groups {
		s.Percentage = Percentage(s.Activity, s.Assigned)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Commodity < out[j].Commodity
	})
	return out
}

// Totals sums the summaries per commodity. Each total has an empty
// category name; totals are sorted by commodity.
func Totals(summaries []CategorySummary) []CategorySummary {
	byCommodity := make(map[string]*CategorySummary)
	for _, s := range summaries {
		total, ok := byCommodity[s.Commodity]
		if !ok {
			total = &CategorySummary{Commodity: s.Commodity}
			byCommodity[s.Commodity] = total
		}
		total.add(s.Assigned, s.Activity, s.Available)
	}

	out := make([]CategorySummary, 0, len(byCommodity))
	for _, total := range byCommodity {
		total.Percentage = Percentage(total.Activity, total.Assigned)
		out = append(out, *total)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Commodity < out[j].Commodity
	})
	return out
}

// WithCommodity returns a copy of items where a missing commodity is set
// to commodity.
func WithCommodity(items []model.BudgetLineItem, commodity string) []model.BudgetLineItem {
	out := make([]model.BudgetLineItem, len(items))
	for i, item := range items {
		if item.Commodity == "" {
			item.Commodity = commodity
		}
		out[i] = item
	}
	return out
}

func (s *CategorySummary) add(assigned, activity, available decimal.Decimal) {
	s.Assigned = s.Assigned.Add(assigned)
	s.Activity = s.Activity.Add(activity)
	s.Available = s.Available.Add(available)
}

// Percentage returns min(activity / assigned * 100, 100). A zero assigned
// amount yields zero.
func Percentage(activity, assigned decimal.Decimal) decimal.Decimal {
	if assigned.IsZero() {
		return decimal.Zero
	}
	pct := activity.Mul(hundred).Div(assigned)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}
