package amount

import "github.com/shopspring/decimal"

// Summary is the aggregated amount carried by a tree node.
type Summary struct {
	Detail      Detail          `json:"detail"`
	Calculated  decimal.Decimal `json:"calculated"`
	Commodity   string          `json:"commodity"`
	Approximate bool            `json:"approximate"`
}

// Policy decides which commodity the calculated total is expressed in.
type Policy struct {
	// Primary is used whenever more than one commodity is present. Empty
	// means the first non-zero commodity in sorted order.
	Primary string
	// Prices, when set, folds the other commodities into the calculated
	// total at their latest price.
	Prices *PriceTable
}

// Summarize derives the calculated total for detail.
//
// With a single non-zero commodity the total is exact. With several the
// summary is marked approximate.
func Summarize(detail Detail, policy Policy) Summary {
	if detail == nil {
		detail = Detail{}
	}
	s := Summary{Detail: detail, Calculated: decimal.Zero}

	nonZero := detail.NonZero()
	switch len(nonZero) {
	case 0:
		s.Commodity = policy.Primary
		if s.Commodity == "" {
			if all := detail.Commodities(); len(all) > 0 {
				s.Commodity = all[0]
			}
		}
	case 1:
		s.Commodity = nonZero[0]
		s.Calculated = detail[nonZero[0]]
	default:
		s.Approximate = true
		s.Commodity = policy.Primary
		if s.Commodity == "" {
			s.Commodity = nonZero[0]
		}
		s.Calculated = detail.Get(s.Commodity)
		if policy.Prices == nil {
			break
		}
		for _, commodity := range nonZero {
			if commodity == s.Commodity {
				continue
			}
			if converted, ok := policy.Prices.Convert(detail[commodity], commodity, s.Commodity); ok {
				s.Calculated = s.Calculated.Add(converted)
			}
		}
	}
	return s
}
