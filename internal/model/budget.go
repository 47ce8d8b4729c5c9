package model

import "github.com/shopspring/decimal"

// BudgetLineItem is one budget row inside a category.
type BudgetLineItem struct {
	Category  string          `json:"category"`
	Name      string          `json:"name"`
	Commodity string          `json:"commodity,omitempty"`
	Assigned  decimal.Decimal `json:"assigned_amount"`
	Activity  decimal.Decimal `json:"activity_amount"`
	Available decimal.Decimal `json:"available_amount"`
}
