package accounts

import "github.com/ledgertree/ledgertree/internal/model"

// DefaultChart returns the starter accounts written by init.
func DefaultChart() []model.Account {
	open := model.AccountStatusOpen
	return []model.Account{
		{Name: "Assets:Bank:Checking", Status: open},
		{Name: "Assets:Bank:Savings", Status: open},
		{Name: "Assets:Cash", Status: open},
		{Name: "Liabilities:CreditCard", Status: open},
		{Name: "Equity:Opening-Balances", Status: open},
		{Name: "Income:Salary", Status: open},
		{Name: "Expenses:Food:Groceries", Status: open},
		{Name: "Expenses:Food:Dining", Status: open},
		{Name: "Expenses:Housing:Rent", Status: open},
		{Name: "Expenses:Transport", Status: open},
	}
}
