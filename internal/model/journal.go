package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Posting is a single row in journal.csv: one amount moved into or out of
// an account. Postings sharing a Txn form one transaction.
type Posting struct {
	Txn       string // "YYYY-MM-NNN"
	Date      time.Time
	Account   string
	Commodity string
	Amount    decimal.Decimal // negative = out of the account
	Narration string
}
