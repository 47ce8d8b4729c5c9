package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price says one unit of Commodity cost Amount units of Target on Date.
type Price struct {
	Date      time.Time
	Commodity string
	Amount    decimal.Decimal
	Target    string
}
