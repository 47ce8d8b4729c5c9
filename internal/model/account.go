package model

// AccountStatus is the lifecycle state of an account.
type AccountStatus string

const (
	AccountStatusOpen  AccountStatus = "Open"
	AccountStatusClose AccountStatus = "Close"
)

// AccountSeparator separates the segments of a hierarchical account name.
const AccountSeparator = ":"

// Account is one ledger bucket as delivered by the data source.
//
// Balances map a commodity code to a decimal string. They stay unparsed
// here so the aggregator can name the account and commodity of a bad value.
type Account struct {
	Name     string            `json:"name"`
	Status   AccountStatus     `json:"status"`
	Balances map[string]string `json:"balances,omitempty"`
}

// IsOpen reports whether the account has not been closed.
func (a Account) IsOpen() bool {
	return a.Status != AccountStatusClose
}
