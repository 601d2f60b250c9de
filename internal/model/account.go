package model

// AccountType classifies accounts in the chart of accounts and determines
// the normal balance side: assets and expenses are debit-normal, the rest
// credit-normal.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// DebitNormal reports whether an increase in this account type is recorded
// on the debit side.
func (t AccountType) DebitNormal() bool {
	return t == AccountTypeAsset || t == AccountTypeExpense
}

// Account is a row in chart-of-accounts.csv.
type Account struct {
	ID          int
	Name        string
	Type        AccountType
	Description string
}
