package accounts

import "github.com/tillbook-dev/tillbook/internal/model"

// DefaultChart returns the standard chart of accounts for a retail or
// wholesale shop. These IDs are referenced by manual journal entries; the
// operational ledgers (parties, vouchers, inventory) carry their own state.
func DefaultChart() []model.Account {
	return []model.Account{
		{ID: 1010, Name: "Cash", Type: model.AccountTypeAsset, Description: "Cash drawer and till"},
		{ID: 1020, Name: "Bank", Type: model.AccountTypeAsset, Description: "Bank current accounts"},
		{ID: 1110, Name: "Accounts Receivable", Type: model.AccountTypeAsset, Description: "Customer balances"},
		{ID: 1120, Name: "Supplier Advances", Type: model.AccountTypeAsset, Description: "Prepayments held by suppliers"},
		{ID: 1210, Name: "Inventory", Type: model.AccountTypeAsset, Description: "Stock on hand at cost"},
		{ID: 1510, Name: "Fixed Assets", Type: model.AccountTypeAsset, Description: "Equipment and fittings at cost"},
		{ID: 1520, Name: "Accumulated Depreciation", Type: model.AccountTypeAsset, Description: "Contra asset"},
		{ID: 2010, Name: "Accounts Payable", Type: model.AccountTypeLiability, Description: "Supplier balances"},
		{ID: 2020, Name: "Customer Advances", Type: model.AccountTypeLiability, Description: "Deposits held for customers"},
		{ID: 3010, Name: "Owner's Capital", Type: model.AccountTypeEquity, Description: "Contributed capital"},
		{ID: 3020, Name: "Owner's Drawings", Type: model.AccountTypeEquity, Description: "Withdrawals by the owner"},
		{ID: 4010, Name: "Sales", Type: model.AccountTypeRevenue, Description: "Merchandise sales"},
		{ID: 5010, Name: "Cost of Goods Sold", Type: model.AccountTypeExpense, Description: "Cost of merchandise sold"},
		{ID: 5110, Name: "Rent", Type: model.AccountTypeExpense},
		{ID: 5120, Name: "Salaries", Type: model.AccountTypeExpense},
		{ID: 5130, Name: "Utilities", Type: model.AccountTypeExpense},
		{ID: 5190, Name: "Other Expenses", Type: model.AccountTypeExpense},
	}
}
