package report

import (
	"github.com/shopspring/decimal"

	"github.com/tillbook-dev/tillbook/internal/depreciation"
	"github.com/tillbook-dev/tillbook/internal/model"
)

// TrialRow is one account line. Exactly one of Debit/Credit is nonzero
// unless the amount itself is zero.
type TrialRow struct {
	Account string
	Type    model.AccountType
	Debit   decimal.Decimal
	Credit  decimal.Decimal
}

// TrialBalance lists every logical account with its balance on the normal
// side. TotalDebit and TotalCredit should agree; when they do not, the
// caller shows the difference as a warning, not an error.
type TrialBalance struct {
	AsOf        model.Date
	Rows        []TrialRow
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// Balanced reports whether debits equal credits within epsilon.
func (tb TrialBalance) Balanced(epsilon decimal.Decimal) bool {
	return tb.TotalDebit.Sub(tb.TotalCredit).Abs().LessThanOrEqual(epsilon)
}

// Difference returns TotalDebit - TotalCredit.
func (tb TrialBalance) Difference() decimal.Decimal {
	return tb.TotalDebit.Sub(tb.TotalCredit)
}

// BuildTrialBalance enumerates one row per logical account, placing each
// amount on the account type's normal side. A negative amount flips to the
// opposite column rather than rendering a negative figure.
func BuildTrialBalance(in Inputs, asOf model.Date) TrialBalance {
	tb := TrialBalance{
		AsOf:        asOf,
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	receivables, customerAdvances := splitBalances(in.Customers)
	payables, supplierAdvances := splitBalances(in.Suppliers)

	assetCost := decimal.Zero
	accumulated := decimal.Zero
	for _, a := range in.Assets {
		assetCost = assetCost.Add(a.PurchaseValue)
		accumulated = accumulated.Add(depreciation.Accumulated(a, asOf))
	}

	pl := BuildProfitAndLoss(in)

	tb.add("Cash", model.AccountTypeAsset, in.cash())
	for _, b := range in.BankAccounts {
		tb.add(b.Name, model.AccountTypeAsset, b.Balance)
	}
	tb.add("Accounts Receivable", model.AccountTypeAsset, receivables)
	tb.add("Supplier Advances", model.AccountTypeAsset, supplierAdvances)
	tb.add("Inventory", model.AccountTypeAsset, in.inventoryValue())
	tb.add("Fixed Assets", model.AccountTypeAsset, assetCost)
	tb.add("Accumulated Depreciation", model.AccountTypeAsset, accumulated.Neg())
	tb.add("Accounts Payable", model.AccountTypeLiability, payables)
	tb.add("Customer Advances", model.AccountTypeLiability, customerAdvances)
	tb.add("Sales", model.AccountTypeRevenue, pl.TotalSales)
	tb.add("Cost of Goods Sold", model.AccountTypeExpense, pl.COGS)
	tb.add("Operating Expenses", model.AccountTypeExpense, pl.Expenses.Add(pl.OtherPayments))

	// Manual journal entries surface as one row per posted account. Each
	// entry balances, so these rows never tip the totals.
	for _, row := range journalRows(in) {
		tb.add(row.Account, row.Type, row.net)
	}

	return tb
}

type journalRow struct {
	Account string
	Type    model.AccountType
	net     decimal.Decimal // debit - credit for debit-normal, flipped otherwise
}

// journalRows groups journal lines by account, in chart order.
func journalRows(in Inputs) []journalRow {
	if in.Accounts == nil {
		return nil
	}
	touched := make(map[int]decimal.Decimal)
	for _, l := range in.Journal {
		touched[l.AccountID] = touched[l.AccountID].Add(l.Debit).Sub(l.Credit)
	}

	var rows []journalRow
	for _, acct := range in.Accounts.All() {
		net, ok := touched[acct.ID]
		if !ok {
			continue
		}
		// add() places positive amounts on the normal side; express the
		// net debit in normal-side terms.
		if !acct.Type.DebitNormal() {
			net = net.Neg()
		}
		rows = append(rows, journalRow{Account: acct.Name + " (journal)", Type: acct.Type, net: net})
	}
	return rows
}

// add appends a row with amount on the account's normal side, flipping the
// column when the amount is negative.
func (tb *TrialBalance) add(name string, accountType model.AccountType, amount decimal.Decimal) {
	row := TrialRow{
		Account: name,
		Type:    accountType,
		Debit:   decimal.Zero,
		Credit:  decimal.Zero,
	}

	debitSide := accountType.DebitNormal()
	if amount.IsNegative() {
		debitSide = !debitSide
		amount = amount.Neg()
	}

	if debitSide {
		row.Debit = amount
		tb.TotalDebit = tb.TotalDebit.Add(amount)
	} else {
		row.Credit = amount
		tb.TotalCredit = tb.TotalCredit.Add(amount)
	}
	tb.Rows = append(tb.Rows, row)
}
