// Package report builds the three classical financial statements from a
// books snapshot: trial balance, balance sheet, and profit-and-loss. All
// builders are pure folds over the inputs; an out-of-balance result is a
// value the caller displays, never an error.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/tillbook-dev/tillbook/internal/accounts"
	"github.com/tillbook-dev/tillbook/internal/model"
)

// Inputs is the full snapshot the aggregators read. The builders never
// mutate it.
type Inputs struct {
	Products     []model.Product
	Sales        []model.Sale
	Expenses     []model.Expense
	Customers    []model.Party
	Suppliers    []model.Party
	BankAccounts []model.BankAccount
	Vouchers     []model.Voucher
	Assets       []model.Asset
	Journal      []model.JournalLine
	Accounts     *accounts.Service
}

// cash is voucher receipts minus voucher payments.
func (in Inputs) cash() decimal.Decimal {
	total := decimal.Zero
	for _, v := range in.Vouchers {
		switch v.Type {
		case model.VoucherReceipt:
			total = total.Add(v.Amount)
		case model.VoucherPayment:
			total = total.Sub(v.Amount)
		}
	}
	return total
}

// splitBalances sums positive balances into owed and negated negative
// balances into advances. A customer balance below zero is money we hold for
// them; a supplier balance below zero is money they hold for us.
func splitBalances(parties []model.Party) (owed, advances decimal.Decimal) {
	owed, advances = decimal.Zero, decimal.Zero
	for _, p := range parties {
		if p.Balance.IsPositive() {
			owed = owed.Add(p.Balance)
		} else if p.Balance.IsNegative() {
			advances = advances.Add(p.Balance.Neg())
		}
	}
	return owed, advances
}

// inventoryValue values stock at cost, not sale price.
func (in Inputs) inventoryValue() decimal.Decimal {
	total := decimal.Zero
	for _, p := range in.Products {
		total = total.Add(p.Stock.Mul(p.CostPrice))
	}
	return total
}

func (in Inputs) bankTotal() decimal.Decimal {
	total := decimal.Zero
	for _, b := range in.BankAccounts {
		total = total.Add(b.Balance)
	}
	return total
}

// journalNet returns net (credit - debit) postings to accounts of the given
// type. Manual journal entries are the only source of contributed capital
// and the only way adjustments enter the statements.
func (in Inputs) journalNet(accountType model.AccountType) decimal.Decimal {
	total := decimal.Zero
	if in.Accounts == nil {
		return total
	}
	for _, l := range in.Journal {
		acct, ok := in.Accounts.Get(l.AccountID)
		if !ok || acct.Type != accountType {
			continue
		}
		total = total.Add(l.Credit).Sub(l.Debit)
	}
	return total
}

var oneHundred = decimal.NewFromInt(100)

// pct returns part/whole as a percentage, and 0 when the denominator is
// zero so an empty period never renders NaN.
func pct(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(oneHundred)
}
