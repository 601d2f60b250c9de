package report

import (
	"github.com/shopspring/decimal"

	"github.com/tillbook-dev/tillbook/internal/depreciation"
	"github.com/tillbook-dev/tillbook/internal/model"
)

// BalanceSheet is the statement of financial position. Equity is the
// residual assets - liabilities; DerivedEquity re-derives the same figure
// from contributed capital plus retained earnings so the balance check
// compares two independent numbers instead of a quantity with itself.
type BalanceSheet struct {
	AsOf model.Date

	Cash                    decimal.Decimal
	BankBalances            decimal.Decimal
	Receivables             decimal.Decimal
	SupplierAdvances        decimal.Decimal
	Inventory               decimal.Decimal
	FixedAssetCost          decimal.Decimal
	AccumulatedDepreciation decimal.Decimal
	NetFixedAssets          decimal.Decimal
	TotalAssets             decimal.Decimal

	// Journal adjustments are manual postings to asset and liability
	// accounts; without them a balanced capital entry (debit cash, credit
	// capital) would show up as a spurious variance.
	AssetAdjustments decimal.Decimal

	Payables             decimal.Decimal
	CustomerAdvances     decimal.Decimal
	LiabilityAdjustments decimal.Decimal
	TotalLiabilities     decimal.Decimal

	Equity             decimal.Decimal // residual: assets - liabilities
	ContributedCapital decimal.Decimal // equity-account journal postings
	RetainedEarnings   decimal.Decimal // all-time net profit
	DerivedEquity      decimal.Decimal
	Variance           decimal.Decimal // assets - (liabilities + derived equity)
}

// Balanced reports whether the independently derived equity explains the
// residual within epsilon.
func (bs BalanceSheet) Balanced(epsilon decimal.Decimal) bool {
	return bs.Variance.Abs().LessThanOrEqual(epsilon)
}

// BuildBalanceSheet folds the snapshot into the balance sheet as of a date.
// Fixed assets enter net of depreciation accrued up to asOf.
func BuildBalanceSheet(in Inputs, asOf model.Date) BalanceSheet {
	bs := BalanceSheet{AsOf: asOf}

	bs.Cash = in.cash()
	bs.BankBalances = in.bankTotal()
	bs.Receivables, bs.CustomerAdvances = splitBalances(in.Customers)
	bs.Payables, bs.SupplierAdvances = splitBalances(in.Suppliers)
	bs.Inventory = in.inventoryValue()

	bs.FixedAssetCost = decimal.Zero
	bs.AccumulatedDepreciation = decimal.Zero
	for _, a := range in.Assets {
		bs.FixedAssetCost = bs.FixedAssetCost.Add(a.PurchaseValue)
		bs.AccumulatedDepreciation = bs.AccumulatedDepreciation.Add(depreciation.Accumulated(a, asOf))
	}
	bs.NetFixedAssets = bs.FixedAssetCost.Sub(bs.AccumulatedDepreciation)

	bs.AssetAdjustments = in.journalNet(model.AccountTypeAsset).Neg()
	bs.LiabilityAdjustments = in.journalNet(model.AccountTypeLiability)

	bs.TotalAssets = bs.Cash.
		Add(bs.BankBalances).
		Add(bs.Receivables).
		Add(bs.SupplierAdvances).
		Add(bs.Inventory).
		Add(bs.NetFixedAssets).
		Add(bs.AssetAdjustments)

	bs.TotalLiabilities = bs.Payables.Add(bs.CustomerAdvances).Add(bs.LiabilityAdjustments)

	bs.Equity = bs.TotalAssets.Sub(bs.TotalLiabilities)
	bs.ContributedCapital = in.journalNet(model.AccountTypeEquity)
	bs.RetainedEarnings = BuildProfitAndLoss(in).NetProfit.
		Add(in.journalNet(model.AccountTypeRevenue)).
		Add(in.journalNet(model.AccountTypeExpense))
	bs.DerivedEquity = bs.ContributedCapital.Add(bs.RetainedEarnings)
	bs.Variance = bs.TotalAssets.Sub(bs.TotalLiabilities.Add(bs.DerivedEquity))

	return bs
}
