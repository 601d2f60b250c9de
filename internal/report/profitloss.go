package report

import (
	"github.com/shopspring/decimal"

	"github.com/tillbook-dev/tillbook/internal/model"
)

// ProfitAndLoss is the income statement. COGS uses the cost captured on each
// sale line at sale time, so the figures are immune to later cost edits.
type ProfitAndLoss struct {
	TotalSales     decimal.Decimal
	COGS           decimal.Decimal
	GrossProfit    decimal.Decimal
	Expenses       decimal.Decimal
	OtherPayments  decimal.Decimal // non-merchandise voucher payments
	NetProfit      decimal.Decimal
	GrossMarginPct decimal.Decimal
	NetMarginPct   decimal.Decimal
}

// BuildProfitAndLoss folds sales, expenses, and vouchers into the income
// statement. Returned sales contribute nothing to either revenue or COGS.
func BuildProfitAndLoss(in Inputs) ProfitAndLoss {
	var pl ProfitAndLoss
	pl.TotalSales = decimal.Zero
	pl.COGS = decimal.Zero
	pl.Expenses = decimal.Zero
	pl.OtherPayments = decimal.Zero

	for _, s := range in.Sales {
		if s.Returned {
			continue
		}
		pl.TotalSales = pl.TotalSales.Add(s.Total())
		pl.COGS = pl.COGS.Add(s.Cost())
	}

	for _, e := range in.Expenses {
		pl.Expenses = pl.Expenses.Add(e.Amount)
	}

	for _, v := range in.Vouchers {
		if v.Type == model.VoucherPayment && !v.Merchandise {
			pl.OtherPayments = pl.OtherPayments.Add(v.Amount)
		}
	}

	pl.GrossProfit = pl.TotalSales.Sub(pl.COGS)
	pl.NetProfit = pl.GrossProfit.Sub(pl.Expenses).Sub(pl.OtherPayments)
	pl.GrossMarginPct = pct(pl.GrossProfit, pl.TotalSales)
	pl.NetMarginPct = pct(pl.NetProfit, pl.TotalSales)
	return pl
}
