package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/tillbook-dev/tillbook/internal/model"
	"github.com/tillbook-dev/tillbook/internal/report"
)

func newReportCommand() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Financial statements",
	}
	reportCmd.AddCommand(newTrialBalanceCommand())
	reportCmd.AddCommand(newBalanceSheetCommand())
	reportCmd.AddCommand(newProfitLossCommand())
	return reportCmd
}

func reportFlags(cmd *cobra.Command, dir, asOf *string) {
	cmd.Flags().StringVar(dir, "dir", ".", "books directory")
	cmd.Flags().StringVar(asOf, "as-of", "", "report date (YYYY-MM-DD, default today)")
}

func reportSetup(dir, asOf string) (*Runtime, report.Inputs, model.Date, error) {
	when := model.DateOf(time.Now())
	if asOf != "" {
		var err error
		when, err = model.ParseDate(asOf)
		if err != nil {
			return nil, report.Inputs{}, model.Date{}, err
		}
	}

	rt, err := NewRuntime(dir)
	if err != nil {
		return nil, report.Inputs{}, model.Date{}, err
	}

	in, err := rt.ReportInputs()
	if err != nil {
		return nil, report.Inputs{}, model.Date{}, err
	}
	return rt, in, when, nil
}

func newTrialBalanceCommand() *cobra.Command {
	var dir, asOf string

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Print the trial balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, in, when, err := reportSetup(dir, asOf)
			if err != nil {
				return err
			}

			tb := report.BuildTrialBalance(in, when)

			fmt.Printf("Trial balance as of %s\n\n", tb.AsOf)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ACCOUNT\tTYPE\tDEBIT\tCREDIT")
			for _, row := range tb.Rows {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.Account, row.Type, fixedOrBlank(row.Debit), fixedOrBlank(row.Credit))
			}
			fmt.Fprintf(w, "TOTAL\t\t%s\t%s\n", tb.TotalDebit.StringFixed(2), tb.TotalCredit.StringFixed(2))
			if err := w.Flush(); err != nil {
				return err
			}

			if !tb.Balanced(rt.Epsilon()) {
				fmt.Printf("\nWARNING: out of balance by %s\n", tb.Difference().StringFixed(2))
			}
			return nil
		},
	}
	reportFlags(cmd, &dir, &asOf)
	return cmd
}

func newBalanceSheetCommand() *cobra.Command {
	var dir, asOf string

	cmd := &cobra.Command{
		Use:   "balance-sheet",
		Short: "Print the balance sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, in, when, err := reportSetup(dir, asOf)
			if err != nil {
				return err
			}

			bs := report.BuildBalanceSheet(in, when)

			fmt.Printf("Balance sheet as of %s\n\n", bs.AsOf)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ASSETS\t")
			fmt.Fprintf(w, "  Cash\t%s\n", bs.Cash.StringFixed(2))
			fmt.Fprintf(w, "  Bank\t%s\n", bs.BankBalances.StringFixed(2))
			fmt.Fprintf(w, "  Receivables\t%s\n", bs.Receivables.StringFixed(2))
			fmt.Fprintf(w, "  Supplier advances\t%s\n", bs.SupplierAdvances.StringFixed(2))
			fmt.Fprintf(w, "  Inventory\t%s\n", bs.Inventory.StringFixed(2))
			fmt.Fprintf(w, "  Fixed assets (net)\t%s\n", bs.NetFixedAssets.StringFixed(2))
			if !bs.AssetAdjustments.IsZero() {
				fmt.Fprintf(w, "  Journal adjustments\t%s\n", bs.AssetAdjustments.StringFixed(2))
			}
			fmt.Fprintf(w, "  TOTAL ASSETS\t%s\n", bs.TotalAssets.StringFixed(2))
			fmt.Fprintln(w, "LIABILITIES\t")
			fmt.Fprintf(w, "  Payables\t%s\n", bs.Payables.StringFixed(2))
			fmt.Fprintf(w, "  Customer advances\t%s\n", bs.CustomerAdvances.StringFixed(2))
			if !bs.LiabilityAdjustments.IsZero() {
				fmt.Fprintf(w, "  Journal adjustments\t%s\n", bs.LiabilityAdjustments.StringFixed(2))
			}
			fmt.Fprintf(w, "  TOTAL LIABILITIES\t%s\n", bs.TotalLiabilities.StringFixed(2))
			fmt.Fprintln(w, "EQUITY\t")
			fmt.Fprintf(w, "  Equity (residual)\t%s\n", bs.Equity.StringFixed(2))
			fmt.Fprintf(w, "  Contributed capital\t%s\n", bs.ContributedCapital.StringFixed(2))
			fmt.Fprintf(w, "  Retained earnings\t%s\n", bs.RetainedEarnings.StringFixed(2))
			if err := w.Flush(); err != nil {
				return err
			}

			if !bs.Balanced(rt.Epsilon()) {
				fmt.Printf("\nWARNING: derived equity does not explain the books, variance %s\n", bs.Variance.StringFixed(2))
			}
			return nil
		},
	}
	reportFlags(cmd, &dir, &asOf)
	return cmd
}

func newProfitLossCommand() *cobra.Command {
	var dir, asOf string

	cmd := &cobra.Command{
		Use:   "profit-loss",
		Short: "Print the profit and loss statement",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, in, _, err := reportSetup(dir, asOf)
			if err != nil {
				return err
			}

			pl := report.BuildProfitAndLoss(in)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Sales\t%s\n", pl.TotalSales.StringFixed(2))
			fmt.Fprintf(w, "Cost of goods sold\t%s\n", pl.COGS.StringFixed(2))
			fmt.Fprintf(w, "Gross profit\t%s\t%s%%\n", pl.GrossProfit.StringFixed(2), pl.GrossMarginPct.StringFixed(1))
			fmt.Fprintf(w, "Expenses\t%s\n", pl.Expenses.StringFixed(2))
			fmt.Fprintf(w, "Other payments\t%s\n", pl.OtherPayments.StringFixed(2))
			fmt.Fprintf(w, "Net profit\t%s\t%s%%\n", pl.NetProfit.StringFixed(2), pl.NetMarginPct.StringFixed(1))
			return w.Flush()
		},
	}
	reportFlags(cmd, &dir, &asOf)
	return cmd
}
