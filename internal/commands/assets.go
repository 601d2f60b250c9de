package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tillbook-dev/tillbook/internal/depreciation"
	"github.com/tillbook-dev/tillbook/internal/model"
)

func newAssetsCommand() *cobra.Command {
	var dir string
	var asOf string

	cmd := &cobra.Command{
		Use:   "assets",
		Short: "List fixed assets with depreciation and net book value",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssets(dir, asOf)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "books directory")
	cmd.Flags().StringVar(&asOf, "as-of", "", "valuation date (YYYY-MM-DD, default today)")

	return cmd
}

func runAssets(dir, asOf string) error {
	when := model.DateOf(time.Now())
	if asOf != "" {
		var err error
		when, err = model.ParseDate(asOf)
		if err != nil {
			return err
		}
	}

	rt, err := NewRuntime(dir)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ASSET\tPURCHASED\tCOST\tRATE\tACCUM. DEPR.\tNET BOOK VALUE")

	totalCost, totalAccum := decimal.Zero, decimal.Zero
	for _, a := range rt.books.Assets {
		accum := depreciation.Accumulated(a, when)
		nbv := depreciation.NetBookValue(a, when)
		totalCost = totalCost.Add(a.PurchaseValue)
		totalAccum = totalAccum.Add(accum)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s%%\t%s\t%s\n",
			a.Name, a.PurchaseDate, a.PurchaseValue.StringFixed(2), a.Rate.String(),
			accum.StringFixed(2), nbv.StringFixed(2))
	}
	fmt.Fprintf(w, "TOTAL\t\t%s\t\t%s\t%s\n",
		totalCost.StringFixed(2), totalAccum.StringFixed(2), totalCost.Sub(totalAccum).StringFixed(2))
	return w.Flush()
}
