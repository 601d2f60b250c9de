package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/tillbook-dev/tillbook/internal/model"
	"github.com/tillbook-dev/tillbook/internal/statement"
)

func newStatementCommand() *cobra.Command {
	var dir string
	var partyName string
	var from string
	var to string

	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Print a party's statement of account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatement(dir, partyName, from, to)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "books directory")
	cmd.Flags().StringVar(&partyName, "party", "", "party name (required)")
	_ = cmd.MarkFlagRequired("party")
	cmd.Flags().StringVar(&from, "from", "0001-01-01", "range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "range end (YYYY-MM-DD, default today)")

	return cmd
}

func runStatement(dir, partyName, from, to string) error {
	start, err := model.ParseDate(from)
	if err != nil {
		return err
	}

	end := model.DateOf(time.Now())
	if to != "" {
		end, err = model.ParseDate(to)
		if err != nil {
			return err
		}
	}

	rt, err := NewRuntime(dir)
	if err != nil {
		return err
	}

	party, ok := rt.books.PartyByName(partyName)
	if !ok {
		return fmt.Errorf("no party named %q", partyName)
	}

	st := statement.Build(party.Transactions, party.Kind, start, end)

	fmt.Printf("Statement of account: %s (%s)\n", party.Name, party.Kind)
	fmt.Printf("Period %s to %s\n\n", start, end)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tKIND\tNOTE\tDEBIT\tCREDIT\tBALANCE")
	fmt.Fprintf(w, "\topening\t\t\t\t%s\n", st.Opening.StringFixed(2))
	for _, row := range st.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Date, row.Kind, row.Note,
			fixedOrBlank(row.Debit), fixedOrBlank(row.Credit),
			row.BalanceAfter.StringFixed(2))
	}
	fmt.Fprintf(w, "\ttotals\t\t%s\t%s\t%s\n",
		st.TotalDebit.StringFixed(2), st.TotalCredit.StringFixed(2), st.Closing.StringFixed(2))
	return w.Flush()
}
