package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tillbook-dev/tillbook/internal/ledger"
	"github.com/tillbook-dev/tillbook/internal/model"
)

func newTxnCommand() *cobra.Command {
	txnCmd := &cobra.Command{
		Use:   "txn",
		Short: "Party ledger transactions",
	}
	txnCmd.AddCommand(newTxnAddCommand())
	return txnCmd
}

func newTxnAddCommand() *cobra.Command {
	var dir string
	var partyName string
	var kind string
	var amount string
	var date string
	var note string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Apply a transaction to a party's account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTxnAdd(dir, partyName, kind, amount, date, note)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "books directory")
	cmd.Flags().StringVar(&partyName, "party", "", "party name (required)")
	_ = cmd.MarkFlagRequired("party")
	cmd.Flags().StringVar(&kind, "kind", "", "transaction kind (required)")
	_ = cmd.MarkFlagRequired("kind")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&note, "note", "", "free-text note")

	return cmd
}

func runTxnAdd(dir, partyName, kindLabel, amountStr, dateStr, note string) error {
	kind, err := model.ParseTxnKind(kindLabel)
	if err != nil {
		return err
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return fmt.Errorf("parsing amount %q: %w", amountStr, err)
	}

	when, err := resolveDate(dateStr)
	if err != nil {
		return err
	}

	rt, err := NewRuntime(dir)
	if err != nil {
		return err
	}

	party, ok := rt.books.PartyByName(partyName)
	if !ok {
		return fmt.Errorf("no party named %q", partyName)
	}

	txn, err := ledger.Apply(party, when, kind, amount, note)
	if err != nil {
		return err
	}
	if err := rt.Audit("txn add", party.ID, txn); err != nil {
		return err
	}

	if err := rt.SaveBooks(fmt.Sprintf("txn: %s %s %s", partyName, kind, amount.StringFixed(2))); err != nil {
		return err
	}

	fmt.Printf("%s: %s %s, balance %s\n", partyName, kind, txn.Amount.StringFixed(2), txn.BalanceAfter.StringFixed(2))
	return nil
}

// resolveDate parses a YYYY-MM-DD flag, defaulting to today.
func resolveDate(s string) (model.Date, error) {
	if s == "" {
		return model.DateOf(time.Now()), nil
	}
	return model.ParseDate(s)
}
