package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tillbook-dev/tillbook/internal/journal"
)

func newJournalCommand() *cobra.Command {
	journalCmd := &cobra.Command{
		Use:   "journal",
		Short: "Manual journal entries",
	}
	journalCmd.AddCommand(newJournalAddCommand())
	return journalCmd
}

func newJournalAddCommand() *cobra.Command {
	var dir string
	var date string
	var desc string
	var debitAccount int
	var creditAccount int
	var amount string
	var reference string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a balanced two-line journal entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJournalAdd(dir, date, desc, debitAccount, creditAccount, amount, reference)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "books directory")
	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&desc, "desc", "", "description (required)")
	_ = cmd.MarkFlagRequired("desc")
	cmd.Flags().IntVar(&debitAccount, "debit", 0, "debit account ID (required)")
	_ = cmd.MarkFlagRequired("debit")
	cmd.Flags().IntVar(&creditAccount, "credit", 0, "credit account ID (required)")
	_ = cmd.MarkFlagRequired("credit")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&reference, "ref", "", "reference")

	return cmd
}

func runJournalAdd(dir, dateStr, desc string, debitAccount, creditAccount int, amountStr, reference string) error {
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

	entryID, err := rt.journal.AddEntry(journal.AddEntryParams{
		Date:        when.Time,
		Description: desc,
		Reference:   reference,
		Lines: []journal.LineParams{
			{AccountID: debitAccount, Debit: amount},
			{AccountID: creditAccount, Credit: amount},
		},
	})
	if err != nil {
		return err
	}

	if err := rt.SaveBooks(fmt.Sprintf("journal: %s %s", entryID, desc)); err != nil {
		return err
	}

	fmt.Printf("Added journal entry %s\n", entryID)
	return nil
}
