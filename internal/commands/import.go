package commands

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tillbook-dev/tillbook/internal/importer"
)

func newImportCommand() *cobra.Command {
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import external data",
	}
	importCmd.AddCommand(newImportBankCommand())
	return importCmd
}

func newImportBankCommand() *cobra.Command {
	var dir string
	var bankName string

	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Match bank statement CSVs against pending cheques",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImportBank(dir, bankName)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "books directory")
	cmd.Flags().StringVar(&bankName, "bank", "", "bank account name (required)")
	_ = cmd.MarkFlagRequired("bank")

	return cmd
}

func runImportBank(dir, bankName string) error {
	rt, err := NewRuntime(dir)
	if err != nil {
		return err
	}

	bank, ok := findBankByName(rt, bankName)
	if !ok {
		return fmt.Errorf("no bank account named %q", bankName)
	}

	files, err := importer.Scan(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("No statement files in import/")
		return nil
	}

	cleared := 0
	for _, file := range files {
		f, err := os.Open(file.Path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", file.Name, err)
		}
		rows, err := importer.ParseStatement(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("parsing %s: %w", file.Name, err)
		}

		res, err := importer.Match(rt.books, bank.ID, rows)
		if err != nil {
			return err
		}
		cleared += len(res.Cleared)

		rt.log.WithFields(logrus.Fields{
			"file":      file.Name,
			"rows":      len(rows),
			"cleared":   len(res.Cleared),
			"unmatched": len(res.Unmatched),
		}).Info("statement processed")

		for _, row := range res.Unmatched {
			rt.log.WithFields(logrus.Fields{
				"date":   row.Date.String(),
				"amount": row.Amount.StringFixed(2),
				"ref":    row.Reference,
			}).Warn("no pending cheque matches row")
		}

		if err := importer.MarkProcessed(dir, file.Name); err != nil {
			return err
		}
	}

	if cleared > 0 {
		if err := rt.SaveBooks(fmt.Sprintf("import: cleared %d cheque(s) via %s", cleared, bankName)); err != nil {
			return err
		}
	}

	fmt.Printf("Processed %d file(s), cleared %d cheque(s)\n", len(files), cleared)
	return nil
}
