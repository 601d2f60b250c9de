package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tillbook-dev/tillbook/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tillbook",
		Short:   "Retail ledger and bookkeeping",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newPartyCommand())
	rootCmd.AddCommand(newTxnCommand())
	rootCmd.AddCommand(newStatementCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newShiftCommand())
	rootCmd.AddCommand(newVoucherCommand())
	rootCmd.AddCommand(newJournalCommand())
	rootCmd.AddCommand(newAssetsCommand())
	rootCmd.AddCommand(newImportCommand())

	return rootCmd
}
