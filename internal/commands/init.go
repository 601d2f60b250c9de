package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tillbook-dev/tillbook/internal/accounts"
	"github.com/tillbook-dev/tillbook/internal/config"
	"github.com/tillbook-dev/tillbook/internal/gitops"
	"github.com/tillbook-dev/tillbook/internal/snapshot"
)

func newInitCommand() *cobra.Command {
	var name string
	var currency string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new books directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name, currency)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&currency, "currency", "USD", "currency code")

	return cmd
}

func runInit(dir, name, currency string) error {
	// Create directory structure.
	dirs := []string{
		"accounts",
		"logs",
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write tillbook.yaml.
	cfg := config.Default(name, currency)
	if err := config.Save(filepath.Join(dir, ConfigFileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write chart of accounts.
	chart := accounts.DefaultChart()
	svc := accounts.NewService(chart)
	if err := svc.Save(dir); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}

	// Write empty books snapshot.
	if err := snapshot.Save(dir, &snapshot.Books{}); err != nil {
		return fmt.Errorf("writing books: %w", err)
	}

	// Write .gitignore.
	gitignore := "import/\nexports/\n*.tmp\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	// Initialize git and create initial commit.
	if err := gitops.Init(dir); err != nil {
		return fmt.Errorf("git init: %w", err)
	}

	hash, err := gitops.CommitAll(dir, "init: Initialize "+name, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Printf("Initialized books for %s at %s (%s)\n", name, dir, hash)
	return nil
}
