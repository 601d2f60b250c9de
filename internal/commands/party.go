package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tillbook-dev/tillbook/internal/ledger"
	"github.com/tillbook-dev/tillbook/internal/model"
)

func newPartyCommand() *cobra.Command {
	partyCmd := &cobra.Command{
		Use:   "party",
		Short: "Customer and supplier accounts",
	}
	partyCmd.AddCommand(newPartyAddCommand())
	return partyCmd
}

func newPartyAddCommand() *cobra.Command {
	var dir string
	var kind string
	var phone string
	var opening string
	var date string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a customer or supplier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPartyAdd(dir, args[0], kind, phone, opening, date)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "books directory")
	cmd.Flags().StringVar(&kind, "kind", "customer", "party kind: customer or supplier")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&opening, "opening", "", "opening balance amount")
	cmd.Flags().StringVar(&date, "date", "", "opening balance date (YYYY-MM-DD, default today)")

	return cmd
}

func runPartyAdd(dir, name, kind, phone, opening, date string) error {
	partyKind, err := model.ParsePartyKind(kind)
	if err != nil {
		return err
	}

	rt, err := NewRuntime(dir)
	if err != nil {
		return err
	}

	if _, exists := rt.books.PartyByName(name); exists {
		return fmt.Errorf("party %q already exists", name)
	}

	party := model.Party{
		ID:      uuid.NewString(),
		Kind:    partyKind,
		Name:    name,
		Phone:   phone,
		Balance: decimal.Zero,
	}

	if opening != "" {
		amount, err := decimal.NewFromString(opening)
		if err != nil {
			return fmt.Errorf("parsing opening balance %q: %w", opening, err)
		}
		when, err := resolveDate(date)
		if err != nil {
			return err
		}
		txn, err := ledger.Apply(&party, when, model.KindOpeningBalance, amount, "opening balance")
		if err != nil {
			return err
		}
		if err := rt.Audit("party add", party.ID, txn); err != nil {
			return err
		}
	}

	switch partyKind {
	case model.PartyCustomer:
		rt.books.Customers = append(rt.books.Customers, party)
	case model.PartySupplier:
		rt.books.Suppliers = append(rt.books.Suppliers, party)
	}

	if err := rt.SaveBooks(fmt.Sprintf("party: add %s %s", kind, name)); err != nil {
		return err
	}

	fmt.Printf("Added %s %s (balance %s)\n", kind, name, party.Balance.StringFixed(2))
	return nil
}
