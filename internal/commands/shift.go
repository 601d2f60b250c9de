package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tillbook-dev/tillbook/internal/shift"
)

func newShiftCommand() *cobra.Command {
	shiftCmd := &cobra.Command{
		Use:   "shift",
		Short: "Cash drawer shifts",
	}
	shiftCmd.AddCommand(newShiftOpenCommand())
	shiftCmd.AddCommand(newShiftCloseCommand())
	return shiftCmd
}

func newShiftOpenCommand() *cobra.Command {
	var dir string
	var cashier string
	var float string
	var date string

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a drawer shift",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShiftOpen(dir, cashier, float, date)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "books directory")
	cmd.Flags().StringVar(&cashier, "cashier", "", "cashier name")
	cmd.Flags().StringVar(&float, "float", "", "opening float (default from config)")
	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD, default today)")

	return cmd
}

func runShiftOpen(dir, cashier, float, date string) error {
	rt, err := NewRuntime(dir)
	if err != nil {
		return err
	}

	if open, ok := rt.books.OpenShift(); ok {
		return fmt.Errorf("shift %s is still open; close it first", open.ID)
	}

	startCash := rt.cfg.Drawer.DefaultFloatDecimal()
	if float != "" {
		startCash, err = decimal.NewFromString(float)
		if err != nil {
			return fmt.Errorf("parsing float %q: %w", float, err)
		}
	}

	when, err := resolveDate(date)
	if err != nil {
		return err
	}

	s, err := shift.Open(cashier, when, startCash)
	if err != nil {
		return err
	}
	rt.books.Shifts = append(rt.books.Shifts, s)

	if err := rt.SaveBooks(fmt.Sprintf("shift: open with float %s", startCash.StringFixed(2))); err != nil {
		return err
	}

	fmt.Printf("Opened shift %s with float %s\n", s.ID, s.StartCash.StringFixed(2))
	return nil
}

func newShiftCloseCommand() *cobra.Command {
	var dir string
	var counted string
	var date string

	cmd := &cobra.Command{
		Use:   "close",
		Short: "Close the open shift and reconcile the drawer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShiftClose(dir, counted, date)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "books directory")
	cmd.Flags().StringVar(&counted, "counted", "", "counted cash (required)")
	_ = cmd.MarkFlagRequired("counted")
	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD, default today)")

	return cmd
}

func runShiftClose(dir, counted, date string) error {
	actual, err := decimal.NewFromString(counted)
	if err != nil {
		return fmt.Errorf("parsing counted cash %q: %w", counted, err)
	}

	when, err := resolveDate(date)
	if err != nil {
		return err
	}

	rt, err := NewRuntime(dir)
	if err != nil {
		return err
	}

	open, ok := rt.books.OpenShift()
	if !ok {
		return fmt.Errorf("no open shift")
	}

	if err := shift.Close(open, when, actual, rt.books.Sales, rt.books.Expenses); err != nil {
		return err
	}

	if err := rt.SaveBooks(fmt.Sprintf("shift: close, variance %s", open.Variance.StringFixed(2))); err != nil {
		return err
	}

	fmt.Printf("Closed shift %s\n", open.ID)
	fmt.Printf("  expected %s, counted %s\n", open.EndCash.StringFixed(2), open.ActualCash.StringFixed(2))
	switch {
	case open.Variance.IsNegative():
		fmt.Printf("  SHORTAGE %s\n", open.Variance.Abs().StringFixed(2))
	case open.Variance.IsPositive():
		fmt.Printf("  OVERAGE %s\n", open.Variance.StringFixed(2))
	default:
		fmt.Println("  drawer balanced")
	}
	return nil
}
