package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tillbook-dev/tillbook/internal/model"
	"github.com/tillbook-dev/tillbook/internal/vouchers"
)

func newVoucherCommand() *cobra.Command {
	voucherCmd := &cobra.Command{
		Use:   "voucher",
		Short: "Cash vouchers and cheques",
	}
	voucherCmd.AddCommand(newVoucherAddCommand())
	voucherCmd.AddCommand(newChequeCommand())
	return voucherCmd
}

func newVoucherAddCommand() *cobra.Command {
	var dir string
	var vtype string
	var amount string
	var date string
	var desc string
	var partyName string
	var merchandise bool
	var chequeNo string
	var chequeBank string
	var chequeDue string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a receipt or payment voucher",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVoucherAdd(dir, vtype, amount, date, desc, partyName, merchandise, chequeNo, chequeBank, chequeDue)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "books directory")
	cmd.Flags().StringVar(&vtype, "type", "", "voucher type: receipt or payment (required)")
	_ = cmd.MarkFlagRequired("type")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&desc, "desc", "", "description")
	cmd.Flags().StringVar(&partyName, "party", "", "linked party name")
	cmd.Flags().BoolVar(&merchandise, "merchandise", false, "settles goods (excluded from expense totals)")
	cmd.Flags().StringVar(&chequeNo, "cheque", "", "cheque number (makes this a deferred instrument)")
	cmd.Flags().StringVar(&chequeBank, "cheque-bank", "", "bank account name for the cheque")
	cmd.Flags().StringVar(&chequeDue, "cheque-due", "", "cheque due date (YYYY-MM-DD)")

	return cmd
}

func runVoucherAdd(dir, vtype, amountStr, dateStr, desc, partyName string, merchandise bool, chequeNo, chequeBank, chequeDue string) error {
	voucherType, err := model.ParseVoucherType(vtype)
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

	params := vouchers.IssueParams{
		Date:        when,
		Type:        voucherType,
		Amount:      amount,
		Description: desc,
		Merchandise: merchandise,
	}

	if partyName != "" {
		party, ok := rt.books.PartyByName(partyName)
		if !ok {
			return fmt.Errorf("no party named %q", partyName)
		}
		params.PartyID = party.ID
	}

	if chequeNo != "" {
		bank, ok := findBankByName(rt, chequeBank)
		if !ok {
			return fmt.Errorf("no bank account named %q", chequeBank)
		}
		due := when
		if chequeDue != "" {
			due, err = model.ParseDate(chequeDue)
			if err != nil {
				return err
			}
		}
		params.Cheque = &model.Cheque{
			Number:        chequeNo,
			BankAccountID: bank.ID,
			DueDate:       due,
		}
	}

	voucher, err := vouchers.Issue(rt.books, params)
	if err != nil {
		return err
	}

	if params.PartyID != "" {
		party, _ := rt.books.Party(params.PartyID)
		txn := party.Transactions[len(party.Transactions)-1]
		if err := rt.Audit("voucher add", party.ID, txn); err != nil {
			return err
		}
	}

	if err := rt.SaveBooks(fmt.Sprintf("voucher: %s %s %s", voucher.Number, vtype, amount.StringFixed(2))); err != nil {
		return err
	}

	fmt.Printf("Recorded %s for %s\n", voucher.Number, voucher.Amount.StringFixed(2))
	return nil
}

func newChequeCommand() *cobra.Command {
	chequeCmd := &cobra.Command{
		Use:   "cheque",
		Short: "Cheque lifecycle",
	}
	chequeCmd.AddCommand(newChequeTransitionCommand("clear", "Clear a pending cheque against its bank account"))
	chequeCmd.AddCommand(newChequeTransitionCommand("bounce", "Mark a pending cheque bounced and reverse its effect"))
	chequeCmd.AddCommand(newChequeTransitionCommand("return", "Mark a pending cheque returned and reverse its effect"))
	return chequeCmd
}

func newChequeTransitionCommand(verb, short string) *cobra.Command {
	var dir string
	var date string

	cmd := &cobra.Command{
		Use:   verb + " <voucher-number>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChequeTransition(dir, args[0], verb, date)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "books directory")
	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD, default today)")
	return cmd
}

func runChequeTransition(dir, voucherNo, verb, dateStr string) error {
	when, err := resolveDate(dateStr)
	if err != nil {
		return err
	}

	rt, err := NewRuntime(dir)
	if err != nil {
		return err
	}

	switch verb {
	case "clear":
		err = vouchers.Clear(rt.books, voucherNo)
	case "bounce":
		err = vouchers.Dishonor(rt.books, voucherNo, model.ChequeBounced, when)
	case "return":
		err = vouchers.Dishonor(rt.books, voucherNo, model.ChequeReturned, when)
	default:
		err = fmt.Errorf("unknown cheque action %q", verb)
	}
	if err != nil {
		return err
	}

	// A dishonor appends a reversing transaction to the linked party; that
	// balance mutation goes into the audit trail like any other.
	if verb != "clear" {
		if voucher, ok := findVoucher(rt, voucherNo); ok && voucher.PartyID != "" {
			party, found := rt.books.Party(voucher.PartyID)
			if found && len(party.Transactions) > 0 {
				txn := party.Transactions[len(party.Transactions)-1]
				if err := rt.Audit("cheque "+verb, party.ID, txn); err != nil {
					return err
				}
			}
		}
	}

	if err := rt.SaveBooks(fmt.Sprintf("cheque: %s %s", verb, voucherNo)); err != nil {
		return err
	}

	fmt.Printf("Cheque on %s: %s\n", voucherNo, verb)
	return nil
}

func findVoucher(rt *Runtime, voucherID string) (*model.Voucher, bool) {
	for i := range rt.books.Vouchers {
		v := &rt.books.Vouchers[i]
		if v.ID == voucherID || v.Number == voucherID {
			return v, true
		}
	}
	return nil, false
}

func findBankByName(rt *Runtime, name string) (*model.BankAccount, bool) {
	for i := range rt.books.BankAccounts {
		if rt.books.BankAccounts[i].Name == name {
			return &rt.books.BankAccounts[i], true
		}
	}
	return nil, false
}
