// Package vouchers issues cash vouchers and drives the cheque lifecycle.
// A voucher linked to a party applies the matching account transaction in
// the same step; a cheque moves its bank account only when it clears.
package vouchers

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tillbook-dev/tillbook/internal/id"
	"github.com/tillbook-dev/tillbook/internal/ledger"
	"github.com/tillbook-dev/tillbook/internal/model"
	"github.com/tillbook-dev/tillbook/internal/snapshot"
)

// ErrChequeNotPending guards the cheque transitions: only a pending cheque
// can clear, bounce, or be returned.
var ErrChequeNotPending = errors.New("cheque is not pending")

// ErrNoCheque is returned for cheque operations on a plain cash voucher.
var ErrNoCheque = errors.New("voucher has no cheque")

// IssueParams describes a new voucher.
type IssueParams struct {
	Date        model.Date
	Type        model.VoucherType
	Amount      decimal.Decimal
	Description string
	PartyID     string // optional
	Merchandise bool
	Cheque      *model.Cheque // optional; status forced to pending
}

// Issue appends a voucher to the books. When a party is linked, the
// corresponding receipt/payment transaction is applied to its ledger in the
// same step. Returns the new voucher.
func Issue(books *snapshot.Books, params IssueParams) (model.Voucher, error) {
	if params.Amount.IsNegative() {
		return model.Voucher{}, fmt.Errorf("issuing voucher: %w", ledger.ErrNegativeAmount)
	}

	prefix := id.ReceiptPrefix
	kind := model.KindReceipt
	if params.Type == model.VoucherPayment {
		prefix = id.PaymentPrefix
		kind = model.KindPayment
	}

	year, month := params.Date.Year(), int(params.Date.Month())
	number := id.FormatVoucherNo(prefix, year, month, nextSeq(books, prefix, year, month))

	voucher := model.Voucher{
		ID:          uuid.NewString(),
		Number:      number,
		Date:        params.Date,
		Type:        params.Type,
		Amount:      params.Amount,
		Description: params.Description,
		PartyID:     params.PartyID,
		Merchandise: params.Merchandise,
	}
	if params.Cheque != nil {
		cheque := *params.Cheque
		cheque.Status = model.ChequePending
		if _, ok := books.BankAccount(cheque.BankAccountID); !ok {
			return model.Voucher{}, fmt.Errorf("issuing voucher: unknown bank account %q", cheque.BankAccountID)
		}
		voucher.Cheque = &cheque
	}

	if params.PartyID != "" {
		party, ok := books.Party(params.PartyID)
		if !ok {
			return model.Voucher{}, fmt.Errorf("issuing voucher: unknown party %q", params.PartyID)
		}
		note := fmt.Sprintf("voucher %s", number)
		if _, err := ledger.Apply(party, params.Date, kind, params.Amount, note); err != nil {
			return model.Voucher{}, err
		}
	}

	books.Vouchers = append(books.Vouchers, voucher)
	return voucher, nil
}

// Clear marks a pending cheque cleared and moves the bank balance: a receipt
// cheque deposits into the account, a payment cheque draws from it. This is
// the only transition that touches a bank balance.
func Clear(books *snapshot.Books, voucherID string) error {
	voucher, cheque, err := chequeOf(books, voucherID)
	if err != nil {
		return err
	}

	bank, ok := books.BankAccount(cheque.BankAccountID)
	if !ok {
		return fmt.Errorf("clearing cheque %s: unknown bank account %q", cheque.Number, cheque.BankAccountID)
	}

	if voucher.Type == model.VoucherReceipt {
		bank.Balance = bank.Balance.Add(voucher.Amount)
	} else {
		bank.Balance = bank.Balance.Sub(voucher.Amount)
	}
	cheque.Status = model.ChequeCleared
	return nil
}

// Dishonor marks a pending cheque bounced or returned and reverses the
// voucher's party effect by appending a counter-transaction. History stays
// append-only: nothing is edited, the reversal is a new row.
func Dishonor(books *snapshot.Books, voucherID string, status model.ChequeStatus, asOf model.Date) error {
	if status != model.ChequeBounced && status != model.ChequeReturned {
		return fmt.Errorf("dishonoring cheque: invalid target status %q", status)
	}

	voucher, cheque, err := chequeOf(books, voucherID)
	if err != nil {
		return err
	}

	if voucher.PartyID != "" {
		party, ok := books.Party(voucher.PartyID)
		if !ok {
			return fmt.Errorf("dishonoring cheque %s: unknown party %q", cheque.Number, voucher.PartyID)
		}
		kind := model.KindReceipt
		if voucher.Type == model.VoucherPayment {
			kind = model.KindPayment
		}
		note := fmt.Sprintf("cheque %s %s, reversing voucher %s", cheque.Number, status, voucher.Number)
		if _, err := ledger.Apply(party, asOf, reverseKind(party.Kind, kind), voucher.Amount, note); err != nil {
			return err
		}
	}

	cheque.Status = status
	return nil
}

// reverseKind picks the kind with opposite polarity used to back out a
// voucher's ledger effect.
func reverseKind(party model.PartyKind, kind model.TxnKind) model.TxnKind {
	if party == model.PartyCustomer {
		// receipt/payment both shrink a customer balance.
		return model.KindWithdrawal
	}
	// Supplier: receipt enlarges, payment shrinks.
	if kind == model.KindReceipt {
		return model.KindPayment
	}
	return model.KindDeposit
}

func chequeOf(books *snapshot.Books, voucherID string) (*model.Voucher, *model.Cheque, error) {
	for i := range books.Vouchers {
		v := &books.Vouchers[i]
		if v.ID != voucherID && v.Number != voucherID {
			continue
		}
		if v.Cheque == nil {
			return nil, nil, fmt.Errorf("voucher %s: %w", v.Number, ErrNoCheque)
		}
		if v.Cheque.Status != model.ChequePending {
			return nil, nil, fmt.Errorf("voucher %s: %w (status %s)", v.Number, ErrChequeNotPending, v.Cheque.Status)
		}
		return v, v.Cheque, nil
	}
	return nil, nil, fmt.Errorf("no voucher %q", voucherID)
}

// nextSeq numbers vouchers per prefix and month.
func nextSeq(books *snapshot.Books, prefix string, year, month int) int {
	maxSeq := 0
	for _, v := range books.Vouchers {
		p, y, m, seq, err := id.ParseVoucherNo(v.Number)
		if err != nil || p != prefix || y != year || m != month {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1
}
