package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// VoucherType is the direction of a cash voucher.
type VoucherType string

const (
	VoucherReceipt VoucherType = "receipt"
	VoucherPayment VoucherType = "payment"
)

// ParseVoucherType validates a voucher type label.
func ParseVoucherType(s string) (VoucherType, error) {
	switch VoucherType(s) {
	case VoucherReceipt, VoucherPayment:
		return VoucherType(s), nil
	}
	return "", fmt.Errorf("unknown voucher type %q", s)
}

// ChequeStatus is the lifecycle state of a deferred instrument.
type ChequeStatus string

const (
	ChequePending  ChequeStatus = "pending"
	ChequeCleared  ChequeStatus = "cleared"
	ChequeBounced  ChequeStatus = "bounced"
	ChequeReturned ChequeStatus = "returned"
)

// ParseChequeStatus validates a cheque status label.
func ParseChequeStatus(s string) (ChequeStatus, error) {
	switch ChequeStatus(s) {
	case ChequePending, ChequeCleared, ChequeBounced, ChequeReturned:
		return ChequeStatus(s), nil
	}
	return "", fmt.Errorf("unknown cheque status %q", s)
}

// Cheque is a deferred instrument attached to a voucher. Only the
// pending -> cleared transition moves a bank balance.
type Cheque struct {
	Number        string       `json:"number"`
	BankAccountID string       `json:"bankAccountId"`
	DueDate       Date         `json:"dueDate"`
	Status        ChequeStatus `json:"status"`
}

// Voucher is a cash movement, optionally linked to a party and/or a cheque.
// Merchandise marks vouchers that settle goods (excluded from the expense
// side of net profit).
type Voucher struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"`
	Date        Date            `json:"date"`
	Type        VoucherType     `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	PartyID     string          `json:"partyId,omitempty"`
	Merchandise bool            `json:"merchandise,omitempty"`
	Cheque      *Cheque         `json:"cheque,omitempty"`
}

// BankAccount holds a bank balance, moved by cleared cheques and bank
// vouchers, never by party ledgers directly.
type BankAccount struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Number  string          `json:"number,omitempty"`
	Balance decimal.Decimal `json:"balance"`
}
