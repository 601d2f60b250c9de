package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PartyKind distinguishes the two sign conventions a running balance can
// follow: a customer balance is a receivable, a supplier balance a payable.
type PartyKind string

const (
	PartyCustomer PartyKind = "customer"
	PartySupplier PartyKind = "supplier"
)

// ParsePartyKind validates a party kind label.
func ParsePartyKind(s string) (PartyKind, error) {
	switch PartyKind(s) {
	case PartyCustomer, PartySupplier:
		return PartyKind(s), nil
	}
	return "", fmt.Errorf("unknown party kind %q", s)
}

// TxnKind classifies a ledger transaction. The set is closed: free-text
// labels are rejected at parse time rather than classified by a fallback.
type TxnKind string

const (
	// KindOpeningBalance seeds a party's ledger when the books are started.
	KindOpeningBalance TxnKind = "opening balance"
	// KindInvoice is a credit sale charged to a customer's account.
	KindInvoice TxnKind = "invoice"
	// KindWithdrawal is cash handed out against a customer's account.
	KindWithdrawal TxnKind = "withdrawal"
	// KindPurchase is goods received on account: a purchase from a supplier,
	// or a purchase charged to a customer's tab.
	KindPurchase TxnKind = "purchase"
	// KindDeposit is cash received into the account.
	KindDeposit TxnKind = "deposit"
	// KindReceipt is a voucher receipt applied to the account.
	KindReceipt TxnKind = "receipt"
	// KindPayment is a voucher payment applied to the account.
	KindPayment TxnKind = "payment"
	// KindReturn is a merchandise return credited back to the account.
	KindReturn TxnKind = "return"
)

// ParseTxnKind validates a transaction kind label.
func ParseTxnKind(s string) (TxnKind, error) {
	switch TxnKind(s) {
	case KindOpeningBalance, KindInvoice, KindWithdrawal, KindPurchase,
		KindDeposit, KindReceipt, KindPayment, KindReturn:
		return TxnKind(s), nil
	}
	return "", fmt.Errorf("unknown transaction kind %q", s)
}

// AccountTransaction is one immutable row in a party's ledger. Corrections
// append a reversing row; history is never edited.
type AccountTransaction struct {
	ID           string          `json:"id"`
	Date         Date            `json:"date"`
	Kind         TxnKind         `json:"kind"`
	Amount       decimal.Decimal `json:"amount"` // non-negative magnitude
	Note         string          `json:"note,omitempty"`
	BalanceAfter decimal.Decimal `json:"balanceAfter"`
}

// Party is a customer or supplier with a running balance. The balance must
// equal the signed sum of all transactions ever applied; the ledger package
// owns the only mutation path that keeps the two together.
type Party struct {
	ID           string               `json:"id"`
	Kind         PartyKind            `json:"kind"`
	Name         string               `json:"name"`
	Phone        string               `json:"phone,omitempty"`
	Balance      decimal.Decimal      `json:"balance"`
	Transactions []AccountTransaction `json:"transactions"`
}
