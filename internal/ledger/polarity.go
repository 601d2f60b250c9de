// Package ledger owns the rules that move party balances: the polarity each
// transaction kind carries for each party kind, and the single mutation path
// that keeps a party's balance and its transaction history in lockstep.
package ledger

import (
	"fmt"

	"github.com/tillbook-dev/tillbook/internal/model"
)

// Polarity reports whether a transaction kind enlarges (+1) or shrinks (-1)
// the party's stored balance. The match is total over the closed TxnKind set;
// unknown labels never get here because model.ParseTxnKind rejects them.
//
// The table is asymmetric on purpose: a customer balance is a receivable
// (charges enlarge it, settlements shrink it) while a supplier balance is a
// payable (goods received enlarge it, payments shrink it).
func Polarity(party model.PartyKind, kind model.TxnKind) int {
	switch party {
	case model.PartyCustomer:
		switch kind {
		case model.KindOpeningBalance, model.KindInvoice, model.KindWithdrawal, model.KindPurchase:
			return 1
		case model.KindDeposit, model.KindReceipt, model.KindPayment, model.KindReturn:
			return -1
		}
	case model.PartySupplier:
		switch kind {
		case model.KindOpeningBalance, model.KindPurchase, model.KindDeposit, model.KindReceipt:
			return 1
		case model.KindInvoice, model.KindWithdrawal, model.KindPayment, model.KindReturn:
			return -1
		}
	}
	panic(fmt.Sprintf("ledger: unclassified kind %q for party kind %q", kind, party))
}
