package ledger

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tillbook-dev/tillbook/internal/model"
)

// ErrNegativeAmount rejects transactions with a negative magnitude; direction
// is carried by the kind, never by the sign of the amount.
var ErrNegativeAmount = errors.New("transaction amount must not be negative")

// Apply moves a party's balance and appends the matching transaction in one
// step. It is the only supported way to change a balance: writing the field
// directly would let the balance and the history drift apart, which breaks
// statement replay. Returns the appended transaction.
func Apply(party *model.Party, date model.Date, kind model.TxnKind, amount decimal.Decimal, note string) (model.AccountTransaction, error) {
	if amount.IsNegative() {
		return model.AccountTransaction{}, fmt.Errorf("applying %s to %s: %w", kind, party.Name, ErrNegativeAmount)
	}

	delta := amount
	if Polarity(party.Kind, kind) < 0 {
		delta = amount.Neg()
	}

	party.Balance = party.Balance.Add(delta)
	txn := model.AccountTransaction{
		ID:           uuid.NewString(),
		Date:         date,
		Kind:         kind,
		Amount:       amount,
		Note:         note,
		BalanceAfter: party.Balance,
	}
	party.Transactions = append(party.Transactions, txn)
	return txn, nil
}

// Replayed returns the balance implied by a party's full transaction history.
// It equals party.Balance whenever every mutation went through Apply.
func Replayed(party *model.Party) decimal.Decimal {
	sum := decimal.Zero
	for _, txn := range party.Transactions {
		if Polarity(party.Kind, txn.Kind) > 0 {
			sum = sum.Add(txn.Amount)
		} else {
			sum = sum.Sub(txn.Amount)
		}
	}
	return sum
}
