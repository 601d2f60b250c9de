// Package statement reconstructs a party's ledger card over a date range by
// replaying its transaction history.
package statement

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tillbook-dev/tillbook/internal/ledger"
	"github.com/tillbook-dev/tillbook/internal/model"
)

// Row is one dated line of a statement.
type Row struct {
	Date         model.Date
	Kind         model.TxnKind
	Note         string
	Debit        decimal.Decimal
	Credit       decimal.Decimal
	BalanceAfter decimal.Decimal
}

// Statement is a reconstructed ledger card. Closing - Opening always equals
// TotalDebit - TotalCredit.
type Statement struct {
	Opening     decimal.Decimal
	Rows        []Row
	Closing     decimal.Decimal
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// Build replays a party's transactions over [start, end]. Transactions are
// ordered by date, stable on insertion order for same-day ties; those before
// start fold into the opening balance. Build is pure: identical inputs
// produce identical statements.
//
// Transaction kinds must be members of the model.TxnKind enum, as produced by
// model.ParseTxnKind or ledger.Apply; an unclassifiable kind panics rather
// than being guessed a direction for.
func Build(txns []model.AccountTransaction, party model.PartyKind, start, end model.Date) Statement {
	ordered := make([]model.AccountTransaction, len(txns))
	copy(ordered, txns)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date.Time)
	})

	st := Statement{
		Opening:     decimal.Zero,
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	running := decimal.Zero
	for _, txn := range ordered {
		if txn.Date.Before(start.Time) {
			if ledger.Polarity(party, txn.Kind) > 0 {
				st.Opening = st.Opening.Add(txn.Amount)
			} else {
				st.Opening = st.Opening.Sub(txn.Amount)
			}
			continue
		}
		if txn.Date.After(end.Time) {
			continue
		}

		if len(st.Rows) == 0 {
			running = st.Opening
		}

		row := Row{
			Date:   txn.Date,
			Kind:   txn.Kind,
			Note:   txn.Note,
			Debit:  decimal.Zero,
			Credit: decimal.Zero,
		}
		if ledger.Polarity(party, txn.Kind) > 0 {
			row.Debit = txn.Amount
			st.TotalDebit = st.TotalDebit.Add(txn.Amount)
		} else {
			row.Credit = txn.Amount
			st.TotalCredit = st.TotalCredit.Add(txn.Amount)
		}
		running = running.Add(row.Debit).Sub(row.Credit)
		row.BalanceAfter = running
		st.Rows = append(st.Rows, row)
	}

	if len(st.Rows) == 0 {
		st.Closing = st.Opening
	} else {
		st.Closing = running
	}
	return st
}
