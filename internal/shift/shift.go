// Package shift manages the cash-drawer lifecycle and its close-time
// reconciliation.
package shift

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tillbook-dev/tillbook/internal/model"
)

// ErrAlreadyClosed guards the one-way open -> closed transition.
var ErrAlreadyClosed = errors.New("shift is already closed")

// ErrNotOpen is returned when closing a shift that never opened.
var ErrNotOpen = errors.New("shift is not open")

// Open starts a new drawer session with the given float.
func Open(cashier string, openedAt model.Date, startCash decimal.Decimal) (model.Shift, error) {
	if startCash.IsNegative() {
		return model.Shift{}, fmt.Errorf("opening shift: negative start cash %s", startCash)
	}
	return model.Shift{
		ID:        uuid.NewString(),
		Cashier:   cashier,
		OpenedAt:  openedAt,
		Status:    model.ShiftOpen,
		StartCash: startCash,
	}, nil
}

// Expected computes the cash that should be in the drawer: the float plus
// cash-tender sales rung under this shift (returned sales excluded) minus
// expenses posted under it. Pure; calling it twice over the same snapshot
// yields the same number.
func Expected(s model.Shift, sales []model.Sale, expenses []model.Expense) decimal.Decimal {
	total := s.StartCash
	for _, sale := range sales {
		if sale.ShiftID != s.ID || sale.Tender != model.TenderCash || sale.Returned {
			continue
		}
		total = total.Add(sale.Total())
	}
	for _, exp := range expenses {
		if exp.ShiftID != s.ID {
			continue
		}
		total = total.Sub(exp.Amount)
	}
	return total
}

// Close reconciles and closes the shift. The variance (counted minus
// expected) is recorded either way; a shortage or overage never blocks the
// close. Closing twice is an error: drawers are never reopened.
func Close(s *model.Shift, closedAt model.Date, counted decimal.Decimal, sales []model.Sale, expenses []model.Expense) error {
	switch s.Status {
	case model.ShiftClosed:
		return ErrAlreadyClosed
	case model.ShiftOpen:
	default:
		return ErrNotOpen
	}

	expected := Expected(*s, sales, expenses)
	s.Status = model.ShiftClosed
	s.ClosedAt = closedAt
	s.EndCash = expected
	s.ActualCash = counted
	s.Variance = counted.Sub(expected)
	return nil
}
