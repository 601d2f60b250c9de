package model

import "github.com/shopspring/decimal"

// ShiftStatus is the drawer lifecycle state.
type ShiftStatus string

const (
	ShiftOpen   ShiftStatus = "open"
	ShiftClosed ShiftStatus = "closed"
)

// Shift is one cash-drawer session. EndCash, ActualCash, and Variance are
// only meaningful once Status is closed; a closed shift is never reopened.
type Shift struct {
	ID         string          `json:"id"`
	Cashier    string          `json:"cashier,omitempty"`
	OpenedAt   Date            `json:"openedAt"`
	ClosedAt   Date            `json:"closedAt,omitzero"`
	Status     ShiftStatus     `json:"status"`
	StartCash  decimal.Decimal `json:"startCash"`
	EndCash    decimal.Decimal `json:"endCash"`    // expected at close
	ActualCash decimal.Decimal `json:"actualCash"` // counted at close
	Variance   decimal.Decimal `json:"variance"`   // actual - expected
}
