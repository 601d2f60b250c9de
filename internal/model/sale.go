package model

import "github.com/shopspring/decimal"

// Product is a stocked item. CostPrice is the current replacement cost used
// for inventory valuation; historical reports never read it (see SaleLine).
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Barcode   string          `json:"barcode,omitempty"`
	CostPrice decimal.Decimal `json:"costPrice"`
	SalePrice decimal.Decimal `json:"salePrice"`
	Stock     decimal.Decimal `json:"stock"`
}

// SaleLine is one line of a sale. CostAtSale freezes the product's cost at
// the moment of sale so that COGS in historical reports is immune to later
// price edits.
type SaleLine struct {
	ProductID  string          `json:"productId"`
	Name       string          `json:"name"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	CostAtSale decimal.Decimal `json:"costAtSale"`
}

// Total returns quantity * unit price for the line.
func (l SaleLine) Total() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice)
}

// Tender is how a sale was settled.
type Tender string

const (
	TenderCash    Tender = "cash"
	TenderAccount Tender = "account" // charged to the customer's tab
	TenderBank    Tender = "bank"
)

// Sale is an invoice. CustomerID is empty for walk-in cash sales. ShiftID
// links cash sales to the drawer they were rung under.
type Sale struct {
	ID         string     `json:"id"`
	Number     string     `json:"number"`
	Date       Date       `json:"date"`
	CustomerID string     `json:"customerId,omitempty"`
	ShiftID    string     `json:"shiftId,omitempty"`
	Lines      []SaleLine `json:"lines"`
	Tender     Tender     `json:"tender"`
	Returned   bool       `json:"returned,omitempty"`
}

// Total returns the invoice total across all lines.
func (s Sale) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range s.Lines {
		sum = sum.Add(l.Total())
	}
	return sum
}

// Cost returns the cost basis of the invoice using cost-at-sale.
func (s Sale) Cost() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range s.Lines {
		sum = sum.Add(l.CostAtSale.Mul(l.Quantity))
	}
	return sum
}

// Expense is an operating expense, optionally posted under a shift.
type Expense struct {
	ID          string          `json:"id"`
	Date        Date            `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	ShiftID     string          `json:"shiftId,omitempty"`
}
