package model

import "github.com/shopspring/decimal"

// Asset is a fixed asset depreciated straight-line. Accumulated depreciation
// and net book value are derived as of a date, never stored.
type Asset struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	PurchaseDate  Date            `json:"purchaseDate"`
	PurchaseValue decimal.Decimal `json:"purchaseValue"`
	// Rate is the annual straight-line depreciation rate in percent.
	Rate decimal.Decimal `json:"depreciationRate"`
}
