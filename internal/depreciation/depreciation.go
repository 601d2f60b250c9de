// Package depreciation derives straight-line depreciation figures for fixed
// assets as of an arbitrary date.
package depreciation

import (
	"github.com/shopspring/decimal"

	"github.com/tillbook-dev/tillbook/internal/model"
)

// daysPerYear uses the Julian year so that leap days do not skew multi-year
// schedules.
var daysPerYear = decimal.NewFromFloat(365.25)

var hundred = decimal.NewFromInt(100)

// Accumulated returns the depreciation accrued on an asset as of a date:
// purchaseValue * rate% * yearsElapsed, never negative, capped at full cost.
func Accumulated(asset model.Asset, asOf model.Date) decimal.Decimal {
	elapsed := asOf.Sub(asset.PurchaseDate.Time)
	if elapsed <= 0 {
		return decimal.Zero
	}

	days := decimal.NewFromFloat(elapsed.Hours() / 24)
	years := days.Div(daysPerYear)
	accrued := asset.PurchaseValue.Mul(asset.Rate).Div(hundred).Mul(years)
	if accrued.GreaterThan(asset.PurchaseValue) {
		return asset.PurchaseValue
	}
	return accrued
}

// NetBookValue returns purchase value minus accumulated depreciation.
func NetBookValue(asset model.Asset, asOf model.Date) decimal.Decimal {
	return asset.PurchaseValue.Sub(Accumulated(asset, asOf))
}
