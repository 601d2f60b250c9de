package depreciation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tillbook-dev/tillbook/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(y, m, d int) model.Date {
	return model.NewDate(y, time.Month(m), d)
}

func asset(purchased model.Date, value, rate string) model.Asset {
	return model.Asset{
		Name:          "Delivery van",
		PurchaseDate:  purchased,
		PurchaseValue: dec(value),
		Rate:          dec(rate),
	}
}

func TestAccumulated_TwoYears(t *testing.T) {
	a := asset(date(2023, 1, 1), "100000", "10")

	// Two calendar years at 10%/year of 100,000 is 20,000; the 365.25-day
	// year puts the exact figure within a fraction of a percent of that.
	got := Accumulated(a, date(2025, 1, 1))
	diff := got.Sub(dec("20000")).Abs()
	assert.True(t, diff.LessThan(dec("30")), "accumulated %s not near 20000", got)

	nbv := NetBookValue(a, date(2025, 1, 1))
	assert.True(t, nbv.Add(got).Equal(dec("100000")), "cost must split into accumulated + NBV")
}

func TestAccumulated_CappedAtCost(t *testing.T) {
	a := asset(date(2014, 1, 1), "100000", "10")

	got := Accumulated(a, date(2025, 1, 1)) // 11 years at 10%
	assert.True(t, got.Equal(dec("100000")), "got %s", got)
	assert.True(t, NetBookValue(a, date(2025, 1, 1)).IsZero())
}

func TestAccumulated_BeforePurchaseIsZero(t *testing.T) {
	a := asset(date(2025, 6, 1), "5000", "20")

	assert.True(t, Accumulated(a, date(2025, 1, 1)).IsZero())
	assert.True(t, Accumulated(a, date(2025, 6, 1)).IsZero())
	assert.True(t, NetBookValue(a, date(2025, 1, 1)).Equal(dec("5000")))
}

func TestAccumulated_Bounds(t *testing.T) {
	a := asset(date(2020, 3, 15), "75000", "15")

	for year := 2020; year <= 2040; year++ {
		got := Accumulated(a, date(year, 12, 31))
		assert.False(t, got.IsNegative(), "year %d: negative depreciation", year)
		assert.True(t, got.LessThanOrEqual(a.PurchaseValue), "year %d: exceeds cost", year)
	}
}

func TestAccumulated_MonotonicInDate(t *testing.T) {
	a := asset(date(2022, 7, 1), "40000", "25")

	prev := decimal.Zero
	for year := 2022; year <= 2030; year++ {
		got := Accumulated(a, date(year, 12, 31))
		assert.True(t, got.GreaterThanOrEqual(prev), "depreciation decreased at %d", year)
		prev = got
	}
}

func TestAccumulated_ZeroRate(t *testing.T) {
	a := asset(date(2020, 1, 1), "9000", "0")
	assert.True(t, Accumulated(a, date(2030, 1, 1)).IsZero())
}
