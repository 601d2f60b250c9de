package journal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tillbook-dev/tillbook/internal/model"
)

type mockAccounts struct {
	ids map[int]bool
}

func newMockAccounts(ids ...int) *mockAccounts {
	m := &mockAccounts{ids: make(map[int]bool)}
	for _, id := range ids {
		m.ids[id] = true
	}
	return m
}

func (m *mockAccounts) Exists(id int) bool {
	return m.ids[id]
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func line(lineID string, day, accountID int, debit, credit string) model.JournalLine {
	return model.JournalLine{
		LineID:    lineID,
		Date:      time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC),
		AccountID: accountID,
		Debit:     dec(debit),
		Credit:    dec(credit),
	}
}

func balancedEntry() []model.JournalLine {
	return []model.JournalLine{
		line("2025-01-001a", 15, 1010, "500.00", "0"),
		line("2025-01-001b", 15, 3010, "0", "500.00"),
	}
}

func invariants(errs []ValidationError) []int {
	var out []int
	for _, e := range errs {
		out = append(out, e.Invariant)
	}
	return out
}

func TestValidateLines_CleanEntry(t *testing.T) {
	accts := newMockAccounts(1010, 3010)
	errs := ValidateLines(balancedEntry(), accts, 2025, 1)
	assert.Empty(t, errs)
}

func TestValidateLines_UnbalancedEntry(t *testing.T) {
	accts := newMockAccounts(1010, 3010)
	lines := []model.JournalLine{
		line("2025-01-001a", 15, 1010, "500.00", "0"),
		line("2025-01-001b", 15, 3010, "0", "400.00"),
	}
	errs := ValidateLines(lines, accts, 2025, 1)
	assert.Contains(t, invariants(errs), 1)
}

func TestValidateLines_ZeroEntry(t *testing.T) {
	accts := newMockAccounts(1010, 3010)
	lines := []model.JournalLine{
		line("2025-01-001a", 15, 1010, "0", "0"),
		line("2025-01-001b", 15, 3010, "0", "0"),
	}
	errs := ValidateLines(lines, accts, 2025, 1)
	assert.Contains(t, invariants(errs), 7, "entry must move a positive amount")
}

func TestValidateLines_BothSidesSet(t *testing.T) {
	accts := newMockAccounts(1010, 3010)
	lines := []model.JournalLine{
		line("2025-01-001a", 15, 1010, "500.00", "500.00"),
		line("2025-01-001b", 15, 3010, "500.00", "500.00"),
	}
	errs := ValidateLines(lines, accts, 2025, 1)
	assert.Contains(t, invariants(errs), 2)
}

func TestValidateLines_UnknownAccount(t *testing.T) {
	accts := newMockAccounts(1010)
	errs := ValidateLines(balancedEntry(), accts, 2025, 1)
	assert.Contains(t, invariants(errs), 3)
}

func TestValidateLines_DateOutsideMonth(t *testing.T) {
	accts := newMockAccounts(1010, 3010)
	errs := ValidateLines(balancedEntry(), accts, 2025, 2)
	assert.Contains(t, invariants(errs), 4)
}

func TestValidateLines_SequenceGap(t *testing.T) {
	accts := newMockAccounts(1010, 3010)
	lines := []model.JournalLine{
		line("2025-01-001a", 15, 1010, "100.00", "0"),
		line("2025-01-001b", 15, 3010, "0", "100.00"),
		line("2025-01-003a", 16, 1010, "50.00", "0"),
		line("2025-01-003b", 16, 3010, "0", "50.00"),
	}
	errs := ValidateLines(lines, accts, 2025, 1)
	assert.Contains(t, invariants(errs), 5, "missing sequence 2")
}

func TestValidateLines_TooManyDecimals(t *testing.T) {
	accts := newMockAccounts(1010, 3010)
	lines := []model.JournalLine{
		line("2025-01-001a", 15, 1010, "100.005", "0"),
		line("2025-01-001b", 15, 3010, "0", "100.005"),
	}
	errs := ValidateLines(lines, accts, 2025, 1)
	assert.Contains(t, invariants(errs), 6)
}
