package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tillbook-dev/tillbook/internal/id"
	"github.com/tillbook-dev/tillbook/internal/model"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	EntryID     string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.EntryID, e.Description)
}

// AccountChecker tests whether an account ID exists in the chart of accounts.
type AccountChecker interface {
	Exists(id int) bool
}

// ValidateLines enforces 7 invariants on a set of journal lines for a given month.
func ValidateLines(lines []model.JournalLine, accounts AccountChecker, year, month int) []ValidationError {
	var errs []ValidationError

	// Group lines by entry.
	groups := make(map[string][]model.JournalLine)
	var groupOrder []string
	for _, line := range lines {
		g := line.EntryGroup()
		if _, seen := groups[g]; !seen {
			groupOrder = append(groupOrder, g)
		}
		groups[g] = append(groups[g], line)
	}

	// Invariant 1: Entries balance (sum(debits) == sum(credits) per group)
	// and move a positive amount.
	for _, g := range groupOrder {
		totalDebit := decimal.Zero
		totalCredit := decimal.Zero
		for _, line := range groups[g] {
			totalDebit = totalDebit.Add(line.Debit)
			totalCredit = totalCredit.Add(line.Credit)
		}
		if !totalDebit.Equal(totalCredit) {
			errs = append(errs, ValidationError{
				Invariant:   1,
				EntryID:     g,
				Description: fmt.Sprintf("debits (%s) != credits (%s)", totalDebit.StringFixed(2), totalCredit.StringFixed(2)),
			})
		}
		if !totalDebit.IsPositive() {
			errs = append(errs, ValidationError{
				Invariant:   7,
				EntryID:     g,
				Description: "entry must move a positive amount",
			})
		}
	}

	for _, line := range lines {
		// Invariant 2: Exactly one of debit/credit per row, both non-negative.
		hasDebit := !line.Debit.IsZero()
		hasCredit := !line.Credit.IsZero()
		if hasDebit == hasCredit || line.Debit.IsNegative() || line.Credit.IsNegative() {
			errs = append(errs, ValidationError{
				Invariant:   2,
				EntryID:     line.LineID,
				Description: "line must have exactly one positive side",
			})
		}

		// Invariant 3: Valid account references.
		if !accounts.Exists(line.AccountID) {
			errs = append(errs, ValidationError{
				Invariant:   3,
				EntryID:     line.LineID,
				Description: fmt.Sprintf("unknown account %d", line.AccountID),
			})
		}

		// Invariant 4: Date within month.
		if line.Date.Year() != year || int(line.Date.Month()) != month {
			errs = append(errs, ValidationError{
				Invariant:   4,
				EntryID:     line.LineID,
				Description: fmt.Sprintf("date %s not in %04d-%02d", line.Date.Format("2006-01-02"), year, month),
			})
		}

		// Invariant 6: Exact decimals — no more than 2 decimal places.
		two := decimal.NewFromInt(100)
		if !line.Debit.IsZero() && !line.Debit.Mul(two).Equal(line.Debit.Mul(two).Floor()) {
			errs = append(errs, ValidationError{
				Invariant:   6,
				EntryID:     line.LineID,
				Description: fmt.Sprintf("debit %s has more than 2 decimal places", line.Debit),
			})
		}
		if !line.Credit.IsZero() && !line.Credit.Mul(two).Equal(line.Credit.Mul(two).Floor()) {
			errs = append(errs, ValidationError{
				Invariant:   6,
				EntryID:     line.LineID,
				Description: fmt.Sprintf("credit %s has more than 2 decimal places", line.Credit),
			})
		}
	}

	// Invariant 5: Unique sequential entry IDs — contiguous 1..N.
	seqSeen := make(map[int]bool)
	for _, line := range lines {
		_, _, seq, err := id.ParseEntryID(line.LineID)
		if err != nil {
			errs = append(errs, ValidationError{
				Invariant:   5,
				EntryID:     line.LineID,
				Description: fmt.Sprintf("invalid entry ID: %v", err),
			})
			continue
		}
		seqSeen[seq] = true
	}
	if len(seqSeen) > 0 {
		for i := 1; i <= len(seqSeen); i++ {
			if !seqSeen[i] {
				errs = append(errs, ValidationError{
					Invariant:   5,
					EntryID:     fmt.Sprintf("seq %d", i),
					Description: fmt.Sprintf("missing sequence %d in 1..%d", i, len(seqSeen)),
				})
			}
		}
	}

	return errs
}
