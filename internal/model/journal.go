package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalLine is a single row in journal.csv (one side of a manual journal
// entry). Lines of one entry share an entry ID and differ by letter suffix.
type JournalLine struct {
	LineID      string // "YYYY-MM-NNNx" where x = a,b,c...
	Date        time.Time
	AccountID   int
	Description string
	Debit       decimal.Decimal // zero if credit side
	Credit      decimal.Decimal // zero if debit side
	Reference   string
	Memo        string
}

// EntryGroup returns the base entry ID (without line suffix).
// "2025-01-001a" -> "2025-01-001"
func (l JournalLine) EntryGroup() string {
	id := l.LineID
	i := len(id)
	for i > 0 && id[i-1] >= 'a' && id[i-1] <= 'z' {
		i--
	}
	return id[:i]
}
