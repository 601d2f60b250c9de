// Package auditlog keeps an append-only CSV trail of balance mutations.
// Every transaction applied to a party writes one row here, so the books can
// show who moved a balance and when, independent of the snapshot itself.
package auditlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one row in the audit log.
type Entry struct {
	Timestamp    time.Time
	Actor        string
	Action       string
	PartyID      string
	TxnID        string
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
}

// Header is the CSV header for audit-log.csv.
const Header = "timestamp,actor,action,party_id,txn_id,amount,balance_after"

const (
	numFields    = 7
	logDir       = "logs"
	logFile      = "logs/audit-log.csv"
	colTimestamp = 0
	colActor     = 1
	colAction    = 2
	colPartyID   = 3
	colTxnID     = 4
	colAmount    = 5
	colBalance   = 6
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colActor] = e.Actor
	row[colAction] = e.Action
	row[colPartyID] = e.PartyID
	row[colTxnID] = e.TxnID
	row[colAmount] = e.Amount.StringFixed(2)
	row[colBalance] = e.BalanceAfter.StringFixed(2)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	balance, err := decimal.NewFromString(record[colBalance])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing balance_after %q: %w", record[colBalance], err)
	}

	return Entry{
		Timestamp:    ts,
		Actor:        record[colActor],
		Action:       record[colAction],
		PartyID:      record[colPartyID],
		TxnID:        record[colTxnID],
		Amount:       amount,
		BalanceAfter: balance,
	}, nil
}

// Append writes entries to <booksDir>/logs/audit-log.csv, creating the file
// and header if needed.
func Append(booksDir string, entries []Entry) error {
	dir := filepath.Join(booksDir, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(booksDir, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <booksDir>/logs/audit-log.csv.
// Returns an empty slice if the file does not exist.
func Read(booksDir string) ([]Entry, error) {
	path := filepath.Join(booksDir, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading audit log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
