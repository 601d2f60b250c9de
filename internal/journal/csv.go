package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tillbook-dev/tillbook/internal/model"
)

// Header is the CSV header for journal.csv.
const Header = "line_id,date,account_id,description,debit,credit,reference,memo"

const (
	numFields  = 8
	dateFormat = "2006-01-02"
	colLineID  = 0
	colDate    = 1
	colAcctID  = 2
	colDesc    = 3
	colDebit   = 4
	colCredit  = 5
	colRef     = 6
	colMemo    = 7
)

// ReadLines reads all journal lines from a journal.csv reader.
func ReadLines(r io.Reader) ([]model.JournalLine, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var lines []model.JournalLine
	for i, rec := range records[1:] {
		line, err := UnmarshalLine(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// WriteLines writes journal lines to a journal.csv writer (including header).
func WriteLines(w io.Writer, lines []model.JournalLine) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, line := range lines {
		if err := cw.Write(MarshalLine(line)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendLines appends journal lines to an existing journal.csv writer (no header).
func AppendLines(w io.Writer, lines []model.JournalLine) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, line := range lines {
		if err := cw.Write(MarshalLine(line)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalLine converts a JournalLine to a CSV row ([]string).
func MarshalLine(line model.JournalLine) []string {
	row := make([]string, numFields)
	row[colLineID] = line.LineID
	row[colDate] = line.Date.Format(dateFormat)
	row[colAcctID] = strconv.Itoa(line.AccountID)
	row[colDesc] = line.Description

	if !line.Debit.IsZero() {
		row[colDebit] = line.Debit.StringFixed(2)
	}
	if !line.Credit.IsZero() {
		row[colCredit] = line.Credit.StringFixed(2)
	}

	row[colRef] = line.Reference
	row[colMemo] = line.Memo

	return row
}

// UnmarshalLine converts a CSV row to a JournalLine.
func UnmarshalLine(record []string) (model.JournalLine, error) {
	if len(record) != numFields {
		return model.JournalLine{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.JournalLine{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	accountID, err := strconv.Atoi(record[colAcctID])
	if err != nil {
		return model.JournalLine{}, fmt.Errorf("parsing account_id %q: %w", record[colAcctID], err)
	}

	var debit, credit decimal.Decimal

	if record[colDebit] != "" {
		debit, err = decimal.NewFromString(record[colDebit])
		if err != nil {
			return model.JournalLine{}, fmt.Errorf("parsing debit %q: %w", record[colDebit], err)
		}
	}

	if record[colCredit] != "" {
		credit, err = decimal.NewFromString(record[colCredit])
		if err != nil {
			return model.JournalLine{}, fmt.Errorf("parsing credit %q: %w", record[colCredit], err)
		}
	}

	return model.JournalLine{
		LineID:      record[colLineID],
		Date:        date,
		AccountID:   accountID,
		Description: record[colDesc],
		Debit:       debit,
		Credit:      credit,
		Reference:   record[colRef],
		Memo:        record[colMemo],
	}, nil
}
