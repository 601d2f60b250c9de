package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/tillbook-dev/tillbook/internal/model"
)

// StatementRow is one parsed row of a bank statement export.
type StatementRow struct {
	Date        model.Date
	Description string
	Amount      decimal.Decimal // negative = withdrawal, positive = deposit
	Reference   string
}

const (
	stmtNumFields = 4
	stmtColDate   = 0
	stmtColDesc   = 1
	stmtColAmount = 2
	stmtColRef    = 3
)

// ParseStatement reads a bank statement CSV with columns
// date,description,amount,reference.
func ParseStatement(r io.Reader) ([]StatementRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = stmtNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var rows []StatementRow
	for i, rec := range records[1:] {
		row, err := parseStatementRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseStatementRow(rec []string) (StatementRow, error) {
	date, err := model.ParseDate(rec[stmtColDate])
	if err != nil {
		return StatementRow{}, err
	}

	amount, err := decimal.NewFromString(rec[stmtColAmount])
	if err != nil {
		return StatementRow{}, fmt.Errorf("parsing amount %q: %w", rec[stmtColAmount], err)
	}

	return StatementRow{
		Date:        date,
		Description: rec[stmtColDesc],
		Amount:      amount,
		Reference:   rec[stmtColRef],
	}, nil
}
