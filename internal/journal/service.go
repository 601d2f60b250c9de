package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tillbook-dev/tillbook/internal/id"
	"github.com/tillbook-dev/tillbook/internal/model"
)

// Service provides business logic for manual journal entries.
type Service struct {
	booksDir string
	accounts AccountChecker
}

// NewService creates a journal Service.
func NewService(booksDir string, accounts AccountChecker) *Service {
	return &Service{booksDir: booksDir, accounts: accounts}
}

// LineParams is one side of a new journal entry.
type LineParams struct {
	AccountID int
	Debit     decimal.Decimal
	Credit    decimal.Decimal
}

// AddEntryParams holds parameters for creating a journal entry.
type AddEntryParams struct {
	Date        time.Time
	Description string
	Lines       []LineParams
	Reference   string
	Memo        string
}

// AddEntry creates a balanced journal entry from its lines, validates the
// whole month, and appends to the month's journal.csv. Returns the entry ID.
func (s *Service) AddEntry(params AddEntryParams) (string, error) {
	if len(params.Lines) < 2 {
		return "", fmt.Errorf("journal entry needs at least two lines, got %d", len(params.Lines))
	}

	year := params.Date.Year()
	month := int(params.Date.Month())

	seq, err := s.NextEntrySeq(year, month)
	if err != nil {
		return "", err
	}
	entryID := id.FormatEntryID(year, month, seq)

	newLines := make([]model.JournalLine, len(params.Lines))
	for i, lp := range params.Lines {
		newLines[i] = model.JournalLine{
			LineID:      id.FormatLineID(entryID, i),
			Date:        params.Date,
			AccountID:   lp.AccountID,
			Description: params.Description,
			Debit:       lp.Debit,
			Credit:      lp.Credit,
			Reference:   params.Reference,
			Memo:        params.Memo,
		}
	}

	// Read existing lines for validation.
	existing, err := s.ReadMonth(year, month)
	if err != nil {
		return "", err
	}

	// Validate ALL lines together.
	allLines := append(existing, newLines...)
	if verrs := ValidateLines(allLines, s.accounts, year, month); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return "", fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	// Append to journal file (create dir + header if new).
	journalPath := s.monthPath(year, month)
	dir := filepath.Dir(journalPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating journal dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(journalPath); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(journalPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return "", fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return "", fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendLines(f, newLines); err != nil {
		return "", fmt.Errorf("appending lines: %w", err)
	}

	return entryID, nil
}

// ReadMonth reads all journal lines for a given year/month.
func (s *Service) ReadMonth(year, month int) ([]model.JournalLine, error) {
	path := s.monthPath(year, month)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", path, err)
	}
	return lines, nil
}

// ReadAll reads every journal line in the books directory, in month order.
// Report aggregation consumes this.
func (s *Service) ReadAll() ([]model.JournalLine, error) {
	paths, err := filepath.Glob(filepath.Join(s.booksDir, "*", "*", "journal.csv"))
	if err != nil {
		return nil, fmt.Errorf("scanning journals: %w", err)
	}
	sort.Strings(paths)

	var all []model.JournalLine
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening journal %s: %w", path, err)
		}
		lines, err := ReadLines(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("reading journal %s: %w", path, err)
		}
		all = append(all, lines...)
	}
	return all, nil
}

// NextEntrySeq returns the next available sequence number for a month.
func (s *Service) NextEntrySeq(year, month int) (int, error) {
	lines, err := s.ReadMonth(year, month)
	if err != nil {
		return 0, err
	}

	maxSeq := 0
	for _, line := range lines {
		_, _, seq, err := id.ParseEntryID(line.LineID)
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1, nil
}

func (s *Service) monthPath(year, month int) string {
	return filepath.Join(s.booksDir, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month), "journal.csv")
}
