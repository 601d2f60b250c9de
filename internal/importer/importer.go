// Package importer brings bank statement CSVs into the books and matches
// statement rows against pending cheques so they can be cleared.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tillbook-dev/tillbook/internal/model"
	"github.com/tillbook-dev/tillbook/internal/snapshot"
	"github.com/tillbook-dev/tillbook/internal/vouchers"
)

// FileInfo describes a CSV file in the import directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// importDir is the subdirectory for import CSVs.
const importDir = "import"

// processedDir is the subdirectory for processed CSVs.
const processedDir = "import/processed"

// Scan returns CSV files in <booksDir>/import/.
func Scan(booksDir string) ([]FileInfo, error) {
	dir := filepath.Join(booksDir, importDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// MarkProcessed moves a file from import/ to import/processed/.
func MarkProcessed(booksDir, fileName string) error {
	src := filepath.Join(booksDir, importDir, fileName)
	dstDir := filepath.Join(booksDir, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}

// MatchResult reports what a statement import did.
type MatchResult struct {
	Cleared   []string       // cheque numbers cleared
	Unmatched []StatementRow // rows no pending cheque explains
}

// Match clears every pending cheque that a statement row explains: same bank
// account, cheque number appearing as a whole token of the row reference,
// same magnitude. Rows that match nothing are reported back, never guessed at.
func Match(books *snapshot.Books, bankAccountID string, rows []StatementRow) (MatchResult, error) {
	var res MatchResult

	pending := books.PendingCheques()
	for _, row := range rows {
		matched := false
		for _, v := range pending {
			if v.Cheque.Status != model.ChequePending {
				continue // cleared earlier in this run
			}
			if v.Cheque.BankAccountID != bankAccountID {
				continue
			}
			if !referenceMatches(row.Reference, v.Cheque.Number) {
				continue
			}
			if !row.Amount.Abs().Equal(v.Amount) {
				continue
			}
			if err := vouchers.Clear(books, v.ID); err != nil {
				return MatchResult{}, fmt.Errorf("clearing cheque %s: %w", v.Cheque.Number, err)
			}
			res.Cleared = append(res.Cleared, v.Cheque.Number)
			matched = true
			break
		}
		if !matched {
			res.Unmatched = append(res.Unmatched, row)
		}
	}
	return res, nil
}

// referenceMatches reports whether the cheque number appears as a whole
// whitespace-separated token of the reference. Substring containment would
// let a short number like "1" claim unrelated rows.
func referenceMatches(reference, chequeNumber string) bool {
	for _, token := range strings.Fields(reference) {
		if token == chequeNumber {
			return true
		}
	}
	return false
}
