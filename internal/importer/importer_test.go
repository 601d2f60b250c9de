package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tillbook-dev/tillbook/internal/model"
	"github.com/tillbook-dev/tillbook/internal/snapshot"
	"github.com/tillbook-dev/tillbook/internal/vouchers"
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

func TestParseStatement(t *testing.T) {
	csv := `date,description,amount,reference
2025-01-20,CHQ DEP 000123,250.00,000123
2025-01-21,POS PURCHASE,-42.50,
`
	rows, err := ParseStatement(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, date(2025, 1, 20), rows[0].Date)
	assert.True(t, rows[0].Amount.Equal(dec("250")))
	assert.Equal(t, "000123", rows[0].Reference)
	assert.True(t, rows[1].Amount.IsNegative())
}

func TestParseStatement_BadDate(t *testing.T) {
	csv := "date,description,amount,reference\nJan 20,x,1.00,\n"
	_, err := ParseStatement(strings.NewReader(csv))
	require.Error(t, err)
}

func matchBooks(t *testing.T) *snapshot.Books {
	t.Helper()
	books := &snapshot.Books{
		BankAccounts: []model.BankAccount{
			{ID: "bk1", Name: "First National", Balance: dec("1000")},
			{ID: "bk2", Name: "Savings", Balance: dec("0")},
		},
	}
	_, err := vouchers.Issue(books, vouchers.IssueParams{
		Date:   date(2025, 1, 5),
		Type:   model.VoucherReceipt,
		Amount: dec("250"),
		Cheque: &model.Cheque{Number: "000123", BankAccountID: "bk1", DueDate: date(2025, 1, 20)},
	})
	require.NoError(t, err)
	_, err = vouchers.Issue(books, vouchers.IssueParams{
		Date:   date(2025, 1, 6),
		Type:   model.VoucherPayment,
		Amount: dec("400"),
		Cheque: &model.Cheque{Number: "000124", BankAccountID: "bk2"},
	})
	require.NoError(t, err)
	return books
}

func TestMatch_ClearsByReferenceAndAmount(t *testing.T) {
	books := matchBooks(t)
	rows := []StatementRow{
		{Date: date(2025, 1, 20), Description: "CHQ DEP 000123", Amount: dec("250"), Reference: "CHQ 000123"},
		{Date: date(2025, 1, 21), Description: "POS PURCHASE", Amount: dec("-42.50"), Reference: ""},
	}

	res, err := Match(books, "bk1", rows)
	require.NoError(t, err)

	assert.Equal(t, []string{"000123"}, res.Cleared)
	require.Len(t, res.Unmatched, 1)
	assert.Equal(t, "POS PURCHASE", res.Unmatched[0].Description)

	bank, _ := books.BankAccount("bk1")
	assert.True(t, bank.Balance.Equal(dec("1250")), "cleared receipt deposits into the bank")
	assert.Equal(t, model.ChequeCleared, books.Vouchers[0].Cheque.Status)
	assert.Equal(t, model.ChequePending, books.Vouchers[1].Cheque.Status, "other bank's cheque untouched")
}

func TestMatch_AmountMustAgree(t *testing.T) {
	books := matchBooks(t)
	rows := []StatementRow{
		{Date: date(2025, 1, 20), Amount: dec("99"), Reference: "000123"},
	}

	res, err := Match(books, "bk1", rows)
	require.NoError(t, err)
	assert.Empty(t, res.Cleared)
	assert.Len(t, res.Unmatched, 1)
	assert.Equal(t, model.ChequePending, books.Vouchers[0].Cheque.Status)
}

func TestMatch_NegativeWithdrawalMatchesPaymentCheque(t *testing.T) {
	books := matchBooks(t)
	rows := []StatementRow{
		{Date: date(2025, 1, 22), Amount: dec("-400"), Reference: "000124"},
	}

	res, err := Match(books, "bk2", rows)
	require.NoError(t, err)
	assert.Equal(t, []string{"000124"}, res.Cleared)

	bank, _ := books.BankAccount("bk2")
	assert.True(t, bank.Balance.Equal(dec("-400")))
}

func TestMatch_ReferenceTokenMustEqualChequeNumber(t *testing.T) {
	books := &snapshot.Books{
		BankAccounts: []model.BankAccount{{ID: "bk1", Name: "First National", Balance: dec("1000")}},
	}
	_, err := vouchers.Issue(books, vouchers.IssueParams{
		Date:   date(2025, 1, 5),
		Type:   model.VoucherReceipt,
		Amount: dec("100"),
		Cheque: &model.Cheque{Number: "1", BankAccountID: "bk1"},
	})
	require.NoError(t, err)

	// "1" is a substring of these references but not a token of them.
	rows := []StatementRow{
		{Date: date(2025, 1, 20), Amount: dec("100"), Reference: "000123"},
		{Date: date(2025, 1, 21), Amount: dec("100"), Reference: "INV 2025-1"},
	}

	res, err := Match(books, "bk1", rows)
	require.NoError(t, err)
	assert.Empty(t, res.Cleared)
	assert.Len(t, res.Unmatched, 2)
	assert.Equal(t, model.ChequePending, books.Vouchers[0].Cheque.Status)

	// As its own token the number does match.
	res, err = Match(books, "bk1", []StatementRow{
		{Date: date(2025, 1, 22), Amount: dec("100"), Reference: "CHQ 1 PRESENTED"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, res.Cleared)
}

func TestMatch_ChequeClearsOnlyOnce(t *testing.T) {
	books := matchBooks(t)
	rows := []StatementRow{
		{Date: date(2025, 1, 20), Amount: dec("250"), Reference: "000123"},
		{Date: date(2025, 1, 27), Amount: dec("250"), Reference: "000123"},
	}

	res, err := Match(books, "bk1", rows)
	require.NoError(t, err)
	assert.Equal(t, []string{"000123"}, res.Cleared)
	assert.Len(t, res.Unmatched, 1, "duplicate row must not clear twice")

	bank, _ := books.BankAccount("bk1")
	assert.True(t, bank.Balance.Equal(dec("1250")))
}

func TestScanAndMarkProcessed(t *testing.T) {
	dir := t.TempDir()
	importPath := filepath.Join(dir, "import")
	require.NoError(t, os.MkdirAll(importPath, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(importPath, "jan.csv"), []byte("date,description,amount,reference\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(importPath, "notes.txt"), []byte("x"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 1, "only CSVs are picked up")
	assert.Equal(t, "jan.csv", files[0].Name)

	require.NoError(t, MarkProcessed(dir, "jan.csv"))

	files, err = Scan(dir)
	require.NoError(t, err)
	assert.Empty(t, files)
	_, err = os.Stat(filepath.Join(importPath, "processed", "jan.csv"))
	require.NoError(t, err)
}

func TestScan_MissingDirIsEmpty(t *testing.T) {
	files, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}
