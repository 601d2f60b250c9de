package commands_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tillbook-dev/tillbook/internal/auditlog"
	"github.com/tillbook-dev/tillbook/internal/model"
	"github.com/tillbook-dev/tillbook/internal/snapshot"
)

// chequeBooks initializes a books directory with one customer and one bank
// account, ready for cheque vouchers.
func chequeBooks(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	out, err := runTillbook(t, "init", dir, "--name", "Corner Store")
	require.NoError(t, err, out)
	out, err = runTillbook(t, "party", "add", "Alice", "--dir", dir, "--kind", "customer")
	require.NoError(t, err, out)

	books, err := snapshot.Load(dir)
	require.NoError(t, err)
	books.BankAccounts = append(books.BankAccounts, model.BankAccount{
		ID:   "bk1",
		Name: "First National",
	})
	require.NoError(t, snapshot.Save(dir, books))

	out, err = runTillbook(t, "voucher", "add", "--dir", dir,
		"--type", "receipt", "--amount", "200", "--party", "Alice",
		"--date", "2025-01-05",
		"--cheque", "000123", "--cheque-bank", "First National")
	require.NoError(t, err, out)

	return dir
}

func TestChequeBounce_AuditsReversal(t *testing.T) {
	dir := chequeBooks(t)

	out, err := runTillbook(t, "voucher", "cheque", "bounce", "RV-2025-01-001",
		"--dir", dir, "--date", "2025-01-12")
	require.NoError(t, err, out)

	books, err := snapshot.Load(dir)
	require.NoError(t, err)
	alice, ok := books.PartyByName("Alice")
	require.True(t, ok)
	require.Len(t, alice.Transactions, 2, "receipt plus reversal")
	assert.True(t, alice.Balance.IsZero())
	assert.Equal(t, model.ChequeBounced, books.Vouchers[0].Cheque.Status)

	// Both the receipt and its reversal show up in the audit trail.
	entries, err := auditlog.Read(dir)
	require.NoError(t, err)

	var bounce *auditlog.Entry
	for i := range entries {
		if entries[i].Action == "cheque bounce" {
			bounce = &entries[i]
		}
	}
	require.NotNil(t, bounce, "dishonor must write an audit row")
	assert.Equal(t, alice.ID, bounce.PartyID)
	assert.Equal(t, alice.Transactions[1].ID, bounce.TxnID)
	assert.True(t, bounce.Amount.Equal(decimal.NewFromInt(200)))
	assert.True(t, bounce.BalanceAfter.IsZero())
}

func TestChequeClear_NoPartyMutationNoAudit(t *testing.T) {
	dir := chequeBooks(t)

	before, err := auditlog.Read(dir)
	require.NoError(t, err)

	out, err := runTillbook(t, "voucher", "cheque", "clear", "RV-2025-01-001", "--dir", dir)
	require.NoError(t, err, out)

	books, err := snapshot.Load(dir)
	require.NoError(t, err)
	bank, ok := books.BankAccount("bk1")
	require.True(t, ok)
	assert.True(t, bank.Balance.Equal(decimal.NewFromInt(200)))

	// Clearing moves the bank, not a party balance; the audit trail is for
	// party ledger mutations only.
	after, err := auditlog.Read(dir)
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}
