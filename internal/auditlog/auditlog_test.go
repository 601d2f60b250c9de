package auditlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func entry(action string) Entry {
	return Entry{
		Timestamp:    time.Date(2025, 1, 5, 10, 30, 0, 0, time.UTC),
		Actor:        "dana",
		Action:       action,
		PartyID:      "alice",
		TxnID:        "t1",
		Amount:       dec("200"),
		BalanceAfter: dec("300"),
	}
}

func TestAppendRead_Roundtrip(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Append(dir, []Entry{entry("txn add"), entry("voucher add")}))
	require.NoError(t, Append(dir, []Entry{entry("cheque clear")}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3, "appends accumulate, never overwrite")

	assert.Equal(t, "txn add", entries[0].Action)
	assert.Equal(t, "cheque clear", entries[2].Action)
	assert.Equal(t, "alice", entries[0].PartyID)
	assert.True(t, entries[0].Amount.Equal(dec("200")))
	assert.True(t, entries[0].BalanceAfter.Equal(dec("300")))
	assert.Equal(t, time.Date(2025, 1, 5, 10, 30, 0, 0, time.UTC), entries[0].Timestamp)
}

func TestAppend_WritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Append(dir, []Entry{entry("txn add")}))
	require.NoError(t, Append(dir, []Entry{entry("txn add")}))

	data, err := os.ReadFile(filepath.Join(dir, "logs", "audit-log.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "timestamp,actor"))
}

func TestRead_MissingFileIsEmpty(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
