package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryIDRoundtrip(t *testing.T) {
	entryID := FormatEntryID(2025, 1, 4)
	assert.Equal(t, "2025-01-004", entryID)

	year, month, seq, err := ParseEntryID(entryID)
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 1, month)
	assert.Equal(t, 4, seq)
}

func TestParseEntryID_AcceptsLineID(t *testing.T) {
	year, month, seq, err := ParseEntryID("2025-01-004b")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 1, month)
	assert.Equal(t, 4, seq)
}

func TestFormatLineID(t *testing.T) {
	assert.Equal(t, "2025-01-001a", FormatLineID("2025-01-001", 0))
	assert.Equal(t, "2025-01-001c", FormatLineID("2025-01-001", 2))
}

func TestEntryGroup(t *testing.T) {
	assert.Equal(t, "2025-01-001", EntryGroup("2025-01-001a"))
	assert.Equal(t, "2025-01-001", EntryGroup("2025-01-001"))
	assert.Equal(t, "", EntryGroup(""))
}

func TestVoucherNoRoundtrip(t *testing.T) {
	no := FormatVoucherNo(ReceiptPrefix, 2025, 1, 4)
	assert.Equal(t, "RV-2025-01-004", no)

	prefix, year, month, seq, err := ParseVoucherNo(no)
	require.NoError(t, err)
	assert.Equal(t, ReceiptPrefix, prefix)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 1, month)
	assert.Equal(t, 4, seq)
}

func TestParseVoucherNo_Rejects(t *testing.T) {
	for _, no := range []string{"", "RV", "XX-2025-01-004", "RV-2025-01", "2025-01-004"} {
		_, _, _, _, err := ParseVoucherNo(no)
		assert.Error(t, err, "%q should not parse", no)
	}
}
