package journal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tillbook-dev/tillbook/internal/model"
)

func TestWriteReadLines_Roundtrip(t *testing.T) {
	in := []model.JournalLine{
		line("2025-01-001a", 15, 1010, "500.00", "0"),
		line("2025-01-001b", 15, 3010, "0", "500.00"),
	}
	in[0].Description = "Owner capital, with a comma"
	in[0].Reference = "slip 42"

	var buf bytes.Buffer
	require.NoError(t, WriteLines(&buf, in))

	out, err := ReadLines(&buf)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, in[0].LineID, out[0].LineID)
	assert.Equal(t, in[0].Description, out[0].Description)
	assert.Equal(t, in[0].Reference, out[0].Reference)
	assert.True(t, out[0].Debit.Equal(dec("500.00")))
	assert.True(t, out[0].Credit.IsZero(), "empty credit column reads back as zero")
	assert.True(t, out[1].Credit.Equal(dec("500.00")))
}

func TestReadLines_BadRow(t *testing.T) {
	csv := Header + "\n2025-01-001a,not-a-date,1010,x,500.00,,,\n"
	_, err := ReadLines(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")
}
