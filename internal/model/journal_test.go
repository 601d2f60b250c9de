package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJournalLineEntryGroup(t *testing.T) {
	tests := []struct {
		lineID string
		want   string
	}{
		{"2025-01-001a", "2025-01-001"},
		{"2025-01-001b", "2025-01-001"},
		{"2025-01-001", "2025-01-001"},
		{"2025-12-099abc", "2025-12-099"},
		{"", ""},
	}
	for _, tt := range tests {
		line := JournalLine{LineID: tt.lineID}
		assert.Equal(t, tt.want, line.EntryGroup(), "EntryGroup(%q)", tt.lineID)
	}
}
