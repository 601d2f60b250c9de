// Package id formats and parses the human-facing document numbers used in
// the books: journal entry IDs and voucher numbers. Entity identity is a
// separate concern (uuids on the snapshot records).
package id

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatEntryID returns a journal entry ID like "2025-01-001".
func FormatEntryID(year, month, seq int) string {
	return fmt.Sprintf("%04d-%02d-%03d", year, month, seq)
}

// FormatLineID returns a journal line ID like "2025-01-001a" (line 0='a', 1='b', etc.).
func FormatLineID(entryID string, line int) string {
	return entryID + string(rune('a'+line))
}

// ParseEntryID parses "2025-01-001" into year, month, seq.
func ParseEntryID(id string) (year, month, seq int, err error) {
	// Strip any line suffix (trailing lowercase letters).
	base := EntryGroup(id)

	parts := strings.SplitN(base, "-", 3)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid entry ID format: %q", id)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year in entry ID %q: %w", id, err)
	}

	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid month in entry ID %q: %w", id, err)
	}

	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid sequence in entry ID %q: %w", id, err)
	}

	return year, month, seq, nil
}

// EntryGroup strips the line suffix from a line ID.
// "2025-01-001a" -> "2025-01-001"
func EntryGroup(lineID string) string {
	if len(lineID) == 0 {
		return ""
	}
	i := len(lineID)
	for i > 0 && lineID[i-1] >= 'a' && lineID[i-1] <= 'z' {
		i--
	}
	return lineID[:i]
}

// Voucher number prefixes.
const (
	ReceiptPrefix = "RV"
	PaymentPrefix = "PV"
)

// FormatVoucherNo returns a voucher number like "RV-2025-01-004".
func FormatVoucherNo(prefix string, year, month, seq int) string {
	return fmt.Sprintf("%s-%s", prefix, FormatEntryID(year, month, seq))
}

// ParseVoucherNo parses "RV-2025-01-004" into prefix, year, month, seq.
func ParseVoucherNo(no string) (prefix string, year, month, seq int, err error) {
	prefix, rest, found := strings.Cut(no, "-")
	if !found || (prefix != ReceiptPrefix && prefix != PaymentPrefix) {
		return "", 0, 0, 0, fmt.Errorf("invalid voucher number: %q", no)
	}
	year, month, seq, err = ParseEntryID(rest)
	if err != nil {
		return "", 0, 0, 0, fmt.Errorf("invalid voucher number %q: %w", no, err)
	}
	return prefix, year, month, seq, nil
}
