package model

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-day format used everywhere: in the snapshot,
// in journal CSVs, and on the command line. Lexicographic order of the
// rendered form matches chronological order.
const DateLayout = "2006-01-02"

// Date is a calendar day with no time-of-day component.
type Date struct {
	time.Time
}

// NewDate builds a Date from year/month/day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return Date{t}, nil
}

// DateOf truncates a time.Time to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// String renders the date as "YYYY-MM-DD".
func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON renders the date as a "YYYY-MM-DD" JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON parses a "YYYY-MM-DD" JSON string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
