// Package dates normalizes the heterogeneous date strings found in journal
// rows into canonical calendar days. Every grouping in the aggregation
// pipeline joins on the day-key produced here.
package dates

import (
	"errors"
	"strings"
	"time"
)

// ErrUnparseableDate is returned when an input matches none of the accepted
// formats. Callers exclude such records from date-filtered views instead of
// substituting a default day.
var ErrUnparseableDate = errors.New("unparseable date")

// KeyLayout is the canonical day-key format.
const KeyLayout = "2006-01-02"

// Layouts attempted against the date portion of the input, in order. The
// slash layout accepts both single and double digit month/day.
var layouts = []string{
	KeyLayout,
	"1/2/2006",
	time.RFC3339,
}

// Parse converts a journal date string to a calendar day at midnight UTC.
// Accepted inputs: ISO dates (2025-12-12), US slash dates with an optional
// time-of-day suffix (12/12/2025 15:05:45 EST, 1/2/2025), and RFC3339
// timestamps. Empty or unrecognized input returns ErrUnparseableDate.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrUnparseableDate
	}

	if t, err := time.Parse(KeyLayout, s); err == nil {
		return midnight(t), nil
	}

	// Trailing time and timezone are discarded; only the day matters.
	datePart := s
	if i := strings.IndexByte(s, ' '); i > 0 {
		datePart = s[:i]
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, datePart); err == nil {
			return midnight(t), nil
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return midnight(t), nil
	}
	return time.Time{}, ErrUnparseableDate
}

// Key normalizes any accepted date string to its canonical YYYY-MM-DD
// representation. Unparseable input is returned unchanged so malformed rows
// group together under their raw value rather than colliding with real days.
func Key(s string) string {
	t, err := Parse(s)
	if err != nil {
		return s
	}
	return t.Format(KeyLayout)
}

// KeyOf formats an already-parsed time as a day-key.
func KeyOf(t time.Time) string {
	return t.Format(KeyLayout)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
