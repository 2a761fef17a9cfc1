// Package dateutils converts spreadsheet serial dates and ISO day strings.
package dateutils

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayoutISO is the layout used for days everywhere in the application.
const DateLayoutISO = "2006-01-02"

// Serial values outside this range are treated as invalid. The lower bound is
// 0001-01-02: serial -693593 (0001-01-01) is the zero time.Time and cannot
// carry a day.
const (
	minSerial = -693592
	maxSerial = 2958465
)

// SerialEpoch is day 0 of the spreadsheet serial date encoding.
var SerialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// FromSerial converts a serial day-count into a calendar day (UTC midnight).
// The fractional part (time of day) is truncated towards the earlier day.
// ok is false for empty, non-numeric or out-of-range values.
func FromSerial(raw string) (day time.Time, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return time.Time{}, false
	}
	whole := d.Floor()
	if whole.LessThan(decimal.NewFromInt(minSerial)) || whole.GreaterThan(decimal.NewFromInt(maxSerial)) {
		return time.Time{}, false
	}
	return SerialEpoch.AddDate(0, 0, int(whole.IntPart())), true
}

// TruncateDay drops the time of day, keeping the calendar date in UTC.
func TruncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses an ISO day (YYYY-MM-DD).
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DateLayoutISO, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse day %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// FormatDay formats a day as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.Format(DateLayoutISO)
}
