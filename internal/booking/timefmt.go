package booking

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"

	// TimestampLayout is the wire form of instants: UTC, microseconds, trailing Z.
	TimestampLayout = "2006-01-02T15:04:05.000000Z"
)

// Normalize converts t to the grid's canonical location. Every instant must
// pass through here before it is compared or stored.
func (g Grid) Normalize(t time.Time) time.Time {
	return t.In(g.Location)
}

// ParseDate parses a YYYY-MM-DD date as midnight in the canonical location.
func (g Grid) ParseDate(s string) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, s, g.Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	return day, nil
}

// DayBounds returns [midnight, next midnight) of day's date in the canonical location.
func (g Grid) DayBounds(day time.Time) (time.Time, time.Time) {
	y, m, d := g.Normalize(day).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, g.Location)

	return start, start.AddDate(0, 0, 1)
}

// Today is the calendar date of now in the canonical location.
func (g Grid) Today(now time.Time) time.Time {
	start, _ := g.DayBounds(now)
	return start
}

// ParseTimestamp accepts RFC 3339 with or without fractional seconds.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
	}

	return t, nil
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
