package storage

import (
	"fmt"
	"time"
)

// monthRange converts a "YYYY-MM" key into the inclusive [first instant,
// last instant] bounds of that calendar month in UTC.
func monthRange(yearMonth string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("storage: invalid month %q: %w", yearMonth, err)
	}
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end, nil
}

// sameDay reports whether two timestamps fall on the same UTC calendar day.
func sameDay(a, b time.Time) bool {
	a, b = a.UTC(), b.UTC()
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// dayRange returns the inclusive UTC bounds of the calendar day containing t.
func dayRange(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1).Add(-time.Nanosecond)
}
