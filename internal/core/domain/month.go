package domain

import (
	"fmt"
	"time"
)

// monthLayout is the wire format for declaration months, e.g. "2025-03".
const monthLayout = "2006-01"

// MonthKey identifies a calendar month in "YYYY-MM" form.
type MonthKey string

// MonthOf returns the MonthKey for the month containing t.
func MonthOf(t time.Time) MonthKey {
	return MonthKey(t.Format(monthLayout))
}

// CurrentMonth returns the MonthKey for the current calendar month.
func CurrentMonth() MonthKey {
	return MonthOf(time.Now())
}

// ParseMonthKey validates and normalizes a "YYYY-MM" string.
func ParseMonthKey(s string) (MonthKey, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid month %q: %w", s, err)
	}
	return MonthOf(t), nil
}

// Year returns the calendar year of the month key, or 0 if the key is malformed.
func (m MonthKey) Year() int {
	t, err := time.Parse(monthLayout, string(m))
	if err != nil {
		return 0
	}
	return t.Year()
}

// Time returns midnight on the first day of the month.
func (m MonthKey) Time() time.Time {
	t, _ := time.Parse(monthLayout, string(m))
	return t
}

func (m MonthKey) String() string {
	return string(m)
}
