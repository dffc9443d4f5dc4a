package utils

import (
	"fmt"
	"time"
)

const ISODate = "2006-01-02"

// EachDate returns every calendar day from start to end inclusive, ascending,
// as ISO date strings. An inverted range yields an empty slice rather than an
// error, as does input that does not parse as a date.
func EachDate(start, end string) []string {
	from, err := time.Parse(ISODate, start)
	if err != nil {
		return nil
	}
	to, err := time.Parse(ISODate, end)
	if err != nil {
		return nil
	}

	var out []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		out = append(out, d.Format(ISODate))
	}
	return out
}

// DaysInMonth returns the number of calendar days in a "YYYY-MM" month,
// accounting for leap years. Returns 0 for unparseable input.
func DaysInMonth(yyyyMM string) int {
	t, err := time.Parse("2006-01", yyyyMM)
	if err != nil {
		return 0
	}
	// day 0 of the next month is the last day of this one
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthOf extracts the "YYYY-MM" prefix of an ISO date string.
func MonthOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// DayOfMonth returns the day-of-month component of an ISO date string,
// or 0 if the string does not parse.
func DayOfMonth(date string) int {
	t, err := time.Parse(ISODate, date)
	if err != nil {
		return 0
	}
	return t.Day()
}

// ISOWeekday returns the weekday of an ISO date with Monday=1..Sunday=7.
func ISOWeekday(date string) (int, error) {
	t, err := time.Parse(ISODate, date)
	if err != nil {
		return 0, fmt.Errorf("parse date %q: %w", date, err)
	}
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd, nil
}
