package fourth

import (
	"time"
)

const (
	minYear = 1
	maxYear = 9999

	// maxDays bounds the whole days any in-range addition can span.
	maxDays = 3652059
)

// daysIn returns the number of days in month of year.
func daysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func checkField(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return &RangeError{Field: field, Value: int64(v), Min: int64(lo), Max: int64(hi)}
	}
	return nil
}

// civil validates each field in turn and returns the matching wall clock
// in time.UTC. Unlike time.Date it never normalises.
func civil(year int, month time.Month, day, hour, minute, second, microsecond int) (time.Time, error) {
	if err := checkField("year", year, minYear, maxYear); err != nil {
		return time.Time{}, err
	}
	if err := checkField("month", int(month), 1, 12); err != nil {
		return time.Time{}, err
	}
	if err := checkField("day", day, 1, daysIn(month, year)); err != nil {
		return time.Time{}, err
	}
	if err := checkField("hour", hour, 0, 23); err != nil {
		return time.Time{}, err
	}
	if err := checkField("minute", minute, 0, 59); err != nil {
		return time.Time{}, err
	}
	if err := checkField("second", second, 0, 59); err != nil {
		return time.Time{}, err
	}
	if err := checkField("microsecond", microsecond, 0, 999999); err != nil {
		return time.Time{}, err
	}
	return time.Date(year, month, day, hour, minute, second, microsecond*1000, time.UTC), nil
}

// wall drops the location of t, keeping its wall clock reading.
func wall(t time.Time) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	return time.Date(year, month, day, hour, min, sec, t.Nanosecond(), time.UTC)
}

func inRange(t time.Time) bool {
	year := t.Year()
	return year >= minYear && year <= maxYear
}

func yearRange(t time.Time) error {
	return checkField("year", t.Year(), minYear, maxYear)
}

// compare returns -1, 0 or +1 as a is before, equal to or after b.
func compare(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

// add moves t by d and reports whether the result is still in range.
func add(t time.Time, d Delta) (time.Time, bool) {
	days := int64(d / Day)
	if days > maxDays || days < -maxDays {
		return t, false
	}
	rem := time.Duration(d%Day) * time.Microsecond
	u := t.AddDate(0, 0, int(days)).Add(rem)
	return u, inRange(u)
}

// sub returns a-b for microsecond-truncated times.
func sub(a, b time.Time) Delta {
	secs := a.Unix() - b.Unix()
	usecs := (a.Nanosecond() - b.Nanosecond()) / 1000
	return Delta(secs)*Second + Delta(usecs)
}
