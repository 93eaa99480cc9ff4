package fourth

import (
	"fmt"
	"time"
)

// LocalDatetime is a wall-clock date and time with no timezone.
//
// The zero value is LocalMin.
type LocalDatetime struct {
	at time.Time // wall clock held in time.UTC, truncated to microseconds
}

var (
	// LocalMin is the earliest representable LocalDatetime.
	LocalMin = LocalDatetime{time.Date(minYear, time.January, 1, 0, 0, 0, 0, time.UTC)}
	// LocalMax is the latest representable LocalDatetime.
	LocalMax = LocalDatetime{time.Date(maxYear, time.December, 31, 23, 59, 59, 999999000, time.UTC)}
)

// LocalAt returns the LocalDatetime with the given fields. Every field
// must be within its calendar range; the first one that is not is
// reported as a *RangeError.
func LocalAt(year int, month time.Month, day, hour, minute, second, microsecond int) (LocalDatetime, error) {
	t, err := civil(year, month, day, hour, minute, second, microsecond)
	if err != nil {
		return LocalDatetime{}, fmt.Errorf("fourth.LocalAt: %w", err)
	}
	return LocalDatetime{t}, nil
}

// MustLocalAt is like LocalAt but panics if a field is out of range.
func MustLocalAt(year int, month time.Month, day, hour, minute, second, microsecond int) LocalDatetime {
	l, err := LocalAt(year, month, day, hour, minute, second, microsecond)
	if err != nil {
		panic(err)
	}
	return l
}

// LocalNow returns the current wall clock in time.Local.
func LocalNow() LocalDatetime {
	l, err := LocalFromTime(NowFunc().Local())
	if err != nil {
		panic(err)
	}
	return l
}

// LocalFromTime returns the wall clock reading of t in its own location.
// The location itself is discarded and t is truncated to microseconds.
func LocalFromTime(t time.Time) (LocalDatetime, error) {
	w := wall(t)
	if err := yearRange(w); err != nil {
		return LocalDatetime{}, fmt.Errorf("fourth.LocalFromTime: %w", err)
	}
	return LocalDatetime{w.Truncate(time.Microsecond)}, nil
}

// LocalFromISOFormat parses the ISO 8601 text produced by ISOFormat.
// Text carrying a UTC offset is rejected with ErrAware.
func LocalFromISOFormat(s string) (LocalDatetime, error) {
	const fn = "LocalFromISOFormat"
	r, err := parseISO(s)
	if err != nil {
		return LocalDatetime{}, &ParseError{fn, s, err}
	}
	if r.aware {
		return LocalDatetime{}, &ParseError{fn, s, ErrAware}
	}
	t, err := r.civil()
	if err != nil {
		return LocalDatetime{}, &ParseError{fn, s, err}
	}
	return LocalDatetime{t}, nil
}

// LocalStrptime parses s according to a strptime format. A format that
// parses a UTC offset (%z) is rejected with ErrAware.
func LocalStrptime(s, format string) (LocalDatetime, error) {
	const fn = "LocalStrptime"
	r, err := strptime(s, format)
	if err != nil {
		return LocalDatetime{}, &ParseError{fn, s, err}
	}
	if r.aware {
		return LocalDatetime{}, &ParseError{fn, s, ErrAware}
	}
	t, err := r.civil()
	if err != nil {
		return LocalDatetime{}, &ParseError{fn, s, err}
	}
	return LocalDatetime{t}, nil
}

func (l LocalDatetime) Year() int             { return l.at.Year() }
func (l LocalDatetime) Month() time.Month     { return l.at.Month() }
func (l LocalDatetime) Day() int              { return l.at.Day() }
func (l LocalDatetime) Hour() int             { return l.at.Hour() }
func (l LocalDatetime) Minute() int           { return l.at.Minute() }
func (l LocalDatetime) Second() int           { return l.at.Second() }
func (l LocalDatetime) Microsecond() int      { return l.at.Nanosecond() / 1000 }
func (l LocalDatetime) Weekday() time.Weekday { return l.at.Weekday() }
func (l LocalDatetime) YearDay() int          { return l.at.YearDay() }

// Date returns the year, month and day of l.
func (l LocalDatetime) Date() (year int, month time.Month, day int) { return l.at.Date() }

// Clock returns the hour, minute and second of l.
func (l LocalDatetime) Clock() (hour, min, sec int) { return l.at.Clock() }

// IsZero reports whether l is the zero value, LocalMin.
func (l LocalDatetime) IsZero() bool { return l.at.IsZero() }

// AsTime returns the wall clock of l as a time.Time in time.UTC. The
// location carries no meaning; use In to place l in a real location.
func (l LocalDatetime) AsTime() time.Time { return l.at }

// In returns the time.Time with the wall clock of l in loc.
// Wall clocks that are skipped or repeated in loc resolve as time.Date
// resolves them.
func (l LocalDatetime) In(loc *time.Location) time.Time {
	year, month, day := l.at.Date()
	hour, min, sec := l.at.Clock()
	return time.Date(year, month, day, hour, min, sec, l.at.Nanosecond(), loc)
}

// ToUTC interprets l as a wall clock in loc and returns that instant.
func (l LocalDatetime) ToUTC(loc *time.Location) (UTCDatetime, error) {
	u, err := UTCFromTime(l.In(loc))
	if err != nil {
		return UTCDatetime{}, fmt.Errorf("fourth: %v in %v: %w", l, loc, ErrOutOfRange)
	}
	return u, nil
}

// Compare returns -1 if l is before o, +1 if it is after and 0 if equal.
func (l LocalDatetime) Compare(o LocalDatetime) int { return compare(l.at, o.at) }

func (l LocalDatetime) Before(o LocalDatetime) bool { return l.at.Before(o.at) }
func (l LocalDatetime) After(o LocalDatetime) bool  { return l.at.After(o.at) }
func (l LocalDatetime) Equal(o LocalDatetime) bool  { return l.at.Equal(o.at) }

// Add returns l+d, or ErrOutOfRange if that leaves the calendar.
func (l LocalDatetime) Add(d Delta) (LocalDatetime, error) {
	t, ok := add(l.at, d)
	if !ok {
		return LocalDatetime{}, fmt.Errorf("fourth: %v + %v: %w", l, d, ErrOutOfRange)
	}
	return LocalDatetime{t}, nil
}

// Sub returns the span l-o.
func (l LocalDatetime) Sub(o LocalDatetime) Delta { return sub(l.at, o.at) }

// ISOFormat returns l as ISO 8601 text with sep between the date and the
// time, which is written to the precision of spec.
func (l LocalDatetime) ISOFormat(sep rune, spec Timespec) string {
	return formatISO(l.at, sep, spec, false)
}

// String returns l.ISOFormat('T', TimespecMicroseconds).
func (l LocalDatetime) String() string {
	return l.ISOFormat('T', TimespecMicroseconds)
}

// GoString returns a Go expression that rebuilds l.
func (l LocalDatetime) GoString() string {
	return "fourth.MustLocalAt(" + goFields(l.at) + ")"
}

// Strftime formats l according to a strftime format. %f is the six digit
// microsecond, and %z and %Z are empty.
func (l LocalDatetime) Strftime(format string) string {
	return formatStrftime(l.at, format, false)
}
