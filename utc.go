package fourth

import (
	"fmt"
	"math"
	"time"
)

// UTCDatetime is an instant in time, always expressed in UTC.
//
// The zero value is UTCMin.
type UTCDatetime struct {
	at time.Time // in time.UTC, truncated to microseconds
}

var (
	// UTCMin is the earliest representable UTCDatetime.
	UTCMin = UTCDatetime{LocalMin.at}
	// UTCMax is the latest representable UTCDatetime.
	UTCMax = UTCDatetime{LocalMax.at}
)

// UTCAt returns the UTCDatetime with the given fields. Every field must be
// within its calendar range; the first one that is not is reported as a
// *RangeError.
func UTCAt(year int, month time.Month, day, hour, minute, second, microsecond int) (UTCDatetime, error) {
	t, err := civil(year, month, day, hour, minute, second, microsecond)
	if err != nil {
		return UTCDatetime{}, fmt.Errorf("fourth.UTCAt: %w", err)
	}
	return UTCDatetime{t}, nil
}

// MustUTCAt is like UTCAt but panics if a field is out of range.
func MustUTCAt(year int, month time.Month, day, hour, minute, second, microsecond int) UTCDatetime {
	u, err := UTCAt(year, month, day, hour, minute, second, microsecond)
	if err != nil {
		panic(err)
	}
	return u
}

// UTCNow returns the current instant.
func UTCNow() UTCDatetime {
	u, err := UTCFromTime(NowFunc())
	if err != nil {
		panic(err)
	}
	return u
}

// UTCFromTime returns the instant t, truncated to microseconds.
func UTCFromTime(t time.Time) (UTCDatetime, error) {
	t = t.UTC()
	if err := yearRange(t); err != nil {
		return UTCDatetime{}, fmt.Errorf("fourth.UTCFromTime: %w", err)
	}
	return UTCDatetime{t.Truncate(time.Microsecond)}, nil
}

// UTCFromTimestamp returns the instant ts seconds after the Unix epoch.
// Fractions are rounded half to even to the nearest microsecond.
func UTCFromTimestamp(ts float64) (UTCDatetime, error) {
	lo, hi := float64(UTCMin.at.Unix()), float64(UTCMax.at.Unix())
	if math.IsNaN(ts) || ts < lo || ts >= hi+1 {
		return UTCDatetime{}, fmt.Errorf("fourth.UTCFromTimestamp: timestamp %v: %w", ts, ErrOutOfRange)
	}
	sec, frac := math.Modf(ts)
	usec := math.RoundToEven(frac * 1e6)
	if usec >= 1e6 {
		sec, usec = sec+1, usec-1e6
	} else if usec < 0 {
		sec, usec = sec-1, usec+1e6
	}
	t := time.Unix(int64(sec), int64(usec)*1000).UTC()
	if !inRange(t) {
		return UTCDatetime{}, fmt.Errorf("fourth.UTCFromTimestamp: timestamp %v: %w", ts, ErrOutOfRange)
	}
	return UTCDatetime{t}, nil
}

// UTCFromUnixMicro returns the instant usec microseconds after the Unix
// epoch.
func UTCFromUnixMicro(usec int64) (UTCDatetime, error) {
	if usec < UTCMin.UnixMicro() || usec > UTCMax.UnixMicro() {
		return UTCDatetime{}, fmt.Errorf("fourth.UTCFromUnixMicro: %d: %w", usec, ErrOutOfRange)
	}
	return UTCDatetime{time.UnixMicro(usec).UTC()}, nil
}

// UTCFromISOFormat parses ISO 8601 text carrying a UTC offset and
// converts it to UTC. Text without an offset is rejected with ErrNaive.
func UTCFromISOFormat(s string) (UTCDatetime, error) {
	const fn = "UTCFromISOFormat"
	r, err := parseISO(s)
	if err != nil {
		return UTCDatetime{}, &ParseError{fn, s, err}
	}
	if !r.aware {
		return UTCDatetime{}, &ParseError{fn, s, ErrNaive}
	}
	t, err := r.instant()
	if err != nil {
		return UTCDatetime{}, &ParseError{fn, s, err}
	}
	return UTCDatetime{t}, nil
}

// UTCStrptime parses s according to a strptime format, which must parse
// a UTC offset with %z; otherwise ErrNaive is returned.
func UTCStrptime(s, format string) (UTCDatetime, error) {
	const fn = "UTCStrptime"
	r, err := strptime(s, format)
	if err != nil {
		return UTCDatetime{}, &ParseError{fn, s, err}
	}
	if !r.aware {
		return UTCDatetime{}, &ParseError{fn, s, ErrNaive}
	}
	t, err := r.instant()
	if err != nil {
		return UTCDatetime{}, &ParseError{fn, s, err}
	}
	return UTCDatetime{t}, nil
}

func (u UTCDatetime) Year() int             { return u.at.Year() }
func (u UTCDatetime) Month() time.Month     { return u.at.Month() }
func (u UTCDatetime) Day() int              { return u.at.Day() }
func (u UTCDatetime) Hour() int             { return u.at.Hour() }
func (u UTCDatetime) Minute() int           { return u.at.Minute() }
func (u UTCDatetime) Second() int           { return u.at.Second() }
func (u UTCDatetime) Microsecond() int      { return u.at.Nanosecond() / 1000 }
func (u UTCDatetime) Weekday() time.Weekday { return u.at.Weekday() }
func (u UTCDatetime) YearDay() int          { return u.at.YearDay() }

// Date returns the year, month and day of u.
func (u UTCDatetime) Date() (year int, month time.Month, day int) { return u.at.Date() }

// Clock returns the hour, minute and second of u.
func (u UTCDatetime) Clock() (hour, min, sec int) { return u.at.Clock() }

// IsZero reports whether u is the zero value, UTCMin.
func (u UTCDatetime) IsZero() bool { return u.at.IsZero() }

// AsTime returns u as a time.Time in time.UTC.
func (u UTCDatetime) AsTime() time.Time { return u.at }

// In returns u as a time.Time in loc.
func (u UTCDatetime) In(loc *time.Location) time.Time { return u.at.In(loc) }

// ToLocal returns the wall clock in loc at the instant u.
func (u UTCDatetime) ToLocal(loc *time.Location) (LocalDatetime, error) {
	w := wall(u.at.In(loc))
	if !inRange(w) {
		return LocalDatetime{}, fmt.Errorf("fourth: %v in %v: %w", u, loc, ErrOutOfRange)
	}
	return LocalDatetime{w}, nil
}

// Timestamp returns the seconds since the Unix epoch.
func (u UTCDatetime) Timestamp() float64 { return float64(u.at.UnixMicro()) / 1e6 }

// UnixMicro returns the microseconds since the Unix epoch.
func (u UTCDatetime) UnixMicro() int64 { return u.at.UnixMicro() }

// Compare returns -1 if u is before o, +1 if it is after and 0 if equal.
func (u UTCDatetime) Compare(o UTCDatetime) int { return compare(u.at, o.at) }

func (u UTCDatetime) Before(o UTCDatetime) bool { return u.at.Before(o.at) }
func (u UTCDatetime) After(o UTCDatetime) bool  { return u.at.After(o.at) }
func (u UTCDatetime) Equal(o UTCDatetime) bool  { return u.at.Equal(o.at) }

// Add returns u+d, or ErrOutOfRange if that leaves the calendar.
func (u UTCDatetime) Add(d Delta) (UTCDatetime, error) {
	t, ok := add(u.at, d)
	if !ok {
		return UTCDatetime{}, fmt.Errorf("fourth: %v + %v: %w", u, d, ErrOutOfRange)
	}
	return UTCDatetime{t}, nil
}

// Sub returns the span u-o.
func (u UTCDatetime) Sub(o UTCDatetime) Delta { return sub(u.at, o.at) }

// ISOFormat returns u as ISO 8601 text with sep between the date and the
// time, which is written to the precision of spec and followed by the
// +00:00 offset.
func (u UTCDatetime) ISOFormat(sep rune, spec Timespec) string {
	return formatISO(u.at, sep, spec, true)
}

// String returns u.ISOFormat('T', TimespecMicroseconds).
func (u UTCDatetime) String() string {
	return u.ISOFormat('T', TimespecMicroseconds)
}

// GoString returns a Go expression that rebuilds u.
func (u UTCDatetime) GoString() string {
	return "fourth.MustUTCAt(" + goFields(u.at) + ")"
}

// Strftime formats u according to a strftime format. %f is the six digit
// microsecond, %z is +0000 and %Z is UTC.
func (u UTCDatetime) Strftime(format string) string {
	return formatStrftime(u.at, format, true)
}
