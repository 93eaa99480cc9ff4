package fourth

import (
	"fmt"
	"math"
	"time"
)

// A Delta represents the span between two datetimes as a signed count of
// microseconds.
type Delta int64

const (
	Microsecond Delta = 1
	Millisecond       = 1000 * Microsecond
	Second            = 1000 * Millisecond
	Minute            = 60 * Second
	Hour              = 60 * Minute
	Day               = 24 * Hour
	Week              = 7 * Day
)

// DeltaOf converts d to a Delta, truncating toward zero.
func DeltaOf(d time.Duration) Delta { return Delta(d / time.Microsecond) }

// Duration converts d to a time.Duration. It reports false if d is too
// long to be represented.
func (d Delta) Duration() (time.Duration, bool) {
	const limit = Delta(math.MaxInt64 / int64(time.Microsecond))
	if d > limit || d < -limit {
		return 0, false
	}
	return time.Duration(d) * time.Microsecond, true
}

// Days returns the whole days in d, rounded toward negative infinity so
// that SecondsPart and MicrosecondsPart are never negative.
func (d Delta) Days() int64 {
	days := int64(d / Day)
	if d%Day < 0 {
		days--
	}
	return days
}

// SecondsPart returns the seconds in d after removing Days, in [0, 86399].
func (d Delta) SecondsPart() int {
	return int(d.rem() / Second)
}

// MicrosecondsPart returns the microseconds in d after removing whole
// seconds, in [0, 999999].
func (d Delta) MicrosecondsPart() int {
	return int(d.rem() % Second)
}

func (d Delta) rem() Delta {
	return d - Delta(d.Days())*Day
}

// TotalSeconds returns d as a floating point number of seconds.
func (d Delta) TotalSeconds() float64 { return float64(d) / 1e6 }

// Abs returns the absolute value of d.
// As a special case, math.MinInt64 is converted to math.MaxInt64.
func (d Delta) Abs() Delta {
	switch {
	case d >= 0:
		return d
	case d == math.MinInt64:
		return math.MaxInt64
	default:
		return -d
	}
}

// Neg returns -d.
func (d Delta) Neg() Delta { return -d }

// Truncate returns d rounded toward zero to a multiple of m.
// If m <= 0, d is returned unchanged.
func (d Delta) Truncate(m Delta) Delta {
	if m <= 0 {
		return d
	}
	return d - d%m
}

// String renders d as days and a clock, for example "0:00:01",
// "2 days, 3:04:05.000006" or "-1 day, 23:59:59.999999".
func (d Delta) String() string {
	secs := d.SecondsPart()
	s := fmt.Sprintf("%d:%02d:%02d", secs/3600, secs/60%60, secs%60)
	if days := d.Days(); days != 0 {
		plural := "s"
		if days == 1 || days == -1 {
			plural = ""
		}
		s = fmt.Sprintf("%d day%s, %s", days, plural, s)
	}
	if us := d.MicrosecondsPart(); us != 0 {
		s += fmt.Sprintf(".%06d", us)
	}
	return s
}
