package fourth

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// A Timespec selects how much of the time component ISOFormat writes.
type Timespec int

const (
	// TimespecAuto writes seconds when the microsecond is zero and
	// microseconds otherwise.
	TimespecAuto Timespec = iota
	TimespecHours
	TimespecMinutes
	TimespecSeconds
	TimespecMilliseconds
	TimespecMicroseconds
)

var timespecNames = [...]string{
	TimespecAuto:         "auto",
	TimespecHours:        "hours",
	TimespecMinutes:      "minutes",
	TimespecSeconds:      "seconds",
	TimespecMilliseconds: "milliseconds",
	TimespecMicroseconds: "microseconds",
}

func (ts Timespec) String() string {
	if ts >= 0 && int(ts) < len(timespecNames) {
		return timespecNames[ts]
	}
	return fmt.Sprintf("Timespec(%d)", int(ts))
}

// ParseTimespec returns the Timespec with the given name.
func ParseTimespec(name string) (Timespec, error) {
	for i, n := range timespecNames {
		if n == name {
			return Timespec(i), nil
		}
	}
	return 0, fmt.Errorf("fourth: unknown timespec %q", name)
}

// formatISO writes t as YYYY-MM-DD<sep>HH[:MM[:SS[.fff[fff]]]], adding
// +00:00 for aware values. Unknown timespecs write microseconds.
func formatISO(t time.Time, sep rune, spec Timespec, aware bool) string {
	var b strings.Builder
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	usec := t.Nanosecond() / 1000

	fmt.Fprintf(&b, "%04d-%02d-%02d", year, int(month), day)
	b.WriteRune(sep)
	if spec == TimespecAuto {
		spec = TimespecMicroseconds
		if usec == 0 {
			spec = TimespecSeconds
		}
	}
	switch spec {
	case TimespecHours:
		fmt.Fprintf(&b, "%02d", hour)
	case TimespecMinutes:
		fmt.Fprintf(&b, "%02d:%02d", hour, min)
	case TimespecSeconds:
		fmt.Fprintf(&b, "%02d:%02d:%02d", hour, min, sec)
	case TimespecMilliseconds:
		fmt.Fprintf(&b, "%02d:%02d:%02d.%03d", hour, min, sec, usec/1000)
	default:
		fmt.Fprintf(&b, "%02d:%02d:%02d.%06d", hour, min, sec, usec)
	}
	if aware {
		b.WriteString("+00:00")
	}
	return b.String()
}

func goFields(t time.Time) string {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	return fmt.Sprintf("%d, time.%v, %d, %d, %d, %d, %d", year, month, day, hour, min, sec, t.Nanosecond()/1000)
}

// fields is a parsed datetime that has not been validated yet.
type fields struct {
	year, month, day           int
	hour, minute, second, usec int

	aware  bool
	offset Delta // east of UTC
}

func (f fields) civil() (time.Time, error) {
	return civil(f.year, time.Month(f.month), f.day, f.hour, f.minute, f.second, f.usec)
}

// instant validates f as a wall clock at its offset and converts it to UTC.
func (f fields) instant() (time.Time, error) {
	t, err := f.civil()
	if err != nil {
		return time.Time{}, err
	}
	u, ok := add(t, -f.offset)
	if !ok {
		return time.Time{}, fmt.Errorf("converting to UTC: %w", ErrOutOfRange)
	}
	return u, nil
}

func checkOffset(off Delta) error {
	if off <= -Day || off >= Day {
		return fmt.Errorf("offset %v: must be strictly between -24h and 24h: %w", time.Duration(off)*time.Microsecond, ErrOutOfRange)
	}
	return nil
}

// parseISO accepts
//
//	YYYY-MM-DD[<sep>HH[:MM[:SS[.fff|.ffffff]]][<offset>]]
//
// where sep is any single character and offset is Z or
// (+|-)HH:MM[:SS[.ffffff]].
func parseISO(s string) (fields, error) {
	var f fields
	if len(s) < 10 {
		return f, syntaxErrorf("want YYYY-MM-DD")
	}
	if s[4] != '-' || s[7] != '-' {
		return f, syntaxErrorf("invalid date separator")
	}
	var ok1, ok2, ok3 bool
	f.year, ok1 = digits(s[0:4])
	f.month, ok2 = digits(s[5:7])
	f.day, ok3 = digits(s[8:10])
	if !ok1 || !ok2 || !ok3 {
		return f, syntaxErrorf("invalid date")
	}
	if len(s) == 10 {
		return f, nil
	}

	_, size := utf8.DecodeRuneInString(s[10:])
	rest := s[10+size:]
	clock, zone := rest, ""
	if i := strings.IndexAny(rest, "+-Z"); i >= 0 {
		clock, zone = rest[:i], rest[i:]
	}
	var err error
	if f.hour, f.minute, f.second, f.usec, err = parseClock(clock); err != nil {
		return f, err
	}
	if zone == "" {
		return f, nil
	}

	f.aware = true
	switch zone[0] {
	case 'Z':
		if len(zone) != 1 {
			return f, syntaxErrorf("unexpected text after Z")
		}
		return f, nil
	case '-':
		f.offset = -1
	default:
		f.offset = 1
	}
	tz := zone[1:]
	if n := len(tz); n != 5 && n != 8 && n != 15 {
		return f, syntaxErrorf("malformed offset %q", zone)
	}
	h, m, sec, usec, err := parseClock(tz)
	if err != nil {
		return f, err
	}
	if m > 59 || sec > 59 {
		return f, syntaxErrorf("malformed offset %q", zone)
	}
	f.offset *= Delta(h)*Hour + Delta(m)*Minute + Delta(sec)*Second + Delta(usec)
	return f, checkOffset(f.offset)
}

// parseClock parses HH[:MM[:SS[.fff|.ffffff]]] without range checks.
func parseClock(s string) (hour, min, sec, usec int, err error) {
	comps := [...]*int{&hour, &min, &sec}
	pos := 0
	for i, p := range comps {
		if len(s)-pos < 2 {
			return 0, 0, 0, 0, syntaxErrorf("incomplete time component")
		}
		v, ok := digits(s[pos : pos+2])
		if !ok {
			return 0, 0, 0, 0, syntaxErrorf("invalid time component %q", s[pos:pos+2])
		}
		*p = v
		pos += 2
		if pos == len(s) {
			return hour, min, sec, 0, nil
		}
		if i == len(comps)-1 {
			break
		}
		if s[pos] != ':' {
			return 0, 0, 0, 0, syntaxErrorf("invalid time separator %q", s[pos])
		}
		pos++
	}

	if s[pos] != '.' {
		return 0, 0, 0, 0, syntaxErrorf("invalid microsecond separator %q", s[pos])
	}
	frac := s[pos+1:]
	v, ok := digits(frac)
	switch {
	case !ok || (len(frac) != 3 && len(frac) != 6):
		return 0, 0, 0, 0, syntaxErrorf("invalid microsecond component %q", frac)
	case len(frac) == 3:
		v *= 1000
	}
	return hour, min, sec, v, nil
}

// digits parses a non-empty run of ASCII digits.
func digits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
