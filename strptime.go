package fourth

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

var (
	weekdayNames = [...]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	weekdayAbbrs = [...]string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}
	monthNames   = [...]string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}
	monthAbbrs   = [...]string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}
)

// directives maps each supported strptime directive to the expression
// matching its text. Numeric expressions accept unpadded values.
var directives = map[byte]string{
	'a': alternatives(weekdayAbbrs[:]),
	'A': alternatives(weekdayNames[:]),
	'b': alternatives(monthAbbrs[:]),
	'B': alternatives(monthNames[:]),
	'd': `3[01]|[12]\d|0[1-9]|[1-9]| [1-9]`,
	'f': `[0-9]{1,6}`,
	'H': `2[0-3]|[0-1]\d|\d`,
	'I': `1[0-2]|0[1-9]|[1-9]`,
	'j': `36[0-6]|3[0-5]\d|[12]\d\d|0[1-9]\d|00[1-9]|[1-9]\d|0[1-9]|[1-9]`,
	'm': `1[0-2]|0[1-9]|[1-9]`,
	'M': `[0-5]\d|\d`,
	'p': `am|pm`,
	'S': `6[0-1]|[0-5]\d|\d`,
	'w': `[0-6]`,
	'y': `\d\d`,
	'Y': `\d\d\d\d`,
	'z': `[+-]\d\d:?[0-5]\d(?::?[0-5]\d(?:\.\d{1,6})?)?|(?-i:Z)`,
	'Z': alternatives(zoneNames()),
}

// expansions are the composite directives of the C locale.
var expansions = map[byte]string{
	'c': "%a %b %d %H:%M:%S %Y",
	'x': "%m/%d/%y",
	'X': "%H:%M:%S",
}

// zoneNames lists the names %Z accepts: utc, gmt and the abbreviations of
// the local zone.
func zoneNames() []string {
	names := []string{"utc", "gmt"}
	year := time.Now().Year()
	for _, month := range []time.Month{time.January, time.July} {
		name, _ := time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Zone()
		name = strings.ToLower(name)
		if name != "" && !strings.ContainsAny(name, "+-0123456789") {
			names = append(names, name)
		}
	}
	return names
}

// alternatives joins names longest first, so that "march" wins over "mar".
func alternatives(names []string) string {
	sorted := append([]string(nil), names...)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	quoted := sorted[:0]
	seen := make(map[string]bool)
	for _, n := range sorted {
		if !seen[n] {
			seen[n] = true
			quoted = append(quoted, regexp.QuoteMeta(n))
		}
	}
	return strings.Join(quoted, "|")
}

// maxCachedPatterns bounds patternCache; the cache is emptied when full.
const maxCachedPatterns = 100

var (
	patternMu    sync.Mutex
	patternCache = make(map[string]*regexp.Regexp)
)

// compileFormat translates a strptime format into an anchored,
// case-insensitive expression with one named group per directive.
func compileFormat(format string) (*regexp.Regexp, error) {
	patternMu.Lock()
	defer patternMu.Unlock()
	if re, ok := patternCache[format]; ok {
		return re, nil
	}

	expanded, err := expandComposites(format)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	b.WriteString(`(?i)^`)
	seen := make(map[rune]bool)
	for i := 0; i < len(expanded); {
		c, n := utf8.DecodeRuneInString(expanded[i:])
		i += n
		switch {
		case c == '%':
			d, n := utf8.DecodeRuneInString(expanded[i:])
			i += n
			if d == '%' {
				b.WriteString("%")
				continue
			}
			var expr string
			ok := false
			if d < utf8.RuneSelf {
				expr, ok = directives[byte(d)]
			}
			if !ok {
				return nil, syntaxErrorf("'%%%c' is a bad directive in format %q", d, format)
			}
			if seen[d] {
				return nil, syntaxErrorf("directive '%%%c' repeated in format %q", d, format)
			}
			seen[d] = true
			fmt.Fprintf(&b, "(?P<%s>%s)", groupName(byte(d)), expr)
		case c < utf8.RuneSelf && isSpace(byte(c)):
			for i < len(expanded) && isSpace(expanded[i]) {
				i++
			}
			b.WriteString(`\s+`)
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("compiling format %q: %w", format, err)
	}
	if len(patternCache) >= maxCachedPatterns {
		clear(patternCache)
	}
	patternCache[format] = re
	return re, nil
}

// expandComposites replaces %c, %x and %X and checks for a stray %.
func expandComposites(format string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+1 == len(format) {
			return "", syntaxErrorf("stray %% in format %q", format)
		}
		i++
		if exp, ok := expansions[format[i]]; ok {
			b.WriteString(exp)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(format[i])
	}
	return b.String(), nil
}

// groupName names the group of a directive; group names are
// case-sensitive but must be distinct from each other.
func groupName(d byte) string {
	if d >= 'A' && d <= 'Z' {
		return "U" + string(d)
	}
	return "L" + string(d)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// strptime parses s with format the way C-locale strptime does and returns
// the unvalidated fields. Missing fields default to 1900-01-01T00:00:00.
func strptime(s, format string) (fields, error) {
	f := fields{year: 1900, month: 1, day: 1}
	re, err := compileFormat(format)
	if err != nil {
		return f, err
	}
	m := re.FindStringSubmatchIndex(s)
	if m == nil {
		return f, syntaxErrorf("time data %q does not match format %q", s, format)
	}
	if m[1] != len(s) {
		return f, syntaxErrorf("unconverted data remains: %s", s[m[1]:])
	}

	found := make(map[byte]string)
	var order []byte
	for i, name := range re.SubexpNames() {
		if name == "" || m[2*i] < 0 {
			continue
		}
		found[name[1]] = s[m[2*i]:m[2*i+1]]
		order = append(order, name[1])
	}
	num := func(d byte) int {
		n, _ := strconv.Atoi(strings.TrimSpace(found[d]))
		return n
	}

	// Directives setting the same field apply in format order; the last
	// one wins.
	julian := 0
	for _, d := range order {
		v := found[d]
		switch d {
		case 'y':
			f.year = num(d)
			if f.year <= 68 {
				f.year += 2000
			} else {
				f.year += 1900
			}
		case 'Y':
			f.year = num(d)
		case 'm':
			f.month = num(d)
		case 'B':
			f.month = indexFold(monthNames[:], v) + 1
		case 'b':
			f.month = indexFold(monthAbbrs[:], v) + 1
		case 'd':
			f.day = num(d)
		case 'H':
			f.hour = num(d)
		case 'I':
			f.hour = num(d)
			if strings.EqualFold(found['p'], "pm") {
				if f.hour != 12 {
					f.hour += 12
				}
			} else if f.hour == 12 {
				f.hour = 0
			}
		case 'M':
			f.minute = num(d)
		case 'S':
			f.second = num(d)
		case 'f':
			f.usec, _ = strconv.Atoi(v + strings.Repeat("0", 6-len(v)))
		case 'j':
			julian = num(d)
		case 'z':
			f.aware = true
			if f.offset, err = parseStrptimeOffset(v); err != nil {
				return f, err
			}
		}
	}

	if julian != 0 {
		if err := checkField("year", f.year, minYear, maxYear); err != nil {
			return f, err
		}
		t := time.Date(f.year, time.January, julian, 0, 0, 0, 0, time.UTC)
		f.year, f.month, f.day = t.Year(), int(t.Month()), t.Day()
	}
	return f, nil
}

// parseStrptimeOffset parses Z, ±HHMM[SS[.ffffff]] or ±HH:MM[:SS[.ffffff]].
func parseStrptimeOffset(z string) (Delta, error) {
	if z == "Z" {
		return 0, nil
	}
	sign := Delta(1)
	if z[0] == '-' {
		sign = -1
	}
	body := z[1:]
	if body[2] == ':' {
		body = body[:2] + body[3:]
		if len(body) > 4 {
			if body[4] != ':' {
				return 0, syntaxErrorf("inconsistent use of : in %s", z)
			}
			body = body[:4] + body[5:]
		}
	} else if strings.Contains(body, ":") {
		return 0, syntaxErrorf("inconsistent use of : in %s", z)
	}

	h, _ := strconv.Atoi(body[0:2])
	m, _ := strconv.Atoi(body[2:4])
	var sec, usec int
	if len(body) >= 6 {
		sec, _ = strconv.Atoi(body[4:6])
	}
	if len(body) > 7 {
		frac := body[7:]
		usec, _ = strconv.Atoi(frac + strings.Repeat("0", 6-len(frac)))
	}
	off := sign * (Delta(h)*Hour + Delta(m)*Minute + Delta(sec)*Second + Delta(usec))
	return off, checkOffset(off)
}

func indexFold(names []string, v string) int {
	for i, n := range names {
		if strings.EqualFold(n, v) {
			return i
		}
	}
	return -1
}
