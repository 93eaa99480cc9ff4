package fourth_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lincolnpuzey/fourth"
)

func TestLocalStrptime(t *testing.T) {
	for _, test := range []struct {
		in, format string
		want       fourth.LocalDatetime
	}{
		{"2020-1-2  3:04:05.5", "%Y-%m-%d %H:%M:%S.%f", fourth.MustLocalAt(2020, 1, 2, 3, 4, 5, 500000)},
		{"Tue, 03 Mar 2020 04:05:06 PM", "%a, %d %b %Y %I:%M:%S %p", fourth.MustLocalAt(2020, 3, 3, 16, 5, 6, 0)},
		{"march 3 20", "%B %d %y", fourth.MustLocalAt(2020, 3, 3, 0, 0, 0, 0)},
		{"70", "%y", fourth.MustLocalAt(1970, 1, 1, 0, 0, 0, 0)},
		{"68", "%y", fourth.MustLocalAt(2068, 1, 1, 0, 0, 0, 0)},
		{"2020 060", "%Y %j", fourth.MustLocalAt(2020, 2, 29, 0, 0, 0, 0)},
		{"12:30 AM", "%I:%M %p", fourth.MustLocalAt(1900, 1, 1, 0, 30, 0, 0)},
		{"12:30 pm", "%I:%M %p", fourth.MustLocalAt(1900, 1, 1, 12, 30, 0, 0)},
		{"12", "%I", fourth.MustLocalAt(1900, 1, 1, 0, 0, 0, 0)},
		{"2020-01-01 UTC", "%Y-%m-%d %Z", fourth.MustLocalAt(2020, 1, 1, 0, 0, 0, 0)},
		{"Tue Mar  3 04:05:06 2020", "%c", fourth.MustLocalAt(2020, 3, 3, 4, 5, 6, 0)},
		{"03/04/20 10:11:12", "%x %X", fourth.MustLocalAt(2020, 3, 4, 10, 11, 12, 0)},
		{"5%", "%d%%", fourth.MustLocalAt(1900, 1, 5, 0, 0, 0, 0)},
		{"Sunday 1 FEBRUARY 2004 0", "%A %d %B %Y %w", fourth.MustLocalAt(2004, 2, 1, 0, 0, 0, 0)},
		{"(2020)", "(%Y)", fourth.MustLocalAt(2020, 1, 1, 0, 0, 0, 0)},
		{"2020年01月02日", "%Y年%m月%d日", fourth.MustLocalAt(2020, 1, 2, 0, 0, 0, 0)},
		{"2 févr. 2020", "%d févr. %Y", fourth.MustLocalAt(2020, 2, 2, 0, 0, 0, 0)},
		{"2 FÉVR. 2020", "%d févr. %Y", fourth.MustLocalAt(2020, 2, 2, 0, 0, 0, 0)},
		{"03 01 PM", "%H %I %p", fourth.MustLocalAt(1900, 1, 1, 13, 0, 0, 0)},
		{"01 PM 03", "%I %p %H", fourth.MustLocalAt(1900, 1, 1, 3, 0, 0, 0)},
		{"march 04", "%B %m", fourth.MustLocalAt(1900, 4, 1, 0, 0, 0, 0)},
		{"04 march", "%m %B", fourth.MustLocalAt(1900, 3, 1, 0, 0, 0, 0)},
		{"20 1999", "%y %Y", fourth.MustLocalAt(1999, 1, 1, 0, 0, 0, 0)},
	} {
		got, err := fourth.LocalStrptime(test.in, test.format)
		if err != nil {
			t.Errorf("LocalStrptime(%q, %q): %v", test.in, test.format, err)
			continue
		}
		if !got.Equal(test.want) {
			t.Errorf("LocalStrptime(%q, %q) = %v, want %v", test.in, test.format, got, test.want)
		}
	}
}

func TestLocalStrptimeErrors(t *testing.T) {
	for _, test := range []struct {
		in, format string
		want       error
		msg        string
	}{
		{"2020", "%Y %m", fourth.ErrSyntax, "does not match format"},
		{"2020-01-01x", "%Y-%m-%d", fourth.ErrSyntax, "unconverted data remains: x"},
		{"2020", "%Q", fourth.ErrSyntax, "bad directive"},
		{"2020", "%Y%é", fourth.ErrSyntax, "'%é' is a bad directive"},
		{"2020年", "%Y月", fourth.ErrSyntax, "does not match format"},
		{"2020", "%Y%", fourth.ErrSyntax, "stray %"},
		{"2020 2020", "%Y %Y", fourth.ErrSyntax, "repeated"},
		{"Mon 2020 10:00:00", "%c %Y", fourth.ErrSyntax, "repeated"},
		{"2021-02-29", "%Y-%m-%d", fourth.ErrOutOfRange, "day 29"},
		{"02-29", "%m-%d", fourth.ErrOutOfRange, "day 29"},
		{"10:61", "%M:%S", fourth.ErrOutOfRange, "second 61"},
		{"2020-01-01 +0100", "%Y-%m-%d %z", fourth.ErrAware, ""},
	} {
		_, err := fourth.LocalStrptime(test.in, test.format)
		if !errors.Is(err, test.want) {
			t.Errorf("LocalStrptime(%q, %q): got %v, want %v", test.in, test.format, err, test.want)
			continue
		}
		if !strings.Contains(err.Error(), test.msg) {
			t.Errorf("LocalStrptime(%q, %q): %q does not mention %q", test.in, test.format, err, test.msg)
		}
	}
}

func TestUTCStrptime(t *testing.T) {
	for _, test := range []struct {
		in, format string
		want       fourth.UTCDatetime
	}{
		{"2020-01-01 +0100", "%Y-%m-%d %z", fourth.MustUTCAt(2019, 12, 31, 23, 0, 0, 0)},
		{"2020-01-01 12:00 -03:30", "%Y-%m-%d %H:%M %z", fourth.MustUTCAt(2020, 1, 1, 15, 30, 0, 0)},
		{"2020-01-01 Z", "%Y-%m-%d %z", fourth.MustUTCAt(2020, 1, 1, 0, 0, 0, 0)},
		{"2020-01-01 +01:00:30.5", "%Y-%m-%d %z", fourth.MustUTCAt(2019, 12, 31, 22, 59, 29, 500000)},
		{"2020-01-01 -000001", "%Y-%m-%d %z", fourth.MustUTCAt(2020, 1, 1, 0, 0, 1, 0)},
	} {
		got, err := fourth.UTCStrptime(test.in, test.format)
		if err != nil {
			t.Errorf("UTCStrptime(%q, %q): %v", test.in, test.format, err)
			continue
		}
		if !got.Equal(test.want) {
			t.Errorf("UTCStrptime(%q, %q) = %v, want %v", test.in, test.format, got, test.want)
		}
	}

	for _, test := range []struct {
		in, format string
		want       error
	}{
		{"2020-01-01", "%Y-%m-%d", fourth.ErrNaive},
		{"2020-01-01 UTC", "%Y-%m-%d %Z", fourth.ErrNaive},
		{"2020-01-01 z", "%Y-%m-%d %z", fourth.ErrSyntax},
		{"2020-01-01 +01:0030", "%Y-%m-%d %z", fourth.ErrSyntax},
		{"2020-01-01 +99:00", "%Y-%m-%d %z", fourth.ErrOutOfRange},
		{"0001-01-01 +0100", "%Y-%m-%d %z", fourth.ErrOutOfRange},
	} {
		if _, err := fourth.UTCStrptime(test.in, test.format); !errors.Is(err, test.want) {
			t.Errorf("UTCStrptime(%q, %q): got %v, want %v", test.in, test.format, err, test.want)
		}
	}
}

func TestStrptimeRoundTrip(t *testing.T) {
	for _, format := range []string{
		"%Y-%m-%d %H:%M:%S.%f",
		"%Y年%m月%d日 %H時%M分%S秒%f",
	} {
		for _, l := range []fourth.LocalDatetime{
			fourth.LocalMin,
			fourth.LocalMax,
			fourth.MustLocalAt(2020, time.February, 29, 1, 2, 3, 4),
		} {
			s := l.Strftime(format)
			got, err := fourth.LocalStrptime(s, format)
			if err != nil {
				t.Errorf("LocalStrptime(%q, %q): %v", s, format, err)
				continue
			}
			if !got.Equal(l) {
				t.Errorf("round trip of %v through %q = %v", l, s, got)
			}
		}
	}
}
