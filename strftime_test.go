package fourth_test

import (
	"testing"
	"time"

	"github.com/lincolnpuzey/fourth"
)

func TestStrftime(t *testing.T) {
	l := fourth.MustLocalAt(2020, time.January, 2, 3, 4, 5, 6)
	u := fourth.MustUTCAt(2020, time.January, 2, 3, 4, 5, 6)
	for _, test := range []struct {
		format     string
		local, utc string
	}{
		{"%Y-%m-%d %H:%M:%S.%f", "2020-01-02 03:04:05.000006", "2020-01-02 03:04:05.000006"},
		{"%d/%m/%y %z%Z|", "02/01/20 |", "02/01/20 +0000UTC|"},
		{"%A %B %j", "Thursday January 002", "Thursday January 002"},
		{"100%%", "100%", "100%"},
		{"%%f", "%f", "%f"},
	} {
		if got := l.Strftime(test.format); got != test.local {
			t.Errorf("local Strftime(%q) = %q, want %q", test.format, got, test.local)
		}
		if got := u.Strftime(test.format); got != test.utc {
			t.Errorf("utc Strftime(%q) = %q, want %q", test.format, got, test.utc)
		}
	}
}
