package fourth

import (
	"fmt"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// formatStrftime expands the directives whose meaning depends on
// precision or awareness, then formats the rest with strftime.
// Years are always four digits so that %Y output parses back.
func formatStrftime(t time.Time, format string, aware bool) string {
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i+1 == len(format) {
			b.WriteByte(c)
			continue
		}
		i++
		switch d := format[i]; d {
		case 'f':
			fmt.Fprintf(&b, "%06d", t.Nanosecond()/1000)
		case 'Y':
			fmt.Fprintf(&b, "%04d", t.Year())
		case 'z', 'Z':
			if aware {
				b.WriteByte('%')
				b.WriteByte(d)
			}
		default:
			b.WriteByte('%')
			b.WriteByte(d)
		}
	}
	return strftime.Format(b.String(), t)
}
