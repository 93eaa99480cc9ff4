package fourth

import (
	"fmt"
	"time"
	"unicode/utf8"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/lincolnpuzey/fourth"
)

// civil is the calendar view shared by both datetime kinds.
type civil interface {
	Year() int
	Month() time.Month
	Day() int
	Hour() int
	Minute() int
	Second() int
	Microsecond() int
	Weekday() time.Weekday
	YearDay() int
}

var civilAttrNames = []string{
	"day",
	"hour",
	"microsecond",
	"minute",
	"month",
	"second",
	"weekday",
	"year",
	"yearday",
}

func civilAttr(c civil, name string) starlark.Value {
	switch name {
	case "year":
		return starlark.MakeInt(c.Year())
	case "month":
		return starlark.MakeInt(int(c.Month()))
	case "day":
		return starlark.MakeInt(c.Day())
	case "hour":
		return starlark.MakeInt(c.Hour())
	case "minute":
		return starlark.MakeInt(c.Minute())
	case "second":
		return starlark.MakeInt(c.Second())
	case "microsecond":
		return starlark.MakeInt(c.Microsecond())
	case "weekday":
		// Monday is 0.
		return starlark.MakeInt((int(c.Weekday()) + 6) % 7)
	case "yearday":
		return starlark.MakeInt(c.YearDay())
	}
	return nil
}

func hashMicros(us int64) uint32 {
	return uint32(us) ^ uint32(us>>32)
}

// unpackISOArgs unpacks the sep and timespec arguments of iso_format.
func unpackISOArgs(fnname string, args starlark.Tuple, kwargs []starlark.Tuple) (rune, fourth.Timespec, error) {
	sep, spec := "T", "microseconds"
	if err := starlark.UnpackArgs(fnname, args, kwargs, "sep?", &sep, "timespec?", &spec); err != nil {
		return 0, 0, err
	}
	r, size := utf8.DecodeRuneInString(sep)
	if size == 0 || size != len(sep) {
		return 0, 0, fmt.Errorf("%s: sep must be a single character, got %q", fnname, sep)
	}
	ts, err := fourth.ParseTimespec(spec)
	if err != nil {
		return 0, 0, err
	}
	return r, ts, nil
}

func unpackZone(fnname string, args starlark.Tuple, kwargs []starlark.Tuple) (*time.Location, error) {
	zone := "Local"
	if err := starlark.UnpackArgs(fnname, args, kwargs, "zone?", &zone); err != nil {
		return nil, err
	}
	return loadZone(zone)
}

// LocalDatetime is a Starlark representation of a naive local datetime.
type LocalDatetime fourth.LocalDatetime

// String implements the Stringer interface.
func (l LocalDatetime) String() string { return fourth.LocalDatetime(l).String() }

// Type returns "fourth.local_datetime".
func (l LocalDatetime) Type() string { return "fourth.local_datetime" }

// Freeze is a no-op; LocalDatetime is immutable.
func (l LocalDatetime) Freeze() {}

// Hash returns a function of x such that Equals(x, y) => Hash(x) == Hash(y)
// required by starlark.Value interface.
func (l LocalDatetime) Hash() (uint32, error) {
	return hashMicros(fourth.LocalDatetime(l).AsTime().UnixMicro()), nil
}

// Truth reports true; every datetime is truthy.
func (l LocalDatetime) Truth() starlark.Bool { return true }

// Attr gets a value for a string attribute, implementing dot expression support
// in starklark. required by starlark.HasAttrs interface.
func (l LocalDatetime) Attr(name string) (starlark.Value, error) {
	if v := civilAttr(fourth.LocalDatetime(l), name); v != nil {
		return v, nil
	}
	return builtinAttr(l, name, localMethods)
}

// AttrNames lists available dot expression strings. required by
// starlark.HasAttrs interface.
func (l LocalDatetime) AttrNames() []string {
	return append(builtinAttrNames(localMethods), civilAttrNames...)
}

// CompareSameType implements comparison of two LocalDatetime values.
// required by starlark.Comparable interface.
func (l LocalDatetime) CompareSameType(op syntax.Token, yV starlark.Value, depth int) (bool, error) {
	cp := fourth.LocalDatetime(l).Compare(fourth.LocalDatetime(yV.(LocalDatetime)))
	return threeway(op, cp), nil
}

// Binary implements binary operators, which satisfies the starlark.HasBinary
// interface
//    local_datetime + delta = local_datetime
//    delta + local_datetime = local_datetime
//    local_datetime - delta = local_datetime
//    local_datetime - local_datetime = delta
func (l LocalDatetime) Binary(op syntax.Token, yV starlark.Value, side starlark.Side) (starlark.Value, error) {
	x := fourth.LocalDatetime(l)

	switch op {
	case syntax.PLUS:
		if y, ok := yV.(Delta); ok {
			r, err := x.Add(fourth.Delta(y))
			if err != nil {
				return nil, err
			}
			return LocalDatetime(r), nil
		}
	case syntax.MINUS:
		switch y := yV.(type) {
		case Delta:
			if side == starlark.Left {
				r, err := x.Add(-fourth.Delta(y))
				if err != nil {
					return nil, err
				}
				return LocalDatetime(r), nil
			}
		case LocalDatetime:
			if side == starlark.Left {
				return Delta(x.Sub(fourth.LocalDatetime(y))), nil
			}
			return Delta(fourth.LocalDatetime(y).Sub(x)), nil
		}
	}

	return nil, nil
}

var localMethods = map[string]builtinMethod{
	"iso_format": localISOFormat,
	"strftime":   localStrftime,
	"to_utc":     localToUTC,
}

func localISOFormat(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	sep, spec, err := unpackISOArgs(fnname, args, kwargs)
	if err != nil {
		return nil, err
	}
	recv := fourth.LocalDatetime(recV.(LocalDatetime))
	return starlark.String(recv.ISOFormat(sep, spec)), nil
}

func localStrftime(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var format string
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 1, &format); err != nil {
		return nil, err
	}
	recv := fourth.LocalDatetime(recV.(LocalDatetime))
	return starlark.String(recv.Strftime(format)), nil
}

func localToUTC(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	loc, err := unpackZone(fnname, args, kwargs)
	if err != nil {
		return nil, err
	}
	u, err := fourth.LocalDatetime(recV.(LocalDatetime)).ToUTC(loc)
	if err != nil {
		return nil, err
	}
	return UTCDatetime(u), nil
}

// UTCDatetime is a Starlark representation of a UTC datetime.
type UTCDatetime fourth.UTCDatetime

// String implements the Stringer interface.
func (u UTCDatetime) String() string { return fourth.UTCDatetime(u).String() }

// Type returns "fourth.utc_datetime".
func (u UTCDatetime) Type() string { return "fourth.utc_datetime" }

func (u UTCDatetime) Freeze() {}

func (u UTCDatetime) Hash() (uint32, error) {
	return hashMicros(fourth.UTCDatetime(u).UnixMicro()), nil
}

func (u UTCDatetime) Truth() starlark.Bool { return true }

func (u UTCDatetime) Attr(name string) (starlark.Value, error) {
	if v := civilAttr(fourth.UTCDatetime(u), name); v != nil {
		return v, nil
	}
	return builtinAttr(u, name, utcMethods)
}

func (u UTCDatetime) AttrNames() []string {
	return append(builtinAttrNames(utcMethods), civilAttrNames...)
}

// CompareSameType implements comparison of two UTCDatetime values.
func (u UTCDatetime) CompareSameType(op syntax.Token, yV starlark.Value, depth int) (bool, error) {
	cp := fourth.UTCDatetime(u).Compare(fourth.UTCDatetime(yV.(UTCDatetime)))
	return threeway(op, cp), nil
}

// Binary implements the same operators as LocalDatetime.Binary, for
// UTC datetimes. Mixing the two kinds is an error.
func (u UTCDatetime) Binary(op syntax.Token, yV starlark.Value, side starlark.Side) (starlark.Value, error) {
	x := fourth.UTCDatetime(u)

	switch op {
	case syntax.PLUS:
		if y, ok := yV.(Delta); ok {
			r, err := x.Add(fourth.Delta(y))
			if err != nil {
				return nil, err
			}
			return UTCDatetime(r), nil
		}
	case syntax.MINUS:
		switch y := yV.(type) {
		case Delta:
			if side == starlark.Left {
				r, err := x.Add(-fourth.Delta(y))
				if err != nil {
					return nil, err
				}
				return UTCDatetime(r), nil
			}
		case UTCDatetime:
			if side == starlark.Left {
				return Delta(x.Sub(fourth.UTCDatetime(y))), nil
			}
			return Delta(fourth.UTCDatetime(y).Sub(x)), nil
		}
	}

	return nil, nil
}

var utcMethods = map[string]builtinMethod{
	"iso_format": utcISOFormat,
	"strftime":   utcStrftime,
	"timestamp":  utcTimestamp,
	"to_local":   utcToLocal,
	"unix_micro": utcUnixMicro,
}

func utcISOFormat(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	sep, spec, err := unpackISOArgs(fnname, args, kwargs)
	if err != nil {
		return nil, err
	}
	recv := fourth.UTCDatetime(recV.(UTCDatetime))
	return starlark.String(recv.ISOFormat(sep, spec)), nil
}

func utcStrftime(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var format string
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 1, &format); err != nil {
		return nil, err
	}
	recv := fourth.UTCDatetime(recV.(UTCDatetime))
	return starlark.String(recv.Strftime(format)), nil
}

func utcTimestamp(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 0); err != nil {
		return nil, err
	}
	return starlark.Float(fourth.UTCDatetime(recV.(UTCDatetime)).Timestamp()), nil
}

func utcUnixMicro(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 0); err != nil {
		return nil, err
	}
	return starlark.MakeInt64(fourth.UTCDatetime(recV.(UTCDatetime)).UnixMicro()), nil
}

func utcToLocal(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	loc, err := unpackZone(fnname, args, kwargs)
	if err != nil {
		return nil, err
	}
	l, err := fourth.UTCDatetime(recV.(UTCDatetime)).ToLocal(loc)
	if err != nil {
		return nil, err
	}
	return LocalDatetime(l), nil
}
