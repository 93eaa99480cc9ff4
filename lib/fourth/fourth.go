package fourth

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"

	"github.com/lincolnpuzey/fourth"
)

// ModuleName defines the expected name for this Module when used in the
// starlark runtime.
const ModuleName = "fourth"

// Module fourth is a Starlark module of naive local and UTC datetimes.
var Module = &starlarkstruct.Module{
	Name: ModuleName,
	Members: starlark.StringDict{
		"local_datetime":        starlark.NewBuiltin("local_datetime", newLocal),
		"local_now":             starlark.NewBuiltin("local_now", localNow),
		"local_from_iso_format": starlark.NewBuiltin("local_from_iso_format", localFromISOFormat),
		"local_strptime":        starlark.NewBuiltin("local_strptime", localStrptime),
		"utc_datetime":          starlark.NewBuiltin("utc_datetime", newUTC),
		"utc_now":               starlark.NewBuiltin("utc_now", utcNow),
		"utc_from_iso_format":   starlark.NewBuiltin("utc_from_iso_format", utcFromISOFormat),
		"utc_strptime":          starlark.NewBuiltin("utc_strptime", utcStrptime),
		"utc_from_timestamp":    starlark.NewBuiltin("utc_from_timestamp", utcFromTimestamp),
		"delta":                 starlark.NewBuiltin("delta", newDelta),

		"local_min": LocalDatetime(fourth.LocalMin),
		"local_max": LocalDatetime(fourth.LocalMax),
		"utc_min":   UTCDatetime(fourth.UTCMin),
		"utc_max":   UTCDatetime(fourth.UTCMax),

		"microsecond": Delta(fourth.Microsecond),
		"millisecond": Delta(fourth.Millisecond),
		"second":      Delta(fourth.Second),
		"minute":      Delta(fourth.Minute),
		"hour":        Delta(fourth.Hour),
		"day":         Delta(fourth.Day),
		"week":        Delta(fourth.Week),
	},
}

// LoadModule loads the fourth module.
// It is concurrency-safe and idempotent.
func LoadModule() (starlark.StringDict, error) {
	return starlark.StringDict{
		ModuleName: Module,
	}, nil
}

// NowFunc is a function that generates the current time. Intentionally exported
// so that it can be overridden, for example by applications that require their
// Starlark scripts to be fully deterministic.
var NowFunc = time.Now

const contextKey = "fourth.now"

// SetNow sets the thread-local now function used by local_now and
// utc_now. It takes precedence over NowFunc.
func SetNow(thread *starlark.Thread, nowFunc func() (time.Time, error)) {
	thread.SetLocal(contextKey, nowFunc)
}

func nowTime(thread *starlark.Thread) (time.Time, error) {
	if f, ok := thread.Local(contextKey).(func() (time.Time, error)); ok && f != nil {
		return f()
	}
	if NowFunc == nil {
		return time.Time{}, errors.New("the current time is not available")
	}
	return NowFunc(), nil
}

func localNow(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	t, err := nowTime(thread)
	if err != nil {
		return nil, err
	}
	l, err := fourth.LocalFromTime(t.Local())
	if err != nil {
		return nil, err
	}
	return LocalDatetime(l), nil
}

func utcNow(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	t, err := nowTime(thread)
	if err != nil {
		return nil, err
	}
	u, err := fourth.UTCFromTime(t)
	if err != nil {
		return nil, err
	}
	return UTCDatetime(u), nil
}

// civilArgs are the arguments of local_datetime and utc_datetime.
type civilArgs struct {
	year, month, day, hour, minute, second, microsecond int
}

func (c *civilArgs) unpack(fnname string, args starlark.Tuple, kwargs []starlark.Tuple) error {
	return starlark.UnpackArgs(fnname, args, kwargs,
		"year", &c.year, "month", &c.month, "day", &c.day,
		"hour?", &c.hour, "minute?", &c.minute, "second?", &c.second,
		"microsecond?", &c.microsecond)
}

func newLocal(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var c civilArgs
	if err := c.unpack(b.Name(), args, kwargs); err != nil {
		return nil, err
	}
	l, err := fourth.LocalAt(c.year, time.Month(c.month), c.day, c.hour, c.minute, c.second, c.microsecond)
	if err != nil {
		return nil, err
	}
	return LocalDatetime(l), nil
}

func newUTC(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var c civilArgs
	if err := c.unpack(b.Name(), args, kwargs); err != nil {
		return nil, err
	}
	u, err := fourth.UTCAt(c.year, time.Month(c.month), c.day, c.hour, c.minute, c.second, c.microsecond)
	if err != nil {
		return nil, err
	}
	return UTCDatetime(u), nil
}

func localFromISOFormat(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var s string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &s); err != nil {
		return nil, err
	}
	l, err := fourth.LocalFromISOFormat(s)
	if err != nil {
		return nil, err
	}
	return LocalDatetime(l), nil
}

func utcFromISOFormat(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var s string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &s); err != nil {
		return nil, err
	}
	u, err := fourth.UTCFromISOFormat(s)
	if err != nil {
		return nil, err
	}
	return UTCDatetime(u), nil
}

func localStrptime(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var s, format string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "s", &s, "format", &format); err != nil {
		return nil, err
	}
	l, err := fourth.LocalStrptime(s, format)
	if err != nil {
		return nil, err
	}
	return LocalDatetime(l), nil
}

func utcStrptime(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var s, format string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "s", &s, "format", &format); err != nil {
		return nil, err
	}
	u, err := fourth.UTCStrptime(s, format)
	if err != nil {
		return nil, err
	}
	return UTCDatetime(u), nil
}

func utcFromTimestamp(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x starlark.Value
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &x); err != nil {
		return nil, err
	}
	ts, ok := starlark.AsFloat(x)
	if !ok {
		return nil, fmt.Errorf("%s: got %s, want int or float", b.Name(), x.Type())
	}
	u, err := fourth.UTCFromTimestamp(ts)
	if err != nil {
		return nil, err
	}
	return UTCDatetime(u), nil
}

// loadZone resolves a zone name, with "Local" naming the host zone.
func loadZone(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

type builtinMethod func(fnname string, recv starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

func builtinAttr(recv starlark.Value, name string, methods map[string]builtinMethod) (starlark.Value, error) {
	method := methods[name]
	if method == nil {
		return nil, nil // no such method
	}

	// Allocate a closure over 'method'.
	impl := func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		return method(b.Name(), b.Receiver(), args, kwargs)
	}
	return starlark.NewBuiltin(name, impl).BindReceiver(recv), nil
}

func builtinAttrNames(methods map[string]builtinMethod) []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// threeway interprets a three-way comparison value cmp (-1, 0, +1)
// as a boolean comparison (e.g. x < y).
func threeway(op syntax.Token, cmp int) bool {
	switch op {
	case syntax.EQL:
		return cmp == 0
	case syntax.NEQ:
		return cmp != 0
	case syntax.LE:
		return cmp <= 0
	case syntax.LT:
		return cmp < 0
	case syntax.GE:
		return cmp >= 0
	case syntax.GT:
		return cmp > 0
	}
	panic(op)
}
