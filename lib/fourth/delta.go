package fourth

import (
	"errors"
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/lincolnpuzey/fourth"
)

var (
	_ starlark.HasBinary  = Delta(0)
	_ starlark.HasUnary   = Delta(0)
	_ starlark.Comparable = Delta(0)
	_ starlark.HasAttrs   = Delta(0)
	_ starlark.HasBinary  = LocalDatetime{}
	_ starlark.HasBinary  = UTCDatetime{}
)

var errDeltaRange = errors.New("delta out of range (want signed 64-bit microseconds)")

// Delta is a Starlark representation of fourth.Delta.
type Delta fourth.Delta

func newDelta(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var weeks, days, hours, minutes, seconds, milliseconds, microseconds starlark.Int
	zero := starlark.MakeInt(0)
	for _, p := range []*starlark.Int{&weeks, &days, &hours, &minutes, &seconds, &milliseconds, &microseconds} {
		*p = zero
	}
	if err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"days?", &days, "seconds?", &seconds, "microseconds?", &microseconds,
		"milliseconds?", &milliseconds, "minutes?", &minutes, "hours?", &hours,
		"weeks?", &weeks); err != nil {
		return nil, err
	}

	total := zero
	for _, part := range []struct {
		n    starlark.Int
		unit fourth.Delta
	}{
		{weeks, fourth.Week},
		{days, fourth.Day},
		{hours, fourth.Hour},
		{minutes, fourth.Minute},
		{seconds, fourth.Second},
		{milliseconds, fourth.Millisecond},
		{microseconds, fourth.Microsecond},
	} {
		total = total.Add(part.n.Mul(starlark.MakeInt64(int64(part.unit))))
	}
	return deltaOf(total)
}

func deltaOf(n starlark.Int) (Delta, error) {
	v, ok := n.Int64()
	if !ok {
		return 0, errDeltaRange
	}
	return Delta(v), nil
}

// String implements the Stringer interface.
func (d Delta) String() string { return fourth.Delta(d).String() }

// Type returns "fourth.delta".
func (d Delta) Type() string { return "fourth.delta" }

// Freeze renders Delta immutable. required by starlark.Value interface
// because delta is already immutable this is a no-op.
func (d Delta) Freeze() {}

// Hash returns a function of x such that Equals(x, y) => Hash(x) == Hash(y)
// required by starlark.Value interface.
func (d Delta) Hash() (uint32, error) {
	return uint32(d) ^ uint32(int64(d)>>32), nil
}

// Truth returns the truth value of an object required by starlark.Value
// interface.
func (d Delta) Truth() starlark.Bool { return d != 0 }

// Attr gets a value for a string attribute, implementing dot expression support
// in starklark. required by starlark.HasAttrs interface.
func (d Delta) Attr(name string) (starlark.Value, error) {
	x := fourth.Delta(d)
	switch name {
	case "days":
		return starlark.MakeInt64(x.Days()), nil
	case "seconds":
		return starlark.MakeInt(x.SecondsPart()), nil
	case "microseconds":
		return starlark.MakeInt(x.MicrosecondsPart()), nil
	}
	return builtinAttr(d, name, deltaMethods)
}

// AttrNames lists available dot expression strings. required by
// starlark.HasAttrs interface.
func (d Delta) AttrNames() []string {
	return append(builtinAttrNames(deltaMethods),
		"days",
		"microseconds",
		"seconds",
	)
}

// CompareSameType implements comparison of two Delta values. required by
// starlark.Comparable interface.
func (d Delta) CompareSameType(op syntax.Token, yV starlark.Value, depth int) (bool, error) {
	y := yV.(Delta)
	cp := 0
	if d < y {
		cp = -1
	} else if d > y {
		cp = 1
	}
	return threeway(op, cp), nil
}

// Unary implements the unary + and - operators.
func (d Delta) Unary(op syntax.Token) (starlark.Value, error) {
	switch op {
	case syntax.PLUS:
		return d, nil
	case syntax.MINUS:
		return deltaOf(starlark.MakeInt(0).Sub(starlark.MakeInt64(int64(d))))
	}
	return nil, nil
}

// Binary implements binary operators, which satisfies the starlark.HasBinary
// interface. operators:
//    delta + delta = delta
//    delta - delta = delta
//    delta * int = delta
//    int * delta = delta
//    delta // int = delta
//    delta // delta = int
//    delta / delta = float
//    delta % delta = delta
// Adding a delta to a datetime is implemented by the datetime.
func (d Delta) Binary(op syntax.Token, yV starlark.Value, side starlark.Side) (starlark.Value, error) {
	x := starlark.MakeInt64(int64(d))

	switch op {
	case syntax.PLUS:
		if y, ok := yV.(Delta); ok {
			return deltaOf(x.Add(starlark.MakeInt64(int64(y))))
		}

	case syntax.MINUS:
		if y, ok := yV.(Delta); ok {
			if side == starlark.Left {
				return deltaOf(x.Sub(starlark.MakeInt64(int64(y))))
			}
			return deltaOf(starlark.MakeInt64(int64(y)).Sub(x))
		}

	case syntax.STAR:
		if y, ok := yV.(starlark.Int); ok {
			return deltaOf(x.Mul(y))
		}

	case syntax.SLASH:
		if y, ok := yV.(Delta); ok && side == starlark.Left {
			if y == 0 {
				return nil, fmt.Errorf("%s division by zero", d.Type())
			}
			return starlark.Float(float64(d) / float64(y)), nil
		}

	case syntax.SLASHSLASH:
		if side != starlark.Left {
			break
		}
		switch y := yV.(type) {
		case Delta:
			if y == 0 {
				return nil, fmt.Errorf("%s division by zero", d.Type())
			}
			return starlark.Binary(syntax.SLASHSLASH, x, starlark.MakeInt64(int64(y)))
		case starlark.Int:
			if y.Sign() == 0 {
				return nil, fmt.Errorf("%s division by zero", d.Type())
			}
			q, err := starlark.Binary(syntax.SLASHSLASH, x, y)
			if err != nil {
				return nil, err
			}
			return deltaOf(q.(starlark.Int))
		}

	case syntax.PERCENT:
		if y, ok := yV.(Delta); ok && side == starlark.Left {
			if y == 0 {
				return nil, fmt.Errorf("%s modulo by zero", d.Type())
			}
			r, err := starlark.Binary(syntax.PERCENT, x, starlark.MakeInt64(int64(y)))
			if err != nil {
				return nil, err
			}
			return deltaOf(r.(starlark.Int))
		}
	}

	return nil, nil
}

var deltaMethods = map[string]builtinMethod{
	"total_seconds": deltaTotalSeconds,
}

func deltaTotalSeconds(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 0); err != nil {
		return nil, err
	}
	return starlark.Float(fourth.Delta(recV.(Delta)).TotalSeconds()), nil
}
