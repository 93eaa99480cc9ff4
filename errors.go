package fourth

import (
	"errors"
	"fmt"
)

// errors - keep in alphabetic order
var (
	// ErrAware is returned when timezone information is found where a
	// naive datetime was expected.
	ErrAware = errors.New("unexpected timezone information")

	// ErrNaive is returned when timezone information is missing where an
	// aware datetime was expected.
	ErrNaive = errors.New("missing timezone information")

	// ErrOutOfRange is returned for field values and arithmetic results
	// outside the supported calendar.
	ErrOutOfRange = errors.New("out of range")

	// ErrSyntax is returned for text that does not match the expected form.
	ErrSyntax = errors.New("invalid syntax")
)

// A RangeError reports a datetime field outside its valid range.
type RangeError struct {
	Field    string
	Value    int64
	Min, Max int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// A ParseError records a failed conversion of text to a datetime.
type ParseError struct {
	Func  string // the failing function (LocalFromISOFormat, UTCStrptime, ...)
	Input string // the input text
	Err   error  // the reason the conversion failed
}

func (e *ParseError) Error() string {
	return "fourth." + e.Func + ": parsing " + quote(e.Input) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

func quote(s string) string { return fmt.Sprintf("%q", s) }

func syntaxErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrSyntax}, args...)...)
}
