package fourth

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// MarshalText implements encoding.TextMarshaler using String.
func (l LocalDatetime) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using
// LocalFromISOFormat.
func (l *LocalDatetime) UnmarshalText(text []byte) error {
	v, err := LocalFromISOFormat(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (l LocalDatetime) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON implements json.Unmarshaler. As with time.Time, null is
// a no-op.
func (l *LocalDatetime) UnmarshalJSON(data []byte) error {
	s, err := jsonString(data)
	if err != nil || s == nil {
		return err
	}
	return l.UnmarshalText([]byte(*s))
}

// Value implements driver.Valuer, storing l as ISO 8601 text.
func (l LocalDatetime) Value() (driver.Value, error) {
	return l.String(), nil
}

// Scan implements sql.Scanner. It accepts ISO 8601 text, or a time.Time
// whose wall clock is taken.
func (l *LocalDatetime) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return l.UnmarshalText([]byte(v))
	case []byte:
		return l.UnmarshalText(v)
	case time.Time:
		x, err := LocalFromTime(v)
		if err != nil {
			return err
		}
		*l = x
		return nil
	}
	return scanError(src, "LocalDatetime")
}

// MarshalText implements encoding.TextMarshaler using String.
func (u UTCDatetime) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using
// UTCFromISOFormat.
func (u *UTCDatetime) UnmarshalText(text []byte) error {
	v, err := UTCFromISOFormat(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (u UTCDatetime) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON implements json.Unmarshaler. As with time.Time, null is
// a no-op.
func (u *UTCDatetime) UnmarshalJSON(data []byte) error {
	s, err := jsonString(data)
	if err != nil || s == nil {
		return err
	}
	return u.UnmarshalText([]byte(*s))
}

// Value implements driver.Valuer, storing u as ISO 8601 text.
func (u UTCDatetime) Value() (driver.Value, error) {
	return u.String(), nil
}

// Scan implements sql.Scanner. It accepts ISO 8601 text with an offset,
// or a time.Time.
func (u *UTCDatetime) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return u.UnmarshalText([]byte(v))
	case []byte:
		return u.UnmarshalText(v)
	case time.Time:
		x, err := UTCFromTime(v)
		if err != nil {
			return err
		}
		*u = x
		return nil
	}
	return scanError(src, "UTCDatetime")
}

// jsonString decodes a JSON string, returning nil for null.
func jsonString(data []byte) (*string, error) {
	if string(data) == "null" {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("fourth: %w", err)
	}
	return &s, nil
}

func scanError(src interface{}, into string) error {
	if src == nil {
		return fmt.Errorf("fourth: cannot scan NULL into %s", into)
	}
	return fmt.Errorf("fourth: cannot scan %T into %s", src, into)
}
