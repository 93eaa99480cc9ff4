package fourth_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/lincolnpuzey/fourth"
)

func TestUTCAt(t *testing.T) {
	u, err := fourth.UTCAt(2020, time.January, 2, 3, 4, 5, 6)
	if err != nil {
		t.Fatal(err)
	}
	if got := u.String(); got != "2020-01-02T03:04:05.000006+00:00" {
		t.Errorf("String() = %s", got)
	}
	if got := u.GoString(); got != "fourth.MustUTCAt(2020, time.January, 2, 3, 4, 5, 6)" {
		t.Errorf("GoString() = %s", got)
	}

	if _, err := fourth.UTCAt(2020, time.February, 30, 0, 0, 0, 0); !errors.Is(err, fourth.ErrOutOfRange) {
		t.Errorf("February 30: got %v, want ErrOutOfRange", err)
	}
}

func TestUTCNowUsesNowFunc(t *testing.T) {
	oldNow := fourth.NowFunc
	defer func() {
		fourth.NowFunc = oldNow
	}()

	fourth.NowFunc = func() time.Time {
		return time.Date(2020, 1, 1, 12, 0, 0, 123456789, time.FixedZone("east", 3600))
	}
	want := fourth.MustUTCAt(2020, time.January, 1, 11, 0, 0, 123456)
	if got := fourth.UTCNow(); !got.Equal(want) {
		t.Errorf("UTCNow() = %v, want %v", got, want)
	}
}

func TestUTCFromTime(t *testing.T) {
	in := time.Date(2020, 1, 1, 1, 30, 0, 1500, time.FixedZone("plus2", 2*3600))
	got, err := fourth.UTCFromTime(in)
	if err != nil {
		t.Fatal(err)
	}
	want := fourth.MustUTCAt(2019, time.December, 31, 23, 30, 0, 1)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("UTCFromTime mismatch (-want +got):\n%s", diff)
	}
	if !got.In(time.UTC).Equal(got.AsTime()) {
		t.Errorf("In(UTC) and AsTime() disagree")
	}

	late := time.Date(9999, 12, 31, 23, 30, 0, 0, time.FixedZone("minus1", -3600))
	if _, err := fourth.UTCFromTime(late); !errors.Is(err, fourth.ErrOutOfRange) {
		t.Errorf("%v: got %v, want ErrOutOfRange", late, err)
	}
}

func TestUTCFromTimestamp(t *testing.T) {
	for _, test := range []struct {
		ts   float64
		want string
	}{
		{0, "1970-01-01T00:00:00.000000+00:00"},
		{1.5, "1970-01-01T00:00:01.500000+00:00"},
		{-1.5, "1969-12-31T23:59:58.500000+00:00"},
		{1577836800.25, "2020-01-01T00:00:00.250000+00:00"},
		{-62135596800, "0001-01-01T00:00:00.000000+00:00"},
	} {
		u, err := fourth.UTCFromTimestamp(test.ts)
		if err != nil {
			t.Errorf("UTCFromTimestamp(%v): %v", test.ts, err)
			continue
		}
		if got := u.String(); got != test.want {
			t.Errorf("UTCFromTimestamp(%v) = %s, want %s", test.ts, got, test.want)
		}
		if got := u.Timestamp(); got != test.ts {
			t.Errorf("(%v).Timestamp() = %v, want %v", u, got, test.ts)
		}
	}

	for _, ts := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1e20, -62135596801} {
		if _, err := fourth.UTCFromTimestamp(ts); !errors.Is(err, fourth.ErrOutOfRange) {
			t.Errorf("UTCFromTimestamp(%v): got %v, want ErrOutOfRange", ts, err)
		}
	}
}

func TestUTCFromUnixMicro(t *testing.T) {
	for _, u := range []fourth.UTCDatetime{fourth.UTCMin, fourth.UTCMax, fourth.MustUTCAt(1969, time.July, 20, 20, 17, 40, 1)} {
		got, err := fourth.UTCFromUnixMicro(u.UnixMicro())
		if err != nil {
			t.Errorf("UTCFromUnixMicro(%d): %v", u.UnixMicro(), err)
			continue
		}
		if !got.Equal(u) {
			t.Errorf("UTCFromUnixMicro(%d) = %v, want %v", u.UnixMicro(), got, u)
		}
	}
	if _, err := fourth.UTCFromUnixMicro(fourth.UTCMax.UnixMicro() + 1); !errors.Is(err, fourth.ErrOutOfRange) {
		t.Errorf("past UTCMax: got %v, want ErrOutOfRange", err)
	}
}

func TestUTCToLocal(t *testing.T) {
	u := fourth.MustUTCAt(2020, time.January, 1, 0, 0, 0, 0)
	got, err := u.ToLocal(time.FixedZone("plus2", 2*3600))
	if err != nil {
		t.Fatal(err)
	}
	if want := fourth.MustLocalAt(2020, time.January, 1, 2, 0, 0, 0); !got.Equal(want) {
		t.Errorf("ToLocal() = %v, want %v", got, want)
	}
	back, err := got.ToUTC(time.FixedZone("plus2", 2*3600))
	if err != nil || !back.Equal(u) {
		t.Errorf("ToUTC(ToLocal(u)) = %v, %v; want %v", back, err, u)
	}

	if _, err := fourth.UTCMin.ToLocal(time.FixedZone("minus1", -3600)); !errors.Is(err, fourth.ErrOutOfRange) {
		t.Errorf("UTCMin.ToLocal: got %v, want ErrOutOfRange", err)
	}
}

func TestUTCArithmeticAndOrdering(t *testing.T) {
	a := fourth.MustUTCAt(2020, time.December, 31, 23, 59, 59, 999999)
	b, err := a.Add(fourth.Microsecond)
	if err != nil {
		t.Fatal(err)
	}
	if want := fourth.MustUTCAt(2021, time.January, 1, 0, 0, 0, 0); !b.Equal(want) {
		t.Errorf("%v + 1us = %v, want %v", a, b, want)
	}
	if d := b.Sub(a); d != fourth.Microsecond {
		t.Errorf("(%v).Sub(%v) = %v", b, a, d)
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare is not a total order on %v, %v", a, b)
	}
	if !a.Before(b) || !b.After(a) {
		t.Errorf("Before/After disagree with Compare")
	}
	if _, err := fourth.UTCMax.Add(fourth.Microsecond); !errors.Is(err, fourth.ErrOutOfRange) {
		t.Errorf("UTCMax + 1us: got %v, want ErrOutOfRange", err)
	}
}
