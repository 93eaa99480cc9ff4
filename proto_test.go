package fourth_test

import (
	"testing"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/lincolnpuzey/fourth"
)

func TestProto(t *testing.T) {
	u := fourth.MustUTCAt(2020, time.January, 2, 3, 4, 5, 6)
	ts := u.ToProto()
	if ts.GetSeconds() != 1577934245 || ts.GetNanos() != 6000 {
		t.Errorf("ToProto = %v, want 1577934245s 6000ns", ts)
	}
	back, err := fourth.UTCFromProto(ts)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(u) {
		t.Errorf("UTCFromProto(ToProto(%v)) = %v", u, back)
	}

	got, err := fourth.UTCFromProto(&timestamppb.Timestamp{Seconds: 0, Nanos: 1999})
	if err != nil {
		t.Fatal(err)
	}
	if want := fourth.MustUTCAt(1970, time.January, 1, 0, 0, 0, 1); !got.Equal(want) {
		t.Errorf("UTCFromProto truncation = %v, want %v", got, want)
	}

	for _, ts := range []*timestamppb.Timestamp{
		nil,
		{Seconds: -62135596801},
		{Nanos: -1},
	} {
		if _, err := fourth.UTCFromProto(ts); err == nil {
			t.Errorf("UTCFromProto(%v) succeeded", ts)
		}
	}
}
