package fourth

import (
	"fmt"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// ToProto returns u as a protobuf Timestamp.
func (u UTCDatetime) ToProto() *timestamppb.Timestamp {
	return timestamppb.New(u.at)
}

// UTCFromProto returns the instant of a protobuf Timestamp, truncated to
// microseconds. Nil and invalid timestamps are errors.
func UTCFromProto(ts *timestamppb.Timestamp) (UTCDatetime, error) {
	if err := ts.CheckValid(); err != nil {
		return UTCDatetime{}, fmt.Errorf("fourth.UTCFromProto: %w", err)
	}
	return UTCFromTime(ts.AsTime())
}
