package clinicv1

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// Timestamp converts an optional time; nil stays unset on the wire.
func Timestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

// Time is the inverse of Timestamp.
func Time(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}
