package clinicv1

import (
	"testing"
	"time"
)

func TestTimestampRoundTrip(t *testing.T) {
	if Timestamp(nil) != nil || Time(nil) != nil {
		t.Fatal("nil must stay nil")
	}

	at := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	got := Time(Timestamp(&at))
	if got == nil || !got.Equal(at) {
		t.Errorf("got %v, want %v", got, at)
	}
}
