package core

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		typ  EventType
		want string
	}{
		{EventProgress, "progress"},
		{EventSegmentChange, "segment_change"},
		{EventPlay, "play"},
		{EventPause, "pause"},
		{EventSeek, "seek"},
		{EventEnd, "end"},
		{EventType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestEventJSONUsesNames(t *testing.T) {
	e := Event{
		Type:    EventSegmentChange,
		State:   PlaybackState{CurrentTime: 35 * time.Second, SegmentIndex: 1},
		Segment: Segment{Title: "B"},
	}

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"type":"segment_change"`) {
		t.Errorf("json = %s, want the event name", data)
	}
}
