package core

import "time"

// EventType represents the type of playback event.
type EventType int

const (
	EventProgress EventType = iota
	EventSegmentChange
	EventPlay
	EventPause
	EventSeek
	EventEnd
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventProgress:
		return "progress"
	case EventSegmentChange:
		return "segment_change"
	case EventPlay:
		return "play"
	case EventPause:
		return "pause"
	case EventSeek:
		return "seek"
	case EventEnd:
		return "end"
	default:
		return "unknown"
	}
}

// MarshalText encodes the event name, so JSON output reads "play" rather
// than a number.
func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Event is a tracker state change.
type Event struct {
	Type      EventType     `json:"type"`
	Timestamp time.Time     `json:"timestamp"`
	State     PlaybackState `json:"state"`
	Segment   Segment       `json:"segment"`
}
