package core

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoSegments     = errors.New("timeline has no segments")
	ErrInvalidSegment = errors.New("invalid segment")
)

// Segment is a named, timed chapter of an episode.
type Segment struct {
	Title       string        `json:"title" toml:"title"`
	Description string        `json:"description" toml:"description"`
	Duration    time.Duration `json:"duration" toml:"-"`
}

// Timeline is an ordered partition of [0, Total) into segments.
// It is built once and never mutated.
type Timeline struct {
	segments []Segment
	starts   []time.Duration
	total    time.Duration
}

// NewTimeline validates segments and precomputes their cumulative starts.
func NewTimeline(segments []Segment) (*Timeline, error) {
	if len(segments) == 0 {
		return nil, ErrNoSegments
	}

	tl := &Timeline{
		segments: make([]Segment, len(segments)),
		starts:   make([]time.Duration, len(segments)),
	}
	copy(tl.segments, segments)

	var acc time.Duration
	for i, s := range tl.segments {
		if s.Duration <= 0 {
			return nil, fmt.Errorf("%w: segment %d (%q) has non-positive duration %v", ErrInvalidSegment, i, s.Title, s.Duration)
		}
		tl.starts[i] = acc
		acc += s.Duration
	}
	tl.total = acc

	return tl, nil
}

// Len returns the number of segments.
func (tl *Timeline) Len() int {
	if tl == nil {
		return 0
	}
	return len(tl.segments)
}

// Total returns the summed duration of all segments.
func (tl *Timeline) Total() time.Duration {
	if tl == nil {
		return 0
	}
	return tl.total
}

// Segment returns the segment at index i.
func (tl *Timeline) Segment(i int) Segment {
	return tl.segments[i]
}

// Segments returns a copy of the segment list.
func (tl *Timeline) Segments() []Segment {
	out := make([]Segment, len(tl.segments))
	copy(out, tl.segments)
	return out
}

// Start returns the cumulative start offset of segment i.
func (tl *Timeline) Start(i int) time.Duration {
	return tl.starts[i]
}

// IndexAt returns the index of the segment containing t. A segment's start
// is inclusive and its end exclusive; t at or past Total maps to the last
// segment.
func (tl *Timeline) IndexAt(t time.Duration) int {
	var acc time.Duration
	for i, s := range tl.segments {
		if t < acc+s.Duration {
			return i
		}
		acc += s.Duration
	}
	return len(tl.segments) - 1
}
