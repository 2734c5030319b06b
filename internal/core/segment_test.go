package core

import (
	"errors"
	"testing"
	"time"
)

func testTimeline(t *testing.T) *Timeline {
	t.Helper()
	tl, err := NewTimeline([]Segment{
		{Title: "A", Duration: 35 * time.Second},
		{Title: "B", Duration: 40 * time.Second},
		{Title: "C", Duration: 20 * time.Second},
	})
	if err != nil {
		t.Fatalf("NewTimeline: %v", err)
	}
	return tl
}

func TestTimelineTotals(t *testing.T) {
	tl := testTimeline(t)

	if tl.Total() != 95*time.Second {
		t.Errorf("Total() = %v, want %v", tl.Total(), 95*time.Second)
	}
	if tl.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tl.Len())
	}
	if tl.Start(2) != 75*time.Second {
		t.Errorf("Start(2) = %v, want %v", tl.Start(2), 75*time.Second)
	}
}

func TestIndexAt(t *testing.T) {
	tl := testTimeline(t)

	tests := []struct {
		name string
		at   time.Duration
		want string
	}{
		{"zero", 0, "A"},
		{"inside first", 10 * time.Second, "A"},
		{"just before boundary", 35*time.Second - time.Millisecond, "A"},
		{"boundary is inclusive on start", 35 * time.Second, "B"},
		{"inside second", 36 * time.Second, "B"},
		{"start of last", 75 * time.Second, "C"},
		{"end maps to last", 95 * time.Second, "C"},
		{"past end maps to last", 200 * time.Second, "C"},
		{"negative maps to first", -time.Second, "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tl.Segment(tl.IndexAt(tt.at)).Title
			if got != tt.want {
				t.Errorf("IndexAt(%v) = %q, want %q", tt.at, got, tt.want)
			}
		})
	}
}

func TestIndexAtCumulativeInvariant(t *testing.T) {
	tl := testTimeline(t)

	for at := time.Duration(0); at <= tl.Total(); at += 100 * time.Millisecond {
		i := tl.IndexAt(at)
		start := tl.Start(i)
		end := start + tl.Segment(i).Duration

		if at == tl.Total() {
			if i != tl.Len()-1 {
				t.Fatalf("IndexAt(total) = %d, want last index %d", i, tl.Len()-1)
			}
			continue
		}
		if at < start || at >= end {
			t.Fatalf("IndexAt(%v) = %d with range [%v, %v)", at, i, start, end)
		}
	}
}

func TestNewTimelineErrors(t *testing.T) {
	if _, err := NewTimeline(nil); !errors.Is(err, ErrNoSegments) {
		t.Errorf("NewTimeline(nil) error = %v, want ErrNoSegments", err)
	}

	_, err := NewTimeline([]Segment{{Title: "Empty", Duration: 0}})
	if !errors.Is(err, ErrInvalidSegment) {
		t.Errorf("NewTimeline(zero duration) error = %v, want ErrInvalidSegment", err)
	}
}

func TestTimelineCopiesInput(t *testing.T) {
	segments := []Segment{{Title: "A", Duration: time.Second}}
	tl, err := NewTimeline(segments)
	if err != nil {
		t.Fatalf("NewTimeline: %v", err)
	}

	segments[0].Title = "mutated"
	if tl.Segment(0).Title != "A" {
		t.Errorf("Segment(0).Title = %q, want %q", tl.Segment(0).Title, "A")
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{9 * time.Second, "0:09"},
		{59*time.Second + 900*time.Millisecond, "0:59"},
		{154 * time.Second, "2:34"},
		{61 * time.Minute, "61:00"},
		{-time.Second, "0:00"},
	}

	for _, tt := range tests {
		if got := FormatTime(tt.in); got != tt.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"1:10", 70 * time.Second, false},
		{"0:05", 5 * time.Second, false},
		{"70", 70 * time.Second, false},
		{"1.5", 1500 * time.Millisecond, false},
		{"1m10s", 70 * time.Second, false},
		{"1:75", 0, true},
		{"x:10", 0, true},
		{"soon", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseTime(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTime(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestProgressPercent(t *testing.T) {
	var nilState *PlaybackState
	if nilState.ProgressPercent() != 0 {
		t.Error("nil state should report 0%")
	}

	s := &PlaybackState{CurrentTime: 30 * time.Second, TotalTime: 120 * time.Second}
	if got := s.ProgressPercent(); got != 25 {
		t.Errorf("ProgressPercent() = %v, want 25", got)
	}
}
