package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PlaybackState represents the current playback position.
type PlaybackState struct {
	CurrentTime  time.Duration `json:"current_time"`
	TotalTime    time.Duration `json:"total_time"`
	IsPlaying    bool          `json:"is_playing"`
	SegmentIndex int           `json:"segment_index"`
}

// ProgressPercent returns playback progress as a percentage (0-100).
func (s *PlaybackState) ProgressPercent() float64 {
	if s == nil || s.TotalTime == 0 {
		return 0
	}
	return float64(s.CurrentTime) / float64(s.TotalTime) * 100
}

// AtEnd reports whether the position sits on the end of the timeline.
func (s *PlaybackState) AtEnd() bool {
	return s != nil && s.TotalTime > 0 && s.CurrentTime >= s.TotalTime
}

// FormatTime formats d as minutes:seconds, truncating fractional seconds.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// ParseTime parses "m:ss", plain seconds ("70") or a Go duration ("1m10s").
func ParseTime(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if m, sec, ok := strings.Cut(s, ":"); ok {
		mins, err := strconv.Atoi(m)
		if err != nil {
			return 0, fmt.Errorf("invalid minutes in %q", s)
		}
		secs, err := strconv.Atoi(sec)
		if err != nil || secs < 0 || secs > 59 {
			return 0, fmt.Errorf("invalid seconds in %q", s)
		}
		return time.Duration(mins)*time.Minute + time.Duration(secs)*time.Second, nil
	}
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		return time.Duration(secs * float64(time.Second)), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q (use m:ss, seconds, or a duration like 1m10s)", s)
	}
	return d, nil
}
