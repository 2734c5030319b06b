package player

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tessro/feedcast/internal/config"
	"github.com/tessro/feedcast/internal/core"
	"github.com/tessro/feedcast/internal/episode"
	"github.com/tessro/feedcast/internal/timesource"
)

func testSession(t *testing.T, step time.Duration, onEvent func(core.Event)) *Session {
	t.Helper()
	tl, err := core.NewTimeline([]core.Segment{
		{Title: "A", Duration: 200 * time.Millisecond},
		{Title: "B", Duration: 200 * time.Millisecond},
	})
	if err != nil {
		t.Fatalf("NewTimeline: %v", err)
	}
	s := New(Options{
		Timeline:  tl,
		Source:    timesource.NewSimulated(step, 2*time.Millisecond),
		Bars:      4,
		FrameRate: 100,
		OnEvent:   onEvent,
	})
	t.Cleanup(s.Close)
	return s
}

func TestSessionPlaysToEnd(t *testing.T) {
	var segments []string
	ended := false
	s := testSession(t, 50*time.Millisecond, func(e core.Event) {
		switch e.Type {
		case core.EventSegmentChange:
			segments = append(segments, e.Segment.Title)
		case core.EventEnd:
			ended = true
		}
	})

	s.Tracker().Play()

	deadline := time.After(5 * time.Second)
	for !ended {
		select {
		case sig := <-s.Signals():
			s.Handle(sig)
		case <-deadline:
			t.Fatal("session did not reach the end")
		}
	}

	state := s.Tracker().State()
	if state.IsPlaying {
		t.Error("IsPlaying = true after end")
	}
	if state.CurrentTime != 0 {
		t.Errorf("CurrentTime = %v, want 0 after end", state.CurrentTime)
	}
	// A -> B while playing, then back to A on rewind.
	if len(segments) != 2 || segments[0] != "B" || segments[1] != "A" {
		t.Errorf("segment changes = %v, want [B A]", segments)
	}
	if s.Frame().Playing {
		t.Error("waveform frame still animating after end")
	}
}

func TestSessionPauseDropsPendingTicks(t *testing.T) {
	s := testSession(t, 10*time.Millisecond, nil)

	s.Tracker().Play()
	// Let ticks pile up in the channel without draining it.
	time.Sleep(20 * time.Millisecond)
	s.Tracker().Pause()
	paused := s.Tracker().State().CurrentTime

	for {
		select {
		case sig := <-s.Signals():
			s.Handle(sig)
			continue
		default:
		}
		break
	}

	if got := s.Tracker().State().CurrentTime; got != paused {
		t.Errorf("CurrentTime moved from %v to %v after pause", paused, got)
	}
}

func TestFromConfigDefaults(t *testing.T) {
	cfg := config.Default()

	s, media, err := FromConfig(cfg, nil, nil)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	defer s.Close()

	if media != nil {
		t.Errorf("media = %+v, want nil without media_file", media)
	}
	if got := s.Tracker().State().TotalTime; got != episode.SampleDuration {
		t.Errorf("TotalTime = %v, want %v", got, episode.SampleDuration)
	}
}

func TestFromConfigMediaRequiresFile(t *testing.T) {
	cfg := config.Default()
	cfg.Player.Source = config.SourceMedia

	if _, _, err := FromConfig(cfg, nil, nil); err == nil {
		t.Fatal("FromConfig with media source and no file = nil error")
	}

	path := filepath.Join(t.TempDir(), "episode.wav")
	if err := os.WriteFile(path, []byte("audio"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	cfg.Episode.MediaFile = path

	s, media, err := FromConfig(cfg, nil, nil)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	defer s.Close()
	if media == nil || media.Title != "episode" {
		t.Errorf("media = %+v, want title from file stem", media)
	}
}

func TestNewSource(t *testing.T) {
	if _, ok := NewSource(config.PlayerConfig{Source: config.SourceMedia, TickInterval: 100}).(*timesource.Media); !ok {
		t.Error("media source not built for source = media")
	}
	if _, ok := NewSource(config.PlayerConfig{Source: config.SourceSimulated, TickInterval: 100}).(*timesource.Simulated); !ok {
		t.Error("simulated source not built for source = simulated")
	}
	if got := SkipDelta(config.PlayerConfig{SkipSeconds: 15}); got != 15*time.Second {
		t.Errorf("SkipDelta() = %v, want 15s", got)
	}
}
