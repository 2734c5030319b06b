package timesource

import (
	"testing"
	"time"

	"github.com/tessro/feedcast/internal/core"
)

var (
	_ core.TimeSource = (*Simulated)(nil)
	_ core.TimeSource = (*Media)(nil)
)

func TestSimulatedTicks(t *testing.T) {
	s := NewSimulated(0, 0)

	if s.Interval() != 100*time.Millisecond {
		t.Errorf("Interval() = %v, want 100ms", s.Interval())
	}

	if got := s.Tick(); got != 0 {
		t.Errorf("Tick() while stopped = %v, want 0", got)
	}

	s.Start(10 * time.Second)
	for i := 0; i < 5; i++ {
		s.Tick()
	}
	if got := s.Tick(); got != 10*time.Second+600*time.Millisecond {
		t.Errorf("Tick() after 6 steps = %v, want 10.6s", got)
	}

	s.Stop()
	if got := s.Tick(); got != 10*time.Second+600*time.Millisecond {
		t.Errorf("Tick() after Stop = %v, want position to hold", got)
	}

	s.Seek(time.Second)
	s.Start(time.Second)
	if got := s.Tick(); got != 1100*time.Millisecond {
		t.Errorf("Tick() after Seek = %v, want 1.1s", got)
	}
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestMediaFollowsWallClock(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	m := NewMedia(WithNow(clock.Now), WithInterval(50*time.Millisecond))

	if m.Interval() != 50*time.Millisecond {
		t.Errorf("Interval() = %v, want 50ms", m.Interval())
	}

	m.Start(5 * time.Second)
	clock.Advance(1500 * time.Millisecond)
	if got := m.Tick(); got != 6500*time.Millisecond {
		t.Errorf("Tick() = %v, want 6.5s", got)
	}

	m.Stop()
	clock.Advance(10 * time.Second)
	if got := m.Tick(); got != 6500*time.Millisecond {
		t.Errorf("Tick() while stopped = %v, want 6.5s", got)
	}

	m.Start(m.Tick())
	clock.Advance(time.Second)
	m.Seek(30 * time.Second)
	clock.Advance(250 * time.Millisecond)
	if got := m.Tick(); got != 30250*time.Millisecond {
		t.Errorf("Tick() after Seek = %v, want 30.25s", got)
	}
}

func TestMediaDefaults(t *testing.T) {
	m := NewMedia(WithInterval(0))
	if m.Interval() != DefaultMediaInterval {
		t.Errorf("Interval() = %v, want %v", m.Interval(), DefaultMediaInterval)
	}
	if got := m.Tick(); got != 0 {
		t.Errorf("Tick() on new clock = %v, want 0", got)
	}
}
