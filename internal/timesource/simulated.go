// Package timesource implements the clocks that drive playback: a media
// clock for real audio and a timer-based simulation.
package timesource

import "time"

const (
	// DefaultStep is how far the simulation advances per tick.
	DefaultStep = 100 * time.Millisecond

	// DefaultMediaInterval approximates how often media elements report
	// time updates.
	DefaultMediaInterval = 250 * time.Millisecond
)

// Simulated advances a fixed step on every tick, regardless of wall time.
type Simulated struct {
	step     time.Duration
	interval time.Duration
	pos      time.Duration
	running  bool
}

// NewSimulated creates a simulation that adds step every interval. Zero
// values fall back to 100ms for both.
func NewSimulated(step, interval time.Duration) *Simulated {
	if step <= 0 {
		step = DefaultStep
	}
	if interval <= 0 {
		interval = step
	}
	return &Simulated{step: step, interval: interval}
}

func (s *Simulated) Start(from time.Duration) {
	s.pos = from
	s.running = true
}

func (s *Simulated) Stop() {
	s.running = false
}

func (s *Simulated) Seek(to time.Duration) {
	s.pos = to
}

// Tick adds one step while running and returns the position.
func (s *Simulated) Tick() time.Duration {
	if s.running {
		s.pos += s.step
	}
	return s.pos
}

func (s *Simulated) Interval() time.Duration {
	return s.interval
}
