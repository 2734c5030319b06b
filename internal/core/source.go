package core

import "time"

//go:generate mockgen -destination=mocks/core_mock.go -package=mocks github.com/tessro/feedcast/internal/core TimeSource,Runner

// TimeSource produces playback positions while running. Implementations
// cover a real media clock and a timer-based simulation.
type TimeSource interface {
	// Start resumes the clock from the given position.
	Start(from time.Duration)

	// Stop freezes the clock at its current position.
	Stop()

	// Seek moves the clock without changing whether it runs.
	Seek(to time.Duration)

	// Tick advances or samples the clock and returns the position.
	Tick() time.Duration

	// Interval is how often Tick should be called while running.
	Interval() time.Duration
}

// Runner is a repeating background activity with a single start/stop control.
type Runner interface {
	Start()
	Stop()
}

// Rect is the bounding box of the seek-bar along the horizontal axis.
type Rect struct {
	Left  float64
	Width float64
}
