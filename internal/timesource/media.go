package timesource

import "time"

// Media is a media clock: the position is the offset at the last start or
// seek plus the wall time elapsed since. Ticks only sample it.
type Media struct {
	interval  time.Duration
	now       func() time.Time
	base      time.Duration
	startedAt time.Time
	running   bool
}

// MediaOption configures a Media clock.
type MediaOption func(*Media)

// WithNow overrides the wall clock.
func WithNow(now func() time.Time) MediaOption {
	return func(m *Media) {
		m.now = now
	}
}

// WithInterval overrides the sampling interval.
func WithInterval(d time.Duration) MediaOption {
	return func(m *Media) {
		if d > 0 {
			m.interval = d
		}
	}
}

// NewMedia creates a stopped media clock at position zero.
func NewMedia(opts ...MediaOption) *Media {
	m := &Media{
		interval: DefaultMediaInterval,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Media) Start(from time.Duration) {
	m.base = from
	m.startedAt = m.now()
	m.running = true
}

func (m *Media) Stop() {
	m.base = m.position()
	m.running = false
}

func (m *Media) Seek(to time.Duration) {
	m.base = to
	m.startedAt = m.now()
}

func (m *Media) Tick() time.Duration {
	return m.position()
}

func (m *Media) Interval() time.Duration {
	return m.interval
}

func (m *Media) position() time.Duration {
	if !m.running {
		return m.base
	}
	return m.base + m.now().Sub(m.startedAt)
}
