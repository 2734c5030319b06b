// Package player wires the position tracker to its clocks: a time source
// sampled by a repeating tick task, and the waveform animator. Both tasks
// post signals to a single channel that the owning event loop drains.
package player

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tessro/feedcast/internal/core"
	"github.com/tessro/feedcast/internal/sched"
	"github.com/tessro/feedcast/internal/waveform"
)

// SignalKind identifies what a Signal asks the event loop to do.
type SignalKind int

const (
	SignalTick SignalKind = iota
	SignalFrame
)

// Signal is posted by the background tasks.
type Signal struct {
	Kind SignalKind
}

const signalBuffer = 32

// Options configures a Session.
type Options struct {
	Timeline  *core.Timeline
	Source    core.TimeSource
	Bars      int
	FrameRate int
	Logger    *zap.Logger
	OnEvent   func(core.Event)
}

// Session owns a tracker and the tasks that drive it.
type Session struct {
	tracker  *core.Tracker
	ticker   *sched.Task
	animator *waveform.Animator
	signals  chan Signal
	logger   *zap.Logger
	onEvent  func(core.Event)

	mu    sync.Mutex
	frame waveform.Frame
}

// New creates a paused session at the start of the timeline.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Session{
		signals: make(chan Signal, signalBuffer),
		logger:  logger,
		onEvent: opts.OnEvent,
	}

	s.ticker = sched.NewTask(opts.Source.Interval(), func(ctx context.Context, _ time.Time) {
		select {
		case s.signals <- Signal{Kind: SignalTick}:
		case <-ctx.Done():
		}
	})
	s.animator = waveform.NewAnimator(waveform.NewOscillator(opts.Bars), opts.FrameRate, func(_ context.Context, f waveform.Frame) {
		s.mu.Lock()
		s.frame = f
		s.mu.Unlock()

		// Frames coalesce; the idle frame is drawn from the loop itself,
		// so this must never block.
		select {
		case s.signals <- Signal{Kind: SignalFrame}:
		default:
		}
	})
	s.frame = s.animator.Idle()

	s.tracker = core.NewTracker(opts.Timeline, opts.Source,
		core.WithTicker(s.ticker),
		core.WithAnimator(s.animator),
		core.WithSink(s.handleEvent),
	)

	return s
}

// Tracker returns the session's tracker. Call it only from the loop that
// drains Signals.
func (s *Session) Tracker() *core.Tracker {
	return s.tracker
}

// Signals returns the channel the event loop must drain.
func (s *Session) Signals() <-chan Signal {
	return s.signals
}

// Handle applies one signal to the tracker.
func (s *Session) Handle(sig Signal) {
	if sig.Kind == SignalTick {
		s.tracker.Tick()
	}
}

// Frame returns the most recent waveform frame.
func (s *Session) Frame() waveform.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

// Close pauses playback, stopping both tasks.
func (s *Session) Close() {
	s.tracker.Pause()
}

func (s *Session) handleEvent(e core.Event) {
	switch e.Type {
	case core.EventSegmentChange:
		s.logger.Info("segment changed",
			zap.Int("index", e.State.SegmentIndex),
			zap.String("title", e.Segment.Title),
			zap.Duration("at", e.State.CurrentTime))
	case core.EventPlay, core.EventPause, core.EventEnd:
		s.logger.Debug("playback "+e.Type.String(), zap.Duration("at", e.State.CurrentTime))
	case core.EventSeek:
		s.logger.Debug("seek", zap.Duration("to", e.State.CurrentTime))
	}

	if s.onEvent != nil {
		s.onEvent(e)
	}
}
