package core

import "time"

// Tracker keeps the playback position, the derived segment and every
// listener consistent after each position-changing event.
//
// A Tracker is driven from a single goroutine (a UI event loop or the
// headless tail loop); it is not safe for concurrent use.
type Tracker struct {
	timeline *Timeline
	source   TimeSource
	ticker   Runner
	animator Runner
	sink     func(Event)
	now      func() time.Time

	state PlaybackState
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithTicker sets the runner that schedules Tick calls while playing.
func WithTicker(r Runner) TrackerOption {
	return func(t *Tracker) {
		t.ticker = r
	}
}

// WithAnimator sets the waveform animation runner.
func WithAnimator(r Runner) TrackerOption {
	return func(t *Tracker) {
		t.animator = r
	}
}

// WithSink sets the function that receives tracker events.
func WithSink(fn func(Event)) TrackerOption {
	return func(t *Tracker) {
		t.sink = fn
	}
}

// WithClock overrides the wall clock used to timestamp events.
func WithClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) {
		t.now = now
	}
}

type nopRunner struct{}

func (nopRunner) Start() {}
func (nopRunner) Stop()  {}

// NewTracker creates a tracker positioned at the start of the timeline.
func NewTracker(timeline *Timeline, source TimeSource, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		timeline: timeline,
		source:   source,
		ticker:   nopRunner{},
		animator: nopRunner{},
		now:      time.Now,
		state: PlaybackState{
			TotalTime: timeline.Total(),
		},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// State returns a snapshot of the playback state.
func (t *Tracker) State() PlaybackState {
	return t.state
}

// Segment returns the segment under the current position.
func (t *Tracker) Segment() Segment {
	return t.timeline.Segment(t.state.SegmentIndex)
}

// Timeline returns the timeline the tracker walks.
func (t *Tracker) Timeline() *Timeline {
	return t.timeline
}

// SetPosition moves playback to pos, clamped to [0, Total]. Landing on the
// end while playing stops playback and leaves the position at the end.
func (t *Tracker) SetPosition(pos time.Duration) {
	t.setPosition(pos)
	t.source.Seek(t.state.CurrentTime)
	t.emit(EventSeek)

	if t.state.IsPlaying && t.state.AtEnd() {
		t.halt()
		t.emit(EventPause)
	}
}

// SeekToPointer converts a pointer coordinate over the seek-bar into a
// position. A zero-width bar is ignored.
func (t *Tracker) SeekToPointer(x float64, bar Rect) {
	if bar.Width <= 0 {
		return
	}
	frac := (x - bar.Left) / bar.Width
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	t.SetPosition(time.Duration(frac * float64(t.state.TotalTime)))
}

// Skip moves the position by delta; the clamp handles both ends.
func (t *Tracker) Skip(delta time.Duration) {
	t.SetPosition(t.state.CurrentTime + delta)
}

// SkipSegment jumps to the start of the adjacent segment in direction dir
// (+1 or -1). Skipping past the last segment lands on the end.
func (t *Tracker) SkipSegment(dir int) {
	idx := t.state.SegmentIndex + dir
	switch {
	case idx < 0:
		t.SetPosition(0)
	case idx >= t.timeline.Len():
		t.SetPosition(t.state.TotalTime)
	default:
		t.SetPosition(t.timeline.Start(idx))
	}
}

// TogglePlayback flips between playing and paused.
func (t *Tracker) TogglePlayback() {
	if t.state.IsPlaying {
		t.Pause()
	} else {
		t.Play()
	}
}

// Play starts the time source, the tick runner and the animator. Playing
// from the end restarts from the beginning.
func (t *Tracker) Play() {
	if t.state.IsPlaying {
		return
	}
	if t.state.AtEnd() {
		t.setPosition(0)
	}

	t.state.IsPlaying = true
	t.source.Start(t.state.CurrentTime)
	t.ticker.Start()
	t.animator.Start()
	t.emit(EventPlay)
}

// Pause stops the time source, the tick runner and the animator.
func (t *Tracker) Pause() {
	if !t.state.IsPlaying {
		return
	}
	t.halt()
	t.emit(EventPause)
}

// Tick pulls the next position from the time source. Ticks that arrive
// while paused are dropped. Reaching the end stops playback and rewinds to
// the start.
func (t *Tracker) Tick() {
	if !t.state.IsPlaying {
		return
	}

	pos := t.source.Tick()
	if pos < t.state.TotalTime {
		t.setPosition(pos)
		return
	}

	t.halt()
	t.source.Seek(0)
	t.setPosition(0)
	t.emit(EventEnd)
}

func (t *Tracker) halt() {
	t.state.IsPlaying = false
	t.source.Stop()
	t.ticker.Stop()
	t.animator.Stop()
}

func (t *Tracker) setPosition(pos time.Duration) {
	if pos < 0 {
		pos = 0
	}
	if pos > t.state.TotalTime {
		pos = t.state.TotalTime
	}
	t.state.CurrentTime = pos

	idx := t.timeline.IndexAt(pos)
	if idx != t.state.SegmentIndex {
		t.state.SegmentIndex = idx
		t.emit(EventSegmentChange)
	}
	t.emit(EventProgress)
}

func (t *Tracker) emit(typ EventType) {
	if t.sink == nil {
		return
	}
	t.sink(Event{
		Type:      typ,
		Timestamp: t.now(),
		State:     t.state,
		Segment:   t.timeline.Segment(t.state.SegmentIndex),
	})
}
