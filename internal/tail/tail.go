// Package tail plays an episode without a UI and reports each transition.
package tail

import (
	"context"
	"time"

	"github.com/tessro/feedcast/internal/core"
	"github.com/tessro/feedcast/internal/player"
)

// Session is the part of player.Session the loop needs.
type Session interface {
	Tracker() *core.Tracker
	Signals() <-chan player.Signal
	Handle(player.Signal)
	Close()
}

// Options configures Run.
type Options struct {
	From time.Duration
	// Loop restarts playback after the end instead of returning.
	Loop bool
}

// Run plays s from opts.From until the episode ends or ctx is cancelled.
// Events reach the caller through the session's event callback.
func Run(ctx context.Context, s Session, opts Options) error {
	defer s.Close()

	tr := s.Tracker()
	if opts.From > 0 {
		tr.SetPosition(opts.From)
	}
	tr.Play()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case sig := <-s.Signals():
			s.Handle(sig)
			if tr.State().IsPlaying {
				continue
			}
			if !opts.Loop {
				return nil
			}
			tr.Play()
		}
	}
}

// Filter reports whether an event is worth a line of output. Progress
// events are only shown when verbose.
func Filter(verbose bool) func(core.Event) bool {
	return func(e core.Event) bool {
		switch e.Type {
		case core.EventProgress:
			return verbose
		case core.EventSeek:
			return verbose
		default:
			return true
		}
	}
}
