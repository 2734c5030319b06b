// Package waveform draws the decorative bar animation shown while an
// episode plays. It is a cosmetic oscillator with no relation to the audio.
package waveform

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/tessro/feedcast/internal/sched"
)

const (
	DefaultBars      = 12
	DefaultFrameRate = 30

	// idleHeight is the flat bar height while paused.
	idleHeight = 0.25
)

// Oscillator computes bar heights as fractions of full height.
type Oscillator struct {
	Bars  int
	Speed float64 // radians per millisecond
	Phase float64 // radians between neighbouring bars
}

// NewOscillator returns an oscillator with the landing page's constants.
func NewOscillator(bars int) Oscillator {
	if bars <= 0 {
		bars = DefaultBars
	}
	return Oscillator{Bars: bars, Speed: 0.006, Phase: 0.5}
}

// Heights returns one value in (0, 1] per bar.
func (o Oscillator) Heights(now time.Time, playing bool) []float64 {
	heights := make([]float64, o.Bars)
	ms := float64(now.UnixMilli())
	for i := range heights {
		if !playing {
			heights[i] = idleHeight
			continue
		}
		heights[i] = math.Sin(ms*o.Speed+float64(i)*o.Phase)*0.4 + 0.6
	}
	return heights
}

// Frame is one rendered animation step.
type Frame struct {
	Heights []float64
	Playing bool
}

// Animator redraws frames at a fixed rate between Start and Stop.
type Animator struct {
	osc  Oscillator
	task *sched.Task
	draw func(ctx context.Context, f Frame)
}

// NewAnimator creates a stopped animator that hands each frame to draw.
func NewAnimator(osc Oscillator, frameRate int, draw func(ctx context.Context, f Frame)) *Animator {
	if frameRate <= 0 {
		frameRate = DefaultFrameRate
	}
	a := &Animator{osc: osc, draw: draw}
	a.task = sched.NewTask(time.Second/time.Duration(frameRate), func(ctx context.Context, now time.Time) {
		a.draw(ctx, Frame{Heights: a.osc.Heights(now, true), Playing: true})
	})
	return a
}

func (a *Animator) Start() {
	a.task.Start()
}

// Stop cancels the frame loop, waits for an in-flight frame and then draws
// one flat frame. draw must return once its context is cancelled.
func (a *Animator) Stop() {
	a.task.Stop()
	a.task.Wait()
	a.draw(context.Background(), a.Idle())
}

// Idle returns the flat frame shown while paused.
func (a *Animator) Idle() Frame {
	return Frame{Heights: a.osc.Heights(time.Time{}, false)}
}

var glyphs = []rune(" ▁▂▃▄▅▆▇█")

// Render draws heights as block bars rising from the bottom, rows lines
// tall, with a one-column gap between bars.
func Render(heights []float64, rows int) []string {
	if rows <= 0 {
		rows = 1
	}
	levels := len(glyphs) - 1
	out := make([]string, rows)

	for r := 0; r < rows; r++ {
		// Eighths covered below this row.
		lo := (rows - 1 - r) * levels
		var b strings.Builder
		for i, h := range heights {
			if i > 0 {
				b.WriteRune(' ')
			}
			filled := int(math.Round(clamp(h, 0, 1) * float64(rows*levels)))
			b.WriteRune(glyphs[clampInt(filled-lo, 0, levels)])
		}
		out[r] = b.String()
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
