package waveform

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"
)

func TestHeightsPaused(t *testing.T) {
	osc := NewOscillator(0)
	heights := osc.Heights(time.Now(), false)

	if len(heights) != DefaultBars {
		t.Fatalf("len(heights) = %d, want %d", len(heights), DefaultBars)
	}
	for i, h := range heights {
		if h != 0.25 {
			t.Errorf("heights[%d] = %v, want 0.25", i, h)
		}
	}
}

func TestHeightsPlaying(t *testing.T) {
	osc := NewOscillator(4)
	now := time.UnixMilli(1000)
	heights := osc.Heights(now, true)

	for i, h := range heights {
		want := math.Sin(1000*0.006+float64(i)*0.5)*0.4 + 0.6
		if math.Abs(h-want) > 1e-12 {
			t.Errorf("heights[%d] = %v, want %v", i, h, want)
		}
		if h < 0.2 || h > 1.0 {
			t.Errorf("heights[%d] = %v out of [0.2, 1.0]", i, h)
		}
	}
}

func TestHeightsAnimate(t *testing.T) {
	osc := NewOscillator(1)
	a := osc.Heights(time.UnixMilli(0), true)[0]
	b := osc.Heights(time.UnixMilli(200), true)[0]
	if a == b {
		t.Errorf("heights did not change over time: %v", a)
	}
}

func TestRender(t *testing.T) {
	lines := Render([]float64{1, 0.5, 0}, 2)
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	if lines[0] != "█    " {
		t.Errorf("top row = %q, want %q", lines[0], "█    ")
	}
	if lines[1] != "█ █  " {
		t.Errorf("bottom row = %q, want %q", lines[1], "█ █  ")
	}
}

func TestRenderFlat(t *testing.T) {
	lines := Render(NewOscillator(3).Heights(time.Time{}, false), 1)
	if lines[0] != "▂ ▂ ▂" {
		t.Errorf("flat row = %q", lines[0])
	}
}

func TestAnimatorStopDrawsIdleFrame(t *testing.T) {
	var mu sync.Mutex
	var frames []Frame

	a := NewAnimator(NewOscillator(3), 200, func(ctx context.Context, f Frame) {
		mu.Lock()
		frames = append(frames, f)
		mu.Unlock()
	})

	a.Start()
	deadline := time.Now().Add(2 * time.Second)
	for {
		mu.Lock()
		n := len(frames)
		mu.Unlock()
		if n > 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("animator produced no frames")
		}
		time.Sleep(time.Millisecond)
	}
	a.Stop()

	mu.Lock()
	defer mu.Unlock()
	last := frames[len(frames)-1]
	if last.Playing {
		t.Error("last frame after Stop is marked playing")
	}
	for _, h := range last.Heights {
		if h != 0.25 {
			t.Errorf("idle height = %v, want 0.25", h)
		}
	}
	if !frames[0].Playing {
		t.Error("first frame is not marked playing")
	}
}
