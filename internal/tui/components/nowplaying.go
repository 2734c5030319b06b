package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/feedcast/internal/core"
	"github.com/tessro/feedcast/internal/tui/styles"
	"github.com/tessro/feedcast/internal/waveform"
)

// Panel chrome: one border cell plus one cell of padding on each side.
const (
	chromeX = 2
	chromeY = 1
)

// SeekBar is where the seek bar was last drawn, relative to the panel's
// top-left cell.
type SeekBar struct {
	Row   int
	Left  int
	Width int
}

// Contains reports whether the cell (x, y) is on the bar.
func (b SeekBar) Contains(x, y int) bool {
	return b.Width > 0 && y == b.Row && x >= b.Left && x < b.Left+b.Width
}

// Rect returns the bar's horizontal extent for pointer seeking.
func (b SeekBar) Rect() core.Rect {
	return core.Rect{Left: float64(b.Left), Width: float64(b.Width)}
}

// NowPlaying displays the current segment, the waveform and the seek bar.
type NowPlaying struct {
	rows int
	bar  SeekBar
}

// NewNowPlaying creates a new NowPlaying component drawing a waveform of
// the given height.
func NewNowPlaying(rows int) *NowPlaying {
	if rows < 1 {
		rows = 1
	}
	return &NowPlaying{rows: rows}
}

// SeekBar returns the geometry recorded by the last Render.
func (n *NowPlaying) SeekBar() SeekBar {
	return n.bar
}

// Render renders the now playing panel
func (n *NowPlaying) Render(state core.PlaybackState, seg core.Segment, count int, frame waveform.Frame, width, height int, focused bool) string {
	title := styles.PanelTitle("Now Playing", focused)
	inner := width - 2

	label := fmt.Sprintf("%d/%d  %s", state.SegmentIndex+1, count, seg.Title)
	head := styles.StatusIcon(state.IsPlaying) + " " + styles.Title.Render(truncate(label, inner-4))
	desc := "  " + styles.Subtitle.Render(truncate(seg.Description, inner-2))

	wave := waveform.Render(frame.Heights, n.rows)
	for i, line := range wave {
		wave[i] = styles.Wave.Render(line)
	}

	total := core.FormatTime(state.TotalTime)
	current := fmt.Sprintf("%*s", len(total), core.FormatTime(state.CurrentTime))
	barWidth := inner - 2*len(total) - 2
	if barWidth < 10 {
		barWidth = 10
	}
	progress := fmt.Sprintf("%s %s %s", current, styles.ProgressBar(state.ProgressPercent(), barWidth), total)

	lines := []string{title, "", head, desc, ""}
	lines = append(lines, wave...)
	lines = append(lines, "")

	n.bar = SeekBar{
		Row:   chromeY + len(lines),
		Left:  chromeX + len(current) + 1,
		Width: barWidth,
	}

	lines = append(lines, progress, "", renderControls(state.IsPlaying))

	panel := styles.Panel(focused).
		Width(width).
		Height(height)

	return panel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderControls(playing bool) string {
	var b strings.Builder
	b.WriteString(styles.Dim.Render("⏮  ⏪ "))
	if playing {
		b.WriteString(styles.Playing.Render("⏸"))
	} else {
		b.WriteString(styles.Paused.Render("▶"))
	}
	b.WriteString(styles.Dim.Render(" ⏩  ⏭"))
	return b.String()
}

func truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 {
		return ""
	}
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
