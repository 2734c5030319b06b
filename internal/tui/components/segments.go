package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/feedcast/internal/core"
	"github.com/tessro/feedcast/internal/tui/styles"
)

// Segments lists the episode's segments with the current one marked.
type Segments struct {
	offset   int
	selected int
}

// NewSegments creates a new Segments component
func NewSegments() *Segments {
	return &Segments{}
}

// SelectNext moves the cursor down, stopping at the last of n segments.
func (s *Segments) SelectNext(n int) {
	if s.selected < n-1 {
		s.selected++
	}
}

// SelectPrev moves the cursor up.
func (s *Segments) SelectPrev() {
	if s.selected > 0 {
		s.selected--
	}
}

// Selected returns the selected index
func (s *Segments) Selected() int {
	return s.selected
}

// Render renders the segments panel
func (s *Segments) Render(tl *core.Timeline, current, width, height int, focused bool) string {
	title := styles.PanelTitle("Segments", focused)

	content := s.renderList(tl, current, width-2, height-3, focused)

	panel := styles.Panel(focused).
		Width(width).
		Height(height)

	return panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		content,
	))
}

func (s *Segments) renderList(tl *core.Timeline, current, width, maxLines int, focused bool) string {
	n := tl.Len()
	visible := maxLines
	if visible < 1 {
		visible = 1
	}

	// Keep the cursor in view
	if s.selected < s.offset {
		s.offset = s.selected
	}
	if s.selected >= s.offset+visible {
		s.offset = s.selected - visible + 1
	}

	end := s.offset + visible
	if end > n {
		end = n
	}

	// Fixed overhead: "X " + "N. " + " 0:00" + padding
	const overhead = 12

	lines := make([]string, 0, end-s.offset)
	for i := s.offset; i < end; i++ {
		seg := tl.Segment(i)
		num := fmt.Sprintf("%d.", i+1)
		start := core.FormatTime(tl.Start(i))
		name := truncate(seg.Title, width-overhead)

		var line string
		switch {
		case i == current:
			line = styles.Playing.Render(fmt.Sprintf("▶ %s %s", num, name)) + " " + styles.Dim.Render(start)
		default:
			line = fmt.Sprintf("  %s %s %s", styles.Dim.Render(num), name, styles.Dim.Render(start))
		}
		if focused && i == s.selected {
			line = lipgloss.NewStyle().Reverse(true).Render(line)
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
