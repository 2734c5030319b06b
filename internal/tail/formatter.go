package tail

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/tessro/feedcast/internal/core"
)

// Formatter formats events for output.
type Formatter struct {
	showEmoji     bool
	showTimestamp bool
	template      *template.Template
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithEmoji enables emoji output.
func WithEmoji(enabled bool) FormatterOption {
	return func(f *Formatter) {
		f.showEmoji = enabled
	}
}

// WithTimestamp enables timestamp output.
func WithTimestamp(enabled bool) FormatterOption {
	return func(f *Formatter) {
		f.showTimestamp = enabled
	}
}

// WithTemplate sets a custom format template.
func WithTemplate(tmpl string) FormatterOption {
	return func(f *Formatter) {
		if tmpl != "" {
			t, err := template.New("format").Parse(tmpl)
			if err == nil {
				f.template = t
			}
		}
	}
}

// NewFormatter creates a new formatter with the given options.
func NewFormatter(opts ...FormatterOption) *Formatter {
	f := &Formatter{
		showEmoji:     true,
		showTimestamp: false,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format formats an event as a string.
func (f *Formatter) Format(e core.Event) string {
	if f.template != nil {
		return f.formatTemplate(e)
	}
	return f.formatLine(e)
}

func (f *Formatter) formatLine(e core.Event) string {
	var parts []string

	if f.showTimestamp {
		parts = append(parts, e.Timestamp.Format("15:04:05"))
	}

	parts = append(parts, "["+core.FormatTime(e.State.CurrentTime)+"]")

	if f.showEmoji {
		parts = append(parts, eventEmoji(e.Type))
	}

	parts = append(parts, eventDescription(e))

	return strings.Join(parts, " ")
}

func (f *Formatter) formatTemplate(e core.Event) string {
	data := templateData{
		Type:        e.Type.String(),
		Emoji:       eventEmoji(e.Type),
		Timestamp:   e.Timestamp,
		Time:        e.Timestamp.Format("15:04:05"),
		Position:    core.FormatTime(e.State.CurrentTime),
		Total:       core.FormatTime(e.State.TotalTime),
		Percent:     e.State.ProgressPercent(),
		Index:       e.State.SegmentIndex,
		Title:       e.Segment.Title,
		Description: e.Segment.Description,
		Playing:     e.State.IsPlaying,
	}

	var buf bytes.Buffer
	if err := f.template.Execute(&buf, data); err != nil {
		return f.formatLine(e)
	}
	return buf.String()
}

type templateData struct {
	Type        string
	Emoji       string
	Timestamp   time.Time
	Time        string
	Position    string
	Total       string
	Percent     float64
	Index       int
	Title       string
	Description string
	Playing     bool
}

func eventDescription(e core.Event) string {
	switch e.Type {
	case core.EventSegmentChange:
		if e.Segment.Description != "" {
			return fmt.Sprintf("Segment %d: %s - %s", e.State.SegmentIndex+1, e.Segment.Title, e.Segment.Description)
		}
		return fmt.Sprintf("Segment %d: %s", e.State.SegmentIndex+1, e.Segment.Title)
	case core.EventPlay:
		return "Playing"
	case core.EventPause:
		return "Paused"
	case core.EventSeek:
		return "Seek to " + core.FormatTime(e.State.CurrentTime)
	case core.EventEnd:
		return "Finished"
	case core.EventProgress:
		return fmt.Sprintf("%s / %s (%.0f%%)",
			core.FormatTime(e.State.CurrentTime),
			core.FormatTime(e.State.TotalTime),
			e.State.ProgressPercent())
	default:
		return "Unknown event"
	}
}

func eventEmoji(t core.EventType) string {
	switch t {
	case core.EventSegmentChange:
		return "🎵"
	case core.EventPlay:
		return "▶️"
	case core.EventPause:
		return "⏸️"
	case core.EventSeek:
		return "⏩"
	case core.EventEnd:
		return "✅"
	case core.EventProgress:
		return "⏱️"
	default:
		return "❓"
	}
}
