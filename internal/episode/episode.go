// Package episode loads segment timelines and media metadata.
package episode

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/tessro/feedcast/internal/core"
)

// SampleDuration is the length of the bundled sample episode.
const SampleDuration = 154 * time.Second

// Sample returns the segments of the bundled FeedCast sample episode.
func Sample() []core.Segment {
	return []core.Segment{
		{Title: "AI & Tech News Opening", Description: "Dan & Jess kick off today's top stories", Duration: 35 * time.Second},
		{Title: "Deep Dive: Top Story", Description: "In-depth discussion on the biggest tech news", Duration: 40 * time.Second},
		{Title: "Quick Break", Description: `"We'll be right back!" — Dan`, Duration: 20 * time.Second},
		{Title: "And We're Back", Description: "Jess brings more stories to the table", Duration: 25 * time.Second},
		{Title: "Lo-fi Interlude", Description: "AI-generated background music", Duration: 20 * time.Second},
		{Title: "Closing Thoughts", Description: "Dan & Jess wrap up the day", Duration: 14 * time.Second},
	}
}

// segmentFile is the on-disk layout of a segments file:
//
//	[[segments]]
//	title = "Intro"
//	description = "Hello"
//	duration = 35      # seconds
type segmentFile struct {
	Segments []struct {
		Title       string  `toml:"title"`
		Description string  `toml:"description"`
		Duration    float64 `toml:"duration"`
	} `toml:"segments"`
}

// LoadSegments reads a TOML segments file.
func LoadSegments(path string) ([]core.Segment, error) {
	var f segmentFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("segments file %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to parse segments file %s: %w", path, err)
	}

	segments := make([]core.Segment, len(f.Segments))
	for i, s := range f.Segments {
		segments[i] = core.Segment{
			Title:       s.Title,
			Description: s.Description,
			Duration:    time.Duration(s.Duration * float64(time.Second)),
		}
	}
	return segments, nil
}

// Timeline builds the timeline from path, or from the sample when path is
// empty.
func Timeline(path string) (*core.Timeline, error) {
	segments := Sample()
	if path != "" {
		var err error
		segments, err = LoadSegments(path)
		if err != nil {
			return nil, err
		}
	}

	tl, err := core.NewTimeline(segments)
	if err != nil {
		return nil, fmt.Errorf("invalid timeline: %w", err)
	}
	return tl, nil
}
