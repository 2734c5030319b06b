package episode

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"github.com/tcolgate/mp3"
)

var ErrMediaNotFound = errors.New("media file not found")

// Media describes an episode audio file.
type Media struct {
	Path     string        `json:"path"`
	Title    string        `json:"title"`
	Artist   string        `json:"artist,omitempty"`
	Album    string        `json:"album,omitempty"`
	Duration time.Duration `json:"duration"`
	Size     int64         `json:"size"`
}

// HasDuration reports whether the duration could be measured.
func (m *Media) HasDuration() bool {
	return m != nil && m.Duration > 0
}

// MismatchTolerance is how far a measured duration may drift from the
// segment total before it is reported.
const MismatchTolerance = time.Second

// DurationMismatch reports whether m has a measured duration more than
// MismatchTolerance away from total.
func DurationMismatch(m *Media, total time.Duration) bool {
	if !m.HasDuration() {
		return false
	}
	diff := m.Duration - total
	if diff < 0 {
		diff = -diff
	}
	return diff > MismatchTolerance
}

// Probe reads tags and, for MP3 files, measures the duration by walking
// frame headers. Unreadable tags fall back to the file stem as the title.
func Probe(path string) (*Media, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMediaNotFound, path)
		}
		return nil, err
	}

	m := &Media{
		Path: path,
		Size: info.Size(),
	}
	m.Title, m.Artist, m.Album = readTags(path)
	if m.Title == "" {
		m.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if strings.EqualFold(filepath.Ext(path), ".mp3") {
		if d, err := mp3Duration(path); err == nil {
			m.Duration = d
		}
	}

	return m, nil
}

func readTags(path string) (title, artist, album string) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", ""
	}
	defer f.Close()

	meta, err := tag.ReadFrom(f)
	if err != nil {
		return "", "", ""
	}
	return strings.TrimSpace(meta.Title()), strings.TrimSpace(meta.Artist()), strings.TrimSpace(meta.Album())
}

func mp3Duration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	decoder := mp3.NewDecoder(f)
	var frame mp3.Frame
	var skipped int
	var total time.Duration

	for {
		if err := decoder.Decode(&frame, &skipped); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, err
		}
		total += frame.Duration()
	}

	return total, nil
}
