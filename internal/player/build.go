package player

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tessro/feedcast/internal/config"
	"github.com/tessro/feedcast/internal/core"
	"github.com/tessro/feedcast/internal/episode"
	"github.com/tessro/feedcast/internal/timesource"
)

// FromConfig loads the timeline, probes the media file when the media
// clock is selected, and builds a session. onEvent may be nil.
func FromConfig(cfg *config.Config, logger *zap.Logger, onEvent func(core.Event)) (*Session, *episode.Media, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	tl, err := episode.Timeline(cfg.Episode.SegmentsFile)
	if err != nil {
		return nil, nil, err
	}

	var media *episode.Media
	if cfg.Episode.MediaFile != "" {
		media, err = episode.Probe(cfg.Episode.MediaFile)
		if err != nil {
			if cfg.Player.Source == config.SourceMedia {
				return nil, nil, err
			}
			logger.Warn("ignoring unreadable media file", zap.Error(err))
			media = nil
		}
	} else if cfg.Player.Source == config.SourceMedia {
		return nil, nil, fmt.Errorf("%w: player.source is media but episode.media_file is empty", episode.ErrMediaNotFound)
	}

	if episode.DurationMismatch(media, tl.Total()) {
		logger.Warn("media duration differs from segment total",
			zap.Duration("media", media.Duration),
			zap.Duration("segments", tl.Total()))
	}

	source := NewSource(cfg.Player)
	logger.Debug("session ready",
		zap.String("source", cfg.Player.Source),
		zap.Int("segments", tl.Len()),
		zap.Duration("total", tl.Total()))

	s := New(Options{
		Timeline:  tl,
		Source:    source,
		Bars:      cfg.Waveform.Bars,
		FrameRate: cfg.Waveform.FrameRate,
		Logger:    logger,
		OnEvent:   onEvent,
	})
	return s, media, nil
}

// NewSource builds the time source named by the player config.
func NewSource(cfg config.PlayerConfig) core.TimeSource {
	interval := time.Duration(cfg.TickInterval) * time.Millisecond
	if cfg.Source == config.SourceMedia {
		return timesource.NewMedia(timesource.WithInterval(interval))
	}
	// The simulation advances by exactly its tick period so it keeps pace
	// with wall time.
	return timesource.NewSimulated(interval, interval)
}

// SkipDelta returns the configured transport skip.
func SkipDelta(cfg config.PlayerConfig) time.Duration {
	return time.Duration(cfg.SkipSeconds) * time.Second
}
