package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/tessro/feedcast/internal/core"
	"github.com/tessro/feedcast/internal/episode"
	"github.com/tessro/feedcast/internal/timesource"
)

var segmentsCmd = &cobra.Command{
	Use:     "segments",
	Aliases: []string{"ls"},
	Short:   "List the episode's segments",
	Long: `List every segment with its start offset and duration. The segments come
from episode.segments_file, or the built-in sample episode when unset.`,
	Args: cobra.NoArgs,
	RunE: runSegments,
}

var atCmd = &cobra.Command{
	Use:   "at <time>",
	Short: "Show which segment is on air at a position",
	Long: `Show the segment covering a position and the overall progress.

The position can be m:ss, seconds, or a duration:
  feedcast at 1:10
  feedcast at 70
  feedcast at 1m10s`,
	Args: cobra.ExactArgs(1),
	RunE: runAt,
}

func init() {
	rootCmd.AddCommand(segmentsCmd)
	rootCmd.AddCommand(atCmd)
}

type segmentRow struct {
	Index       int    `json:"index"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Start       string `json:"start"`
	Duration    string `json:"duration"`
	StartSec    int    `json:"start_seconds"`
	DurationSec int    `json:"duration_seconds"`
}

func runSegments(cmd *cobra.Command, args []string) error {
	tl, err := episode.Timeline(cfg.Episode.SegmentsFile)
	if err != nil {
		return err
	}
	return writeSegments(cmd.OutOrStdout(), tl, JSONOutput())
}

func writeSegments(out io.Writer, tl *core.Timeline, asJSON bool) error {
	rows := make([]segmentRow, tl.Len())
	for i := range rows {
		seg := tl.Segment(i)
		rows[i] = segmentRow{
			Index:       i + 1,
			Title:       seg.Title,
			Description: seg.Description,
			Start:       core.FormatTime(tl.Start(i)),
			Duration:    core.FormatTime(seg.Duration),
			StartSec:    int(tl.Start(i).Seconds()),
			DurationSec: int(seg.Duration.Seconds()),
		}
	}

	if asJSON {
		return writeJSON(out, rows)
	}

	table := NewTableWriter(out, "#", "START", "LENGTH", "TITLE", "DESCRIPTION")
	for _, r := range rows {
		table.Row(strconv.Itoa(r.Index), r.Start, r.Duration, r.Title, TruncateString(r.Description, 50))
	}
	table.Flush()
	fmt.Fprintf(out, "\nTotal: %s across %d segments\n", core.FormatTime(tl.Total()), tl.Len())
	return nil
}

type atResult struct {
	Position string             `json:"position"`
	Percent  float64            `json:"percent"`
	Index    int                `json:"index"`
	Segment  core.Segment       `json:"segment"`
	State    core.PlaybackState `json:"state"`
}

func runAt(cmd *cobra.Command, args []string) error {
	pos, err := core.ParseTime(args[0])
	if err != nil {
		return err
	}

	tl, err := episode.Timeline(cfg.Episode.SegmentsFile)
	if err != nil {
		return err
	}
	return writeAt(cmd.OutOrStdout(), tl, pos, JSONOutput())
}

// writeAt positions a tracker so the answer goes through the same clamp and
// segment lookup as playback.
func writeAt(out io.Writer, tl *core.Timeline, pos time.Duration, asJSON bool) error {
	tracker := core.NewTracker(tl, timesource.NewSimulated(0, 0))
	tracker.SetPosition(pos)

	state := tracker.State()
	res := atResult{
		Position: core.FormatTime(state.CurrentTime),
		Percent:  state.ProgressPercent(),
		Index:    state.SegmentIndex + 1,
		Segment:  tracker.Segment(),
		State:    state,
	}

	if asJSON {
		return writeJSON(out, res)
	}

	fmt.Fprintf(out, "%s / %s  %s %.0f%%\n",
		res.Position, core.FormatTime(state.TotalTime), FormatProgress(res.Percent, 20), res.Percent)
	fmt.Fprintf(out, "Segment %d/%d: %s\n", res.Index, tl.Len(), res.Segment.Title)
	if res.Segment.Description != "" {
		fmt.Fprintf(out, "  %s\n", res.Segment.Description)
	}
	return nil
}
