package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/tessro/feedcast/internal/core"
	"github.com/tessro/feedcast/internal/episode"
)

var infoCmd = &cobra.Command{
	Use:   "info [media-file]",
	Short: "Show episode and media file details",
	Long: `Show the segment total and, when a media file is configured or given,
its tags, size and duration.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

type infoResult struct {
	Segments      int            `json:"segments"`
	SegmentsTotal string         `json:"segments_total"`
	SegmentsFile  string         `json:"segments_file,omitempty"`
	Media         *episode.Media `json:"media,omitempty"`
	Mismatch      bool           `json:"duration_mismatch"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	tl, err := episode.Timeline(cfg.Episode.SegmentsFile)
	if err != nil {
		return err
	}

	path := cfg.Episode.MediaFile
	if len(args) == 1 {
		path = args[0]
	}

	var media *episode.Media
	if path != "" {
		media, err = episode.Probe(path)
		if err != nil {
			return err
		}
	}

	return writeInfo(cmd.OutOrStdout(), tl, cfg.Episode.SegmentsFile, media, JSONOutput())
}

func writeInfo(out io.Writer, tl *core.Timeline, segmentsFile string, media *episode.Media, asJSON bool) error {
	res := infoResult{
		Segments:      tl.Len(),
		SegmentsTotal: core.FormatTime(tl.Total()),
		SegmentsFile:  segmentsFile,
		Media:         media,
		Mismatch:      episode.DurationMismatch(media, tl.Total()),
	}

	if asJSON {
		return writeJSON(out, res)
	}

	source := segmentsFile
	if source == "" {
		source = "built-in sample"
	}
	fmt.Fprintf(out, "Segments:  %d (%s), %s\n", res.Segments, res.SegmentsTotal, source)

	if media == nil {
		fmt.Fprintln(out, "Media:     none")
		return nil
	}

	fmt.Fprintf(out, "Media:     %s\n", media.Path)
	fmt.Fprintf(out, "Title:     %s\n", media.Title)
	if media.Artist != "" {
		fmt.Fprintf(out, "Artist:    %s\n", media.Artist)
	}
	if media.Album != "" {
		fmt.Fprintf(out, "Album:     %s\n", media.Album)
	}
	fmt.Fprintf(out, "Size:      %s\n", humanize.Bytes(uint64(media.Size)))
	if media.HasDuration() {
		fmt.Fprintf(out, "Duration:  %s\n", core.FormatTime(media.Duration))
	} else {
		fmt.Fprintln(out, "Duration:  unknown")
	}
	if res.Mismatch {
		fmt.Fprintln(out, "Warning:   media duration differs from the segment total; segments win")
	}
	return nil
}
