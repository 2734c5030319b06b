package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tessro/feedcast/internal/core"
	"github.com/tessro/feedcast/internal/player"
	"github.com/tessro/feedcast/internal/tail"
)

var (
	tailNoEmoji   bool
	tailTimestamp bool
	tailFormat    string
	tailFrom      string
	tailLoop      bool
)

var tailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Play the episode headless and print each transition",
	Long: `Play the episode without a UI and print a line for each transition.

Events printed:
  - Segment changes (a new segment is on air)
  - Play and pause
  - End of the episode

With --verbose, progress and seek events are printed too.

Template fields for --format:
  .Type .Emoji .Time .Position .Total .Percent .Index .Title .Description .Playing`,
	RunE: runTail,
}

func init() {
	tailCmd.Flags().BoolVar(&tailNoEmoji, "no-emoji", false, "disable emoji output")
	tailCmd.Flags().BoolVarP(&tailTimestamp, "timestamp", "t", false, "show timestamps")
	tailCmd.Flags().StringVarP(&tailFormat, "format", "f", "", "custom format template")
	tailCmd.Flags().StringVar(&tailFrom, "from", "", "start position (m:ss)")
	tailCmd.Flags().BoolVar(&tailLoop, "loop", false, "restart after the episode ends")

	rootCmd.AddCommand(tailCmd)
}

func runTail(cmd *cobra.Command, args []string) error {
	opts := tail.Options{Loop: tailLoop}
	if tailFrom != "" {
		from, err := core.ParseTime(tailFrom)
		if err != nil {
			return err
		}
		opts.From = from
	}

	formatter := tail.NewFormatter(
		tail.WithEmoji(!tailNoEmoji),
		tail.WithTimestamp(tailTimestamp),
		tail.WithTemplate(tailFormat),
	)
	show := tail.Filter(Verbose())
	out := cmd.OutOrStdout()

	session, _, err := player.FromConfig(cfg, logger, func(e core.Event) {
		if !show(e) {
			return
		}
		if JSONOutput() {
			_ = writeJSON(out, e)
			return
		}
		fmt.Fprintln(out, formatter.Format(e))
	})
	if err != nil {
		return err
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = tail.Run(ctx, session, opts)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
