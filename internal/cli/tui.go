package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	fcerrors "github.com/tessro/feedcast/internal/errors"
	"github.com/tessro/feedcast/internal/player"
	"github.com/tessro/feedcast/internal/pricing"
	"github.com/tessro/feedcast/internal/tui"
	"github.com/tessro/feedcast/internal/waitlist"
	"github.com/tessro/feedcast/internal/wizard"
)

var (
	tuiNoMouse  bool
	tuiAutoplay bool
)

var tuiCmd = &cobra.Command{
	Use:     "ui",
	Aliases: []string{"play"},
	Short:   "Open the interactive player",
	Long: `Open the full-screen player: the current segment, an animated waveform,
a seek bar you can click or drag, the segment list and the pricing card.
Press ? inside the player for keyboard shortcuts.`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().BoolVar(&tuiNoMouse, "no-mouse", false, "disable mouse input")
	tuiCmd.Flags().BoolVar(&tuiAutoplay, "autoplay", false, "start playing immediately")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !wizard.IsTerminal() {
		return fcerrors.WithSuggestion(
			fmt.Errorf("%w: the player needs an interactive terminal", fcerrors.ErrNotTerminal),
			"Use 'feedcast tail' to play without a UI")
	}

	session, _, err := player.FromConfig(cfg, logger, nil)
	if err != nil {
		return err
	}

	billing, err := pricing.ParseBilling(cfg.Pricing.Billing)
	if err != nil {
		return err
	}

	if tuiAutoplay {
		session.Tracker().Play()
	}

	logger.Info("starting player", zap.Bool("autoplay", tuiAutoplay))

	return tui.Run(tui.Options{
		Session:   session,
		Waitlist:  newWaitlistClient(),
		SkipDelta: player.SkipDelta(cfg.Player),
		Billing:   billing,
		Rows:      cfg.Waveform.Rows,
		Mouse:     cfg.TUI.Mouse && !tuiNoMouse,
		Theme:     cfg.TUI.Theme,
		Logger:    logger,
	})
}

func newWaitlistClient() *waitlist.Client {
	return waitlist.New(
		cfg.Waitlist.Endpoint,
		cfg.Waitlist.Subject,
		time.Duration(cfg.Waitlist.Timeout)*time.Second,
		waitlist.WithLogger(logger),
	)
}
