package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	fcerrors "github.com/tessro/feedcast/internal/errors"
	"github.com/tessro/feedcast/internal/tui"
	"github.com/tessro/feedcast/internal/waitlist"
	"github.com/tessro/feedcast/internal/wizard"
)

var joinNoPrompt bool

var joinCmd = &cobra.Command{
	Use:   "join [email]",
	Short: "Join the FeedCast launch waitlist",
	Long: `Sign up for launch news. Without an argument in a terminal, you are
prompted for the address.

Examples:
  feedcast join ada@example.com
  feedcast join`,
	Args: cobra.MaximumNArgs(1),
	RunE: runJoin,
}

func init() {
	joinCmd.Flags().BoolVar(&joinNoPrompt, "no-prompt", false, "never prompt for the address")
	rootCmd.AddCommand(joinCmd)
}

func runJoin(cmd *cobra.Command, args []string) error {
	var email string
	if wizard.NeedsEmail(args) {
		interactive := wizard.NewInteractive()
		interactive.SetEnabled(!joinNoPrompt && !JSONOutput())

		if !interactive.CanInteract() {
			return fcerrors.WithSuggestion(
				fmt.Errorf("%w: no email given", fcerrors.ErrNotTerminal),
				"Pass the address as an argument: feedcast join you@example.com")
		}

		var err error
		email, err = interactive.PromptEmail()
		if err != nil {
			return err
		}
	} else {
		email = args[0]
	}

	return join(cmd.Context(), cmd.OutOrStdout(), newWaitlistClient(), email, JSONOutput())
}

func join(ctx context.Context, out io.Writer, client tui.Joiner, email string, asJSON bool) error {
	res, err := client.Join(ctx, email)
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(out, res)
	}

	fmt.Fprintln(out, res.Message)
	fmt.Fprintln(out, res.Note)
	if Verbose() && !res.Delivered {
		fmt.Fprintln(out, "(the signup could not be delivered; see the log for details)")
	}
	return nil
}

var _ tui.Joiner = (*waitlist.Client)(nil)
