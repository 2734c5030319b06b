package wizard

import (
	"os"

	"golang.org/x/term"
)

// Interactive provides interactive fallback functionality.
type Interactive struct {
	enabled bool
	isTTY   func() bool
	prompt  func(title string) (string, error)
}

// NewInteractive creates a new interactive handler.
func NewInteractive() *Interactive {
	return &Interactive{
		enabled: true,
		isTTY:   IsTerminal,
		prompt:  RunEmailPrompt,
	}
}

// SetEnabled enables or disables interactive mode.
func (i *Interactive) SetEnabled(enabled bool) {
	i.enabled = enabled
}

// IsTerminal returns true if both stdin and stdout are terminals.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// CanInteract returns true if interactive mode is available.
func (i *Interactive) CanInteract() bool {
	return i.enabled && i.isTTY()
}

// PromptEmail asks for a waitlist address if interactive mode is available.
// Returns "" if not interactive.
func (i *Interactive) PromptEmail() (string, error) {
	if !i.CanInteract() {
		return "", nil
	}
	return i.prompt("Join the FeedCast waitlist")
}

// NeedsEmail returns true if an email argument is required but missing.
func NeedsEmail(args []string) bool {
	return len(args) == 0
}
