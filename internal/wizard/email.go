package wizard

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/tessro/feedcast/internal/waitlist"
)

// validateEmail adapts waitlist.ValidateEmail to a huh validator.
func validateEmail(s string) error {
	_, err := waitlist.ValidateEmail(s)
	return err
}

// RunEmailPrompt shows an email input that validates as you type.
func RunEmailPrompt(title string) (string, error) {
	var email string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description("We'll notify you when FeedCast launches").
				Placeholder("you@example.com").
				Value(&email).
				Validate(validateEmail),
		),
	)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("signup cancelled: %w", err)
	}
	return email, nil
}
