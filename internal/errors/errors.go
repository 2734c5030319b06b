package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tessro/feedcast/internal/core"
	"github.com/tessro/feedcast/internal/episode"
	"github.com/tessro/feedcast/internal/waitlist"
)

// Error types for common failure scenarios. Domain packages own their
// sentinels; these are re-exported so callers need a single import.
var (
	ErrInvalidEmail   = waitlist.ErrInvalidEmail
	ErrSubmitFailed   = waitlist.ErrSubmitFailed
	ErrNoSegments     = core.ErrNoSegments
	ErrInvalidSegment = core.ErrInvalidSegment
	ErrMediaNotFound  = episode.ErrMediaNotFound
	ErrConfigNotFound = errors.New("config file not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrNotTerminal    = errors.New("not a terminal")
)

// FeedcastError wraps an error with a user-friendly suggestion.
type FeedcastError struct {
	Err        error
	Suggestion string
}

func (e *FeedcastError) Error() string {
	return e.Err.Error()
}

func (e *FeedcastError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &FeedcastError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	var fcErr *FeedcastError
	if errors.As(err, &fcErr) && fcErr.Suggestion != "" {
		return fcErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	// Waitlist
	if errors.Is(err, ErrInvalidEmail) {
		return "Use an address like name@example.com"
	}
	if errors.Is(err, ErrSubmitFailed) || strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "timeout") {
		return "Check your internet connection and try again"
	}

	// Episode
	if errors.Is(err, ErrNoSegments) || errors.Is(err, ErrInvalidSegment) {
		return "Check episode.segments_file: every [[segments]] entry needs a positive duration"
	}
	if errors.Is(err, ErrMediaNotFound) {
		return "Set episode.media_file to an existing audio file, or use player.source = \"simulated\""
	}

	// Terminal
	if errors.Is(err, ErrNotTerminal) {
		return "Pass the value as an argument when not running in a terminal"
	}

	// Config
	if errors.Is(err, ErrConfigNotFound) {
		return "Run 'feedcast config init' to create one"
	}
	if errors.Is(err, ErrInvalidConfig) || strings.Contains(errStr, "config") {
		return "Run 'feedcast config show' to inspect the loaded values"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}
