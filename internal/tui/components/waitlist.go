package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/feedcast/internal/tui/styles"
	"github.com/tessro/feedcast/internal/waitlist"
)

// SignupState is the waitlist form's phase.
type SignupState int

const (
	SignupEditing SignupState = iota
	SignupPending
	SignupDone
)

// Signup is the waitlist overlay form.
type Signup struct {
	Input  textinput.Model
	State  SignupState
	Result *waitlist.Result
	Err    error
}

// NewSignup creates an empty signup form.
func NewSignup() *Signup {
	ti := textinput.New()
	ti.Placeholder = "you@example.com"
	ti.CharLimit = 254
	ti.Width = 40
	return &Signup{Input: ti}
}

// Open resets the form and focuses the input.
func (s *Signup) Open() tea.Cmd {
	s.Input.SetValue("")
	s.State = SignupEditing
	s.Result = nil
	s.Err = nil
	return s.Input.Focus()
}

// Close blurs the input.
func (s *Signup) Close() {
	s.Input.Blur()
}

// Update forwards a message to the text input while editing.
func (s *Signup) Update(msg tea.Msg) tea.Cmd {
	if s.State != SignupEditing {
		return nil
	}
	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)
	return cmd
}

// Begin validates the typed address. It returns the normalised address and
// switches to pending, or records the validation error and stays editing.
func (s *Signup) Begin() (string, bool) {
	email, err := waitlist.ValidateEmail(s.Input.Value())
	if err != nil {
		s.Err = err
		return "", false
	}
	s.Err = nil
	s.State = SignupPending
	return email, true
}

// Finish records the outcome of a submission.
func (s *Signup) Finish(res *waitlist.Result, err error) {
	s.Result = res
	s.Err = err
	if err != nil {
		s.State = SignupEditing
		return
	}
	s.State = SignupDone
	s.Input.SetValue("")
}

// Reset returns a finished form to editing.
func (s *Signup) Reset() {
	if s.State == SignupDone {
		s.State = SignupEditing
		s.Result = nil
	}
}

// Render renders the overlay box.
func (s *Signup) Render() string {
	var b strings.Builder

	b.WriteString(styles.Highlight.Render("Join the FeedCast waitlist"))
	b.WriteString("\n\n")
	b.WriteString(s.Input.View())
	b.WriteString("\n\n")

	switch s.State {
	case SignupPending:
		b.WriteString(styles.Muted.Render("Joining..."))
	case SignupDone:
		if s.Result != nil {
			b.WriteString(styles.Playing.Render(s.Result.Message))
			b.WriteString("\n")
			b.WriteString(styles.Subtitle.Render(s.Result.Note))
		}
	default:
		if s.Err != nil {
			b.WriteString(styles.ErrorText.Render(s.Err.Error()))
		} else {
			b.WriteString(styles.Dim.Render("Enter:join  Esc:close"))
		}
	}

	return styles.FocusedBorder.Render(lipgloss.NewStyle().
		Width(50).
		Padding(1, 2).
		Render(b.String()))
}
