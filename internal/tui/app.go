package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/tessro/feedcast/internal/player"
	"github.com/tessro/feedcast/internal/pricing"
	"github.com/tessro/feedcast/internal/tui/components"
	"github.com/tessro/feedcast/internal/tui/styles"
	"github.com/tessro/feedcast/internal/waitlist"
)

// Panel represents which panel is focused
type Panel int

const (
	PanelNowPlaying Panel = iota
	PanelSegments
	PanelPricing
	panelCount
)

const (
	joinTimeout  = 15 * time.Second
	signupReset  = 4 * time.Second
	errorTimeout = 5 * time.Second
)

// Joiner submits waitlist signups.
type Joiner interface {
	Join(ctx context.Context, raw string) (*waitlist.Result, error)
}

// Options configures the TUI.
type Options struct {
	Session   *player.Session
	Waitlist  Joiner
	SkipDelta time.Duration
	Billing   pricing.Billing
	Rows      int
	Mouse     bool
	Theme     string
	Logger    *zap.Logger
}

// Model is the main TUI model
type Model struct {
	session   *player.Session
	waitlist  Joiner
	skipDelta time.Duration
	logger    *zap.Logger

	width        int
	height       int
	focusedPanel Panel

	// Components
	nowPlaying   *components.NowPlaying
	segmentsView *components.Segments
	pricingView  *components.Pricing
	signup       *components.Signup

	// Overlays
	showHelp   bool
	showSignup bool

	// Seek-bar drag in progress
	dragging bool

	// Error handling
	lastError   error
	errorExpiry time.Time

	// Quit flag
	quitting bool
}

// NewModel creates a new TUI model
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return Model{
		session:      opts.Session,
		waitlist:     opts.Waitlist,
		skipDelta:    opts.SkipDelta,
		logger:       logger,
		focusedPanel: PanelNowPlaying,
		nowPlaying:   components.NewNowPlaying(opts.Rows),
		segmentsView: components.NewSegments(),
		pricingView:  components.NewPricing(opts.Billing),
		signup:       components.NewSignup(),
	}
}

// Messages
type signalMsg player.Signal
type joinedMsg struct {
	result *waitlist.Result
	err    error
}
type signupResetMsg struct{}

// Commands
func (m Model) waitForSignal() tea.Cmd {
	signals := m.session.Signals()
	return func() tea.Msg {
		return signalMsg(<-signals)
	}
}

func (m Model) join(email string) tea.Cmd {
	joiner := m.waitlist
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), joinTimeout)
		defer cancel()

		res, err := joiner.Join(ctx, email)
		return joinedMsg{result: res, err: err}
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("FeedCast"),
		m.waitForSignal(),
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case signalMsg:
		m.session.Handle(player.Signal(msg))
		if time.Now().After(m.errorExpiry) {
			m.lastError = nil
		}
		return m, m.waitForSignal()

	case joinedMsg:
		m.signup.Finish(msg.result, msg.err)
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		return m, tea.Tick(signupReset, func(time.Time) tea.Msg {
			return signupResetMsg{}
		})

	case signupResetMsg:
		m.signup.Reset()
		return m, nil
	}

	// Forward other messages to textinput when the signup form is open
	if m.showSignup {
		return m, m.signup.Update(msg)
	}

	return m, nil
}

func (m *Model) setError(err error) {
	m.lastError = err
	m.errorExpiry = time.Now().Add(errorTimeout)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys (always work)
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	}

	// Help overlay
	if m.showHelp {
		switch msg.String() {
		case "?", "esc":
			m.showHelp = false
		}
		return m, nil
	}

	// Signup overlay
	if m.showSignup {
		return m.handleSignupKeyPress(msg)
	}

	// Normal mode
	switch msg.String() {
	case "q":
		return m.quit()

	case "?":
		m.showHelp = true
		return m, nil

	case "w":
		if m.waitlist == nil {
			return m, nil
		}
		m.showSignup = true
		return m, tea.Batch(m.signup.Open(), textinput.Blink)

	case "tab":
		m.focusedPanel = (m.focusedPanel + 1) % panelCount
		return m, nil

	case "shift+tab":
		m.focusedPanel = (m.focusedPanel + panelCount - 1) % panelCount
		return m, nil
	}

	tracker := m.session.Tracker()

	// Playback controls
	switch msg.String() {
	case " ":
		tracker.TogglePlayback()
		return m, nil
	case "left", "h":
		tracker.Skip(-m.skipDelta)
		return m, nil
	case "right", "l":
		tracker.Skip(m.skipDelta)
		return m, nil
	case "[", "p":
		tracker.SkipSegment(-1)
		return m, nil
	case "]", "n":
		tracker.SkipSegment(1)
		return m, nil
	case "0", "home":
		tracker.SetPosition(0)
		return m, nil
	case "y":
		m.pricingView.Toggle()
		return m, nil
	}

	// Panel-specific keys
	switch m.focusedPanel {
	case PanelSegments:
		switch msg.String() {
		case "j", "down":
			m.segmentsView.SelectNext(tracker.Timeline().Len())
		case "k", "up":
			m.segmentsView.SelectPrev()
		case "enter":
			tracker.SetPosition(tracker.Timeline().Start(m.segmentsView.Selected()))
		}
	case PanelPricing:
		switch msg.String() {
		case "enter":
			m.pricingView.Toggle()
		}
	}

	return m, nil
}

func (m Model) handleSignupKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.showSignup = false
		m.signup.Close()
		return m, nil

	case "enter":
		if m.signup.State != components.SignupEditing {
			return m, nil
		}
		email, ok := m.signup.Begin()
		if !ok {
			return m, nil
		}
		return m, m.join(email)
	}

	m.signup.Reset()
	return m, m.signup.Update(msg)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || m.showSignup {
		return m, nil
	}

	bar := m.nowPlaying.SeekBar()
	tracker := m.session.Tracker()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && bar.Contains(msg.X, msg.Y) {
			m.dragging = true
			tracker.SeekToPointer(float64(msg.X), bar.Rect())
		}
	case tea.MouseActionMotion:
		if m.dragging {
			tracker.SeekToPointer(float64(msg.X), bar.Rect())
		}
	case tea.MouseActionRelease:
		m.dragging = false
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.session.Close()
	return m, tea.Quit
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 {
		return "Loading..."
	}

	// Show overlays if active
	if m.showHelp {
		return m.renderHelp()
	}

	if m.showSignup {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.signup.Render())
	}

	// Main layout: two columns
	// Left: Now Playing (top), Segments (bottom)
	// Right: Pricing

	tracker := m.session.Tracker()
	state := tracker.State()
	tl := tracker.Timeline()

	leftWidth := m.width * 60 / 100
	rightWidth := m.width - leftWidth
	topHeight := m.height * 55 / 100
	bottomHeight := m.height - topHeight - 3
	mainHeight := m.height - 1

	nowPlaying := m.nowPlaying.Render(state, tracker.Segment(), tl.Len(), m.session.Frame(), leftWidth-2, topHeight-2, m.focusedPanel == PanelNowPlaying)
	segmentsView := m.segmentsView.Render(tl, state.SegmentIndex, leftWidth-2, bottomHeight, m.focusedPanel == PanelSegments)
	pricingView := m.pricingView.Render(rightWidth-2, mainHeight-2, m.focusedPanel == PanelPricing)

	leftCol := lipgloss.JoinVertical(lipgloss.Left, nowPlaying, segmentsView)
	main := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, pricingView)

	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderStatusBar())
}

func (m Model) renderStatusBar() string {
	status := styles.Dim.Render("q:quit  ?:help  space:play/pause  ←/→:skip  [/]:segment  y:billing  w:waitlist  tab:switch panel")

	if m.lastError != nil {
		status = styles.ErrorText.Render("Error: " + m.lastError.Error())
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Render(status)
}

func (m Model) renderHelp() string {
	title := "FeedCast - Keyboard Shortcuts"
	divider := strings.Repeat("═", len(title))

	help := `
  ` + title + `
  ` + divider + `

  Global
  ──────
  q, Ctrl+C    Quit
  ?            Toggle help
  w            Join the waitlist
  Tab          Next panel
  Shift+Tab    Previous panel

  Playback
  ────────
  Space        Play/Pause
  ←/h  →/l     Skip back/forward
  [/p  ]/n     Previous/next segment
  0            Back to start
  Click, drag  Seek on the progress bar

  Segments Panel
  ──────────────
  j/↓  k/↑     Move cursor
  Enter        Jump to segment

  Pricing Panel
  ─────────────
  y, Enter     Monthly/yearly

  Press ? or Esc to close
`

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(styles.BorderStyle.Render(help))
}

// Run starts the TUI application
func Run(opts Options) error {
	if opts.Theme != "" {
		styles.SetTheme(opts.Theme)
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	model := NewModel(opts)
	p := tea.NewProgram(model, programOpts...)

	_, err := p.Run()
	opts.Session.Close()
	return err
}
