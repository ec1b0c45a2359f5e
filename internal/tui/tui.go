// Package tui is the interactive table: a Bubble Tea front end over the
// game engine for a single human seat.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/blackjack-cli/internal/deck"
)

// PromptMode describes what kind of input the table is waiting for
type PromptMode int

const (
	PromptNone PromptMode = iota
	PromptBet
	PromptAction
	PromptContinue
)

// Model represents the Bubble Tea model for the blackjack table
type Model struct {
	logger *log.Logger

	// UI components
	logViewport viewport.Model
	actionInput textinput.Model

	// State
	gameLog     []string
	inputResult chan InputResult
	quitSignal  chan bool
	quitting    bool
	focusedPane int // 0 = log, 1 = input

	// Display state, updated by the bridge from game events
	promptMode PromptMode
	handLine   string
	round      int
	players    []PlayerInfo
	shoeCards  int

	// Dimensions
	width       int
	height      int
	initialized bool

	// Color support, detected once at startup
	colorProfile termenv.Profile

	// Test mode
	testMode    bool
	capturedLog []string
}

// InputResult represents a line of user input
type InputResult struct {
	Input string
}

// QuitMsg is a custom message to signal quit
type QuitMsg struct{}

// PlayerInfo holds basic player information for the sidebar
type PlayerInfo struct {
	Name     string
	Bankroll int
	Bet      int
	Bankrupt bool
}

// New creates a new TUI model
func New(logger *log.Logger) *Model {
	return NewWithOptions(logger, false)
}

// NewWithOptions creates a new TUI model with test mode option
func NewWithOptions(logger *log.Logger, testMode bool) *Model {
	// Sized properly when the first WindowSizeMsg arrives
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "hit, stand, or quit"
	ti.Focus()
	ti.CharLimit = 40
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	return &Model{
		logger:       logger.WithPrefix("tui"),
		logViewport:  vp,
		actionInput:  ti,
		gameLog:      []string{},
		inputResult:  make(chan InputResult, 1),
		quitSignal:   make(chan bool, 1),
		focusedPane:  1,
		colorProfile: termenv.ColorProfile(),
		testMode:     testMode,
		capturedLog:  []string{},
	}
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listenForQuit())
}

// listenForQuit returns a command that listens for quit signals
func (m *Model) listenForQuit() tea.Cmd {
	return func() tea.Msg {
		<-m.quitSignal
		return QuitMsg{}
	}
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case QuitMsg:
		m.quitting = true
		return m, tea.Sequence(tea.ClearScreen, tea.Quit)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			m.submitInput("quit")
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "tab":
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.actionInput.Focus()
			} else {
				m.focusedPane = 0
				m.actionInput.Blur()
			}
		case "enter":
			if m.focusedPane == 1 {
				m.submitInput(strings.TrimSpace(m.actionInput.Value()))
				m.actionInput.SetValue("")
			}
		case "up", "k":
			if m.focusedPane == 0 {
				m.logViewport.ScrollUp(1)
			}
		case "down", "j":
			if m.focusedPane == 0 {
				m.logViewport.ScrollDown(1)
			}
		case "pgup":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageUp()
			}
		case "pgdown":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageDown()
			}
		case "home", "g":
			if m.focusedPane == 0 {
				m.logViewport.GotoTop()
			}
		case "end", "G":
			if m.focusedPane == 0 {
				m.logViewport.GotoBottom()
			}
		}
	}

	var cmd tea.Cmd

	if m.focusedPane == 1 {
		m.actionInput, cmd = m.actionInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Action pane (bottom, full width)
	actionContent := m.renderActionPane()
	actionHeight := lipgloss.Height(actionContent)
	actionWidth := m.width - 2
	if actionWidth < 1 {
		actionWidth = 1
	}
	innerActionHeight := actionHeight - 2
	if innerActionHeight < 1 {
		innerActionHeight = 1
	}

	actionStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#04B575")).
		Width(actionWidth).
		Height(innerActionHeight)
	actionPane := actionStyle.Render(actionContent)

	// Sidebar pane (right side, same height as log pane)
	sidebarContent := m.renderSidebarPane()
	sidebarWidth := 28
	if w := lipgloss.Width(sidebarContent); w > sidebarWidth {
		sidebarWidth = w
	}
	sidebarHeight := m.height - actionHeight - 4
	if sidebarHeight < 1 {
		sidebarHeight = 1
	}

	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(sidebarWidth).
		Height(sidebarHeight)
	sidebarPane := sidebarStyle.Render(sidebarContent)

	// Log pane (top left, fills the rest)
	logWidth := m.width - sidebarWidth - 4
	if logWidth < 1 {
		logWidth = 1
	}
	logHeight := m.height - actionHeight - 4
	if logHeight < 1 {
		logHeight = 1
	}

	m.logViewport.Width = logWidth
	m.logViewport.Height = logHeight
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))

	if !m.initialized && logWidth > 1 && logHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(logWidth).
		Height(logHeight)
	if m.focusedPane == 0 {
		logStyle = logStyle.BorderForeground(lipgloss.Color("#04B575"))
	}
	logPane := logStyle.Render(m.logViewport.View())

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, logPane, sidebarPane)
	return lipgloss.JoinVertical(lipgloss.Top, topRow, actionPane)
}

// renderSidebarPane creates the sidebar content
func (m *Model) renderSidebarPane() string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render(fmt.Sprintf(" Round %d ", m.round)))
	content.WriteString("\n")
	content.WriteString(InfoStyle.Render(fmt.Sprintf("Shoe: %d cards", m.shoeCards)))
	content.WriteString("\n\n")

	if len(m.players) > 0 {
		content.WriteString(InfoStyle.Render("Seats:"))
		content.WriteString("\n")
		for _, p := range m.players {
			line := fmt.Sprintf("  %s: $%d", p.Name, p.Bankroll)
			if p.Bet > 0 {
				line += fmt.Sprintf(" (bet $%d)", p.Bet)
			}
			if p.Bankrupt {
				content.WriteString(ErrorStyle.Render(line + " [bust]"))
			} else {
				content.WriteString(line)
			}
			content.WriteString("\n")
		}
	}

	return content.String()
}

// renderActionPane renders the action input pane
func (m *Model) renderActionPane() string {
	var content strings.Builder

	if m.handLine != "" {
		content.WriteString(HandInfoStyle.Render(m.handLine))
		content.WriteString("\n")
	}

	switch m.promptMode {
	case PromptBet:
		content.WriteString(ActionsStyle.Render("Actions: [bet <amount>] [quit]"))
		content.WriteString("\n")
		m.actionInput.Placeholder = "bet amount, Enter for table minimum"
	case PromptAction:
		content.WriteString(ActionsStyle.Render(
			"Actions: " + SuccessStyle.Render("[hit]") + " " +
				WarningStyle.Render("[stand]") + " " + ErrorStyle.Render("[quit]")))
		content.WriteString("\n")
		m.actionInput.Placeholder = "hit, stand, or quit"
	case PromptContinue:
		m.actionInput.Placeholder = "Enter for the next round, 'quit' to leave"
	default:
		content.WriteString(HandInfoStyle.Render("Waiting..."))
		content.WriteString("\n")
		m.actionInput.Placeholder = ""
	}

	content.WriteString(m.actionInput.View())
	content.WriteString("\n")

	if m.focusedPane == 0 {
		content.WriteString(InfoStyle.Render(
			"Log focused: ↑↓ scroll, PgUp/PgDn half page, Home/End, Tab to input"))
	} else {
		content.WriteString(InfoStyle.Render(
			"Tab to scroll log • Enter to submit • Ctrl+C to quit"))
	}

	return content.String()
}

// FormatCards formats cards with suit colors, falling back to plain text
// on terminals without color support.
func (m *Model) FormatCards(cards []deck.Card) string {
	if len(cards) == 0 {
		return ""
	}

	var formatted []string
	for _, card := range cards {
		switch {
		case m.colorProfile == termenv.Ascii:
			formatted = append(formatted, card.String())
		case card.IsRed():
			formatted = append(formatted, RedCardStyle.Render(card.String()))
		default:
			formatted = append(formatted, BlackCardStyle.Render(card.String()))
		}
	}

	return "[" + strings.Join(formatted, " ") + "]"
}

// AddLogEntry adds an entry to the game log
func (m *Model) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)

	if m.testMode {
		m.capturedLog = append(m.capturedLog, entry)
		return
	}

	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// SetPrompt updates the action pane prompt and hand summary line
func (m *Model) SetPrompt(mode PromptMode, handLine string) {
	m.promptMode = mode
	m.handLine = handLine
}

// SetTableInfo updates the sidebar with the table state
func (m *Model) SetTableInfo(round, shoeCards int, players []PlayerInfo) {
	m.round = round
	m.shoeCards = shoeCards
	m.players = players
}

// submitInput sends a line of input without blocking the update loop
func (m *Model) submitInput(input string) {
	select {
	case m.inputResult <- InputResult{Input: input}:
	default:
		m.logger.Debug("dropping input, nothing waiting", "input", input)
	}
}

// WaitForInput blocks until the user submits a line
func (m *Model) WaitForInput() string {
	result := <-m.inputResult
	return result.Input
}

// SendQuitSignal signals the TUI to quit gracefully
func (m *Model) SendQuitSignal() {
	select {
	case m.quitSignal <- true:
	default:
	}
}

// CapturedLog returns the captured log entries (test mode only)
func (m *Model) CapturedLog() []string {
	if !m.testMode {
		return nil
	}
	result := make([]string, len(m.capturedLog))
	copy(result, m.capturedLog)
	return result
}

// InjectInput programmatically injects a line of input (test mode only)
func (m *Model) InjectInput(input string) error {
	if !m.testMode {
		return fmt.Errorf("input injection only available in test mode")
	}

	select {
	case m.inputResult <- InputResult{Input: input}:
		return nil
	default:
		return fmt.Errorf("input channel full")
	}
}
