package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/seabattle/internal/core"
	"github.com/vovakirdan/seabattle/internal/games/seabattle"
)

// maxMessages is how many log lines stay on screen.
const maxMessages = 6

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle  = lipgloss.NewStyle().Bold(true)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// Options configures the match UI.
type Options struct {
	Symbols seabattle.Symbols

	// ComputerDelay is the pause before each computer shot.
	ComputerDelay time.Duration

	// OnFinish is called once when the match ends.
	OnFinish func(seabattle.Summary)
}

// Model is the Bubble Tea model for playing one match.
type Model struct {
	match    *seabattle.Match
	opts     Options
	input    textinput.Model
	keys     KeyMap
	help     help.Model
	messages []string
	lastErr  string
	quitting bool
	finished bool
	err      error
}

// NewModel creates a model for an already set up match.
func NewModel(match *seabattle.Match, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "row col"
	ti.CharLimit = 16
	ti.Width = 16
	ti.Prompt = "Your turn: "
	ti.Focus()

	return Model{
		match: match,
		opts:  opts,
		input: ti,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		messages: []string{
			"Type a row and a column, e.g. 3 5, and press enter.",
		},
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case ComputerMoveMsg:
		return m.handleComputerMove()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case m.finished:
		// Any key leaves the final screen
		return m, tea.Quit

	case key.Matches(msg, m.keys.Clear):
		m.input.Reset()
		return m, nil

	case key.Matches(msg, m.keys.Fire):
		return m.handleFire()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleFire submits the typed target for the human.
func (m Model) handleFire() (tea.Model, tea.Cmd) {
	if m.match.Current() != seabattle.Human {
		return m, nil
	}

	target, err := seabattle.ParseTarget(m.input.Value())
	if err != nil {
		m.lastErr = err.Error()
		return m, nil
	}

	turn, err := m.match.Fire(target)
	if err != nil {
		// Refused targets keep the turn
		m.lastErr = err.Error()
		m.input.Reset()
		return m, nil
	}

	m.lastErr = ""
	m.input.Reset()
	m.addMessage(seabattle.Announce(turn.Shooter, turn.Result))
	cmd := m.afterShot()
	return m, cmd
}

// handleComputerMove lets the computer take one shot.
func (m Model) handleComputerMove() (tea.Model, tea.Cmd) {
	if m.finished || m.match.Current() != seabattle.Computer {
		return m, nil
	}

	turn, err := m.match.Step()
	if err != nil {
		m.err = fmt.Errorf("computer turn: %w", err)
		return m, tea.Quit
	}

	m.addMessage(seabattle.Announce(turn.Shooter, turn.Result))
	cmd := m.afterShot()
	return m, cmd
}

// afterShot ends the match or hands control to whoever shoots next.
func (m *Model) afterShot() tea.Cmd {
	if m.match.Finished() {
		m.finished = true
		m.input.Blur()
		if m.opts.OnFinish != nil {
			m.opts.OnFinish(m.match.Summary())
		}
		return nil
	}
	if m.match.Current() == seabattle.Computer {
		return computerMoveCmd(m.opts.ComputerDelay)
	}
	return nil
}

func (m *Model) addMessage(s string) {
	m.messages = append(m.messages, s)
	if len(m.messages) > maxMessages {
		m.messages = m.messages[len(m.messages)-maxMessages:]
	}
}

// Err returns the error that stopped the match, if any.
func (m Model) Err() error {
	return m.err
}

// Finished reports whether the match reached its end.
func (m Model) Finished() bool {
	return m.finished
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("S E A   B A T T L E"))
	b.WriteString("\n\n")

	human := m.match.Player(seabattle.Human)
	computer := m.match.Player(seabattle.Computer)
	boards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.boardPanel("Your board", human.Own),
		" ",
		m.boardPanel("Computer's board", computer.Own),
	)
	b.WriteString(boards)
	b.WriteString("\n\n")

	for _, msg := range m.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.finished:
		b.WriteString(bannerStyle.Render(m.banner()))
		b.WriteString("\n\nPress any key to exit.")
	case m.match.Current() == seabattle.Computer:
		b.WriteString("Computer is aiming...")
	default:
		b.WriteString(m.input.View())
		if m.lastErr != "" {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(m.lastErr))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// boardPanel renders one board with its title and fleet status.
func (m Model) boardPanel(title string, board *seabattle.Board) string {
	screen := core.NewScreen(seabattle.BoardWidth(board.Size()), seabattle.BoardHeight(board.Size()))
	seabattle.DrawBoard(screen, 0, 0, board, m.opts.Symbols)

	status := fmt.Sprintf("Ships afloat: %d/%d", board.Remaining(), len(board.Ships()))
	content := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(title),
		RenderScreen(screen),
		status,
	)
	return panelStyle.Render(content)
}

func (m Model) banner() string {
	if m.match.State() == seabattle.StateHumanWon {
		return "You have won!"
	}
	return "The computer has won."
}

// Run starts the Bubble Tea program for the given match and returns once the
// player leaves. The returned bool reports whether the match was finished.
func Run(match *seabattle.Match, opts Options) (bool, error) {
	p := tea.NewProgram(NewModel(match, opts), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	if !ok {
		return false, errors.New("tui: unexpected model type")
	}
	return m.Finished(), m.Err()
}

// MinScreenSize returns the terminal size needed to show a match on a board of
// the given size without wrapping.
func MinScreenSize(boardSize int) (width, height int) {
	// Border and padding add 4 columns and 2 rows per panel
	panelW := seabattle.BoardWidth(boardSize) + 4
	panelH := seabattle.BoardHeight(boardSize) + 2 + 2

	width = 2*panelW + 1
	// Title, panels, messages, input and help, with blank separators
	height = 2 + panelH + 2 + maxMessages + 1 + 2 + 2
	return width, height
}
