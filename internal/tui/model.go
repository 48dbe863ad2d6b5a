// Package tui implements a full-screen Bubble Tea front-end for a session.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/hangman/internal/display"
	"github.com/lox/hangman/internal/game"
)

// Model is the Bubble Tea model driving a single session.
type Model struct {
	session *game.Session
	logger  *log.Logger

	guessInput textinput.Model

	// Feedback for the last submitted guess
	message      string
	messageStyle lipgloss.Style

	abandoned bool
}

// NewModel creates a model for s with the guess input focused.
func NewModel(s *game.Session, logger *log.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = "a letter"
	ti.Focus()
	ti.CharLimit = 8
	ti.Width = 12
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	return &Model{
		session:    s,
		logger:     logger.WithPrefix("tui"),
		guessInput: ti,
	}
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			if !m.session.State().IsTerminal() {
				m.abandoned = true
				m.logger.Info("Session abandoned", "session", m.session.ID())
			}
			return m, tea.Quit
		}

		// Any key leaves the final screen.
		if m.session.State().IsTerminal() {
			return m, tea.Quit
		}

		if msg.Type == tea.KeyEnter {
			m.submit(m.guessInput.Value())
			m.guessInput.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.guessInput, cmd = m.guessInput.Update(msg)
	return m, cmd
}

// submit applies one guess and records the feedback line.
func (m *Model) submit(input string) {
	outcome, err := m.session.Guess(input)
	switch {
	case errors.Is(err, game.ErrInvalidGuess):
		m.setMessage(display.InvalidGuess, ErrorStyle)
		return
	case errors.Is(err, game.ErrDuplicateGuess):
		m.setMessage(display.DuplicateGuess, WarningStyle)
		return
	case err != nil:
		m.logger.Error("Unexpected guess error", "error", err)
		m.setMessage(err.Error(), ErrorStyle)
		return
	}

	m.logger.Debug("Guess accepted",
		"letter", string(outcome.Letter),
		"correct", outcome.Correct,
		"attempts", m.session.AttemptsRemaining())

	switch {
	case outcome.State == game.Won:
		m.guessInput.Blur()
		m.setMessage(display.Result(m.session), SuccessStyle)
	case outcome.State == game.Lost:
		m.guessInput.Blur()
		m.setMessage(display.Result(m.session), ErrorStyle)
	case outcome.Correct:
		m.setMessage(fmt.Sprintf("Good guess! %q appears %d time(s).", outcome.Letter, outcome.Revealed), SuccessStyle)
	default:
		m.setMessage(display.IncorrectGuess, ErrorStyle)
	}

	if outcome.State.IsTerminal() {
		m.logger.Info("Session finished",
			"session", m.session.ID(),
			"state", outcome.State,
			"elapsed", m.session.Elapsed())
	}
}

func (m *Model) setMessage(msg string, style lipgloss.Style) {
	m.message = msg
	m.messageStyle = style
}

// Message returns the feedback line currently shown.
func (m *Model) Message() string { return m.message }

// Abandoned reports whether the player quit before the session ended.
func (m *Model) Abandoned() bool { return m.abandoned }

// View renders the TUI
func (m *Model) View() string {
	var status strings.Builder
	for _, line := range display.StatusLines(m.session) {
		status.WriteString(StatusStyle.Render(line))
		status.WriteString("\n")
	}
	status.WriteString("\n")
	status.WriteString(WordStyle.Render(display.FormatRevealed(m.session.Revealed())))

	board := lipgloss.JoinHorizontal(lipgloss.Top,
		PaneStyle.Render(GallowsStyle.Render(drawGallows(m.session.AttemptsRemaining()))),
		PaneStyle.Render(status.String()),
	)

	sections := []string{
		HeaderStyle.Render("Hangman"),
		board,
	}

	if !m.session.State().IsTerminal() {
		sections = append(sections, m.guessInput.View())
	}
	if m.message != "" {
		sections = append(sections, m.messageStyle.Render(m.message))
	}

	help := "enter: guess • esc: quit"
	if m.session.State().IsTerminal() {
		help = "press any key to exit"
	}
	sections = append(sections, InfoStyle.Render(help))

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}
