package tui

import (
	"context"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hangman/internal/display"
	"github.com/lox/hangman/internal/game"
)

func newTestModel(t *testing.T, word string) (*Model, *game.Session) {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}) // Quiet logger for tests

	s, err := game.NewSession(word)
	require.NoError(t, err)
	return NewModel(s, logger), s
}

func typeGuess(m *Model, input string) tea.Cmd {
	if input != "" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(input)})
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelPlaysToWin(t *testing.T) {
	t.Parallel()

	m, s := newTestModel(t, "cat")

	typeGuess(m, "a")
	assert.Equal(t, []rune("_a_"), s.Revealed())
	assert.Contains(t, m.Message(), "Good guess")
	assert.Contains(t, m.View(), "Current word: _ a _")

	typeGuess(m, "C")
	typeGuess(m, "t")

	assert.Equal(t, game.Won, s.State())
	assert.Equal(t, "Congratulations! You've guessed the word: cat", m.Message())
	assert.Contains(t, m.View(), "press any key to exit")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.True(t, isQuit(cmd))
	assert.False(t, m.Abandoned())
}

func TestModelPlaysToLoss(t *testing.T) {
	t.Parallel()

	m, s := newTestModel(t, "dog")

	for _, g := range []string{"x", "y", "z", "q", "w"} {
		typeGuess(m, g)
		assert.Equal(t, display.IncorrectGuess, m.Message())
	}
	typeGuess(m, "e")

	assert.Equal(t, game.Lost, s.State())
	assert.Equal(t, "Sorry, you've run out of attempts. The word was: dog", m.Message())
	assert.Contains(t, m.View(), "/ \\")
}

func TestModelRejectsInvalidAndDuplicateGuesses(t *testing.T) {
	t.Parallel()

	m, s := newTestModel(t, "cat")

	typeGuess(m, "")
	assert.Equal(t, display.InvalidGuess, m.Message())

	typeGuess(m, "ab")
	assert.Equal(t, display.InvalidGuess, m.Message())

	typeGuess(m, "7")
	assert.Equal(t, display.InvalidGuess, m.Message())

	typeGuess(m, "a")
	typeGuess(m, "a")
	assert.Equal(t, display.DuplicateGuess, m.Message())

	assert.Equal(t, game.MaxAttempts, s.AttemptsRemaining())
	assert.Equal(t, []rune("a"), s.GuessedLetters())
}

func TestModelInputClearedAfterSubmit(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, "cat")

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	assert.Equal(t, "a", m.guessInput.Value())

	typeGuess(m, "")
	assert.Empty(t, m.guessInput.Value())
}

func TestModelEscAbandons(t *testing.T) {
	t.Parallel()

	m, s := newTestModel(t, "cat")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, isQuit(cmd))
	assert.True(t, m.Abandoned())
	assert.Equal(t, game.InProgress, s.State())
}

func TestDrawGallows(t *testing.T) {
	t.Parallel()

	assert.NotContains(t, drawGallows(game.MaxAttempts), "O")
	assert.Contains(t, drawGallows(game.MaxAttempts-1), "O")
	assert.Contains(t, drawGallows(0), "/ \\")
	assert.Equal(t, drawGallows(0), drawGallows(-3))
	assert.Equal(t, drawGallows(game.MaxAttempts), drawGallows(99))
}

func TestRunStopsOnCancel(t *testing.T) {
	t.Parallel()

	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	s, err := game.NewSession("cat")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = Run(ctx, s, logger,
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
	)
	assert.ErrorIs(t, err, context.Canceled)
}
