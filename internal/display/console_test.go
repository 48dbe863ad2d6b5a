package display

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hangman/internal/game"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func playScript(t *testing.T, word, script string, opts Options) (*game.Session, string, error) {
	t.Helper()

	s, err := game.NewSession(word)
	require.NoError(t, err)

	var out bytes.Buffer
	c := NewConsole(strings.NewReader(script), &out, quietLogger(), opts)
	err = c.Play(context.Background(), s)
	return s, out.String(), err
}

func TestPlayWin(t *testing.T) {
	t.Parallel()

	s, out, err := playScript(t, "cat", "a\nc\nt\n", Options{})
	require.NoError(t, err)

	assert.Equal(t, game.Won, s.State())
	assert.Contains(t, out, "Attempts remaining: 6")
	assert.Contains(t, out, "Current word: _ _ _")
	assert.Contains(t, out, "Current word: _ a _")
	assert.Contains(t, out, "Current word: c a _")
	assert.Contains(t, out, "Guessed letters: a, c")
	assert.Contains(t, out, "Congratulations! You've guessed the word: cat")
	assert.NotContains(t, out, IncorrectGuess)
	assert.Equal(t, 3, strings.Count(out, Prompt))
}

func TestPlayLoss(t *testing.T) {
	t.Parallel()

	s, out, err := playScript(t, "dog", "x\ny\nz\nq\nw\ne\n", Options{})
	require.NoError(t, err)

	assert.Equal(t, game.Lost, s.State())
	assert.Equal(t, 0, s.AttemptsRemaining())
	assert.Equal(t, 6, strings.Count(out, IncorrectGuess))
	assert.Contains(t, out, "Attempts remaining: 1")
	assert.Contains(t, out, "Guessed letters: x, y, z, q, w")
	assert.Contains(t, out, "Sorry, you've run out of attempts. The word was: dog")
}

func TestPlayRejectsInvalidAndDuplicateInput(t *testing.T) {
	t.Parallel()

	s, out, err := playScript(t, "cat", "1\n\nab\na\nA\nc\nt\n", Options{})
	require.NoError(t, err)

	assert.Equal(t, game.Won, s.State())
	assert.Equal(t, game.MaxAttempts, s.AttemptsRemaining())
	assert.Equal(t, 3, strings.Count(out, InvalidGuess))
	assert.Equal(t, 1, strings.Count(out, DuplicateGuess))
	assert.NotContains(t, out, PressEnter)
}

func TestPlayHandlesCRLF(t *testing.T) {
	t.Parallel()

	s, _, err := playScript(t, "ox", "o\r\nx\r\n", Options{})
	require.NoError(t, err)
	assert.Equal(t, game.Won, s.State())
}

func TestPlayPausesAfterRejectedAndIncorrectGuesses(t *testing.T) {
	t.Parallel()

	// Each rejected or incorrect guess is followed by an acknowledgement line.
	script := "1\n\nz\n\na\nz\n\nb\n"
	s, out, err := playScript(t, "a", script, Options{Pause: true})
	require.NoError(t, err)

	assert.Equal(t, game.Won, s.State())
	assert.Equal(t, game.MaxAttempts-1, s.AttemptsRemaining())
	assert.Equal(t, 2, strings.Count(out, PressEnter))
	assert.Equal(t, []rune("za"), s.GuessedLetters())
}

func TestPlayClearsScreen(t *testing.T) {
	t.Parallel()

	_, out, err := playScript(t, "a", "a\n", Options{ClearScreen: true})
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[2J")

	_, out, err = playScript(t, "a", "a\n", Options{})
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[2J")
}

func TestPlayInputClosed(t *testing.T) {
	t.Parallel()

	s, _, err := playScript(t, "cat", "a\n", Options{})
	assert.ErrorIs(t, err, ErrInputClosed)
	assert.Equal(t, game.InProgress, s.State())

	_, _, err = playScript(t, "cat", "q\n", Options{Pause: true})
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestPlayFinalLineWithoutNewline(t *testing.T) {
	t.Parallel()

	s, _, err := playScript(t, "ab", "a\nb", Options{})
	require.NoError(t, err)
	assert.Equal(t, game.Won, s.State())
}

func TestPlayCancelled(t *testing.T) {
	t.Parallel()

	s, err := game.NewSession("cat")
	require.NoError(t, err)

	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := NewConsole(pr, io.Discard, quietLogger(), Options{})
	err = c.Play(ctx, s)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWelcome(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	NewConsole(strings.NewReader(""), &out, quietLogger(), Options{}).Welcome()
	assert.Contains(t, out.String(), Welcome)
}
