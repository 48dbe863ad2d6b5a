// Package display implements the line-oriented console front-end.
package display

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/hangman/internal/game"
)

// ErrInputClosed is returned when input ends before the session does.
var ErrInputClosed = errors.New("display: input closed before the game ended")

// Options controls console behaviour that only makes sense on a terminal.
type Options struct {
	ClearScreen bool // clear before each status display
	Pause       bool // wait for Enter after a rejected or incorrect guess
}

// Console plays a session over a plain text reader and writer.
type Console struct {
	out    io.Writer
	term   *termenv.Output
	lines  *lineReader
	styles consoleStyles
	opts   Options
	logger *log.Logger
}

type consoleStyles struct {
	title   lipgloss.Style
	status  lipgloss.Style
	errText lipgloss.Style
	warning lipgloss.Style
	success lipgloss.Style
}

// NewConsole creates a console reading guesses from in and writing to out.
func NewConsole(in io.Reader, out io.Writer, logger *log.Logger, opts Options) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		out:   out,
		term:  termenv.NewOutput(out),
		lines: newLineReader(in),
		styles: consoleStyles{
			title: r.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(lipgloss.Color("#7D56F4")).
				Padding(0, 1).
				Bold(true),
			status:  r.NewStyle().Foreground(lipgloss.Color("#96CEB4")),
			errText: r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
			warning: r.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
			success: r.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		},
		opts:   opts,
		logger: logger.WithPrefix("console"),
	}
}

// Welcome prints the banner shown once at startup.
func (c *Console) Welcome() {
	fmt.Fprintln(c.out, c.styles.title.Render(Welcome))
}

// Play runs the turn loop until the session is won or lost, then prints the
// outcome. Rejected guesses are reported and re-prompted inside the loop.
func (c *Console) Play(ctx context.Context, s *game.Session) error {
	c.logger.Info("Session started", "session", s.ID(), "length", len(s.Revealed()))

	for s.State() == game.InProgress {
		c.showStatus(s)
		fmt.Fprint(c.out, Prompt)

		input, err := c.lines.next(ctx)
		if err != nil {
			return err
		}

		outcome, err := s.Guess(input)
		switch {
		case errors.Is(err, game.ErrInvalidGuess):
			c.logger.Debug("Rejected invalid guess", "input", input)
			if err := c.notify(ctx, c.styles.errText.Render(InvalidGuess)); err != nil {
				return err
			}
			continue
		case errors.Is(err, game.ErrDuplicateGuess):
			c.logger.Debug("Rejected duplicate guess", "letter", string(outcome.Letter))
			if err := c.notify(ctx, c.styles.warning.Render(DuplicateGuess)); err != nil {
				return err
			}
			continue
		case err != nil:
			return err
		}

		c.logger.Debug("Guess accepted",
			"letter", string(outcome.Letter),
			"correct", outcome.Correct,
			"revealed", outcome.Revealed,
			"attempts", s.AttemptsRemaining())

		if !outcome.Correct {
			if err := c.notify(ctx, c.styles.errText.Render(IncorrectGuess)); err != nil {
				return err
			}
		}
	}

	c.showResult(s)
	c.logger.Info("Session finished",
		"session", s.ID(),
		"state", s.State(),
		"guesses", len(s.GuessedLetters()),
		"elapsed", s.Elapsed())
	return nil
}

func (c *Console) showStatus(s *game.Session) {
	if c.opts.ClearScreen {
		c.term.ClearScreen()
	}
	for _, line := range StatusLines(s) {
		fmt.Fprintln(c.out, c.styles.status.Render(line))
	}
}

func (c *Console) showResult(s *game.Session) {
	style := c.styles.errText
	if s.State() == game.Won {
		style = c.styles.success
	}
	fmt.Fprintln(c.out, style.Render(Result(s)))
}

// notify prints msg and, when pausing is enabled, waits for Enter.
func (c *Console) notify(ctx context.Context, msg string) error {
	fmt.Fprintln(c.out, msg)
	if !c.opts.Pause {
		return nil
	}
	fmt.Fprintln(c.out, PressEnter)
	_, err := c.lines.next(ctx)
	return err
}

type lineResult struct {
	line string
	err  error
}

// lineReader delivers input lines on a channel so a blocked read does not
// stop the turn loop from observing cancellation.
type lineReader struct {
	r     *bufio.Reader
	lines chan lineResult
	once  sync.Once
}

func newLineReader(in io.Reader) *lineReader {
	return &lineReader{
		r:     bufio.NewReader(in),
		lines: make(chan lineResult),
	}
}

func (lr *lineReader) run() {
	defer close(lr.lines)
	for {
		line, err := lr.r.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lr.lines <- lineResult{line: line}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				lr.lines <- lineResult{err: err}
			}
			return
		}
	}
}

// next returns the next line without its terminator.
func (lr *lineReader) next(ctx context.Context) (string, error) {
	lr.once.Do(func() { go lr.run() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-lr.lines:
		if !ok {
			return "", ErrInputClosed
		}
		if res.err != nil {
			return "", fmt.Errorf("read input: %w", res.err)
		}
		return res.line, nil
	}
}
