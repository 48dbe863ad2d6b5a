package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/hangman/internal/game"
)

// ErrAbandoned is returned by Run when the player quits mid-session.
var ErrAbandoned = errors.New("tui: session abandoned")

// Run plays s in a full-screen program until the player leaves the final
// screen, quits, or ctx is cancelled.
func Run(ctx context.Context, s *game.Session, logger *log.Logger, opts ...tea.ProgramOption) error {
	model := NewModel(s, logger)
	program := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)

	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	g.Go(func() error {
		defer close(done)
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("run program: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		select {
		case <-gctx.Done():
			program.Quit()
		case <-done:
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if model.Abandoned() {
		return ErrAbandoned
	}
	return nil
}
