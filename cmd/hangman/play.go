package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/lox/hangman/cmd/hangman/shared"
	"github.com/lox/hangman/internal/config"
	"github.com/lox/hangman/internal/display"
	"github.com/lox/hangman/internal/game"
	"github.com/lox/hangman/internal/randutil"
	"github.com/lox/hangman/internal/tui"
	"github.com/lox/hangman/internal/words"
)

// PlayCmd runs a single session
type PlayCmd struct {
	Words   string `kong:"short='w',type='path',help='Word list file, one word per line (default: words.txt next to the binary)'"`
	Config  string `kong:"short='c',default='hangman.hcl',help='Configuration file (optional)'"`
	TUI     bool   `kong:"name='tui',help='Use the full-screen interface'"`
	Seed    *int64 `kong:"help='Deterministic RNG seed for word selection (optional)'"`
	LogFile string `kong:"type='path',help='Write the debug log to this file'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

func (c *PlayCmd) Run() error {
	interactive := isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
	ctx := shared.SetupSignalHandler()
	return c.run(ctx, os.Stdin, os.Stdout, interactive)
}

func (c *PlayCmd) run(ctx context.Context, in io.Reader, out io.Writer, interactive bool) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := shared.SetupLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeLog(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	wordsPath := cfg.WordsFile
	if wordsPath == "" {
		wordsPath = words.DefaultPath()
	}
	list, err := words.Load(wordsPath)
	if err != nil {
		logger.Error("Failed to load word list", "path", wordsPath, "error", err)
		return fmt.Errorf("cannot start game: %w", err)
	}
	if list.Skipped > 0 {
		logger.Warn("Skipped lines that are not words", "path", wordsPath, "skipped", list.Skipped)
	}

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
		logger.Info("Using deterministic seed", "seed", seed)
	}
	word := list.Pick(randutil.New(seed))

	session, err := game.NewSession(word)
	if err != nil {
		return fmt.Errorf("cannot start game: %w", err)
	}
	logger.Info("Starting game",
		"session", session.ID(),
		"words", list.Len(),
		"mode", cfg.UI.Mode)

	if cfg.UI.Mode == config.ModeTUI {
		return c.playTUI(ctx, session, out, logger)
	}

	console := display.NewConsole(in, out, logger, display.Options{
		ClearScreen: cfg.ClearScreen(interactive),
		Pause:       cfg.Pause(interactive),
	})
	console.Welcome()

	err = console.Play(ctx, session)
	if errors.Is(err, context.Canceled) {
		logger.Info("Interrupted", "session", session.ID())
		fmt.Fprintln(out)
		return nil
	}
	return err
}

func (c *PlayCmd) playTUI(ctx context.Context, session *game.Session, out io.Writer, logger *log.Logger) error {
	err := tui.Run(ctx, session, logger)
	switch {
	case errors.Is(err, tui.ErrAbandoned):
		fmt.Fprintf(out, "Game abandoned. The word was: %s\n", session.Word())
		return nil
	case errors.Is(err, context.Canceled):
		logger.Info("Interrupted", "session", session.ID())
		return nil
	case err != nil:
		return err
	}

	// The alternate screen is gone once the program exits; repeat the outcome.
	fmt.Fprintln(out, display.Result(session))
	return nil
}

// loadConfig reads the config file and applies flag overrides.
func (c *PlayCmd) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", c.Config, err)
	}

	if c.Words != "" {
		cfg.WordsFile = c.Words
	}
	if c.LogFile != "" {
		cfg.LogFile = c.LogFile
	}
	if c.Debug {
		cfg.LogLevel = "debug"
	}
	if c.TUI {
		cfg.UI.Mode = config.ModeTUI
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", c.Config, err)
	}
	return cfg, nil
}
