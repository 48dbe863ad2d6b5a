package game

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/coder/quartz"
	"github.com/google/uuid"
)

const (
	// MaxAttempts is the number of incorrect guesses a player may make.
	MaxAttempts = 6

	// Placeholder marks a position whose letter has not been guessed yet.
	Placeholder = '_'
)

// SessionOption configures a Session during creation.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	clock quartz.Clock
	id    string
}

// WithClock sets the clock used for the session's start and finish times.
func WithClock(clock quartz.Clock) SessionOption {
	return func(c *sessionConfig) {
		c.clock = clock
	}
}

// WithID overrides the generated session ID.
func WithID(id string) SessionOption {
	return func(c *sessionConfig) {
		c.id = id
	}
}

// Outcome describes the effect of an accepted guess.
type Outcome struct {
	Letter   rune
	Correct  bool
	Revealed int // positions uncovered by this guess
	State    State
}

// Session is a single game of hangman.
type Session struct {
	id         string
	clock      quartz.Clock
	secret     []rune
	revealed   []rune
	guessed    []rune
	attempts   int
	state      State
	startedAt  time.Time
	finishedAt time.Time
}

// NewSession starts a session for the given secret word. The word is
// lowercased; it must be non-empty and consist only of letters.
func NewSession(word string, opts ...SessionOption) (*Session, error) {
	secret := []rune(strings.ToLower(word))
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: empty word", ErrInvalidWord)
	}
	for _, r := range secret {
		if !unicode.IsLetter(r) {
			return nil, fmt.Errorf("%w: %q contains %q", ErrInvalidWord, word, r)
		}
	}

	cfg := &sessionConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.clock == nil {
		cfg.clock = quartz.NewReal()
	}
	if cfg.id == "" {
		cfg.id = newSessionID()
	}

	revealed := make([]rune, len(secret))
	for i := range revealed {
		revealed[i] = Placeholder
	}

	return &Session{
		id:        cfg.id,
		clock:     cfg.clock,
		secret:    secret,
		revealed:  revealed,
		guessed:   make([]rune, 0, 26),
		attempts:  MaxAttempts,
		state:     InProgress,
		startedAt: cfg.clock.Now(),
	}, nil
}

// Guess processes one line of player input. Invalid and repeated guesses
// return an error wrapping ErrInvalidGuess or ErrDuplicateGuess and leave the
// session untouched.
func (s *Session) Guess(input string) (Outcome, error) {
	if s.state.IsTerminal() {
		return Outcome{State: s.state}, ErrSessionOver
	}

	letter, ok := parseLetter(input)
	if !ok {
		return Outcome{State: s.state}, fmt.Errorf("%w: %q", ErrInvalidGuess, input)
	}
	if slices.Contains(s.guessed, letter) {
		return Outcome{Letter: letter, State: s.state}, fmt.Errorf("%w: %q", ErrDuplicateGuess, letter)
	}

	s.guessed = append(s.guessed, letter)

	revealed := 0
	for i, r := range s.secret {
		if r == letter {
			s.revealed[i] = r
			revealed++
		}
	}

	if revealed == 0 && s.attempts > 0 {
		s.attempts--
	}

	switch {
	case slices.Equal(s.revealed, s.secret):
		s.finish(Won)
	case s.attempts == 0:
		s.finish(Lost)
	}

	return Outcome{
		Letter:   letter,
		Correct:  revealed > 0,
		Revealed: revealed,
		State:    s.state,
	}, nil
}

func (s *Session) finish(state State) {
	s.state = state
	s.finishedAt = s.clock.Now()
}

// parseLetter accepts exactly one letter rune and returns it lowercased.
func parseLetter(input string) (rune, bool) {
	if utf8.RuneCountInString(input) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(input)
	if r == utf8.RuneError || !unicode.IsLetter(r) {
		return 0, false
	}
	return unicode.ToLower(r), true
}

// ID returns the identifier used to correlate log lines for this session.
func (s *Session) ID() string { return s.id }

// Word returns the secret word.
func (s *Session) Word() string { return string(s.secret) }

// Revealed returns a copy of the revealed positions.
func (s *Session) Revealed() []rune { return slices.Clone(s.revealed) }

// GuessedLetters returns the guessed letters in the order they were guessed.
func (s *Session) GuessedLetters() []rune { return slices.Clone(s.guessed) }

// AttemptsRemaining returns the number of incorrect guesses still allowed.
func (s *Session) AttemptsRemaining() int { return s.attempts }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Elapsed returns the time from the session start until it finished, or
// until now while it is still in progress.
func (s *Session) Elapsed() time.Duration {
	if s.state.IsTerminal() {
		return s.finishedAt.Sub(s.startedAt)
	}
	return s.clock.Since(s.startedAt)
}

func newSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
