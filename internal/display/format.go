package display

import (
	"fmt"
	"strings"

	"github.com/lox/hangman/internal/game"
)

// Messages shown to the player.
const (
	Welcome        = "Welcome to Hangman!"
	Prompt         = "Enter your guess (a single letter): "
	InvalidGuess   = "Invalid input. Please enter a single letter."
	DuplicateGuess = "You already guessed that letter. Try again."
	IncorrectGuess = "Incorrect guess!"
	PressEnter     = "Press Enter to continue..."
	wonMessage     = "Congratulations! You've guessed the word: "
	lostMessage    = "Sorry, you've run out of attempts. The word was: "
)

// FormatRevealed renders revealed positions separated by single spaces,
// e.g. "c a _".
func FormatRevealed(revealed []rune) string {
	parts := make([]string, len(revealed))
	for i, r := range revealed {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// FormatGuessed renders guessed letters in guess order, e.g. "a, c, t".
func FormatGuessed(guessed []rune) string {
	parts := make([]string, len(guessed))
	for i, r := range guessed {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}

// StatusLines returns the per-turn status block for a session.
func StatusLines(s *game.Session) []string {
	return []string{
		fmt.Sprintf("Attempts remaining: %d", s.AttemptsRemaining()),
		"Current word: " + FormatRevealed(s.Revealed()),
		"Guessed letters: " + FormatGuessed(s.GuessedLetters()),
	}
}

// Result returns the end-of-session announcement, or "" while the session is
// still in progress.
func Result(s *game.Session) string {
	switch s.State() {
	case game.Won:
		return wonMessage + s.Word()
	case game.Lost:
		return lostMessage + s.Word()
	default:
		return ""
	}
}
