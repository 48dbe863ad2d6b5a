package tui

import "github.com/lox/hangman/internal/game"

// gallows holds one drawing per incorrect guess, from none to MaxAttempts.
var gallows = [game.MaxAttempts + 1]string{
	`  +---+
  |   |
      |
      |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
      |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
  |   |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|   |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|\  |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|\  |
 /    |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|\  |
 / \  |
      |
=========`,
}

// drawGallows returns the drawing for the given number of remaining attempts.
func drawGallows(attemptsRemaining int) string {
	misses := game.MaxAttempts - attemptsRemaining
	if misses < 0 {
		misses = 0
	}
	if misses >= len(gallows) {
		misses = len(gallows) - 1
	}
	return gallows[misses]
}
