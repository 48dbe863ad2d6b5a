package game

import "errors"

var (
	// ErrInvalidWord is returned by NewSession for an empty secret word or
	// one containing anything other than letters.
	ErrInvalidWord = errors.New("game: invalid secret word")

	// ErrInvalidGuess means the input was not exactly one letter.
	ErrInvalidGuess = errors.New("game: guess must be a single letter")

	// ErrDuplicateGuess means the letter was guessed earlier in the session.
	ErrDuplicateGuess = errors.New("game: letter already guessed")

	// ErrSessionOver is returned when guessing after the session has been
	// won or lost.
	ErrSessionOver = errors.New("game: session is over")
)
