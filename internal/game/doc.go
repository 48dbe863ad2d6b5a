// Package game implements the hangman session state machine.
//
// A Session owns the secret word, the revealed positions, the letters guessed
// so far and the remaining attempt budget. It is mutated only through Guess.
//
// # Basic Usage
//
//	s, err := game.NewSession("cat")
//	if err != nil {
//	    return err
//	}
//	for s.State() == game.InProgress {
//	    outcome, err := s.Guess(readLine())
//	    switch {
//	    case errors.Is(err, game.ErrInvalidGuess), errors.Is(err, game.ErrDuplicateGuess):
//	        continue // re-prompt, nothing changed
//	    case err != nil:
//	        return err
//	    }
//	    _ = outcome.Correct
//	}
//
// # Deterministic Testing
//
// The session reads time only through a quartz.Clock, so tests can inject a
// mock clock:
//
//	clock := quartz.NewMock(t)
//	s, _ := game.NewSession("dog", game.WithClock(clock))
package game
