// internal/game/game.go
//
// Game variant capability set and the shared guess validation rules. Variants
// are a closed set selected at creation time: Normal (fixed answer) and
// Cheating (lazily narrowed answer). Both are plain state holders with no
// internal locking; the owning Room serializes access.
package game

import (
	"errors"

	"github.com/SMART-YANG1/wordle-assignment/internal/words"
)

// MaxAttempts is the number of guesses a game allows before it is exhausted.
const MaxAttempts = 6

// InvalidGuess errors. The messages are part of the wire contract: they are
// surfaced verbatim in ok:false acks.
var (
	ErrLengthMismatch = errors.New("length mismatch")
	ErrInvalidChars   = errors.New("invalid characters")
	ErrNotInDict      = errors.New("not in dictionary")
	ErrGameOver       = errors.New("game over")
)

// Result is the outcome of one accepted guess.
type Result struct {
	Tokens    []Token
	Won       bool
	Over      bool
	Remaining int
}

// Game is the capability set shared by all variants. Apply validates and
// scores one guess, advancing attempt state only on success; validation
// failures mutate nothing. Once a game reports over, every further Apply
// fails with ErrGameOver.
type Game interface {
	Apply(player, guess string) (Result, error)
	IsOver() bool
	Winner() (string, bool)
}

// validateGuess runs the shared pre-scoring checks: terminal state first,
// then length, alphabet, and dictionary membership.
func validateGuess(guess string, over bool, vocab *words.List) error {
	if over {
		return ErrGameOver
	}
	if len(guess) != words.WordLength {
		return ErrLengthMismatch
	}
	for i := 0; i < len(guess); i++ {
		if guess[i] < 'a' || guess[i] > 'z' {
			return ErrInvalidChars
		}
	}
	if !vocab.Contains(guess) {
		return ErrNotInDict
	}
	return nil
}
