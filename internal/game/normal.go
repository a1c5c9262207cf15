// internal/game/normal.go
package game

import (
	"strings"

	"github.com/SMART-YANG1/wordle-assignment/internal/words"
)

// Normal is the standard variant: the answer is fixed at creation.
type Normal struct {
	answer   string
	vocab    *words.List
	attempts int
	won      bool
	over     bool
	winner   string
}

// NewNormal creates a Normal game with the given answer. An empty answer
// draws one uniformly at random from the vocabulary; passing an explicit
// answer is for deterministic tests.
func NewNormal(answer string, vocab *words.List) *Normal {
	if answer == "" {
		answer = vocab.Random()
	}
	return &Normal{
		answer: strings.ToLower(answer),
		vocab:  vocab,
	}
}

// Apply validates and scores one guess against the fixed answer.
func (g *Normal) Apply(player, guess string) (Result, error) {
	if err := validateGuess(guess, g.over, g.vocab); err != nil {
		return Result{}, err
	}

	tokens := Score(g.answer, guess)
	g.attempts++
	won := AllHit(tokens)
	if won {
		g.won = true
		g.winner = player
	}
	g.over = won || g.attempts >= MaxAttempts

	return Result{
		Tokens:    tokens,
		Won:       won,
		Over:      g.over,
		Remaining: MaxAttempts - g.attempts,
	}, nil
}

// IsOver reports whether the game reached a terminal state.
func (g *Normal) IsOver() bool { return g.over }

// Winner returns the identity of the winning player, if any.
func (g *Normal) Winner() (string, bool) { return g.winner, g.won }

// Answer exposes the secret for post-game display and tests.
func (g *Normal) Answer() string { return g.answer }
