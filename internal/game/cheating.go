// internal/game/cheating.go
package game

import (
	"github.com/SMART-YANG1/wordle-assignment/internal/words"
)

// Cheating is the adversarial variant: instead of fixing an answer at
// creation, it keeps the full vocabulary as a live candidate set and narrows
// it on every guess, always answering with the pattern that keeps the most
// candidates alive while avoiding a win. The effective answer locks in only
// when every remaining candidate would score all-hit.
type Cheating struct {
	candidates []string
	vocab      *words.List
	attempts   int
	won        bool
	over       bool
	winner     string
}

// NewCheating creates a Cheating game over the full vocabulary.
func NewCheating(vocab *words.List) *Cheating {
	return &Cheating{
		candidates: vocab.Words(),
		vocab:      vocab,
	}
}

type bucket struct {
	tokens []Token
	words  []string
}

// Apply partitions the candidate set by the feedback each candidate would
// produce for the guess, then narrows to the largest non-winning partition
// (ties broken by lexicographically smallest serialized pattern). The win is
// conceded only when no non-winning partition exists, i.e. the guess is the
// sole remaining candidate.
func (g *Cheating) Apply(player, guess string) (Result, error) {
	if err := validateGuess(guess, g.over, g.vocab); err != nil {
		return Result{}, err
	}

	buckets := make(map[string]*bucket)
	for _, c := range g.candidates {
		tokens := Score(c, guess)
		key := PatternKey(tokens)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{tokens: tokens}
			buckets[key] = b
		}
		b.words = append(b.words, c)
	}

	allHitKey := winningKey()
	var bestKey string
	var best *bucket
	for key, b := range buckets {
		if key == allHitKey && len(buckets) > 1 {
			continue
		}
		if best == nil || len(b.words) > len(best.words) ||
			(len(b.words) == len(best.words) && key < bestKey) {
			bestKey, best = key, b
		}
	}

	g.candidates = best.words
	g.attempts++
	won := bestKey == allHitKey
	if won {
		g.won = true
		g.winner = player
	}
	g.over = won || g.attempts >= MaxAttempts

	return Result{
		Tokens:    best.tokens,
		Won:       won,
		Over:      g.over,
		Remaining: MaxAttempts - g.attempts,
	}, nil
}

// IsOver reports whether the game reached a terminal state.
func (g *Cheating) IsOver() bool { return g.over }

// Winner returns the identity of the winning player, if any.
func (g *Cheating) Winner() (string, bool) { return g.winner, g.won }

// Candidates exposes the live candidate set for tests and diagnostics.
func (g *Cheating) Candidates() []string {
	out := make([]string, len(g.candidates))
	copy(out, g.candidates)
	return out
}

func winningKey() string {
	b := make([]byte, words.WordLength)
	for i := range b {
		b[i] = TokenHit[0]
	}
	return string(b)
}
