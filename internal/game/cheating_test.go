// internal/game/cheating_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SMART-YANG1/wordle-assignment/internal/words"
)

func TestCheatingAvoidsWinWhileAlternativesRemain(t *testing.T) {
	vocab := words.New([]string{"apple", "grape"})
	g := NewCheating(vocab)

	res, err := g.Apply("alice", "apple")
	require.NoError(t, err)
	assert.False(t, res.Won, "host must dodge the win while grape is still consistent")
	assert.Equal(t, []string{"grape"}, g.Candidates())
	assert.Equal(t, PatternKey(Score("grape", "apple")), PatternKey(res.Tokens))
}

func TestCheatingForcedWinWhenCornered(t *testing.T) {
	vocab := words.New([]string{"apple", "grape"})
	g := NewCheating(vocab)

	_, err := g.Apply("alice", "apple")
	require.NoError(t, err)

	res, err := g.Apply("alice", "grape")
	require.NoError(t, err)
	assert.True(t, res.Won)
	assert.True(t, res.Over)
	assert.Equal(t, "OOOOO", PatternKey(res.Tokens))

	winner, won := g.Winner()
	assert.True(t, won)
	assert.Equal(t, "alice", winner)
}

func TestCheatingPicksLargestPartition(t *testing.T) {
	// Guessing "aaaaa" splits this vocabulary into a two-word bucket
	// ("bbbbb"-like misses) and smaller ones; the host must keep the largest.
	vocab := words.New([]string{"abbey", "amble", "crust", "truss", "gruff"})
	g := NewCheating(vocab)

	res, err := g.Apply("bob", "amble")
	require.NoError(t, err)
	assert.False(t, res.Won)
	// crust, truss and gruff share the all-miss pattern against "amble" and
	// form the largest non-winning partition; abbey's partition has size one.
	assert.Equal(t, "_____", PatternKey(res.Tokens))
	assert.ElementsMatch(t, []string{"crust", "truss", "gruff"}, g.Candidates())
}

// The server must never contradict its own prior feedback: after every guess,
// the reported pattern is exactly what scoring against any remaining
// candidate would produce.
func TestCheatingConsistencyProperty(t *testing.T) {
	vocab := words.New([]string{
		"apple", "grape", "mango", "peach", "lemon", "melon",
		"berry", "olive", "guava", "prune",
	})
	g := NewCheating(vocab)

	for _, guess := range []string{"apple", "lemon", "berry", "guava"} {
		res, err := g.Apply("carol", guess)
		require.NoError(t, err)
		require.NotEmpty(t, g.Candidates())
		for _, c := range g.Candidates() {
			assert.Equal(t, PatternKey(res.Tokens), PatternKey(Score(c, guess)),
				"pattern for %q inconsistent with candidate %q", guess, c)
		}
		if res.Over {
			break
		}
	}
}

func TestCheatingInvalidGuessLeavesCandidates(t *testing.T) {
	vocab := words.New([]string{"apple", "grape", "mango"})
	g := NewCheating(vocab)

	_, err := g.Apply("dave", "zzzzz")
	assert.ErrorIs(t, err, ErrNotInDict)
	assert.Len(t, g.Candidates(), 3)
}

func TestCheatingExhaustion(t *testing.T) {
	vocab := words.New([]string{
		"apple", "grape", "mango", "peach", "lemon", "melon", "berry", "olive",
	})
	g := NewCheating(vocab)

	// "apple" narrows to the {lemon, melon} bucket (the largest), "mango"
	// splits the anagrams and keeps lemon. The repeated guesses afterwards
	// can never be candidates, so the host is never cornered and the game
	// ends only by exhaustion.
	guesses := []string{"apple", "grape", "mango", "peach", "apple", "grape"}
	var last Result
	for _, guess := range guesses {
		var err error
		last, err = g.Apply("erin", guess)
		require.NoError(t, err)
		assert.False(t, last.Won)
	}
	assert.True(t, last.Over)
	assert.Zero(t, last.Remaining)
	assert.Equal(t, []string{"lemon"}, g.Candidates())

	_, err := g.Apply("erin", "berry")
	assert.ErrorIs(t, err, ErrGameOver)
}
