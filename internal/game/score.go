// internal/game/score.go
package game

// Token is the per-letter feedback for one position of a guess, using the
// wire symbols directly: "O" hit, "?" present, "_" miss.
type Token string

const (
	TokenHit     Token = "O"
	TokenPresent Token = "?"
	TokenMiss    Token = "_"
)

// Score computes the feedback pattern for guess against answer using the
// standard two-pass algorithm. Both inputs must be lowercase alphabetic and of
// equal length; validation happens before scoring.
//
// Pass 1 marks exact matches as hits and counts the remaining (non-hit) answer
// letters. Pass 2 resolves each non-hit position to present or miss against the
// remaining counts, so repeated letters are never double counted (answer
// "apple" vs guess "pleap" yields one present per unconsumed 'p').
func Score(answer, guess string) []Token {
	n := len(guess)
	res := make([]Token, n)

	var remain [26]int
	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			res[i] = TokenHit
		} else {
			remain[answer[i]-'a']++
		}
	}
	for i := 0; i < n; i++ {
		if res[i] == TokenHit {
			continue
		}
		j := guess[i] - 'a'
		if remain[j] > 0 {
			res[i] = TokenPresent
			remain[j]--
		} else {
			res[i] = TokenMiss
		}
	}
	return res
}

// AllHit reports whether every token in the pattern is a hit.
func AllHit(tokens []Token) bool {
	for _, t := range tokens {
		if t != TokenHit {
			return false
		}
	}
	return true
}

// PatternKey serializes a pattern into its compact wire form, e.g. "O?__O".
// Used both for display and as a deterministic partition key.
func PatternKey(tokens []Token) string {
	b := make([]byte, len(tokens))
	for i, t := range tokens {
		b[i] = t[0]
	}
	return string(b)
}
