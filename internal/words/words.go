// internal/words/words.go
//
// Word-list collaborator for the game engine. Supplies a finite, immutable set
// of lowercase alphabetic words of fixed length at startup. Lists can be loaded
// from a file (one word per line) or fall back to a small embedded default so
// the server runs unconfigured.
package words

import (
	"bufio"
	"crypto/rand"
	_ "embed"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
)

// WordLength is the fixed letter count for every word in a list.
const WordLength = 5

//go:embed default_words.txt
var embeddedWords string

// List is an immutable set of permitted words. The zero value is not usable;
// construct with New, Load or Default.
type List struct {
	words []string
	set   map[string]struct{}
}

// New builds a List from the given words, keeping only lowercase alphabetic
// words of WordLength letters. Input order is preserved for deterministic
// iteration in tests.
func New(ws []string) *List {
	l := &List{set: make(map[string]struct{}, len(ws))}
	for _, w := range ws {
		w = normalize(w)
		if !valid(w) {
			continue
		}
		if _, dup := l.set[w]; dup {
			continue
		}
		l.words = append(l.words, w)
		l.set[w] = struct{}{}
	}
	return l
}

// Load reads one word per line from path, filtering to valid entries.
// Returns an error if the file cannot be read or yields no words.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	var ws []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		ws = append(ws, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	l := New(ws)
	if l.Len() == 0 {
		return nil, errors.New("word list is empty")
	}
	return l, nil
}

// Default returns the embedded fallback list.
func Default() *List {
	return New(strings.Split(embeddedWords, "\n"))
}

// Contains reports whether w is a permitted word.
func (l *List) Contains(w string) bool {
	_, ok := l.set[normalize(w)]
	return ok
}

// Random draws a uniformly random word from the list.
func (l *List) Random() string {
	if len(l.words) == 0 {
		return ""
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	if err != nil {
		// crypto/rand failure: fall back to the first word rather than panic.
		return l.words[0]
	}
	return l.words[n.Int64()]
}

// Words returns a copy of the word slice.
func (l *List) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

// Len reports the number of permitted words.
func (l *List) Len() int {
	return len(l.words)
}

// normalize lowercases and trims a raw line, stripping a UTF-8 BOM if present.
func normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(w, "\uFEFF")))
}

func valid(w string) bool {
	if len(w) != WordLength {
		return false
	}
	for _, r := range w {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
