// Package words loads the candidate word list and picks secret words from it.
package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// DefaultFile is the word list name looked up by DefaultPath.
const DefaultFile = "words.txt"

// ErrEmptySource is returned when no candidate words could be loaded.
var ErrEmptySource = errors.New("words: no candidate words available")

// Rand is the randomness a List needs to pick a word. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// List is an immutable set of candidate secret words.
type List struct {
	words   []string
	Skipped int // non-blank lines rejected because they contained non-letters
}

// Load reads a word list from path, one word per line.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmptySource, err)
	}
	defer f.Close()

	list, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// Parse reads a word list from r. Lines are trimmed and lowercased, blank
// lines are ignored and lines containing anything but letters are skipped.
func Parse(r io.Reader) (*List, error) {
	list := &List{}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" {
			continue
		}
		if !isWord(w) {
			list.Skipped++
			continue
		}
		list.words = append(list.words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmptySource, err)
	}
	if len(list.words) == 0 {
		return nil, ErrEmptySource
	}
	return list, nil
}

// New builds a List from words already in memory.
func New(words ...string) (*List, error) {
	return Parse(strings.NewReader(strings.Join(words, "\n")))
}

// Len returns the number of candidate words.
func (l *List) Len() int { return len(l.words) }

// Words returns a copy of the candidate words in file order.
func (l *List) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

// Pick returns one word chosen uniformly at random.
func (l *List) Pick(rng Rand) string {
	return l.words[rng.IntN(len(l.words))]
}

// DefaultPath returns words.txt next to the running executable, or in the
// working directory when the executable's directory has none.
func DefaultPath() string {
	if exe, err := os.Executable(); err == nil {
		path := filepath.Join(filepath.Dir(exe), DefaultFile)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return DefaultFile
}

func isWord(w string) bool {
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
