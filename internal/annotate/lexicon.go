package annotate

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Lexicon is the set of weapon terms used for detection. Terms are stored
// lowercase so lookups are case-insensitive. Read-only after construction.
type Lexicon struct {
	terms map[string]struct{}
}

// NewLexicon builds a lexicon from the given terms. Blank terms are skipped,
// everything else is lowercased and trimmed.
func NewLexicon(terms ...string) *Lexicon {
	l := &Lexicon{terms: make(map[string]struct{}, len(terms))}
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			l.terms[t] = struct{}{}
		}
	}
	return l
}

// LoadLexicon reads a newline-delimited term file into a Lexicon.
// A missing or unreadable file is not fatal: the returned lexicon is empty
// and usable (detection finds nothing), with the error reported so the
// caller can log it.
func LoadLexicon(path string) (*Lexicon, error) {
	lexicon := NewLexicon()

	f, err := os.Open(path)
	if err != nil {
		return lexicon, fmt.Errorf("open weapons list: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		term := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if term != "" {
			lexicon.terms[term] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return NewLexicon(), fmt.Errorf("read weapons list: %w", err)
	}

	return lexicon, nil
}

// Contains reports whether the lowercase term is in the lexicon.
func (l *Lexicon) Contains(term string) bool {
	_, ok := l.terms[term]
	return ok
}

// Len returns the number of loaded terms.
func (l *Lexicon) Len() int {
	return len(l.terms)
}

// Terms returns all terms in sorted order.
func (l *Lexicon) Terms() []string {
	out := make([]string, 0, len(l.terms))
	for t := range l.terms {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
