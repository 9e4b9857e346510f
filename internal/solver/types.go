// internal/solver/types.go
//
// Core value types for the solving engine.
// Defines:
//   - Word:    exactly five lowercase letters a–z, immutable.
//   - Mark:    per-letter feedback (absent/present/correct).
//   - Pattern: five marks; comparable, so it is usable as a map key.
//   - Attempt: an observed (guess, pattern) pair kept in session history.
//
// Parsing helpers enforce the input contract at the boundary; everything past
// them assumes validated values.

package solver

import (
	"fmt"
	"strings"
)

// WordLen is the fixed number of letters in a word.
const WordLen = 5

// alphabetSize is the number of letters a–z.
const alphabetSize = 26

// Word is a normalized five-letter lowercase word.
type Word [WordLen]byte

// ParseWord trims and lowercases s and validates it as a Word.
func ParseWord(s string) (Word, error) {
	var w Word
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != WordLen {
		return w, fmt.Errorf("%w: word %q must be %d letters", ErrMalformedInput, s, WordLen)
	}
	for i := 0; i < WordLen; i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return w, fmt.Errorf("%w: word %q contains non-letter %q", ErrMalformedInput, s, c)
		}
		w[i] = c
	}
	return w, nil
}

// ParseWords parses every entry of list, silently skipping invalid ones and
// dropping duplicates while keeping first-occurrence order.
func ParseWords(list []string) []Word {
	seen := make(map[Word]struct{}, len(list))
	out := make([]Word, 0, len(list))
	for _, s := range list {
		w, err := ParseWord(s)
		if err != nil {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

func (w Word) String() string { return string(w[:]) }

// MarshalText encodes w as its letters.
func (w Word) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

// UnmarshalText parses a word; see ParseWord.
func (w *Word) UnmarshalText(b []byte) error {
	v, err := ParseWord(string(b))
	if err != nil {
		return err
	}
	*w = v
	return nil
}

// Contains reports whether letter c occurs anywhere in w.
func (w Word) Contains(c byte) bool {
	for i := 0; i < WordLen; i++ {
		if w[i] == c {
			return true
		}
	}
	return false
}

// idx maps a lowercase ASCII letter to 0..25.
func idx(c byte) int { return int(c - 'a') }

// Mark is the feedback for a single letter of a guess.
type Mark uint8

const (
	MarkAbsent  Mark = iota // letter does not occur (beyond the ones already marked)
	MarkPresent             // letter occurs elsewhere
	MarkCorrect             // letter is in the right position
)

// Pattern is the feedback for a whole guess.
type Pattern [WordLen]Mark

// Solved is the all-correct pattern.
var Solved = Pattern{MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect}

// patternCount is the number of distinct patterns (3^5).
const patternCount = 243

// ParsePattern accepts G/Y/B (correct/present/absent) or 2/1/0, case-insensitive.
func ParsePattern(s string) (Pattern, error) {
	var p Pattern
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != WordLen {
		return p, fmt.Errorf("%w: pattern %q must be %d symbols", ErrMalformedInput, s, WordLen)
	}
	for i := 0; i < WordLen; i++ {
		switch s[i] {
		case 'G', '2':
			p[i] = MarkCorrect
		case 'Y', '1':
			p[i] = MarkPresent
		case 'B', '0':
			p[i] = MarkAbsent
		default:
			return p, fmt.Errorf("%w: pattern %q contains illegal symbol %q", ErrMalformedInput, s, s[i])
		}
	}
	return p, nil
}

// String renders p using G/Y/B.
func (p Pattern) String() string {
	var b [WordLen]byte
	for i, m := range p {
		switch m {
		case MarkCorrect:
			b[i] = 'G'
		case MarkPresent:
			b[i] = 'Y'
		default:
			b[i] = 'B'
		}
	}
	return string(b[:])
}

// MarshalText encodes p using G/Y/B.
func (p Pattern) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText parses a pattern; see ParsePattern.
func (p *Pattern) UnmarshalText(b []byte) error {
	v, err := ParsePattern(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// IsSolved reports whether every mark is correct.
func (p Pattern) IsSolved() bool { return p == Solved }

// index encodes p in base 3, giving a dense key in [0, 243).
func (p Pattern) index() int {
	n := 0
	for _, m := range p {
		n = n*3 + int(m)
	}
	return n
}

// Attempt is one submitted guess and the feedback observed for it.
type Attempt struct {
	Guess   Word    `json:"guess"`
	Pattern Pattern `json:"pattern"`
}

func (a Attempt) String() string { return a.Guess.String() + " " + a.Pattern.String() }
