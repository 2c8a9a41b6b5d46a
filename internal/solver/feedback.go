// Package solver implements the feedback, filtering and guess-selection engine
// for Wordle-family puzzles. It has no I/O: word lists come in, suggestions and
// narrowed states come out.
package solver

import (
	"strings"
)

// Symbol is one position of a feedback pattern.
type Symbol uint8

const (
	Absent  Symbol = iota // letter not in the answer (grey)
	Present               // letter in the answer, elsewhere (yellow)
	Correct               // letter in this position (green)
)

// Valid reports whether s is one of the three feedback symbols.
func (s Symbol) Valid() bool {
	return s <= Correct
}

// Rune returns the 0/1/2 digit used for user-facing patterns.
func (s Symbol) Rune() rune {
	return '0' + rune(s)
}

// String returns the name of the symbol.
func (s Symbol) String() string {
	switch s {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	default:
		return "invalid"
	}
}

// Pattern is the per-position feedback for one guess.
type Pattern []Symbol

// String encodes the pattern as digits, e.g. "01112".
func (p Pattern) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, s := range p {
		b.WriteRune(s.Rune())
	}
	return b.String()
}

// Solved reports whether every position is Correct.
func (p Pattern) Solved() bool {
	if len(p) == 0 {
		return false
	}
	for _, s := range p {
		if s != Correct {
			return false
		}
	}
	return true
}

// Equal reports whether two patterns are identical.
func (p Pattern) Equal(q Pattern) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// code packs the pattern into a base-3 integer. Patterns of equal length map
// to distinct codes.
func (p Pattern) code() uint64 {
	var c uint64
	for _, s := range p {
		c = c*3 + uint64(s)
	}
	return c
}

// AllCorrect returns the winning pattern for a word length.
func AllCorrect(wordLength int) Pattern {
	p := make(Pattern, wordLength)
	for i := range p {
		p[i] = Correct
	}
	return p
}

// ParsePattern validates a user-supplied feedback string of 0 (absent),
// 1 (present) and 2 (correct) digits against the word length.
func ParsePattern(raw string, wordLength int) (Pattern, error) {
	runes := []rune(raw)
	if len(runes) != wordLength {
		return nil, newError(KindInvalidPattern, "%q has length %d, want %d", raw, len(runes), wordLength)
	}
	p := make(Pattern, wordLength)
	for i, r := range runes {
		switch r {
		case '0':
			p[i] = Absent
		case '1':
			p[i] = Present
		case '2':
			p[i] = Correct
		default:
			return nil, newError(KindInvalidPattern, "%q contains invalid character %q", raw, r)
		}
	}
	return p, nil
}

// ComputeFeedback returns the pattern a player would see after guessing guess
// when the hidden answer is word.
//
// Exact matches are marked first. The unmatched answer symbols then form a
// multiset that the remaining guess positions draw from left to right, so a
// repeated guess letter is marked Present at most as many times as it occurs
// unmatched in the answer.
//
// Both words are expected to have the same length; the pattern always has
// len(guess) positions and answer positions past the end count as mismatches.
func ComputeFeedback(word, guess string) Pattern {
	w, g := []rune(word), []rune(guess)
	p := make(Pattern, len(g))
	feedbackInto(p, w, g)
	return p
}

// feedbackInto writes the pattern for (w, g) into dst, which must have
// len(g) positions. It does not allocate for words of up to 16 symbols.
func feedbackInto(dst Pattern, w, g []rune) {
	var buf [16]rune
	remaining := buf[:0]
	for i := range g {
		if i < len(w) && w[i] == g[i] {
			dst[i] = Correct
			continue
		}
		dst[i] = Absent
		if i < len(w) {
			remaining = append(remaining, w[i])
		}
	}
	for i := range g {
		if dst[i] == Correct {
			continue
		}
		for j, r := range remaining {
			if r == g[i] {
				dst[i] = Present
				last := len(remaining) - 1
				remaining[j] = remaining[last]
				remaining = remaining[:last]
				break
			}
		}
	}
}

// feedbackCode is feedbackInto followed by Pattern.code without the
// intermediate slice.
func feedbackCode(w, g []rune) uint64 {
	var buf [16]Symbol
	var p Pattern
	if len(g) <= len(buf) {
		p = buf[:len(g)]
	} else {
		p = make(Pattern, len(g))
	}
	feedbackInto(p, w, g)
	return p.code()
}
