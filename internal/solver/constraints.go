// internal/solver/constraints.go
//
// Constraint accumulation and candidate filtering.
//
// Constraints grows monotonically: feedback only ever adds rules, never
// removes them, so the candidate set can only shrink round over round.
// Filtering is one combined predicate applied in a single traversal rather
// than one rebuild per rule.

package solver

import (
	"strings"

	"github.com/dcstats/wordle/internal/lexicon"
)

// Constraints is the cumulative rule set derived from feedback:
// letters fixed to a position, letters known present but forbidden at a
// position, and letters excluded everywhere.
type Constraints struct {
	fixed     map[int]byte
	misplaced map[int]map[byte]struct{}
	excluded  map[byte]struct{}
}

// NewConstraints returns an empty rule set.
func NewConstraints() *Constraints {
	return &Constraints{
		fixed:     make(map[int]byte),
		misplaced: make(map[int]map[byte]struct{}),
		excluded:  make(map[byte]struct{}),
	}
}

// Absorb folds one round of feedback into the rule set, in place.
// Idempotent: absorbing the same (guess, marks) twice adds nothing new.
func (c *Constraints) Absorb(guess string, marks []Mark) {
	for i, m := range marks {
		if i >= len(guess) {
			break
		}
		letter := guess[i]
		switch m {
		case MarkExact:
			c.fixed[i] = letter
		case MarkPresent:
			set := c.misplaced[i]
			if set == nil {
				set = make(map[byte]struct{})
				c.misplaced[i] = set
			}
			set[letter] = struct{}{}
		case MarkAbsent:
			c.excluded[letter] = struct{}{}
		}
	}
}

// Match reports whether w satisfies every accumulated rule:
//  1. every fixed position holds its required letter,
//  2. every misplaced letter occurs in w but not at its forbidden position,
//  3. no excluded letter occurs in w.
func (c *Constraints) Match(w string) bool {
	for pos, letter := range c.fixed {
		if pos >= len(w) || w[pos] != letter {
			return false
		}
	}
	for pos, set := range c.misplaced {
		for letter := range set {
			if strings.IndexByte(w, letter) < 0 {
				return false
			}
			if pos < len(w) && w[pos] == letter {
				return false
			}
		}
	}
	for letter := range c.excluded {
		if strings.IndexByte(w, letter) >= 0 {
			return false
		}
	}
	return true
}

// Filter narrows candidates to the entries matching every rule.
// The result is a fresh slice, a subset of the input with scores carried
// over unchanged; the input is left untouched.
func (c *Constraints) Filter(candidates []lexicon.Entry) []lexicon.Entry {
	out := make([]lexicon.Entry, 0, len(candidates))
	for _, e := range candidates {
		if c.Match(e.Word) {
			out = append(out, e)
		}
	}
	return out
}
