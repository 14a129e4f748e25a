// internal/solver/feedback.go
//
// Feedback evaluation: compare one guess against the target and produce a
// per-position Mark.
//
// The Present rule is membership-based: a non-exact letter is marked present
// whenever it occurs ANYWHERE in the target, without consuming occurrences.
// A guess placing one target letter in two wrong positions therefore marks
// both present, which overcounts relative to authentic Wordle duplicate
// handling (that would be the two-pass counting algorithm). This is the
// behavior the bot is specified to have; keep it in sync with Constraints,
// which assumes the same rule.

package solver

import (
	"fmt"
	"strings"
)

// Evaluate scores guess against target position by position.
// Pure function of its inputs; folding the result into session state is the
// caller's job.
func Evaluate(guess, target string) ([]Mark, error) {
	if len(guess) != len(target) {
		return nil, fmt.Errorf("%w: %q vs %q", ErrLengthMismatch, guess, target)
	}
	marks := make([]Mark, len(guess))
	for i := 0; i < len(guess); i++ {
		switch {
		case guess[i] == target[i]:
			marks[i] = MarkExact
		case strings.IndexByte(target, guess[i]) >= 0:
			marks[i] = MarkPresent
		default:
			marks[i] = MarkAbsent
		}
	}
	return marks, nil
}
