package solver

import "errors"

var (
	// ErrWordLength reports a supplied or selected target of the wrong length.
	ErrWordLength = errors.New("not a 5-letter word")

	// ErrNotInWordList reports a target absent from the loaded word list.
	ErrNotInWordList = errors.New("not in the list of possible words")

	// ErrNoCandidates reports that filtering eliminated every word before the
	// target was found. With a consistent evaluator and a target drawn from
	// the lexicon this should be unreachable; hitting it means the constraint
	// rules disagree with the scoring rule.
	ErrNoCandidates = errors.New("no candidate words remain")

	// ErrLengthMismatch reports a guess/target length mismatch inside the
	// evaluator. Upstream validation should make this unreachable.
	ErrLengthMismatch = errors.New("guess and target lengths differ")
)
