// internal/solver/selector.go
//
// Guess selection: weighted random draw over the surviving candidates,
// weighted by popularity score.

package solver

import (
	"math/rand"

	"github.com/dcstats/wordle/internal/lexicon"
)

// Selector picks the next guess from the current candidate set.
// Implementations must fail with ErrNoCandidates on an empty set.
type Selector interface {
	Pick(candidates []lexicon.Entry) (string, error)
}

// weightedSelector draws candidates with probability proportional to score.
type weightedSelector struct {
	rng *rand.Rand
}

// NewWeightedSelector returns the default score-weighted Selector.
// A nil rng falls back to the global math/rand source.
func NewWeightedSelector(rng *rand.Rand) Selector {
	return &weightedSelector{rng: rng}
}

func (s *weightedSelector) Pick(candidates []lexicon.Entry) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}
	var total float64
	for _, e := range candidates {
		total += e.Score
	}

	// Equivalent to normalizing scores to sum to 1 and drawing from the
	// resulting distribution.
	r := s.float64() * total
	for _, e := range candidates {
		r -= e.Score
		if r < 0 {
			return e.Word, nil
		}
	}
	// Floating-point underflow on the running subtraction; the last
	// candidate owns the remaining mass.
	return candidates[len(candidates)-1].Word, nil
}

func (s *weightedSelector) float64() float64 {
	if s.rng != nil {
		return s.rng.Float64()
	}
	return rand.Float64()
}
