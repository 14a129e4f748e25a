// internal/solver/session.go
//
// Game session orchestration for one bot play-through.
// Responsibilities:
//   - Validate the target (length, word-list membership) at construction.
//   - Run the guess → evaluate → absorb → filter round loop, capped at
//     MaxRounds guesses.
//   - Track state transitions: not started → in progress → solved/exhausted.
//   - Reset cleanly between plays, reusing the same target and lexicon.
//
// Notes:
//   - The lexicon is shared read-only; all mutable state lives here.
//   - Sessions are single-threaded; run concurrent games on separate
//     Session values.

package solver

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/dcstats/wordle/internal/lexicon"
)

const (
	// MaxRounds is the guess budget per game.
	MaxRounds = 6

	// FailedMoves is the Moves() sentinel for a game that used the whole
	// budget without solving, distinct from any winning count in [1,6].
	FailedMoves = MaxRounds + 1
)

// RandomAnswer is the Config.Answer sentinel requesting a random target
// from the lexicon's answer list.
const RandomAnswer = "random"

// Config carries session construction options.
type Config struct {
	// Answer is the literal target word, or ""/RandomAnswer for a random
	// pick from the answer list.
	Answer string

	// Selector overrides the guessing strategy. Defaults to the
	// score-weighted random selector.
	Selector Selector

	// Rng seeds the default selector; ignored when Selector is set.
	// Nil uses the global math/rand source.
	Rng *rand.Rand
}

// Session is one bot play-through against a fixed target.
type Session struct {
	lex      *lexicon.Lexicon
	target   string
	selector Selector

	candidates  []lexicon.Entry
	constraints *Constraints
	guesses     []string
	board       [][]Mark
	played      bool
	solved      bool
}

// NewSession validates cfg against lex and returns a ready session.
// Construction errors (ErrWordLength, ErrNotInWordList) leave no session
// behind.
func NewSession(lex *lexicon.Lexicon, cfg Config) (*Session, error) {
	target := strings.ToLower(strings.TrimSpace(cfg.Answer))
	if target == "" || target == RandomAnswer {
		target = lex.RandomAnswer()
	}
	if len(target) != lexicon.WordLen {
		return nil, fmt.Errorf("%w: %q", ErrWordLength, target)
	}
	if !lex.Contains(target) {
		return nil, fmt.Errorf("%w: %q", ErrNotInWordList, target)
	}

	sel := cfg.Selector
	if sel == nil {
		sel = NewWeightedSelector(cfg.Rng)
	}
	s := &Session{lex: lex, target: target, selector: sel}
	s.Reset()
	return s, nil
}

// Play runs rounds until the target is guessed or the budget is spent,
// returning whether the puzzle was solved. Calling Play on a finished
// session resets it first and plays again with the same target.
// The only runtime failure is ErrNoCandidates from the selector, which
// aborts the game immediately.
func (s *Session) Play() (bool, error) {
	if s.played {
		s.Reset()
	}

	for round := 1; round <= MaxRounds; round++ {
		guess, err := s.selector.Pick(s.candidates)
		if err != nil {
			return false, err
		}
		s.guesses = append(s.guesses, guess)

		marks, err := Evaluate(guess, s.target)
		if err != nil {
			return false, err
		}
		s.constraints.Absorb(guess, marks)
		s.candidates = s.constraints.Filter(s.candidates)
		s.board = append(s.board, marks)

		log.Debug().
			Int("round", round).
			Str("guess", guess).
			Int("candidates", len(s.candidates)).
			Msg("round played")

		if guess == s.target {
			s.solved = true
			break
		}
	}
	s.played = true
	return s.solved, nil
}

// Reset clears all per-game state: full candidate set, empty constraints,
// empty history. Target and lexicon are kept.
func (s *Session) Reset() {
	s.candidates = s.lex.Entries()
	s.constraints = NewConstraints()
	s.guesses = nil
	s.board = nil
	s.played = false
	s.solved = false
}

// Moves returns the number of guesses made, or FailedMoves (7) if the
// whole budget was spent without solving.
func (s *Session) Moves() int {
	if !s.solved && len(s.guesses) == MaxRounds {
		return FailedMoves
	}
	return len(s.guesses)
}

// State reports the coarse lifecycle state.
func (s *Session) State() State {
	switch {
	case s.solved:
		return StateSolved
	case s.played:
		return StateExhausted
	case len(s.guesses) > 0:
		return StateInProgress
	default:
		return StateNotStarted
	}
}

// Target returns the secret word.
func (s *Session) Target() string { return s.target }

// Solved reports whether the last play found the target.
func (s *Session) Solved() bool { return s.solved }

// Guesses returns the guess history in order.
func (s *Session) Guesses() []string {
	out := make([]string, len(s.guesses))
	copy(out, s.guesses)
	return out
}

// Board returns the per-round marks in guess order, for rendering.
func (s *Session) Board() [][]Mark {
	out := make([][]Mark, len(s.board))
	for i, row := range s.board {
		out[i] = append([]Mark(nil), row...)
	}
	return out
}

// Candidates returns the words still consistent with all feedback so far.
func (s *Session) Candidates() []lexicon.Entry {
	out := make([]lexicon.Entry, len(s.candidates))
	copy(out, s.candidates)
	return out
}
