package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dcstats/wordle/internal/lexicon"
)

func testLexicon(t *testing.T, words ...string) *lexicon.Lexicon {
	t.Helper()
	scores := make(map[string]float64, len(words))
	for i, w := range words {
		scores[w] = float64(len(words) - i)
	}
	lex, err := lexicon.New(words, words, scores)
	require.NoError(t, err)
	return lex
}

// fixedSelector always guesses the same word, whatever the candidates.
type fixedSelector string

func (f fixedSelector) Pick([]lexicon.Entry) (string, error) { return string(f), nil }

// failingSelector simulates a collapsed candidate set.
type failingSelector struct{}

func (failingSelector) Pick([]lexicon.Entry) (string, error) { return "", ErrNoCandidates }

func TestNewSessionValidatesTarget(t *testing.T) {
	t.Parallel()
	lex := testLexicon(t, "apple", "angle", "ankle")

	_, err := NewSession(lex, Config{Answer: "angles"})
	require.ErrorIs(t, err, ErrWordLength)

	_, err = NewSession(lex, Config{Answer: "zesty"})
	require.ErrorIs(t, err, ErrNotInWordList)

	s, err := NewSession(lex, Config{Answer: "ANGLE"})
	require.NoError(t, err)
	require.Equal(t, "angle", s.Target())
}

func TestNewSessionRandomTarget(t *testing.T) {
	t.Parallel()
	lex := testLexicon(t, "apple", "angle", "ankle")
	for _, answer := range []string{"", "random"} {
		s, err := NewSession(lex, Config{Answer: answer})
		require.NoError(t, err)
		require.True(t, lex.Contains(s.Target()))
	}
}

func TestPlaySolvesSingletonLexicon(t *testing.T) {
	t.Parallel()
	lex := testLexicon(t, "angle")
	s, err := NewSession(lex, Config{Answer: "angle"})
	require.NoError(t, err)
	require.Equal(t, StateNotStarted, s.State())

	solved, err := s.Play()
	require.NoError(t, err)
	require.True(t, solved)
	require.Equal(t, 1, s.Moves())
	require.Equal(t, StateSolved, s.State())
	require.Equal(t, []string{"angle"}, s.Guesses())
	require.Len(t, s.Board(), 1)
}

func TestPlayExhaustsBudget(t *testing.T) {
	t.Parallel()
	lex := testLexicon(t, "angle", "ankle")
	s, err := NewSession(lex, Config{Answer: "angle", Selector: fixedSelector("ankle")})
	require.NoError(t, err)

	solved, err := s.Play()
	require.NoError(t, err)
	require.False(t, solved)
	require.Equal(t, MaxRounds, len(s.Guesses()))
	require.Equal(t, FailedMoves, s.Moves())
	require.Equal(t, StateExhausted, s.State())

	// the target is still admissible even after six wrong rounds
	require.Contains(t, wordsOf(s.Candidates()), "angle")
}

func TestPlayCandidatesNeverGrow(t *testing.T) {
	t.Parallel()
	lex := testLexicon(t, "apple", "angle", "ankle", "eagle", "amble", "aisle", "maple")
	s, err := NewSession(lex, Config{Answer: "angle", Selector: fixedSelector("maple")})
	require.NoError(t, err)

	full := len(s.Candidates())
	_, err = s.Play()
	require.NoError(t, err)
	require.LessOrEqual(t, len(s.Candidates()), full)
}

func TestPlayAbortsOnEmptyCandidates(t *testing.T) {
	t.Parallel()
	lex := testLexicon(t, "angle", "ankle")
	s, err := NewSession(lex, Config{Answer: "angle", Selector: failingSelector{}})
	require.NoError(t, err)

	solved, err := s.Play()
	require.ErrorIs(t, err, ErrNoCandidates)
	require.False(t, solved)
}

func TestResetRestoresInitialState(t *testing.T) {
	t.Parallel()
	lex := testLexicon(t, "angle", "ankle")
	s, err := NewSession(lex, Config{Answer: "angle", Selector: fixedSelector("ankle")})
	require.NoError(t, err)

	_, err = s.Play()
	require.NoError(t, err)
	require.Equal(t, StateExhausted, s.State())

	s.Reset()
	require.Equal(t, StateNotStarted, s.State())
	require.Empty(t, s.Guesses())
	require.Empty(t, s.Board())
	require.Equal(t, 0, s.Moves())
	require.Len(t, s.Candidates(), lex.Len())
	require.Equal(t, "angle", s.Target())
}

func TestReplayAutoResets(t *testing.T) {
	t.Parallel()
	lex := testLexicon(t, "angle")
	s, err := NewSession(lex, Config{Answer: "angle"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		solved, err := s.Play()
		require.NoError(t, err)
		require.True(t, solved)
		require.Equal(t, 1, s.Moves())
	}
}

func TestPlayWholeLexicon(t *testing.T) {
	t.Parallel()
	lex, err := lexicon.Load(lexicon.VariantNew)
	require.NoError(t, err)

	// every answer must be reachable: the evaluator/filter pairing keeps
	// the target admissible, so a session either solves or exhausts, and
	// never errors
	for _, answer := range lex.Answers() {
		s, err := NewSession(lex, Config{Answer: answer})
		require.NoError(t, err)
		solved, err := s.Play()
		require.NoError(t, err)
		if solved {
			require.GreaterOrEqual(t, s.Moves(), 1)
			require.LessOrEqual(t, s.Moves(), MaxRounds)
		} else {
			require.Equal(t, FailedMoves, s.Moves())
		}
		require.Contains(t, wordsOf(s.Candidates()), answer)
	}
}
