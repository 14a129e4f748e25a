// internal/lexicon/lexicon.go
//
// Word list and frequency management for the solver.
//
// Responsibilities:
//   - Resolve a list variant ("new"/"old") to a word-list/answer-list pair.
//   - Load lists from environment-provided files or fall back to embedded
//     defaults (see also sqlite.go for the database-backed source).
//   - Attach a zipf-style popularity score to every word.
//   - Supply utilities: Contains, ScoreOf, RandomAnswer.
//
// Word Lists:
//   - "answers": canonical solutions (exactly 5 lowercase letters).
//   - "words":   valid guesses (always includes answers).
//
// Environment variables:
//   WORDLE_WORDS_FILE=/path/to/words.txt
//   WORDLE_ANSWERS_FILE=/path/to/answers.txt
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z).
//   • Lists are normalized to lowercase and deduplicated.
//   • A Lexicon is immutable once built and safe to share across sessions.

package lexicon

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"sort"
	"strings"

	"github.com/dcstats/wordle/assets"
)

// WordLen is the fixed word length of the game.
const WordLen = 5

// defaultScore is assigned to words missing from the frequency table so
// every entry keeps a positive selection weight.
const defaultScore = 0.5

// ErrUnknownVariant reports a list variant other than "new" or "old".
var ErrUnknownVariant = errors.New("unknown list variant")

// Variant selects which word-list/answer-list pair to load.
type Variant string

const (
	VariantNew Variant = "new" // NYT-era lists
	VariantOld Variant = "old" // original Wordle site lists
)

// Entry pairs a word with its popularity score.
type Entry struct {
	Word  string
	Score float64
}

// Lexicon is the full set of legal words with popularity scores, plus the
// subset of canonical answers. Shared read-only across sessions.
type Lexicon struct {
	entries []Entry            // descending score, ties broken by word
	scores  map[string]float64 // word → score, doubles as membership set
	answers []string           // sorted ascending
}

// Load builds a Lexicon for the given variant from environment-provided
// files or the embedded defaults, scored from the embedded frequency table.
func Load(v Variant) (*Lexicon, error) {
	words, answers, err := sourceLists(v)
	if err != nil {
		return nil, err
	}
	scores, err := assets.FreqTable()
	if err != nil {
		return nil, err
	}
	return New(words, answers, scores)
}

// New assembles a Lexicon from raw lists and a score table. Words are
// normalized and deduplicated; answers are always merged into the word set.
// Words without a score entry get defaultScore.
func New(words, answers []string, scores map[string]float64) (*Lexicon, error) {
	l := &Lexicon{scores: make(map[string]float64)}

	add := func(w string) {
		w = strings.TrimSpace(strings.ToLower(w))
		if len(w) != WordLen || !isAlpha(w) {
			return
		}
		if _, ok := l.scores[w]; ok {
			return
		}
		s := scores[w]
		if s <= 0 {
			s = defaultScore
		}
		l.scores[w] = s
		l.entries = append(l.entries, Entry{Word: w, Score: s})
	}
	for _, w := range words {
		add(w)
	}
	for _, w := range answers {
		add(w)
	}
	if len(l.entries) == 0 {
		return nil, errors.New("lexicon: word list is empty")
	}

	seen := make(map[string]struct{}, len(answers))
	for _, w := range answers {
		w = strings.TrimSpace(strings.ToLower(w))
		if _, ok := l.scores[w]; !ok {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		l.answers = append(l.answers, w)
	}
	if len(l.answers) == 0 {
		return nil, errors.New("lexicon: answer list is empty")
	}
	sort.Strings(l.answers)

	sort.Slice(l.entries, func(i, j int) bool {
		if l.entries[i].Score != l.entries[j].Score {
			return l.entries[i].Score > l.entries[j].Score
		}
		return l.entries[i].Word < l.entries[j].Word
	})
	return l, nil
}

// sourceLists resolves the variant to a pair of raw lists.
//
// Resolution order:
//  1. Both WORDLE_WORDS_FILE and WORDLE_ANSWERS_FILE set → load both.
//  2. Only WORDLE_WORDS_FILE set → use it for both roles.
//  3. Neither set → embedded defaults for the variant.
func sourceLists(v Variant) (words, answers []string, err error) {
	var wordsAsset, answersAsset string
	switch v {
	case VariantNew:
		wordsAsset, answersAsset = "wordle.txt", "wordle_answers.txt"
	case VariantOld:
		wordsAsset, answersAsset = "wordle_old.txt", "wordle_answers_old.txt"
	default:
		return nil, nil, fmt.Errorf("%w: %q (use \"new\" or \"old\")", ErrUnknownVariant, v)
	}

	wordsPath := os.Getenv("WORDLE_WORDS_FILE")
	answersPath := os.Getenv("WORDLE_ANSWERS_FILE")

	switch {
	case wordsPath != "" && answersPath != "":
		if words, err = readWordFile(wordsPath); err != nil {
			return nil, nil, err
		}
		if answers, err = readWordFile(answersPath); err != nil {
			return nil, nil, err
		}
	case wordsPath != "":
		if words, err = readWordFile(wordsPath); err != nil {
			return nil, nil, err
		}
		answers = words
	default:
		if words, err = assets.List(wordsAsset); err != nil {
			return nil, nil, err
		}
		if answers, err = assets.List(answersAsset); err != nil {
			return nil, nil, err
		}
	}
	return words, answers, nil
}

// readWordFile loads one word per line from a file,
// lowercases, trims, and keeps only valid 5-letter alphabetic words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) == WordLen && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Len returns the number of words in the lexicon.
func (l *Lexicon) Len() int { return len(l.entries) }

// Contains reports whether w is a legal word.
func (l *Lexicon) Contains(w string) bool {
	_, ok := l.scores[strings.ToLower(w)]
	return ok
}

// ScoreOf returns the popularity score of w, or 0 if w is not in the lexicon.
func (l *Lexicon) ScoreOf(w string) float64 {
	return l.scores[strings.ToLower(w)]
}

// Entries returns the scored words in descending popularity order.
// The returned slice is a copy; callers may narrow it freely.
func (l *Lexicon) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Answers returns the canonical answer list, sorted ascending.
func (l *Lexicon) Answers() []string {
	out := make([]string, len(l.answers))
	copy(out, l.answers)
	return out
}

// RandomAnswer returns a cryptographically random word from the answer list.
func (l *Lexicon) RandomAnswer() string {
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(l.answers))))
	return l.answers[nBig.Int64()]
}
