package assets

import (
	"bufio"
	"embed"
	"strconv"
	"strings"
)

//go:embed wordle.txt wordle_answers.txt wordle_old.txt wordle_answers_old.txt freq.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// List returns the words of one embedded list file, lowercased,
// comments and blank lines stripped.
func List(name string) ([]string, error) {
	return readLines(name)
}

// FreqTable parses freq.txt into word → zipf-style score.
// Malformed lines are skipped rather than failing the whole table.
func FreqTable() (map[string]float64, error) {
	lines, err := readLines("freq.txt")
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(lines))
	for _, l := range lines {
		word, rest, ok := strings.Cut(l, " ")
		if !ok {
			continue
		}
		score, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if err != nil || score <= 0 {
			continue
		}
		out[word] = score
	}
	return out, nil
}
