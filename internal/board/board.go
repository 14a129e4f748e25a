// internal/board/board.go
//
// Console rendering of a finished (or in-progress) board: one line per
// round, tiles first, then the guessed word. Two styles:
//   - Render: emoji squares (🟩🟨⬜), shareable anywhere.
//   - RenderANSI: colored letters for terminals.

package board

import (
	"strings"

	"github.com/fatih/color"

	"github.com/dcstats/wordle/internal/solver"
)

const (
	greenSquare  = "\U0001F7E9"
	yellowSquare = "\U0001F7E8"
	graySquare   = "\U00002B1C"
)

// Render returns the emoji board, e.g.
//
//	🟩⬜⬜🟩🟩 | apple
//	🟩🟩🟩🟩🟩 | angle
func Render(guesses []string, marks [][]solver.Mark) string {
	var b strings.Builder
	for i, row := range marks {
		for _, m := range row {
			b.WriteString(square(m))
		}
		if i < len(guesses) {
			b.WriteString(" | ")
			b.WriteString(guesses[i])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderANSI returns the board with each guessed letter colored by its mark:
// green for exact, yellow for present, plain for absent.
func RenderANSI(guesses []string, marks [][]solver.Mark) string {
	green := color.New(color.BgGreen, color.FgBlack)
	yellow := color.New(color.BgYellow, color.FgBlack)

	var b strings.Builder
	for i, row := range marks {
		if i >= len(guesses) {
			break
		}
		word := guesses[i]
		for j, m := range row {
			if j >= len(word) {
				break
			}
			letter := strings.ToUpper(string(word[j]))
			switch m {
			case solver.MarkExact:
				b.WriteString(green.Sprint(letter))
			case solver.MarkPresent:
				b.WriteString(yellow.Sprint(letter))
			default:
				b.WriteString(letter)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func square(m solver.Mark) string {
	switch m {
	case solver.MarkExact:
		return greenSquare
	case solver.MarkPresent:
		return yellowSquare
	default:
		return graySquare
	}
}
