package board

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/dcstats/wordle/internal/solver"
)

func TestRenderEmoji(t *testing.T) {
	t.Parallel()
	guesses := []string{"apple", "angle"}
	marks := [][]solver.Mark{
		{solver.MarkExact, solver.MarkAbsent, solver.MarkAbsent, solver.MarkExact, solver.MarkExact},
		{solver.MarkExact, solver.MarkExact, solver.MarkExact, solver.MarkExact, solver.MarkExact},
	}

	got := Render(guesses, marks)
	want := "🟩⬜⬜🟩🟩 | apple\n🟩🟩🟩🟩🟩 | angle\n"
	require.Equal(t, want, got)
}

func TestRenderANSIPlainWhenColorDisabled(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	guesses := []string{"slate"}
	marks := [][]solver.Mark{
		{solver.MarkExact, solver.MarkPresent, solver.MarkAbsent, solver.MarkAbsent, solver.MarkExact},
	}
	got := RenderANSI(guesses, marks)
	require.Equal(t, "SLATE\n", got)
	require.False(t, strings.Contains(got, "\x1b["))
}
