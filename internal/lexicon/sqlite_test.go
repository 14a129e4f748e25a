package lexicon

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSQLiteRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	src, err := New(
		[]string{"apple", "angle", "ankle", "eagle"},
		[]string{"angle", "ankle"},
		map[string]float64{"apple": 4.7, "angle": 4.5},
	)
	require.NoError(t, err)

	db, err := OpenDB(filepath.Join(t.TempDir(), "words.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Seed(ctx, db, VariantNew, src))
	// seeding twice is a no-op
	require.NoError(t, Seed(ctx, db, VariantNew, src))

	got, err := LoadDB(ctx, db, VariantNew)
	require.NoError(t, err)
	require.Equal(t, src.Len(), got.Len())
	require.ElementsMatch(t, src.Answers(), got.Answers())
	for _, e := range src.Entries() {
		require.Equal(t, e.Score, got.ScoreOf(e.Word), e.Word)
	}
}

func TestLoadDBMissingVariant(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	src, err := New([]string{"apple"}, []string{"apple"}, nil)
	require.NoError(t, err)

	db, err := OpenDB(filepath.Join(t.TempDir(), "words.db"))
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, Seed(ctx, db, VariantNew, src))

	_, err = LoadDB(ctx, db, VariantOld)
	require.ErrorIs(t, err, ErrUnknownVariant)
}
