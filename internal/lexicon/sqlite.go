// internal/lexicon/sqlite.go
//
// SQLite-backed word list source.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, FKs).
//   - Loading a Lexicon from the words table for one variant.
//   - Seeding the words table from text lists ("import" subcommand).
//
// The table is the persisted form of the read-only word lists; the solver
// never writes to it during play.

package lexicon

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// OpenDB opens (and creates if missing) a SQLite database file.
// Ensures the parent directory exists for relative DSNs (e.g. ./data/words.db)
// and configures busy timeout, WAL journaling, and foreign keys.
func OpenDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// LoadDB builds a Lexicon from the words table for one variant.
// A variant with no rows is a configuration error, same as an unknown
// variant name on the embedded lists.
func LoadDB(ctx context.Context, db *sql.DB, v Variant) (*Lexicon, error) {
	rows, err := db.QueryContext(ctx, `
        SELECT word, score, answer
        FROM words
        WHERE variant = ?
        ORDER BY word`, string(v),
	)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	var words, answers []string
	scores := make(map[string]float64)
	for rows.Next() {
		var (
			word     string
			score    float64
			isAnswer bool
		)
		if err := rows.Scan(&word, &score, &isAnswer); err != nil {
			return nil, err
		}
		words = append(words, word)
		scores[word] = score
		if isAnswer {
			answers = append(answers, word)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: no words stored for %q", ErrUnknownVariant, v)
	}
	return New(words, answers, scores)
}

// Seed writes a Lexicon into the words table for one variant.
// Idempotent: existing rows are left alone (INSERT OR IGNORE).
func Seed(ctx context.Context, db *sql.DB, v Variant, l *Lexicon) error {
	if _, err := db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS words (
            word    TEXT NOT NULL,
            variant TEXT NOT NULL,
            score   REAL NOT NULL,
            answer  INTEGER NOT NULL DEFAULT 0,
            PRIMARY KEY (word, variant)
        );`); err != nil {
		return fmt.Errorf("create words: %w", err)
	}

	answers := make(map[string]struct{}, len(l.answers))
	for _, w := range l.answers {
		answers[w] = struct{}{}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, e := range l.entries {
		_, isAnswer := answers[e.Word]
		if _, err := tx.ExecContext(ctx, `
            INSERT OR IGNORE INTO words(word, variant, score, answer)
            VALUES (?, ?, ?, ?)`,
			e.Word, string(v), e.Score, isAnswer,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert %s: %w", e.Word, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	log.Info().Str("variant", string(v)).Int("words", len(l.entries)).Msg("seeded word table")
	return nil
}
