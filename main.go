// main.go
//
// CLI entrypoint. Subcommands:
//   play    play one game and print the board
//   sim     play many games and report solve statistics
//   import  seed a SQLite word table from the text lists
//
// Environment (optionally via .env):
//   LOG_LEVEL            zerolog level, default "info"
//   WORDLE_WORDS_FILE    override the embedded word list
//   WORDLE_ANSWERS_FILE  override the embedded answer list

package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/dcstats/wordle/internal/lexicon"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if len(os.Args) == 1 {
		die("specify subcommand or -h")
	}
	if os.Args[1] == "-h" {
		usages()
	}
	if f, ok := funcs[os.Args[1]]; ok {
		os.Exit(f.f(os.Args[2:]))
	}
	die("unknown subcommand")
}

func die(m string) {
	fmt.Fprintln(os.Stderr, m)
	os.Exit(1)
}

type subcommand struct {
	usage   string
	summary string
	f       func([]string) int
}

var funcs = map[string]subcommand{}

func usages() {
	fmt.Println(`wordle bot commands:`)
	keys := make([]string, len(funcs))
	i := 0
	for n := range funcs {
		keys[i] = n
		i++
	}
	sort.Strings(keys)
	for _, n := range keys {
		c := funcs[n]
		fmt.Printf("%s %s\n  %s\n", n, c.usage, c.summary)
	}
	os.Exit(0)
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// loadLexicon resolves the word source shared by play and sim: a SQLite
// file when dbPath is set, otherwise the embedded/env text lists.
func loadLexicon(variant, dbPath string) (*lexicon.Lexicon, error) {
	if dbPath == "" {
		return lexicon.Load(lexicon.Variant(variant))
	}
	db, err := lexicon.OpenDB(dbPath)
	if err != nil {
		return nil, err
	}
	defer func(db *sql.DB) { _ = db.Close() }(db)
	return lexicon.LoadDB(context.Background(), db, lexicon.Variant(variant))
}
