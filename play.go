package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/dcstats/wordle/internal/board"
	"github.com/dcstats/wordle/internal/solver"
)

func init() {
	funcs["play"] = subcommand{
		`[--answer WORD] [--variant new|old] [--db FILE] [--seed N] [--ansi] [--daily]`,
		"play one game and print the board",
		func(a []string) int {
			o := struct {
				Answer  string `long:"answer" default:"random" description:"target word, or 'random' to draw from the answer list"`
				Variant string `long:"variant" default:"new" description:"word list variant"`
				DB      string `long:"db" description:"load word lists from this SQLite file"`
				Seed    int64  `long:"seed" description:"seed for the weighted guess draw (0 = unseeded)"`
				ANSI    bool   `long:"ansi" description:"colored letters instead of emoji tiles"`
				Daily   bool   `long:"daily" description:"use today's deterministic answer"`
				Salt    string `long:"salt" default:"wordle" description:"salt for --daily answer derivation"`
			}{}
			p := flags.NewParser(&o, 0)
			if _, err := p.ParseArgs(a); err != nil {
				die(fmt.Sprintf("parse: %v", err))
			}

			lex, err := loadLexicon(o.Variant, o.DB)
			if err != nil {
				die(fmt.Sprintf("load lexicon: %v", err))
			}

			answer := o.Answer
			if o.Daily {
				answer = lex.DailyAnswer(time.Now(), o.Salt)
			}
			var rng *rand.Rand
			if o.Seed != 0 {
				rng = rand.New(rand.NewSource(o.Seed))
			}

			sess, err := solver.NewSession(lex, solver.Config{Answer: answer, Rng: rng})
			if err != nil {
				die(fmt.Sprintf("new session: %v", err))
			}
			solved, err := sess.Play()
			if err != nil {
				die(fmt.Sprintf("play: %v", err))
			}

			if o.ANSI {
				fmt.Print(board.RenderANSI(sess.Guesses(), sess.Board()))
			} else {
				fmt.Print(board.Render(sess.Guesses(), sess.Board()))
			}
			if solved {
				fmt.Printf("solved %q in %d\n", sess.Target(), sess.Moves())
			} else {
				fmt.Printf("out of guesses, answer was %q\n", sess.Target())
			}
			return 0
		},
	}
}
