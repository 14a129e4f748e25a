package main

import (
	"fmt"
	"sync"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"github.com/dcstats/wordle/internal/solver"
	"github.com/dcstats/wordle/internal/stats"
)

func init() {
	funcs["sim"] = subcommand{
		`[--games N] [--workers N] [--answer WORD] [--variant new|old] [--db FILE]`,
		"play many games and report solve statistics",
		func(a []string) int {
			o := struct {
				Games   int    `long:"games" default:"100" description:"number of games to play"`
				Workers int    `long:"workers" default:"4" description:"concurrent games"`
				Answer  string `long:"answer" default:"random" description:"fixed target, or 'random' per game"`
				Variant string `long:"variant" default:"new" description:"word list variant"`
				DB      string `long:"db" description:"load word lists from this SQLite file"`
			}{}
			p := flags.NewParser(&o, 0)
			if _, err := p.ParseArgs(a); err != nil {
				die(fmt.Sprintf("parse: %v", err))
			}
			if o.Games <= 0 || o.Workers <= 0 {
				die("--games and --workers must be positive")
			}

			lex, err := loadLexicon(o.Variant, o.DB)
			if err != nil {
				die(fmt.Sprintf("load lexicon: %v", err))
			}

			// Each goroutine runs its own sessions; only the recorder
			// is shared.
			rec := stats.NewRecorder()
			jobs := make(chan struct{})
			var wg sync.WaitGroup
			for w := 0; w < o.Workers; w++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for range jobs {
						sess, err := solver.NewSession(lex, solver.Config{Answer: o.Answer})
						if err != nil {
							log.Error().Err(err).Msg("session construction failed")
							continue
						}
						solved, err := sess.Play()
						if err != nil {
							log.Error().Err(err).Str("target", sess.Target()).Msg("game aborted")
							continue
						}
						rec.Record(sess.Moves(), solved)
					}
				}()
			}
			for i := 0; i < o.Games; i++ {
				jobs <- struct{}{}
			}
			close(jobs)
			wg.Wait()

			s := rec.Summary()
			fmt.Printf("games:      %d\n", s.Games)
			fmt.Printf("solved:     %d (%.1f%%)\n", s.Solved, s.SolveRate*100)
			fmt.Printf("avg moves:  %.2f (solved games)\n", s.AvgMoves)
			for m := 1; m <= solver.FailedMoves; m++ {
				if n := s.Moves[m]; n > 0 {
					label := fmt.Sprintf("%d", m)
					if m == solver.FailedMoves {
						label = "X"
					}
					fmt.Printf("  %s: %d\n", label, n)
				}
			}
			return 0
		},
	}
}
