package main

import (
	"context"
	"fmt"

	"github.com/jessevdk/go-flags"

	"github.com/dcstats/wordle/internal/lexicon"
)

func init() {
	funcs["import"] = subcommand{
		`--db FILE [--variant new|old]`,
		"seed a SQLite word table from the text lists",
		func(a []string) int {
			o := struct {
				DB      string `long:"db" required:"true" description:"SQLite file to create or update"`
				Variant string `long:"variant" default:"new" description:"word list variant to import"`
			}{}
			p := flags.NewParser(&o, 0)
			if _, err := p.ParseArgs(a); err != nil {
				die(fmt.Sprintf("parse: %v", err))
			}

			v := lexicon.Variant(o.Variant)
			lex, err := lexicon.Load(v)
			if err != nil {
				die(fmt.Sprintf("load lexicon: %v", err))
			}
			db, err := lexicon.OpenDB(o.DB)
			if err != nil {
				die(fmt.Sprintf("open db: %v", err))
			}
			defer db.Close()

			if err := lexicon.Seed(context.Background(), db, v, lex); err != nil {
				die(fmt.Sprintf("seed: %v", err))
			}
			fmt.Printf("imported %d words (%q variant) into %s\n", lex.Len(), o.Variant, o.DB)
			return 0
		},
	}
}
