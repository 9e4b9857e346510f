package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"

	"github.com/robalobadob/wordle/apps/solver/internal/daily"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

type dailyOpts struct {
	Date string `long:"date" description:"YYYY-MM-DD (default: today, UTC)"`
	Salt string `long:"salt" description:"overrides DAILY_SALT"`
}

func runDaily(a []string) int {
	var o dailyOpts
	if _, err := flags.NewParser(&o, 0).ParseArgs(a); err != nil {
		die(fmt.Sprintf("parse: %v", err))
	}
	date := time.Now()
	if o.Date != "" {
		d, err := time.Parse("2006-01-02", o.Date)
		if err != nil {
			die(fmt.Sprintf("parse date: %v", err))
		}
		date = d
	}

	cfg, res := loadCorpus(context.Background())
	salt := cfg.DailySalt
	if o.Salt != "" {
		salt = o.Salt
	}
	p, ok := daily.For(date, salt, res.Words)
	if !ok {
		die("no words loaded")
	}
	answer, err := solver.ParseWord(p.Answer)
	if err != nil {
		die(err.Error())
	}

	t := solver.Play(solver.NewSession(res.Words, solver.WithWeights(cfg.Weights)), answer, 6)
	color.HiYellow("daily %s (#%d)", p.Date, p.Index)
	for _, at := range t.Attempts {
		fmt.Println(tiles(at))
	}
	if t.Solved {
		color.Green("solved in %d", len(t.Attempts))
	} else {
		color.HiRed("not solved; answer was %s", p.Answer)
	}
	return 0
}
