package main

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

type benchOpts struct {
	Limit   int `long:"limit" description:"play only the first N corpus words"`
	Turns   int `long:"turns" default:"6" description:"guesses allowed per game"`
	Workers int `long:"workers" description:"parallel games (default: GOMAXPROCS)"`
}

// benchResult aggregates self-played games.
type benchResult struct {
	Games        int
	Solved       int
	Distribution map[int]int // attempts -> solved games
	Failed       []string
}

func (r benchResult) average() float64 {
	if r.Solved == 0 {
		return 0
	}
	sum := 0
	for n, c := range r.Distribution {
		sum += n * c
	}
	return float64(sum) / float64(r.Solved)
}

func runBench(a []string) int {
	var o benchOpts
	if _, err := flags.NewParser(&o, 0).ParseArgs(a); err != nil {
		die(fmt.Sprintf("parse: %v", err))
	}
	ctx := context.Background()
	cfg, res := loadCorpus(ctx)

	answers := solver.ParseWords(res.Words)
	if o.Limit > 0 && o.Limit < len(answers) {
		answers = answers[:o.Limit]
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}

	bar := progressbar.Default(int64(len(answers)))
	newSession := func() *solver.Session {
		return solver.NewSession(res.Words, solver.WithWeights(cfg.Weights))
	}
	r, err := bench(ctx, newSession, answers, o.Turns, o.Workers, func() { _ = bar.Add(1) })
	if err != nil {
		die(err.Error())
	}
	printBench(r)
	return 0
}

// bench self-plays every answer on workers goroutines, one session each.
func bench(ctx context.Context, newSession func() *solver.Session, answers []solver.Word, turns, workers int, tick func()) (benchResult, error) {
	r := benchResult{Distribution: make(map[int]int)}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			s := newSession()
			for i := w; i < len(answers); i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				t := solver.Play(s, answers[i], turns)
				mu.Lock()
				r.Games++
				if t.Solved {
					r.Solved++
					r.Distribution[len(t.Attempts)]++
				} else {
					r.Failed = append(r.Failed, answers[i].String())
				}
				mu.Unlock()
				if tick != nil {
					tick()
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return r, err
	}
	sort.Strings(r.Failed)
	return r, nil
}

func printBench(r benchResult) {
	fmt.Println()
	color.Green("games: %d  solved: %d  average: %.3f", r.Games, r.Solved, r.average())
	keys := make([]int, 0, len(r.Distribution))
	for n := range r.Distribution {
		keys = append(keys, n)
	}
	sort.Ints(keys)
	for _, n := range keys {
		fmt.Printf("  %d: %d\n", n, r.Distribution[n])
	}
	if len(r.Failed) > 0 {
		color.HiRed("failed (%d):", len(r.Failed))
		for _, w := range r.Failed {
			fmt.Println("\t*", w)
		}
	}
}
