package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/stats"
)

type solveOpts struct {
	Strict  bool `long:"strict" description:"reject guesses outside the corpus"`
	Verbose bool `long:"verbose" short:"v" description:"debug logging"`
}

func runSolve(a []string) int {
	var o solveOpts
	if _, err := flags.NewParser(&o, 0).ParseArgs(a); err != nil {
		die(fmt.Sprintf("parse: %v", err))
	}
	if o.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx := context.Background()
	cfg, res := loadCorpus(ctx)
	st, err := openStats(cfg.StatsDSN)
	if err != nil {
		log.Warn().Err(err).Msg("statistics disabled")
		st = stats.NewMemoryStore()
	}
	tracker := stats.NewTracker(ctx, st)
	defer tracker.Close()

	s := solver.NewSession(res.Words,
		solver.WithWeights(cfg.Weights),
		solver.WithUsage(tracker),
		solver.WithRecorder(tracker),
		solver.WithStrictGuesses(o.Strict || cfg.StrictGuesses),
	)
	color.Green("%d words loaded", s.CorpusSize())
	solveLoop(os.Stdin, os.Stdout, s)
	return 0
}

// solveLoop reads commands from in until EOF or "quit".
func solveLoop(in io.Reader, out io.Writer, s *solver.Session) {
	prompt := func() {
		sg := s.Suggestion()
		fmt.Fprintf(out, "%s %s (%s)  candidates: %s\n> ",
			color.HiYellowString("suggestion:"),
			color.HiGreenString(strings.ToUpper(sg.Word.String())),
			sg.Strategy,
			color.HiGreenString("%d", s.CandidateCount()))
	}

	sc := bufio.NewScanner(in)
	prompt()
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		switch {
		case len(fields) == 0:
		case fields[0] == "quit" || fields[0] == "exit":
			return
		case fields[0] == "undo":
			if !s.Undo() {
				fmt.Fprintln(out, color.HiRedString("nothing to undo"))
			}
		case fields[0] == "reset":
			s.Reset()
		case fields[0] == "list":
			fmt.Fprintln(out, wordList(s.Candidates(100), 10))
		case len(fields) == 2:
			status, err := s.SubmitAttempt(fields[0], fields[1])
			if err != nil {
				fmt.Fprintln(out, color.HiRedString("%v", err))
				break
			}
			for _, a := range s.History() {
				fmt.Fprintln(out, tiles(a))
			}
			if a, ok := s.SolvedBy(); ok {
				fmt.Fprintln(out, tiles(a))
			}
			if status == solver.StatusSolved {
				color.New(color.FgHiGreen).Fprintf(out, "solved in %d\n", len(s.History())+1)
			} else if s.CandidateCount() == 0 {
				fmt.Fprintln(out, color.HiRedString("no word matches every clue; check the feedback or undo"))
			}
		default:
			fmt.Fprintln(out, color.HiRedString("enter \"<guess> <pattern>\", undo, reset, list or quit"))
		}
		prompt()
	}
}

// openStats picks the statistics backend.
func openStats(dsn string) (stats.Store, error) {
	if dsn == "" {
		return stats.NewMemoryStore(), nil
	}
	return stats.OpenSQLite(dsn)
}
