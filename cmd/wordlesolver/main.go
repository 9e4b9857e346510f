// cmd/wordlesolver
//
// Command-line front end for the solver.
//
//	wordlesolver solve [--strict]             interactive assistant
//	wordlesolver bench [--limit=N] [--turns=6] [--workers=N]
//	wordlesolver daily [--date=YYYY-MM-DD] [--salt=...]
//
// Word sources, statistics and solver weights come from the same environment
// variables as the server (see internal/config).
package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/config"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	if len(os.Args) == 1 {
		die("specify subcommand or -h")
	}
	if os.Args[1] == "-h" || os.Args[1] == "--help" {
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

func usages() {
	fmt.Println(`wordlesolver commands:`)
	keys := make([]string, 0, len(funcs))
	for n := range funcs {
		keys = append(keys, n)
	}
	sort.Strings(keys)
	for _, n := range keys {
		c := funcs[n]
		fmt.Printf("%s %s\n  %s\n", n, c.usage, c.summary)
	}
	os.Exit(0)
}

var funcs = map[string]subcommand{
	"solve": {
		"[--strict] [--verbose]",
		"Suggests guesses; enter \"<guess> <pattern>\" (pattern G/Y/B or 2/1/0), undo, reset, list or quit",
		runSolve,
	},
	"bench": {
		"[--limit=N] [--turns=6] [--workers=N]",
		"Self-plays every corpus word (or the first N) and prints the attempt distribution",
		runBench,
	},
	"daily": {
		"[--date=YYYY-MM-DD] [--salt=<salt>]",
		"Self-plays the deterministic answer of a day",
		runDaily,
	},
}

// loadCorpus resolves the environment and loads the word list.
func loadCorpus(ctx context.Context) (config.Config, words.Result) {
	cfg := config.FromEnv()
	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()
	urls, files := cfg.WordSources()
	res := words.Load(ctx, words.FromSources(urls, files))
	if res.Degraded {
		fmt.Fprintln(os.Stderr, "word list unavailable, using built-in list (offline mode)")
	}
	return cfg, res
}
