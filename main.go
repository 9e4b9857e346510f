// main.go
//
// HTTP server entry point for the Wordle solver.
//   - Loads .env (if present) and the environment configuration.
//   - Loads the word corpus (degrades to the embedded list on failure).
//   - Opens usage statistics (SQLite when STATS_DSN is set, else memory).
//   - Serves the solver API until interrupted, then flushes statistics.

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/config"
	"github.com/robalobadob/wordle/apps/solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/solver/internal/stats"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loadCtx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	urls, files := cfg.WordSources()
	res := words.Load(loadCtx, words.FromSources(urls, files))
	cancel()
	if res.Degraded {
		log.Warn().Err(res.Err).Int("words", len(res.Words)).Msg("running in offline mode")
	}

	st, err := openStats(cfg.StatsDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open statistics store")
	}
	tracker := stats.NewTracker(ctx, st)
	defer func() {
		if err := tracker.Close(); err != nil {
			log.Warn().Err(err).Msg("close statistics store")
		}
	}()

	srv, err := httpserver.New(httpserver.Deps{Config: cfg, Words: res, Tracker: tracker})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build server")
	}

	hs := &http.Server{Addr: ":" + cfg.Port, Handler: srv}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = hs.Shutdown(shutdownCtx)
	}()

	log.Info().Str("port", cfg.Port).Int("words", len(res.Words)).Str("source", res.Source).Msg("starting solver server")
	if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}

// openStats picks the statistics backend.
func openStats(dsn string) (stats.Store, error) {
	if dsn == "" {
		return stats.NewMemoryStore(), nil
	}
	return stats.OpenSQLite(dsn)
}
