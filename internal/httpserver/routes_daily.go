// internal/httpserver/routes_daily.go
//
// GET /daily → today's deterministic answer and the solver's self-played
// transcript against it. The answer is picked by HMAC(salt, date) over the
// loaded corpus, so every instance agrees without shared state.
// Transcripts are cached per date; self-play never records statistics.

package httpserver

import (
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/daily"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// maxDailyTurns bounds self-play.
const maxDailyTurns = 10

type dailyRes struct {
	daily.Puzzle
	Transcript solver.Transcript `json:"transcript"`
}

type dailyCache struct {
	mu    sync.Mutex // guards byDay
	byDay map[string]dailyRes
}

func (s *Server) mountDaily() {
	c := &dailyCache{byDay: make(map[string]dailyRes)}
	s.r.Get("/daily", func(w http.ResponseWriter, r *http.Request) {
		res, ok := s.playDaily(c, time.Now())
		if !ok {
			writeError(w, http.StatusServiceUnavailable, "no_words")
			return
		}
		writeJSON(w, http.StatusOK, res)
	})
}

// playDaily returns the cached result for date's puzzle, computing it once.
func (s *Server) playDaily(c *dailyCache, date time.Time) (dailyRes, bool) {
	p, ok := daily.For(date, s.cfg.DailySalt, s.words.Words)
	if !ok {
		return dailyRes{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if res, ok := c.byDay[p.Date]; ok {
		return res, true
	}

	answer, err := solver.ParseWord(p.Answer)
	if err != nil {
		return dailyRes{}, false
	}
	t := solver.Play(s.newSession(false), answer, maxDailyTurns)
	log.Info().Str("date", p.Date).Bool("solved", t.Solved).Int("attempts", len(t.Attempts)).Msg("daily self-play")

	res := dailyRes{Puzzle: p, Transcript: t}
	// keep only today's entry
	c.byDay = map[string]dailyRes{p.Date: res}
	return res, true
}
