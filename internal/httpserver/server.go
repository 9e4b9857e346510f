// internal/httpserver/server.go
//
// HTTP surface of the solver.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words", "/stats", "/daily".
//   - Session endpoints: POST /sessions creates a solver session and returns a
//     bearer token bound to it; every other /sessions/{id} route requires it.
//   - Admin endpoints (X-Admin-Key, bcrypt-verified): /admin/*.
//
// Notes:
//   - Sessions live in a bounded in-memory registry; evicted sessions 404.
//   - Usage statistics are recorded by the sessions themselves through the
//     Recorder they were built with; handlers never write statistics.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/config"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/stats"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Deps are the collaborators of the server.
type Deps struct {
	Config  config.Config
	Words   words.Result
	Tracker *stats.Tracker // optional
}

// Server bundles router, session registry and dependencies.
type Server struct {
	r        *chi.Mux
	cfg      config.Config
	words    words.Result
	tracker  *stats.Tracker
	sessions *store.Sessions
	tokens   *tokenIssuer
}

// New constructs a Server, installs middleware, and registers routes.
func New(d Deps) (*Server, error) {
	s := &Server{
		r:       chi.NewRouter(),
		cfg:     d.Config,
		words:   d.Words,
		tracker: d.Tracker,
		tokens:  newTokenIssuer(d.Config.JWTSecret, d.Config.SessionTTL),
	}
	sessions, err := store.NewSessions(d.Config.MaxSessions, func() *solver.Session {
		return s.newSession(true)
	})
	if err != nil {
		return nil, err
	}
	s.sessions = sessions

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(d.Config.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","POST /sessions","/sessions/{id}/*","/stats","/daily"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"words":    len(s.words.Words),
			"source":   s.words.Source,
			"degraded": s.words.Degraded,
		})
	})

	s.mountSessions()
	s.mountDaily()
	s.r.Get("/stats", s.handleStats)
	s.mountAdmin()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s, nil
}

// newSession builds a solver session over the loaded corpus. Sessions that
// back real games report to the tracker; self-play sessions only read it.
func (s *Server) newSession(record bool) *solver.Session {
	opts := []solver.Option{
		solver.WithWeights(s.cfg.Weights),
		solver.WithStrictGuesses(s.cfg.StrictGuesses),
	}
	if s.tracker != nil {
		opts = append(opts, solver.WithUsage(s.tracker))
		if record {
			opts = append(opts, solver.WithRecorder(s.tracker))
		}
	}
	return solver.NewSession(s.words.Words, opts...)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.r.ServeHTTP(w, r) }

// handleStats returns the aggregate usage summary.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.tracker == nil {
		writeJSON(w, http.StatusOK, stats.NewUsage().Summary())
		return
	}
	writeJSON(w, http.StatusOK, s.tracker.Snapshot().Summary())
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Admin-Key")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
