// internal/httpserver/routes_sessions.go
//
// Solver session endpoints:
//   - POST   /sessions                        → create, returns id + token
//   - GET    /sessions/{id}                   → state + suggestion
//   - GET    /sessions/{id}/suggestion        → next word to guess
//   - GET    /sessions/{id}/candidates?limit= → remaining words, corpus order
//   - GET    /sessions/{id}/history           → submitted attempts
//   - POST   /sessions/{id}/attempts          → submit {guess, pattern}
//   - POST   /sessions/{id}/undo              → revert the last attempt
//   - POST   /sessions/{id}/reset             → back to a fresh session
//   - DELETE /sessions/{id}                   → discard
//
// Every route except creation requires the bearer token issued for the session.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

const (
	defaultCandidateLimit = 50
	maxCandidateLimit     = 500
)

// sessionView is the JSON shape of a session's state.
type sessionView struct {
	ID              string          `json:"sessionId"`
	Status          string          `json:"status"`
	Suggestion      string          `json:"suggestion"`
	Strategy        string          `json:"strategy"`
	CandidateCount  int             `json:"candidateCount"`
	EliminatedCount int             `json:"eliminatedCount"`
	CorpusSize      int             `json:"corpusSize"`
	Attempts        int             `json:"attempts"`
	SolvedBy        *solver.Attempt `json:"solvedBy,omitempty"`
}

func viewOf(id string, s *solver.Session) sessionView {
	sg := s.Suggestion()
	v := sessionView{
		ID:              id,
		Status:          s.Status().String(),
		Suggestion:      sg.Word.String(),
		Strategy:        string(sg.Strategy),
		CandidateCount:  s.CandidateCount(),
		EliminatedCount: s.EliminatedCount(),
		CorpusSize:      s.CorpusSize(),
		Attempts:        len(s.History()),
	}
	if a, ok := s.SolvedBy(); ok {
		v.SolvedBy = &a
	}
	return v
}

func (s *Server) mountSessions() {
	s.r.Post("/sessions", s.handleCreateSession)
	s.r.Route("/sessions/{id}", func(r chi.Router) {
		r.Use(s.requireSession)
		r.Get("/", s.handleGetSession)
		r.Delete("/", s.handleDeleteSession)
		r.Get("/suggestion", s.handleSuggestion)
		r.Get("/candidates", s.handleCandidates)
		r.Get("/history", s.handleHistory)
		r.Post("/attempts", s.handleAttempt)
		r.Post("/undo", s.handleUndo)
		r.Post("/reset", s.handleReset)
	})
}

type createRes struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	sessionView
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	e, err := s.sessions.Create(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "create_failed")
		return
	}
	tok, exp, err := s.tokens.sign(e.ID, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("sign session token")
		_ = s.sessions.Delete(r.Context(), e.ID)
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	var v sessionView
	e.Do(func(sess *solver.Session) { v = viewOf(e.ID, sess) })
	log.Info().Str("session", e.ID).Int("corpus", v.CorpusSize).Msg("session created")
	writeJSON(w, http.StatusCreated, createRes{Token: tok, ExpiresAt: exp, sessionView: v})
}

// entry resolves {id}; it writes a 404 and returns nil when missing.
func (s *Server) entry(w http.ResponseWriter, r *http.Request) *store.Entry {
	e, err := s.sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return nil
	}
	return e
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	e := s.entry(w, r)
	if e == nil {
		return
	}
	var v sessionView
	e.Do(func(sess *solver.Session) { v = viewOf(e.ID, sess) })
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleSuggestion(w http.ResponseWriter, r *http.Request) {
	e := s.entry(w, r)
	if e == nil {
		return
	}
	var sg solver.Suggestion
	e.Do(func(sess *solver.Session) { sg = sess.Suggestion() })
	writeJSON(w, http.StatusOK, map[string]string{
		"suggestion": sg.Word.String(),
		"strategy":   string(sg.Strategy),
	})
}

func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	e := s.entry(w, r)
	if e == nil {
		return
	}
	limit := defaultCandidateLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = min(n, maxCandidateLimit)
	}
	var (
		total int
		list  []solver.Word
	)
	e.Do(func(sess *solver.Session) {
		total = sess.CandidateCount()
		list = sess.Candidates(limit)
	})
	writeJSON(w, http.StatusOK, map[string]any{
		"count": total,
		"words": list,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	e := s.entry(w, r)
	if e == nil {
		return
	}
	var (
		history []solver.Attempt
		solved  *solver.Attempt
	)
	e.Do(func(sess *solver.Session) {
		history = sess.History()
		if a, ok := sess.SolvedBy(); ok {
			solved = &a
		}
	})
	if history == nil {
		history = []solver.Attempt{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"attempts": history,
		"solvedBy": solved,
	})
}

type attemptReq struct {
	Guess   string `json:"guess"`
	Pattern string `json:"pattern"`
}

func (s *Server) handleAttempt(w http.ResponseWriter, r *http.Request) {
	var req attemptReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	e := s.entry(w, r)
	if e == nil {
		return
	}
	var (
		v   sessionView
		err error
	)
	e.Do(func(sess *solver.Session) {
		_, err = sess.SubmitAttempt(req.Guess, req.Pattern)
		v = viewOf(e.ID, sess)
	})
	switch {
	case errors.Is(err, solver.ErrSolved):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, solver.ErrMalformedInput), errors.Is(err, solver.ErrUnknownWord):
		writeError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, v)
	}
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	e := s.entry(w, r)
	if e == nil {
		return
	}
	var (
		undone bool
		v      sessionView
	)
	e.Do(func(sess *solver.Session) {
		undone = sess.Undo()
		v = viewOf(e.ID, sess)
	})
	writeJSON(w, http.StatusOK, struct {
		Undone bool `json:"undone"`
		sessionView
	}{undone, v})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	e := s.entry(w, r)
	if e == nil {
		return
	}
	var v sessionView
	e.Do(func(sess *solver.Session) {
		sess.Reset()
		v = viewOf(e.ID, sess)
	})
	writeJSON(w, http.StatusOK, v)
}
