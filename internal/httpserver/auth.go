// internal/httpserver/auth.go
//
// Session tokens and admin guard.
//   - Session tokens are HS256 JWTs whose "sid" claim names the one session
//     they unlock. They are handed out by POST /sessions.
//   - Admin requests carry X-Admin-Key, checked against a bcrypt hash.

package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// sessionClaims binds a token to one session.
type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

type tokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func newTokenIssuer(secret string, ttl time.Duration) *tokenIssuer {
	return &tokenIssuer{secret: []byte(secret), ttl: ttl}
}

// sign creates a token for session id.
func (t *tokenIssuer) sign(id string, now time.Time) (string, time.Time, error) {
	exp := now.Add(t.ttl)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		SessionID: id,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	ss, err := tok.SignedString(t.secret)
	return ss, exp, err
}

// parse validates a token and returns the session it unlocks.
func (t *tokenIssuer) parse(raw string) (string, error) {
	var claims sessionClaims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !tok.Valid || claims.SessionID == "" {
		return "", errors.New("invalid token")
	}
	return claims.SessionID, nil
}

// bearer extracts a bearer token from the Authorization header.
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

// requireSession enforces a valid token whose sid matches the {id} URL param.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := bearer(r)
		if raw == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		sid, err := s.tokens.parse(raw)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		if sid != chi.URLParam(r, "id") {
			writeError(w, http.StatusForbidden, "Forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAdmin checks X-Admin-Key against the configured bcrypt hash.
func requireAdmin(hash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-Admin-Key")
			if key == "" || bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) != nil {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// mountAdmin registers /admin routes when an admin key hash is configured.
func (s *Server) mountAdmin() {
	if s.cfg.AdminKeyHash == "" {
		return
	}
	s.r.Route("/admin", func(r chi.Router) {
		r.Use(requireAdmin(s.cfg.AdminKeyHash))
		r.Get("/stats/words", s.handleWordStats)
	})
}

// handleWordStats returns per-word counters for ?word=.
func (s *Server) handleWordStats(w http.ResponseWriter, r *http.Request) {
	word := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("word")))
	if word == "" {
		writeError(w, http.StatusBadRequest, "missing word")
		return
	}
	if s.tracker == nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	ws, ok := s.tracker.Word(word)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"word":         ws.Word,
		"successCount": ws.SuccessCount,
		"totalCount":   ws.TotalCount,
		"usageCount":   ws.UsageCount,
		"successRate":  ws.SuccessRate(),
	})
}
