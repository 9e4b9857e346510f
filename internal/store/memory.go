// internal/store/memory.go
//
// In-memory registry of live solver sessions for the HTTP surface.
//
// Characteristics:
//   - Bounded: least recently used sessions are evicted past the size limit.
//   - IDs are KSUIDs (time-ordered, URL-safe).
//   - Each entry carries its own mutex; a solver.Session is single-owner and
//     must only be touched through Entry.Do.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/ksuid"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// ErrNotFound is returned for unknown or evicted session IDs.
var ErrNotFound = errors.New("session not found")

// Entry is one stored session.
type Entry struct {
	ID        string
	CreatedAt time.Time

	mu      sync.Mutex // guards session
	session *solver.Session
}

// Do runs fn with exclusive access to the session.
func (e *Entry) Do(fn func(s *solver.Session)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.session)
}

// Factory builds a fresh session.
type Factory func() *solver.Session

// Sessions is a bounded, concurrency-safe session registry.
type Sessions struct {
	cache   *lru.Cache // ID -> *Entry
	factory Factory
}

// NewSessions constructs a registry holding at most size sessions.
func NewSessions(size int, factory Factory) (*Sessions, error) {
	cache, err := lru.NewWithEvict(size, func(key, value interface{}) {
		log.Debug().Str("session", key.(string)).Msg("session evicted")
	})
	if err != nil {
		return nil, err
	}
	return &Sessions{cache: cache, factory: factory}, nil
}

// Create stores a new session and returns its entry.
func (s *Sessions) Create(ctx context.Context) (*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e := &Entry{
		ID:        ksuid.New().String(),
		CreatedAt: time.Now().UTC(),
		session:   s.factory(),
	}
	s.cache.Add(e.ID, e)
	return e, nil
}

// Get looks up a session by ID and marks it recently used.
func (s *Sessions) Get(ctx context.Context, id string) (*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if v, ok := s.cache.Get(id); ok {
		return v.(*Entry), nil
	}
	return nil, ErrNotFound
}

// Delete removes a session. Unknown IDs return ErrNotFound.
func (s *Sessions) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.cache.Contains(id) {
		return ErrNotFound
	}
	s.cache.Remove(id)
	return nil
}

// Len reports the number of stored sessions.
func (s *Sessions) Len() int { return s.cache.Len() }
