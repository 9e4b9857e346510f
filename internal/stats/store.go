// internal/stats/store.go
//
// Persistence boundary for usage statistics.
// Implementations: in-memory (memory.go) and SQLite (sqlite.go).

package stats

import (
	"context"
	"sync"
)

// Store persists usage statistics.
type Store interface {
	// Load returns the full snapshot. Callers own the result.
	Load(ctx context.Context) (*Usage, error)

	// RecordWord counts one guess of word.
	RecordWord(ctx context.Context, word string, success bool) error

	// RecordGame records a solved game and its attempt count.
	RecordGame(ctx context.Context, attempts int) error

	// Close releases resources.
	Close() error
}

// memory is a map-backed Store. State is lost when the process restarts.
type memory struct {
	mu    sync.RWMutex // guards usage
	usage *Usage
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{usage: NewUsage()}
}

func (m *memory) Load(ctx context.Context) (*Usage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.usage.Clone(), nil
}

func (m *memory) RecordWord(ctx context.Context, word string, success bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.usage.RecordWord(word, success)
	return nil
}

func (m *memory) RecordGame(ctx context.Context, attempts int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.usage.RecordGame(attempts)
	return nil
}

func (m *memory) Close() error { return nil }
