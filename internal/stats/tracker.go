// internal/stats/tracker.go
//
// Tracker sits between solver sessions and a Store.
// It keeps an in-memory snapshot for reads (success rates are consulted on
// every scoring pass) and forwards writes to the Store in the background.
// A failed write is logged and never surfaces to the session.

package stats

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// writeTimeout bounds a single background write.
const writeTimeout = 5 * time.Second

// Tracker implements solver.UsageSource and solver.Recorder.
type Tracker struct {
	store Store

	mu    sync.RWMutex // guards usage
	usage *Usage

	wg sync.WaitGroup // in-flight writes
}

// NewTracker loads the current snapshot from store. A load failure starts
// from empty statistics.
func NewTracker(ctx context.Context, store Store) *Tracker {
	u, err := store.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("load usage statistics, starting empty")
		u = NewUsage()
	}
	return &Tracker{store: store, usage: u}
}

// SuccessRate returns successes/total for word, ok=false if never used.
func (t *Tracker) SuccessRate(word string) (float64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ws, ok := t.usage.Words[word]
	if !ok || ws.TotalCount == 0 {
		return 0, false
	}
	return ws.SuccessRate(), true
}

// RecordAttempt counts one guess and persists it asynchronously.
func (t *Tracker) RecordAttempt(word string, success bool) {
	t.mu.Lock()
	t.usage.RecordWord(word, success)
	t.mu.Unlock()

	t.async("record word", func(ctx context.Context) error {
		return t.store.RecordWord(ctx, word, success)
	})
}

// RecordGame records a solved game and persists it asynchronously.
func (t *Tracker) RecordGame(attempts int) {
	t.mu.Lock()
	t.usage.RecordGame(attempts)
	t.mu.Unlock()

	t.async("record game", func(ctx context.Context) error {
		return t.store.RecordGame(ctx, attempts)
	})
}

func (t *Tracker) async(op string, fn func(ctx context.Context) error) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			log.Warn().Err(err).Str("op", op).Msg("persist usage statistics")
		}
	}()
}

// Snapshot returns a copy of the current statistics.
func (t *Tracker) Snapshot() *Usage {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.usage.Clone()
}

// Word returns the counters of one word.
func (t *Tracker) Word(word string) (WordStats, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ws, ok := t.usage.Words[word]
	return ws, ok
}

// Flush waits for in-flight writes.
func (t *Tracker) Flush() { t.wg.Wait() }

// Close flushes and closes the store.
func (t *Tracker) Close() error {
	t.Flush()
	return t.store.Close()
}
