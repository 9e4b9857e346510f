package stats

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageRingIsBounded(t *testing.T) {
	u := NewUsage()
	for i := 1; i <= MaxCompletions+20; i++ {
		u.RecordGame(i)
	}
	assert.Equal(t, MaxCompletions+20, u.TotalGames)
	require.Len(t, u.Completions, MaxCompletions)
	assert.Equal(t, 21, u.Completions[0])
	assert.Equal(t, MaxCompletions+20, u.Completions[MaxCompletions-1])
}

func TestUsageAverageAttempts(t *testing.T) {
	u := NewUsage()
	assert.Zero(t, u.AverageAttempts())
	u.RecordGame(3)
	u.RecordGame(4)
	assert.InDelta(t, 3.5, u.AverageAttempts(), 1e-9)
	assert.Equal(t, Summary{TotalGames: 2, RecentGames: 2, AverageAttempts: 3.5}, u.Summary())
}

func TestUsageRecordWord(t *testing.T) {
	u := NewUsage()
	u.RecordWord("raise", false)
	u.RecordWord("raise", true)
	ws := u.Words["raise"]
	assert.Equal(t, WordStats{Word: "raise", SuccessCount: 1, TotalCount: 2, UsageCount: 2}, ws)
	assert.InDelta(t, 0.5, ws.SuccessRate(), 1e-9)
	assert.Zero(t, WordStats{}.SuccessRate())
}

func TestUsageCloneIsDeep(t *testing.T) {
	u := NewUsage()
	u.RecordWord("raise", true)
	u.RecordGame(2)
	c := u.Clone()
	c.RecordWord("raise", false)
	c.Completions[0] = 9
	assert.Equal(t, 1, u.Words["raise"].TotalCount)
	assert.Equal(t, 2, u.Completions[0])
}

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	u, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, u.Words)
	assert.Zero(t, u.TotalGames)

	require.NoError(t, s.RecordWord(ctx, "raise", false))
	require.NoError(t, s.RecordWord(ctx, "coast", true))
	require.NoError(t, s.RecordWord(ctx, "coast", true))
	for i := 1; i <= MaxCompletions+5; i++ {
		require.NoError(t, s.RecordGame(ctx, i%6+1))
	}

	u, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, WordStats{Word: "raise", TotalCount: 1, UsageCount: 1}, u.Words["raise"])
	assert.Equal(t, WordStats{Word: "coast", SuccessCount: 2, TotalCount: 2, UsageCount: 2}, u.Words["coast"])
	assert.Equal(t, MaxCompletions+5, u.TotalGames)
	require.Len(t, u.Completions, MaxCompletions)
	assert.Equal(t, 6%6+1, u.Completions[0])
	assert.Equal(t, (MaxCompletions+5)%6+1, u.Completions[MaxCompletions-1])
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	exerciseStore(t, s)
}

func TestSQLiteStore(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "data", "stats.db")
	s, err := OpenSQLite(dsn)
	require.NoError(t, err)
	exerciseStore(t, s)
	require.NoError(t, s.Close())

	// Reopening keeps data and does not reapply migrations.
	s, err = OpenSQLite(dsn)
	require.NoError(t, err)
	defer s.Close()
	u, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, MaxCompletions+5, u.TotalGames)
}

type failingStore struct {
	mu     sync.Mutex
	writes int
}

func (f *failingStore) Load(context.Context) (*Usage, error) { return nil, errors.New("down") }
func (f *failingStore) RecordWord(context.Context, string, bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	return errors.New("down")
}
func (f *failingStore) RecordGame(context.Context, int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	return errors.New("down")
}
func (f *failingStore) Close() error { return nil }

func TestTrackerPersistsInBackground(t *testing.T) {
	s := NewMemoryStore()
	tr := NewTracker(context.Background(), s)

	_, ok := tr.SuccessRate("coast")
	assert.False(t, ok)

	tr.RecordAttempt("raise", false)
	tr.RecordAttempt("coast", true)
	tr.RecordGame(2)

	rate, ok := tr.SuccessRate("coast")
	require.True(t, ok)
	assert.InDelta(t, 1.0, rate, 1e-9)

	tr.Flush()
	u, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, u.TotalGames)
	assert.Equal(t, 1, u.Words["raise"].TotalCount)

	ws, ok := tr.Word("coast")
	require.True(t, ok)
	assert.Equal(t, 1, ws.SuccessCount)
	assert.Equal(t, 1, tr.Snapshot().TotalGames)
	require.NoError(t, tr.Close())
}

func TestTrackerSurvivesStoreFailures(t *testing.T) {
	s := &failingStore{}
	tr := NewTracker(context.Background(), s)
	tr.RecordAttempt("raise", true)
	tr.RecordGame(1)
	tr.Flush()

	assert.Equal(t, 2, s.writes)
	rate, ok := tr.SuccessRate("raise")
	require.True(t, ok)
	assert.InDelta(t, 1.0, rate, 1e-9)
}
