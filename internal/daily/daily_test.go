package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	d := time.Date(2026, 3, 2, 5, 0, 0, 0, loc) // 2026-03-01T19:00Z
	assert.Equal(t, "2026-03-01", DateKey(d))
}

func TestWordIndexIsDeterministic(t *testing.T) {
	d := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	a := WordIndex(d, "salt", 2315)
	assert.Equal(t, a, WordIndex(d.Add(time.Hour), "salt", 2315))
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 2315)
	assert.Zero(t, WordIndex(d, "salt", 0))
}

func TestWordIndexVariesWithSaltAndDate(t *testing.T) {
	d := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for i := 0; i < 30; i++ {
		seen[WordIndex(d.AddDate(0, 0, i), "salt", 1<<20)] = true
	}
	assert.Greater(t, len(seen), 25)
}

func TestFor(t *testing.T) {
	d := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	answers := []string{"raise", "coast", "toast"}
	p, ok := For(d, "salt", answers)
	require.True(t, ok)
	assert.Equal(t, "2026-10-19", p.Date)
	assert.Equal(t, answers[p.Index], p.Answer)

	_, ok = For(d, "salt", nil)
	assert.False(t, ok)
}
