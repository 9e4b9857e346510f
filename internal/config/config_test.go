package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

func TestDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "MAX_SESSIONS", "SESSION_TOKEN_TTL", "STRICT_GUESSES", "SOLVER_LARGE_SAMPLE", "STATS_DSN"} {
		t.Setenv(k, "")
	}
	c := FromEnv()
	assert.Equal(t, "5175", c.Port)
	assert.Equal(t, 1024, c.MaxSessions)
	assert.Equal(t, 24*time.Hour, c.SessionTTL)
	assert.False(t, c.StrictGuesses)
	assert.Empty(t, c.StatsDSN)
	assert.Equal(t, solver.DefaultWeights().LargeSample, c.Weights.LargeSample)
}

func TestOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MAX_SESSIONS", "16")
	t.Setenv("SESSION_TOKEN_TTL", "90m")
	t.Setenv("STRICT_GUESSES", "true")
	t.Setenv("SOLVER_SMALL_THRESHOLD", "20")
	t.Setenv("SOLVER_LARGE_ENTROPY_BLEND", "0.5")
	t.Setenv("WORDS_ANSWERS_URL", "http://example.test/a.txt")

	c := FromEnv()
	assert.Equal(t, "9000", c.Port)
	assert.Equal(t, 16, c.MaxSessions)
	assert.Equal(t, 90*time.Minute, c.SessionTTL)
	assert.True(t, c.StrictGuesses)
	assert.Equal(t, 20, c.Weights.SmallThreshold)
	assert.InDelta(t, 0.5, c.Weights.LargeEntropyBlend, 1e-9)

	urls, _ := c.WordSources()
	assert.Equal(t, "http://example.test/a.txt", urls[0])
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("MAX_SESSIONS", "lots")
	t.Setenv("SESSION_TOKEN_TTL", "-1h")
	t.Setenv("STRICT_GUESSES", "maybe")
	t.Setenv("SOLVER_MEDIUM_SAMPLE", "0")
	t.Setenv("SOLVER_SUCCESS_WEIGHT", "abc")

	c := FromEnv()
	d := solver.DefaultWeights()
	assert.Equal(t, 1024, c.MaxSessions)
	assert.Equal(t, 24*time.Hour, c.SessionTTL)
	assert.False(t, c.StrictGuesses)
	assert.Equal(t, d.MediumSample, c.Weights.MediumSample)
	assert.Equal(t, d.SuccessRateWeight, c.Weights.SuccessRateWeight)
}
