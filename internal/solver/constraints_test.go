package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstraintsApply(t *testing.T) {
	var c Constraints
	c.Apply(mustWord(t, "raise"), mustPattern(t, "BYBGB"))

	l, ok := c.Positional(3)
	require.True(t, ok)
	assert.Equal(t, byte('s'), l)
	_, ok = c.Positional(0)
	assert.False(t, ok)

	assert.True(t, c.Required('a'))
	assert.True(t, c.ExcludedAt('a', 1))
	assert.False(t, c.ExcludedAt('a', 2))
	assert.Equal(t, []byte("eir"), c.ExcludedLetters())
	assert.Equal(t, []byte("a"), c.RequiredLetters())
}

func TestAbsentLetterPlacedElsewhereIsNotExcluded(t *testing.T) {
	var c Constraints
	c.Apply(mustWord(t, "arena"), mustPattern(t, "GBBBB"))

	assert.False(t, c.Excluded('a'))
	assert.True(t, c.Excluded('r'))
	assert.True(t, c.Excluded('e'))
	assert.True(t, c.Excluded('n'))

	got := Filter(ParseWords([]string{"about", "adopt", "arena", "baton"}), &c)
	require.Len(t, got, 2)
	assert.Equal(t, "about", got[0].String())
	assert.Equal(t, "adopt", got[1].String())
}

func TestAbsentBeforePresentInSameGuess(t *testing.T) {
	// The absent s comes first; the present s later in the same guess must
	// still keep s out of the excluded set.
	var c Constraints
	c.Apply(mustWord(t, "sassy"), mustPattern(t, "BBYBB"))
	assert.True(t, c.Required('s'))
	assert.False(t, c.Excluded('s'))
	assert.True(t, c.ExcludedAt('s', 2))
}

func TestAbsentAfterEarlierEvidenceIsNotExcluded(t *testing.T) {
	var c Constraints
	c.Apply(mustWord(t, "crane"), mustPattern(t, "BBYBB"))
	c.Apply(mustWord(t, "llama"), mustPattern(t, "BBBBB"))
	assert.False(t, c.Excluded('a'))
	assert.True(t, c.Required('a'))
	assert.True(t, c.Excluded('l'))
}

func TestConstraintsAreComparable(t *testing.T) {
	var a, b Constraints
	assert.Equal(t, a, b)
	a.Apply(mustWord(t, "crane"), mustPattern(t, "BBYBB"))
	assert.NotEqual(t, a, b)
	b.Apply(mustWord(t, "crane"), mustPattern(t, "BBYBB"))
	assert.True(t, a == b)
}

func TestFilter(t *testing.T) {
	words := ParseWords([]string{"raise", "roast", "toast", "coast"})
	var c Constraints
	c.Apply(mustWord(t, "raise"), mustPattern(t, "BYBGB"))

	got := Filter(words, &c)
	assert.Equal(t, ParseWords([]string{"toast", "coast"}), got)
	assert.Len(t, words, 4, "input must not be modified")
	assert.Equal(t, "raise", words[0].String())

	for _, w := range got {
		assert.True(t, c.Allows(w))
	}
}

func TestFilterIsMonotonic(t *testing.T) {
	corpus := ParseWords([]string{"crane", "slate", "trace", "about", "spoil", "moist", "hoist", "joist", "foist", "point", "noise"})
	candidates := corpus
	var c Constraints
	for _, g := range []string{"crane", "spoil", "moist"} {
		guess := mustWord(t, g)
		c.Apply(guess, Match(guess, mustWord(t, "hoist")))
		next := Filter(candidates, &c)
		assert.LessOrEqual(t, len(next), len(candidates))
		candidates = next
	}
	assert.Contains(t, candidates, mustWord(t, "hoist"))
}

func TestFilterKeepsTrueAnswer(t *testing.T) {
	corpus := ParseWords([]string{"speed", "erase", "abide", "eerie", "geese", "sheep", "abbey", "babes", "ebbed", "creed"})
	for _, answer := range corpus {
		for _, guess := range corpus {
			var c Constraints
			c.Apply(guess, Match(guess, answer))
			assert.True(t, c.Allows(answer), "%s should survive guess %s", answer, guess)
		}
	}
}
