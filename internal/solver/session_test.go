package solver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	word    string
	success bool
}

type fakeRecorder struct {
	attempts []recorded
	games    []int
}

func (f *fakeRecorder) RecordAttempt(word string, success bool) {
	f.attempts = append(f.attempts, recorded{word, success})
}

func (f *fakeRecorder) RecordGame(attempts int) { f.games = append(f.games, attempts) }

var sampleCorpus = []string{"raise", "roast", "toast", "coast"}

func TestSessionScenario(t *testing.T) {
	s := NewSession(sampleCorpus)
	assert.Equal(t, StatusFresh, s.Status())
	assert.Equal(t, "raise", s.Suggestion().Word.String())

	status, err := s.SubmitAttempt("RAISE", "BYBGB")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, status)
	assert.Equal(t, ParseWords([]string{"toast", "coast"}), s.Candidates(0))
	assert.Equal(t, 2, s.EliminatedCount())

	_, err = s.SubmitAttempt("toast", "BGGGG")
	require.NoError(t, err)
	// t is placed at position 4, so the absent t at position 0 does not
	// exclude it globally and toast stays consistent with the rules.
	assert.Equal(t, ParseWords([]string{"toast", "coast"}), s.Candidates(0))
	assert.Contains(t, []string{"toast", "coast"}, s.Suggestion().Word.String())
	assert.Len(t, s.History(), 2)
}

func TestSessionCandidatesSatisfyConstraints(t *testing.T) {
	s := NewSession(sampleCorpus)
	_, err := s.SubmitAttempt("raise", "BYBGB")
	require.NoError(t, err)
	c := s.Constraints()
	for _, w := range s.Candidates(0) {
		assert.True(t, c.Allows(w))
	}
}

func TestSessionSolved(t *testing.T) {
	rec := &fakeRecorder{}
	s := NewSession(sampleCorpus, WithRecorder(rec))
	_, err := s.SubmitAttempt("raise", "BYBGB")
	require.NoError(t, err)
	before := s.Candidates(0)

	status, err := s.SubmitAttempt("coast", "GGGGG")
	require.NoError(t, err)
	assert.Equal(t, StatusSolved, status)
	assert.Equal(t, StatusSolved, s.Status())
	assert.Equal(t, before, s.Candidates(0), "candidates untouched")
	assert.Len(t, s.History(), 1)
	assert.Equal(t, "coast", s.Suggestion().Word.String())

	solved, ok := s.SolvedBy()
	require.True(t, ok)
	assert.Equal(t, "coast", solved.Guess.String())

	_, err = s.SubmitAttempt("toast", "BGGGG")
	assert.ErrorIs(t, err, ErrSolved)

	assert.Equal(t, []recorded{{"raise", false}, {"coast", true}}, rec.attempts)
	assert.Equal(t, []int{2}, rec.games)

	require.True(t, s.Undo())
	assert.Equal(t, StatusInProgress, s.Status())
	assert.Len(t, s.History(), 1)
}

func TestSessionUndoIsInverse(t *testing.T) {
	corpus := []string{"crane", "slate", "trace", "about", "spoil", "moist", "hoist", "joist", "foist", "point", "noise", "arena", "abide", "speed", "erase"}
	steps := []struct{ guess, pattern string }{
		{"crane", "BBBBB"},
		{"spoil", "YBGYB"},
		{"arena", "GBBBB"},
		{"speed", "YBYYB"},
		{"moist", "BGGGG"},
	}
	s := NewSession(corpus)
	for _, st := range steps {
		beforeCandidates := s.Candidates(0)
		beforeConstraints := s.Constraints()
		beforeHistory := s.History()

		_, err := s.SubmitAttempt(st.guess, st.pattern)
		require.NoError(t, err)
		assert.LessOrEqual(t, s.CandidateCount(), len(beforeCandidates))
		require.True(t, s.Undo())

		assert.Equal(t, beforeCandidates, s.Candidates(0), st.guess)
		assert.Equal(t, beforeConstraints, s.Constraints(), st.guess)
		assert.Equal(t, beforeHistory, s.History(), st.guess)

		_, err = s.SubmitAttempt(st.guess, st.pattern)
		require.NoError(t, err)
	}

	for s.Undo() {
	}
	assert.Equal(t, StatusFresh, s.Status())
	assert.Equal(t, len(corpus), s.CandidateCount())
	assert.Equal(t, Constraints{}, s.Constraints())
}

func TestSessionUndoOnEmptyHistory(t *testing.T) {
	s := NewSession(sampleCorpus)
	assert.False(t, s.Undo())
	assert.Equal(t, StatusFresh, s.Status())
	assert.Equal(t, 4, s.CandidateCount())
}

func TestSessionReset(t *testing.T) {
	s := NewSession(sampleCorpus)
	_, err := s.SubmitAttempt("raise", "BYBGB")
	require.NoError(t, err)
	_, err = s.SubmitAttempt("coast", "GGGGG")
	require.NoError(t, err)

	s.Reset()
	assert.Equal(t, StatusFresh, s.Status())
	assert.Empty(t, s.History())
	assert.Equal(t, 4, s.CandidateCount())
	assert.Zero(t, s.EliminatedCount())
	assert.Equal(t, Constraints{}, s.Constraints())
}

func TestSessionEmptyCandidateFallback(t *testing.T) {
	s := NewSession([]string{"tonal", "about", "cloud", "pinky", "raise"})
	_, err := s.SubmitAttempt("raise", "BBBBB")
	require.NoError(t, err)
	snapshot := s.Candidates(0)
	require.NotEmpty(t, snapshot)

	// a is excluded, yet this claims an a at position 3.
	_, err = s.SubmitAttempt("tonal", "GGGGB")
	require.NoError(t, err)
	assert.Zero(t, s.CandidateCount())

	sg := s.Suggestion()
	assert.Equal(t, StrategyFallback, sg.Strategy)
	assert.Contains(t, snapshot, sg.Word)
}

func TestSessionRejectsMalformedInput(t *testing.T) {
	s := NewSession(sampleCorpus)
	cases := []struct{ guess, pattern string }{
		{"rais", "BBBBB"},
		{"raise!", "BBBBB"},
		{"ra1se", "BBBBB"},
		{"raise", "BBBB"},
		{"raise", "BBXBB"},
	}
	for _, c := range cases {
		_, err := s.SubmitAttempt(c.guess, c.pattern)
		assert.ErrorIs(t, err, ErrMalformedInput, "%s %s", c.guess, c.pattern)
	}
	assert.Equal(t, StatusFresh, s.Status())
	assert.Empty(t, s.History())
	assert.Equal(t, 4, s.CandidateCount())
}

func TestSessionStrictGuesses(t *testing.T) {
	s := NewSession(sampleCorpus, WithStrictGuesses(true))
	_, err := s.SubmitAttempt("crane", "BYBBB")
	assert.ErrorIs(t, err, ErrUnknownWord)
	assert.Empty(t, s.History())

	lenient := NewSession(sampleCorpus)
	_, err = lenient.SubmitAttempt("crane", "BBYBB")
	require.NoError(t, err)
	assert.Len(t, lenient.History(), 1)
}

func TestSessionNeverHasEmptyCorpus(t *testing.T) {
	s := NewSession([]string{"", "toolong", "12345"})
	assert.Equal(t, len(Starters), s.CorpusSize())
	assert.Equal(t, "soare", s.Suggestion().Word.String())
}

func TestSessionDeduplicatesCorpus(t *testing.T) {
	s := NewSession([]string{"raise", "RAISE", "coast", "raise"})
	assert.Equal(t, 2, s.CorpusSize())
	assert.True(t, s.Contains(mustWord(t, "coast")))
}

func TestSuggestionIsBoundedOnLargeCorpus(t *testing.T) {
	words := syntheticWords(t, 5000)
	corpus := make([]string, len(words))
	for i, w := range words {
		corpus[i] = w.String()
	}
	s := NewSession(corpus)
	_, err := s.SubmitAttempt("zzzzz", "BBBBB")
	require.NoError(t, err)
	require.Greater(t, s.CandidateCount(), 1000)

	start := time.Now()
	sg := s.Suggestion()
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, StrategyEntropy, sg.Strategy)
}

func TestPlay(t *testing.T) {
	s := NewSession(sampleCorpus)
	tr := Play(s, mustWord(t, "coast"), 6)
	require.True(t, tr.Solved)
	require.Len(t, tr.Attempts, 2)
	assert.Equal(t, "raise BYBGB", tr.Attempts[0].String())
	assert.Equal(t, "coast GGGGG", tr.Attempts[1].String())
	assert.Equal(t, StatusSolved, s.Status())
}
