// internal/solver/session.go
//
// SolverSession: owns the attempt history and keeps candidates and
// constraints consistent with it.
//
// State transitions:
//   - Fresh → InProgress on the first non-solving attempt.
//   - Fresh/InProgress → Solved when an all-correct pattern is submitted.
//   - Undo pops the last attempt and replays the remaining history from the
//     full corpus; constraints are never retracted incrementally.
//   - Reset returns to Fresh.
//
// A Session is single-owner: callers must not use it from more than one
// goroutine at a time.

package solver

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Status is the coarse session state.
type Status int

const (
	StatusFresh Status = iota
	StatusInProgress
	StatusSolved
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusSolved:
		return "solved"
	}
	return "fresh"
}

// Recorder receives terminal and per-attempt events for usage statistics.
// Implementations must not block the caller on persistence.
type Recorder interface {
	RecordAttempt(word string, success bool)
	RecordGame(attempts int)
}

// Option configures a Session.
type Option func(*Session)

// WithWeights overrides the scoring policy.
func WithWeights(w Weights) Option { return func(s *Session) { s.weights = w } }

// WithUsage supplies historical success rates to the scorer.
func WithUsage(u UsageSource) Option { return func(s *Session) { s.usage = u } }

// WithRecorder receives attempt and game events.
func WithRecorder(r Recorder) Option { return func(s *Session) { s.recorder = r } }

// WithStrictGuesses rejects guesses that are not in the corpus.
func WithStrictGuesses(strict bool) Option { return func(s *Session) { s.strict = strict } }

// Session is the top-level solver state machine.
type Session struct {
	corpus   []Word
	inCorpus map[Word]struct{}

	constraints  Constraints
	candidates   []Word
	history      []Attempt
	lastNonEmpty []Word
	solvedBy     *Attempt

	weights  Weights
	usage    UsageSource
	recorder Recorder
	strict   bool
	selector *Selector
}

// NewSession builds a session over corpus. Invalid entries and duplicates are
// dropped; if nothing usable remains the curated starter list is used so the
// corpus is never empty.
func NewSession(corpus []string, opts ...Option) *Session {
	s := &Session{weights: DefaultWeights()}
	for _, opt := range opts {
		opt(s)
	}
	s.corpus = ParseWords(corpus)
	if len(s.corpus) == 0 {
		log.Warn().Msg("solver: empty corpus, using starter words")
		s.corpus = ParseWords(Starters)
	}
	s.inCorpus = make(map[Word]struct{}, len(s.corpus))
	for _, w := range s.corpus {
		s.inCorpus[w] = struct{}{}
	}
	s.selector = NewSelector(NewScorer(s.weights, s.usage))
	s.candidates = s.corpus
	return s
}

// Status reports the current state.
func (s *Session) Status() Status {
	switch {
	case s.solvedBy != nil:
		return StatusSolved
	case len(s.history) > 0:
		return StatusInProgress
	}
	return StatusFresh
}

// SubmitAttempt parses guess and pattern and submits them. Malformed input is
// rejected with ErrMalformedInput and leaves the session unchanged.
func (s *Session) SubmitAttempt(guess, pattern string) (Status, error) {
	w, err := ParseWord(guess)
	if err != nil {
		return s.Status(), err
	}
	p, err := ParsePattern(pattern)
	if err != nil {
		return s.Status(), err
	}
	return s.Submit(w, p)
}

// Submit applies one validated attempt.
func (s *Session) Submit(guess Word, p Pattern) (Status, error) {
	if s.solvedBy != nil {
		return StatusSolved, ErrSolved
	}
	if s.strict {
		if _, ok := s.inCorpus[guess]; !ok {
			return s.Status(), fmt.Errorf("%w: %s", ErrUnknownWord, guess)
		}
	}

	if p.IsSolved() {
		s.solvedBy = &Attempt{Guess: guess, Pattern: p}
		if s.recorder != nil {
			s.recorder.RecordAttempt(guess.String(), true)
			s.recorder.RecordGame(len(s.history) + 1)
		}
		log.Debug().Str("guess", guess.String()).Int("attempts", len(s.history)+1).Msg("solved")
		return StatusSolved, nil
	}

	before := len(s.candidates)
	s.apply(Attempt{Guess: guess, Pattern: p})
	if s.recorder != nil {
		s.recorder.RecordAttempt(guess.String(), false)
	}

	ev := log.Debug()
	if len(s.candidates) == 0 {
		ev = log.Warn()
	}
	ev.Str("guess", guess.String()).
		Str("pattern", p.String()).
		Int("before", before).
		Int("after", len(s.candidates)).
		Msg("attempt applied")
	return StatusInProgress, nil
}

// apply snapshots the current non-empty candidates, folds a into the
// constraints, filters and appends a to history.
func (s *Session) apply(a Attempt) {
	if len(s.candidates) > 0 {
		s.lastNonEmpty = s.candidates
	}
	s.constraints.Apply(a.Guess, a.Pattern)
	s.candidates = Filter(s.candidates, &s.constraints)
	s.history = append(s.history, a)
}

// Undo discards the most recent submission and rebuilds state by replaying
// the remaining history from the full corpus. Undoing a solve only clears the
// solved state. It reports false when there is nothing to undo.
func (s *Session) Undo() bool {
	if s.solvedBy != nil {
		s.solvedBy = nil
		return true
	}
	if len(s.history) == 0 {
		return false
	}
	remaining := s.history[:len(s.history)-1]
	s.replay(remaining)
	log.Debug().Int("attempts", len(s.history)).Int("candidates", len(s.candidates)).Msg("undo replayed")
	return true
}

// replay rebuilds constraints, candidates and the snapshot from scratch.
func (s *Session) replay(history []Attempt) {
	replayed := make([]Attempt, len(history))
	copy(replayed, history)

	s.constraints = Constraints{}
	s.candidates = s.corpus
	s.lastNonEmpty = nil
	s.history = nil
	for _, a := range replayed {
		s.apply(a)
	}
}

// Reset clears history, constraints and candidates.
func (s *Session) Reset() {
	s.solvedBy = nil
	s.replay(nil)
}

// Suggestion returns the recommended next guess.
func (s *Session) Suggestion() Suggestion {
	if s.solvedBy != nil {
		return Suggestion{Word: s.solvedBy.Guess, Strategy: StrategySingle}
	}
	return s.selector.Suggest(Input{
		Candidates:   s.candidates,
		Corpus:       s.corpus,
		LastNonEmpty: s.lastNonEmpty,
		Attempts:     len(s.history),
	})
}

// CandidateCount is the number of words still consistent with all feedback.
func (s *Session) CandidateCount() int { return len(s.candidates) }

// EliminatedCount is the number of corpus words ruled out so far.
func (s *Session) EliminatedCount() int { return len(s.corpus) - len(s.candidates) }

// CorpusSize is the number of words in the corpus.
func (s *Session) CorpusSize() int { return len(s.corpus) }

// Candidates returns up to limit candidates in corpus order; limit <= 0 means all.
func (s *Session) Candidates(limit int) []Word {
	n := len(s.candidates)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Word, n)
	copy(out, s.candidates[:n])
	return out
}

// History returns a copy of the applied attempts in order. A solving attempt
// is not part of the history.
func (s *Session) History() []Attempt {
	out := make([]Attempt, len(s.history))
	copy(out, s.history)
	return out
}

// SolvedBy returns the solving attempt, if any.
func (s *Session) SolvedBy() (Attempt, bool) {
	if s.solvedBy == nil {
		return Attempt{}, false
	}
	return *s.solvedBy, true
}

// Constraints returns a copy of the accumulated constraints.
func (s *Session) Constraints() Constraints { return s.constraints }

// Contains reports whether w is in the corpus.
func (s *Session) Contains(w Word) bool {
	_, ok := s.inCorpus[w]
	return ok
}
