package solver

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/constraints"
)

// Starters is the curated list of high-entropy opening words, best first.
var Starters = []string{"soare", "roate", "raise", "raile", "slate", "crane", "crate", "trace", "stare", "arise"}

// FallbackWord is suggested when nothing else is available.
const FallbackWord = "raise"

// Strategy names the branch the selector took.
type Strategy string

const (
	StrategyFallback  Strategy = "fallback"
	StrategySingle    Strategy = "single"
	StrategyOpening   Strategy = "opening"
	StrategyFrequency Strategy = "frequency"
	StrategyBlend     Strategy = "blend"
	StrategyEntropy   Strategy = "entropy"
)

// Suggestion is the selector's pick and how it was made.
type Suggestion struct {
	Word     Word
	Strategy Strategy
}

// Input is everything the selector looks at. Slices are read, never modified.
type Input struct {
	Candidates   []Word
	Corpus       []Word
	LastNonEmpty []Word
	Attempts     int
}

// Selector picks which ranking strategy to run for the current state.
type Selector struct {
	scorer   *Scorer
	starters []Word
	fallback Word
}

// NewSelector builds a Selector around scorer.
func NewSelector(scorer *Scorer) *Selector {
	fb, _ := ParseWord(FallbackWord)
	return &Selector{scorer: scorer, starters: ParseWords(Starters), fallback: fb}
}

// Suggest returns one word to guess next.
//
//   - no candidates: best of the last non-empty snapshot, else FallbackWord
//   - one candidate: that word
//   - opening: first curated starter present in the corpus
//   - small set: frequency only
//   - medium set: frequency/entropy blend over a bounded sample
//   - large set: entropy-weighted blend over a bounded sample, opening-safe
//
// Ties go to the word that comes first in corpus order.
func (s *Selector) Suggest(in Input) Suggestion {
	switch {
	case len(in.Candidates) == 0:
		if len(in.LastNonEmpty) == 0 {
			return Suggestion{Word: s.fallback, Strategy: StrategyFallback}
		}
		sg := s.rank(in.LastNonEmpty)
		sg.Strategy = StrategyFallback
		return sg
	case len(in.Candidates) == 1:
		return Suggestion{Word: in.Candidates[0], Strategy: StrategySingle}
	case in.Attempts == 0:
		if w, ok := s.starter(in.Corpus); ok {
			return Suggestion{Word: w, Strategy: StrategyOpening}
		}
	}
	return s.rank(in.Candidates)
}

func (s *Selector) starter(corpus []Word) (Word, bool) {
	for _, st := range s.starters {
		for _, w := range corpus {
			if w == st {
				return st, true
			}
		}
	}
	return Word{}, false
}

// rank scores candidates with the band-appropriate strategy. Every band
// scores a bounded number of guesses against a bounded answer sample.
func (s *Selector) rank(candidates []Word) Suggestion {
	wt := s.scorer.weights
	n := len(candidates)

	switch {
	case n <= wt.SmallThreshold:
		ctx := s.scorer.NewContext(candidates, false)
		best, _ := argmax(candidates, func(w Word) float64 {
			return s.scorer.Frequency(w, ctx)
		})
		log.Debug().Int("candidates", n).Str("word", best.String()).Msg("frequency pick")
		return Suggestion{Word: best, Strategy: StrategyFrequency}

	case n <= wt.MediumThreshold:
		ctx := s.scorer.NewContext(candidates, false)
		b := wt.MediumEntropyBlend
		best, _ := argmax(sample(candidates, wt.MediumSample), func(w Word) float64 {
			return s.scorer.Frequency(w, ctx)*(1-b) + s.scorer.Entropy(w, ctx)*wt.MediumEntropyScale*b
		})
		log.Debug().Int("candidates", n).Str("word", best.String()).Msg("blend pick")
		return Suggestion{Word: best, Strategy: StrategyBlend}

	default:
		ctx := s.scorer.NewContext(candidates, true)
		b := wt.LargeEntropyBlend
		best, _ := argmax(sample(candidates, wt.LargeSample), func(w Word) float64 {
			return s.scorer.Entropy(w, ctx)*wt.LargeEntropyScale*b + s.scorer.Frequency(w, ctx)*(1-b)
		})
		log.Debug().Int("candidates", n).Str("word", best.String()).Msg("entropy pick")
		return Suggestion{Word: best, Strategy: StrategyEntropy}
	}
}

// argmax returns the first item with the greatest key.
func argmax[T any, K constraints.Ordered](items []T, key func(T) K) (T, bool) {
	var best T
	if len(items) == 0 {
		return best, false
	}
	best = items[0]
	bestKey := key(best)
	for _, it := range items[1:] {
		if k := key(it); k > bestKey {
			best, bestKey = it, k
		}
	}
	return best, true
}
