package solver

import (
	"math"
	"strings"
)

var (
	goodPairs    = []string{"st", "th", "ch", "sh", "wh", "ph", "tr", "cr", "br", "fr", "gr", "pr", "dr"}
	greatPairs   = []string{"er", "ing", "ly", "ed", "es"}
	rareLetters  = letterSetOf("jqxz")
	vowels       = letterSetOf("aeiou")
	commonStarts = letterSetOf("stcpabfmdr")
	commonEnds   = letterSetOf("estdnry")
)

func letterSetOf(s string) letterSet {
	var set letterSet
	for i := 0; i < len(s); i++ {
		set.add(s[i])
	}
	return set
}

// UsageSource supplies historical per-word success rates. It is optional.
type UsageSource interface {
	// SuccessRate returns successes/total for word, or ok=false when the word
	// has no history.
	SuccessRate(word string) (rate float64, ok bool)
}

// frequencies holds per-position and global letter counts over a candidate set.
type frequencies struct {
	position [WordLen][alphabetSize]int
	letter   [alphabetSize]int // counted once per word
	total    int
}

func newFrequencies(words []Word) frequencies {
	var f frequencies
	f.total = len(words)
	for _, w := range words {
		var seen letterSet
		for i := 0; i < WordLen; i++ {
			c := w[i]
			f.position[i][idx(c)]++
			if !seen.has(c) {
				f.letter[idx(c)]++
				seen.add(c)
			}
		}
	}
	return f
}

// Context carries the tables shared by every word scored in one ranking pass.
type Context struct {
	Candidates []Word
	Opening    bool // penalize rare letters

	freq    frequencies
	answers []Word // bounded partition sample for entropy
}

// Scorer ranks words with the frequency and entropy heuristics.
type Scorer struct {
	weights Weights
	usage   UsageSource
}

// NewScorer builds a Scorer. usage may be nil.
func NewScorer(w Weights, usage UsageSource) *Scorer {
	return &Scorer{weights: w.normalized(), usage: usage}
}

// Weights returns the effective policy.
func (s *Scorer) Weights() Weights { return s.weights }

// NewContext prepares frequency tables over candidates and picks the bounded
// answer sample used by Entropy.
func (s *Scorer) NewContext(candidates []Word, opening bool) *Context {
	return &Context{
		Candidates: candidates,
		Opening:    opening,
		freq:       newFrequencies(candidates),
		answers:    sample(candidates, s.weights.EntropyAnswerSample),
	}
}

// Frequency scores w by letter/position frequency over ctx.Candidates plus
// structural bonuses and the optional success-rate term.
func (s *Scorer) Frequency(w Word, ctx *Context) float64 {
	wt := s.weights
	f := &ctx.freq
	score := 0.0

	var distinct letterSet
	nDistinct := 0
	for i := 0; i < WordLen; i++ {
		if !distinct.has(w[i]) {
			distinct.add(w[i])
			nDistinct++
		}
	}
	score += float64(nDistinct) * wt.UniqueLetterBonus

	if f.total > 0 {
		total := float64(f.total)
		var covered letterSet
		for i := 0; i < WordLen; i++ {
			c := w[i]
			score += float64(f.position[i][idx(c)]) / total * wt.PositionWeight
			if !covered.has(c) {
				score += float64(f.letter[idx(c)]) / total * wt.CoverageWeight
				covered.add(c)
			}
		}
	}

	nVowels := 0
	for i := 0; i < WordLen; i++ {
		if vowels.has(w[i]) {
			nVowels++
		}
	}
	switch nVowels {
	case 2, 3:
		score += wt.VowelTargetBonus
	case 1, 4:
		score += wt.VowelNearBonus
	}

	str := w.String()
	for _, pair := range goodPairs {
		if strings.Contains(str, pair) {
			score += wt.GoodPairBonus
		}
	}
	for _, pair := range greatPairs {
		if strings.Contains(str, pair) {
			score += wt.GreatPairBonus
		}
	}

	if ctx.Opening {
		for _, c := range rareLetters.letters() {
			if w.Contains(c) {
				score -= wt.RareLetterPenalty
			}
		}
	}
	if commonStarts.has(w[0]) {
		score += wt.CommonStartBonus
	}
	if commonEnds.has(w[WordLen-1]) {
		score += wt.CommonEndBonus
	}

	if s.usage != nil {
		if rate, ok := s.usage.SuccessRate(str); ok {
			score += rate * wt.SuccessRateWeight
		}
	}
	return score
}

// Entropy is the Shannon entropy of the pattern partition w induces over the
// bounded answer sample of ctx.
func (s *Scorer) Entropy(w Word, ctx *Context) float64 {
	return Entropy(w, ctx.answers)
}

// Entropy returns H = -Σ p·log2(p) over the partition of answers by the
// pattern guess produces against each of them. Cost is O(len(answers)).
func Entropy(guess Word, answers []Word) float64 {
	if len(answers) == 0 {
		return 0
	}
	var buckets [patternCount]int
	for _, a := range answers {
		buckets[Match(guess, a).index()]++
	}
	total := float64(len(answers))
	h := 0.0
	for _, n := range buckets {
		if n == 0 {
			continue
		}
		p := float64(n) / total
		h -= p * math.Log2(p)
	}
	return h
}

// sample returns at most n words of words, evenly strided and in original
// order. words itself is returned when it is already small enough.
func sample(words []Word, n int) []Word {
	if n <= 0 || len(words) <= n {
		return words
	}
	out := make([]Word, n)
	for i := range out {
		out[i] = words[i*len(words)/n]
	}
	return out
}
