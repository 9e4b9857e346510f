package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestSelector(w Weights) *Selector {
	return NewSelector(NewScorer(w, nil))
}

func TestSuggestDegenerateCases(t *testing.T) {
	sel := newTestSelector(DefaultWeights())

	sg := sel.Suggest(Input{})
	assert.Equal(t, FallbackWord, sg.Word.String())
	assert.Equal(t, StrategyFallback, sg.Strategy)

	snapshot := ParseWords([]string{"toast", "coast"})
	sg = sel.Suggest(Input{LastNonEmpty: snapshot, Attempts: 2})
	assert.Equal(t, StrategyFallback, sg.Strategy)
	assert.Contains(t, snapshot, sg.Word)

	one := ParseWords([]string{"coast"})
	sg = sel.Suggest(Input{Candidates: one, Corpus: snapshot, Attempts: 1})
	assert.Equal(t, "coast", sg.Word.String())
	assert.Equal(t, StrategySingle, sg.Strategy)
}

func TestSuggestOpening(t *testing.T) {
	sel := newTestSelector(DefaultWeights())

	corpus := ParseWords([]string{"about", "crane", "raise", "slate"})
	sg := sel.Suggest(Input{Candidates: corpus, Corpus: corpus})
	assert.Equal(t, "raise", sg.Word.String(), "earliest starter present in the corpus")
	assert.Equal(t, StrategyOpening, sg.Strategy)

	corpus = ParseWords([]string{"about", "toast", "coast"})
	sg = sel.Suggest(Input{Candidates: corpus, Corpus: corpus})
	assert.Equal(t, StrategyFrequency, sg.Strategy, "no starter available")
}

func TestSuggestBands(t *testing.T) {
	w := DefaultWeights()
	w.SmallThreshold = 3
	w.MediumThreshold = 6
	w.MediumSample = 4
	w.LargeSample = 4
	sel := newTestSelector(w)

	words := syntheticWords(t, 10)
	cases := []struct {
		n    int
		want Strategy
	}{
		{2, StrategyFrequency},
		{3, StrategyFrequency},
		{5, StrategyBlend},
		{6, StrategyBlend},
		{10, StrategyEntropy},
	}
	for _, c := range cases {
		sg := sel.Suggest(Input{Candidates: words[:c.n], Corpus: words, Attempts: 1})
		assert.Equal(t, c.want, sg.Strategy, "n=%d", c.n)
		assert.Contains(t, words[:c.n], sg.Word)
	}
}

func TestSuggestIsDeterministic(t *testing.T) {
	sel := newTestSelector(DefaultWeights())
	words := syntheticWords(t, 700)
	in := Input{Candidates: words, Corpus: words, Attempts: 1}
	first := sel.Suggest(in)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, sel.Suggest(in))
	}
}
