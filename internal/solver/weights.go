package solver

// Weights tunes the scoring heuristics and the selection policy. The values
// observed across versions of the tool differ, so every bonus, threshold,
// sample size and blend ratio is a named field rather than a literal.
type Weights struct {
	// Frequency heuristic.
	UniqueLetterBonus float64 // per distinct letter in the word
	PositionWeight    float64 // scales positional frequency share
	CoverageWeight    float64 // scales letter coverage share, once per distinct letter
	VowelTargetBonus  float64 // 2–3 vowels
	VowelNearBonus    float64 // 1 or 4 vowels
	GoodPairBonus     float64
	GreatPairBonus    float64
	RareLetterPenalty float64 // per rare letter, opening mode only
	CommonStartBonus  float64
	CommonEndBonus    float64
	SuccessRateWeight float64 // historical success rate from usage statistics

	// Selection policy.
	SmallThreshold      int     // at or below: frequency only
	MediumThreshold     int     // at or below: blend; above: entropy-weighted
	MediumSample        int     // guesses scored in the medium band
	LargeSample         int     // guesses scored in the large band
	EntropyAnswerSample int     // answers partitioned per entropy evaluation
	MediumEntropyScale  float64 // bits → score units, medium band
	LargeEntropyScale   float64 // bits → score units, large band
	MediumEntropyBlend  float64 // entropy share in the medium band
	LargeEntropyBlend   float64 // entropy share in the large band
}

// DefaultWeights returns the policy of the latest version of the tool, plus a
// bound on the entropy partition size.
func DefaultWeights() Weights {
	return Weights{
		UniqueLetterBonus: 100,
		PositionWeight:    500,
		CoverageWeight:    300,
		VowelTargetBonus:  150,
		VowelNearBonus:    50,
		GoodPairBonus:     40,
		GreatPairBonus:    60,
		RareLetterPenalty: 200,
		CommonStartBonus:  60,
		CommonEndBonus:    60,
		SuccessRateWeight: 250,

		SmallThreshold:      50,
		MediumThreshold:     500,
		MediumSample:        150,
		LargeSample:         200,
		EntropyAnswerSample: 1000,
		MediumEntropyScale:  200,
		LargeEntropyScale:   250,
		MediumEntropyBlend:  0.4,
		LargeEntropyBlend:   0.7,
	}
}

// normalized replaces unusable policy values with defaults so the sampling
// bounds always hold.
func (w Weights) normalized() Weights {
	d := DefaultWeights()
	if w.SmallThreshold < 1 {
		w.SmallThreshold = d.SmallThreshold
	}
	if w.MediumThreshold < w.SmallThreshold {
		w.MediumThreshold = w.SmallThreshold
	}
	if w.MediumSample < 1 {
		w.MediumSample = d.MediumSample
	}
	if w.LargeSample < 1 {
		w.LargeSample = d.LargeSample
	}
	if w.EntropyAnswerSample < 1 {
		w.EntropyAnswerSample = d.EntropyAnswerSample
	}
	w.MediumEntropyBlend = clamp01(w.MediumEntropyBlend)
	w.LargeEntropyBlend = clamp01(w.LargeEntropyBlend)
	return w
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
