package solver

// Filter returns the words of words that c allows, preserving order. The
// input slice is never modified.
func Filter(words []Word, c *Constraints) []Word {
	out := make([]Word, 0, len(words))
	for _, w := range words {
		if c.Allows(w) {
			out = append(out, w)
		}
	}
	return out
}
