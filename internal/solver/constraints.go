package solver

// letterSet is a set of letters a–z stored as a bitmask.
type letterSet uint32

func (s letterSet) has(c byte) bool { return s&(1<<idx(c)) != 0 }
func (s *letterSet) add(c byte) { *s |= 1 << idx(c) }
func (s letterSet) letters() []byte {
	var out []byte
	for i := 0; i < alphabetSize; i++ {
		if s&(1<<i) != 0 {
			out = append(out, byte('a'+i))
		}
	}
	return out
}

// Constraints accumulates feedback across attempts.
//
// Positions are indexed 0..4 and letters by a 26-entry table. The zero value
// is an empty constraint set. Constraints is a comparable value, so two sets
// can be checked for equality with ==.
//
// Invariant: a letter is never in the excluded set while it is required or
// placed at some position.
type Constraints struct {
	positional [WordLen]byte       // 0 means unset
	required   letterSet           // letters known to occur
	excludedAt [alphabetSize]uint8 // per letter, bitmask of positions it is not at
	excluded   letterSet           // letters known not to occur
}

// Apply folds one (guess, pattern) observation into c.
//
// Correct and Present marks of the guess are resolved first, so that an
// Absent mark for a letter that the same guess also marks Correct or Present
// never excludes that letter globally, regardless of position order.
func (c *Constraints) Apply(guess Word, p Pattern) {
	for i := 0; i < WordLen; i++ {
		l := guess[i]
		switch p[i] {
		case MarkCorrect:
			c.positional[i] = l
		case MarkPresent:
			c.required.add(l)
			c.excludedAt[idx(l)] |= 1 << i
		}
	}
	for i := 0; i < WordLen; i++ {
		if p[i] != MarkAbsent {
			continue
		}
		l := guess[i]
		if c.required.has(l) || c.isPlaced(l) {
			continue
		}
		c.excluded.add(l)
	}
}

// isPlaced reports whether l is the required letter of any position.
func (c *Constraints) isPlaced(l byte) bool {
	for _, x := range c.positional {
		if x == l {
			return true
		}
	}
	return false
}

// Allows reports whether w satisfies every rule of c. Rules are conjunctive,
// so evaluation stops at the first failure.
func (c *Constraints) Allows(w Word) bool {
	for i, l := range c.positional {
		if l != 0 && w[i] != l {
			return false
		}
	}
	if c.required != 0 {
		for i := 0; i < alphabetSize; i++ {
			if c.required&(1<<i) == 0 {
				continue
			}
			l := byte('a' + i)
			if !w.Contains(l) {
				return false
			}
			if banned := c.excludedAt[i]; banned != 0 {
				for pos := 0; pos < WordLen; pos++ {
					if banned&(1<<pos) != 0 && w[pos] == l {
						return false
					}
				}
			}
		}
	}
	if c.excluded != 0 {
		for pos := 0; pos < WordLen; pos++ {
			if c.excluded.has(w[pos]) {
				return false
			}
		}
	}
	return true
}

// Positional returns the letter required at pos, if any.
func (c *Constraints) Positional(pos int) (byte, bool) {
	l := c.positional[pos]
	return l, l != 0
}

// Required reports whether l is known to occur in the answer.
func (c *Constraints) Required(l byte) bool { return c.required.has(l) }

// ExcludedAt reports whether l is known not to be at pos.
func (c *Constraints) ExcludedAt(l byte, pos int) bool {
	return c.excludedAt[idx(l)]&(1<<pos) != 0
}

// Excluded reports whether l is known not to occur at all.
func (c *Constraints) Excluded(l byte) bool { return c.excluded.has(l) }

// RequiredLetters lists the required letters in alphabetical order.
func (c *Constraints) RequiredLetters() []byte { return c.required.letters() }

// ExcludedLetters lists the excluded letters in alphabetical order.
func (c *Constraints) ExcludedLetters() []byte { return c.excluded.letters() }
