package solver

// Match computes the feedback pattern produced by guessing guess when the
// answer is answer, using the two-pass algorithm.
//
// Pass 1:
//   - Mark exact matches Correct.
//   - Count the remaining (unconsumed) answer letters.
//
// Pass 2:
//   - For each non-correct guess letter: if an unconsumed occurrence remains,
//     mark Present and consume it; otherwise mark Absent.
//
// Counting unconsumed letters is equivalent to scanning the answer left to
// right and consuming the first free occurrence, and it bounds the number of
// Correct+Present marks for any letter by its occurrences in the answer.
func Match(guess, answer Word) Pattern {
	var p Pattern
	var counts [alphabetSize]uint8

	for i := 0; i < WordLen; i++ {
		if guess[i] == answer[i] {
			p[i] = MarkCorrect
		} else {
			counts[idx(answer[i])]++
		}
	}

	for i := 0; i < WordLen; i++ {
		if p[i] == MarkCorrect {
			continue
		}
		j := idx(guess[i])
		if counts[j] > 0 {
			p[i] = MarkPresent
			counts[j]--
		}
	}
	return p
}
