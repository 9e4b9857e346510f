package solver

// Transcript records one self-played game.
type Transcript struct {
	Answer   Word      `json:"answer"`
	Attempts []Attempt `json:"attempts"` // includes the solving attempt
	Solved   bool      `json:"solved"`
}

// Play drives s against answer, always guessing the current suggestion, until
// solved or maxTurns guesses have been made. s is reset first.
func Play(s *Session, answer Word, maxTurns int) Transcript {
	s.Reset()
	t := Transcript{Answer: answer}
	for turn := 0; turn < maxTurns; turn++ {
		guess := s.Suggestion().Word
		p := Match(guess, answer)
		t.Attempts = append(t.Attempts, Attempt{Guess: guess, Pattern: p})
		if _, err := s.Submit(guess, p); err != nil {
			break
		}
		if p.IsSolved() {
			t.Solved = true
			break
		}
	}
	return t
}
