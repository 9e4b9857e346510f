// internal/daily/daily.go
//
// Deterministic daily answer selection.
// The same date and salt always pick the same word, so every instance of
// the service (and the CLI) agrees on "today's" puzzle without shared state.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Puzzle identifies the answer of one day.
type Puzzle struct {
	Date   string `json:"date"`
	Index  int    `json:"index"`
	Answer string `json:"answer"`
}

// For picks the puzzle of date from answers. ok is false when answers is empty.
func For(date time.Time, salt string, answers []string) (Puzzle, bool) {
	if len(answers) == 0 {
		return Puzzle{}, false
	}
	i := WordIndex(date, salt, len(answers))
	return Puzzle{Date: DateKey(date), Index: i, Answer: answers[i]}, true
}
