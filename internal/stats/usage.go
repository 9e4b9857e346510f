// internal/stats/usage.go
//
// Usage statistics gathered from solver sessions.
//
// Responsibilities:
//   - Per-word outcome counters (success / total / usage).
//   - A bounded ring of recent game lengths (attempts to solve).
//   - Total games played.
//
// The solver reads success rates as an optional weighting input and writes
// outcomes on every attempt and on every solve. Nothing here is internal
// solver state: callers may swap or drop it freely.

package stats

// MaxCompletions bounds the ring of recent completion attempt counts.
const MaxCompletions = 100

// WordStats holds outcome counters for one guessed word.
type WordStats struct {
	Word         string `json:"word"`
	SuccessCount int    `json:"successCount"`
	TotalCount   int    `json:"totalCount"`
	UsageCount   int    `json:"usageCount"`
}

// SuccessRate is SuccessCount/TotalCount, or 0 when the word was never used.
func (w WordStats) SuccessRate() float64 {
	if w.TotalCount == 0 {
		return 0
	}
	return float64(w.SuccessCount) / float64(w.TotalCount)
}

// Usage is the full statistics snapshot.
type Usage struct {
	Words       map[string]WordStats
	Completions []int // oldest first, at most MaxCompletions
	TotalGames  int
}

// NewUsage returns an empty snapshot.
func NewUsage() *Usage {
	return &Usage{Words: make(map[string]WordStats)}
}

// RecordWord counts one guess of word.
func (u *Usage) RecordWord(word string, success bool) {
	ws := u.Words[word]
	ws.Word = word
	ws.TotalCount++
	ws.UsageCount++
	if success {
		ws.SuccessCount++
	}
	u.Words[word] = ws
}

// RecordGame appends a completion and trims the ring.
func (u *Usage) RecordGame(attempts int) {
	u.TotalGames++
	u.Completions = append(u.Completions, attempts)
	if n := len(u.Completions); n > MaxCompletions {
		u.Completions = append([]int(nil), u.Completions[n-MaxCompletions:]...)
	}
}

// AverageAttempts is the mean of the completion ring, 0 when empty.
func (u *Usage) AverageAttempts() float64 {
	if len(u.Completions) == 0 {
		return 0
	}
	sum := 0
	for _, a := range u.Completions {
		sum += a
	}
	return float64(sum) / float64(len(u.Completions))
}

// Clone returns a deep copy.
func (u *Usage) Clone() *Usage {
	c := &Usage{
		Words:       make(map[string]WordStats, len(u.Words)),
		Completions: append([]int(nil), u.Completions...),
		TotalGames:  u.TotalGames,
	}
	for k, v := range u.Words {
		c.Words[k] = v
	}
	return c
}

// Summary is the public aggregate view.
type Summary struct {
	TotalGames      int     `json:"totalGames"`
	RecentGames     int     `json:"recentGames"`
	AverageAttempts float64 `json:"averageAttempts"`
	TrackedWords    int     `json:"trackedWords"`
}

// Summary aggregates u for display.
func (u *Usage) Summary() Summary {
	return Summary{
		TotalGames:      u.TotalGames,
		RecentGames:     len(u.Completions),
		AverageAttempts: u.AverageAttempts(),
		TrackedWords:    len(u.Words),
	}
}
