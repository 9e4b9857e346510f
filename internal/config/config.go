// internal/config/config.go
//
// Environment configuration for the server and the CLI.
// Values come from the process environment (optionally seeded from .env by
// godotenv in main). Invalid values are logged and replaced by defaults;
// configuration never aborts startup.

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// Config is the resolved environment.
type Config struct {
	Port     string
	LogLevel string

	AnswersFile  string
	AllowedFile  string
	AnswersURL   string
	AllowedURL   string
	FetchTimeout time.Duration

	StatsDSN     string // empty: in-memory statistics
	JWTSecret    string
	SessionTTL   time.Duration
	MaxSessions  int
	AdminKeyHash string // bcrypt hash; empty disables admin routes
	ClientOrigin string
	DailySalt    string

	StrictGuesses bool
	Weights       solver.Weights
}

// FromEnv reads the configuration from the environment.
func FromEnv() Config {
	w := solver.DefaultWeights()
	w.SmallThreshold = getInt("SOLVER_SMALL_THRESHOLD", w.SmallThreshold)
	w.MediumThreshold = getInt("SOLVER_MEDIUM_THRESHOLD", w.MediumThreshold)
	w.MediumSample = getInt("SOLVER_MEDIUM_SAMPLE", w.MediumSample)
	w.LargeSample = getInt("SOLVER_LARGE_SAMPLE", w.LargeSample)
	w.EntropyAnswerSample = getInt("SOLVER_ENTROPY_ANSWER_SAMPLE", w.EntropyAnswerSample)
	w.MediumEntropyBlend = getFloat("SOLVER_MEDIUM_ENTROPY_BLEND", w.MediumEntropyBlend)
	w.LargeEntropyBlend = getFloat("SOLVER_LARGE_ENTROPY_BLEND", w.LargeEntropyBlend)
	w.SuccessRateWeight = getFloat("SOLVER_SUCCESS_WEIGHT", w.SuccessRateWeight)

	return Config{
		Port:     getEnv("PORT", "5175"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		AnswersFile:  os.Getenv("WORDS_ANSWERS_FILE"),
		AllowedFile:  os.Getenv("WORDS_ALLOWED_FILE"),
		AnswersURL:   os.Getenv("WORDS_ANSWERS_URL"),
		AllowedURL:   os.Getenv("WORDS_ALLOWED_URL"),
		FetchTimeout: getDuration("WORDS_FETCH_TIMEOUT", 10*time.Second),

		StatsDSN:     os.Getenv("STATS_DSN"),
		JWTSecret:    getEnv("JWT_SECRET", "dev_secret_change_me"),
		SessionTTL:   getDuration("SESSION_TOKEN_TTL", 24*time.Hour),
		MaxSessions:  getInt("MAX_SESSIONS", 1024),
		AdminKeyHash: os.Getenv("ADMIN_KEY_HASH"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		DailySalt:    getEnv("DAILY_SALT", "local_dev_salt"),

		StrictGuesses: getBool("STRICT_GUESSES", false),
		Weights:       w,
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Warn().Str("key", k).Str("value", v).Int("default", def).Msg("invalid integer, using default")
		return def
	}
	return n
}

func getFloat(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		log.Warn().Str("key", k).Str("value", v).Float64("default", def).Msg("invalid number, using default")
		return def
	}
	return f
}

func getBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Bool("default", def).Msg("invalid boolean, using default")
		return def
	}
	return b
}

func getDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Warn().Str("key", k).Str("value", v).Dur("default", def).Msg("invalid duration, using default")
		return def
	}
	return d
}

// WordSources returns the configured word list URLs and files.
func (c Config) WordSources() (urls, files []string) {
	return []string{c.AnswersURL, c.AllowedURL}, []string{c.AnswersFile, c.AllowedFile}
}
