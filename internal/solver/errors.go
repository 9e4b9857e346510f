package solver

import "errors"

var (
	// ErrMalformedInput reports a guess or pattern that violates the input contract.
	ErrMalformedInput = errors.New("malformed input")
	// ErrUnknownWord reports a guess outside the corpus when strict guesses are enabled.
	ErrUnknownWord = errors.New("word not in corpus")
	// ErrSolved reports a submission to a session that is already solved.
	ErrSolved = errors.New("session already solved")
)
