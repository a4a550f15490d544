package fuzzy

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidInput is returned when a scorer argument is not valid text.
var ErrInvalidInput = errors.New("invalid input")

// Scorer computes a similarity between a query and a candidate in the range 0-100.
type Scorer interface {
	Score(query, candidate string) (float64, error)
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(query, candidate string) (float64, error)

// Score implements Scorer.
func (f ScorerFunc) Score(query, candidate string) (float64, error) {
	return f(query, candidate)
}

// DefaultScorer is the composite scorer used by the resolver.
var DefaultScorer Scorer = ScorerFunc(Score)

// Score is the composite similarity of query and candidate. Identical inputs score 100
// (including two empty strings); an input that is empty after processing scores 0 against
// anything else. The metric is close to, but not guaranteed to be, symmetric.
func Score(query, candidate string) (float64, error) {
	if !utf8.ValidString(query) {
		return 0, fmt.Errorf("fuzzy: query %q: %w", query, ErrInvalidInput)
	}
	if !utf8.ValidString(candidate) {
		return 0, fmt.Errorf("fuzzy: candidate %q: %w", candidate, ErrInvalidInput)
	}
	if query == candidate {
		return 100, nil
	}
	pq, pc := Process(query), Process(candidate)
	if pq == "" || pc == "" {
		return 0, nil
	}
	return WRatio(pq, pc), nil
}
